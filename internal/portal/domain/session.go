package domain

import "time"

// Session is a bearer login session. The raw token is returned to the client
// once and only its SHA-256 fingerprint is stored. One active session per
// user: a new login replaces the previous row.
type Session struct {
	ID        string
	UserID    string
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
}
