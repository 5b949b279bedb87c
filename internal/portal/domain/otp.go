package domain

import "time"

// OtpCode is a single-use login code issued for a phone number or email
// address. Only the newest unverified, unexpired row for an identifier is
// accepted at verification time; a verified code can never be replayed.
type OtpCode struct {
	ID         string
	Identifier string // phone number or email address as submitted
	CodeHash   string
	ExpiresAt  time.Time
	Verified   bool
	CreatedAt  time.Time
}
