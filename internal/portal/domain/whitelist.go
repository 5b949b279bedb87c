package domain

import "time"

// WhitelistEntry pre-assigns a role to a phone/email identifier. Whitelisted
// identifiers skip KYC: their user record is marked completed on first login.
type WhitelistEntry struct {
	ID      string
	Phone   string // at least one of Phone/Email is set
	Email   string
	Role    string
	AddedBy string // admin user id, empty for CSV imports without attribution
	AddedAt time.Time
}
