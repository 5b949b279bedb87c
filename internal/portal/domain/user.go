package domain

import "time"

// Roles a user can hold. Whitelist entries may promote a user to account or
// admin on first login; everyone else defaults to customer.
const (
	RoleCustomer = "customer"
	RoleAccount  = "account"
	RoleAdmin    = "admin"
)

// KYC verification states.
const (
	KycPending   = "pending"
	KycCompleted = "completed"
)

// ValidRole reports whether role is one of the recognised roles.
func ValidRole(role string) bool {
	switch role {
	case RoleCustomer, RoleAccount, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID          string
	Phone       string // optional; at least one of Phone/Email is set
	Email       string
	Name        string
	Surname     string
	IDNumber    string
	DateOfBirth string
	Role        string
	KycStatus   string
	LastLogin   *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
