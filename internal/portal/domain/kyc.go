package domain

import "time"

// KycDocument records one identity-verification submission. Submissions are
// append-only: resubmitting creates a new row rather than mutating history.
type KycDocument struct {
	ID                  string
	UserID              string
	InstitutionName     string
	InstitutionRole     string
	StudentStaffID      string
	SelfieURL           string
	IDDocumentURL       string
	ProofOfResidenceURL string
	VerificationStatus  string
	CreatedAt           time.Time
}
