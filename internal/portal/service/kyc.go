package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/educonnect/portal/internal/portal/domain"
	"github.com/educonnect/portal/internal/portal/store"
	"github.com/educonnect/portal/pkg/idx"
)

var ErrMissingKycFields = errors.New("name, surname, id number and date of birth are required")

// KycSubmission carries the identity details and document references captured
// by the onboarding flow. Document URLs point at client-uploaded artifacts.
type KycSubmission struct {
	Name        string
	Surname     string
	IDNumber    string
	DateOfBirth string

	InstitutionName string
	InstitutionRole string
	StudentStaffID  string

	SelfieURL           string
	IDDocumentURL       string
	ProofOfResidenceURL string
}

// KycService records identity verification submissions.
type KycService struct {
	Store  store.Store
	Logger *slog.Logger
}

// Submit stores the caller's identity details and marks verification as
// completed. Profile update and document row are written in one transaction.
func (s *KycService) Submit(ctx context.Context, userID string, sub KycSubmission) (domain.User, error) {
	sub.Name = strings.TrimSpace(sub.Name)
	sub.Surname = strings.TrimSpace(sub.Surname)
	sub.IDNumber = strings.TrimSpace(sub.IDNumber)
	sub.DateOfBirth = strings.TrimSpace(sub.DateOfBirth)
	if sub.Name == "" || sub.Surname == "" || sub.IDNumber == "" || sub.DateOfBirth == "" {
		return domain.User{}, ErrMissingKycFields
	}

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		err := tx.Users().UpdateKycProfile(ctx, userID, sub.Name, sub.Surname,
			sub.IDNumber, sub.DateOfBirth, domain.KycCompleted)
		if err != nil {
			return err
		}

		return tx.KycDocuments().CreateDocument(ctx, domain.KycDocument{
			ID:                  string(idx.New()),
			UserID:              userID,
			InstitutionName:     sub.InstitutionName,
			InstitutionRole:     sub.InstitutionRole,
			StudentStaffID:      sub.StudentStaffID,
			SelfieURL:           sub.SelfieURL,
			IDDocumentURL:       sub.IDDocumentURL,
			ProofOfResidenceURL: sub.ProofOfResidenceURL,
			VerificationStatus:  domain.KycCompleted,
			CreatedAt:           time.Now().UTC(),
		})
	})
	if err != nil {
		return domain.User{}, err
	}

	s.Logger.Info("kyc submission recorded", "user_id", userID)
	return s.Store.Users().GetUserByID(ctx, userID)
}

// Documents lists the caller's submissions, newest first.
func (s *KycService) Documents(ctx context.Context, userID string) ([]domain.KycDocument, error) {
	return s.Store.KycDocuments().ListDocumentsByUser(ctx, userID)
}
