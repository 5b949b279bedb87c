package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/educonnect/portal/internal/portal/domain"
	"github.com/educonnect/portal/internal/portal/notify"
	"github.com/educonnect/portal/internal/portal/store"
	"github.com/educonnect/portal/pkg/cryptox"
	"github.com/educonnect/portal/pkg/idx"
)

var (
	ErrInvalidIdentifier    = errors.New("phone or email is required")
	ErrInvalidOrExpiredCode = errors.New("invalid or expired verification code")
	ErrInvalidSession       = errors.New("invalid or expired session")
)

// DemoOtpCode is the fixed passcode issued when demo mode is enabled, so the
// portal can be exercised without a mail or SMS gateway.
const DemoOtpCode = "123456"

// AuthService implements passwordless OTP login and session management.
type AuthService struct {
	Store    store.Store
	Notifier notify.Notifier
	Logger   *slog.Logger

	// DemoMode issues the fixed demo code instead of dispatching real ones.
	DemoMode   bool
	OtpTTL     time.Duration
	SessionTTL time.Duration
}

// OtpRequestResult reports an issued passcode. DemoCode is populated only in
// demo mode; production callers receive the code out of band.
type OtpRequestResult struct {
	DemoCode  string
	ExpiresIn time.Duration
}

// RequestOtp issues a one-time passcode for the given phone number or email
// address. Only the code's fingerprint is stored.
func (s *AuthService) RequestOtp(ctx context.Context, identifier string) (OtpRequestResult, error) {
	identifier = normalizeIdentifier(identifier)
	if identifier == "" {
		return OtpRequestResult{}, ErrInvalidIdentifier
	}

	code := DemoOtpCode
	if !s.DemoMode {
		generated, err := cryptox.GenerateNumericCode(6)
		if err != nil {
			return OtpRequestResult{}, err
		}
		code = generated
	}

	now := time.Now().UTC()
	err := s.Store.OtpCodes().CreateOtpCode(ctx, domain.OtpCode{
		ID:         string(idx.New()),
		Identifier: identifier,
		CodeHash:   cryptox.FingerprintToken(code),
		ExpiresAt:  now.Add(s.OtpTTL),
		CreatedAt:  now,
	})
	if err != nil {
		return OtpRequestResult{}, err
	}

	result := OtpRequestResult{ExpiresIn: s.OtpTTL}
	if s.DemoMode {
		result.DemoCode = code
		s.Logger.Info("demo otp issued", "identifier", identifier)
		return result, nil
	}

	err = s.Notifier.Send(ctx, notify.Message{
		Kind:        notify.KindOtp,
		Destination: identifier,
		Subject:     "Your EduConnect verification code",
		Body:        fmt.Sprintf("Your EduConnect verification code is %s. It expires in %d minutes.", code, int(s.OtpTTL.Minutes())),
	})
	if err != nil {
		return OtpRequestResult{}, err
	}

	return result, nil
}

// VerifyOtp consumes a passcode and logs the caller in. On success the user
// is created if unseen, whitelist overrides are applied, and a fresh session
// token replaces any previous one. Everything happens in one transaction.
func (s *AuthService) VerifyOtp(ctx context.Context, identifier, code string) (string, domain.User, error) {
	identifier = normalizeIdentifier(identifier)
	if identifier == "" || code == "" {
		return "", domain.User{}, ErrInvalidOrExpiredCode
	}

	token, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		return "", domain.User{}, err
	}

	now := time.Now().UTC()
	var user domain.User

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		otp, err := tx.OtpCodes().GetLatestActiveOtpCode(ctx, identifier,
			cryptox.FingerprintToken(code), now)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrInvalidOrExpiredCode
			}
			return err
		}
		if err := tx.OtpCodes().MarkOtpCodeVerified(ctx, otp.ID); err != nil {
			return err
		}

		user, err = tx.Users().GetUserByIdentifier(ctx, identifier)
		if errors.Is(err, store.ErrNotFound) {
			user = newUserForIdentifier(identifier, now)
			if err := tx.Users().CreateUser(ctx, user); err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		// Whitelisted identifiers get their configured role and skip KYC.
		entry, err := tx.Whitelist().GetEntryByIdentifier(ctx, identifier)
		if err == nil {
			role := strings.ToLower(entry.Role)
			if domain.ValidRole(role) && (user.Role != role || user.KycStatus != domain.KycCompleted) {
				if err := tx.Users().UpdateRoleAndKycStatus(ctx, user.ID, role, domain.KycCompleted); err != nil {
					return err
				}
				user.Role = role
				user.KycStatus = domain.KycCompleted
			}
		} else if !errors.Is(err, store.ErrNotFound) {
			return err
		}

		err = tx.Sessions().UpsertSession(ctx, domain.Session{
			ID:        string(idx.New()),
			UserID:    user.ID,
			TokenHash: cryptox.FingerprintToken(token),
			ExpiresAt: now.Add(s.SessionTTL),
			CreatedAt: now,
		})
		if err != nil {
			return err
		}

		if err := tx.Users().TouchLastLogin(ctx, user.ID, now); err != nil {
			return err
		}
		user.LastLogin = &now
		return nil
	})
	if err != nil {
		return "", domain.User{}, err
	}

	s.Logger.Info("user logged in", "user_id", user.ID, "role", user.Role)
	return token, user, nil
}

// ValidateSession resolves a bearer token to its user. Expired or unknown
// tokens return ErrInvalidSession.
func (s *AuthService) ValidateSession(ctx context.Context, token string) (domain.User, error) {
	sess, err := s.Store.Sessions().GetSessionByTokenHash(ctx, cryptox.FingerprintToken(token))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrInvalidSession
		}
		return domain.User{}, err
	}
	if time.Now().UTC().After(sess.ExpiresAt) {
		return domain.User{}, ErrInvalidSession
	}

	user, err := s.Store.Users().GetUserByID(ctx, sess.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrInvalidSession
		}
		return domain.User{}, err
	}
	return user, nil
}

// Logout deletes the session for the given token. Unknown tokens are a no-op.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.Store.Sessions().DeleteSessionByTokenHash(ctx, cryptox.FingerprintToken(token))
}

// GetUserByID fetches a user by id.
func (s *AuthService) GetUserByID(ctx context.Context, userID string) (domain.User, error) {
	return s.Store.Users().GetUserByID(ctx, userID)
}

func normalizeIdentifier(identifier string) string {
	identifier = strings.TrimSpace(identifier)
	if strings.Contains(identifier, "@") {
		return strings.ToLower(identifier)
	}
	return identifier
}

func newUserForIdentifier(identifier string, now time.Time) domain.User {
	u := domain.User{
		ID:        string(idx.New()),
		Role:      domain.RoleCustomer,
		KycStatus: domain.KycPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if strings.Contains(identifier, "@") {
		u.Email = identifier
	} else {
		u.Phone = identifier
	}
	return u
}
