package service

import (
	"context"
	"testing"
	"time"

	"github.com/educonnect/portal/internal/portal/domain"
	"github.com/educonnect/portal/pkg/cryptox"
	"github.com/educonnect/portal/pkg/idx"
	"github.com/stretchr/testify/require"
)

func TestRequestOtpValidatesIdentifier(t *testing.T) {
	svc := newAuthService(newTestStore(t))

	_, err := svc.RequestOtp(context.Background(), "   ")
	require.ErrorIs(t, err, ErrInvalidIdentifier)
}

func TestDemoOtpLoginCreatesUser(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService(newTestStore(t))

	result, err := svc.RequestOtp(ctx, "0821234567")
	require.NoError(t, err)
	require.Equal(t, DemoOtpCode, result.DemoCode)
	require.Equal(t, 10*time.Minute, result.ExpiresIn)

	token, user, err := svc.VerifyOtp(ctx, "0821234567", result.DemoCode)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.Equal(t, "0821234567", user.Phone)
	require.Empty(t, user.Email)
	require.Equal(t, domain.RoleCustomer, user.Role)
	require.Equal(t, domain.KycPending, user.KycStatus)
	require.NotNil(t, user.LastLogin)
}

func TestEmailIdentifierIsNormalized(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService(newTestStore(t))

	_, err := svc.RequestOtp(ctx, "  Student@Example.COM ")
	require.NoError(t, err)

	_, user, err := svc.VerifyOtp(ctx, "student@example.com", DemoOtpCode)
	require.NoError(t, err)
	require.Equal(t, "student@example.com", user.Email)
}

func TestVerifyOtpRejectsWrongCode(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService(newTestStore(t))

	_, err := svc.RequestOtp(ctx, "0821234567")
	require.NoError(t, err)

	_, _, err = svc.VerifyOtp(ctx, "0821234567", "999999")
	require.ErrorIs(t, err, ErrInvalidOrExpiredCode)
}

func TestVerifyOtpIsSingleUse(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService(newTestStore(t))

	result, err := svc.RequestOtp(ctx, "0821234567")
	require.NoError(t, err)

	_, _, err = svc.VerifyOtp(ctx, "0821234567", result.DemoCode)
	require.NoError(t, err)

	// Replaying the consumed code must fail.
	_, _, err = svc.VerifyOtp(ctx, "0821234567", result.DemoCode)
	require.ErrorIs(t, err, ErrInvalidOrExpiredCode)
}

func TestVerifyOtpRejectsExpiredCode(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	svc := newAuthService(store)

	// Plant an already-expired code directly.
	now := time.Now().UTC()
	require.NoError(t, store.OtpCodes().CreateOtpCode(ctx, domain.OtpCode{
		ID:         string(idx.New()),
		Identifier: "0821234567",
		CodeHash:   cryptox.FingerprintToken(DemoOtpCode),
		ExpiresAt:  now.Add(-time.Minute),
		CreatedAt:  now.Add(-11 * time.Minute),
	}))

	_, _, err := svc.VerifyOtp(ctx, "0821234567", DemoOtpCode)
	require.ErrorIs(t, err, ErrInvalidOrExpiredCode)
}

func TestWhitelistOverrideAppliesRoleAndSkipsKyc(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	svc := newAuthService(store)

	require.NoError(t, store.Whitelist().CreateEntry(ctx, domain.WhitelistEntry{
		ID:      string(idx.New()),
		Email:   "principal@school.example",
		Role:    "Admin", // stored with odd casing on purpose
		AddedAt: time.Now().UTC(),
	}))

	_, err := svc.RequestOtp(ctx, "principal@school.example")
	require.NoError(t, err)

	_, user, err := svc.VerifyOtp(ctx, "principal@school.example", DemoOtpCode)
	require.NoError(t, err)
	require.Equal(t, domain.RoleAdmin, user.Role)
	require.Equal(t, domain.KycCompleted, user.KycStatus)

	// The override is persisted, not just reflected in the return value.
	stored, err := store.Users().GetUserByIdentifier(ctx, "principal@school.example")
	require.NoError(t, err)
	require.Equal(t, domain.RoleAdmin, stored.Role)
	require.Equal(t, domain.KycCompleted, stored.KycStatus)
}

func TestNewLoginReplacesPreviousSession(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService(newTestStore(t))

	first, _ := loginUser(t, svc, "0821234567")
	second, _ := loginUser(t, svc, "0821234567")
	require.NotEqual(t, first, second)

	_, err := svc.ValidateSession(ctx, first)
	require.ErrorIs(t, err, ErrInvalidSession)

	user, err := svc.ValidateSession(ctx, second)
	require.NoError(t, err)
	require.Equal(t, "0821234567", user.Phone)
}

func TestValidateSessionRejectsUnknownToken(t *testing.T) {
	svc := newAuthService(newTestStore(t))

	_, err := svc.ValidateSession(context.Background(), "not-a-real-token")
	require.ErrorIs(t, err, ErrInvalidSession)
}

func TestValidateSessionRejectsExpiredToken(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	svc := newAuthService(store)

	_, user := loginUser(t, svc, "0821234567")

	// Replace the session with one that has already expired.
	token, err := cryptox.GenerateToken(cryptox.TokenSize256)
	require.NoError(t, err)
	require.NoError(t, store.Sessions().UpsertSession(ctx, domain.Session{
		ID:        string(idx.New()),
		UserID:    user.ID,
		TokenHash: cryptox.FingerprintToken(token),
		ExpiresAt: time.Now().UTC().Add(-time.Hour),
		CreatedAt: time.Now().UTC().Add(-8 * 24 * time.Hour),
	}))

	_, err = svc.ValidateSession(ctx, token)
	require.ErrorIs(t, err, ErrInvalidSession)
}

func TestLogoutInvalidatesSession(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService(newTestStore(t))

	token, _ := loginUser(t, svc, "0821234567")

	require.NoError(t, svc.Logout(ctx, token))
	_, err := svc.ValidateSession(ctx, token)
	require.ErrorIs(t, err, ErrInvalidSession)

	// Logout is idempotent.
	require.NoError(t, svc.Logout(ctx, token))
}

func TestSecondLoginReusesExistingUser(t *testing.T) {
	svc := newAuthService(newTestStore(t))

	_, first := loginUser(t, svc, "0821234567")
	_, second := loginUser(t, svc, "0821234567")
	require.Equal(t, first.ID, second.ID)
}
