package service

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/educonnect/portal/internal/portal/domain"
	"github.com/educonnect/portal/internal/portal/store/drivers/sqlite"
	"github.com/educonnect/portal/pkg/idx"
	"github.com/stretchr/testify/require"
)

// newTestStore opens an in-memory database with migrations (including the
// seeded pricing catalog) applied.
func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()

	store, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	require.NoError(t, store.ApplyMigrations())
	return store
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newAuthService(store *sqlite.Store) *AuthService {
	return &AuthService{
		Store:      store,
		Logger:     testLogger(),
		DemoMode:   true,
		OtpTTL:     10 * time.Minute,
		SessionTTL: 7 * 24 * time.Hour,
	}
}

// loginUser runs the full demo OTP flow and returns the session token and user.
func loginUser(t *testing.T, svc *AuthService, identifier string) (string, domain.User) {
	t.Helper()
	ctx := context.Background()

	result, err := svc.RequestOtp(ctx, identifier)
	require.NoError(t, err)
	require.NotEmpty(t, result.DemoCode)

	token, user, err := svc.VerifyOtp(ctx, identifier, result.DemoCode)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	return token, user
}

// seedUser ensures a user row exists for the given id so that FK-backed
// tables (solutions, orders) can reference it. Safe to call repeatedly with
// the same id.
func seedUser(t *testing.T, store *sqlite.Store, id string) domain.User {
	t.Helper()
	ctx := context.Background()

	if u, err := store.Users().GetUserByID(ctx, id); err == nil {
		return u
	}

	now := time.Now().UTC()
	u := domain.User{
		ID:        id,
		Phone:     id, // only needs to be unique
		Role:      domain.RoleCustomer,
		KycStatus: domain.KycPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, store.Users().CreateUser(ctx, u))
	return u
}

// seedSolution stores a solution directly, bypassing validation, for tests
// that need a specific status or owner.
func seedSolution(t *testing.T, store *sqlite.Store, userID, status string) domain.Solution {
	t.Helper()
	seedUser(t, store, userID)

	now := time.Now().UTC()
	sol := domain.Solution{
		ID:           string(idx.New()),
		UserID:       userID,
		SolutionType: domain.SolutionEduStudent,
		Name:         "Res room connectivity",
		Config:       domain.SolutionConfig{Prepaid: "10GB"},
		PriceOnceOff: 0,
		PriceMonthly: 99,
		TermMonths:   0,
		Status:       status,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, store.Solutions().CreateSolution(context.Background(), sol))
	return sol
}
