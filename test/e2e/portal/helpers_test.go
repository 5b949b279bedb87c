package portal_test

import (
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/educonnect/portal/internal/portal/domain"
	httpapi "github.com/educonnect/portal/internal/portal/http"
	"github.com/educonnect/portal/internal/portal/notify"
	"github.com/educonnect/portal/internal/portal/service"
	"github.com/educonnect/portal/internal/portal/store/drivers/sqlite"
	"github.com/educonnect/portal/pkg/idx"
	"github.com/educonnect/portal/pkg/portalsdk"
	"github.com/stretchr/testify/require"
)

/*
 * Common helper functions for portal end-to-end tests. Each test gets a
 * fully wired portal over an in-memory database, served via httptest, and
 * talks to it exclusively through the SDK.
 */

const adminEmail = "admin@educonnect.example"

// setupPortal wires the full service stack on an in-memory database and
// returns an SDK client pointed at it, plus the store for test seeding.
func setupPortal(t *testing.T) (*portalsdk.SDKClient, *sqlite.Store) {
	t.Helper()

	store, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	require.NoError(t, store.ApplyMigrations())

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	authService := &service.AuthService{
		Store:      store,
		Notifier:   notify.NewLoggerNotifier(logger),
		Logger:     logger,
		DemoMode:   true,
		OtpTTL:     10 * time.Minute,
		SessionTTL: 7 * 24 * time.Hour,
	}
	pricingService := &service.PricingService{Store: store}

	router := httpapi.NewRouter("test", store, logger)
	router.AuthService = authService
	router.KycService = &service.KycService{Store: store, Logger: logger}
	router.SolutionService = &service.SolutionService{Store: store, Pricing: pricingService, Logger: logger}
	router.OrderService = &service.OrderService{Store: store, Logger: logger}
	router.WhitelistService = &service.WhitelistService{Store: store, Logger: logger}
	router.LibraryService = &service.LibraryService{Store: store, Logger: logger}
	router.ApplyRoutes()

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return portalsdk.NewSDKClient(server.URL), store
}

// performLogin runs the demo OTP flow for the identifier and returns an
// authenticated session.
func performLogin(t *testing.T, client *portalsdk.SDKClient, identifier string) *portalsdk.Session {
	t.Helper()
	ctx := context.Background()

	otpResp, err := client.RequestOtp(ctx, portalsdk.RequestOtpRequest{PhoneOrEmail: identifier})
	require.NoError(t, err, "OTP request should succeed")
	require.True(t, otpResp.Success)
	require.NotEmpty(t, otpResp.DemoOtp, "demo mode should return the code")

	session, verifyResp, err := client.VerifyOtp(ctx, portalsdk.VerifyOtpRequest{
		PhoneOrEmail: identifier,
		OtpCode:      otpResp.DemoOtp,
	})
	require.NoError(t, err, "OTP verification should succeed")
	require.NotNil(t, session)
	require.NotEmpty(t, verifyResp.SessionToken)

	return session
}

// loginAdmin whitelists adminEmail with the admin role and logs in with it.
func loginAdmin(t *testing.T, client *portalsdk.SDKClient, store *sqlite.Store) *portalsdk.Session {
	t.Helper()

	err := store.Whitelist().CreateEntry(context.Background(), domain.WhitelistEntry{
		ID:      string(idx.New()),
		Email:   adminEmail,
		Role:    domain.RoleAdmin,
		AddedAt: time.Now().UTC(),
	})
	require.NoError(t, err)

	return performLogin(t, client, adminEmail)
}

// createStudentSolution saves a priced EduStudent draft and returns its id.
func createStudentSolution(t *testing.T, session *portalsdk.Session) string {
	t.Helper()

	created, err := session.CreateSolution(context.Background(), portalsdk.SolutionRequest{
		SolutionType: "EduStudent",
		Name:         "Res room connectivity",
		Configuration: portalsdk.SolutionConfig{
			Prepaid:  "10GB",
			Services: []string{"ai-tutor"},
		},
		TermMonths: 12,
	})
	require.NoError(t, err)
	require.True(t, created.Success)
	require.NotEmpty(t, created.SolutionID)

	return created.SolutionID
}

// assertAPIError checks that err is an *APIError with the given status and code.
func assertAPIError(t *testing.T, err error, statusCode int, code string) {
	t.Helper()

	require.Error(t, err)
	apiErr, ok := err.(*portalsdk.APIError)
	require.True(t, ok, "expected *portalsdk.APIError, got %T: %v", err, err)
	require.Equal(t, statusCode, apiErr.StatusCode)
	require.Equal(t, code, apiErr.Code)
	require.False(t, apiErr.Success)
}
