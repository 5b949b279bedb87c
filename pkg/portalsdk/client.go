package portalsdk

import (
	"context"
	"net/http"
	"strings"
	"time"
)

// SDKClient is a client for the EduConnect portal API.
// It provides access to unauthenticated operations and can create
// authenticated Sessions via the OTP login flow.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewSDKClient creates a new portal client.
func NewSDKClient(baseURL string) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// RequestOtp asks the server to issue a one-time passcode for the identifier.
func (c *SDKClient) RequestOtp(ctx context.Context, req RequestOtpRequest) (*RequestOtpResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/api/auth/request-otp", jsonBody(req), jsonHeaders())
	if err != nil {
		return nil, err
	}

	var out RequestOtpResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}

	return &out, nil
}

// VerifyOtp exchanges a passcode for an authenticated Session.
func (c *SDKClient) VerifyOtp(ctx context.Context, req VerifyOtpRequest) (*Session, *VerifyOtpResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/api/auth/verify-otp", jsonBody(req), jsonHeaders())
	if err != nil {
		return nil, nil, err
	}

	var out VerifyOtpResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, nil, err
	}

	return c.NewSessionFromToken(out.SessionToken), &out, nil
}

// NewSessionFromToken creates an authenticated session from an existing
// session token. This is useful when the token was stored from a previous
// login.
func (c *SDKClient) NewSessionFromToken(token string) *Session {
	return &Session{
		client: c,
		token:  token,
	}
}

// Livez calls the liveness probe.
func (c *SDKClient) Livez(ctx context.Context) (*HealthResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/livez", nil, nil)
	if err != nil {
		return nil, err
	}

	var out HealthResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}

	return &out, nil
}

// Readyz calls the readiness probe.
func (c *SDKClient) Readyz(ctx context.Context) (*HealthResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/readyz", nil, nil)
	if err != nil {
		return nil, err
	}

	var out HealthResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}

	return &out, nil
}
