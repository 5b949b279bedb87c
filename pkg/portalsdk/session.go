package portalsdk

import (
	"context"
	"net/http"
)

// Session represents an authenticated portal session bound to a bearer token.
// Create one via SDKClient.VerifyOtp or SDKClient.NewSessionFromToken.
type Session struct {
	client *SDKClient
	token  string
}

// Token returns the raw session token, e.g. for persisting across restarts.
func (s *Session) Token() string {
	return s.token
}

// CurrentUser retrieves the user bound to this session.
func (s *Session) CurrentUser(ctx context.Context) (*SessionResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/api/auth/session", nil, nil)
	if err != nil {
		return nil, err
	}

	var out SessionResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}

	return &out, nil
}

// Logout revokes the session server-side. The Session is unusable afterwards.
func (s *Session) Logout(ctx context.Context) error {
	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/api/auth/logout", nil, nil)
	if err != nil {
		return err
	}

	var out MessageResponse
	return decodeJSON(resp, &out, http.StatusOK)
}

// SubmitKyc submits identity verification details for the session's user.
func (s *Session) SubmitKyc(ctx context.Context, req KycSubmitRequest) (*SessionResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/api/kyc/submit", jsonBody(req), jsonHeaders())
	if err != nil {
		return nil, err
	}

	var out SessionResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}

	return &out, nil
}

// Dashboard retrieves the aggregated dashboard payload.
func (s *Session) Dashboard(ctx context.Context) (*DashboardResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/api/dashboard/data", nil, nil)
	if err != nil {
		return nil, err
	}

	var out DashboardResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}

	return &out, nil
}
