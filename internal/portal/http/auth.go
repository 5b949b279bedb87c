package http

import (
	"net/http"

	"github.com/educonnect/portal/internal/portal/service"
	"github.com/educonnect/portal/pkg/httpx"
	"github.com/educonnect/portal/pkg/portalsdk"
	"github.com/educonnect/portal/pkg/slogx"
)

type AuthHandler struct {
	AuthService *service.AuthService
}

// HandleRequestOtp issues a one-time passcode.
//
//	@Summary		Request a login passcode
//	@Description	Issues a one-time passcode for the given phone number or email address.
//	@Description	In demo mode the response includes the code; otherwise it is delivered out of band.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		portalsdk.RequestOtpRequest	true	"Identifier to send the code to"
//	@Success		200		{object}	portalsdk.RequestOtpResponse
//	@Failure		400		{object}	portalsdk.APIError	"Missing identifier"
//	@Failure		429		{object}	portalsdk.APIError	"Rate limit exceeded"
//	@Router			/api/auth/request-otp [post].
func (h *AuthHandler) HandleRequestOtp(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req portalsdk.RequestOtpRequest
	if err := decodeJSON(r, &req); err != nil {
		portalsdk.ErrInvalidInput.WriteError(w)
		return
	}

	result, err := h.AuthService.RequestOtp(ctx, req.PhoneOrEmail)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	resp := portalsdk.RequestOtpResponse{
		Success:   true,
		Message:   "verification code sent",
		DemoOtp:   result.DemoCode,
		ExpiresIn: int(result.ExpiresIn.Seconds()),
	}
	if result.DemoCode != "" {
		resp.Message = "demo mode: use the included verification code"
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandleVerifyOtp exchanges a passcode for a session token.
//
//	@Summary		Verify a login passcode
//	@Description	Consumes a passcode and returns the user plus a bearer session token.
//	@Description	First-time identifiers get a new customer account; whitelisted identifiers
//	@Description	receive their configured role. A fresh login replaces any previous session.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		portalsdk.VerifyOtpRequest	true	"Identifier and passcode"
//	@Success		200		{object}	portalsdk.VerifyOtpResponse
//	@Failure		401		{object}	portalsdk.APIError	"Invalid or expired code"
//	@Failure		429		{object}	portalsdk.APIError	"Rate limit exceeded"
//	@Router			/api/auth/verify-otp [post].
func (h *AuthHandler) HandleVerifyOtp(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req portalsdk.VerifyOtpRequest
	if err := decodeJSON(r, &req); err != nil {
		portalsdk.ErrInvalidInput.WriteError(w)
		return
	}

	token, user, err := h.AuthService.VerifyOtp(ctx, req.PhoneOrEmail, req.OtpCode)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, portalsdk.VerifyOtpResponse{
		Success:      true,
		Message:      "login successful",
		User:         toUserView(user),
		SessionToken: token,
	})
}

// HandleSession returns the current session's user.
//
//	@Summary	Get current session
//	@Tags		Auth
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{object}	portalsdk.SessionResponse
//	@Failure	401	{object}	portalsdk.APIError	"Invalid or missing session token"
//	@Router		/api/auth/session [get].
func (h *AuthHandler) HandleSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	user, err := h.AuthService.GetUserByID(ctx, httpx.UserIDFromCtx(ctx))
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, portalsdk.SessionResponse{
		Success: true,
		User:    toUserView(user),
	})
}

// HandleLogout deletes the caller's session.
//
//	@Summary		Log out
//	@Description	Deletes the session for the presented bearer token. Idempotent:
//	@Description	missing, stale or already-cleared tokens still return success.
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	portalsdk.MessageResponse
//	@Router			/api/auth/logout [post].
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	if err := h.AuthService.Logout(ctx, httpx.BearerToken(r)); err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, portalsdk.MessageResponse{
		Success: true,
		Message: "logged out",
	})
}
