package http

import (
	"net/http"

	"github.com/educonnect/portal/internal/portal/service"
	"github.com/educonnect/portal/pkg/httpx"
	"github.com/educonnect/portal/pkg/portalsdk"
	"github.com/educonnect/portal/pkg/slogx"
)

type KycHandler struct {
	KycService *service.KycService
}

// HandleSubmit records a KYC submission for the caller.
//
//	@Summary		Submit identity verification
//	@Description	Stores the caller's identity details and document references and marks
//	@Description	verification as completed.
//	@Tags			KYC
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		portalsdk.KycSubmitRequest	true	"Identity details"
//	@Success		200		{object}	portalsdk.SessionResponse
//	@Failure		400		{object}	portalsdk.APIError	"Missing required fields"
//	@Failure		401		{object}	portalsdk.APIError	"Invalid or missing session token"
//	@Router			/api/kyc/submit [post].
func (h *KycHandler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req portalsdk.KycSubmitRequest
	if err := decodeJSON(r, &req); err != nil {
		portalsdk.ErrInvalidInput.WriteError(w)
		return
	}

	user, err := h.KycService.Submit(ctx, httpx.UserIDFromCtx(ctx), service.KycSubmission{
		Name:                req.Name,
		Surname:             req.Surname,
		IDNumber:            req.IDNumber,
		DateOfBirth:         req.DateOfBirth,
		InstitutionName:     req.InstitutionName,
		InstitutionRole:     req.InstitutionRole,
		StudentStaffID:      req.StudentStaffID,
		SelfieURL:           req.SelfieURL,
		IDDocumentURL:       req.IDDocumentURL,
		ProofOfResidenceURL: req.ProofOfResidenceURL,
	})
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, portalsdk.SessionResponse{
		Success: true,
		User:    toUserView(user),
	})
}
