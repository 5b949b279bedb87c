package http

import (
	"net/http"

	"github.com/educonnect/portal/internal/portal/service"
	"github.com/educonnect/portal/pkg/httpx"
	"github.com/educonnect/portal/pkg/portalsdk"
	"github.com/educonnect/portal/pkg/slogx"
)

type WhitelistHandler struct {
	WhitelistService *service.WhitelistService
}

// HandleList returns all whitelist entries.
//
//	@Summary	List whitelist entries
//	@Tags		Admin
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{object}	portalsdk.WhitelistResponse
//	@Failure	401	{object}	portalsdk.APIError	"Invalid or missing session token"
//	@Failure	403	{object}	portalsdk.APIError	"Caller is not an admin"
//	@Router		/api/admin/whitelist [get].
func (h *WhitelistHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	entries, err := h.WhitelistService.List(ctx)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, portalsdk.WhitelistResponse{
		Success:   true,
		Whitelist: toWhitelistViews(entries),
	})
}

// HandleAdd pre-approves a phone or email with a role.
//
//	@Summary		Add a whitelist entry
//	@Description	Requires at least one of phone/email and a valid role.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		portalsdk.WhitelistAddRequest	true	"Entry to add"
//	@Success		200		{object}	portalsdk.WhitelistEntryResponse
//	@Failure		400		{object}	portalsdk.APIError	"Missing identifier, bad role or duplicate"
//	@Failure		401		{object}	portalsdk.APIError	"Invalid or missing session token"
//	@Failure		403		{object}	portalsdk.APIError	"Caller is not an admin"
//	@Router			/api/admin/whitelist [post].
func (h *WhitelistHandler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req portalsdk.WhitelistAddRequest
	if err := decodeJSON(r, &req); err != nil {
		portalsdk.ErrInvalidInput.WriteError(w)
		return
	}

	entry, err := h.WhitelistService.Add(ctx, req.Phone, req.Email, req.Role, httpx.UserIDFromCtx(ctx))
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, portalsdk.WhitelistEntryResponse{
		Success: true,
		Entry:   toWhitelistView(entry),
	})
}

// HandleDelete removes a whitelist entry.
//
//	@Summary	Delete a whitelist entry
//	@Tags		Admin
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		string	true	"Entry id"
//	@Success	200	{object}	portalsdk.MessageResponse
//	@Failure	401	{object}	portalsdk.APIError	"Invalid or missing session token"
//	@Failure	403	{object}	portalsdk.APIError	"Caller is not an admin"
//	@Router		/api/admin/whitelist/{id} [delete].
func (h *WhitelistHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	if err := h.WhitelistService.Remove(ctx, r.PathValue("id")); err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, portalsdk.MessageResponse{
		Success: true,
		Message: "whitelist entry removed",
	})
}

// HandleExport streams the whitelist as CSV.
//
//	@Summary	Export the whitelist as CSV
//	@Tags		Admin
//	@Security	BearerAuth
//	@Produce	text/csv
//	@Success	200	{string}	string	"phone,email,role,added_at"
//	@Failure	401	{object}	portalsdk.APIError	"Invalid or missing session token"
//	@Failure	403	{object}	portalsdk.APIError	"Caller is not an admin"
//	@Router		/api/admin/whitelist/export [get].
func (h *WhitelistHandler) HandleExport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="whitelist.csv"`)

	if err := h.WhitelistService.ExportCSV(ctx, w); err != nil {
		log.Error("whitelist export failed", "err", err)
	}
}

// HandleImport bulk-loads whitelist entries from an uploaded CSV file.
//
//	@Summary		Import whitelist entries from CSV
//	@Description	Expects a multipart form with a "file" part containing phone,email,role
//	@Description	rows. Malformed rows and duplicates are skipped; the response reports how
//	@Description	many entries were inserted.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			file	formData	file	true	"CSV file"
//	@Success		200		{object}	portalsdk.ImportResponse
//	@Failure		400		{object}	portalsdk.APIError	"Missing file part"
//	@Failure		401		{object}	portalsdk.APIError	"Invalid or missing session token"
//	@Failure		403		{object}	portalsdk.APIError	"Caller is not an admin"
//	@Router			/api/admin/whitelist/import [post].
func (h *WhitelistHandler) HandleImport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	file, _, err := r.FormFile("file")
	if err != nil {
		portalsdk.ErrInvalidInput.WithMessage("a CSV file part named \"file\" is required").WriteError(w)
		return
	}
	defer file.Close()

	imported, err := h.WhitelistService.ImportCSV(ctx, file, httpx.UserIDFromCtx(ctx))
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, portalsdk.ImportResponse{
		Success:  true,
		Imported: imported,
	})
}
