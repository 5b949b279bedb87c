package http

import (
	"net/http"

	"github.com/educonnect/portal/internal/portal/service"
	"github.com/educonnect/portal/pkg/httpx"
	"github.com/educonnect/portal/pkg/portalsdk"
	"github.com/educonnect/portal/pkg/slogx"
)

type SolutionsHandler struct {
	SolutionService *service.SolutionService
}

func solutionInputFromRequest(req portalsdk.SolutionRequest) service.SolutionInput {
	return service.SolutionInput{
		SolutionType: req.SolutionType,
		Name:         req.Name,
		Address:      req.Address,
		CustomerName: req.CustomerName,
		Config:       toConfigDomain(req.Configuration),
		TermMonths:   req.TermMonths,
	}
}

// HandleList returns the caller's solutions, newest first.
//
//	@Summary	List solutions
//	@Tags		Solutions
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{object}	portalsdk.SolutionsResponse
//	@Failure	401	{object}	portalsdk.APIError	"Invalid or missing session token"
//	@Router		/api/solutions [get].
func (h *SolutionsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	solutions, err := h.SolutionService.List(ctx, httpx.UserIDFromCtx(ctx))
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, portalsdk.SolutionsResponse{
		Success:   true,
		Solutions: toSolutionViews(solutions),
	})
}

// HandleCreate validates, prices and stores a new draft solution.
//
//	@Summary		Create a solution
//	@Description	Validates the typed configuration against the solution type's eligible
//	@Description	products and prices it from the catalog; client prices are ignored.
//	@Tags			Solutions
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		portalsdk.SolutionRequest	true	"Solution configuration"
//	@Success		200		{object}	portalsdk.CreateSolutionResponse
//	@Failure		400		{object}	portalsdk.APIError	"Invalid type, term or configuration"
//	@Failure		401		{object}	portalsdk.APIError	"Invalid or missing session token"
//	@Router			/api/solutions [post].
func (h *SolutionsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req portalsdk.SolutionRequest
	if err := decodeJSON(r, &req); err != nil {
		portalsdk.ErrInvalidInput.WriteError(w)
		return
	}

	sol, err := h.SolutionService.Create(ctx, httpx.UserIDFromCtx(ctx), solutionInputFromRequest(req))
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, portalsdk.CreateSolutionResponse{
		Success:    true,
		SolutionID: sol.ID,
	})
}

// HandleGet returns one of the caller's solutions.
//
//	@Summary	Get a solution
//	@Tags		Solutions
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		string	true	"Solution id"
//	@Success	200	{object}	portalsdk.SolutionResponse
//	@Failure	401	{object}	portalsdk.APIError	"Invalid or missing session token"
//	@Failure	404	{object}	portalsdk.APIError	"Unknown or foreign solution"
//	@Router		/api/solutions/{id} [get].
func (h *SolutionsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	sol, err := h.SolutionService.Get(ctx, httpx.UserIDFromCtx(ctx), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, portalsdk.SolutionResponse{
		Success:  true,
		Solution: toSolutionView(sol),
	})
}

// HandleUpdate overwrites a draft solution.
//
//	@Summary		Update a solution
//	@Description	Only draft solutions are editable; the configuration is re-validated and
//	@Description	re-priced. The solution type is fixed at creation.
//	@Tags			Solutions
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Solution id"
//	@Param			request	body		portalsdk.SolutionRequest	true	"Replacement configuration"
//	@Success		200		{object}	portalsdk.SolutionResponse
//	@Failure		400		{object}	portalsdk.APIError	"Invalid configuration"
//	@Failure		401		{object}	portalsdk.APIError	"Invalid or missing session token"
//	@Failure		404		{object}	portalsdk.APIError	"Unknown or foreign solution"
//	@Failure		409		{object}	portalsdk.APIError	"Solution is not a draft"
//	@Router			/api/solutions/{id} [put].
func (h *SolutionsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req portalsdk.SolutionRequest
	if err := decodeJSON(r, &req); err != nil {
		portalsdk.ErrInvalidInput.WriteError(w)
		return
	}

	sol, err := h.SolutionService.Update(ctx, httpx.UserIDFromCtx(ctx), r.PathValue("id"), solutionInputFromRequest(req))
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, portalsdk.SolutionResponse{
		Success:  true,
		Solution: toSolutionView(sol),
	})
}

// HandleDelete removes a solution.
//
//	@Summary		Delete a solution
//	@Description	Active and offered solutions cannot be deleted.
//	@Tags			Solutions
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string	true	"Solution id"
//	@Success		200	{object}	portalsdk.MessageResponse
//	@Failure		401	{object}	portalsdk.APIError	"Invalid or missing session token"
//	@Failure		404	{object}	portalsdk.APIError	"Unknown or foreign solution"
//	@Failure		409	{object}	portalsdk.APIError	"Solution is active or an offer"
//	@Router			/api/solutions/{id} [delete].
func (h *SolutionsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	if err := h.SolutionService.Delete(ctx, httpx.UserIDFromCtx(ctx), r.PathValue("id")); err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, portalsdk.MessageResponse{
		Success: true,
		Message: "solution deleted",
	})
}
