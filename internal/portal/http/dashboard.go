package http

import (
	"net/http"

	"github.com/educonnect/portal/internal/portal/domain"
	"github.com/educonnect/portal/internal/portal/service"
	"github.com/educonnect/portal/pkg/httpx"
	"github.com/educonnect/portal/pkg/portalsdk"
	"github.com/educonnect/portal/pkg/slogx"
)

type DashboardHandler struct {
	AuthService      *service.AuthService
	SolutionService  *service.SolutionService
	WhitelistService *service.WhitelistService
	LibraryService   *service.LibraryService
}

// HandleData aggregates the dashboard payload in one round trip.
//
//	@Summary		Get dashboard data
//	@Description	Returns the caller's profile and solutions. Admins additionally receive
//	@Description	the pricing catalog and the whitelist.
//	@Tags			Dashboard
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	portalsdk.DashboardResponse
//	@Failure		401	{object}	portalsdk.APIError	"Invalid or missing session token"
//	@Router			/api/dashboard/data [get].
func (h *DashboardHandler) HandleData(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)
	userID := httpx.UserIDFromCtx(ctx)

	user, err := h.AuthService.GetUserByID(ctx, userID)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	solutions, err := h.SolutionService.List(ctx, userID)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	resp := portalsdk.DashboardResponse{
		Success:   true,
		User:      toUserView(user),
		Solutions: toSolutionViews(solutions),
	}

	if user.Role == domain.RoleAdmin {
		library, err := h.LibraryService.List(ctx)
		if err != nil {
			writeServiceError(w, log, err)
			return
		}
		whitelist, err := h.WhitelistService.List(ctx)
		if err != nil {
			writeServiceError(w, log, err)
			return
		}
		resp.SolutionLibrary = toLibraryViews(library)
		resp.Whitelist = toWhitelistViews(whitelist)
	}

	httpx.WriteJSON(w, http.StatusOK, resp)
}
