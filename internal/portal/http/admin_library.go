package http

import (
	"net/http"

	"github.com/educonnect/portal/internal/portal/domain"
	"github.com/educonnect/portal/internal/portal/service"
	"github.com/educonnect/portal/pkg/httpx"
	"github.com/educonnect/portal/pkg/portalsdk"
	"github.com/educonnect/portal/pkg/slogx"
)

type LibraryHandler struct {
	LibraryService *service.LibraryService
}

func libraryProductFromRequest(req portalsdk.LibraryProductRequest) domain.LibraryProduct {
	return domain.LibraryProduct{
		Solution:        req.Solution,
		Product:         req.Product,
		Options:         req.Options,
		Prices:          req.Prices,
		OnceOff:         req.OnceOff,
		MonthOnMonth:    req.MonthOnMonth,
		Discount6Mth:    req.Discount6Mth,
		Discount12Mth:   req.Discount12Mth,
		Discount24Mth:   req.Discount24Mth,
		DiscountCode:    req.DiscountCode,
		DiscountPercent: req.DiscountPercent,
	}
}

// HandleList returns the pricing catalog.
//
//	@Summary	List catalog products
//	@Tags		Admin
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{object}	portalsdk.LibraryResponse
//	@Failure	401	{object}	portalsdk.APIError	"Invalid or missing session token"
//	@Failure	403	{object}	portalsdk.APIError	"Caller is not an admin"
//	@Router		/api/admin/library [get].
func (h *LibraryHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	products, err := h.LibraryService.List(ctx)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, portalsdk.LibraryResponse{
		Success: true,
		Library: toLibraryViews(products),
	})
}

// HandleCreate inserts a catalog product.
//
//	@Summary	Create a catalog product
//	@Tags		Admin
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		request	body		portalsdk.LibraryProductRequest	true	"Product row"
//	@Success	200		{object}	portalsdk.LibraryProductResponse
//	@Failure	400		{object}	portalsdk.APIError	"Missing solution or product name"
//	@Failure	401		{object}	portalsdk.APIError	"Invalid or missing session token"
//	@Failure	403		{object}	portalsdk.APIError	"Caller is not an admin"
//	@Router		/api/admin/library [post].
func (h *LibraryHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req portalsdk.LibraryProductRequest
	if err := decodeJSON(r, &req); err != nil {
		portalsdk.ErrInvalidInput.WriteError(w)
		return
	}

	product, err := h.LibraryService.Create(ctx, libraryProductFromRequest(req))
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, portalsdk.LibraryProductResponse{
		Success: true,
		Product: toLibraryView(product),
	})
}

// HandleUpdate overwrites a catalog product.
//
//	@Summary	Update a catalog product
//	@Tags		Admin
//	@Security	BearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string							true	"Product id"
//	@Param		request	body		portalsdk.LibraryProductRequest	true	"Replacement row"
//	@Success	200		{object}	portalsdk.LibraryProductResponse
//	@Failure	400		{object}	portalsdk.APIError	"Missing solution or product name"
//	@Failure	401		{object}	portalsdk.APIError	"Invalid or missing session token"
//	@Failure	403		{object}	portalsdk.APIError	"Caller is not an admin"
//	@Router		/api/admin/library/{id} [put].
func (h *LibraryHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req portalsdk.LibraryProductRequest
	if err := decodeJSON(r, &req); err != nil {
		portalsdk.ErrInvalidInput.WriteError(w)
		return
	}

	product, err := h.LibraryService.Update(ctx, r.PathValue("id"), libraryProductFromRequest(req))
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, portalsdk.LibraryProductResponse{
		Success: true,
		Product: toLibraryView(product),
	})
}

// HandleDelete removes a catalog product.
//
//	@Summary	Delete a catalog product
//	@Tags		Admin
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		string	true	"Product id"
//	@Success	200	{object}	portalsdk.MessageResponse
//	@Failure	401	{object}	portalsdk.APIError	"Invalid or missing session token"
//	@Failure	403	{object}	portalsdk.APIError	"Caller is not an admin"
//	@Router		/api/admin/library/{id} [delete].
func (h *LibraryHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	if err := h.LibraryService.Delete(ctx, r.PathValue("id")); err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, portalsdk.MessageResponse{
		Success: true,
		Message: "catalog product removed",
	})
}

// HandleExport streams the catalog as CSV in the fixed 19 column schema.
//
//	@Summary	Export the catalog as CSV
//	@Tags		Admin
//	@Security	BearerAuth
//	@Produce	text/csv
//	@Success	200	{string}	string	"solution,product,option1..5,price1..5,..."
//	@Failure	401	{object}	portalsdk.APIError	"Invalid or missing session token"
//	@Failure	403	{object}	portalsdk.APIError	"Caller is not an admin"
//	@Router		/api/admin/library/export [get].
func (h *LibraryHandler) HandleExport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="solution_library.csv"`)

	if err := h.LibraryService.ExportCSV(ctx, w); err != nil {
		log.Error("library export failed", "err", err)
	}
}

// HandleImport bulk-loads catalog rows from an uploaded CSV file.
//
//	@Summary		Import catalog products from CSV
//	@Description	Expects a multipart form with a "file" part in the fixed 19 column schema.
//	@Description	Rows missing a solution or product are skipped; existing (solution, product)
//	@Description	rows are updated in place.
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			file	formData	file	true	"CSV file"
//	@Success		200		{object}	portalsdk.ImportResponse
//	@Failure		400		{object}	portalsdk.APIError	"Missing file part"
//	@Failure		401		{object}	portalsdk.APIError	"Invalid or missing session token"
//	@Failure		403		{object}	portalsdk.APIError	"Caller is not an admin"
//	@Router			/api/admin/library/import [post].
func (h *LibraryHandler) HandleImport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	file, _, err := r.FormFile("file")
	if err != nil {
		portalsdk.ErrInvalidInput.WithMessage("a CSV file part named \"file\" is required").WriteError(w)
		return
	}
	defer file.Close()

	imported, err := h.LibraryService.ImportCSV(ctx, file)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, portalsdk.ImportResponse{
		Success:  true,
		Imported: imported,
	})
}
