package http

import (
	"net/http"

	"github.com/educonnect/portal/internal/portal/service"
	"github.com/educonnect/portal/pkg/httpx"
	"github.com/educonnect/portal/pkg/portalsdk"
	"github.com/educonnect/portal/pkg/slogx"
)

type OrdersHandler struct {
	OrderService *service.OrderService
}

// HandleList returns the caller's orders, newest first.
//
//	@Summary	List orders
//	@Tags		Orders
//	@Security	BearerAuth
//	@Produce	json
//	@Success	200	{object}	portalsdk.OrdersResponse
//	@Failure	401	{object}	portalsdk.APIError	"Invalid or missing session token"
//	@Router		/api/orders [get].
func (h *OrdersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	orders, err := h.OrderService.List(ctx, httpx.UserIDFromCtx(ctx))
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, portalsdk.OrdersResponse{
		Success: true,
		Orders:  toOrderViews(orders),
	})
}

// HandleCreate places a pending order for one of the caller's solutions.
//
//	@Summary		Place an order
//	@Description	Amounts are copied from the solution's stored prices. The order number
//	@Description	follows the pattern EDU-{year}-{4 digits}.
//	@Tags			Orders
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		portalsdk.CreateOrderRequest	true	"Solution to order"
//	@Success		200		{object}	portalsdk.CreateOrderResponse
//	@Failure		401		{object}	portalsdk.APIError	"Invalid or missing session token"
//	@Failure		404		{object}	portalsdk.APIError	"Unknown or foreign solution"
//	@Router			/api/orders [post].
func (h *OrdersHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req portalsdk.CreateOrderRequest
	if err := decodeJSON(r, &req); err != nil {
		portalsdk.ErrInvalidInput.WriteError(w)
		return
	}

	order, err := h.OrderService.Create(ctx, httpx.UserIDFromCtx(ctx), req.SolutionID, req.PaymentMethod)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, portalsdk.CreateOrderResponse{
		Success:     true,
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
	})
}

// HandleGet returns one of the caller's orders with its solution.
//
//	@Summary	Get an order
//	@Tags		Orders
//	@Security	BearerAuth
//	@Produce	json
//	@Param		id	path		string	true	"Order id"
//	@Success	200	{object}	portalsdk.OrderResponse
//	@Failure	401	{object}	portalsdk.APIError	"Invalid or missing session token"
//	@Failure	404	{object}	portalsdk.APIError	"Unknown or foreign order"
//	@Router		/api/orders/{id} [get].
func (h *OrdersHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	order, err := h.OrderService.Get(ctx, httpx.UserIDFromCtx(ctx), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, portalsdk.OrderResponse{
		Success: true,
		Order:   toOrderView(order),
	})
}

// HandlePayment settles an order via the simulated payment provider.
//
//	@Summary		Process payment
//	@Description	The simulated provider always approves: the order is marked completed
//	@Description	and its solution becomes active.
//	@Tags			Orders
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Order id"
//	@Param			request	body		portalsdk.PaymentRequest	true	"Payment method"
//	@Success		200		{object}	portalsdk.MessageResponse
//	@Failure		401		{object}	portalsdk.APIError	"Invalid or missing session token"
//	@Failure		404		{object}	portalsdk.APIError	"Unknown or foreign order"
//	@Router			/api/orders/{id}/payment [post].
func (h *OrdersHandler) HandlePayment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req portalsdk.PaymentRequest
	if err := decodeJSON(r, &req); err != nil {
		portalsdk.ErrInvalidInput.WriteError(w)
		return
	}

	_, err := h.OrderService.ProcessPayment(ctx, httpx.UserIDFromCtx(ctx), r.PathValue("id"), req.PaymentMethod)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, portalsdk.MessageResponse{
		Success: true,
		Message: "payment processed",
	})
}
