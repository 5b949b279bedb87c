package portalsdk

import (
	"context"
	"net/http"
)

// Order operations - place orders for saved solutions and settle payment.

// ListOrders retrieves all orders owned by the session's user.
func (s *Session) ListOrders(ctx context.Context) (*OrdersResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/api/orders", nil, nil)
	if err != nil {
		return nil, err
	}

	var out OrdersResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}

	return &out, nil
}

// GetOrder retrieves one order by id, including its solution summary and
// configuration.
func (s *Session) GetOrder(ctx context.Context, id string) (*OrderResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/api/orders/"+id, nil, nil)
	if err != nil {
		return nil, err
	}

	var out OrderResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}

	return &out, nil
}

// CreateOrder places an order for a saved solution. Amounts are copied from
// the solution's stored prices.
func (s *Session) CreateOrder(ctx context.Context, req CreateOrderRequest) (*CreateOrderResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/api/orders", jsonBody(req), jsonHeaders())
	if err != nil {
		return nil, err
	}

	var out CreateOrderResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}

	return &out, nil
}

// ProcessPayment settles an order. On success the order is completed and its
// solution becomes active.
func (s *Session) ProcessPayment(ctx context.Context, orderID string, req PaymentRequest) error {
	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/api/orders/"+orderID+"/payment", jsonBody(req), jsonHeaders())
	if err != nil {
		return err
	}

	var out MessageResponse
	return decodeJSON(resp, &out, http.StatusOK)
}
