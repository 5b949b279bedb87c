package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/educonnect/portal/internal/portal/domain"
	"github.com/educonnect/portal/internal/portal/store"
	"github.com/educonnect/portal/pkg/cryptox"
	"github.com/educonnect/portal/pkg/idx"
)

var ErrOrderNotFound = errors.New("order not found")

// orderNumberAttempts bounds retries on an order number collision.
const orderNumberAttempts = 5

// OrderService turns solutions into orders and settles their payment.
type OrderService struct {
	Store  store.Store
	Logger *slog.Logger
}

// List returns the caller's orders joined with solution summaries, newest
// first.
func (s *OrderService) List(ctx context.Context, userID string) ([]domain.OrderWithSolution, error) {
	return s.Store.Orders().ListOrdersByUser(ctx, userID)
}

// Get returns one of the caller's orders with its parent solution.
func (s *OrderService) Get(ctx context.Context, userID, orderID string) (domain.OrderWithSolution, error) {
	order, err := s.Store.Orders().GetOrderWithSolution(ctx, orderID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.OrderWithSolution{}, ErrOrderNotFound
		}
		return domain.OrderWithSolution{}, err
	}
	if order.UserID != userID {
		return domain.OrderWithSolution{}, ErrOrderNotFound
	}
	return order, nil
}

// Create places a pending order for one of the caller's solutions. Amounts
// are copied from the solution's stored prices.
func (s *OrderService) Create(ctx context.Context, userID, solutionID, paymentMethod string) (domain.Order, error) {
	sol, err := s.Store.Solutions().GetSolutionByID(ctx, solutionID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Order{}, ErrSolutionNotFound
		}
		return domain.Order{}, err
	}
	if sol.UserID != userID {
		return domain.Order{}, ErrSolutionNotFound
	}

	now := time.Now().UTC()
	order := domain.Order{
		SolutionID:    solutionID,
		UserID:        userID,
		PaymentMethod: paymentMethod,
		PaymentStatus: domain.PaymentPending,
		AmountOnceOff: sol.PriceOnceOff,
		AmountMonthly: sol.PriceMonthly,
		CreatedAt:     now,
	}

	// Order numbers are short and human-friendly, so collisions are possible;
	// retry with a fresh suffix.
	for attempt := 0; attempt < orderNumberAttempts; attempt++ {
		number, err := newOrderNumber(now)
		if err != nil {
			return domain.Order{}, err
		}
		order.ID = string(idx.New())
		order.OrderNumber = number

		err = s.Store.Orders().CreateOrder(ctx, order)
		if err == nil {
			s.Logger.Info("order placed", "order_id", order.ID, "order_number", order.OrderNumber, "user_id", userID)
			return order, nil
		}
		if !errors.Is(err, store.ErrAlreadyExists) {
			return domain.Order{}, err
		}
	}
	return domain.Order{}, fmt.Errorf("could not allocate a unique order number")
}

// ProcessPayment settles an order. The simulated provider always approves:
// the order is marked completed and the parent solution becomes active, in
// one transaction. Paying an already-settled order refreshes the method and
// date but the visible outcome is the same.
func (s *OrderService) ProcessPayment(ctx context.Context, userID, orderID, paymentMethod string) (domain.Order, error) {
	if _, err := s.Get(ctx, userID, orderID); err != nil {
		return domain.Order{}, err
	}

	now := time.Now().UTC()
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		order, err := tx.Orders().GetOrderByID(ctx, orderID)
		if err != nil {
			return err
		}
		if err := tx.Orders().MarkOrderPaid(ctx, orderID, paymentMethod, now); err != nil {
			return err
		}
		return tx.Solutions().UpdateSolutionStatus(ctx, order.SolutionID, domain.SolutionActive)
	})
	if err != nil {
		return domain.Order{}, err
	}

	s.Logger.Info("payment processed", "order_id", orderID, "method", paymentMethod)
	return s.Store.Orders().GetOrderByID(ctx, orderID)
}

// newOrderNumber builds EDU-<year>-<4 digits>.
func newOrderNumber(now time.Time) (string, error) {
	suffix, err := cryptox.GenerateNumericCode(4)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("EDU-%d-%s", now.Year(), suffix), nil
}
