package service

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/educonnect/portal/internal/portal/domain"
	"github.com/stretchr/testify/require"
)

var orderNumberPattern = regexp.MustCompile(`^EDU-\d{4}-\d{4}$`)

func TestCreateOrderCopiesSolutionPrices(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	svc := &OrderService{Store: store, Logger: testLogger()}

	sol := seedSolution(t, store, "user-1", domain.SolutionDraft)

	order, err := svc.Create(ctx, "user-1", sol.ID, "card")
	require.NoError(t, err)
	require.Regexp(t, orderNumberPattern, order.OrderNumber)
	require.Equal(t, domain.PaymentPending, order.PaymentStatus)
	require.Equal(t, sol.PriceOnceOff, order.AmountOnceOff)
	require.Equal(t, sol.PriceMonthly, order.AmountMonthly)
	require.Nil(t, order.PaymentDate)
}

func TestCreateOrderRejectsForeignSolution(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	svc := &OrderService{Store: store, Logger: testLogger()}

	sol := seedSolution(t, store, "user-1", domain.SolutionDraft)

	_, err := svc.Create(ctx, "user-2", sol.ID, "card")
	require.ErrorIs(t, err, ErrSolutionNotFound)

	_, err = svc.Create(ctx, "user-1", "no-such-id", "card")
	require.ErrorIs(t, err, ErrSolutionNotFound)
}

func TestGetOrderJoinsSolutionAndEnforcesOwnership(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	svc := &OrderService{Store: store, Logger: testLogger()}

	sol := seedSolution(t, store, "user-1", domain.SolutionDraft)
	order, err := svc.Create(ctx, "user-1", sol.ID, "card")
	require.NoError(t, err)

	got, err := svc.Get(ctx, "user-1", order.ID)
	require.NoError(t, err)
	require.Equal(t, sol.SolutionType, got.SolutionType)
	require.Equal(t, sol.Name, got.SolutionName)
	require.NotNil(t, got.Configuration)
	require.Equal(t, sol.Config, *got.Configuration)

	_, err = svc.Get(ctx, "user-2", order.ID)
	require.ErrorIs(t, err, ErrOrderNotFound)
}

func TestListOrdersScopedToOwner(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	svc := &OrderService{Store: store, Logger: testLogger()}

	mine := seedSolution(t, store, "user-1", domain.SolutionDraft)
	theirs := seedSolution(t, store, "user-2", domain.SolutionDraft)

	_, err := svc.Create(ctx, "user-1", mine.ID, "card")
	require.NoError(t, err)
	_, err = svc.Create(ctx, "user-2", theirs.ID, "eft")
	require.NoError(t, err)

	orders, err := svc.List(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, orders, 1)
	require.Equal(t, mine.ID, orders[0].SolutionID)
}

func TestProcessPaymentActivatesSolution(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	svc := &OrderService{Store: store, Logger: testLogger()}

	sol := seedSolution(t, store, "user-1", domain.SolutionDraft)
	order, err := svc.Create(ctx, "user-1", sol.ID, "")
	require.NoError(t, err)

	paid, err := svc.ProcessPayment(ctx, "user-1", order.ID, "card")
	require.NoError(t, err)
	require.Equal(t, domain.PaymentCompleted, paid.PaymentStatus)
	require.Equal(t, "card", paid.PaymentMethod)
	require.NotNil(t, paid.PaymentDate)
	require.WithinDuration(t, time.Now().UTC(), *paid.PaymentDate, time.Minute)

	activated, err := store.Solutions().GetSolutionByID(ctx, sol.ID)
	require.NoError(t, err)
	require.Equal(t, domain.SolutionActive, activated.Status)
}

func TestProcessPaymentIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	svc := &OrderService{Store: store, Logger: testLogger()}

	sol := seedSolution(t, store, "user-1", domain.SolutionDraft)
	order, err := svc.Create(ctx, "user-1", sol.ID, "card")
	require.NoError(t, err)

	_, err = svc.ProcessPayment(ctx, "user-1", order.ID, "card")
	require.NoError(t, err)

	again, err := svc.ProcessPayment(ctx, "user-1", order.ID, "eft")
	require.NoError(t, err)
	require.Equal(t, domain.PaymentCompleted, again.PaymentStatus)
}

func TestProcessPaymentRejectsForeignOrder(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	svc := &OrderService{Store: store, Logger: testLogger()}

	sol := seedSolution(t, store, "user-1", domain.SolutionDraft)
	order, err := svc.Create(ctx, "user-1", sol.ID, "card")
	require.NoError(t, err)

	_, err = svc.ProcessPayment(ctx, "user-2", order.ID, "card")
	require.ErrorIs(t, err, ErrOrderNotFound)
}
