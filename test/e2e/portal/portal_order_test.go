package portal_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/educonnect/portal/pkg/portalsdk"
	"github.com/stretchr/testify/require"
)

func TestOrderAndPaymentJourney(t *testing.T) {
	client, _ := setupPortal(t)
	ctx := context.Background()

	session := performLogin(t, client, "0824440001")
	solutionID := createStudentSolution(t, session)

	order, err := session.CreateOrder(ctx, portalsdk.CreateOrderRequest{
		SolutionID:    solutionID,
		PaymentMethod: "card",
	})
	require.NoError(t, err)
	require.True(t, order.Success)
	require.Regexp(t, `^EDU-\d{4}-\d{4}$`, order.OrderNumber)

	detail, err := session.GetOrder(ctx, order.OrderID)
	require.NoError(t, err)
	require.Equal(t, "pending", detail.Order.PaymentStatus)
	require.Equal(t, 115.0, detail.Order.AmountMonthly)
	require.Equal(t, "Res room connectivity", detail.Order.SolutionName)
	require.NotNil(t, detail.Order.Configuration)
	require.Equal(t, "10GB", detail.Order.Configuration.Prepaid)

	require.NoError(t, session.ProcessPayment(ctx, order.OrderID,
		portalsdk.PaymentRequest{PaymentMethod: "card"}))

	paid, err := session.GetOrder(ctx, order.OrderID)
	require.NoError(t, err)
	require.Equal(t, "completed", paid.Order.PaymentStatus)
	require.NotNil(t, paid.Order.PaymentDate)

	// Payment activates the parent solution.
	sol, err := session.GetSolution(ctx, solutionID)
	require.NoError(t, err)
	require.Equal(t, "active", sol.Solution.Status)
}

func TestOrderListScopedToOwner(t *testing.T) {
	client, _ := setupPortal(t)
	ctx := context.Background()

	owner := performLogin(t, client, "0824440002")
	other := performLogin(t, client, "0824440003")

	solutionID := createStudentSolution(t, owner)
	order, err := owner.CreateOrder(ctx, portalsdk.CreateOrderRequest{SolutionID: solutionID})
	require.NoError(t, err)

	mine, err := owner.ListOrders(ctx)
	require.NoError(t, err)
	require.Len(t, mine.Orders, 1)

	theirs, err := other.ListOrders(ctx)
	require.NoError(t, err)
	require.Empty(t, theirs.Orders)

	_, err = other.GetOrder(ctx, order.OrderID)
	assertAPIError(t, err, http.StatusNotFound, portalsdk.ErrorCodeNotFound)

	err = other.ProcessPayment(ctx, order.OrderID, portalsdk.PaymentRequest{PaymentMethod: "card"})
	assertAPIError(t, err, http.StatusNotFound, portalsdk.ErrorCodeNotFound)
}

func TestOrderRequiresOwnSolution(t *testing.T) {
	client, _ := setupPortal(t)
	ctx := context.Background()

	session := performLogin(t, client, "0824440004")

	_, err := session.CreateOrder(ctx, portalsdk.CreateOrderRequest{SolutionID: "no-such-id"})
	assertAPIError(t, err, http.StatusNotFound, portalsdk.ErrorCodeNotFound)
}

func TestDashboardAggregates(t *testing.T) {
	client, store := setupPortal(t)
	ctx := context.Background()

	customer := performLogin(t, client, "0824440005")
	createStudentSolution(t, customer)

	dash, err := customer.Dashboard(ctx)
	require.NoError(t, err)
	require.Equal(t, "0824440005", dash.User.Phone)
	require.Len(t, dash.Solutions, 1)

	// Customers never receive the catalog or whitelist.
	require.Empty(t, dash.SolutionLibrary)
	require.Empty(t, dash.Whitelist)

	admin := loginAdmin(t, client, store)
	adminDash, err := admin.Dashboard(ctx)
	require.NoError(t, err)
	require.Len(t, adminDash.SolutionLibrary, 10)
	require.Len(t, adminDash.Whitelist, 1)
}
