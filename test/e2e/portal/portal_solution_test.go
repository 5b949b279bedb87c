package portal_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/educonnect/portal/pkg/portalsdk"
	"github.com/stretchr/testify/require"
)

func TestSolutionLifecycle(t *testing.T) {
	client, _ := setupPortal(t)
	ctx := context.Background()

	session := performLogin(t, client, "0823330001")
	id := createStudentSolution(t, session)

	got, err := session.GetSolution(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "EduStudent", got.Solution.SolutionType)
	require.Equal(t, "draft", got.Solution.Status)
	require.Equal(t, "10GB", got.Solution.Configuration.Prepaid)
	require.Equal(t, 0.0, got.Solution.PriceOnceOff)
	require.Equal(t, 115.0, got.Solution.PriceMonthly) // round((99 + 29) * 0.90)

	updated, err := session.UpdateSolution(ctx, id, portalsdk.SolutionRequest{
		SolutionType:  "EduStudent",
		Name:          "Bigger bundle",
		Configuration: portalsdk.SolutionConfig{Prepaid: "25GB"},
		TermMonths:    0,
	})
	require.NoError(t, err)
	require.Equal(t, "Bigger bundle", updated.Solution.Name)
	require.Equal(t, 149.0, updated.Solution.PriceMonthly)

	list, err := session.ListSolutions(ctx)
	require.NoError(t, err)
	require.Len(t, list.Solutions, 1)

	require.NoError(t, session.DeleteSolution(ctx, id))

	_, err = session.GetSolution(ctx, id)
	assertAPIError(t, err, http.StatusNotFound, portalsdk.ErrorCodeNotFound)
}

func TestSolutionValidationErrors(t *testing.T) {
	client, _ := setupPortal(t)
	ctx := context.Background()

	session := performLogin(t, client, "0823330002")

	t.Run("unknown type", func(t *testing.T) {
		_, err := session.CreateSolution(ctx, portalsdk.SolutionRequest{
			SolutionType: "EduMystery",
			Name:         "x",
		})
		assertAPIError(t, err, http.StatusBadRequest, portalsdk.ErrorCodeInvalidInput)
	})

	t.Run("ineligible product for type", func(t *testing.T) {
		_, err := session.CreateSolution(ctx, portalsdk.SolutionRequest{
			SolutionType:  "EduStudent",
			Name:          "x",
			Configuration: portalsdk.SolutionConfig{Fibre: "50Mbps"},
		})
		assertAPIError(t, err, http.StatusBadRequest, portalsdk.ErrorCodeInvalidInput)
	})

	t.Run("unknown option tier", func(t *testing.T) {
		_, err := session.CreateSolution(ctx, portalsdk.SolutionRequest{
			SolutionType:  "EduStudent",
			Name:          "x",
			Configuration: portalsdk.SolutionConfig{Prepaid: "500GB"},
		})
		assertAPIError(t, err, http.StatusBadRequest, portalsdk.ErrorCodeInvalidInput)
	})
}

func TestSolutionOwnershipIsolation(t *testing.T) {
	client, _ := setupPortal(t)
	ctx := context.Background()

	owner := performLogin(t, client, "0823330003")
	other := performLogin(t, client, "0823330004")

	id := createStudentSolution(t, owner)

	// Foreign solutions read as not found, never forbidden.
	_, err := other.GetSolution(ctx, id)
	assertAPIError(t, err, http.StatusNotFound, portalsdk.ErrorCodeNotFound)

	list, err := other.ListSolutions(ctx)
	require.NoError(t, err)
	require.Empty(t, list.Solutions)
}

func TestActiveSolutionIsImmutable(t *testing.T) {
	client, _ := setupPortal(t)
	ctx := context.Background()

	session := performLogin(t, client, "0823330005")
	id := createStudentSolution(t, session)

	// Activate via order + payment.
	order, err := session.CreateOrder(ctx, portalsdk.CreateOrderRequest{SolutionID: id})
	require.NoError(t, err)
	require.NoError(t, session.ProcessPayment(ctx, order.OrderID, portalsdk.PaymentRequest{PaymentMethod: "card"}))

	_, err = session.UpdateSolution(ctx, id, portalsdk.SolutionRequest{
		SolutionType:  "EduStudent",
		Name:          "Renamed",
		Configuration: portalsdk.SolutionConfig{Prepaid: "5GB"},
	})
	assertAPIError(t, err, http.StatusConflict, portalsdk.ErrorCodeInvalidState)

	err = session.DeleteSolution(ctx, id)
	assertAPIError(t, err, http.StatusConflict, portalsdk.ErrorCodeInvalidState)
}
