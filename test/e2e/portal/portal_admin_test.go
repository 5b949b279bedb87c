package portal_test

import (
	"bytes"
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/educonnect/portal/pkg/portalsdk"
	"github.com/stretchr/testify/require"
)

func TestAdminEndpointsRequireAdminRole(t *testing.T) {
	client, _ := setupPortal(t)
	ctx := context.Background()

	customer := performLogin(t, client, "0825550001")

	_, err := customer.ListWhitelist(ctx)
	assertAPIError(t, err, http.StatusForbidden, portalsdk.ErrorCodeForbidden)

	_, err = customer.ListLibrary(ctx)
	assertAPIError(t, err, http.StatusForbidden, portalsdk.ErrorCodeForbidden)

	_, err = customer.ImportWhitelist(ctx, strings.NewReader("0820000000,,admin\n"))
	assertAPIError(t, err, http.StatusForbidden, portalsdk.ErrorCodeForbidden)
}

func TestWhitelistManagement(t *testing.T) {
	client, store := setupPortal(t)
	ctx := context.Background()

	admin := loginAdmin(t, client, store)

	added, err := admin.AddWhitelistEntry(ctx, portalsdk.WhitelistAddRequest{
		Email: "Teacher@School.Example",
		Role:  "account",
	})
	require.NoError(t, err)
	require.Equal(t, "teacher@school.example", added.Entry.Email)
	require.Equal(t, "account", added.Entry.Role)

	t.Run("duplicates are rejected", func(t *testing.T) {
		_, err := admin.AddWhitelistEntry(ctx, portalsdk.WhitelistAddRequest{
			Email: "teacher@school.example",
			Role:  "customer",
		})
		assertAPIError(t, err, http.StatusBadRequest, portalsdk.ErrorCodeInvalidInput)
	})

	t.Run("invalid role is rejected", func(t *testing.T) {
		_, err := admin.AddWhitelistEntry(ctx, portalsdk.WhitelistAddRequest{
			Phone: "0825550002",
			Role:  "superuser",
		})
		assertAPIError(t, err, http.StatusBadRequest, portalsdk.ErrorCodeInvalidInput)
	})

	list, err := admin.ListWhitelist(ctx)
	require.NoError(t, err)
	require.Len(t, list.Whitelist, 2) // admin seed + teacher

	require.NoError(t, admin.DeleteWhitelistEntry(ctx, added.Entry.ID))

	list, err = admin.ListWhitelist(ctx)
	require.NoError(t, err)
	require.Len(t, list.Whitelist, 1)
}

func TestWhitelistCSVImportExport(t *testing.T) {
	client, store := setupPortal(t)
	ctx := context.Background()

	admin := loginAdmin(t, client, store)

	csv := strings.Join([]string{
		"phone,email,role",
		"0825550003,,customer",
		",bursar@school.example,account",
		",bad@school.example,superuser", // invalid role, skipped
	}, "\n")

	imported, err := admin.ImportWhitelist(ctx, strings.NewReader(csv))
	require.NoError(t, err)
	require.Equal(t, 2, imported.Imported)

	exported, err := admin.ExportWhitelist(ctx)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(exported)), "\n")
	require.Equal(t, "phone,email,role,added_at", lines[0])
	require.Len(t, lines, 4) // header + admin seed + 2 imported
	require.Contains(t, string(exported), "bursar@school.example")
	require.NotContains(t, string(exported), "bad@school.example")
}

func TestLibraryManagement(t *testing.T) {
	client, store := setupPortal(t)
	ctx := context.Background()

	admin := loginAdmin(t, client, store)

	list, err := admin.ListLibrary(ctx)
	require.NoError(t, err)
	require.Len(t, list.Library, 10) // seeded launch catalog

	created, err := admin.CreateLibraryProduct(ctx, portalsdk.LibraryProductRequest{
		Solution:     "EduStudent",
		Product:      "Device Insurance",
		MonthOnMonth: 79,
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.Product.ID)

	update := portalsdk.LibraryProductRequest{
		Solution:     "EduStudent",
		Product:      "Device Insurance",
		MonthOnMonth: 89,
	}
	updated, err := admin.UpdateLibraryProduct(ctx, created.Product.ID, update)
	require.NoError(t, err)
	require.Equal(t, 89.0, updated.Product.MonthOnMonth)

	require.NoError(t, admin.DeleteLibraryProduct(ctx, created.Product.ID))

	list, err = admin.ListLibrary(ctx)
	require.NoError(t, err)
	require.Len(t, list.Library, 10)
}

func TestLibraryCSVRoundTrip(t *testing.T) {
	client, store := setupPortal(t)
	ctx := context.Background()

	admin := loginAdmin(t, client, store)

	exported, err := admin.ExportLibrary(ctx)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(exported), "solution,product,option1"))

	// Re-import the export; every row upserts onto itself.
	imported, err := admin.ImportLibrary(ctx, bytes.NewReader(exported))
	require.NoError(t, err)
	require.Equal(t, 10, imported.Imported)

	list, err := admin.ListLibrary(ctx)
	require.NoError(t, err)
	require.Len(t, list.Library, 10)
}

func TestLibraryRepricingFlowsIntoQuotes(t *testing.T) {
	client, store := setupPortal(t)
	ctx := context.Background()

	admin := loginAdmin(t, client, store)

	// Reprice the 10GB prepaid tier from 99 to 129 via CSV import.
	csv := strings.Join([]string{
		"solution,product,option1,option2,option3,option4,option5,price1,price2,price3,price4,price5,once_off,month_on_month,discount_6mth,discount_12mth,discount_24mth,discount_code,discount_percent",
		"EduStudent,Prepaid Bundle,5GB,10GB,25GB,,,49,129,149,,,0,0,5,10,20,,",
	}, "\n")
	imported, err := admin.ImportLibrary(ctx, strings.NewReader(csv))
	require.NoError(t, err)
	require.Equal(t, 1, imported.Imported)

	customer := performLogin(t, client, "0825550004")
	created, err := customer.CreateSolution(ctx, portalsdk.SolutionRequest{
		SolutionType:  "EduStudent",
		Name:          "Repriced bundle",
		Configuration: portalsdk.SolutionConfig{Prepaid: "10GB"},
		TermMonths:    0,
	})
	require.NoError(t, err)

	sol, err := customer.GetSolution(ctx, created.SolutionID)
	require.NoError(t, err)
	require.Equal(t, 129.0, sol.Solution.PriceMonthly)
}
