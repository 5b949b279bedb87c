package service

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/educonnect/portal/internal/portal/domain"
	"github.com/stretchr/testify/require"
)

func TestWhitelistAddNormalizesAndValidates(t *testing.T) {
	ctx := context.Background()
	svc := &WhitelistService{Store: newTestStore(t), Logger: testLogger()}

	entry, err := svc.Add(ctx, "", "  Principal@School.Example ", "ADMIN", "admin-1")
	require.NoError(t, err)
	require.Equal(t, "principal@school.example", entry.Email)
	require.Equal(t, domain.RoleAdmin, entry.Role)
	require.Equal(t, "admin-1", entry.AddedBy)

	t.Run("requires an identifier", func(t *testing.T) {
		_, err := svc.Add(ctx, "", "", "customer", "admin-1")
		require.ErrorIs(t, err, ErrWhitelistEntryInvalid)
	})

	t.Run("rejects unknown roles", func(t *testing.T) {
		_, err := svc.Add(ctx, "0821234567", "", "superuser", "admin-1")
		require.ErrorIs(t, err, ErrWhitelistEntryInvalid)
	})

	t.Run("rejects duplicates", func(t *testing.T) {
		_, err := svc.Add(ctx, "", "principal@school.example", "account", "admin-1")
		require.ErrorIs(t, err, ErrWhitelistDuplicate)
	})
}

func TestWhitelistRemove(t *testing.T) {
	ctx := context.Background()
	svc := &WhitelistService{Store: newTestStore(t), Logger: testLogger()}

	entry, err := svc.Add(ctx, "0821234567", "", "customer", "admin-1")
	require.NoError(t, err)

	require.NoError(t, svc.Remove(ctx, entry.ID))

	entries, err := svc.List(ctx)
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestWhitelistImportCSVSkipsBadRows(t *testing.T) {
	ctx := context.Background()
	svc := &WhitelistService{Store: newTestStore(t), Logger: testLogger()}

	csv := strings.Join([]string{
		"phone,email,role",
		"0821234567,,customer",
		",teacher@school.example,account",
		",broken@school.example,superuser", // invalid role, skipped
		"short-row",                        // too few columns, skipped
	}, "\n")

	imported, err := svc.ImportCSV(ctx, strings.NewReader(csv), "admin-1")
	require.NoError(t, err)
	require.Equal(t, 2, imported)

	entries, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)
}

func TestWhitelistImportCSVSkipsDuplicates(t *testing.T) {
	ctx := context.Background()
	svc := &WhitelistService{Store: newTestStore(t), Logger: testLogger()}

	_, err := svc.Add(ctx, "0821234567", "", "customer", "admin-1")
	require.NoError(t, err)

	imported, err := svc.ImportCSV(ctx, strings.NewReader("0821234567,,customer\n"), "admin-1")
	require.NoError(t, err)
	require.Equal(t, 0, imported)
}

func TestWhitelistExportImportRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc := &WhitelistService{Store: newTestStore(t), Logger: testLogger()}

	_, err := svc.Add(ctx, "0821234567", "", "customer", "admin-1")
	require.NoError(t, err)
	_, err = svc.Add(ctx, "", "teacher@school.example", "account", "admin-1")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, svc.ExportCSV(ctx, &buf))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	require.Equal(t, "phone,email,role,added_at", lines[0])

	// Re-importing into a fresh database yields the same entries.
	fresh := &WhitelistService{Store: newTestStore(t), Logger: testLogger()}
	imported, err := fresh.ImportCSV(ctx, &buf, "admin-2")
	require.NoError(t, err)
	require.Equal(t, 2, imported)
}
