package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/educonnect/portal/internal/portal/domain"
	"github.com/educonnect/portal/pkg/idx"
	"github.com/stretchr/testify/require"
)

// Foreign keys must hold on every pooled connection, not just the one a
// PRAGMA statement happened to run on. Holding an open transaction pins one
// connection so the follow-up insert is forced onto a second.
func TestForeignKeysEnforcedOnEveryConnection(t *testing.T) {
	ctx := context.Background()

	store, err := NewStore(filepath.Join(t.TempDir(), "portal.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	require.NoError(t, store.ApplyMigrations())

	tx, err := store.Tx(ctx)
	require.NoError(t, err)
	defer func() { _ = tx.Rollback() }()

	now := time.Now().UTC()
	err = store.Solutions().CreateSolution(ctx, domain.Solution{
		ID:           string(idx.New()),
		UserID:       "no-such-user",
		SolutionType: domain.SolutionEduStudent,
		Name:         "Orphan",
		Status:       domain.SolutionDraft,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	require.Error(t, err, "insert referencing a missing user must be rejected")
}
