package service

import (
	"context"
	"testing"

	"github.com/educonnect/portal/internal/portal/domain"
	"github.com/educonnect/portal/internal/portal/store/drivers/sqlite"
	"github.com/stretchr/testify/require"
)

func newSolutionService(store *sqlite.Store) *SolutionService {
	return &SolutionService{
		Store:   store,
		Pricing: &PricingService{Store: store},
		Logger:  testLogger(),
	}
}

func TestCreateSolutionStoresPricedDraft(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	svc := newSolutionService(store)
	seedUser(t, store, "user-1")

	sol, err := svc.Create(ctx, "user-1", SolutionInput{
		SolutionType: domain.SolutionEduStudent,
		Name:         "Res room connectivity",
		Config:       domain.SolutionConfig{Prepaid: "10GB", Services: []string{"ai-tutor"}},
		TermMonths:   12,
	})
	require.NoError(t, err)
	require.Equal(t, domain.SolutionDraft, sol.Status)
	require.Equal(t, 0.0, sol.PriceOnceOff)
	require.Equal(t, 115.0, sol.PriceMonthly) // round((99 + 29) * 0.90)

	stored, err := svc.Get(ctx, "user-1", sol.ID)
	require.NoError(t, err)
	require.Equal(t, sol.Config, stored.Config)
	require.Equal(t, sol.PriceMonthly, stored.PriceMonthly)
}

func TestCreateSolutionValidation(t *testing.T) {
	ctx := context.Background()
	svc := newSolutionService(newTestStore(t))

	t.Run("name is required", func(t *testing.T) {
		_, err := svc.Create(ctx, "user-1", SolutionInput{
			SolutionType: domain.SolutionEduStudent,
			Name:         "  ",
		})
		require.ErrorIs(t, err, ErrInvalidSolution)
	})

	t.Run("unknown solution type", func(t *testing.T) {
		_, err := svc.Create(ctx, "user-1", SolutionInput{
			SolutionType: "EduMystery",
			Name:         "x",
		})
		require.ErrorIs(t, err, ErrInvalidSolution)
	})

	t.Run("term must be a known contract length", func(t *testing.T) {
		_, err := svc.Create(ctx, "user-1", SolutionInput{
			SolutionType: domain.SolutionEduStudent,
			Name:         "x",
			TermMonths:   9,
		})
		require.ErrorIs(t, err, ErrInvalidSolution)
	})

	t.Run("student solutions cannot carry fibre", func(t *testing.T) {
		_, err := svc.Create(ctx, "user-1", SolutionInput{
			SolutionType: domain.SolutionEduStudent,
			Name:         "x",
			Config:       domain.SolutionConfig{Fibre: "50Mbps"},
		})
		require.ErrorIs(t, err, ErrInvalidSolution)
	})

	t.Run("flex solutions carry wireless only", func(t *testing.T) {
		_, err := svc.Create(ctx, "user-1", SolutionInput{
			SolutionType: domain.SolutionEduFlex,
			Name:         "x",
			Config:       domain.SolutionConfig{Wireless: "10Mbps", Services: []string{"apn"}},
		})
		require.ErrorIs(t, err, ErrInvalidSolution)
	})

	t.Run("safe solutions reject connectivity products", func(t *testing.T) {
		_, err := svc.Create(ctx, "user-1", SolutionInput{
			SolutionType: domain.SolutionEduSafe,
			Name:         "x",
			Config:       domain.SolutionConfig{Prepaid: "5GB"},
		})
		require.ErrorIs(t, err, ErrInvalidSolution)
	})
}

func TestListSolutionsScopedToOwner(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	svc := newSolutionService(store)

	seedSolution(t, store, "user-1", domain.SolutionDraft)
	seedSolution(t, store, "user-1", domain.SolutionActive)
	seedSolution(t, store, "user-2", domain.SolutionDraft)

	mine, err := svc.List(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, mine, 2)

	theirs, err := svc.List(ctx, "user-2")
	require.NoError(t, err)
	require.Len(t, theirs, 1)
}

func TestGetSolutionHidesForeignRows(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	svc := newSolutionService(store)

	sol := seedSolution(t, store, "user-1", domain.SolutionDraft)

	_, err := svc.Get(ctx, "user-2", sol.ID)
	require.ErrorIs(t, err, ErrSolutionNotFound)

	_, err = svc.Get(ctx, "user-1", "no-such-id")
	require.ErrorIs(t, err, ErrSolutionNotFound)
}

func TestUpdateSolutionRepricesDraft(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	svc := newSolutionService(store)

	sol := seedSolution(t, store, "user-1", domain.SolutionDraft)

	updated, err := svc.Update(ctx, "user-1", sol.ID, SolutionInput{
		// The type is fixed at creation; whatever the caller sends is ignored.
		SolutionType: domain.SolutionEduSchool,
		Name:         "Renamed",
		Config:       domain.SolutionConfig{Prepaid: "25GB"},
		TermMonths:   6,
	})
	require.NoError(t, err)
	require.Equal(t, domain.SolutionEduStudent, updated.SolutionType)
	require.Equal(t, "Renamed", updated.Name)
	require.Equal(t, 142.0, updated.PriceMonthly) // round(149 * 0.95)
	require.Equal(t, domain.SolutionDraft, updated.Status)
}

func TestUpdateSolutionRejectsNonDraft(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	svc := newSolutionService(store)

	sol := seedSolution(t, store, "user-1", domain.SolutionActive)

	_, err := svc.Update(ctx, "user-1", sol.ID, SolutionInput{
		Name:   "Renamed",
		Config: domain.SolutionConfig{Prepaid: "5GB"},
	})
	require.ErrorIs(t, err, ErrSolutionNotEditable)
}

func TestDeleteSolutionLifecycleGating(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	svc := newSolutionService(store)

	draft := seedSolution(t, store, "user-1", domain.SolutionDraft)
	active := seedSolution(t, store, "user-1", domain.SolutionActive)
	offer := seedSolution(t, store, "user-1", domain.SolutionOffer)
	cancelled := seedSolution(t, store, "user-1", domain.SolutionCancelled)

	require.NoError(t, svc.Delete(ctx, "user-1", draft.ID))
	require.NoError(t, svc.Delete(ctx, "user-1", cancelled.ID))
	require.ErrorIs(t, svc.Delete(ctx, "user-1", active.ID), ErrSolutionNotDeletable)
	require.ErrorIs(t, svc.Delete(ctx, "user-1", offer.ID), ErrSolutionNotDeletable)

	_, err := svc.Get(ctx, "user-1", draft.ID)
	require.ErrorIs(t, err, ErrSolutionNotFound)
}
