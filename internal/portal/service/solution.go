package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/educonnect/portal/internal/portal/domain"
	"github.com/educonnect/portal/internal/portal/store"
	"github.com/educonnect/portal/pkg/idx"
)

var (
	ErrSolutionNotFound     = errors.New("solution not found")
	ErrInvalidSolution      = errors.New("invalid solution")
	ErrSolutionNotEditable  = errors.New("only draft solutions can be modified")
	ErrSolutionNotDeletable = errors.New("active or offered solutions cannot be deleted")
)

// SolutionInput is the caller-supplied part of a solution. Prices are always
// recomputed server-side from the catalog.
type SolutionInput struct {
	SolutionType string
	Name         string
	Address      string
	CustomerName string
	Config       domain.SolutionConfig
	TermMonths   int
}

// SolutionService manages the configure/save lifecycle of solutions.
type SolutionService struct {
	Store   store.Store
	Pricing *PricingService
	Logger  *slog.Logger
}

// List returns the caller's solutions, newest first.
func (s *SolutionService) List(ctx context.Context, userID string) ([]domain.Solution, error) {
	return s.Store.Solutions().ListSolutionsByUser(ctx, userID)
}

// Get returns one of the caller's solutions. Solutions owned by other users
// are reported as not found rather than forbidden.
func (s *SolutionService) Get(ctx context.Context, userID, solutionID string) (domain.Solution, error) {
	sol, err := s.Store.Solutions().GetSolutionByID(ctx, solutionID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Solution{}, ErrSolutionNotFound
		}
		return domain.Solution{}, err
	}
	if sol.UserID != userID {
		return domain.Solution{}, ErrSolutionNotFound
	}
	return sol, nil
}

// Create validates and prices the configuration, then stores a new draft.
func (s *SolutionService) Create(ctx context.Context, userID string, in SolutionInput) (domain.Solution, error) {
	if err := validateSolutionInput(&in); err != nil {
		return domain.Solution{}, err
	}

	quote, err := s.Pricing.PriceSolution(ctx, in.SolutionType, in.Config, in.TermMonths)
	if err != nil {
		return domain.Solution{}, err
	}

	now := time.Now().UTC()
	sol := domain.Solution{
		ID:           string(idx.New()),
		UserID:       userID,
		SolutionType: in.SolutionType,
		Name:         in.Name,
		Address:      in.Address,
		CustomerName: in.CustomerName,
		Config:       in.Config,
		PriceOnceOff: quote.OnceOff,
		PriceMonthly: quote.Monthly,
		TermMonths:   in.TermMonths,
		Status:       domain.SolutionDraft,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Store.Solutions().CreateSolution(ctx, sol); err != nil {
		return domain.Solution{}, err
	}

	s.Logger.Info("solution created", "solution_id", sol.ID, "user_id", userID, "type", sol.SolutionType)
	return sol, nil
}

// Update overwrites a draft solution with a re-validated, re-priced
// configuration. Non-draft solutions are immutable.
func (s *SolutionService) Update(ctx context.Context, userID, solutionID string, in SolutionInput) (domain.Solution, error) {
	existing, err := s.Get(ctx, userID, solutionID)
	if err != nil {
		return domain.Solution{}, err
	}
	if existing.Status != domain.SolutionDraft {
		return domain.Solution{}, ErrSolutionNotEditable
	}

	// Type is fixed at creation; an update keeps it.
	in.SolutionType = existing.SolutionType
	if err := validateSolutionInput(&in); err != nil {
		return domain.Solution{}, err
	}

	quote, err := s.Pricing.PriceSolution(ctx, in.SolutionType, in.Config, in.TermMonths)
	if err != nil {
		return domain.Solution{}, err
	}

	existing.Name = in.Name
	existing.Address = in.Address
	existing.CustomerName = in.CustomerName
	existing.Config = in.Config
	existing.PriceOnceOff = quote.OnceOff
	existing.PriceMonthly = quote.Monthly
	existing.TermMonths = in.TermMonths

	if err := s.Store.Solutions().UpdateSolution(ctx, existing); err != nil {
		return domain.Solution{}, err
	}
	return s.Get(ctx, userID, solutionID)
}

// Delete removes a solution unless it is active or an offer.
func (s *SolutionService) Delete(ctx context.Context, userID, solutionID string) error {
	sol, err := s.Get(ctx, userID, solutionID)
	if err != nil {
		return err
	}
	if sol.Status == domain.SolutionActive || sol.Status == domain.SolutionOffer {
		return ErrSolutionNotDeletable
	}
	return s.Store.Solutions().DeleteSolution(ctx, solutionID)
}

func validateSolutionInput(in *SolutionInput) error {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidSolution)
	}
	if !domain.ValidSolutionType(in.SolutionType) {
		return fmt.Errorf("%w: unknown solution type %q", ErrInvalidSolution, in.SolutionType)
	}
	switch in.TermMonths {
	case 0, 6, 12, 24:
	default:
		return fmt.Errorf("%w: term must be 0, 6, 12 or 24 months", ErrInvalidSolution)
	}
	return validateConfigForType(in.SolutionType, in.Config)
}

// validateConfigForType rejects product selections outside the solution
// type's eligible set. Option values themselves are checked against the
// catalog during pricing.
func validateConfigForType(solutionType string, cfg domain.SolutionConfig) error {
	deny := func(field string) error {
		return fmt.Errorf("%w: %s is not available for %s", ErrInvalidSolution, field, solutionType)
	}

	switch solutionType {
	case domain.SolutionEduStudent:
		if cfg.Wireless != "" {
			return deny("wireless")
		}
		if cfg.Fibre != "" {
			return deny("fibre")
		}
		if len(cfg.Security) > 0 {
			return deny("security")
		}
		for _, key := range cfg.Services {
			if key != "ai-tutor" {
				return fmt.Errorf("%w: service %q is not available for %s", ErrInvalidSolution, key, solutionType)
			}
		}
	case domain.SolutionEduFlex:
		if cfg.Prepaid != "" {
			return deny("prepaid")
		}
		if cfg.Fibre != "" {
			return deny("fibre")
		}
		if len(cfg.Services) > 0 {
			return deny("services")
		}
		if len(cfg.Security) > 0 {
			return deny("security")
		}
	case domain.SolutionEduSchool:
		if cfg.Prepaid != "" {
			return deny("prepaid")
		}
		if cfg.Wireless != "" {
			return deny("wireless")
		}
		if len(cfg.Security) > 0 {
			return deny("security")
		}
		for _, key := range cfg.Services {
			if key != "apn" && key != "firewall" {
				return fmt.Errorf("%w: service %q is not available for %s", ErrInvalidSolution, key, solutionType)
			}
		}
	case domain.SolutionEduSafe:
		if cfg.Prepaid != "" {
			return deny("prepaid")
		}
		if cfg.Wireless != "" {
			return deny("wireless")
		}
		if cfg.Fibre != "" {
			return deny("fibre")
		}
		if len(cfg.Services) > 0 {
			return deny("services")
		}
		for _, key := range cfg.Security {
			if _, ok := securityProducts[key]; !ok {
				return fmt.Errorf("%w: security %q is not available for %s", ErrInvalidSolution, key, solutionType)
			}
		}
	}
	return nil
}
