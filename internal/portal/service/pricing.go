package service

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/educonnect/portal/internal/portal/domain"
	"github.com/educonnect/portal/internal/portal/store"
)

var ErrUnknownProduct = errors.New("unknown product selection")

// Catalog product names, matched against the solution_library table. Service
// and security add-ons are selected by short keys in the configuration.
const (
	productPrepaid  = "Prepaid Bundle"
	productWireless = "Uncapped Wireless"
	productFibre    = "Uncapped Fibre"
)

var serviceProducts = map[string]string{
	"ai-tutor": "AI-Tutor & Market",
	"apn":      "APN + Eagle Eye",
	"firewall": "Secure Firewall",
}

var securityProducts = map[string]string{
	"powerfleet-video": "PowerFleet AI Video",
	"powerfleet-dash":  "PowerFleet Dash Cam",
	"mix-telematics":   "MiX Telematics",
	"mypanic":          "myPanic App",
}

// termDiscount returns the fractional monthly discount for a contract term.
func termDiscount(termMonths int) float64 {
	switch termMonths {
	case 6:
		return 0.05
	case 12:
		return 0.10
	case 24:
		return 0.20
	}
	return 0
}

// Quote is a server-side price computation for a solution configuration.
type Quote struct {
	OnceOff float64
	Monthly float64
}

// PricingService computes quotes from the admin-curated catalog. Client
// supplied prices are never trusted.
type PricingService struct {
	Store store.Store
}

// PriceSolution sums the catalog prices of every selected product and applies
// the term discount to the monthly component. Once-off charges are never
// discounted.
func (s *PricingService) PriceSolution(ctx context.Context, solutionType string, cfg domain.SolutionConfig, termMonths int) (Quote, error) {
	var q Quote

	addTiered := func(product, option string) error {
		p, err := s.lookup(ctx, solutionType, product)
		if err != nil {
			return err
		}
		price, ok := p.OptionPrice(option)
		if !ok {
			return fmt.Errorf("%w: %s %q", ErrUnknownProduct, product, option)
		}
		q.Monthly += price
		q.OnceOff += p.OnceOff
		return nil
	}

	addFlat := func(product string) error {
		p, err := s.lookup(ctx, solutionType, product)
		if err != nil {
			return err
		}
		q.Monthly += p.MonthOnMonth
		q.OnceOff += p.OnceOff
		return nil
	}

	if cfg.Prepaid != "" {
		if err := addTiered(productPrepaid, cfg.Prepaid); err != nil {
			return Quote{}, err
		}
	}
	if cfg.Wireless != "" {
		if err := addTiered(productWireless, cfg.Wireless); err != nil {
			return Quote{}, err
		}
	}
	if cfg.Fibre != "" {
		if err := addTiered(productFibre, cfg.Fibre); err != nil {
			return Quote{}, err
		}
	}
	for _, key := range cfg.Services {
		product, ok := serviceProducts[key]
		if !ok {
			return Quote{}, fmt.Errorf("%w: service %q", ErrUnknownProduct, key)
		}
		if err := addFlat(product); err != nil {
			return Quote{}, err
		}
	}
	for _, key := range cfg.Security {
		product, ok := securityProducts[key]
		if !ok {
			return Quote{}, fmt.Errorf("%w: security %q", ErrUnknownProduct, key)
		}
		if err := addFlat(product); err != nil {
			return Quote{}, err
		}
	}

	if d := termDiscount(termMonths); d > 0 {
		q.Monthly = math.Round(q.Monthly * (1 - d))
	}
	return q, nil
}

func (s *PricingService) lookup(ctx context.Context, solutionType, product string) (domain.LibraryProduct, error) {
	p, err := s.Store.Library().GetProduct(ctx, solutionType, product)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.LibraryProduct{}, fmt.Errorf("%w: %s / %s", ErrUnknownProduct, solutionType, product)
		}
		return domain.LibraryProduct{}, err
	}
	return p, nil
}
