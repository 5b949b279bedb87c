package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/educonnect/portal/internal/portal/domain"
	"github.com/educonnect/portal/internal/portal/service"
	"github.com/educonnect/portal/internal/portal/store"
	"github.com/educonnect/portal/pkg/portalsdk"
)

// decodeJSON reads a JSON request body into v, capping the body size.
func decodeJSON(r *http.Request, v any) error {
	const maxBody = 1 << 20
	return json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxBody)).Decode(v)
}

// writeServiceError maps service sentinel errors onto the API error envelope.
func writeServiceError(w http.ResponseWriter, log *slog.Logger, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidIdentifier),
		errors.Is(err, service.ErrMissingKycFields),
		errors.Is(err, service.ErrInvalidSolution),
		errors.Is(err, service.ErrUnknownProduct),
		errors.Is(err, service.ErrWhitelistEntryInvalid),
		errors.Is(err, service.ErrWhitelistDuplicate),
		errors.Is(err, service.ErrLibraryProductInvalid):
		portalsdk.ErrInvalidInput.WithMessage(err.Error()).WriteError(w)

	case errors.Is(err, service.ErrInvalidOrExpiredCode):
		portalsdk.ErrInvalidOrExpiredCode.WriteError(w)

	case errors.Is(err, service.ErrInvalidSession):
		portalsdk.ErrUnauthenticated.WriteError(w)

	case errors.Is(err, service.ErrSolutionNotFound),
		errors.Is(err, service.ErrOrderNotFound),
		errors.Is(err, service.ErrLibraryProductNotFound),
		errors.Is(err, store.ErrNotFound):
		portalsdk.ErrNotFound.WriteError(w)

	case errors.Is(err, service.ErrSolutionNotEditable),
		errors.Is(err, service.ErrSolutionNotDeletable):
		portalsdk.ErrInvalidState.WithMessage(err.Error()).WriteError(w)

	default:
		log.Error("request failed", "err", err)
		portalsdk.ErrServerError.WriteError(w)
	}
}

func toUserView(u domain.User) portalsdk.User {
	return portalsdk.User{
		ID:        u.ID,
		Phone:     u.Phone,
		Email:     u.Email,
		Name:      u.Name,
		Surname:   u.Surname,
		Role:      u.Role,
		KycStatus: u.KycStatus,
		LastLogin: u.LastLogin,
		CreatedAt: u.CreatedAt,
	}
}

func toConfigView(c domain.SolutionConfig) portalsdk.SolutionConfig {
	return portalsdk.SolutionConfig{
		Prepaid:  c.Prepaid,
		Wireless: c.Wireless,
		Fibre:    c.Fibre,
		Services: c.Services,
		Security: c.Security,
	}
}

func toConfigDomain(c portalsdk.SolutionConfig) domain.SolutionConfig {
	return domain.SolutionConfig{
		Prepaid:  c.Prepaid,
		Wireless: c.Wireless,
		Fibre:    c.Fibre,
		Services: c.Services,
		Security: c.Security,
	}
}

func toSolutionView(s domain.Solution) portalsdk.Solution {
	return portalsdk.Solution{
		ID:            s.ID,
		SolutionType:  s.SolutionType,
		Name:          s.Name,
		Address:       s.Address,
		CustomerName:  s.CustomerName,
		Configuration: toConfigView(s.Config),
		PriceOnceOff:  s.PriceOnceOff,
		PriceMonthly:  s.PriceMonthly,
		TermMonths:    s.TermMonths,
		Status:        s.Status,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

func toSolutionViews(solutions []domain.Solution) []portalsdk.Solution {
	views := make([]portalsdk.Solution, 0, len(solutions))
	for _, s := range solutions {
		views = append(views, toSolutionView(s))
	}
	return views
}

func toOrderView(o domain.OrderWithSolution) portalsdk.Order {
	view := portalsdk.Order{
		ID:            o.ID,
		SolutionID:    o.SolutionID,
		OrderNumber:   o.OrderNumber,
		PaymentMethod: o.PaymentMethod,
		PaymentStatus: o.PaymentStatus,
		AmountOnceOff: o.AmountOnceOff,
		AmountMonthly: o.AmountMonthly,
		PaymentDate:   o.PaymentDate,
		CreatedAt:     o.CreatedAt,
		SolutionType:  o.SolutionType,
		SolutionName:  o.SolutionName,
		Address:       o.Address,
		CustomerName:  o.CustomerName,
	}
	if o.Configuration != nil {
		cfg := toConfigView(*o.Configuration)
		view.Configuration = &cfg
	}
	return view
}

func toOrderViews(orders []domain.OrderWithSolution) []portalsdk.Order {
	views := make([]portalsdk.Order, 0, len(orders))
	for _, o := range orders {
		views = append(views, toOrderView(o))
	}
	return views
}

func toWhitelistView(e domain.WhitelistEntry) portalsdk.WhitelistEntry {
	return portalsdk.WhitelistEntry{
		ID:      e.ID,
		Phone:   e.Phone,
		Email:   e.Email,
		Role:    e.Role,
		AddedBy: e.AddedBy,
		AddedAt: e.AddedAt,
	}
}

func toWhitelistViews(entries []domain.WhitelistEntry) []portalsdk.WhitelistEntry {
	views := make([]portalsdk.WhitelistEntry, 0, len(entries))
	for _, e := range entries {
		views = append(views, toWhitelistView(e))
	}
	return views
}

func toLibraryView(p domain.LibraryProduct) portalsdk.LibraryProduct {
	return portalsdk.LibraryProduct{
		ID:              p.ID,
		Solution:        p.Solution,
		Product:         p.Product,
		Options:         p.Options,
		Prices:          p.Prices,
		OnceOff:         p.OnceOff,
		MonthOnMonth:    p.MonthOnMonth,
		Discount6Mth:    p.Discount6Mth,
		Discount12Mth:   p.Discount12Mth,
		Discount24Mth:   p.Discount24Mth,
		DiscountCode:    p.DiscountCode,
		DiscountPercent: p.DiscountPercent,
	}
}

func toLibraryViews(products []domain.LibraryProduct) []portalsdk.LibraryProduct {
	views := make([]portalsdk.LibraryProduct, 0, len(products))
	for _, p := range products {
		views = append(views, toLibraryView(p))
	}
	return views
}
