package service

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/educonnect/portal/internal/portal/domain"
	"github.com/educonnect/portal/internal/portal/store"
	"github.com/educonnect/portal/pkg/idx"
)

var (
	ErrLibraryProductInvalid  = errors.New("library product needs a solution and product name")
	ErrLibraryProductNotFound = errors.New("library product not found")
)

// libraryCSVHeader is the fixed import/export schema for the catalog.
var libraryCSVHeader = []string{
	"solution", "product",
	"option1", "option2", "option3", "option4", "option5",
	"price1", "price2", "price3", "price4", "price5",
	"once_off", "month_on_month",
	"discount_6mth", "discount_12mth", "discount_24mth",
	"discount_code", "discount_percent",
}

// LibraryService manages the pricing catalog solutions are quoted from.
type LibraryService struct {
	Store  store.Store
	Logger *slog.Logger
}

// List returns the whole catalog.
func (s *LibraryService) List(ctx context.Context) ([]domain.LibraryProduct, error) {
	return s.Store.Library().ListProducts(ctx)
}

// Create inserts a catalog row.
func (s *LibraryService) Create(ctx context.Context, p domain.LibraryProduct) (domain.LibraryProduct, error) {
	p.Solution = strings.TrimSpace(p.Solution)
	p.Product = strings.TrimSpace(p.Product)
	if p.Solution == "" || p.Product == "" {
		return domain.LibraryProduct{}, ErrLibraryProductInvalid
	}

	p.ID = string(idx.New())
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now

	if err := s.Store.Library().CreateProduct(ctx, p); err != nil {
		return domain.LibraryProduct{}, err
	}
	return p, nil
}

// Update overwrites a catalog row by id.
func (s *LibraryService) Update(ctx context.Context, id string, p domain.LibraryProduct) (domain.LibraryProduct, error) {
	p.Solution = strings.TrimSpace(p.Solution)
	p.Product = strings.TrimSpace(p.Product)
	if p.Solution == "" || p.Product == "" {
		return domain.LibraryProduct{}, ErrLibraryProductInvalid
	}

	p.ID = id
	if err := s.Store.Library().UpdateProduct(ctx, p); err != nil {
		return domain.LibraryProduct{}, err
	}
	return p, nil
}

// Delete removes a catalog row by id.
func (s *LibraryService) Delete(ctx context.Context, id string) error {
	return s.Store.Library().DeleteProduct(ctx, id)
}

// ExportCSV writes the catalog in the fixed 19 column schema with a header.
func (s *LibraryService) ExportCSV(ctx context.Context, w io.Writer) error {
	products, err := s.Store.Library().ListProducts(ctx)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(libraryCSVHeader); err != nil {
		return err
	}
	for _, p := range products {
		record := []string{
			p.Solution, p.Product,
			p.Options[0], p.Options[1], p.Options[2], p.Options[3], p.Options[4],
			formatPrice(p.Prices[0]), formatPrice(p.Prices[1]), formatPrice(p.Prices[2]),
			formatPrice(p.Prices[3]), formatPrice(p.Prices[4]),
			formatPrice(p.OnceOff), formatPrice(p.MonthOnMonth),
			formatPrice(p.Discount6Mth), formatPrice(p.Discount12Mth), formatPrice(p.Discount24Mth),
			p.DiscountCode, formatPrice(p.DiscountPercent),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ImportCSV reads rows in the fixed schema, skipping the header and any row
// missing a solution or product, and returns how many rows were imported.
// Existing (solution, product) rows are updated in place.
func (s *LibraryService) ImportCSV(ctx context.Context, r io.Reader) (int, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	imported := 0
	first := true
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			continue
		}
		if first {
			first = false
			if len(record) > 0 && strings.EqualFold(strings.TrimSpace(record[0]), "solution") {
				continue
			}
		}
		if len(record) < 2 {
			continue
		}

		p := productFromRecord(record)
		if p.Solution == "" || p.Product == "" {
			continue
		}

		existing, err := s.Store.Library().GetProduct(ctx, p.Solution, p.Product)
		switch {
		case err == nil:
			if _, err := s.Update(ctx, existing.ID, p); err != nil {
				return imported, err
			}
		case errors.Is(err, store.ErrNotFound):
			if _, err := s.Create(ctx, p); err != nil {
				return imported, err
			}
		default:
			return imported, err
		}
		imported++
	}

	s.Logger.Info("library imported", "imported", imported)
	return imported, nil
}

func productFromRecord(record []string) domain.LibraryProduct {
	field := func(i int) string {
		if i < len(record) {
			return strings.TrimSpace(record[i])
		}
		return ""
	}
	price := func(i int) float64 {
		v, err := strconv.ParseFloat(field(i), 64)
		if err != nil {
			return 0
		}
		return v
	}

	p := domain.LibraryProduct{
		Solution: field(0),
		Product:  field(1),
	}
	for i := 0; i < 5; i++ {
		p.Options[i] = field(2 + i)
		p.Prices[i] = price(7 + i)
	}
	p.OnceOff = price(12)
	p.MonthOnMonth = price(13)
	p.Discount6Mth = price(14)
	p.Discount12Mth = price(15)
	p.Discount24Mth = price(16)
	p.DiscountCode = field(17)
	p.DiscountPercent = price(18)
	return p
}

func formatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
