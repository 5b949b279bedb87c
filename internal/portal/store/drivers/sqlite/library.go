package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/educonnect/portal/internal/portal/domain"
)

type libraryRepo struct {
	db dbtx
}

const libraryColumns = `id, solution, product,
	option1, option2, option3, option4, option5,
	price1, price2, price3, price4, price5,
	once_off, month_on_month, discount_6mth, discount_12mth, discount_24mth,
	discount_code, discount_percent, created_at, updated_at`

func scanLibraryProduct(scan func(dest ...any) error) (domain.LibraryProduct, error) {
	var (
		p       domain.LibraryProduct
		options [5]sql.NullString
		prices  [5]sql.NullFloat64
		onceOff sql.NullFloat64
		monthly sql.NullFloat64
		d6      sql.NullFloat64
		d12     sql.NullFloat64
		d24     sql.NullFloat64
		code    sql.NullString
		percent sql.NullFloat64
	)
	err := scan(&p.ID, &p.Solution, &p.Product,
		&options[0], &options[1], &options[2], &options[3], &options[4],
		&prices[0], &prices[1], &prices[2], &prices[3], &prices[4],
		&onceOff, &monthly, &d6, &d12, &d24,
		&code, &percent, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return domain.LibraryProduct{}, err
	}
	for i := range options {
		p.Options[i] = mapNullString(options[i])
		p.Prices[i] = mapNullFloat(prices[i])
	}
	p.OnceOff = mapNullFloat(onceOff)
	p.MonthOnMonth = mapNullFloat(monthly)
	p.Discount6Mth = mapNullFloat(d6)
	p.Discount12Mth = mapNullFloat(d12)
	p.Discount24Mth = mapNullFloat(d24)
	p.DiscountCode = mapNullString(code)
	p.DiscountPercent = mapNullFloat(percent)
	return p, nil
}

func (r *libraryRepo) ListProducts(ctx context.Context) ([]domain.LibraryProduct, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+libraryColumns+` FROM solution_library ORDER BY solution, product`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []domain.LibraryProduct
	for rows.Next() {
		p, err := scanLibraryProduct(rows.Scan)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *libraryRepo) GetProduct(ctx context.Context, solution, product string) (domain.LibraryProduct, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+libraryColumns+` FROM solution_library
		WHERE solution = ? AND product = ?`, solution, product)
	p, err := scanLibraryProduct(row.Scan)
	if err != nil {
		return domain.LibraryProduct{}, mapNotFound(err)
	}
	return p, nil
}

func (r *libraryRepo) CreateProduct(ctx context.Context, p domain.LibraryProduct) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO solution_library (id, solution, product,
			option1, option2, option3, option4, option5,
			price1, price2, price3, price4, price5,
			once_off, month_on_month, discount_6mth, discount_12mth,
			discount_24mth, discount_code, discount_percent,
			created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Solution, p.Product,
		mapStringNull(p.Options[0]), mapStringNull(p.Options[1]),
		mapStringNull(p.Options[2]), mapStringNull(p.Options[3]),
		mapStringNull(p.Options[4]),
		p.Prices[0], p.Prices[1], p.Prices[2], p.Prices[3], p.Prices[4],
		p.OnceOff, p.MonthOnMonth, p.Discount6Mth, p.Discount12Mth,
		p.Discount24Mth, mapStringNull(p.DiscountCode), p.DiscountPercent,
		p.CreatedAt, p.UpdatedAt)
	return mapConstraint(err)
}

func (r *libraryRepo) UpdateProduct(ctx context.Context, p domain.LibraryProduct) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE solution_library SET solution = ?, product = ?,
			option1 = ?, option2 = ?, option3 = ?, option4 = ?, option5 = ?,
			price1 = ?, price2 = ?, price3 = ?, price4 = ?, price5 = ?,
			once_off = ?, month_on_month = ?, discount_6mth = ?,
			discount_12mth = ?, discount_24mth = ?, discount_code = ?,
			discount_percent = ?, updated_at = ?
		WHERE id = ?`,
		p.Solution, p.Product,
		mapStringNull(p.Options[0]), mapStringNull(p.Options[1]),
		mapStringNull(p.Options[2]), mapStringNull(p.Options[3]),
		mapStringNull(p.Options[4]),
		p.Prices[0], p.Prices[1], p.Prices[2], p.Prices[3], p.Prices[4],
		p.OnceOff, p.MonthOnMonth, p.Discount6Mth, p.Discount12Mth,
		p.Discount24Mth, mapStringNull(p.DiscountCode), p.DiscountPercent,
		time.Now().UTC(), p.ID)
	return mapConstraint(err)
}

func (r *libraryRepo) DeleteProduct(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM solution_library WHERE id = ?`, id)
	return err
}
