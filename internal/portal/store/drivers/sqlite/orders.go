package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/educonnect/portal/internal/portal/domain"
)

type ordersRepo struct {
	db dbtx
}

func (r *ordersRepo) CreateOrder(ctx context.Context, o domain.Order) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO orders (id, solution_id, user_id, order_number,
			payment_method, payment_status, amount_once_off, amount_monthly,
			payment_date, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		o.ID, o.SolutionID, o.UserID, o.OrderNumber,
		mapStringNull(o.PaymentMethod), o.PaymentStatus, o.AmountOnceOff,
		o.AmountMonthly, o.PaymentDate, o.CreatedAt)
	return mapConstraint(err)
}

func (r *ordersRepo) GetOrderByID(ctx context.Context, id string) (domain.Order, error) {
	var (
		o       domain.Order
		method  sql.NullString
		paidAt  sql.NullTime
	)
	err := r.db.QueryRowContext(ctx, `
		SELECT id, solution_id, user_id, order_number, payment_method,
			payment_status, amount_once_off, amount_monthly, payment_date, created_at
		FROM orders WHERE id = ?`, id).
		Scan(&o.ID, &o.SolutionID, &o.UserID, &o.OrderNumber, &method,
			&o.PaymentStatus, &o.AmountOnceOff, &o.AmountMonthly, &paidAt, &o.CreatedAt)
	if err != nil {
		return domain.Order{}, mapNotFound(err)
	}
	o.PaymentMethod = mapNullString(method)
	o.PaymentDate = mapNullTimePtr(paidAt)
	return o, nil
}

const orderJoinColumns = `o.id, o.solution_id, o.user_id, o.order_number,
	o.payment_method, o.payment_status, o.amount_once_off, o.amount_monthly,
	o.payment_date, o.created_at,
	s.solution_type, s.name, s.address, s.customer_name`

func scanOrderWithSolution(scan func(dest ...any) error, withConfig bool, config *sql.NullString) (domain.OrderWithSolution, error) {
	var (
		ow       domain.OrderWithSolution
		method   sql.NullString
		paidAt   sql.NullTime
		address  sql.NullString
		customer sql.NullString
	)
	dest := []any{&ow.ID, &ow.SolutionID, &ow.UserID, &ow.OrderNumber, &method,
		&ow.PaymentStatus, &ow.AmountOnceOff, &ow.AmountMonthly, &paidAt,
		&ow.CreatedAt, &ow.SolutionType, &ow.SolutionName, &address, &customer}
	if withConfig {
		dest = append(dest, config)
	}
	if err := scan(dest...); err != nil {
		return domain.OrderWithSolution{}, err
	}
	ow.PaymentMethod = mapNullString(method)
	ow.PaymentDate = mapNullTimePtr(paidAt)
	ow.Address = mapNullString(address)
	ow.CustomerName = mapNullString(customer)
	return ow, nil
}

func (r *ordersRepo) GetOrderWithSolution(ctx context.Context, id string) (domain.OrderWithSolution, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+orderJoinColumns+`, s.configuration
		FROM orders o
		JOIN solutions s ON s.id = o.solution_id
		WHERE o.id = ?`, id)

	var config sql.NullString
	ow, err := scanOrderWithSolution(row.Scan, true, &config)
	if err != nil {
		return domain.OrderWithSolution{}, mapNotFound(err)
	}
	if config.Valid && config.String != "" {
		var cfg domain.SolutionConfig
		if err := json.Unmarshal([]byte(config.String), &cfg); err != nil {
			return domain.OrderWithSolution{}, err
		}
		ow.Configuration = &cfg
	}
	return ow, nil
}

func (r *ordersRepo) ListOrdersByUser(ctx context.Context, userID string) ([]domain.OrderWithSolution, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+orderJoinColumns+`
		FROM orders o
		JOIN solutions s ON s.id = o.solution_id
		WHERE o.user_id = ?
		ORDER BY o.created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []domain.OrderWithSolution
	for rows.Next() {
		ow, err := scanOrderWithSolution(rows.Scan, false, nil)
		if err != nil {
			return nil, err
		}
		orders = append(orders, ow)
	}
	return orders, rows.Err()
}

func (r *ordersRepo) MarkOrderPaid(ctx context.Context, id, paymentMethod string, paidAt time.Time) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE orders SET payment_status = ?, payment_method = ?, payment_date = ?
		WHERE id = ?`,
		domain.PaymentCompleted, paymentMethod, paidAt, id)
	return err
}
