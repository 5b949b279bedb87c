package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/educonnect/portal/internal/portal/domain"
)

type solutionsRepo struct {
	db dbtx
}

const solutionColumns = `id, user_id, solution_type, name, address, customer_name,
	configuration, price_once_off, price_monthly, term_months, status,
	created_at, updated_at`

func scanSolution(scan func(dest ...any) error) (domain.Solution, error) {
	var (
		s        domain.Solution
		address  sql.NullString
		customer sql.NullString
		config   string
	)
	err := scan(&s.ID, &s.UserID, &s.SolutionType, &s.Name, &address, &customer,
		&config, &s.PriceOnceOff, &s.PriceMonthly, &s.TermMonths, &s.Status,
		&s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return domain.Solution{}, err
	}
	s.Address = mapNullString(address)
	s.CustomerName = mapNullString(customer)
	if err := json.Unmarshal([]byte(config), &s.Config); err != nil {
		return domain.Solution{}, err
	}
	return s, nil
}

func (r *solutionsRepo) GetSolutionByID(ctx context.Context, id string) (domain.Solution, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+solutionColumns+` FROM solutions WHERE id = ?`, id)
	s, err := scanSolution(row.Scan)
	if err != nil {
		return domain.Solution{}, mapNotFound(err)
	}
	return s, nil
}

func (r *solutionsRepo) ListSolutionsByUser(ctx context.Context, userID string) ([]domain.Solution, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+solutionColumns+` FROM solutions
		WHERE user_id = ? ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var solutions []domain.Solution
	for rows.Next() {
		s, err := scanSolution(rows.Scan)
		if err != nil {
			return nil, err
		}
		solutions = append(solutions, s)
	}
	return solutions, rows.Err()
}

func (r *solutionsRepo) CreateSolution(ctx context.Context, s domain.Solution) error {
	config, err := json.Marshal(s.Config)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO solutions (id, user_id, solution_type, name, address,
			customer_name, configuration, price_once_off, price_monthly,
			term_months, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		s.ID, s.UserID, s.SolutionType, s.Name, mapStringNull(s.Address),
		mapStringNull(s.CustomerName), string(config), s.PriceOnceOff,
		s.PriceMonthly, s.TermMonths, s.Status, s.CreatedAt, s.UpdatedAt)
	return err
}

func (r *solutionsRepo) UpdateSolution(ctx context.Context, s domain.Solution) error {
	config, err := json.Marshal(s.Config)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx, `
		UPDATE solutions SET name = ?, address = ?, customer_name = ?,
			configuration = ?, price_once_off = ?, price_monthly = ?,
			term_months = ?, status = ?, updated_at = ?
		WHERE id = ?`,
		s.Name, mapStringNull(s.Address), mapStringNull(s.CustomerName),
		string(config), s.PriceOnceOff, s.PriceMonthly, s.TermMonths,
		s.Status, time.Now().UTC(), s.ID)
	return err
}

func (r *solutionsRepo) UpdateSolutionStatus(ctx context.Context, id, status string) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE solutions SET status = ?, updated_at = ? WHERE id = ?`,
		status, time.Now().UTC(), id)
	return err
}

func (r *solutionsRepo) DeleteSolution(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM solutions WHERE id = ?`, id)
	return err
}
