package sqlite

import (
	"context"
	"database/sql"

	"github.com/educonnect/portal/internal/portal/domain"
)

type whitelistRepo struct {
	db dbtx
}

func scanWhitelistEntry(scan func(dest ...any) error) (domain.WhitelistEntry, error) {
	var (
		e       domain.WhitelistEntry
		phone   sql.NullString
		email   sql.NullString
		addedBy sql.NullString
	)
	err := scan(&e.ID, &phone, &email, &e.Role, &addedBy, &e.AddedAt)
	if err != nil {
		return domain.WhitelistEntry{}, err
	}
	e.Phone = mapNullString(phone)
	e.Email = mapNullString(email)
	e.AddedBy = mapNullString(addedBy)
	return e, nil
}

func (r *whitelistRepo) GetEntryByIdentifier(ctx context.Context, identifier string) (domain.WhitelistEntry, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, phone, email, role, added_by, added_at
		FROM whitelist WHERE phone = ? OR email = ?`,
		identifier, identifier)
	e, err := scanWhitelistEntry(row.Scan)
	if err != nil {
		return domain.WhitelistEntry{}, mapNotFound(err)
	}
	return e, nil
}

func (r *whitelistRepo) ListEntries(ctx context.Context) ([]domain.WhitelistEntry, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, phone, email, role, added_by, added_at
		FROM whitelist ORDER BY added_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.WhitelistEntry
	for rows.Next() {
		e, err := scanWhitelistEntry(rows.Scan)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *whitelistRepo) CreateEntry(ctx context.Context, e domain.WhitelistEntry) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO whitelist (id, phone, email, role, added_by, added_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		e.ID, mapStringNull(e.Phone), mapStringNull(e.Email), e.Role,
		mapStringNull(e.AddedBy), e.AddedAt)
	return mapConstraint(err)
}

func (r *whitelistRepo) DeleteEntry(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM whitelist WHERE id = ?`, id)
	return err
}
