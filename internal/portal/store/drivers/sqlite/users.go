package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/educonnect/portal/internal/portal/domain"
)

type usersRepo struct {
	db dbtx
}

const userColumns = `id, phone, email, name, surname, id_number, date_of_birth,
	role, kyc_status, last_login, created_at, updated_at`

func scanUser(row *sql.Row) (domain.User, error) {
	var (
		u         domain.User
		phone     sql.NullString
		email     sql.NullString
		name      sql.NullString
		surname   sql.NullString
		idNumber  sql.NullString
		dob       sql.NullString
		lastLogin sql.NullTime
	)
	err := row.Scan(&u.ID, &phone, &email, &name, &surname, &idNumber, &dob,
		&u.Role, &u.KycStatus, &lastLogin, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return domain.User{}, err
	}
	u.Phone = mapNullString(phone)
	u.Email = mapNullString(email)
	u.Name = mapNullString(name)
	u.Surname = mapNullString(surname)
	u.IDNumber = mapNullString(idNumber)
	u.DateOfBirth = mapNullString(dob)
	u.LastLogin = mapNullTimePtr(lastLogin)
	return u, nil
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	u, err := scanUser(row)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) GetUserByIdentifier(ctx context.Context, identifier string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE phone = ? OR email = ?`,
		identifier, identifier)
	u, err := scanUser(row)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return u, nil
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (id, phone, email, name, surname, id_number,
			date_of_birth, role, kyc_status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		u.ID, mapStringNull(u.Phone), mapStringNull(u.Email),
		mapStringNull(u.Name), mapStringNull(u.Surname),
		mapStringNull(u.IDNumber), mapStringNull(u.DateOfBirth),
		u.Role, u.KycStatus, u.CreatedAt, u.UpdatedAt)
	return mapConstraint(err)
}

func (r *usersRepo) UpdateRoleAndKycStatus(ctx context.Context, userID, role, kycStatus string) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE users SET role = ?, kyc_status = ?, updated_at = ?
		WHERE id = ?`,
		role, kycStatus, time.Now().UTC(), userID)
	return err
}

func (r *usersRepo) UpdateKycProfile(ctx context.Context, userID, name, surname, idNumber, dateOfBirth, kycStatus string) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE users SET name = ?, surname = ?, id_number = ?,
			date_of_birth = ?, kyc_status = ?, updated_at = ?
		WHERE id = ?`,
		name, surname, idNumber, dateOfBirth, kycStatus,
		time.Now().UTC(), userID)
	return err
}

func (r *usersRepo) TouchLastLogin(ctx context.Context, userID string, at time.Time) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE users SET last_login = ? WHERE id = ?`, at, userID)
	return err
}
