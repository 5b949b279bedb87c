package sqlite

import (
	"context"
	"time"

	"github.com/educonnect/portal/internal/portal/domain"
)

type otpCodesRepo struct {
	db dbtx
}

func (r *otpCodesRepo) CreateOtpCode(ctx context.Context, c domain.OtpCode) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO otp_codes (id, identifier, code_hash, expires_at, verified, created_at)
		VALUES (?, ?, ?, ?, 0, ?)`,
		c.ID, c.Identifier, c.CodeHash, c.ExpiresAt, c.CreatedAt)
	return err
}

func (r *otpCodesRepo) GetLatestActiveOtpCode(ctx context.Context, identifier, codeHash string, now time.Time) (domain.OtpCode, error) {
	var (
		c        domain.OtpCode
		verified int64
	)
	err := r.db.QueryRowContext(ctx, `
		SELECT id, identifier, code_hash, expires_at, verified, created_at
		FROM otp_codes
		WHERE identifier = ? AND code_hash = ? AND verified = 0 AND expires_at > ?
		ORDER BY created_at DESC
		LIMIT 1`,
		identifier, codeHash, now).
		Scan(&c.ID, &c.Identifier, &c.CodeHash, &c.ExpiresAt, &verified, &c.CreatedAt)
	if err != nil {
		return domain.OtpCode{}, mapNotFound(err)
	}
	c.Verified = verified != 0
	return c, nil
}

func (r *otpCodesRepo) MarkOtpCodeVerified(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE otp_codes SET verified = 1 WHERE id = ?`, id)
	return err
}

func (r *otpCodesRepo) DeleteExpiredOtpCodes(ctx context.Context, now time.Time) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM otp_codes WHERE expires_at <= ?`, now)
	return err
}
