package service

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/educonnect/portal/internal/portal/domain"
	"github.com/educonnect/portal/internal/portal/store"
	"github.com/educonnect/portal/pkg/idx"
)

var (
	ErrWhitelistEntryInvalid = errors.New("whitelist entry needs a phone or email and a valid role")
	ErrWhitelistDuplicate    = errors.New("phone or email is already whitelisted")
)

// WhitelistService manages the pre-approval list that assigns roles and
// bypasses KYC on first login.
type WhitelistService struct {
	Store  store.Store
	Logger *slog.Logger
}

// List returns all entries, newest first.
func (s *WhitelistService) List(ctx context.Context) ([]domain.WhitelistEntry, error) {
	return s.Store.Whitelist().ListEntries(ctx)
}

// Add inserts a new entry. addedBy records the admin who created it.
func (s *WhitelistService) Add(ctx context.Context, phone, email, role, addedBy string) (domain.WhitelistEntry, error) {
	entry := domain.WhitelistEntry{
		ID:      string(idx.New()),
		Phone:   strings.TrimSpace(phone),
		Email:   strings.ToLower(strings.TrimSpace(email)),
		Role:    strings.ToLower(strings.TrimSpace(role)),
		AddedBy: addedBy,
		AddedAt: time.Now().UTC(),
	}
	if (entry.Phone == "" && entry.Email == "") || !domain.ValidRole(entry.Role) {
		return domain.WhitelistEntry{}, ErrWhitelistEntryInvalid
	}

	err := s.Store.Whitelist().CreateEntry(ctx, entry)
	if errors.Is(err, store.ErrAlreadyExists) {
		return domain.WhitelistEntry{}, ErrWhitelistDuplicate
	}
	if err != nil {
		return domain.WhitelistEntry{}, err
	}
	return entry, nil
}

// Remove deletes an entry by id.
func (s *WhitelistService) Remove(ctx context.Context, id string) error {
	return s.Store.Whitelist().DeleteEntry(ctx, id)
}

// ExportCSV writes all entries as phone,email,role,added_at with a header.
func (s *WhitelistService) ExportCSV(ctx context.Context, w io.Writer) error {
	entries, err := s.Store.Whitelist().ListEntries(ctx)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"phone", "email", "role", "added_at"}); err != nil {
		return err
	}
	for _, e := range entries {
		record := []string{e.Phone, e.Email, e.Role, e.AddedAt.Format(time.RFC3339)}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ImportCSV reads phone,email,role rows, skipping the header and any
// malformed rows, and returns how many entries were inserted. Rows whose
// phone or email is already whitelisted are skipped, not errors.
func (s *WhitelistService) ImportCSV(ctx context.Context, r io.Reader, addedBy string) (int, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // tolerate ragged rows, validated per row below

	imported := 0
	first := true
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// Malformed line; skip and keep going.
			continue
		}
		if first {
			first = false
			if len(record) > 0 && strings.EqualFold(strings.TrimSpace(record[0]), "phone") {
				continue
			}
		}
		if len(record) < 3 {
			continue
		}

		_, err = s.Add(ctx, record[0], record[1], record[2], addedBy)
		if err != nil {
			if errors.Is(err, ErrWhitelistEntryInvalid) || errors.Is(err, ErrWhitelistDuplicate) {
				continue
			}
			return imported, err
		}
		imported++
	}

	s.Logger.Info("whitelist imported", "imported", imported)
	return imported, nil
}
