package portalsdk

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
)

// Admin operations - whitelist and pricing catalog management.
// All of these require the admin role.

// ============================================================================
// Whitelist
// ============================================================================

// ListWhitelist retrieves all pre-approval entries.
func (s *Session) ListWhitelist(ctx context.Context) (*WhitelistResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/api/admin/whitelist", nil, nil)
	if err != nil {
		return nil, err
	}

	var out WhitelistResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}

	return &out, nil
}

// AddWhitelistEntry pre-approves a phone or email with a role.
func (s *Session) AddWhitelistEntry(ctx context.Context, req WhitelistAddRequest) (*WhitelistEntryResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/api/admin/whitelist", jsonBody(req), jsonHeaders())
	if err != nil {
		return nil, err
	}

	var out WhitelistEntryResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}

	return &out, nil
}

// DeleteWhitelistEntry removes a pre-approval entry.
func (s *Session) DeleteWhitelistEntry(ctx context.Context, id string) error {
	resp, err := s.doAuthRequest(ctx, http.MethodDelete, "/api/admin/whitelist/"+id, nil, nil)
	if err != nil {
		return err
	}

	var out MessageResponse
	return decodeJSON(resp, &out, http.StatusOK)
}

// ExportWhitelist downloads the whitelist as CSV.
func (s *Session) ExportWhitelist(ctx context.Context) ([]byte, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/api/admin/whitelist/export", nil, nil)
	if err != nil {
		return nil, err
	}

	return readRaw(resp, http.StatusOK)
}

// ImportWhitelist uploads a CSV of whitelist entries. It returns the number
// of rows imported; malformed rows are skipped server-side.
func (s *Session) ImportWhitelist(ctx context.Context, csv io.Reader) (*ImportResponse, error) {
	return s.importCSV(ctx, "/api/admin/whitelist/import", csv)
}

// ============================================================================
// Pricing catalog
// ============================================================================

// ListLibrary retrieves the full pricing catalog.
func (s *Session) ListLibrary(ctx context.Context) (*LibraryResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/api/admin/library", nil, nil)
	if err != nil {
		return nil, err
	}

	var out LibraryResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}

	return &out, nil
}

// CreateLibraryProduct adds a row to the pricing catalog.
func (s *Session) CreateLibraryProduct(ctx context.Context, req LibraryProductRequest) (*LibraryProductResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/api/admin/library", jsonBody(req), jsonHeaders())
	if err != nil {
		return nil, err
	}

	var out LibraryProductResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}

	return &out, nil
}

// UpdateLibraryProduct replaces a catalog row.
func (s *Session) UpdateLibraryProduct(ctx context.Context, id string, req LibraryProductRequest) (*LibraryProductResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPut, "/api/admin/library/"+id, jsonBody(req), jsonHeaders())
	if err != nil {
		return nil, err
	}

	var out LibraryProductResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}

	return &out, nil
}

// DeleteLibraryProduct removes a catalog row.
func (s *Session) DeleteLibraryProduct(ctx context.Context, id string) error {
	resp, err := s.doAuthRequest(ctx, http.MethodDelete, "/api/admin/library/"+id, nil, nil)
	if err != nil {
		return err
	}

	var out MessageResponse
	return decodeJSON(resp, &out, http.StatusOK)
}

// ExportLibrary downloads the pricing catalog as CSV.
func (s *Session) ExportLibrary(ctx context.Context) ([]byte, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/api/admin/library/export", nil, nil)
	if err != nil {
		return nil, err
	}

	return readRaw(resp, http.StatusOK)
}

// ImportLibrary uploads a CSV of catalog rows, upserting by solution and
// product name.
func (s *Session) ImportLibrary(ctx context.Context, csv io.Reader) (*ImportResponse, error) {
	return s.importCSV(ctx, "/api/admin/library/import", csv)
}

// importCSV wraps a CSV payload in a multipart form under the "file" field.
func (s *Session) importCSV(ctx context.Context, path string, csv io.Reader) (*ImportResponse, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", "import.csv")
	if err != nil {
		return nil, fmt.Errorf("failed to build multipart form: %w", err)
	}
	if _, err := io.Copy(part, csv); err != nil {
		return nil, fmt.Errorf("failed to write csv payload: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize multipart form: %w", err)
	}

	headers := map[string]string{"Content-Type": writer.FormDataContentType()}

	resp, err := s.doAuthRequest(ctx, http.MethodPost, path, &buf, headers)
	if err != nil {
		return nil, err
	}

	var out ImportResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}

	return &out, nil
}
