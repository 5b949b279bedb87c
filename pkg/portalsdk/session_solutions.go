package portalsdk

import (
	"context"
	"net/http"
)

// Solution operations - configure, price and manage draft solutions.

// ListSolutions retrieves all solutions owned by the session's user.
func (s *Session) ListSolutions(ctx context.Context) (*SolutionsResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/api/solutions", nil, nil)
	if err != nil {
		return nil, err
	}

	var out SolutionsResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}

	return &out, nil
}

// GetSolution retrieves one solution by id.
func (s *Session) GetSolution(ctx context.Context, id string) (*SolutionResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/api/solutions/"+id, nil, nil)
	if err != nil {
		return nil, err
	}

	var out SolutionResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}

	return &out, nil
}

// CreateSolution saves a new draft solution. Prices are computed server-side
// from the catalog.
func (s *Session) CreateSolution(ctx context.Context, req SolutionRequest) (*CreateSolutionResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPost, "/api/solutions", jsonBody(req), jsonHeaders())
	if err != nil {
		return nil, err
	}

	var out CreateSolutionResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}

	return &out, nil
}

// UpdateSolution replaces a draft solution's configuration and re-prices it.
func (s *Session) UpdateSolution(ctx context.Context, id string, req SolutionRequest) (*SolutionResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodPut, "/api/solutions/"+id, jsonBody(req), jsonHeaders())
	if err != nil {
		return nil, err
	}

	var out SolutionResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}

	return &out, nil
}

// DeleteSolution removes a solution. Active and offered solutions are
// refused.
func (s *Session) DeleteSolution(ctx context.Context, id string) error {
	resp, err := s.doAuthRequest(ctx, http.MethodDelete, "/api/solutions/"+id, nil, nil)
	if err != nil {
		return err
	}

	var out MessageResponse
	return decodeJSON(resp, &out, http.StatusOK)
}
