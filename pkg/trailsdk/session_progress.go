package trailsdk

import (
	"context"
	"net/http"
)

// ============================================================================
// Progress Operations
// ============================================================================

// GetProgress retrieves the progress entry for the authenticated account.
func (s *Session) GetProgress(ctx context.Context) (*ProgressResponse, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/progress", nil)
	if err != nil {
		return nil, err
	}

	var progress ProgressResponse
	if err := decodeJSON(resp, &progress, http.StatusOK); err != nil {
		return nil, err
	}

	return &progress, nil
}

// UpdateProgress replaces the progress entry wholesale and returns the
// stored result. The request carries complete state; anything omitted is
// reset, not preserved.
func (s *Session) UpdateProgress(ctx context.Context, req ProgressRequest) (*ProgressResponse, error) {
	body, err := jsonBody(req)
	if err != nil {
		return nil, err
	}

	resp, err := s.doAuthRequest(ctx, http.MethodPut, "/progress", body)
	if err != nil {
		return nil, err
	}

	var progress ProgressResponse
	if err := decodeJSON(resp, &progress, http.StatusOK); err != nil {
		return nil, err
	}

	return &progress, nil
}
