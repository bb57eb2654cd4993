package trailsdk

import (
	"context"
	"net/http"
)

// ============================================================================
// Account Operations
// ============================================================================

// Me retrieves the current profile of the authenticated account.
func (s *Session) Me(ctx context.Context) (*UserProfile, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, "/auth/me", nil)
	if err != nil {
		return nil, err
	}

	var profile UserProfile
	if err := decodeJSON(resp, &profile, http.StatusOK); err != nil {
		return nil, err
	}

	return &profile, nil
}

// DeleteAccount permanently deletes the authenticated account and its
// progress. The session token is useless afterwards.
func (s *Session) DeleteAccount(ctx context.Context) error {
	resp, err := s.doAuthRequest(ctx, http.MethodDelete, "/auth/me", nil)
	if err != nil {
		return err
	}

	return checkStatusNoContent(resp)
}
