package trailsdk

import (
	"context"
	"fmt"
	"net/http"
)

// ============================================================================
// Level Catalog
// ============================================================================

// ListLevels retrieves the lesson catalog in order.
func (c *Client) ListLevels(ctx context.Context) (*ListLevelsResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/levels", nil)
	if err != nil {
		return nil, err
	}

	var list ListLevelsResponse
	if err := decodeJSON(resp, &list, http.StatusOK); err != nil {
		return nil, err
	}

	return &list, nil
}

// GetLevel retrieves one full lesson by id.
func (c *Client) GetLevel(ctx context.Context, id int) (*Level, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, fmt.Sprintf("/levels/%d", id), nil)
	if err != nil {
		return nil, err
	}

	var level Level
	if err := decodeJSON(resp, &level, http.StatusOK); err != nil {
		return nil, err
	}

	return &level, nil
}
