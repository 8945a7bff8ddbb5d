package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/lsrecruit/sourcer/internal/types"
)

// SaveSearch persists a named saved search. Saved searches are immutable
// once created; there is no update call.
func (c *Client) SaveSearch(ctx context.Context, req *types.SavedSearchRequest) error {
	if err := req.Validate(); err != nil {
		return &Error{Endpoint: endpointSavedSearches, Message: "invalid saved-search request", Cause: err}
	}
	return c.doJSON(ctx, http.MethodPut, endpointSavedSearches, nil, req, nil)
}

// SavedSearches lists all saved searches.
func (c *Client) SavedSearches(ctx context.Context) ([]types.SavedSearchSummary, error) {
	var resp []types.SavedSearchSummary
	if err := c.doJSON(ctx, http.MethodGet, endpointSavedSearches, nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// SavedSearch loads one saved search by id, with its companies re-resolved
// against current server data.
func (c *Client) SavedSearch(ctx context.Context, id int) (*types.SavedSearchDetail, error) {
	var resp types.SavedSearchDetail
	path := fmt.Sprintf("%s/%d", endpointSavedSearches, id)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeleteSavedSearch removes a saved search by id.
func (c *Client) DeleteSavedSearch(ctx context.Context, id int) error {
	path := fmt.Sprintf("%s/%d", endpointSavedSearches, id)
	return c.doJSON(ctx, http.MethodDelete, path, nil, nil, nil)
}
