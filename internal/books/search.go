package books

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
)

const (
	defaultMaxResults = 20
	maxMaxResults     = 40 // API cap
)

// SearchParams controls a catalog search.
type SearchParams struct {
	Query      string
	MaxResults int // defaults to 20, capped at the API limit of 40
	StartIndex int // pagination offset
}

// Search queries the catalog for print books matching the params.
func (c *Client) Search(ctx context.Context, params SearchParams) (*SearchResult, error) {
	if params.Query == "" {
		return nil, wrapError("search", "", ErrEmptyQuery)
	}

	maxResults := params.MaxResults
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}
	if maxResults > maxMaxResults {
		maxResults = maxMaxResults
	}

	query := url.Values{}
	query.Set("q", params.Query)
	query.Set("maxResults", fmt.Sprintf("%d", maxResults))
	query.Set("startIndex", fmt.Sprintf("%d", params.StartIndex))
	query.Set("printType", "books")

	body, err := c.doRequest(ctx, "/volumes", query)
	if err != nil {
		return nil, wrapError("search", "", err)
	}

	var list rawVolumeList
	if err := json.Unmarshal(body, &list); err != nil {
		return nil, wrapError("search", "", fmt.Errorf("parse response: %w", err))
	}

	result := &SearchResult{
		TotalItems: list.TotalItems,
		Volumes:    make([]Volume, 0, len(list.Items)),
	}
	for _, item := range list.Items {
		result.Volumes = append(result.Volumes, item.toVolume())
	}

	c.logger.Debug("books search results",
		"query", params.Query,
		"total", list.TotalItems,
		"returned", len(result.Volumes),
	)

	return result, nil
}

// Volume fetches the full catalog record for one volume id.
func (c *Client) Volume(ctx context.Context, volumeID string) (*Volume, error) {
	if volumeID == "" {
		return nil, wrapError("volume", "", ErrBadRequest)
	}

	body, err := c.doRequest(ctx, "/volumes/"+url.PathEscape(volumeID), nil)
	if err != nil {
		return nil, wrapError("volume", volumeID, err)
	}

	var raw rawVolume
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, wrapError("volume", volumeID, fmt.Errorf("parse response: %w", err))
	}

	vol := raw.toVolume()
	return &vol, nil
}
