package registry

import (
	"context"
	"net/url"
	"strconv"
)

type searchResponse struct {
	Items []SearchResult `json:"items"`
}

// SearchCompanies searches the registry by company name. A search with
// zero matches returns an empty slice and a nil error; only transport
// failures surface as errors.
func (c *Client) SearchCompanies(ctx context.Context, query string, itemsPerPage int) ([]SearchResult, error) {
	if itemsPerPage <= 0 {
		itemsPerPage = 20
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("items_per_page", strconv.Itoa(itemsPerPage))

	var res searchResponse
	if err := c.getJSON(ctx, "/search/companies", params, &res); err != nil {
		return nil, err
	}

	if res.Items == nil {
		return []SearchResult{}, nil
	}
	return res.Items, nil
}
