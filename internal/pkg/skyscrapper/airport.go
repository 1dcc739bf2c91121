package skyscrapper

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/url"
)

// SearchAirport returns the lookup candidates for a free-text place name in
// provider order. An unreadable body yields no candidates.
func (c *Client) SearchAirport(ctx context.Context, query string) ([]AirportCandidate, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("locale", c.Locale)

	body, err := c.get(ctx, searchAirportPath, params)
	if err != nil {
		return nil, err
	}

	var response SearchAirportResponse
	if err := json.Unmarshal(body, &response); err != nil {
		slog.WarnContext(ctx, "malformed airport lookup response",
			slog.String("query", query), slog.String("error", err.Error()))
		return []AirportCandidate{}, nil
	}

	if response.Data == nil {
		return []AirportCandidate{}, nil
	}

	return response.Data, nil
}
