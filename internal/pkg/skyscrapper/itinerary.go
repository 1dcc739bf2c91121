package skyscrapper

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/url"
	"strconv"
)

// SearchFlightsComplete returns the raw itineraries for one resolved route.
// A body without a readable itinerary list is zero results, not an error.
func (c *Client) SearchFlightsComplete(ctx context.Context, query ItineraryQuery) ([]Itinerary, error) {
	params := url.Values{}
	params.Set("originSkyId", query.OriginSkyID)
	params.Set("destinationSkyId", query.DestinationSkyID)
	params.Set("originEntityId", query.OriginEntityID)
	params.Set("destinationEntityId", query.DestinationEntityID)
	params.Set("date", query.Date)
	if query.ReturnDate != "" {
		params.Set("returnDate", query.ReturnDate)
	}
	params.Set("cabinClass", query.CabinClass)
	params.Set("adults", strconv.Itoa(query.Adults))
	params.Set("sortBy", query.SortBy)
	params.Set("currency", query.Currency)
	params.Set("market", query.Market)
	params.Set("countryCode", query.CountryCode)

	body, err := c.get(ctx, searchFlightsPath, params)
	if err != nil {
		return nil, err
	}

	var response SearchFlightsResponse
	if err := json.Unmarshal(body, &response); err != nil {
		slog.WarnContext(ctx, "malformed itinerary search response", slog.String("error", err.Error()))
		return []Itinerary{}, nil
	}

	if response.Data == nil || len(response.Data.Itineraries) == 0 {
		return []Itinerary{}, nil
	}

	var records []json.RawMessage
	if err := json.Unmarshal(response.Data.Itineraries, &records); err != nil {
		slog.WarnContext(ctx, "malformed itinerary list", slog.String("error", err.Error()))
		return []Itinerary{}, nil
	}

	itineraries := make([]Itinerary, 0, len(records))
	for i, record := range records {
		var itinerary Itinerary
		if err := json.Unmarshal(record, &itinerary); err != nil {
			slog.WarnContext(ctx, "skipping malformed itinerary",
				slog.Int("index", i),
				slog.String("error", err.Error()))
			continue
		}

		itineraries = append(itineraries, itinerary)
	}

	return itineraries, nil
}
