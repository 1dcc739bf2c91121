package flight

import (
	"context"
	"fmt"

	"github.com/ijalalfrz/flight-explorer/internal/app/dto"
	"github.com/ijalalfrz/flight-explorer/internal/pkg/skyscrapper"
)

type ItinerarySearcher interface {
	SearchFlightsComplete(ctx context.Context, query skyscrapper.ItineraryQuery) ([]skyscrapper.Itinerary, error)
}

// Fetcher requests itineraries for two resolved locations and normalizes them.
type Fetcher struct {
	Client ItinerarySearcher
}

func NewFetcher(client ItinerarySearcher) *Fetcher {
	return &Fetcher{
		Client: client,
	}
}

// Search propagates provider failures. A response without itineraries is
// an empty result.
func (f *Fetcher) Search(ctx context.Context,
	origin dto.ResolvedLocation,
	destination dto.ResolvedLocation,
	params dto.SearchParameters,
) ([]dto.Itinerary, error) {
	query := skyscrapper.ItineraryQuery{
		OriginSkyID:         origin.SkyID,
		DestinationSkyID:    destination.SkyID,
		OriginEntityID:      origin.EntityID,
		DestinationEntityID: destination.EntityID,
		Date:                params.DepartureDate,
		CabinClass:          params.CabinClass,
		Adults:              params.Adults,
		SortBy:              params.SortBy,
		Currency:            params.Currency,
		Market:              params.Market,
		CountryCode:         params.CountryCode,
	}

	if params.ReturnDate != nil {
		query.ReturnDate = *params.ReturnDate
	}

	itineraries, err := f.Client.SearchFlightsComplete(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to search itineraries: %w", err)
	}

	return NormalizeItineraries(itineraries), nil
}
