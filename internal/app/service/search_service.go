package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/ijalalfrz/flight-explorer/internal/app/dto"
	"github.com/ijalalfrz/flight-explorer/internal/pkg/flight"
	"github.com/ijalalfrz/flight-explorer/internal/pkg/skyscrapper"
	"github.com/ijalalfrz/flight-explorer/internal/pkg/utils"
)

type FlightSearcher interface {
	SearchByName(ctx context.Context, originName string, destinationName string,
		params dto.SearchParameters) (flight.Outcome, error)
}

type LocationResolver interface {
	Resolve(ctx context.Context, query string) (dto.ResolvedLocation, error)
}

type ThemeReader interface {
	Theme(ctx context.Context, clientID string) string
}

type SearchService struct {
	Searcher    FlightSearcher
	Resolver    LocationResolver
	Preferences ThemeReader
	Defaults    dto.SearchParameters
}

func NewSearchService(searcher FlightSearcher,
	resolver LocationResolver,
	preferences ThemeReader,
	defaults dto.SearchParameters,
) *SearchService {
	return &SearchService{
		Searcher:    searcher,
		Resolver:    resolver,
		Preferences: preferences,
		Defaults:    defaults,
	}
}

// SearchFlights godoc
// @Summary      Search flights
// @Tags         Flights
// @Description  Resolve origin and destination names and return their itineraries in provider order
// @Param        X-Client-Id  header    string                   false  "Browser client id"
// @Param        request      body      dto.SearchFlightRequest  true   "Search Criteria"
// @Success      200          {object}  dto.SearchFlightResponse
// @Failure      400          {object}  dto.ErrorResponse
// @Failure      502          {object}  dto.ErrorResponse
// @Router       /api/v1/flights/search [post]
func (s *SearchService) SearchFlights(
	ctx context.Context,
	req dto.SearchFlightRequest,
) (dto.SearchFlightResponse, error) {
	startTime := time.Now()
	params := req.Parameters(s.Defaults)

	outcome, err := s.Searcher.SearchByName(ctx, req.Origin, req.Destination, params)
	if err != nil {
		return dto.SearchFlightResponse{}, ErrFlightDataUnavailable.WithCause(err)
	}

	if outcome.Kind == flight.OutcomeUnresolved {
		slog.InfoContext(ctx, "search finished without resolved locations",
			slog.String("outcome", outcome.Kind.String()))
	}

	cards := make([]dto.ItineraryCard, 0, len(outcome.Itineraries))
	for _, itinerary := range outcome.Itineraries {
		cards = append(cards, dto.ItineraryCard{
			Itinerary:  itinerary,
			PriceLabel: utils.FormatPrice(itinerary.Price, params.Currency, params.Market),
		})
	}

	resp := dto.SearchFlightResponse{
		SearchCriteria: req,
		Parameters:     params,
		Metadata: dto.SearchMetadata{
			TotalResults: len(cards),
			SearchTimeMs: int(time.Since(startTime).Milliseconds()),
			Status:       dto.SearchStatusResults,
		},
		Display: dto.Display{
			Theme: s.Preferences.Theme(ctx, req.ClientID),
		},
		Itineraries: cards,
	}

	if len(cards) == 0 {
		resp.Metadata.Status = dto.SearchStatusEmpty
		resp.Notice = NoFlightsNotice
	}

	return resp, nil
}

// ResolveLocation godoc
// @Summary      Resolve location
// @Tags         Locations
// @Description  Resolve a city or airport name to provider identifiers
// @Param        query  query     string  true  "City or airport name"
// @Success      200    {object}  dto.ResolveLocationResponse
// @Failure      400    {object}  dto.ErrorResponse
// @Failure      404    {object}  dto.ErrorResponse
// @Failure      429    {object}  dto.ErrorResponse
// @Failure      502    {object}  dto.ErrorResponse
// @Router       /api/v1/locations/resolve [get]
func (s *SearchService) ResolveLocation(
	ctx context.Context,
	req dto.ResolveLocationRequest,
) (dto.ResolveLocationResponse, error) {
	location, err := s.Resolver.Resolve(ctx, req.Query)
	if err != nil {
		switch {
		case errors.Is(err, flight.ErrLocationNotFound):
			return dto.ResolveLocationResponse{}, err
		case errors.Is(err, skyscrapper.ErrProviderRateLimitExceeded):
			return dto.ResolveLocationResponse{}, skyscrapper.ErrProviderRateLimitExceeded
		default:
			return dto.ResolveLocationResponse{}, ErrLocationUnavailable.WithCause(err)
		}
	}

	return dto.ResolveLocationResponse{
		Query:    req.Query,
		Location: location,
	}, nil
}
