package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ijalalfrz/flight-explorer/internal/app/dto"
	"github.com/ijalalfrz/flight-explorer/internal/pkg/flight"
	"github.com/ijalalfrz/flight-explorer/internal/pkg/skyscrapper"
	"github.com/ijalalfrz/flight-explorer/internal/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var defaultParameters = dto.SearchParameters{
	CabinClass:  "economy",
	Adults:      1,
	SortBy:      "best",
	Currency:    "USD",
	Market:      "en-US",
	CountryCode: "US",
}

func TestSearchService_SearchFlights(t *testing.T) {
	type mockField struct {
		searcher *MockFlightSearcher
		theme    *MockThemeReader
	}

	req := dto.SearchFlightRequest{
		ClientID:      "browser-1",
		Origin:        "London",
		Destination:   "New York",
		DepartureDate: "2026-11-20",
	}

	params := defaultParameters
	params.DepartureDate = req.DepartureDate

	itineraries := []dto.Itinerary{
		{Airline: "British Airways", FlightNumber: "BA117", Duration: "8h 5m", Stops: 0, Price: 450},
		{Airline: "Virgin Atlantic", FlightNumber: "VS3", Duration: "10h", Stops: 1, Price: 0},
	}

	searchFlightsRequest := func(
		setupMock func(m mockField),
		want dto.SearchFlightResponse,
		wantErr error,
	) func(t *testing.T) {
		return func(t *testing.T) {
			m := mockField{
				searcher: NewMockFlightSearcher(t),
				theme:    NewMockThemeReader(t),
			}
			setupMock(m)

			s := NewSearchService(m.searcher, nil, m.theme, defaultParameters)

			got, err := s.SearchFlights(context.Background(), req)

			if wantErr != nil {
				assert.ErrorIs(t, err, wantErr)
				return
			}

			require.NoError(t, err)
			// Reset SearchTimeMs to 0 for comparison as it's dynamic
			got.Metadata.SearchTimeMs = 0

			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("SearchFlights() mismatch (-want +got):\n%s", diff)
			}
		}
	}

	t.Run("results_in_provider_order", searchFlightsRequest(
		func(m mockField) {
			m.searcher.On("SearchByName", mock.Anything, "London", "New York", params).
				Return(flight.Outcome{Kind: flight.OutcomeFetched, Itineraries: itineraries}, nil)
			m.theme.On("Theme", mock.Anything, "browser-1").Return(dto.ThemeDark)
		},
		dto.SearchFlightResponse{
			SearchCriteria: req,
			Parameters:     params,
			Metadata:       dto.SearchMetadata{TotalResults: 2, Status: dto.SearchStatusResults},
			Display:        dto.Display{Theme: dto.ThemeDark},
			Itineraries: []dto.ItineraryCard{
				{Itinerary: itineraries[0], PriceLabel: utils.FormatPrice(450, "USD", "en-US")},
				{Itinerary: itineraries[1], PriceLabel: utils.FormatPrice(0, "USD", "en-US")},
			},
		},
		nil,
	))

	t.Run("fetched_but_empty", searchFlightsRequest(
		func(m mockField) {
			m.searcher.On("SearchByName", mock.Anything, "London", "New York", params).
				Return(flight.Outcome{Kind: flight.OutcomeFetched, Itineraries: []dto.Itinerary{}}, nil)
			m.theme.On("Theme", mock.Anything, "browser-1").Return(dto.ThemeLight)
		},
		dto.SearchFlightResponse{
			SearchCriteria: req,
			Parameters:     params,
			Metadata:       dto.SearchMetadata{Status: dto.SearchStatusEmpty},
			Notice:         NoFlightsNotice,
			Display:        dto.Display{Theme: dto.ThemeLight},
			Itineraries:    []dto.ItineraryCard{},
		},
		nil,
	))

	t.Run("unresolved_renders_as_empty", searchFlightsRequest(
		func(m mockField) {
			m.searcher.On("SearchByName", mock.Anything, "London", "New York", params).
				Return(flight.Outcome{
					Kind:          flight.OutcomeUnresolved,
					Itineraries:   []dto.Itinerary{},
					ResolutionErr: flight.ErrLocationNotFound,
				}, nil)
			m.theme.On("Theme", mock.Anything, "browser-1").Return(dto.ThemeLight)
		},
		dto.SearchFlightResponse{
			SearchCriteria: req,
			Parameters:     params,
			Metadata:       dto.SearchMetadata{Status: dto.SearchStatusEmpty},
			Notice:         NoFlightsNotice,
			Display:        dto.Display{Theme: dto.ThemeLight},
			Itineraries:    []dto.ItineraryCard{},
		},
		nil,
	))

	t.Run("fetch_failure", searchFlightsRequest(
		func(m mockField) {
			m.searcher.On("SearchByName", mock.Anything, "London", "New York", params).
				Return(flight.Outcome{}, &skyscrapper.TransportError{StatusCode: http.StatusInternalServerError})
		},
		dto.SearchFlightResponse{},
		ErrFlightDataUnavailable,
	))
}

func TestSearchService_SearchFlights_FetchFailureKeepsCause(t *testing.T) {
	searcher := NewMockFlightSearcher(t)
	transportErr := &skyscrapper.TransportError{StatusCode: http.StatusServiceUnavailable, Body: "down"}
	searcher.On("SearchByName", mock.Anything, "Paris", "Rome", mock.Anything).
		Return(flight.Outcome{}, transportErr)

	s := NewSearchService(searcher, nil, NewMockThemeReader(t), defaultParameters)

	_, err := s.SearchFlights(context.Background(), dto.SearchFlightRequest{
		Origin:        "Paris",
		Destination:   "Rome",
		DepartureDate: "2026-11-20",
	})

	var got *skyscrapper.TransportError
	require.ErrorAs(t, err, &got)
	assert.Equal(t, http.StatusServiceUnavailable, got.StatusCode)
	assert.Equal(t, "There was an issue fetching flight data. Please try again.", ErrFlightDataUnavailable.Message)
}

func TestSearchService_ResolveLocation(t *testing.T) {
	london := dto.ResolvedLocation{SkyID: "LHR", EntityID: "95565050"}

	resolveLocationRequest := func(
		setupMock func(m *MockLocationResolver),
		want dto.ResolveLocationResponse,
		wantErr error,
	) func(t *testing.T) {
		return func(t *testing.T) {
			resolver := NewMockLocationResolver(t)
			setupMock(resolver)

			s := NewSearchService(nil, resolver, nil, defaultParameters)

			got, err := s.ResolveLocation(context.Background(), dto.ResolveLocationRequest{Query: "London"})

			if wantErr != nil {
				assert.ErrorIs(t, err, wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, want, got)
		}
	}

	t.Run("resolved", resolveLocationRequest(
		func(m *MockLocationResolver) {
			m.On("Resolve", mock.Anything, "London").Return(london, nil)
		},
		dto.ResolveLocationResponse{Query: "London", Location: london},
		nil,
	))

	t.Run("not_found", resolveLocationRequest(
		func(m *MockLocationResolver) {
			m.On("Resolve", mock.Anything, "London").Return(dto.ResolvedLocation{}, flight.ErrLocationNotFound)
		},
		dto.ResolveLocationResponse{},
		flight.ErrLocationNotFound,
	))

	t.Run("rate_limited", resolveLocationRequest(
		func(m *MockLocationResolver) {
			m.On("Resolve", mock.Anything, "London").Return(dto.ResolvedLocation{}, skyscrapper.ErrProviderRateLimitExceeded)
		},
		dto.ResolveLocationResponse{},
		skyscrapper.ErrProviderRateLimitExceeded,
	))

	t.Run("transport_failure", resolveLocationRequest(
		func(m *MockLocationResolver) {
			m.On("Resolve", mock.Anything, "London").Return(dto.ResolvedLocation{}, errors.New("connection refused"))
		},
		dto.ResolveLocationResponse{},
		ErrLocationUnavailable,
	))
}
