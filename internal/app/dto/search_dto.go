package dto

import (
	"net/http"
	"strings"
	"time"

	"github.com/ijalalfrz/flight-explorer/internal/pkg/exception"
)

const (
	TripTypeRoundTrip = "round-trip"
	TripTypeOneWay    = "one-way"

	dateLayout = "2006-01-02"
)

// Itinerary is the summary card of one provider itinerary. Carrier, flight
// number and times come from the first leg only.
type Itinerary struct {
	Airline       string  `json:"airline"`
	FlightNumber  string  `json:"flight_number"`
	DepartureTime string  `json:"departure_time"`
	ArrivalTime   string  `json:"arrival_time"`
	Duration      string  `json:"duration"`
	Stops         int     `json:"stops"`
	Price         float64 `json:"price"`
}

// SearchParameters are the non-location inputs of an itinerary search.
type SearchParameters struct {
	DepartureDate string  `json:"departure_date"`
	ReturnDate    *string `json:"return_date,omitempty"`
	CabinClass    string  `json:"cabin_class"`
	Adults        int     `json:"adults"`
	SortBy        string  `json:"sort_by"`
	Currency      string  `json:"currency"`
	Market        string  `json:"market"`
	CountryCode   string  `json:"country_code"`
}

type SearchFlightRequest struct {
	ClientID      string  `json:"-"`
	Origin        string  `json:"origin" validate:"required,notblank"`
	Destination   string  `json:"destination" validate:"required,notblank"`
	TripType      string  `json:"trip_type,omitempty" validate:"omitempty,oneof=round-trip one-way"`
	DepartureDate string  `json:"departure_date" validate:"required,datetime=2006-01-02"`
	ReturnDate    *string `json:"return_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	CabinClass    string  `json:"cabin_class,omitempty" validate:"omitempty,oneof=economy premium business first"`
	Adults        int     `json:"adults,omitempty" validate:"omitempty,min=1"`
	SortBy        string  `json:"sort_by,omitempty" validate:"omitempty,oneof=best price_high fastest outbound_take_off_time outbound_landing_time return_take_off_time return_landing_time"`
	Currency      string  `json:"currency,omitempty" validate:"omitempty,iso4217"`
	Market        string  `json:"market,omitempty" validate:"omitempty,bcp47_language_tag"`
	CountryCode   string  `json:"country_code,omitempty" validate:"omitempty,iso3166_1_alpha2"`
}

func (s *SearchFlightRequest) Bind(r *http.Request) error {
	if r != nil {
		s.ClientID = r.Header.Get(ClientIDHeader)
	}

	if s.ReturnDate != nil && strings.TrimSpace(*s.ReturnDate) == "" {
		s.ReturnDate = nil
	}

	if s.TripType == TripTypeOneWay {
		s.ReturnDate = nil
	}

	return s.Validate()
}

func (s *SearchFlightRequest) Validate() error {
	if err := ValidateSingleError(s); err != nil {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    err.Error(),
		}
	}

	if s.ReturnDate != nil {
		departure, _ := time.Parse(dateLayout, s.DepartureDate)
		ret, _ := time.Parse(dateLayout, *s.ReturnDate)

		if ret.Before(departure) {
			return exception.ApplicationError{
				StatusCode: http.StatusBadRequest,
				Message:    "return_date must not be before departure_date",
			}
		}
	}

	return nil
}

// Parameters fills every unset option from defaults.
func (s SearchFlightRequest) Parameters(defaults SearchParameters) SearchParameters {
	params := defaults
	params.DepartureDate = s.DepartureDate
	params.ReturnDate = s.ReturnDate

	if s.CabinClass != "" {
		params.CabinClass = s.CabinClass
	}

	if s.Adults != 0 {
		params.Adults = s.Adults
	}

	if s.SortBy != "" {
		params.SortBy = s.SortBy
	}

	if s.Currency != "" {
		params.Currency = s.Currency
	}

	if s.Market != "" {
		params.Market = s.Market
	}

	if s.CountryCode != "" {
		params.CountryCode = s.CountryCode
	}

	return params
}

type SearchStatus string

const (
	SearchStatusResults SearchStatus = "results"
	SearchStatusEmpty   SearchStatus = "empty"
)

type SearchMetadata struct {
	TotalResults int          `json:"total_results"`
	SearchTimeMs int          `json:"search_time_ms"`
	Status       SearchStatus `json:"status"`
}

// Display carries the presentation settings injected into the rendered result.
type Display struct {
	Theme string `json:"theme"`
}

type ItineraryCard struct {
	Itinerary
	PriceLabel string `json:"price_label"`
}

// SearchFlightResponse is the response struct for the search flight endpoint
type SearchFlightResponse struct {
	SearchCriteria SearchFlightRequest `json:"search_criteria"`
	Parameters     SearchParameters    `json:"parameters"`
	Metadata       SearchMetadata      `json:"metadata"`
	Notice         string              `json:"notice,omitempty"`
	Display        Display             `json:"display"`
	Itineraries    []ItineraryCard     `json:"itineraries"`
}
