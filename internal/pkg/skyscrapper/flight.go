package skyscrapper

import "encoding/json"

type SearchAirportResponse struct {
	Status bool               `json:"status"`
	Data   []AirportCandidate `json:"data"`
}

type AirportCandidate struct {
	SkyID        string       `json:"skyId"`
	EntityID     string       `json:"entityId"`
	Presentation Presentation `json:"presentation"`
}

type Presentation struct {
	Title           string `json:"title"`
	SuggestionTitle string `json:"suggestionTitle"`
	Subtitle        string `json:"subtitle"`
}

// SearchFlightsResponse keeps the itinerary list raw so a malformed list
// can be told apart from a malformed envelope.
type SearchFlightsResponse struct {
	Status bool `json:"status"`
	Data   *struct {
		Context     json.RawMessage `json:"context"`
		Itineraries json.RawMessage `json:"itineraries"`
	} `json:"data"`
}

type Itinerary struct {
	ID       string          `json:"id"`
	Price    *Price          `json:"price"`
	Legs     []Leg           `json:"legs"`
	Duration json.RawMessage `json:"duration"`
}

type Price struct {
	Raw       *float64 `json:"raw"`
	Formatted string   `json:"formatted"`
}

type Leg struct {
	ID                string   `json:"id"`
	Origin            Place    `json:"origin"`
	Destination       Place    `json:"destination"`
	DurationInMinutes int      `json:"durationInMinutes"`
	StopCount         int      `json:"stopCount"`
	Departure         string   `json:"departure"`
	Arrival           string   `json:"arrival"`
	FlightNumber      string   `json:"flightNumber"`
	Carriers          Carriers `json:"carriers"`
}

type Place struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Carriers struct {
	Marketing []Carrier `json:"marketing"`
}

type Carrier struct {
	Name    string `json:"name"`
	LogoURL string `json:"logoUrl"`
}

// ItineraryQuery carries the identifiers and parameters of one
// itinerary search, already resolved.
type ItineraryQuery struct {
	OriginSkyID         string
	DestinationSkyID    string
	OriginEntityID      string
	DestinationEntityID string
	Date                string
	ReturnDate          string
	CabinClass          string
	Adults              int
	SortBy              string
	Currency            string
	Market              string
	CountryCode         string
}
