package flight

import (
	"encoding/json"

	"github.com/ijalalfrz/flight-explorer/internal/app/dto"
	"github.com/ijalalfrz/flight-explorer/internal/pkg/skyscrapper"
	"github.com/ijalalfrz/flight-explorer/internal/pkg/utils"
)

// NormalizeItineraries projects provider itineraries onto summary cards,
// keeping provider order. Records without legs are dropped.
func NormalizeItineraries(itineraries []skyscrapper.Itinerary) []dto.Itinerary {
	results := make([]dto.Itinerary, 0, len(itineraries))

	for _, itinerary := range itineraries {
		normalized, ok := NormalizeItinerary(itinerary)
		if !ok {
			continue
		}
		results = append(results, normalized)
	}

	return results
}

// NormalizeItinerary summarizes an itinerary by its first leg. Later legs
// only count towards stops.
func NormalizeItinerary(itinerary skyscrapper.Itinerary) (dto.Itinerary, bool) {
	if len(itinerary.Legs) == 0 {
		return dto.Itinerary{}, false
	}

	firstLeg := itinerary.Legs[0]

	return dto.Itinerary{
		Airline:       marketingCarrier(firstLeg),
		FlightNumber:  firstLeg.FlightNumber,
		DepartureTime: firstLeg.Departure,
		ArrivalTime:   firstLeg.Arrival,
		Duration:      duration(itinerary.Duration, firstLeg),
		Stops:         len(itinerary.Legs) - 1,
		Price:         rawPrice(itinerary.Price),
	}, true
}

func marketingCarrier(leg skyscrapper.Leg) string {
	if len(leg.Carriers.Marketing) == 0 {
		return ""
	}

	return leg.Carriers.Marketing[0].Name
}

// rawPrice is 0 when the provider leaves the price out.
func rawPrice(price *skyscrapper.Price) float64 {
	if price == nil || price.Raw == nil {
		return 0
	}

	return *price.Raw
}

// duration accepts the itinerary duration as minutes or as display text and
// falls back to the first leg's minutes.
func duration(raw json.RawMessage, firstLeg skyscrapper.Leg) string {
	if len(raw) > 0 {
		var minutes float64
		if err := json.Unmarshal(raw, &minutes); err == nil {
			return utils.ConvertMinutesToDuration(int64(minutes))
		}

		var text string
		if err := json.Unmarshal(raw, &text); err == nil && text != "" {
			return text
		}
	}

	if firstLeg.DurationInMinutes > 0 {
		return utils.ConvertMinutesToDuration(int64(firstLeg.DurationInMinutes))
	}

	return ""
}
