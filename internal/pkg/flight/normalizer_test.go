//go:build unit

package flight

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ijalalfrz/flight-explorer/internal/app/dto"
	"github.com/ijalalfrz/flight-explorer/internal/pkg/skyscrapper"
)

func TestNormalizeItinerary(t *testing.T) {
	ptrFloat := func(f float64) *float64 { return &f }

	leg := func(carrier, number, departure, arrival string) skyscrapper.Leg {
		return skyscrapper.Leg{
			FlightNumber: number,
			Departure:    departure,
			Arrival:      arrival,
			Carriers: skyscrapper.Carriers{
				Marketing: []skyscrapper.Carrier{{Name: carrier}},
			},
		}
	}

	normalizeRequest := func(raw skyscrapper.Itinerary, want dto.Itinerary, wantOK bool) func(t *testing.T) {
		return func(t *testing.T) {
			got, ok := NormalizeItinerary(raw)
			if ok != wantOK {
				t.Fatalf("NormalizeItinerary() ok = %v, want %v", ok, wantOK)
			}

			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("NormalizeItinerary() mismatch (-want +got):\n%s", diff)
			}
		}
	}

	t.Run("direct_flight", normalizeRequest(skyscrapper.Itinerary{
		Price:    &skyscrapper.Price{Raw: ptrFloat(320.5)},
		Duration: json.RawMessage(`425`),
		Legs:     []skyscrapper.Leg{leg("British Airways", "BA117", "2026-11-20T08:00:00", "2026-11-20T11:05:00")},
	}, dto.Itinerary{
		Airline:       "British Airways",
		FlightNumber:  "BA117",
		DepartureTime: "2026-11-20T08:00:00",
		ArrivalTime:   "2026-11-20T11:05:00",
		Duration:      "7h 5m",
		Stops:         0,
		Price:         320.5,
	}, true))

	t.Run("multi_leg_summarized_by_first_leg", normalizeRequest(skyscrapper.Itinerary{
		Price: &skyscrapper.Price{Raw: ptrFloat(450)},
		Legs: []skyscrapper.Leg{
			leg("KLM", "KL1000", "2026-11-20T06:00:00", "2026-11-20T08:20:00"),
			leg("Delta", "DL48", "2026-11-20T10:00:00", "2026-11-20T12:30:00"),
			leg("Delta", "DL1", "2026-11-20T14:00:00", "2026-11-20T15:30:00"),
		},
		Duration: json.RawMessage(`"14h 30m"`),
	}, dto.Itinerary{
		Airline:       "KLM",
		FlightNumber:  "KL1000",
		DepartureTime: "2026-11-20T06:00:00",
		ArrivalTime:   "2026-11-20T08:20:00",
		Duration:      "14h 30m",
		Stops:         2,
		Price:         450,
	}, true))

	t.Run("missing_price", normalizeRequest(skyscrapper.Itinerary{
		Legs: []skyscrapper.Leg{leg("Emirates", "EK1", "a", "b")},
	}, dto.Itinerary{
		Airline:       "Emirates",
		FlightNumber:  "EK1",
		DepartureTime: "a",
		ArrivalTime:   "b",
	}, true))

	t.Run("null_raw_price", normalizeRequest(skyscrapper.Itinerary{
		Price: &skyscrapper.Price{Formatted: "$0"},
		Legs:  []skyscrapper.Leg{leg("Emirates", "EK1", "a", "b")},
	}, dto.Itinerary{
		Airline:       "Emirates",
		FlightNumber:  "EK1",
		DepartureTime: "a",
		ArrivalTime:   "b",
	}, true))

	t.Run("leg_duration_fallback", normalizeRequest(skyscrapper.Itinerary{
		Legs: []skyscrapper.Leg{{FlightNumber: "QZ7510", DurationInMinutes: 110}},
	}, dto.Itinerary{
		FlightNumber: "QZ7510",
		Duration:     "1h 50m",
	}, true))

	t.Run("no_legs", normalizeRequest(skyscrapper.Itinerary{
		Price: &skyscrapper.Price{Raw: ptrFloat(100)},
	}, dto.Itinerary{}, false))
}

func TestNormalizeItineraries(t *testing.T) {
	raw := []skyscrapper.Itinerary{
		{ID: "1", Legs: []skyscrapper.Leg{{FlightNumber: "A1"}}},
		{ID: "2"},
		{ID: "3", Legs: []skyscrapper.Leg{{FlightNumber: "B2"}, {FlightNumber: "B3"}}},
	}

	got := NormalizeItineraries(raw)

	gotNumbers := make([]string, len(got))
	gotStops := make([]int, len(got))
	for i, itinerary := range got {
		gotNumbers[i] = itinerary.FlightNumber
		gotStops[i] = itinerary.Stops
	}

	if diff := cmp.Diff([]string{"A1", "B2"}, gotNumbers); diff != "" {
		t.Fatalf("NormalizeItineraries() order mismatch (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff([]int{0, 1}, gotStops); diff != "" {
		t.Fatalf("NormalizeItineraries() stops mismatch (-want +got):\n%s", diff)
	}

	if got := NormalizeItineraries(nil); got == nil || len(got) != 0 {
		t.Fatalf("NormalizeItineraries(nil) = %v, want empty slice", got)
	}
}
