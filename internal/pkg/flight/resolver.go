package flight

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/ijalalfrz/flight-explorer/internal/app/dto"
	"github.com/ijalalfrz/flight-explorer/internal/pkg/skyscrapper"
)

// HubPriority lists the airports preferred when a place name is ambiguous.
var HubPriority = []string{"LHR", "JFK", "CDG", "DXB", "AMS"}

type AirportSearcher interface {
	SearchAirport(ctx context.Context, query string) ([]skyscrapper.AirportCandidate, error)
}

// Resolver maps a free-text place name to provider identifiers.
// Every call is a fresh lookup; nothing is cached.
type Resolver struct {
	Client AirportSearcher
}

func NewResolver(client AirportSearcher) *Resolver {
	return &Resolver{
		Client: client,
	}
}

func (r *Resolver) Resolve(ctx context.Context, query string) (dto.ResolvedLocation, error) {
	candidates, err := r.Client.SearchAirport(ctx, query)
	if err != nil {
		return dto.ResolvedLocation{}, fmt.Errorf("failed to look up %q: %w", query, err)
	}

	candidate, ok := SelectCandidate(candidates)
	if !ok {
		return dto.ResolvedLocation{}, fmt.Errorf("no airports found for %q: %w", query, ErrLocationNotFound)
	}

	slog.DebugContext(ctx, "location resolved",
		slog.String("query", query),
		slog.String("sky_id", candidate.SkyID),
		slog.String("entity_id", candidate.EntityID))

	return dto.ResolvedLocation{
		SkyID:    candidate.SkyID,
		EntityID: candidate.EntityID,
	}, nil
}

// SelectCandidate returns the first hub candidate in provider order, or the
// first candidate when no hub is present. It reports false for no candidates.
func SelectCandidate(candidates []skyscrapper.AirportCandidate) (skyscrapper.AirportCandidate, bool) {
	if len(candidates) == 0 {
		return skyscrapper.AirportCandidate{}, false
	}

	for _, candidate := range candidates {
		if slices.Contains(HubPriority, candidate.SkyID) {
			return candidate, true
		}
	}

	return candidates[0], true
}
