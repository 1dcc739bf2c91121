package flight

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ijalalfrz/flight-explorer/internal/app/dto"
	"golang.org/x/sync/errgroup"
)

type LocationResolver interface {
	Resolve(ctx context.Context, query string) (dto.ResolvedLocation, error)
}

type ItineraryFetcher interface {
	Search(ctx context.Context, origin dto.ResolvedLocation, destination dto.ResolvedLocation,
		params dto.SearchParameters) ([]dto.Itinerary, error)
}

type OutcomeKind int

const (
	// OutcomeFetched means both places resolved and the fetcher answered.
	OutcomeFetched OutcomeKind = iota + 1
	// OutcomeUnresolved means a place did not resolve; the result is empty.
	OutcomeUnresolved
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeFetched:
		return "fetched"
	case OutcomeUnresolved:
		return "unresolved"
	default:
		return "unknown"
	}
}

// Outcome is the result of a search by place names. ResolutionErr keeps the
// swallowed resolution failure for diagnostics only.
type Outcome struct {
	Kind          OutcomeKind
	Itineraries   []dto.Itinerary
	ResolutionErr error
}

type Orchestrator struct {
	Resolver LocationResolver
	Fetcher  ItineraryFetcher
}

func NewOrchestrator(resolver LocationResolver, fetcher ItineraryFetcher) *Orchestrator {
	return &Orchestrator{
		Resolver: resolver,
		Fetcher:  fetcher,
	}
}

// SearchByName resolves both places concurrently and then fetches itineraries.
// Resolution failures become an empty OutcomeUnresolved with a nil error;
// fetch failures are returned to the caller.
func (o *Orchestrator) SearchByName(ctx context.Context,
	originName string,
	destinationName string,
	params dto.SearchParameters,
) (Outcome, error) {
	var (
		origin      dto.ResolvedLocation
		destination dto.ResolvedLocation
		group       errgroup.Group
	)

	// plain group: a failing side does not cancel the other lookup
	group.Go(func() error {
		location, err := o.Resolver.Resolve(ctx, originName)
		if err != nil {
			return fmt.Errorf("origin: %w", err)
		}
		origin = location
		return nil
	})

	group.Go(func() error {
		location, err := o.Resolver.Resolve(ctx, destinationName)
		if err != nil {
			return fmt.Errorf("destination: %w", err)
		}
		destination = location
		return nil
	})

	if err := group.Wait(); err != nil {
		slog.WarnContext(ctx, "could not resolve locations, returning empty result",
			slog.String("origin", originName),
			slog.String("destination", destinationName),
			slog.String("error", err.Error()))

		return Outcome{
			Kind:          OutcomeUnresolved,
			Itineraries:   []dto.Itinerary{},
			ResolutionErr: err,
		}, nil
	}

	itineraries, err := o.Fetcher.Search(ctx, origin, destination, params)
	if err != nil {
		return Outcome{}, fmt.Errorf("failed to fetch itineraries: %w", err)
	}

	return Outcome{
		Kind:        OutcomeFetched,
		Itineraries: itineraries,
	}, nil
}
