package endpoints

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-kit/kit/endpoint"
	"github.com/ijalalfrz/flight-explorer/internal/app/dto"
)

var errInvalidType = errors.New("invalid type")

type SearchService interface {
	SearchFlights(ctx context.Context, req dto.SearchFlightRequest) (dto.SearchFlightResponse, error)
	ResolveLocation(ctx context.Context, req dto.ResolveLocationRequest) (dto.ResolveLocationResponse, error)
}

type SearchEndpoint struct {
	SearchFlights   endpoint.Endpoint
	ResolveLocation endpoint.Endpoint
}

func MakeSearchEndpoint(service SearchService) SearchEndpoint {
	return SearchEndpoint{
		SearchFlights:   makeSearchFlightsEndpoint(service),
		ResolveLocation: makeResolveLocationEndpoint(service),
	}
}

func makeSearchFlightsEndpoint(service SearchService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.SearchFlightRequest)
		if !ok || request == nil {
			return nil, errInvalidType
		}

		resp, err := service.SearchFlights(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("search service: %w", err)
		}

		return resp, nil
	}
}

func makeResolveLocationEndpoint(service SearchService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.ResolveLocationRequest)
		if !ok || request == nil {
			return nil, errInvalidType
		}

		resp, err := service.ResolveLocation(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("search service: %w", err)
		}

		return resp, nil
	}
}
