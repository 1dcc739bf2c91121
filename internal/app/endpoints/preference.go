package endpoints

import (
	"context"
	"fmt"

	"github.com/go-kit/kit/endpoint"
	"github.com/ijalalfrz/flight-explorer/internal/app/dto"
)

type PreferenceService interface {
	GetPreference(ctx context.Context, req dto.PreferenceRequest) (dto.PreferenceResponse, error)
	UpdatePreference(ctx context.Context, req dto.UpdatePreferenceRequest) (dto.PreferenceResponse, error)
}

type PreferenceEndpoint struct {
	GetPreference    endpoint.Endpoint
	UpdatePreference endpoint.Endpoint
}

func MakePreferenceEndpoint(service PreferenceService) PreferenceEndpoint {
	return PreferenceEndpoint{
		GetPreference:    makeGetPreferenceEndpoint(service),
		UpdatePreference: makeUpdatePreferenceEndpoint(service),
	}
}

func makeGetPreferenceEndpoint(service PreferenceService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.PreferenceRequest)
		if !ok || request == nil {
			return nil, errInvalidType
		}

		resp, err := service.GetPreference(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("preference service: %w", err)
		}

		return resp, nil
	}
}

func makeUpdatePreferenceEndpoint(service PreferenceService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.UpdatePreferenceRequest)
		if !ok || request == nil {
			return nil, errInvalidType
		}

		resp, err := service.UpdatePreference(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("preference service: %w", err)
		}

		return resp, nil
	}
}
