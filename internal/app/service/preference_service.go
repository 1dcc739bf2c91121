package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/ijalalfrz/flight-explorer/internal/app/dto"
	"github.com/ijalalfrz/flight-explorer/internal/pkg/preference"
)

type PreferenceStorer interface {
	GetPreference(ctx context.Context, clientID string) (dto.Preference, error)
	SetPreference(ctx context.Context, clientID string, preference dto.Preference, expiration time.Duration) error
}

type PreferenceService struct {
	Store        PreferenceStorer
	DefaultTheme string
	Expiration   time.Duration
}

func NewPreferenceService(store PreferenceStorer, defaultTheme string, expiration time.Duration) *PreferenceService {
	return &PreferenceService{
		Store:        store,
		DefaultTheme: defaultTheme,
		Expiration:   expiration,
	}
}

// GetPreference godoc
// @Summary      Get preferences
// @Tags         Preferences
// @Param        X-Client-Id  header    string  true  "Browser client id"
// @Success      200          {object}  dto.PreferenceResponse
// @Failure      400          {object}  dto.ErrorResponse
// @Failure      500          {object}  dto.ErrorResponse
// @Router       /api/v1/preferences [get]
func (s *PreferenceService) GetPreference(
	ctx context.Context,
	req dto.PreferenceRequest,
) (dto.PreferenceResponse, error) {
	pref, err := s.Store.GetPreference(ctx, req.ClientID)
	if errors.Is(err, preference.ErrPreferenceNotFound) {
		pref = dto.Preference{Theme: s.DefaultTheme}
	} else if err != nil {
		return dto.PreferenceResponse{}, ErrPreferenceUnavailable.WithCause(err)
	}

	return dto.PreferenceResponse{
		ClientID:   req.ClientID,
		Preference: pref,
	}, nil
}

// UpdatePreference godoc
// @Summary      Update preferences
// @Tags         Preferences
// @Param        X-Client-Id  header    string          true  "Browser client id"
// @Param        request      body      dto.Preference  true  "Preference"
// @Success      200          {object}  dto.PreferenceResponse
// @Failure      400          {object}  dto.ErrorResponse
// @Failure      500          {object}  dto.ErrorResponse
// @Router       /api/v1/preferences [put]
func (s *PreferenceService) UpdatePreference(
	ctx context.Context,
	req dto.UpdatePreferenceRequest,
) (dto.PreferenceResponse, error) {
	if err := s.Store.SetPreference(ctx, req.ClientID, req.Preference, s.Expiration); err != nil {
		return dto.PreferenceResponse{}, ErrPreferenceUnavailable.WithCause(err)
	}

	return dto.PreferenceResponse{
		ClientID:   req.ClientID,
		Preference: req.Preference,
	}, nil
}

// Theme returns the stored theme of a client, or the default one. Storage
// failures never fail the caller.
func (s *PreferenceService) Theme(ctx context.Context, clientID string) string {
	if clientID == "" {
		return s.DefaultTheme
	}

	pref, err := s.Store.GetPreference(ctx, clientID)
	if err != nil {
		if !errors.Is(err, preference.ErrPreferenceNotFound) {
			slog.WarnContext(ctx, "failed to read theme preference", slog.String("error", err.Error()))
		}

		return s.DefaultTheme
	}

	return pref.Theme
}
