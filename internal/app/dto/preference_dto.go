package dto

import (
	"net/http"

	"github.com/ijalalfrz/flight-explorer/internal/pkg/exception"
)

const (
	ClientIDHeader = "X-Client-Id"

	ThemeLight = "light"
	ThemeDark  = "dark"
)

var errMissingClientID = exception.ApplicationError{
	StatusCode: http.StatusBadRequest,
	Message:    ClientIDHeader + " header is required",
}

type Preference struct {
	Theme string `json:"theme" validate:"required,oneof=light dark"`
}

type PreferenceRequest struct {
	ClientID string `json:"-"`
}

func (p *PreferenceRequest) BindQuery(r *http.Request) error {
	p.ClientID = r.Header.Get(ClientIDHeader)
	if p.ClientID == "" {
		return errMissingClientID
	}

	return nil
}

type UpdatePreferenceRequest struct {
	ClientID string `json:"-"`
	Preference
}

func (p *UpdatePreferenceRequest) Bind(r *http.Request) error {
	p.ClientID = r.Header.Get(ClientIDHeader)

	return p.Validate()
}

func (p *UpdatePreferenceRequest) Validate() error {
	if p.ClientID == "" {
		return errMissingClientID
	}

	if err := ValidateSingleError(p); err != nil {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    err.Error(),
		}
	}

	return nil
}

type PreferenceResponse struct {
	ClientID string `json:"client_id"`
	Preference
}
