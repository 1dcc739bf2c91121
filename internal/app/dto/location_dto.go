package dto

import (
	"net/http"

	"github.com/ijalalfrz/flight-explorer/internal/pkg/exception"
)

// ResolvedLocation is the provider identifier pair of one place. Only the
// resolver produces it and it lives for a single search.
type ResolvedLocation struct {
	SkyID    string `json:"sky_id"`
	EntityID string `json:"entity_id"`
}

type ResolveLocationRequest struct {
	Query string `json:"query" validate:"required,notblank"`
}

func (r *ResolveLocationRequest) BindQuery(req *http.Request) error {
	r.Query = req.URL.Query().Get("query")

	return r.Validate()
}

func (r *ResolveLocationRequest) Validate() error {
	if err := ValidateSingleError(r); err != nil {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    err.Error(),
		}
	}

	return nil
}

type ResolveLocationResponse struct {
	Query    string           `json:"query"`
	Location ResolvedLocation `json:"location"`
}
