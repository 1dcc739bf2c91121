package service

import (
	"net/http"

	"github.com/ijalalfrz/flight-explorer/internal/pkg/exception"
)

// NoFlightsNotice is shown when a search finishes without itineraries.
const NoFlightsNotice = "No flights found."

var ErrFlightDataUnavailable = exception.ApplicationError{
	Message:    "There was an issue fetching flight data. Please try again.",
	StatusCode: http.StatusBadGateway,
}

var ErrLocationUnavailable = exception.ApplicationError{
	Message:    "There was an issue looking up the location. Please try again.",
	StatusCode: http.StatusBadGateway,
}

var ErrPreferenceUnavailable = exception.ApplicationError{
	Message:    "failed to access preferences",
	StatusCode: http.StatusInternalServerError,
}
