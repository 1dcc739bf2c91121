package flight

import (
	"net/http"

	"github.com/ijalalfrz/flight-explorer/internal/pkg/exception"
)

var ErrLocationNotFound = exception.ApplicationError{
	StatusCode: http.StatusNotFound,
	Message:    "location not found",
}
