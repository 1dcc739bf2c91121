package skyscrapper

import (
	"fmt"
	"net/http"

	"github.com/ijalalfrz/flight-explorer/internal/pkg/exception"
)

var ErrProviderRateLimitExceeded = exception.ApplicationError{
	StatusCode: http.StatusTooManyRequests,
	Message:    "provider rate limit exceeded",
}

// TransportError is returned for every non-2xx provider response,
// including rejected credentials (401/403).
type TransportError struct {
	Endpoint   string
	StatusCode int
	Body       string
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s returned status %d: %s", e.Endpoint, e.StatusCode, e.Body)
}
