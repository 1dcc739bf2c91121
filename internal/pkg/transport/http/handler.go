package http

import (
	"net/http"

	"github.com/go-kit/kit/endpoint"
	kithttp "github.com/go-kit/kit/transport/http"
)

// MakeHandlerFunc wires an endpoint with its codec into a chi handler.
func MakeHandlerFunc(
	endpt endpoint.Endpoint,
	decoder kithttp.DecodeRequestFunc,
	encoder kithttp.EncodeResponseFunc,
) http.HandlerFunc {
	return kithttp.NewServer(
		endpt,
		decoder,
		encoder,
		kithttp.ServerErrorEncoder(ErrorResponse),
	).ServeHTTP
}
