package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/render"
	"github.com/ijalalfrz/flight-explorer/internal/pkg/exception"
)

// QueryBinder is implemented by requests read from the URL and headers only.
type QueryBinder interface {
	BindQuery(r *http.Request) error
}

// DecodeRequest decodes the JSON body into T and runs its Bind hook.
func DecodeRequest[T any, PT interface {
	*T
	render.Binder
}](_ context.Context, r *http.Request) (interface{}, error) {
	req := PT(new(T))

	if err := render.Bind(r, req); err != nil {
		return nil, asBadRequest(err)
	}

	return req, nil
}

// DecodeQueryRequest builds T from the query string and headers.
func DecodeQueryRequest[T any, PT interface {
	*T
	QueryBinder
}](_ context.Context, r *http.Request) (interface{}, error) {
	req := PT(new(T))

	if err := req.BindQuery(r); err != nil {
		return nil, asBadRequest(err)
	}

	return req, nil
}

func asBadRequest(err error) error {
	var appErr exception.ApplicationError
	if errors.As(err, &appErr) {
		return err
	}

	return exception.ApplicationError{
		StatusCode: http.StatusBadRequest,
		Message:    "invalid request body",
		Cause:      err,
	}
}
