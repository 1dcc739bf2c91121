package transport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/ijalalfrz/flight-explorer/internal/app/config"
	"github.com/ijalalfrz/flight-explorer/internal/app/dto"
	"github.com/ijalalfrz/flight-explorer/internal/app/endpoints"
	httptransport "github.com/ijalalfrz/flight-explorer/internal/pkg/transport/http"
)

// MakeHTTPRouter builds the HTTP router with all the service endpoints.
func MakeHTTPRouter(
	cfg *config.Config,
	endpts endpoints.Endpoints,
) *chi.Mux {
	// Initialize Router
	router := chi.NewRouter()

	router.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	router.Route("/api/v1", func(router chi.Router) {
		router.Use(
			httptransport.RequestID(),
			httptransport.ClientID(),
			httptransport.CORSMiddleware(cfg.HTTP.AllowedOrigins),
			httptransport.Recoverer(slog.Default()),
			render.SetContentType(render.ContentTypeJSON),
		)

		router.Post("/flights/search", httptransport.MakeHandlerFunc(
			endpts.SearchEndpoint.SearchFlights,
			httptransport.DecodeRequest[dto.SearchFlightRequest],
			httptransport.ResponseWithBody,
		))

		router.Get("/locations/resolve", httptransport.MakeHandlerFunc(
			endpts.SearchEndpoint.ResolveLocation,
			httptransport.DecodeQueryRequest[dto.ResolveLocationRequest],
			httptransport.ResponseWithBody,
		))

		router.Get("/preferences", httptransport.MakeHandlerFunc(
			endpts.PreferenceEndpoint.GetPreference,
			httptransport.DecodeQueryRequest[dto.PreferenceRequest],
			httptransport.ResponseWithBody,
		))

		router.Put("/preferences", httptransport.MakeHandlerFunc(
			endpts.PreferenceEndpoint.UpdatePreference,
			httptransport.DecodeRequest[dto.UpdatePreferenceRequest],
			httptransport.ResponseWithBody,
		))
	})

	return router
}
