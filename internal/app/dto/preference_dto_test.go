//go:build unit

package dto

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUpdatePreferenceRequest_Bind(t *testing.T) {
	_ = InitValidator()

	bindRequest := func(clientID string, theme string, wantMsg string) func(t *testing.T) {
		return func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPut, "/api/v1/preferences", nil)
			if clientID != "" {
				r.Header.Set(ClientIDHeader, clientID)
			}

			req := UpdatePreferenceRequest{Preference: Preference{Theme: theme}}
			err := req.Bind(r)

			if wantMsg == "" {
				assert.NoError(t, err)
				assert.Equal(t, clientID, req.ClientID)
				return
			}

			assert.EqualError(t, err, wantMsg)
		}
	}

	t.Run("dark_theme", bindRequest("client-1", ThemeDark, ""))
	t.Run("missing_client", bindRequest("", ThemeDark, "X-Client-Id header is required"))
	t.Run("unknown_theme", bindRequest("client-1", "sepia", "theme must be one of [light dark]"))
}

func TestPreferenceRequest_BindQuery(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/api/v1/preferences", nil)

	var req PreferenceRequest
	assert.Error(t, req.BindQuery(r))

	r.Header.Set(ClientIDHeader, "client-1")
	assert.NoError(t, req.BindQuery(r))
	assert.Equal(t, "client-1", req.ClientID)
}

func TestResolveLocationRequest_BindQuery(t *testing.T) {
	_ = InitValidator()

	var req ResolveLocationRequest
	err := req.BindQuery(httptest.NewRequest(http.MethodGet, "/api/v1/locations/resolve", nil))
	assert.EqualError(t, err, "query is a required field")

	err = req.BindQuery(httptest.NewRequest(http.MethodGet, "/api/v1/locations/resolve?query=New+York", nil))
	assert.NoError(t, err)
	assert.Equal(t, "New York", req.Query)
}
