package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"spacex-dashboard/internal/api/handler"
	"spacex-dashboard/internal/dashboard"
	"spacex-dashboard/internal/dataset"
	"spacex-dashboard/internal/render"
	"spacex-dashboard/pkg/router"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *router.Router {
	t.Helper()
	ds, err := dataset.LoadCSV(context.Background(), "../../testdata/spacex_launch_dash.csv")
	require.NoError(t, err)
	r := router.New()
	RegisterRoutes(r, handler.New(dashboard.New(ds), render.New(640, 320)))
	return r
}

func TestRegisterRoutes(t *testing.T) {
	r := newTestRouter(t)
	tests := []struct {
		method, target string
		status         int
		contentType    string
	}{
		{http.MethodGet, "/", http.StatusOK, "text/html; charset=utf-8"},
		{http.MethodGet, "/api/v1/layout", http.StatusOK, "application/json"},
		{http.MethodGet, "/api/v1/dataset", http.StatusOK, "application/json"},
		{http.MethodGet, "/api/v1/charts/pie?site=ALL", http.StatusOK, "application/json"},
		{http.MethodGet, "/api/v1/charts/scatter?low=0&high=5000", http.StatusOK, "application/json"},
		{http.MethodGet, "/api/v1/records?format=json", http.StatusOK, "application/json"},
		{http.MethodGet, "/charts/success-pie-chart.svg", http.StatusOK, "image/svg+xml"},
		{http.MethodGet, "/charts/success-payload-scatter-chart.png", http.StatusOK, "image/png"},
		{http.MethodGet, "/charts/nope.svg", http.StatusNotFound, ""},
		{http.MethodGet, "/api/v1/update", http.StatusMethodNotAllowed, ""},
		{http.MethodDelete, "/api/v1/layout", http.StatusMethodNotAllowed, ""},
		{http.MethodGet, "/api/v1/unknown", http.StatusNotFound, ""},
		{http.MethodGet, "/swagger/doc.json", http.StatusOK, ""},
	}
	for _, tt := range tests {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.target, nil))
		assert.Equal(t, tt.status, rec.Code, "%s %s", tt.method, tt.target)
		if tt.contentType != "" {
			assert.Equal(t, tt.contentType, rec.Header().Get("Content-Type"), "%s %s", tt.method, tt.target)
		}
	}
}

func TestSwaggerDocListsEndpoints(t *testing.T) {
	r := newTestRouter(t)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	for _, p := range []string{"/charts/pie", "/charts/scatter", "/update", "/records", "/layout", "/dataset"} {
		assert.Contains(t, rec.Body.String(), `"`+p+`"`)
	}
}
