package handler

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"spacex-dashboard/internal/dashboard"
	"spacex-dashboard/internal/dataset"
	"spacex-dashboard/internal/model"
	"spacex-dashboard/internal/render"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	ds, err := dataset.LoadCSV(context.Background(), "../../../testdata/spacex_launch_dash.csv")
	require.NoError(t, err)
	return New(dashboard.New(ds), render.New(640, 320))
}

func serve(h http.HandlerFunc, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func TestPage(t *testing.T) {
	h := newTestHandler(t)
	rec := serve(h.Page, http.MethodGet, "/", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	body := rec.Body.String()
	assert.Contains(t, body, "SpaceX Launch Records Dashboard")
	assert.Contains(t, body, `id="site-dropdown"`)
	assert.Contains(t, body, `id="success-pie-chart"`)
	assert.Contains(t, body, `id="payload-slider"`)
	assert.Contains(t, body, `id="success-payload-scatter-chart"`)
	assert.Contains(t, body, "ALL SITES")
	assert.Less(t, strings.Index(body, "success-pie-chart"), strings.Index(body, "payload-slider"))
}

func TestGetLayout(t *testing.T) {
	h := newTestHandler(t)
	rec := serve(h.GetLayout, http.MethodGet, "/api/v1/layout", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var l model.Layout
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &l))
	assert.Equal(t, model.SiteAll, l.SiteDropdown.Value)
	assert.Equal(t, model.PayloadRange{Low: 0, High: 9600}, l.PayloadRange.Value)
	assert.Len(t, l.SiteDropdown.Options, 5)
}

func TestGetDataset(t *testing.T) {
	h := newTestHandler(t)
	rec := serve(h.GetDataset, http.MethodGet, "/api/v1/dataset", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var info model.DatasetInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &info))
	assert.Equal(t, 20, info.RecordCount)
	assert.Equal(t, []string{"CCAFS LC-40", "VAFB SLC-4E", "KSC LC-39A", "CCAFS SLC-40"}, info.Sites)
	assert.Equal(t, 9600.0, info.MaxPayload)
}

func TestGetPieChart(t *testing.T) {
	h := newTestHandler(t)

	t.Run("all sites", func(t *testing.T) {
		rec := serve(h.GetPieChart, http.MethodGet, "/api/v1/charts/pie", "")
		require.Equal(t, http.StatusOK, rec.Code)
		var c model.PieChart
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &c))
		assert.Equal(t, model.SiteAll, c.Site)
		require.Len(t, c.Slices, 4)
		assert.Equal(t, 20, c.RecordCount())
		assert.Equal(t, 9.0, c.Total())
	})

	t.Run("one site", func(t *testing.T) {
		rec := serve(h.GetPieChart, http.MethodGet, "/api/v1/charts/pie?site=KSC+LC-39A", "")
		require.Equal(t, http.StatusOK, rec.Code)
		var c model.PieChart
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &c))
		require.Len(t, c.Slices, 2)
		assert.Equal(t, model.PieSlice{Label: "1", Value: 4, RecordCount: 4}, c.Slices[0])
		assert.Equal(t, model.PieSlice{Label: "0", Value: 1, RecordCount: 1}, c.Slices[1])
	})

	t.Run("unknown site", func(t *testing.T) {
		rec := serve(h.GetPieChart, http.MethodGet, "/api/v1/charts/pie?site=Boca+Chica", "")
		require.Equal(t, http.StatusOK, rec.Code)
		var c model.PieChart
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &c))
		assert.True(t, c.IsEmpty())
	})
}

func TestGetScatterChart(t *testing.T) {
	h := newTestHandler(t)
	tests := []struct {
		name   string
		query  string
		status int
		points int
	}{
		{"defaults", "", http.StatusOK, 20},
		{"range", "?low=3000&high=6000", http.StatusOK, 9},
		{"site and range", "?site=KSC+LC-39A&low=3000&high=6000", http.StatusOK, 4},
		{"inverted range", "?low=6000&high=3000", http.StatusOK, 0},
		{"bad low", "?low=heavy", http.StatusBadRequest, 0},
		{"bad high", "?high=NaN", http.StatusBadRequest, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(h.GetScatterChart, http.MethodGet, "/api/v1/charts/scatter"+tt.query, "")
			require.Equal(t, tt.status, rec.Code)
			if tt.status != http.StatusOK {
				return
			}
			var c model.ScatterChart
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &c))
			assert.Equal(t, tt.points, c.PointCount())
		})
	}
}

func TestUpdate(t *testing.T) {
	h := newTestHandler(t)

	decode := func(t *testing.T, rec *httptest.ResponseRecorder) map[string]json.RawMessage {
		t.Helper()
		require.Equal(t, http.StatusOK, rec.Code)
		var resp struct {
			Outputs map[string]json.RawMessage `json:"outputs"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		return resp.Outputs
	}

	t.Run("site change updates both charts", func(t *testing.T) {
		body := `{"changed":"site-dropdown","state":{"site":"VAFB SLC-4E","payload":[0,10000]}}`
		out := decode(t, serve(h.Update, http.MethodPost, "/api/v1/update", body))
		require.Len(t, out, 2)

		var pie model.PieChart
		require.NoError(t, json.Unmarshal(out[model.PieChartID], &pie))
		assert.Equal(t, "VAFB SLC-4E", pie.Site)
		assert.Equal(t, 3, pie.RecordCount())

		var sc model.ScatterChart
		require.NoError(t, json.Unmarshal(out[model.ScatterChartID], &sc))
		assert.Equal(t, 3, sc.PointCount())
	})

	t.Run("slider change updates scatter only", func(t *testing.T) {
		body := `{"changed":"payload-slider","state":{"site":"ALL","payload":[5000,10000]}}`
		out := decode(t, serve(h.Update, http.MethodPost, "/api/v1/update", body))
		require.Len(t, out, 1)

		var sc model.ScatterChart
		require.NoError(t, json.Unmarshal(out[model.ScatterChartID], &sc))
		assert.Equal(t, model.PayloadRange{Low: 5000, High: 10000}, sc.Range)
		assert.Equal(t, 4, sc.PointCount())
	})

	t.Run("missing state uses initial values", func(t *testing.T) {
		out := decode(t, serve(h.Update, http.MethodPost, "/api/v1/update", `{}`))
		require.Len(t, out, 2)

		var sc model.ScatterChart
		require.NoError(t, json.Unmarshal(out[model.ScatterChartID], &sc))
		assert.Equal(t, model.SiteAll, sc.Site)
		assert.Equal(t, 20, sc.PointCount())
	})

	t.Run("invalid json", func(t *testing.T) {
		rec := serve(h.Update, http.MethodPost, "/api/v1/update", `{"changed":`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetChartImage(t *testing.T) {
	h := newTestHandler(t)
	tests := []struct {
		name        string
		target      string
		status      int
		contentType string
	}{
		{"pie svg", "/charts/success-pie-chart.svg", http.StatusOK, "image/svg+xml"},
		{"pie png", "/charts/success-pie-chart.png?site=KSC+LC-39A", http.StatusOK, "image/png"},
		{"scatter svg", "/charts/success-payload-scatter-chart.svg?low=2000&high=4000", http.StatusOK, "image/svg+xml"},
		{"empty scatter", "/charts/success-payload-scatter-chart.svg?low=9700&high=9800", http.StatusOK, "image/svg+xml"},
		{"unknown chart", "/charts/launch-map.svg", http.StatusNotFound, ""},
		{"bad format", "/charts/success-pie-chart.gif", http.StatusBadRequest, ""},
		{"bad bound", "/charts/success-payload-scatter-chart.svg?low=x", http.StatusBadRequest, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(h.GetChartImage, http.MethodGet, tt.target, "")
			require.Equal(t, tt.status, rec.Code)
			if tt.contentType != "" {
				assert.Equal(t, tt.contentType, rec.Header().Get("Content-Type"))
				assert.NotZero(t, rec.Body.Len())
			}
		})
	}
}

func TestGetChartImagePlaceholder(t *testing.T) {
	h := newTestHandler(t)
	rec := serve(h.GetChartImage, http.MethodGet, "/charts/success-pie-chart.svg?site=Boca+Chica", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "No data")
}

func TestGetRecords(t *testing.T) {
	h := newTestHandler(t)

	t.Run("csv", func(t *testing.T) {
		rec := serve(h.GetRecords, http.MethodGet, "/api/v1/records?site=CCAFS+SLC-40", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
		assert.Contains(t, rec.Header().Get("Content-Disposition"), "launches.csv")

		rows, err := csv.NewReader(rec.Body).ReadAll()
		require.NoError(t, err)
		require.Len(t, rows, 5)
		assert.Equal(t, model.ColLaunchSite, rows[0][1])
	})

	t.Run("json", func(t *testing.T) {
		rec := serve(h.GetRecords, http.MethodGet, "/api/v1/records?format=json&low=9000&high=10000", "")
		require.Equal(t, http.StatusOK, rec.Code)
		var records []model.LaunchRecord
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &records))
		require.Len(t, records, 1)
		assert.Equal(t, "VAFB SLC-4E", records[0].LaunchSite)
	})

	t.Run("empty selection", func(t *testing.T) {
		rec := serve(h.GetRecords, http.MethodGet, "/api/v1/records?format=json&site=Boca+Chica", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("unsupported format", func(t *testing.T) {
		rec := serve(h.GetRecords, http.MethodGet, "/api/v1/records?format=xml", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
