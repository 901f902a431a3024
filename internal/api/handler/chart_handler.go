package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"path"
	"strings"

	"spacex-dashboard/internal/aggregate"
	"spacex-dashboard/internal/export"
	"spacex-dashboard/internal/model"
	"spacex-dashboard/internal/render"

	"github.com/rs/zerolog/log"
)

// GetPieChart returns the pie figure for a site
// @Summary Get pie chart
// @Description Success counts by launch site (site=ALL) or outcome counts for one site
// @Tags charts
// @Produce json
// @Param site query string false "Launch site or ALL" default(ALL)
// @Success 200 {object} model.PieChart "Pie figure"
// @Router /charts/pie [get]
func (h *Handler) GetPieChart(w http.ResponseWriter, r *http.Request) {
	st, err := h.controlState(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, h.dash.PieFigure(st.Site))
}

// GetScatterChart returns the payload vs. outcome figure
// @Summary Get scatter chart
// @Description Launches within [low, high] kg at the site, grouped by booster version category
// @Tags charts
// @Produce json
// @Param site query string false "Launch site or ALL" default(ALL)
// @Param low query number false "Lower payload bound (kg)"
// @Param high query number false "Upper payload bound (kg)"
// @Success 200 {object} model.ScatterChart "Scatter figure"
// @Failure 400 {string} string "Invalid payload bound"
// @Router /charts/scatter [get]
func (h *Handler) GetScatterChart(w http.ResponseWriter, r *http.Request) {
	st, err := h.controlState(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, h.dash.ScatterFigure(st.Site, st.Payload))
}

// GetChartImage renders a graph as SVG or PNG. The path is
// /charts/<graph id>.<svg|png>.
func (h *Handler) GetChartImage(w http.ResponseWriter, r *http.Request) {
	name := path.Base(r.URL.Path)
	ext := path.Ext(name)
	id := strings.TrimSuffix(name, ext)

	format, err := render.ParseFormat(ext)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	st, err := h.controlState(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var buf bytes.Buffer
	switch id {
	case model.PieChartID:
		err = h.renderer.Pie(h.dash.PieFigure(st.Site), format, &buf)
	case model.ScatterChartID:
		err = h.renderer.Scatter(h.dash.ScatterFigure(st.Site, st.Payload), format, &buf)
	default:
		http.Error(w, fmt.Sprintf("unknown chart: %s", id), http.StatusNotFound)
		return
	}
	if err != nil {
		log.Error().Err(err).Str("chart", id).Msg("❌ chart render failed")
		http.Error(w, "Failed to render chart", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Cache-Control", "no-store")
	w.Write(buf.Bytes())
}

// GetRecords downloads the launches plotted in the scatter chart
// @Summary Download records
// @Description Launches within [low, high] kg at the site, as CSV or JSON
// @Tags charts
// @Produce text/csv
// @Produce json
// @Param site query string false "Launch site or ALL" default(ALL)
// @Param low query number false "Lower payload bound (kg)"
// @Param high query number false "Upper payload bound (kg)"
// @Param format query string false "csv or json" default(csv)
// @Success 200 {array} model.LaunchRecord "Filtered launches"
// @Failure 400 {string} string "Invalid parameter"
// @Router /records [get]
func (h *Handler) GetRecords(w http.ResponseWriter, r *http.Request) {
	st, err := h.controlState(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	typ := r.URL.Query().Get("format")
	if typ == "" {
		typ = "csv"
	}
	contentType := map[string]string{"csv": "text/csv", "json": "application/json"}[typ]
	if contentType == "" {
		http.Error(w, fmt.Sprintf("unsupported format: %s", typ), http.StatusBadRequest)
		return
	}

	records := aggregate.Filter(h.dash.Dataset(), st.Site, st.Payload)
	var buf bytes.Buffer
	if _, err := export.Write(&buf, typ, records); err != nil {
		http.Error(w, "Failed to export records", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="launches.%s"`, typ))
	w.Write(buf.Bytes())
}
