package handler

import (
	"encoding/json"
	"net/http"

	"spacex-dashboard/internal/dashboard"
	"spacex-dashboard/internal/model"
	"spacex-dashboard/internal/render"
	"spacex-dashboard/pkg/utils"
)

// Handler serves the dashboard page and its JSON and image endpoints.
type Handler struct {
	dash     *dashboard.Dashboard
	renderer *render.Renderer
}

func New(dash *dashboard.Dashboard, renderer *render.Renderer) *Handler {
	return &Handler{dash: dash, renderer: renderer}
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

// controlState reads site, low and high from the query string. Missing
// values fall back to the page's initial state.
func (h *Handler) controlState(r *http.Request) (model.ControlState, error) {
	st := h.dash.InitialState()
	q := r.URL.Query()
	if site := q.Get("site"); site != "" {
		st.Site = site
	}

	var err error
	if st.Payload.Low, err = utils.ParseFloatParam("low", q.Get("low"), st.Payload.Low); err != nil {
		return st, err
	}
	if st.Payload.High, err = utils.ParseFloatParam("high", q.Get("high"), st.Payload.High); err != nil {
		return st, err
	}
	return st, nil
}

// Page renders the dashboard: title, site dropdown, pie chart, payload
// slider and scatter chart.
func (h *Handler) Page(w http.ResponseWriter, r *http.Request) {
	data := pageData{
		Layout:  h.dash.Layout(),
		Initial: h.dash.InitialState(),
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTmpl.Execute(w, data); err != nil {
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
	}
}

// GetLayout returns the widget layout
// @Summary Get layout
// @Description Widgets of the dashboard in vertical order, with their initial values
// @Tags dashboard
// @Produce json
// @Success 200 {object} model.Layout "Layout"
// @Router /layout [get]
func (h *Handler) GetLayout(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.dash.Layout())
}

// GetDataset returns a summary of the loaded launch table
// @Summary Get dataset info
// @Description Source, record count, sites and payload bounds of the loaded table
// @Tags dashboard
// @Produce json
// @Success 200 {object} model.DatasetInfo "Dataset info"
// @Router /dataset [get]
func (h *Handler) GetDataset(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.dash.Dataset().Info())
}

// Update recomputes the outputs bound to a changed input
// @Summary Update outputs
// @Description Recompute every chart depending on the changed widget for the given control state
// @Tags dashboard
// @Accept json
// @Produce json
// @Param update body model.UpdateRequest true "Changed widget and control state"
// @Success 200 {object} model.UpdateResponse "Recomputed figures keyed by graph ID"
// @Failure 400 {string} string "Invalid request payload"
// @Router /update [post]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	st := h.dash.InitialState()
	if req.State.Site != "" {
		st.Site = req.State.Site
	}
	if req.State.Payload != nil {
		st.Payload = *req.State.Payload
	}

	writeJSON(w, model.UpdateResponse{Outputs: h.dash.Update(req.Changed, st)})
}
