package model

// Widget IDs shared by the page, the binder and the HTTP API.
const (
	SiteDropdownID  = "site-dropdown"
	PayloadSliderID = "payload-slider"
	PieChartID      = "success-pie-chart"
	ScatterChartID  = "success-payload-scatter-chart"
)

// Option is one dropdown entry.
type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// SiteOptions are the fixed entries of the site dropdown.
var SiteOptions = []Option{
	{Label: "ALL SITES", Value: SiteAll},
	{Label: "CCAFS LC-40", Value: "CCAFS LC-40"},
	{Label: "VAFB SLC-4E", Value: "VAFB SLC-4E"},
	{Label: "KSC LC-39A", Value: "KSC LC-39A"},
	{Label: "CCAFS SLC-40", Value: "CCAFS SLC-40"},
}

// Heading is the dashboard title element.
type Heading struct {
	Text      string `json:"text"`
	TextAlign string `json:"text_align"`
	Color     string `json:"color"`
	FontSize  int    `json:"font_size"`
}

// Dropdown is a single-select input widget.
type Dropdown struct {
	ID          string   `json:"id"`
	Options     []Option `json:"options"`
	Value       string   `json:"value"`
	Placeholder string   `json:"placeholder"`
	Searchable  bool     `json:"searchable"`
}

// Mark is a labelled tick on a range slider.
type Mark struct {
	Value float64 `json:"value"`
	Label string  `json:"label"`
}

// RangeSlider is a two-handle numeric input widget.
type RangeSlider struct {
	ID    string       `json:"id"`
	Label string       `json:"label"`
	Min   float64      `json:"min"`
	Max   float64      `json:"max"`
	Step  float64      `json:"step"`
	Value PayloadRange `json:"value"`
	Marks []Mark       `json:"marks"`
}

// Graph is a chart placeholder filled by a binding.
type Graph struct {
	ID string `json:"id"`
}

// Layout lists the page elements in vertical order.
type Layout struct {
	Title        Heading     `json:"title"`
	SiteDropdown Dropdown    `json:"site_dropdown"`
	PieChart     Graph       `json:"pie_chart"`
	PayloadRange RangeSlider `json:"payload_slider"`
	ScatterChart Graph       `json:"scatter_chart"`
	Order        []string    `json:"order"`
}

// UpdateRequest is the body of POST /api/v1/update.
type UpdateRequest struct {
	Changed string      `json:"changed"`
	State   UpdateState `json:"state"`
}

// UpdateState is the control state sent by the page. Missing values fall
// back to the layout defaults.
type UpdateState struct {
	Site    string        `json:"site"`
	Payload *PayloadRange `json:"payload"`
}

// UpdateResponse maps each recomputed output ID to its figure.
type UpdateResponse struct {
	Outputs map[string]interface{} `json:"outputs"`
}
