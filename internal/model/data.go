package model

// PieSlice is one sector of the pie chart.
type PieSlice struct {
	Label       string  `json:"label"`
	Value       float64 `json:"value"`
	RecordCount int     `json:"record_count"`
}

// PieChart describes the proportion-of-successes chart.
type PieChart struct {
	ID      string     `json:"id"`
	Title   string     `json:"title"`
	Site    string     `json:"site"`
	GroupBy string     `json:"group_by"` // column the slices are named after
	Slices  []PieSlice `json:"slices"`
}

// Total is the sum of plotted slice values.
func (c PieChart) Total() float64 {
	var sum float64
	for _, s := range c.Slices {
		sum += s.Value
	}
	return sum
}

// RecordCount is the number of launch records grouped into the chart.
func (c PieChart) RecordCount() int {
	n := 0
	for _, s := range c.Slices {
		n += s.RecordCount
	}
	return n
}

func (c PieChart) IsEmpty() bool {
	return len(c.Slices) == 0
}

// ScatterPoint is one plotted launch.
type ScatterPoint struct {
	PayloadMassKg  float64 `json:"x"`
	Outcome        int     `json:"y"`
	LaunchSite     string  `json:"launch_site"`
	BoosterVersion string  `json:"booster_version,omitempty"`
}

// ScatterSeries groups the points sharing one booster version category.
type ScatterSeries struct {
	Name   string         `json:"name"`
	Points []ScatterPoint `json:"points"`
}

// ScatterChart describes the payload vs. outcome chart.
type ScatterChart struct {
	ID      string          `json:"id"`
	Title   string          `json:"title"`
	Site    string          `json:"site"`
	Range   PayloadRange    `json:"range"`
	XLabel  string          `json:"x_label"`
	YLabel  string          `json:"y_label"`
	ColorBy string          `json:"color_by"`
	Series  []ScatterSeries `json:"series"`
}

// PointCount is the number of plotted launches across all series.
func (c ScatterChart) PointCount() int {
	n := 0
	for _, s := range c.Series {
		n += len(s.Points)
	}
	return n
}

func (c ScatterChart) IsEmpty() bool {
	return c.PointCount() == 0
}

// DatasetInfo summarizes the loaded table.
type DatasetInfo struct {
	Source      string   `json:"source"`
	RecordCount int      `json:"record_count"`
	Sites       []string `json:"sites"`
	MinPayload  float64  `json:"min_payload"`
	MaxPayload  float64  `json:"max_payload"`
}
