package dashboard

import (
	"slices"

	"spacex-dashboard/internal/aggregate"
	"spacex-dashboard/internal/dataset"
	"spacex-dashboard/internal/model"
)

// Binding declares that Output is recomputed from the control state whenever
// one of Inputs changes.
type Binding struct {
	Output  string
	Inputs  []string
	Compute func(model.ControlState) interface{}
}

// Dashboard ties the immutable dataset, the layout and the bindings
// together. It holds no mutable state, so one instance serves every request.
type Dashboard struct {
	ds       *dataset.Dataset
	layout   model.Layout
	bindings []Binding
}

func New(ds *dataset.Dataset) *Dashboard {
	d := &Dashboard{
		ds:     ds,
		layout: BuildLayout(ds),
	}
	d.bindings = []Binding{
		{
			Output: model.PieChartID,
			Inputs: []string{model.SiteDropdownID},
			Compute: func(st model.ControlState) interface{} {
				return d.PieFigure(st.Site)
			},
		},
		{
			Output: model.ScatterChartID,
			Inputs: []string{model.SiteDropdownID, model.PayloadSliderID},
			Compute: func(st model.ControlState) interface{} {
				return d.ScatterFigure(st.Site, st.Payload)
			},
		},
	}
	return d
}

func (d *Dashboard) Dataset() *dataset.Dataset {
	return d.ds
}

func (d *Dashboard) Layout() model.Layout {
	return d.layout
}

// Bindings lists the declared output dependencies.
func (d *Dashboard) Bindings() []Binding {
	return slices.Clone(d.bindings)
}

// InitialState is the control state the page starts with.
func (d *Dashboard) InitialState() model.ControlState {
	return model.ControlState{
		Site:    d.layout.SiteDropdown.Value,
		Payload: d.layout.PayloadRange.Value,
	}
}

// Update recomputes every output depending on the changed input. An empty
// changed ID recomputes all outputs, as on first render.
func (d *Dashboard) Update(changed string, st model.ControlState) map[string]interface{} {
	outputs := make(map[string]interface{})
	for _, b := range d.bindings {
		if changed == "" || slices.Contains(b.Inputs, changed) {
			outputs[b.Output] = b.Compute(st)
		}
	}
	return outputs
}

func (d *Dashboard) PieFigure(site string) model.PieChart {
	return aggregate.Pie(d.ds, site)
}

func (d *Dashboard) ScatterFigure(site string, payload model.PayloadRange) model.ScatterChart {
	return aggregate.Scatter(d.ds, site, payload)
}
