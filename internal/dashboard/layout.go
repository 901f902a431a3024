package dashboard

import (
	"strconv"

	"spacex-dashboard/internal/dataset"
	"spacex-dashboard/internal/model"
)

const (
	Title            = "SpaceX Launch Records Dashboard"
	sitePlaceholder  = "Select a Launch Site"
	payloadLabel     = "Payload range (Kg):"
	payloadSliderMin = 0
	payloadSliderMax = 10000
	payloadStep      = 1000
	payloadMarkStep  = 2500
)

// BuildLayout constructs the page widgets. The slider starts at the
// dataset's payload bounds.
func BuildLayout(ds *dataset.Dataset) model.Layout {
	lo, hi := ds.PayloadBounds()

	var marks []model.Mark
	for v := payloadSliderMin; v <= payloadSliderMax; v += payloadMarkStep {
		marks = append(marks, model.Mark{Value: float64(v), Label: strconv.Itoa(v)})
	}

	options := make([]model.Option, len(model.SiteOptions))
	copy(options, model.SiteOptions)

	return model.Layout{
		Title: model.Heading{
			Text:      Title,
			TextAlign: "center",
			Color:     "#503D36",
			FontSize:  40,
		},
		SiteDropdown: model.Dropdown{
			ID:          model.SiteDropdownID,
			Options:     options,
			Value:       model.SiteAll,
			Placeholder: sitePlaceholder,
			Searchable:  true,
		},
		PieChart: model.Graph{ID: model.PieChartID},
		PayloadRange: model.RangeSlider{
			ID:    model.PayloadSliderID,
			Label: payloadLabel,
			Min:   payloadSliderMin,
			Max:   payloadSliderMax,
			Step:  payloadStep,
			Value: model.PayloadRange{Low: lo, High: hi},
			Marks: marks,
		},
		ScatterChart: model.Graph{ID: model.ScatterChartID},
		Order: []string{
			"title",
			model.SiteDropdownID,
			model.PieChartID,
			model.PayloadSliderID,
			model.ScatterChartID,
		},
	}
}
