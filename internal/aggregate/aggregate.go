package aggregate

import (
	"fmt"
	"strconv"

	"spacex-dashboard/internal/dataset"
	"spacex-dashboard/internal/model"
)

const (
	allSitesPieTitle = "Total Launches for All Sites"
	sitePieTitleFmt  = "Total Launches for %s"
	scatterTitle     = "Payload vs. Success"
)

// group accumulates one pie slice.
type group struct {
	key         string
	value       float64
	recordCount int
}

// grouper keeps groups in order of first appearance.
type grouper struct {
	order  []string
	groups map[string]*group
}

func newGrouper() *grouper {
	return &grouper{groups: make(map[string]*group)}
}

func (g *grouper) add(key string, value float64) {
	grp, exists := g.groups[key]
	if !exists {
		grp = &group{key: key}
		g.groups[key] = grp
		g.order = append(g.order, key)
	}
	grp.value += value
	grp.recordCount++
}

func (g *grouper) slices() []model.PieSlice {
	out := make([]model.PieSlice, 0, len(g.order))
	for _, key := range g.order {
		grp := g.groups[key]
		out = append(out, model.PieSlice{
			Label:       grp.key,
			Value:       grp.value,
			RecordCount: grp.recordCount,
		})
	}
	return out
}

// Pie builds the success chart for a site selector value. For SiteAll the
// slices are launch sites valued by their success count; for a single site
// the slices are outcome values valued by their launch count. An unknown site
// yields a chart without slices.
func Pie(ds *dataset.Dataset, site string) model.PieChart {
	chart := model.PieChart{
		ID:   model.PieChartID,
		Site: site,
	}
	g := newGrouper()

	if site == model.SiteAll {
		chart.Title = allSitesPieTitle
		chart.GroupBy = model.ColLaunchSite
		ds.Each(func(rec model.LaunchRecord) {
			g.add(rec.LaunchSite, float64(rec.Outcome))
		})
	} else {
		chart.Title = fmt.Sprintf(sitePieTitleFmt, site)
		chart.GroupBy = model.ColClass
		ds.Each(func(rec model.LaunchRecord) {
			if rec.LaunchSite == site {
				g.add(strconv.Itoa(rec.Outcome), 1)
			}
		})
	}

	chart.Slices = g.slices()
	return chart
}

// Filter returns the records inside the payload range at the selected site,
// in load order.
func Filter(ds *dataset.Dataset, site string, payload model.PayloadRange) []model.LaunchRecord {
	var out []model.LaunchRecord
	ds.Each(func(rec model.LaunchRecord) {
		if payload.Contains(rec.PayloadMassKg) && rec.MatchesSite(site) {
			out = append(out, rec)
		}
	})
	return out
}

// Scatter builds the payload vs. outcome chart, one series per booster
// version category in order of first appearance.
func Scatter(ds *dataset.Dataset, site string, payload model.PayloadRange) model.ScatterChart {
	chart := model.ScatterChart{
		ID:      model.ScatterChartID,
		Title:   scatterTitle,
		Site:    site,
		Range:   payload,
		XLabel:  model.ColPayloadMass,
		YLabel:  model.ColClass,
		ColorBy: model.ColBoosterVersionCategory,
		Series:  []model.ScatterSeries{},
	}

	index := make(map[string]int)
	for _, rec := range Filter(ds, site, payload) {
		i, exists := index[rec.BoosterVersionCategory]
		if !exists {
			i = len(chart.Series)
			index[rec.BoosterVersionCategory] = i
			chart.Series = append(chart.Series, model.ScatterSeries{Name: rec.BoosterVersionCategory})
		}
		chart.Series[i].Points = append(chart.Series[i].Points, model.ScatterPoint{
			PayloadMassKg:  rec.PayloadMassKg,
			Outcome:        rec.Outcome,
			LaunchSite:     rec.LaunchSite,
			BoosterVersion: rec.BoosterVersion,
		})
	}
	return chart
}
