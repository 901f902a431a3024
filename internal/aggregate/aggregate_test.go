package aggregate

import (
	"context"
	"testing"

	"spacex-dashboard/internal/dataset"
	"spacex-dashboard/internal/model"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadFixture(t *testing.T) *dataset.Dataset {
	t.Helper()
	ds, err := dataset.LoadCSV(context.Background(), "../../testdata/spacex_launch_dash.csv")
	require.NoError(t, err)
	return ds
}

func siteCounts(ds *dataset.Dataset) map[string]int {
	counts := make(map[string]int)
	ds.Each(func(rec model.LaunchRecord) { counts[rec.LaunchSite]++ })
	return counts
}

func TestPieAllSites(t *testing.T) {
	ds := loadFixture(t)
	chart := Pie(ds, model.SiteAll)

	assert.Equal(t, model.PieChartID, chart.ID)
	assert.Equal(t, "Total Launches for All Sites", chart.Title)
	assert.Equal(t, model.ColLaunchSite, chart.GroupBy)
	want := []model.PieSlice{
		{Label: "CCAFS LC-40", Value: 0, RecordCount: 8},
		{Label: "VAFB SLC-4E", Value: 2, RecordCount: 3},
		{Label: "KSC LC-39A", Value: 4, RecordCount: 5},
		{Label: "CCAFS SLC-40", Value: 3, RecordCount: 4},
	}
	if diff := cmp.Diff(want, chart.Slices); diff != "" {
		t.Errorf("slices mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, ds.Len(), chart.RecordCount())
	assert.Equal(t, 9.0, chart.Total())
}

func TestPieSingleSite(t *testing.T) {
	ds := loadFixture(t)
	chart := Pie(ds, "KSC LC-39A")

	assert.Equal(t, "Total Launches for KSC LC-39A", chart.Title)
	assert.Equal(t, model.ColClass, chart.GroupBy)
	assert.Equal(t, []model.PieSlice{
		{Label: "1", Value: 4, RecordCount: 4},
		{Label: "0", Value: 1, RecordCount: 1},
	}, chart.Slices)
}

func TestPieRecordCountMatchesSite(t *testing.T) {
	ds := loadFixture(t)
	for site, n := range siteCounts(ds) {
		chart := Pie(ds, site)
		assert.Equal(t, n, chart.RecordCount(), site)
		assert.Equal(t, float64(n), chart.Total(), site)
	}
	assert.Equal(t, ds.Len(), Pie(ds, model.SiteAll).RecordCount())
}

func TestUnknownSiteIsEmpty(t *testing.T) {
	ds := loadFixture(t)

	pie := Pie(ds, "Boca Chica")
	assert.True(t, pie.IsEmpty())
	assert.NotNil(t, pie.Slices)

	scatter := Scatter(ds, "Boca Chica", model.PayloadRange{Low: 0, High: 10000})
	assert.True(t, scatter.IsEmpty())
	assert.Empty(t, scatter.Series)
}

func TestScatterAllSitesFullRange(t *testing.T) {
	ds := loadFixture(t)
	chart := Scatter(ds, model.SiteAll, model.PayloadRange{Low: 0, High: 10000})

	assert.Equal(t, ds.Len(), chart.PointCount())
	assert.Equal(t, "Payload vs. Success", chart.Title)
	assert.Equal(t, model.ColPayloadMass, chart.XLabel)
	assert.Equal(t, model.ColClass, chart.YLabel)

	var names []string
	for _, s := range chart.Series {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{"v1.0", "v1.1", "FT", "B4", "B5"}, names)
}

func TestScatterFiltersByPayloadAndSite(t *testing.T) {
	ds := loadFixture(t)
	chart := Scatter(ds, "CCAFS LC-40", model.PayloadRange{Low: 500, High: 3170})

	var got []model.ScatterPoint
	for _, s := range chart.Series {
		got = append(got, s.Points...)
	}
	for _, p := range got {
		assert.Equal(t, "CCAFS LC-40", p.LaunchSite)
		assert.GreaterOrEqual(t, p.PayloadMassKg, 500.0)
		assert.LessOrEqual(t, p.PayloadMassKg, 3170.0)
	}
	// 525, 500, 677, 3170, 2296; bounds are inclusive
	assert.Len(t, got, 5)
}

func TestScatterMonotonicInRange(t *testing.T) {
	ds := loadFixture(t)
	for _, site := range append([]string{model.SiteAll}, ds.Sites()...) {
		prev := -1
		for width := 0.0; width <= 5000; width += 500 {
			r := model.PayloadRange{Low: 5000 - width, High: 5000 + width}
			n := Scatter(ds, site, r).PointCount()
			assert.GreaterOrEqual(t, n, prev, "site %s range %v", site, r)
			prev = n
		}
	}
}

func TestScatterInvertedRangeIsEmpty(t *testing.T) {
	ds := loadFixture(t)
	chart := Scatter(ds, model.SiteAll, model.PayloadRange{Low: 9000, High: 1000})
	assert.True(t, chart.IsEmpty())
}

func TestSingleRecordEndToEnd(t *testing.T) {
	ds, err := dataset.New("mem", []model.LaunchRecord{{
		LaunchSite:             "KSC LC-39A",
		PayloadMassKg:          500,
		Outcome:                1,
		BoosterVersionCategory: "v1.0",
	}})
	require.NoError(t, err)

	pie := Pie(ds, model.SiteAll)
	assert.Equal(t, []model.PieSlice{{Label: "KSC LC-39A", Value: 1, RecordCount: 1}}, pie.Slices)

	scatter := Scatter(ds, model.SiteAll, model.PayloadRange{Low: 0, High: 1000})
	require.Len(t, scatter.Series, 1)
	assert.Equal(t, "v1.0", scatter.Series[0].Name)
	assert.Equal(t, []model.ScatterPoint{{PayloadMassKg: 500, Outcome: 1, LaunchSite: "KSC LC-39A"}}, scatter.Series[0].Points)
}

func TestDeterministicAcrossReloads(t *testing.T) {
	a := loadFixture(t)
	b := loadFixture(t)
	r := model.PayloadRange{Low: 1000, High: 6000}
	for _, site := range []string{model.SiteAll, "KSC LC-39A", "nowhere"} {
		if diff := cmp.Diff(Pie(a, site), Pie(b, site)); diff != "" {
			t.Errorf("pie %s differs:\n%s", site, diff)
		}
		if diff := cmp.Diff(Scatter(a, site, r), Scatter(b, site, r)); diff != "" {
			t.Errorf("scatter %s differs:\n%s", site, diff)
		}
	}
}

func TestFilterKeepsLoadOrder(t *testing.T) {
	ds := loadFixture(t)
	recs := Filter(ds, "VAFB SLC-4E", model.PayloadRange{Low: 0, High: 10000})
	require.Len(t, recs, 3)
	assert.Equal(t, []float64{500, 9600, 475}, []float64{recs[0].PayloadMassKg, recs[1].PayloadMassKg, recs[2].PayloadMassKg})
}

func TestSortSlices(t *testing.T) {
	slices := []model.PieSlice{
		{Label: "b", Value: 2, RecordCount: 5},
		{Label: "a", Value: 3, RecordCount: 1},
		{Label: "c", Value: 2, RecordCount: 9},
	}
	got := SortSlices(append([]model.PieSlice(nil), slices...), "value", false)
	assert.Equal(t, []string{"a", "b", "c"}, []string{got[0].Label, got[1].Label, got[2].Label})

	got = SortSlices(append([]model.PieSlice(nil), slices...), "label", true)
	assert.Equal(t, []string{"a", "b", "c"}, []string{got[0].Label, got[1].Label, got[2].Label})

	got = SortSlices(append([]model.PieSlice(nil), slices...), "records", true)
	assert.Equal(t, []string{"a", "b", "c"}, []string{got[0].Label, got[1].Label, got[2].Label})

	got = SortSlices(append([]model.PieSlice(nil), slices...), "bogus", true)
	assert.Equal(t, slices, got)
}
