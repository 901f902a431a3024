package dataset

import (
	"fmt"
	"slices"

	"spacex-dashboard/internal/model"
)

// Dataset is the launch table. It is built once and never mutated, so it can
// be shared by concurrent readers without locking.
type Dataset struct {
	source  string
	records []model.LaunchRecord
}

// New validates records and wraps a private copy of them.
func New(source string, records []model.LaunchRecord) (*Dataset, error) {
	for i, rec := range records {
		if err := checkLaunch(rec); err != nil {
			return nil, fmt.Errorf("record %d: %w", i+1, err)
		}
	}
	return &Dataset{source: source, records: slices.Clone(records)}, nil
}

// Source is the path or URL the table was loaded from.
func (d *Dataset) Source() string {
	return d.source
}

func (d *Dataset) Len() int {
	return len(d.records)
}

// Records returns a copy of the table in load order.
func (d *Dataset) Records() []model.LaunchRecord {
	return slices.Clone(d.records)
}

// Each calls fn for every record in load order.
func (d *Dataset) Each(fn func(model.LaunchRecord)) {
	for _, rec := range d.records {
		fn(rec)
	}
}

// Sites lists distinct launch sites in order of first appearance.
func (d *Dataset) Sites() []string {
	seen := make(map[string]bool)
	var sites []string
	for _, rec := range d.records {
		if !seen[rec.LaunchSite] {
			seen[rec.LaunchSite] = true
			sites = append(sites, rec.LaunchSite)
		}
	}
	return sites
}

// PayloadBounds returns the smallest and largest payload mass, or zeros for
// an empty table.
func (d *Dataset) PayloadBounds() (min, max float64) {
	for i, rec := range d.records {
		if i == 0 || rec.PayloadMassKg < min {
			min = rec.PayloadMassKg
		}
		if i == 0 || rec.PayloadMassKg > max {
			max = rec.PayloadMassKg
		}
	}
	return min, max
}

func (d *Dataset) Info() model.DatasetInfo {
	lo, hi := d.PayloadBounds()
	return model.DatasetInfo{
		Source:      d.source,
		RecordCount: d.Len(),
		Sites:       d.Sites(),
		MinPayload:  lo,
		MaxPayload:  hi,
	}
}
