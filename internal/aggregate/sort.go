package aggregate

import (
	"sort"

	"spacex-dashboard/internal/model"
)

// SortSlices orders pie slices by "label", "value" or "records". Ties keep
// their aggregation order. Unknown keys leave the order unchanged.
func SortSlices(slices []model.PieSlice, sortBy string, ascending bool) []model.PieSlice {
	less := func(i, j int) bool { return false }
	switch sortBy {
	case "label":
		less = func(i, j int) bool { return slices[i].Label < slices[j].Label }
	case "value":
		less = func(i, j int) bool { return slices[i].Value < slices[j].Value }
	case "records":
		less = func(i, j int) bool { return slices[i].RecordCount < slices[j].RecordCount }
	default:
		return slices
	}

	sort.SliceStable(slices, func(i, j int) bool {
		if ascending {
			return less(i, j)
		}
		return less(j, i)
	})
	return slices
}
