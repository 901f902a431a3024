package dashboard

import (
	"strings"

	"spacex-dashboard/internal/model"

	"github.com/agnivade/levenshtein"
)

// maxSuggestDistance bounds how far a typo may be from a known site.
const maxSuggestDistance = 3

// KnownSite reports whether site is ALL or a site present in the dataset.
func (d *Dashboard) KnownSite(site string) bool {
	if site == model.SiteAll {
		return true
	}
	for _, s := range d.ds.Sites() {
		if s == site {
			return true
		}
	}
	return false
}

// SuggestSite returns the dataset site closest to an unknown site name,
// compared case-insensitively. ok is false when nothing is close enough.
func (d *Dashboard) SuggestSite(site string) (suggestion string, ok bool) {
	norm := strings.ToUpper(strings.TrimSpace(site))
	best := maxSuggestDistance + 1
	for _, s := range d.ds.Sites() {
		dist := levenshtein.ComputeDistance(norm, strings.ToUpper(s))
		if dist < best {
			best = dist
			suggestion = s
		}
	}
	return suggestion, best <= maxSuggestDistance
}
