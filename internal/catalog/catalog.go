package catalog

import "strings"

// Destination is one entry in the embedded destination catalog.
//
// BaseCost and CostPerDay are denominated in INR, the reference currency for
// the whole catalog, and are calibrated for a 5-day trip. The catalog is
// loaded once at process start and never mutated; concurrent readers are safe.
type Destination struct {
	Name         string
	Location     string
	Tagline      string
	Styles       []string
	BaseCost     float64
	CostPerDay   float64
	Distance     string
	TravelTime   string
	Highlight    string
	ImageKeyword string
	FamousFor    string

	// International partitions the catalog into the domestic and
	// international candidate pools.
	International bool
}

// All returns the full catalog. The returned slice is shared; callers must
// treat it as read-only.
func All() []Destination {
	return destinations
}

// StyleSet returns the destination's style tags as a lowercase set.
func (d Destination) StyleSet() map[string]bool {
	set := make(map[string]bool, len(d.Styles))
	for _, s := range d.Styles {
		set[strings.ToLower(strings.TrimSpace(s))] = true
	}
	return set
}
