// Package recommend scores the embedded destination catalog against a
// traveler's preferences and partitions the results into within-budget and
// aspirational bands. It has no external dependencies and always succeeds,
// which makes it the fallback path when the AI capability is down.
package recommend

// Preferences is the normalized per-request input. Style labels are free
// text from the client and are lowercased during selection.
type Preferences struct {
	Name              string   `json:"name"`
	Budget            float64  `json:"budget"`
	Currency          string   `json:"currency"`
	TravelType        string   `json:"travel_type"`
	GroupSize         int      `json:"group_size"`
	TravelScope       string   `json:"travel_scope"`
	NumDays           int      `json:"num_days"`
	FoodAccommodation string   `json:"food_accommodation"`
	FromLocation      string   `json:"from_location"`
	TravelMedium      string   `json:"travel_medium"`
	DestinationStyles []string `json:"destination_styles"`
}

// Recommendation is one suggested destination in the response. The same
// shape is produced by both the selector and the AI adapter.
type Recommendation struct {
	ID                int      `json:"id"`
	Name              string   `json:"name"`
	Location          string   `json:"location"`
	Tagline           string   `json:"tagline"`
	DistanceFromStart string   `json:"distance_from_start"`
	TravelTime        string   `json:"travel_time"`
	WithinBudget      bool     `json:"within_budget"`
	EstimatedTotal    int      `json:"estimated_total_cost"`
	Currency          string   `json:"currency"`
	CostPerDay        int      `json:"cost_per_day"`
	BestFor           []string `json:"best_for"`
	Highlight         string   `json:"highlight"`
	ImageKeyword      string   `json:"image_keyword"`
	FamousFor         string   `json:"famous_for"`
	TransportCost     string   `json:"transport_cost,omitempty"`
	OverBudgetNote    *string  `json:"over_budget_note"`
}

// Result is the converged output of both recommendation paths.
type Result struct {
	Recommendations []Recommendation `json:"recommendations"`
	AISummary       string           `json:"ai_summary"`
}
