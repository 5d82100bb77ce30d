// Package trips implements the travel-recommendation surface: request
// parsing, AI prompt/response adaptation, the static fallback path, and
// persistence of trip requests for analytics.
package trips

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"travel-backend/internal/recommend"
)

// Request-field defaults applied when the client omits optional fields.
const (
	defaultBudget       = 50000
	defaultCurrency     = "INR"
	defaultTravelType   = "solo"
	defaultTravelScope  = "within_country"
	defaultNumDays      = 5
	defaultFoodOption   = "with"
	defaultTravelMedium = "any"
)

// flexNumber accepts both JSON numbers and numeric strings, since some
// clients send form values as strings.
type flexNumber float64

func (f *flexNumber) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" || s == `""` {
		return nil
	}
	s = strings.Trim(s, `"`)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	*f = flexNumber(v)
	return nil
}

// styleList accepts either a JSON array of labels or a single
// comma-separated string.
type styleList []string

func (s *styleList) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*s = list
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		// Unexpected shape: treat as no styles rather than failing the
		// whole request.
		*s = nil
		return nil
	}
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			*s = append(*s, trimmed)
		}
	}
	return nil
}

type recommendationsRequest struct {
	Name              string     `json:"name"`
	Budget            flexNumber `json:"budget"`
	Currency          string     `json:"currency"`
	TravelType        string     `json:"travel_type"`
	GroupSize         flexNumber `json:"group_size"`
	TravelScope       string     `json:"travel_scope"`
	NumDays           flexNumber `json:"num_days"`
	FoodAccommodation string     `json:"food_accommodation"`
	FromLocation      string     `json:"from_location"`
	TravelMedium      string     `json:"travel_medium"`
	DestinationStyles styleList  `json:"destination_styles"`
}

// missingField returns the first required field that is absent or empty.
func (r recommendationsRequest) missingField() string {
	switch {
	case strings.TrimSpace(r.Name) == "":
		return "name"
	case r.Budget == 0:
		return "budget"
	case r.NumDays == 0:
		return "num_days"
	case strings.TrimSpace(r.FromLocation) == "":
		return "from_location"
	}
	return ""
}

func (r recommendationsRequest) toPreferences() recommend.Preferences {
	prefs := recommend.Preferences{
		Name:              strings.TrimSpace(r.Name),
		Budget:            float64(r.Budget),
		Currency:          strings.TrimSpace(r.Currency),
		TravelType:        strings.TrimSpace(r.TravelType),
		GroupSize:         int(r.GroupSize),
		TravelScope:       strings.TrimSpace(r.TravelScope),
		NumDays:           int(r.NumDays),
		FoodAccommodation: strings.TrimSpace(r.FoodAccommodation),
		FromLocation:      strings.TrimSpace(r.FromLocation),
		TravelMedium:      strings.TrimSpace(r.TravelMedium),
		DestinationStyles: r.DestinationStyles,
	}
	if prefs.Budget == 0 {
		prefs.Budget = defaultBudget
	}
	if prefs.Currency == "" {
		prefs.Currency = defaultCurrency
	}
	prefs.Currency = strings.ToUpper(prefs.Currency)
	if prefs.TravelType == "" {
		prefs.TravelType = defaultTravelType
	}
	if prefs.GroupSize <= 0 {
		prefs.GroupSize = 1
	}
	if prefs.TravelScope == "" {
		prefs.TravelScope = defaultTravelScope
	}
	if prefs.NumDays <= 0 {
		prefs.NumDays = defaultNumDays
	}
	if prefs.FoodAccommodation == "" {
		prefs.FoodAccommodation = defaultFoodOption
	}
	if prefs.TravelMedium == "" {
		prefs.TravelMedium = defaultTravelMedium
	}
	return prefs
}

// TripRequest is the persisted analytics record for one recommendations
// call.
type TripRequest struct {
	ID         string
	Prefs      recommend.Preferences
	IPAddress  string
	IPLocation string
	CreatedAt  time.Time
}
