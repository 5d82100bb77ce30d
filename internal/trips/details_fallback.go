package trips

import (
	"encoding/json"
	"fmt"

	"travel-backend/internal/recommend"
)

type detailSpot struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	EntryFee    string `json:"entry_fee"`
}

type detailFoodSpot struct {
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
	AvgCost   string `json:"avg_cost"`
}

type detailTravelOption struct {
	Mode     string `json:"mode"`
	Duration string `json:"duration"`
	Cost     string `json:"cost"`
	From     string `json:"from"`
}

type detailAccommodation struct {
	Type         string `json:"type"`
	Name         string `json:"name"`
	CostPerNight string `json:"cost_per_night"`
}

type festival struct {
	Name        string `json:"name"`
	Month       string `json:"month"`
	Description string `json:"description"`
}

type detailCostBreakdown struct {
	TravelToDestination string `json:"travel_to_destination"`
	AccommodationTotal  string `json:"accommodation_total"`
	FoodTotal           string `json:"food_total"`
	SightseeingTotal    string `json:"sightseeing_total"`
	Miscellaneous       string `json:"miscellaneous"`
	GrandTotal          string `json:"grand_total"`
}

type detailsDocument struct {
	Name              string                `json:"name"`
	FullLocation      string                `json:"full_location"`
	DistanceFromStart string                `json:"distance_from_start"`
	Overview          string                `json:"overview"`
	FamousFor         []string              `json:"famous_for"`
	BestSeason        string                `json:"best_season"`
	TouristSpots      []detailSpot          `json:"tourist_spots"`
	FoodSpots         []detailFoodSpot      `json:"food_spots"`
	TravelOptions     []detailTravelOption  `json:"travel_options"`
	Accommodation     []detailAccommodation `json:"accommodation"`
	EventsFestivals   []festival            `json:"events_festivals"`
	CostBreakdown     detailCostBreakdown   `json:"cost_breakdown"`
	TravelTips        []string              `json:"travel_tips"`
	LocalTransport    string                `json:"local_transport"`
}

// fallbackDetails builds a generic but well-formed details document when the
// AI capability cannot supply one. Festivals come from the static database so
// that section stays genuinely useful.
func fallbackDetails(destinationName string, prefs recommend.Preferences) json.RawMessage {
	currency := prefs.Currency
	if currency == "" {
		currency = defaultCurrency
	}
	from := prefs.FromLocation
	if from == "" {
		from = "India"
	}
	numDays := prefs.NumDays
	if numDays <= 0 {
		numDays = defaultNumDays
	}
	budget := prefs.Budget
	if budget == 0 {
		budget = defaultBudget
	}

	doc := detailsDocument{
		Name:              destinationName,
		FullLocation:      destinationName,
		DistanceFromStart: fmt.Sprintf("From %s", from),
		Overview: fmt.Sprintf(
			"%s is a wonderful travel destination with rich culture, scenic landscapes, and memorable experiences. "+
				"Perfect for a %d-day trip from %s. Add your Gemini API key to get AI-powered detailed information.",
			destinationName, numDays, from),
		FamousFor:  []string{"Scenic beauty", "Local culture", "Unique cuisine", "Memorable experiences"},
		BestSeason: "October to March (pleasant weather for most Indian destinations)",
		TouristSpots: []detailSpot{
			{Name: "Main Attraction", Description: "The most popular landmark", EntryFee: fmt.Sprintf("%s 50-500", currency)},
			{Name: "Local Market", Description: "Shop for local handicrafts and street food", EntryFee: "Free"},
		},
		FoodSpots: []detailFoodSpot{
			{Name: "Local Dhaba", Specialty: "Regional cuisine", AvgCost: fmt.Sprintf("%s 100-300 per person", currency)},
		},
		TravelOptions: []detailTravelOption{
			{Mode: "Train", Duration: "Varies", Cost: "Varies", From: from},
			{Mode: "Flight", Duration: "Varies", Cost: "Varies", From: from},
		},
		Accommodation: []detailAccommodation{
			{Type: "Budget", Name: "Local guesthouses", CostPerNight: fmt.Sprintf("%s 500-1500", currency)},
			{Type: "Mid-range", Name: "Business hotels", CostPerNight: fmt.Sprintf("%s 2000-5000", currency)},
		},
		EventsFestivals: staticFestivals(destinationName),
		CostBreakdown: detailCostBreakdown{
			TravelToDestination: fmt.Sprintf("%s varies", currency),
			AccommodationTotal:  fmt.Sprintf("%s for %d nights", currency, numDays),
			FoodTotal:           fmt.Sprintf("%s for %d days", currency, numDays),
			SightseeingTotal:    fmt.Sprintf("%s varies", currency),
			Miscellaneous:       fmt.Sprintf("%s 2000-5000", currency),
			GrandTotal:          fmt.Sprintf("%s %d", currency, int(budget)),
		},
		TravelTips: []string{
			"Book tickets in advance, especially during peak season (October-March)",
			"Carry cash as not all places accept cards",
			"Respect local customs and dress modestly at religious sites",
			"Try local street food but ensure it is freshly cooked",
		},
		LocalTransport: "Auto-rickshaws, local buses, and app-based cabs (Ola/Uber) are usually available",
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		// Marshal of a plain struct cannot realistically fail; keep the
		// contract of always returning a document.
		return json.RawMessage(`{}`)
	}
	return raw
}
