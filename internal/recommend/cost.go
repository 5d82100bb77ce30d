package recommend

import (
	"math"

	"travel-backend/internal/catalog"
)

// MediumMultiplier scales a projected cost by the chosen travel medium.
// Budget ground transport discounts the baseline, flights and agency
// packages raise it.
func MediumMultiplier(medium string) float64 {
	switch medium {
	case "bus":
		return 0.50
	case "train":
		return 0.55
	case "flight":
		return 0.85
	case "travel_agency":
		return 1.30
	default:
		return 0.60
	}
}

// ProjectCost estimates a trip's total reference-currency cost. Catalog
// costs are calibrated for a 5-day trip; the projection extends linearly by
// cost-per-day and is floored at costPerDay*numDays so short trips are never
// priced below their daily rate.
func ProjectCost(d catalog.Destination, numDays int, medium string) float64 {
	adjusted := d.BaseCost + float64(numDays-5)*d.CostPerDay
	floor := math.Max(adjusted, d.CostPerDay*float64(numDays))
	return floor * MediumMultiplier(medium)
}
