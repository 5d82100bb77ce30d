package recommend

import (
	"math"
	"testing"

	"travel-backend/internal/catalog"
)

func TestRateToReference(t *testing.T) {
	if got := RateToReference("INR"); got != 1 {
		t.Errorf("INR rate = %v", got)
	}
	if got := RateToReference(" usd "); got != 84 {
		t.Errorf("usd rate should normalize case and spacing, got %v", got)
	}
	if got := RateToReference("XYZ"); got != defaultRate {
		t.Errorf("unknown code should use the default rate, got %v", got)
	}
}

func TestCurrencyRoundTrip(t *testing.T) {
	if got := FromReference(ToReference(7500, "INR"), "INR"); got != 7500 {
		t.Errorf("reference round trip = %d", got)
	}
	// Other currencies round trip within one display unit.
	for _, currency := range []string{"USD", "EUR", "GBP", "AED", "SGD", "THB", "MYR"} {
		got := FromReference(ToReference(250, currency), currency)
		if got < 249 || got > 251 {
			t.Errorf("%s round trip of 250 = %d", currency, got)
		}
	}
}

func TestProjectCostFloor(t *testing.T) {
	for _, d := range catalog.All() {
		for _, medium := range []string{"bus", "train", "flight", "travel_agency", "own_vehicle"} {
			got := ProjectCost(d, 2, medium)
			floor := d.CostPerDay * 2 * MediumMultiplier(medium)
			if got < floor-1e-9 {
				t.Fatalf("%s via %s: projected %v below daily floor %v", d.Name, medium, got, floor)
			}
		}
	}
}

func TestProjectCostExtendsByDay(t *testing.T) {
	d := catalog.Destination{Name: "X", BaseCost: 10000, CostPerDay: 2000}
	// 5 days is the calibration point, so the base cost passes through.
	if got := ProjectCost(d, 5, "flight"); math.Abs(got-10000*0.85) > 1e-9 {
		t.Errorf("5-day flight cost = %v", got)
	}
	if got := ProjectCost(d, 7, "flight"); math.Abs(got-14000*0.85) > 1e-9 {
		t.Errorf("7-day flight cost = %v", got)
	}
}
