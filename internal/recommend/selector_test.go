package recommend

import (
	"math/rand"
	"strings"
	"testing"

	"travel-backend/internal/catalog"
)

func newRand() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

func TestSelectBudgetPartition(t *testing.T) {
	prefs := Preferences{
		Name: "Asha", Budget: 15000, Currency: "INR",
		NumDays: 5, TravelMedium: "train", TravelScope: "within_country",
		DestinationStyles: []string{"Hill Stations", "Beaches"},
	}
	res := Select(prefs, catalog.All(), newRand(), false)
	if len(res.Recommendations) == 0 {
		t.Fatal("expected recommendations")
	}
	budgetRef := ToReference(prefs.Budget, prefs.Currency)
	sawAspirational := false
	for _, r := range res.Recommendations {
		cost := float64(r.EstimatedTotal) * RateToReference(r.Currency)
		if r.WithinBudget {
			if sawAspirational {
				t.Errorf("%s: within-budget entry after aspirational entry", r.Name)
			}
			if cost > budgetRef {
				t.Errorf("%s: within-budget but cost %v exceeds %v", r.Name, cost, budgetRef)
			}
			if r.OverBudgetNote != nil {
				t.Errorf("%s: within-budget entry carries over-budget note", r.Name)
			}
		} else {
			sawAspirational = true
			if cost <= budgetRef || cost > budgetRef*aspirationalCeiling {
				t.Errorf("%s: aspirational cost %v outside (%v, %v]", r.Name, cost, budgetRef, budgetRef*aspirationalCeiling)
			}
			if r.OverBudgetNote == nil || !strings.Contains(*r.OverBudgetNote, "over budget") {
				t.Errorf("%s: aspirational entry missing over-budget note", r.Name)
			}
		}
	}
}

func TestSelectIDsContiguousAndUnique(t *testing.T) {
	prefs := Preferences{
		Budget: 20000, Currency: "INR", NumDays: 4,
		TravelMedium: "any", TravelScope: "within_country",
	}
	res := Select(prefs, catalog.All(), newRand(), true)
	seen := make(map[string]bool)
	for i, r := range res.Recommendations {
		if r.ID != i+1 {
			t.Errorf("position %d: id %d, want %d", i, r.ID, i+1)
		}
		if seen[r.Name] {
			t.Errorf("duplicate destination %q", r.Name)
		}
		seen[r.Name] = true
	}
}

func TestSelectScopeEnforced(t *testing.T) {
	domestic := Select(Preferences{
		Budget: 50000, Currency: "INR", NumDays: 5,
		TravelMedium: "any", TravelScope: "within_country",
	}, catalog.All(), newRand(), true)
	international := Select(Preferences{
		Budget: 1000, Currency: "USD", NumDays: 7,
		TravelMedium: "flight", TravelScope: "international",
	}, catalog.All(), newRand(), true)

	intl := make(map[string]bool)
	for _, d := range catalog.All() {
		if d.International {
			intl[d.Name] = true
		}
	}
	for _, r := range domestic.Recommendations {
		if intl[r.Name] {
			t.Errorf("within_country scope returned international destination %q", r.Name)
		}
	}
	if len(international.Recommendations) == 0 {
		t.Fatal("international scope returned nothing")
	}
	for _, r := range international.Recommendations {
		if !intl[r.Name] {
			t.Errorf("international scope returned domestic destination %q", r.Name)
		}
	}
}

func TestFilterByScopeFallback(t *testing.T) {
	domesticOnly := []catalog.Destination{
		{Name: "A", International: false},
		{Name: "B", International: false},
	}
	// An all-domestic pool still serves international requests.
	if got := filterByScope(domesticOnly, "international"); len(got) != 2 {
		t.Errorf("empty international pool should fall back to the full pool, got %d", len(got))
	}

	internationalOnly := []catalog.Destination{
		{Name: "C", International: true},
	}
	// The domestic branch has no such fallback.
	if got := filterByScope(internationalOnly, "within_country"); len(got) != 0 {
		t.Errorf("empty domestic pool must stay empty, got %d", len(got))
	}
}

func TestSelectBandCaps(t *testing.T) {
	// No styles: every destination scores 1, so caps are the binding limit.
	res := Select(Preferences{
		Budget: 100000, Currency: "INR", NumDays: 5,
		TravelMedium: "any", TravelScope: "within_country",
	}, catalog.All(), newRand(), true)
	var within, aspirational int
	for _, r := range res.Recommendations {
		if r.WithinBudget {
			within++
		} else {
			aspirational++
		}
	}
	if within == 0 {
		t.Fatal("no within-budget entries for a generous budget")
	}
	if within > maxWithinBudget {
		t.Errorf("within-budget band %d exceeds cap %d", within, maxWithinBudget)
	}
	if aspirational > maxAspirational {
		t.Errorf("aspirational band %d exceeds cap %d", aspirational, maxAspirational)
	}
}

func TestSelectBudgetHillStationByBus(t *testing.T) {
	// A 3-day bus trip with INR 5000 must surface at least one affordable
	// hill station (Yelagiri projects to 1500).
	res := Select(Preferences{
		Budget: 5000, Currency: "INR", NumDays: 3,
		TravelMedium: "bus", TravelScope: "within_country",
		DestinationStyles: []string{"hill stations"},
	}, catalog.All(), newRand(), false)

	found := false
	for _, r := range res.Recommendations {
		if r.WithinBudget {
			found = true
			break
		}
	}
	if !found {
		t.Fatal("expected at least one within-budget hill station")
	}
}

func TestSelectUnknownCurrencyUsesDefaultRate(t *testing.T) {
	res := Select(Preferences{
		Budget: 500, Currency: "XYZ", NumDays: 5,
		TravelMedium: "any", TravelScope: "within_country",
	}, catalog.All(), newRand(), true)
	if len(res.Recommendations) == 0 {
		t.Fatal("unknown currency must not starve the result")
	}
	budgetRef := 500 * float64(defaultRate)
	for _, r := range res.Recommendations {
		cost := float64(r.EstimatedTotal) * RateToReference(r.Currency)
		if r.WithinBudget && cost > budgetRef {
			t.Errorf("%s: cost %v over default-rate budget %v", r.Name, cost, budgetRef)
		}
	}
}

func TestSelectRelaxesStyleGateWhenNothingAffordableMatches(t *testing.T) {
	// "caves" matches almost nothing; a tight budget must still surface
	// affordable destinations via the relaxed pass.
	res := Select(Preferences{
		Budget: 3000, Currency: "INR", NumDays: 2,
		TravelMedium: "bus", TravelScope: "within_country",
		DestinationStyles: []string{"nonexistent style"},
	}, catalog.All(), newRand(), false)
	var within int
	for _, r := range res.Recommendations {
		if r.WithinBudget {
			within++
		}
	}
	if within == 0 {
		t.Fatal("relaxed backfill should fill the within-budget band")
	}
	if within > relaxedWithinLimit {
		t.Errorf("relaxed backfill returned %d entries, limit is %d", within, relaxedWithinLimit)
	}
}

func TestSelectSummaryMentionsMissingKey(t *testing.T) {
	prefs := Preferences{
		Name: "Ravi", Budget: 20000, Currency: "INR", NumDays: 5,
		TravelMedium: "any", TravelScope: "within_country",
	}
	degraded := Select(prefs, catalog.All(), newRand(), false)
	if !strings.Contains(degraded.AISummary, "Gemini API key") {
		t.Errorf("degraded summary should mention the missing key: %q", degraded.AISummary)
	}
	configured := Select(prefs, catalog.All(), newRand(), true)
	if strings.Contains(configured.AISummary, "Gemini API key") {
		t.Errorf("configured summary should not mention the key: %q", configured.AISummary)
	}
	if !strings.Contains(degraded.AISummary, "Ravi") {
		t.Errorf("summary should address the traveler by name: %q", degraded.AISummary)
	}
}

func TestScoreDestination(t *testing.T) {
	dest := catalog.Destination{Styles: []string{"mountains", "adventure"}}

	if got := scoreDestination(nil, dest); got != 1 {
		t.Errorf("no styles: score %d, want neutral 1", got)
	}
	// Alias hit: "snow" expands to include "mountains".
	if got := scoreDestination([]string{"snow"}, dest); got != 2 {
		t.Errorf("alias match: score %d, want 2", got)
	}
	// Word overlap only: "adventure sports" shares the word "adventure".
	if got := scoreDestination([]string{"adventure sports"}, dest); got != 1 {
		t.Errorf("word overlap: score %d, want 1", got)
	}
	// Stopwords alone never match.
	if got := scoreDestination([]string{"the & and"}, dest); got != 0 {
		t.Errorf("stopwords: score %d, want 0", got)
	}
}

func TestTitleCase(t *testing.T) {
	cases := map[string]string{
		"hill stations":         "Hill Stations",
		"village/rural tourism": "Village/Rural Tourism",
		"beaches, city life":    "Beaches, City Life",
	}
	for in, want := range cases {
		if got := titleCase(in); got != want {
			t.Errorf("titleCase(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestGroupDigits(t *testing.T) {
	cases := map[float64]string{
		500:     "500",
		5000:    "5,000",
		50000:   "50,000",
		1234567: "1,234,567",
	}
	for in, want := range cases {
		if got := groupDigits(in); got != want {
			t.Errorf("groupDigits(%v) = %q, want %q", in, got, want)
		}
	}
}
