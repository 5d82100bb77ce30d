package trips

import (
	"testing"

	"travel-backend/internal/recommend"
)

func TestParseRecommendationsReply(t *testing.T) {
	prefs := recommend.Preferences{Budget: 5000, Currency: "INR"}
	text := "```json\n" + `{
		"recommendations": [
			{"name": "Yelagiri", "estimated_total_cost": 3200, "within_budget": true, "currency": "INR"},
			{"name": "Ooty", "estimated_total_cost": 6400.6},
			{"name": "", "estimated_total_cost": 100},
			{"name": "NoPrice"}
		],
		"ai_summary": "Two great trips for Asha."
	}` + "\n```"

	result, err := parseRecommendationsReply(text, prefs)
	if err != nil {
		t.Fatal(err)
	}
	if len(result.Recommendations) != 2 {
		t.Fatalf("expected 2 valid entries, got %d", len(result.Recommendations))
	}
	if result.AISummary != "Two great trips for Asha." {
		t.Errorf("summary = %q", result.AISummary)
	}

	first, second := result.Recommendations[0], result.Recommendations[1]
	if first.ID != 1 || second.ID != 2 {
		t.Errorf("ids not reassigned: %d %d", first.ID, second.ID)
	}
	if !first.WithinBudget || first.EstimatedTotal != 3200 {
		t.Errorf("first entry: %+v", first)
	}
	// Missing within_budget defaults from cost vs budget; missing currency
	// defaults from preferences; missing best_for defaults to empty list.
	if second.WithinBudget {
		t.Error("6400 > 5000 should default within_budget to false")
	}
	if second.EstimatedTotal != 6401 {
		t.Errorf("fractional cost should round, got %d", second.EstimatedTotal)
	}
	if second.Currency != "INR" {
		t.Errorf("currency default: %q", second.Currency)
	}
	if second.BestFor == nil || len(second.BestFor) != 0 {
		t.Errorf("best_for default: %v", second.BestFor)
	}
}

func TestParseRecommendationsReplyRejectsEmpty(t *testing.T) {
	prefs := recommend.Preferences{Budget: 5000}
	for _, text := range []string{
		"",
		"sorry, I can't help with that",
		`{"recommendations": []}`,
		`{"recommendations": [{"name": "", "estimated_total_cost": 1}]}`,
	} {
		if _, err := parseRecommendationsReply(text, prefs); err == nil {
			t.Errorf("expected error for %q", text)
		}
	}
}

func TestParseSuggestionsReplyCapsAtSix(t *testing.T) {
	text := `["a","b","c","d","e","f","g","h"]`
	got, err := parseSuggestionsReply(text)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != maxSuggestions {
		t.Fatalf("expected %d suggestions, got %d", maxSuggestions, len(got))
	}
}

func TestParseDetailsReply(t *testing.T) {
	doc, err := parseDetailsReply("Here you go: {\"name\":\"Goa\"} enjoy!")
	if err != nil {
		t.Fatal(err)
	}
	if string(doc) != `{"name":"Goa"}` {
		t.Fatalf("doc = %s", doc)
	}
	if _, err := parseDetailsReply("nothing structured"); err == nil {
		t.Fatal("expected error for prose-only reply")
	}
}
