package trips

import (
	"encoding/json"
	"fmt"
	"math"

	"travel-backend/internal/ai"
	"travel-backend/internal/recommend"
)

// aiRecommendation mirrors recommend.Recommendation but with optional fields
// so a partially-filled model reply can be validated and defaulted instead of
// rejected outright.
type aiRecommendation struct {
	ID                int      `json:"id"`
	Name              string   `json:"name"`
	Location          string   `json:"location"`
	Tagline           string   `json:"tagline"`
	DistanceFromStart string   `json:"distance_from_start"`
	TravelTime        string   `json:"travel_time"`
	WithinBudget      *bool    `json:"within_budget"`
	EstimatedTotal    *float64 `json:"estimated_total_cost"`
	Currency          string   `json:"currency"`
	CostPerDay        float64  `json:"cost_per_day"`
	BestFor           []string `json:"best_for"`
	Highlight         string   `json:"highlight"`
	ImageKeyword      string   `json:"image_keyword"`
	FamousFor         string   `json:"famous_for"`
	TransportCost     string   `json:"transport_cost"`
	OverBudgetNote    *string  `json:"over_budget_note"`
}

type aiRecommendationsReply struct {
	Recommendations []aiRecommendation `json:"recommendations"`
	AISummary       string             `json:"ai_summary"`
}

// parseRecommendationsReply extracts and validates the model's JSON reply.
// Entries without a name or total cost are dropped; missing fields are
// defaulted. Returns an error when nothing usable survives, which sends the
// caller to the static fallback.
func parseRecommendationsReply(text string, prefs recommend.Preferences) (recommend.Result, error) {
	raw := ai.ExtractJSON(text)
	if raw == nil {
		return recommend.Result{}, fmt.Errorf("no JSON found in model reply")
	}
	var reply aiRecommendationsReply
	if err := json.Unmarshal(raw, &reply); err != nil {
		return recommend.Result{}, fmt.Errorf("model reply decode: %w", err)
	}

	valid := make([]recommend.Recommendation, 0, len(reply.Recommendations))
	for _, r := range reply.Recommendations {
		if r.Name == "" || r.EstimatedTotal == nil {
			continue
		}
		rec := recommend.Recommendation{
			ID:                r.ID,
			Name:              r.Name,
			Location:          r.Location,
			Tagline:           r.Tagline,
			DistanceFromStart: r.DistanceFromStart,
			TravelTime:        r.TravelTime,
			EstimatedTotal:    int(math.Round(*r.EstimatedTotal)),
			Currency:          r.Currency,
			CostPerDay:        int(math.Round(r.CostPerDay)),
			BestFor:           r.BestFor,
			Highlight:         r.Highlight,
			ImageKeyword:      r.ImageKeyword,
			FamousFor:         r.FamousFor,
			TransportCost:     r.TransportCost,
			OverBudgetNote:    r.OverBudgetNote,
		}
		if r.WithinBudget != nil {
			rec.WithinBudget = *r.WithinBudget
		} else {
			rec.WithinBudget = *r.EstimatedTotal <= prefs.Budget
		}
		if rec.Currency == "" {
			rec.Currency = prefs.Currency
		}
		if rec.BestFor == nil {
			rec.BestFor = []string{}
		}
		valid = append(valid, rec)
	}
	if len(valid) == 0 {
		return recommend.Result{}, fmt.Errorf("model reply contained no valid recommendations")
	}
	for i := range valid {
		valid[i].ID = i + 1
	}
	return recommend.Result{Recommendations: valid, AISummary: reply.AISummary}, nil
}

// parseSuggestionsReply extracts a string array from the model's reply,
// capped at maxSuggestions entries.
func parseSuggestionsReply(text string) ([]string, error) {
	raw := ai.ExtractJSON(text)
	if raw == nil {
		return nil, fmt.Errorf("no JSON found in model reply")
	}
	var suggestions []string
	if err := json.Unmarshal(raw, &suggestions); err != nil {
		return nil, fmt.Errorf("model reply decode: %w", err)
	}
	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	return suggestions, nil
}

// parseDetailsReply extracts the details document from the model's reply.
func parseDetailsReply(text string) (json.RawMessage, error) {
	raw := ai.ExtractJSON(text)
	if raw == nil {
		return nil, fmt.Errorf("no JSON found in model reply")
	}
	return raw, nil
}
