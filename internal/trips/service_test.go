package trips

import (
	"context"
	"errors"
	"strings"
	"testing"

	"travel-backend/internal/recommend"
)

type fakeAI struct {
	available bool
	reply     string
	err       error
	calls     int
}

func (f *fakeAI) Available() bool { return f.available }

func (f *fakeAI) GenerateText(ctx context.Context, prompt string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func testServicePrefs() recommend.Preferences {
	return recommend.Preferences{
		Name: "Asha", Budget: 5000, Currency: "INR",
		TravelType: "solo", GroupSize: 1, TravelScope: "within_country",
		NumDays: 3, FoodAccommodation: "with", FromLocation: "Chennai",
		TravelMedium: "bus", DestinationStyles: []string{"hill stations"},
	}
}

func TestRecommendationsUsesAIReply(t *testing.T) {
	client := &fakeAI{
		available: true,
		reply:     `{"recommendations":[{"name":"Yelagiri","estimated_total_cost":2500}],"ai_summary":"Enjoy!"}`,
	}
	svc := NewService(client, NewMemoryRepo(), nil, nil)

	result := svc.Recommendations(context.Background(), testServicePrefs(), "req-1")
	if client.calls != 1 {
		t.Fatalf("AI called %d times, want 1", client.calls)
	}
	if len(result.Recommendations) != 1 || result.Recommendations[0].Name != "Yelagiri" {
		t.Fatalf("unexpected result: %+v", result)
	}
	if result.AISummary != "Enjoy!" {
		t.Errorf("summary = %q", result.AISummary)
	}
}

func TestRecommendationsFallsBackOnAIError(t *testing.T) {
	client := &fakeAI{available: true, err: errors.New("boom")}
	svc := NewService(client, NewMemoryRepo(), nil, nil)

	result := svc.Recommendations(context.Background(), testServicePrefs(), "req-1")
	if len(result.Recommendations) == 0 {
		t.Fatal("fallback must still produce recommendations")
	}
	if result.AISummary == "" {
		t.Fatal("fallback must carry a summary")
	}
}

func TestRecommendationsFallsBackOnGarbageReply(t *testing.T) {
	client := &fakeAI{available: true, reply: "I am sorry, I cannot produce JSON today."}
	svc := NewService(client, NewMemoryRepo(), nil, nil)

	result := svc.Recommendations(context.Background(), testServicePrefs(), "req-1")
	if len(result.Recommendations) == 0 {
		t.Fatal("fallback must still produce recommendations")
	}
}

func TestRecommendationsWithoutAINotesDegradedMode(t *testing.T) {
	svc := NewService(nil, NewMemoryRepo(), nil, nil)

	result := svc.Recommendations(context.Background(), testServicePrefs(), "req-1")
	if len(result.Recommendations) == 0 {
		t.Fatal("selector path must produce recommendations")
	}
	if !strings.Contains(result.AISummary, "Gemini API key") {
		t.Errorf("degraded summary should point at the missing key: %q", result.AISummary)
	}
}

func TestDestinationDetailsFallback(t *testing.T) {
	svc := NewService(nil, NewMemoryRepo(), nil, nil)

	doc := svc.DestinationDetails(context.Background(), "Goa", testServicePrefs(), "req-1")
	text := string(doc)
	if !strings.Contains(text, `"name":"Goa"`) {
		t.Fatalf("details missing name: %s", text)
	}
	// Goa has real festivals in the static database.
	if !strings.Contains(text, "Sunburn Festival") {
		t.Errorf("details missing static festivals: %s", text)
	}
}

func TestLocationSuggestionsFallback(t *testing.T) {
	svc := NewService(nil, NewMemoryRepo(), nil, nil)

	got := svc.LocationSuggestions(context.Background(), "chen", "req-1")
	if len(got) == 0 || got[0] != "Chennai, Tamil Nadu" {
		t.Fatalf("suggestions = %v", got)
	}
}

func TestRecordTripRequestSwallowsFailures(t *testing.T) {
	repo := NewMemoryRepo()
	svc := NewService(nil, repo, nil, nil)

	svc.RecordTripRequest(context.Background(), testServicePrefs(), "1.2.3.4", "Unknown", "req-1")
	stored := repo.All()
	if len(stored) != 1 {
		t.Fatalf("expected 1 stored request, got %d", len(stored))
	}
	if stored[0].ID == "" || stored[0].IPAddress != "1.2.3.4" {
		t.Fatalf("stored record: %+v", stored[0])
	}
}

func TestAIMode(t *testing.T) {
	withKey := NewService(&fakeAI{available: true}, nil, nil, nil)
	if withKey.AIMode() != "Gemini AI (Real-time)" {
		t.Errorf("mode = %q", withKey.AIMode())
	}
	without := NewService(&fakeAI{available: false}, nil, nil, nil)
	if !strings.Contains(without.AIMode(), "Fallback") {
		t.Errorf("mode = %q", without.AIMode())
	}
}
