package trips

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"travel-backend/internal/recommend"
)

func newTestRouter(client *fakeAI) (*gin.Engine, *MemoryRepo) {
	gin.SetMode(gin.TestMode)
	repo := NewMemoryRepo()
	svc := NewService(nil, repo, nil, nil)
	if client != nil {
		svc = NewService(client, repo, nil, nil)
	}
	h := NewHandler(svc)

	r := gin.New()
	api := r.Group("/api/v1")
	h.RegisterRoutes(api)
	return r, repo
}

func TestRecommendationsEndpointValidation(t *testing.T) {
	router, _ := newTestRouter(nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/recommendations",
		strings.NewReader(`{"name":"Asha","budget":5000}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "num_days") {
		t.Fatalf("error should name the missing field: %s", resp.Body.String())
	}
}

func TestRecommendationsEndpointAlwaysAnswers(t *testing.T) {
	router, repo := newTestRouter(nil)

	body := `{
		"name": "Asha",
		"budget": 5000,
		"num_days": 3,
		"from_location": "Chennai",
		"travel_medium": "bus",
		"destination_styles": ["hill stations"]
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/recommendations", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var envelope struct {
		Success         bool                       `json:"success"`
		Recommendations []recommend.Recommendation `json:"recommendations"`
		AISummary       string                     `json:"ai_summary"`
		UserPrefs       recommend.Preferences      `json:"user_prefs"`
		IPLocation      string                     `json:"ip_location"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatal(err)
	}
	if !envelope.Success {
		t.Fatal("expected success=true")
	}
	if len(envelope.Recommendations) == 0 {
		t.Fatal("expected recommendations from the fallback path")
	}
	if envelope.UserPrefs.Currency != "INR" || envelope.UserPrefs.NumDays != 3 {
		t.Fatalf("user_prefs echo: %+v", envelope.UserPrefs)
	}
	if envelope.IPLocation == "" {
		t.Fatal("ip_location must always be present")
	}

	// The request is persisted as a side effect.
	if stored := repo.All(); len(stored) != 1 {
		t.Fatalf("expected 1 stored trip request, got %d", len(stored))
	}
}

func TestDestinationDetailsEndpoint(t *testing.T) {
	router, _ := newTestRouter(nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/destination-details",
		strings.NewReader(`{"destination_name":"Manali","user_prefs":{"num_days":4,"from_location":"Delhi"}}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var envelope struct {
		Success bool            `json:"success"`
		Details json.RawMessage `json:"details"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatal(err)
	}
	if !envelope.Success || len(envelope.Details) == 0 {
		t.Fatalf("unexpected envelope: success=%v", envelope.Success)
	}
	if !strings.Contains(string(envelope.Details), "Kullu Dussehra") {
		t.Errorf("Manali details should carry its real festivals")
	}

	// Missing name is the one validation error here.
	reqBad := httptest.NewRequest(http.MethodPost, "/api/v1/destination-details",
		strings.NewReader(`{"destination_name":"  "}`))
	reqBad.Header.Set("Content-Type", "application/json")
	respBad := httptest.NewRecorder()
	router.ServeHTTP(respBad, reqBad)
	if respBad.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", respBad.Code)
	}
}

func TestLocationSuggestionsEndpointShortQuery(t *testing.T) {
	client := &fakeAI{available: true, reply: `["should not be used"]`}
	router, _ := newTestRouter(client)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/location-suggestions?q=c", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if resp.Body.String() != `{"suggestions":[]}` {
		t.Fatalf("short query body: %s", resp.Body.String())
	}
	if client.calls != 0 {
		t.Fatalf("short queries must not invoke the backend, got %d calls", client.calls)
	}
}

func TestLocationSuggestionsEndpoint(t *testing.T) {
	router, _ := newTestRouter(nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/location-suggestions?q=jai", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	var body struct {
		Suggestions []string `json:"suggestions"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if len(body.Suggestions) == 0 {
		t.Fatal("expected static suggestions")
	}
	for _, s := range body.Suggestions {
		if !strings.Contains(strings.ToLower(s), "jai") {
			t.Errorf("suggestion %q does not match query", s)
		}
	}
}

func TestHealthEndpoint(t *testing.T) {
	router, _ := newTestRouter(&fakeAI{available: false})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var body struct {
		Status      string `json:"status"`
		AIAvailable bool   `json:"ai_available"`
		AIMode      string `json:"ai_mode"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body.Status != "ok" || body.AIAvailable {
		t.Fatalf("unexpected health: %+v", body)
	}
	if !strings.Contains(body.AIMode, "Fallback") {
		t.Errorf("ai_mode = %q", body.AIMode)
	}
}
