package trips

import (
	"context"
	"encoding/json"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"travel-backend/internal/ai"
	"travel-backend/internal/analytics"
	"travel-backend/internal/catalog"
	"travel-backend/internal/geo"
	"travel-backend/internal/recommend"
	"travel-backend/internal/shared/telemetry"
)

// Service orchestrates the recommendation flow: AI first, static fallback
// always. Side effects (DB row, analytics sheet, geolocation) are best
// effort and never fail a request.
type Service struct {
	AI    ai.Client
	Repo  Repo
	Sheet *analytics.Sheet
	Geo   *geo.Client
}

// NewService constructs a Service. AI may be nil when no provider is wired;
// the fallback path then serves every request.
func NewService(aiClient ai.Client, repo Repo, sheet *analytics.Sheet, geoClient *geo.Client) *Service {
	return &Service{AI: aiClient, Repo: repo, Sheet: sheet, Geo: geoClient}
}

// AIAvailable re-checks the credential on every call so key changes take
// effect without a restart.
func (s *Service) AIAvailable() bool {
	return s.AI != nil && s.AI.Available()
}

// AIMode describes the active recommendation mode for the health endpoint.
func (s *Service) AIMode() string {
	if s.AIAvailable() {
		return "Gemini AI (Real-time)"
	}
	return "Smart Fallback (50+ destinations)"
}

// Recommendations returns destination suggestions for the given preferences.
// It never fails: any AI-path problem falls through to the catalog selector.
func (s *Service) Recommendations(ctx context.Context, prefs recommend.Preferences, requestID string) recommend.Result {
	if s.AIAvailable() {
		client := newRetryingAI(s.AI, requestID)
		text, err := client.GenerateText(ctx, buildRecommendationsPrompt(prefs))
		if err == nil {
			result, perr := parseRecommendationsReply(text, prefs)
			if perr == nil {
				telemetry.Info("ai.recommendations", map[string]any{
					"request_id": requestID,
					"count":      len(result.Recommendations),
				})
				return result
			}
			err = perr
		}
		telemetry.Warn("ai.recommendations.fallback", map[string]any{
			"request_id": requestID,
			"error":      err.Error(),
		})
	}
	return recommend.Select(prefs, catalog.All(), newRand(), s.AIAvailable())
}

// DestinationDetails returns a details document for one destination, from
// the AI when possible, otherwise the static fallback page.
func (s *Service) DestinationDetails(ctx context.Context, destinationName string, prefs recommend.Preferences, requestID string) json.RawMessage {
	if s.AIAvailable() {
		client := newRetryingAI(s.AI, requestID)
		text, err := client.GenerateText(ctx, buildDetailsPrompt(destinationName, prefs))
		if err == nil {
			doc, perr := parseDetailsReply(text)
			if perr == nil {
				return doc
			}
			err = perr
		}
		telemetry.Warn("ai.details.fallback", map[string]any{
			"request_id":  requestID,
			"destination": destinationName,
			"error":       err.Error(),
		})
	}
	return fallbackDetails(destinationName, prefs)
}

// LocationSuggestions returns up to six autocomplete entries for the query.
func (s *Service) LocationSuggestions(ctx context.Context, query, requestID string) []string {
	if s.AIAvailable() {
		client := newRetryingAI(s.AI, requestID)
		text, err := client.GenerateText(ctx, buildSuggestionsPrompt(query))
		if err == nil {
			suggestions, perr := parseSuggestionsReply(text)
			if perr == nil {
				return suggestions
			}
			err = perr
		}
		telemetry.Warn("ai.suggestions.fallback", map[string]any{
			"request_id": requestID,
			"query":      query,
			"error":      err.Error(),
		})
	}
	return staticSuggestions(query)
}

// LookupLocation resolves the client IP to a display location, best effort.
func (s *Service) LookupLocation(ctx context.Context, ip string) string {
	if s.Geo == nil {
		return geo.UnknownLocation
	}
	return s.Geo.Lookup(ctx, ip)
}

// RecordTripRequest persists the request to the database and the analytics
// sheet. Failures are logged and swallowed; bookkeeping never blocks the
// primary response.
func (s *Service) RecordTripRequest(ctx context.Context, prefs recommend.Preferences, ip, ipLocation, requestID string) {
	tr := TripRequest{
		ID:         uuid.NewString(),
		Prefs:      prefs,
		IPAddress:  ip,
		IPLocation: ipLocation,
		CreatedAt:  time.Now().UTC(),
	}
	if s.Repo != nil {
		if err := s.Repo.CreateTripRequest(ctx, tr); err != nil {
			telemetry.Warn("trips.record.db", map[string]any{
				"request_id": requestID,
				"error":      err.Error(),
			})
		}
	}
	if s.Sheet != nil {
		if err := s.Sheet.Append(prefs, ip, ipLocation); err != nil {
			telemetry.Warn("trips.record.sheet", map[string]any{
				"request_id": requestID,
				"error":      err.Error(),
			})
		}
	}
}

func newRand() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
