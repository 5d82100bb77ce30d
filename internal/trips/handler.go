package trips

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	"travel-backend/internal/recommend"
	"travel-backend/internal/shared/server/respond"
	"travel-backend/internal/shared/telemetry"
)

const serviceVersion = "2.0.0"

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches trip routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/recommendations", h.recommendations)
	rg.POST("/destination-details", h.destinationDetails)
	rg.GET("/location-suggestions", h.locationSuggestions)
	rg.GET("/health", h.health)
}

type recommendationsResponse struct {
	Success         bool                       `json:"success"`
	UserPrefs       recommend.Preferences      `json:"user_prefs"`
	IPLocation      string                     `json:"ip_location"`
	Recommendations []recommend.Recommendation `json:"recommendations"`
	AISummary       string                     `json:"ai_summary"`
	Error           string                     `json:"error,omitempty"`
}

func (h *Handler) recommendations(c *gin.Context) {
	var req recommendationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if field := req.missingField(); field != "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", fmt.Sprintf("%q is required", field), nil)
		return
	}

	prefs := req.toPreferences()
	requestID := c.GetString("requestId")
	ip := c.ClientIP()
	ipLocation := h.Svc.LookupLocation(c.Request.Context(), ip)

	h.Svc.RecordTripRequest(c.Request.Context(), prefs, ip, ipLocation, requestID)
	c.Set("aiMode", h.Svc.AIMode())

	result, err := h.safeRecommendations(c.Request.Context(), prefs, requestID)
	if err != nil {
		// Always-answer contract: internal failures still produce a
		// well-formed envelope, never a bare 500.
		respond.OK(c, recommendationsResponse{
			Success:         false,
			UserPrefs:       prefs,
			IPLocation:      ipLocation,
			Recommendations: []recommend.Recommendation{},
			AISummary:       "Something went wrong generating recommendations. Please try again.",
			Error:           err.Error(),
		})
		return
	}

	respond.OK(c, recommendationsResponse{
		Success:         true,
		UserPrefs:       prefs,
		IPLocation:      ipLocation,
		Recommendations: result.Recommendations,
		AISummary:       result.AISummary,
	})
}

// safeRecommendations shields the envelope from panics in the assembly path.
func (h *Handler) safeRecommendations(ctx context.Context, prefs recommend.Preferences, requestID string) (result recommend.Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			telemetry.Error("trips.recommendations.panic", map[string]any{
				"request_id": requestID,
				"panic":      fmt.Sprintf("%v", r),
			})
			err = fmt.Errorf("internal error assembling recommendations")
		}
	}()
	return h.Svc.Recommendations(ctx, prefs, requestID), nil
}

type destinationDetailsRequest struct {
	DestinationName string                 `json:"destination_name"`
	UserPrefs       recommendationsRequest `json:"user_prefs"`
}

func (h *Handler) destinationDetails(c *gin.Context) {
	var req destinationDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	name := strings.TrimSpace(req.DestinationName)
	if name == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "destination_name is required", nil)
		return
	}

	requestID := c.GetString("requestId")
	c.Set("destinationName", name)

	details := h.Svc.DestinationDetails(c.Request.Context(), name, req.UserPrefs.toPreferences(), requestID)
	respond.OK(c, gin.H{"success": true, "details": details})
}

func (h *Handler) locationSuggestions(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if utf8.RuneCountInString(query) < 2 {
		respond.OK(c, gin.H{"suggestions": []string{}})
		return
	}
	suggestions := h.Svc.LocationSuggestions(c.Request.Context(), query, c.GetString("requestId"))
	if suggestions == nil {
		suggestions = []string{}
	}
	respond.OK(c, gin.H{"suggestions": suggestions})
}

func (h *Handler) health(c *gin.Context) {
	respond.OK(c, gin.H{
		"status":       "ok",
		"service":      "travel-backend",
		"ai_available": h.Svc.AIAvailable(),
		"ai_mode":      h.Svc.AIMode(),
		"version":      serviceVersion,
	})
}
