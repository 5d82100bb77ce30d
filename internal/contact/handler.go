package contact

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"travel-backend/internal/shared/server/respond"
	"travel-backend/internal/shared/telemetry"
)

// Handler wires the contact endpoint to a Repo.
type Handler struct {
	Repo Repo
}

// NewHandler constructs a Handler.
func NewHandler(repo Repo) *Handler {
	return &Handler{Repo: repo}
}

// RegisterRoutes attaches contact routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/contact", h.create)
}

type createRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

func (h *Handler) create(c *gin.Context) {
	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	text := strings.TrimSpace(req.Message)
	if name == "" || email == "" || text == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error",
			"All fields (name, email, message) are required.", nil)
		return
	}

	msg := Message{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}
	if err := h.Repo.CreateMessage(c.Request.Context(), msg); err != nil {
		telemetry.Error("contact.create", map[string]any{
			"request_id": c.GetString("requestId"),
			"error":      err.Error(),
		})
		respond.Error(c, http.StatusInternalServerError, "internal",
			"Something went wrong. Please try again later.", nil)
		return
	}

	telemetry.Info("contact.received", map[string]any{
		"request_id": c.GetString("requestId"),
		"name":       name,
	})
	respond.OK(c, gin.H{
		"success": true,
		"message": "Your message has been sent successfully! We will get back to you within 24 hours.",
	})
}
