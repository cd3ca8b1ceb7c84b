package validation

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/sanchika-app/sanchika/internal/analysis"
	"github.com/sanchika-app/sanchika/pkg/handlers"
	"github.com/sanchika-app/sanchika/pkg/routes"
)

// Handler provides HTTP endpoints for content validation.
type Handler struct {
	validator *Validator
	logger    *slog.Logger
}

// ValidateRequest is the body for the validation endpoint. ContentID is
// optional; when omitted the check runs without duplicate registration.
type ValidateRequest struct {
	ContentID string `json:"content_id,omitempty"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	Category  string `json:"category"`
}

// NewHandler creates a Handler with the given validator and logger.
func NewHandler(validator *Validator, logger *slog.Logger) *Handler {
	return &Handler{
		validator: validator,
		logger:    logger.With("handler", "validation"),
	}
}

// Routes returns the route group definition for validation endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/validation",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "/validate", Handler: h.Validate},
		},
	}
}

// Validate runs the full check battery over submitted content and returns
// the scored result.
func (h *Handler) Validate(w http.ResponseWriter, r *http.Request) {
	var req ValidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	contentID := req.ContentID
	if contentID == "" {
		contentID = uuid.NewString()
	}

	category := analysis.NormalizeCategory(req.Category)

	result := h.validator.Validate(r.Context(), contentID, req.Title, req.Body, category, 0)
	handlers.RespondJSON(w, http.StatusOK, result)
}
