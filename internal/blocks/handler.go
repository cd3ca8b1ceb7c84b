package blocks

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/sanchika-app/sanchika/internal/analysis"
	"github.com/sanchika-app/sanchika/pkg/handlers"
	"github.com/sanchika-app/sanchika/pkg/pagination"
	"github.com/sanchika-app/sanchika/pkg/routes"
)

// Handler provides HTTP endpoints for block operations.
type Handler struct {
	sys        System
	gate       *Gate
	logger     *slog.Logger
	pagination pagination.Config
}

// SearchRequest combines pagination and filter criteria for the search endpoint.
type SearchRequest struct {
	pagination.PageRequest
	Filters
}

// OutcomeRequest is the body for recording a block outcome.
type OutcomeRequest struct {
	Success bool `json:"success"`
}

// ScoreRequest is the body for the confidence scoring endpoint.
type ScoreRequest struct {
	Content   string            `json:"content"`
	Category  analysis.Category `json:"category"`
	ClusterID string            `json:"cluster_id"`
}

// NewHandler creates a Handler with the given system, gate, logger, and
// pagination config.
func NewHandler(
	sys System,
	gate *Gate,
	logger *slog.Logger,
	pagination pagination.Config,
) *Handler {
	return &Handler{
		sys:        sys,
		gate:       gate,
		logger:     logger.With("handler", "blocks"),
		pagination: pagination,
	}
}

// Routes returns the route group definition for block endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/blocks",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.List},
			{Method: "GET", Pattern: "/clusters", Handler: h.Clusters},
			{Method: "GET", Pattern: "/{id}", Handler: h.Find},
			{Method: "POST", Pattern: "/search", Handler: h.Search},
			{Method: "POST", Pattern: "/score", Handler: h.Score},
			{Method: "POST", Pattern: "/{id}/outcome", Handler: h.Outcome},
		},
	}
}

// List returns a paginated list of blocks with optional query parameter filters.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	page := pagination.PageRequestFromQuery(r.URL.Query(), h.pagination)
	filters := FiltersFromQuery(r.URL.Query())

	result, err := h.sys.List(r.Context(), page, filters)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Clusters returns the known style clusters.
func (h *Handler) Clusters(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, Clusters())
}

// Find returns a single block by its UUID path parameter.
func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrNotFound)
		return
	}

	block, err := h.sys.Find(r.Context(), id)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, block)
}

// Search accepts a JSON body with pagination and filter criteria and returns
// matching blocks.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	var req SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	req.PageRequest.Normalize(h.pagination)

	result, err := h.sys.List(r.Context(), req.PageRequest, req.Filters)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Score runs the confidence gate over submitted content.
func (h *Handler) Score(w http.ResponseWriter, r *http.Request) {
	var req ScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	if !validCluster(req.ClusterID) {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidCluster)
		return
	}

	result := h.gate.Score(req.Content, analysis.NormalizeCategory(string(req.Category)), req.ClusterID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Outcome records a publish outcome against a block's rolling stats.
func (h *Handler) Outcome(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrNotFound)
		return
	}

	var req OutcomeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	if err := h.sys.RecordOutcome(r.Context(), id, req.Success); err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	block, err := h.sys.Find(r.Context(), id)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, block)
}
