package contents

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/sanchika-app/sanchika/internal/pipeline"
	"github.com/sanchika-app/sanchika/pkg/handlers"
	"github.com/sanchika-app/sanchika/pkg/pagination"
	"github.com/sanchika-app/sanchika/pkg/routes"
)

// Handler provides HTTP endpoints for content operations.
type Handler struct {
	sys         System
	maxBodySize int64
	logger      *slog.Logger
	pagination  pagination.Config
}

// SearchRequest combines pagination and filter criteria for the search endpoint.
type SearchRequest struct {
	pagination.PageRequest
	Filters
}

// NewHandler creates a Handler with the given system, batch body limit,
// logger, and pagination config.
func NewHandler(
	sys System,
	maxBodySize int64,
	logger *slog.Logger,
	pagination pagination.Config,
) *Handler {
	return &Handler{
		sys:         sys,
		maxBodySize: maxBodySize,
		logger:      logger.With("handler", "contents"),
		pagination:  pagination,
	}
}

// Routes returns the route group definition for content endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/contents",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.List},
			{Method: "GET", Pattern: "/{id}", Handler: h.Find},
			{Method: "POST", Pattern: "/search", Handler: h.Search},
			{Method: "POST", Pattern: "/process", Handler: h.Process},
			{Method: "POST", Pattern: "/quick", Handler: h.Quick},
			{Method: "POST", Pattern: "/batch", Handler: h.Batch},
			{Method: "POST", Pattern: "/{id}/approve", Handler: h.Approve},
			{Method: "POST", Pattern: "/{id}/reject", Handler: h.Reject},
		},
	}
}

// List returns a paginated list of contents with optional query parameter filters.
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

// Find returns a single content record by its UUID path parameter.
func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrNotFound)
		return
	}

	c, err := h.sys.Find(r.Context(), id)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, c)
}

// Search accepts a JSON body with pagination and filter criteria and returns
// matching contents.
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

// Process runs the full pipeline over a single submitted item.
func (h *Handler) Process(w http.ResponseWriter, r *http.Request) {
	var input pipeline.Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	out := h.sys.Process(r.Context(), input)
	handlers.RespondJSON(w, http.StatusOK, out)
}

// Quick runs the reduced pipeline over a single submitted item. Quick results
// never publish directly.
func (h *Handler) Quick(w http.ResponseWriter, r *http.Request) {
	var input pipeline.Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	out := h.sys.QuickProcess(r.Context(), input)
	handlers.RespondJSON(w, http.StatusOK, out)
}

// Batch processes a set of items sequentially and returns a summary. The
// request body is capped at the configured limit.
func (h *Handler) Batch(w http.ResponseWriter, r *http.Request) {
	body := http.MaxBytesReader(w, r.Body, h.maxBodySize)

	var req BatchRequest
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	summary := h.sys.Batch(r.Context(), req.Items, req.Quick)
	handlers.RespondJSON(w, http.StatusOK, summary)
}

// Approve publishes a draft and credits the blocks it was composed from.
func (h *Handler) Approve(w http.ResponseWriter, r *http.Request) {
	h.review(w, r, h.sys.Approve)
}

// Reject closes a draft and debits the blocks it was composed from.
func (h *Handler) Reject(w http.ResponseWriter, r *http.Request) {
	h.review(w, r, h.sys.Reject)
}

func (h *Handler) review(
	w http.ResponseWriter,
	r *http.Request,
	decide func(ctx context.Context, id uuid.UUID, cmd ReviewCommand) (*Content, error),
) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrNotFound)
		return
	}

	var cmd ReviewCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	c, err := decide(r.Context(), id, cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, c)
}
