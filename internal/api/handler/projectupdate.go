package handler

import (
	"encoding/json"
	"net/http"

	"github.com/campuslink/backend/internal/api/middleware"
	"github.com/campuslink/backend/internal/api/response"
	"github.com/campuslink/backend/internal/domain"
	"github.com/campuslink/backend/internal/service"
	"github.com/go-chi/chi/v5"
)

// ProjectUpdateHandler handles project update endpoints
type ProjectUpdateHandler struct {
	updates *service.ProjectUpdateService
}

// NewProjectUpdateHandler creates a new project update handler
func NewProjectUpdateHandler(updates *service.ProjectUpdateService) *ProjectUpdateHandler {
	return &ProjectUpdateHandler{updates: updates}
}

// Create posts a new update on a project
func (h *ProjectUpdateHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "unauthorized")
		return
	}

	var input domain.ProjectUpdateCreate
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	u, err := h.updates.Create(r.Context(), chi.URLParam(r, "projectID"), userID, &input)
	if err != nil {
		respondError(w, err)
		return
	}

	response.Created(w, u)
}

// Get retrieves a single update
func (h *ProjectUpdateHandler) Get(w http.ResponseWriter, r *http.Request) {
	u, err := h.updates.Get(r.Context(), chi.URLParam(r, "updateID"))
	if err != nil {
		respondError(w, err)
		return
	}

	response.OK(w, u)
}

// ListByProject retrieves a page of a project's updates
func (h *ProjectUpdateHandler) ListByProject(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	updates, pagination, err := h.updates.ListByProject(r.Context(),
		chi.URLParam(r, "projectID"), queryInt(q.Get("page")), queryInt(q.Get("limit")))
	if err != nil {
		respondError(w, err)
		return
	}

	response.OK(w, map[string]any{
		"updates":    updates,
		"pagination": pagination,
	})
}

// Delete removes an update
func (h *ProjectUpdateHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "unauthorized")
		return
	}

	if err := h.updates.Delete(r.Context(), chi.URLParam(r, "updateID"), userID); err != nil {
		respondError(w, err)
		return
	}

	response.NoContent(w)
}
