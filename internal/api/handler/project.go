package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/campuslink/backend/internal/api/middleware"
	"github.com/campuslink/backend/internal/api/response"
	"github.com/campuslink/backend/internal/domain"
	"github.com/campuslink/backend/internal/service"
	"github.com/go-chi/chi/v5"
)

// ProjectHandler handles project and collaboration endpoints
type ProjectHandler struct {
	projects      *service.ProjectService
	collaboration *service.CollaborationService
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(projects *service.ProjectService, collaboration *service.CollaborationService) *ProjectHandler {
	return &ProjectHandler{projects: projects, collaboration: collaboration}
}

// Create handles project creation
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "unauthorized")
		return
	}

	var input domain.ProjectCreate
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	p, err := h.projects.Create(r.Context(), userID, &input)
	if err != nil {
		respondError(w, err)
		return
	}

	response.Created(w, p)
}

// Get retrieves a project with its resolved team and comment tree
func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	detail, err := h.projects.Get(r.Context(), chi.URLParam(r, "projectID"))
	if err != nil {
		respondError(w, err)
		return
	}

	response.OK(w, detail)
}

// List retrieves a page of projects
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.ProjectFilter{
		LookingForTeammates: q.Get("lookingForTeammates") == "true",
		OwnerID:             q.Get("owner"),
		Search:              q.Get("search"),
		Page:                queryInt(q.Get("page")),
		Limit:               queryInt(q.Get("limit")),
	}
	if stack := q.Get("techStack"); stack != "" {
		filter.TechStack = strings.Split(stack, ",")
	}

	projects, pagination, err := h.projects.List(r.Context(), filter)
	if err != nil {
		respondError(w, err)
		return
	}

	response.OK(w, map[string]any{
		"projects":   projects,
		"pagination": pagination,
	})
}

// Update handles a partial project edit
func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "unauthorized")
		return
	}

	var input domain.ProjectUpdateInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	p, err := h.projects.Update(r.Context(), chi.URLParam(r, "projectID"), userID, &input)
	if err != nil {
		respondError(w, err)
		return
	}

	response.OK(w, p)
}

// Delete removes a project
func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "unauthorized")
		return
	}

	if err := h.projects.Delete(r.Context(), chi.URLParam(r, "projectID"), userID); err != nil {
		respondError(w, err)
		return
	}

	response.NoContent(w)
}

// Collaborate sends a collaboration request to the project
func (h *ProjectHandler) Collaborate(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "unauthorized")
		return
	}

	var input domain.CollaborationRequestCreate
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	req, err := h.collaboration.SendRequest(r.Context(), chi.URLParam(r, "projectID"), userID, input.Message)
	if err != nil {
		respondError(w, err)
		return
	}

	response.Created(w, req)
}

// ResolveCollaboration accepts or rejects a pending collaboration request
func (h *ProjectHandler) ResolveCollaboration(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "unauthorized")
		return
	}

	var input domain.CollaborationRequestResolve
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	req, err := h.collaboration.ResolveRequest(r.Context(),
		chi.URLParam(r, "projectID"), chi.URLParam(r, "requestID"), userID, input.Action)
	if err != nil {
		respondError(w, err)
		return
	}

	response.OK(w, req)
}

// Leave removes the caller from the project team
func (h *ProjectHandler) Leave(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "unauthorized")
		return
	}

	if err := h.collaboration.Leave(r.Context(), chi.URLParam(r, "projectID"), userID); err != nil {
		respondError(w, err)
		return
	}

	response.NoContent(w)
}
