package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/campuslink/backend/internal/api/middleware"
	"github.com/campuslink/backend/internal/api/response"
	"github.com/campuslink/backend/internal/domain"
	"github.com/campuslink/backend/internal/service"
	"github.com/go-chi/chi/v5"
)

// DiscussionHandler handles discussion endpoints
type DiscussionHandler struct {
	discussions *service.DiscussionService
}

// NewDiscussionHandler creates a new discussion handler
func NewDiscussionHandler(discussions *service.DiscussionService) *DiscussionHandler {
	return &DiscussionHandler{discussions: discussions}
}

// Create handles discussion creation
func (h *DiscussionHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "unauthorized")
		return
	}

	var input domain.DiscussionCreate
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	d, err := h.discussions.Create(r.Context(), userID, &input)
	if err != nil {
		respondError(w, err)
		return
	}

	response.Created(w, d)
}

// Get retrieves a discussion with its resolved comment tree
func (h *DiscussionHandler) Get(w http.ResponseWriter, r *http.Request) {
	detail, err := h.discussions.Get(r.Context(), chi.URLParam(r, "discussionID"))
	if err != nil {
		respondError(w, err)
		return
	}

	response.OK(w, detail)
}

// List retrieves a page of discussions
func (h *DiscussionHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.DiscussionFilter{
		Category: q.Get("category"),
		Search:   q.Get("search"),
		Page:     queryInt(q.Get("page")),
		Limit:    queryInt(q.Get("limit")),
	}
	if tags := q.Get("tags"); tags != "" {
		filter.Tags = strings.Split(tags, ",")
	}

	discussions, pagination, err := h.discussions.List(r.Context(), filter)
	if err != nil {
		respondError(w, err)
		return
	}

	response.OK(w, map[string]any{
		"discussions": discussions,
		"pagination":  pagination,
	})
}

// Update handles a partial discussion edit
func (h *DiscussionHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "unauthorized")
		return
	}

	var input domain.DiscussionUpdate
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	d, err := h.discussions.Update(r.Context(), chi.URLParam(r, "discussionID"), userID, &input)
	if err != nil {
		respondError(w, err)
		return
	}

	response.OK(w, d)
}

// Delete removes a discussion
func (h *DiscussionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "unauthorized")
		return
	}

	if err := h.discussions.Delete(r.Context(), chi.URLParam(r, "discussionID"), userID); err != nil {
		respondError(w, err)
		return
	}

	response.NoContent(w)
}

func queryInt(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
