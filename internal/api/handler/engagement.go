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

// EngagementHandler handles likes, comments, and replies on any engageable
// entity. The entity kind and id parameter are bound per route.
type EngagementHandler struct {
	likes    *service.EngagementService
	comments *service.CommentService
}

// NewEngagementHandler creates a new engagement handler
func NewEngagementHandler(likes *service.EngagementService, comments *service.CommentService) *EngagementHandler {
	return &EngagementHandler{likes: likes, comments: comments}
}

// ToggleLike flips the caller's like on the entity.
func (h *EngagementHandler) ToggleLike(kind domain.EntityKind, param string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.GetUserID(r.Context())
		if !ok {
			response.Unauthorized(w, "unauthorized")
			return
		}

		result, err := h.likes.ToggleLike(r.Context(), kind, chi.URLParam(r, param), userID)
		if err != nil {
			respondError(w, err)
			return
		}

		response.OK(w, result)
	}
}

// AddComment appends a root comment to the entity.
func (h *EngagementHandler) AddComment(kind domain.EntityKind, param string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.GetUserID(r.Context())
		if !ok {
			response.Unauthorized(w, "unauthorized")
			return
		}

		var input domain.CommentCreate
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			response.BadRequest(w, "invalid request body")
			return
		}

		comment, err := h.comments.AddComment(r.Context(), kind, chi.URLParam(r, param), userID, input.Content)
		if err != nil {
			respondError(w, err)
			return
		}

		response.Created(w, comment)
	}
}

// AddReply appends a reply under an existing comment node.
func (h *EngagementHandler) AddReply(kind domain.EntityKind, param string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.GetUserID(r.Context())
		if !ok {
			response.Unauthorized(w, "unauthorized")
			return
		}

		var input domain.CommentCreate
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			response.BadRequest(w, "invalid request body")
			return
		}

		reply, err := h.comments.AddReply(r.Context(), kind,
			chi.URLParam(r, param), chi.URLParam(r, "commentID"), userID, input.Content)
		if err != nil {
			respondError(w, err)
			return
		}

		response.Created(w, reply)
	}
}
