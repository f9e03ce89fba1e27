package handler

import (
	"net/http"

	"github.com/campuslink/backend/internal/api/middleware"
	"github.com/campuslink/backend/internal/api/response"
	"github.com/campuslink/backend/internal/domain"
	"github.com/campuslink/backend/internal/service"
	"github.com/go-chi/chi/v5"
)

// NotificationHandler handles notification endpoints
type NotificationHandler struct {
	notifications *service.NotificationService
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(notifications *service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notifications: notifications}
}

// List retrieves a page of the caller's notifications
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "unauthorized")
		return
	}

	q := r.URL.Query()
	filter := domain.NotificationFilter{
		UnreadOnly: q.Get("unread") == "true",
		Page:       queryInt(q.Get("page")),
		Limit:      queryInt(q.Get("limit")),
	}

	notifications, pagination, err := h.notifications.List(r.Context(), userID, filter)
	if err != nil {
		respondError(w, err)
		return
	}

	response.OK(w, map[string]any{
		"notifications": notifications,
		"pagination":    pagination,
	})
}

// UnreadCount returns the caller's unread notification count
func (h *NotificationHandler) UnreadCount(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "unauthorized")
		return
	}

	count, err := h.notifications.UnreadCount(r.Context(), userID)
	if err != nil {
		respondError(w, err)
		return
	}

	response.OK(w, map[string]any{"unread": count})
}

// MarkRead marks one of the caller's notifications as read
func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "unauthorized")
		return
	}

	n, err := h.notifications.MarkRead(r.Context(), userID, chi.URLParam(r, "notificationID"))
	if err != nil {
		respondError(w, err)
		return
	}

	response.OK(w, n)
}

// MarkAllRead marks all of the caller's notifications as read
func (h *NotificationHandler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, "unauthorized")
		return
	}

	updated, err := h.notifications.MarkAllRead(r.Context(), userID)
	if err != nil {
		respondError(w, err)
		return
	}

	response.OK(w, map[string]any{"updated": updated})
}
