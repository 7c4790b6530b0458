// internal/app/features/notifications/handler.go
package notifications

import (
	"context"
	"encoding/json"
	"net/http"

	notificationstore "github.com/campusconnect/mentorlink/internal/app/store/notifications"
	"github.com/campusconnect/mentorlink/internal/app/system/authz"
	"github.com/campusconnect/mentorlink/internal/app/system/timeouts"
	"github.com/campusconnect/mentorlink/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type Handler struct {
	Notifications *notificationstore.Store
	Log           *zap.Logger
}

func NewHandler(notifications *notificationstore.Store, logger *zap.Logger) *Handler {
	return &Handler{Notifications: notifications, Log: logger}
}

// ServeList handles GET /api/notifications: the caller's most recent
// notifications, newest first.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	_, _, uid, ok := authz.UserCtx(r)
	if !ok {
		_ = json.NewEncoder(w).Encode([]models.Notification{})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	notes, err := h.Notifications.ListRecent(ctx, uid)
	if err != nil {
		h.Log.Error("list notifications failed", zap.Error(err), zap.String("user_id", uid.Hex()))
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "internal server error"})
		return
	}
	if notes == nil {
		notes = []models.Notification{}
	}

	_ = json.NewEncoder(w).Encode(notes)
}

// HandleMarkRead handles POST /api/notifications/{notificationID}/read.
func (h *Handler) HandleMarkRead(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	_, _, uid, ok := authz.UserCtx(r)
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"})
		return
	}

	noteID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "notificationID"))
	if err != nil {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "notification not found"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := h.Notifications.MarkRead(ctx, noteID, uid); err != nil {
		h.Log.Error("mark notification read failed", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "internal server error"})
		return
	}

	_ = json.NewEncoder(w).Encode(map[string]bool{"success": true})
}

// HandleMarkAllRead handles POST /api/notifications/read-all.
func (h *Handler) HandleMarkAllRead(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	_, _, uid, ok := authz.UserCtx(r)
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := h.Notifications.MarkAllRead(ctx, uid); err != nil {
		h.Log.Error("mark all notifications read failed", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "internal server error"})
		return
	}

	_ = json.NewEncoder(w).Encode(map[string]bool{"success": true})
}
