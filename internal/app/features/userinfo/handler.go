// internal/app/features/userinfo/handler.go
package userinfo

import (
	"context"
	"encoding/json"
	"net/http"

	notificationstore "github.com/campusconnect/mentorlink/internal/app/store/notifications"
	"github.com/campusconnect/mentorlink/internal/app/system/auth"
	"github.com/campusconnect/mentorlink/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Handler serves identity and badge data for authenticated sessions.
type Handler struct {
	Notifications *notificationstore.Store
	Log           *zap.Logger
}

func NewHandler(notifications *notificationstore.Store, logger *zap.Logger) *Handler {
	return &Handler{Notifications: notifications, Log: logger}
}

// ServeUserInfo returns JSON with the current user's authentication
// status, identity, and unread notification count.
//
// Response format:
//
//	{ "isAuthenticated": bool, "id": "...", "name": "...", "email": "...",
//	  "role": "...", "unreadNotifications": 0 }
func (h *Handler) ServeUserInfo(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	user, ok := auth.CurrentUser(r)
	if !ok {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"isAuthenticated":     false,
			"id":                  "",
			"name":                "",
			"email":               "",
			"role":                "",
			"unreadNotifications": 0,
		})
		return
	}

	var unread int64
	if oid, err := primitive.ObjectIDFromHex(user.ID); err == nil {
		ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
		defer cancel()

		unread, err = h.Notifications.CountUnread(ctx, oid)
		if err != nil {
			h.Log.Warn("unread count failed", zap.Error(err), zap.String("user_id", user.ID))
			unread = 0
		}
	}

	_ = json.NewEncoder(w).Encode(map[string]any{
		"isAuthenticated":     true,
		"id":                  user.ID,
		"name":                user.Name,
		"email":               user.Email,
		"role":                user.Role,
		"unreadNotifications": unread,
	})
}
