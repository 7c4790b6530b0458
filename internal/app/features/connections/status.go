// internal/app/features/connections/status.go
package connections

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/campusconnect/mentorlink/internal/app/policy/connectionpolicy"
	"github.com/campusconnect/mentorlink/internal/app/system/authz"
	"github.com/campusconnect/mentorlink/internal/app/system/normalize"
	"github.com/campusconnect/mentorlink/internal/app/system/timeouts"
	"github.com/campusconnect/mentorlink/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// HandleStatus handles POST /api/connections/{connectionID}/status.
// The alum on a connection accepts, denies, or completes it.
func (h *Handler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	_, alumName, _, ok := authz.UserCtx(r)
	if !ok {
		h.respondError(w, r, http.StatusUnauthorized, "You must be signed in.")
		return
	}

	connID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "connectionID"))
	if err != nil {
		h.respondError(w, r, http.StatusNotFound, "Connection not found.")
		return
	}

	if err := r.ParseForm(); err != nil {
		h.respondError(w, r, http.StatusBadRequest, "Invalid request.")
		return
	}
	status := normalize.ConnectionStatus(r.FormValue("status"))
	if status != models.ConnectionAccepted && status != models.ConnectionDenied && status != models.ConnectionCompleted {
		h.respondError(w, r, http.StatusBadRequest, "Invalid status.")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	conn, err := h.Connections.GetByID(ctx, connID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			h.respondError(w, r, http.StatusNotFound, "Connection not found.")
			return
		}
		h.ErrLog.InternalJSON(w, r, "update status: load connection failed", err)
		return
	}

	if !connectionpolicy.CanChangeStatus(r, conn, status) {
		h.respondError(w, r, http.StatusForbidden, "You can only update your own connections.")
		return
	}
	if err := models.CanTransition(conn.Status, status); err != nil {
		h.respondError(w, r, http.StatusConflict, err.Error())
		return
	}

	if err := h.Connections.UpdateStatus(ctx, connID, status); err != nil {
		h.ErrLog.InternalJSON(w, r, "update status failed", err)
		return
	}

	// Accepting takes one slot from the offer. Slots already at zero
	// stay at zero; the acceptance itself still stands.
	if status == models.ConnectionAccepted {
		decremented, err := h.Offers.DecrementSlot(ctx, conn.OfferID)
		if err != nil {
			h.Log.Error("decrement slot failed",
				zap.Error(err),
				zap.String("offer_id", conn.OfferID.Hex()))
		} else if !decremented {
			h.Log.Warn("offer accepted with no open slots",
				zap.String("offer_id", conn.OfferID.Hex()),
				zap.String("connection_id", connID.Hex()))
		}
	}

	h.notifyStatusChange(ctx, conn, status, alumName)

	h.Log.Info("connection status updated",
		zap.String("connection_id", connID.Hex()),
		zap.String("from", conn.Status),
		zap.String("to", status))

	h.respond(w, r, strings.ToLower(status))
}

func (h *Handler) notifyStatusChange(ctx context.Context, conn models.Connection, status, alumName string) {
	if alumName == "" {
		alumName = "An alum"
	}

	offerTitle := ""
	if offer, err := h.Offers.GetByID(ctx, conn.OfferID); err == nil {
		offerTitle = offer.Title
	}
	askTitle := ""
	if ask, err := h.Asks.GetByID(ctx, conn.AskID); err == nil {
		askTitle = ask.Title
	}

	var notifType, title, message string
	switch status {
	case models.ConnectionAccepted:
		notifType = models.NotifyConnectionAccepted
		title = "🎉 Connection Accepted!"
		message = fmt.Sprintf("%s accepted your request for %q", alumName, offerTitle)
	case models.ConnectionDenied:
		notifType = models.NotifyConnectionDenied
		title = "Connection Declined"
		message = fmt.Sprintf("Your request for %q was declined. Keep trying!", offerTitle)
	case models.ConnectionCompleted:
		notifType = models.NotifyConnectionCompleted
		title = "✅ Connection Completed"
		message = fmt.Sprintf("%s marked your connection about %q as complete", alumName, askTitle)
	default:
		return
	}

	h.notify(ctx, models.Notification{
		UserID:       conn.StudentID,
		Type:         notifType,
		Title:        title,
		Message:      message,
		ConnectionID: &conn.ID,
	})
}
