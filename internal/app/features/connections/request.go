// internal/app/features/connections/request.go
package connections

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/campusconnect/mentorlink/internal/app/policy/connectionpolicy"
	connectionstore "github.com/campusconnect/mentorlink/internal/app/store/connections"
	"github.com/campusconnect/mentorlink/internal/app/system/authz"
	"github.com/campusconnect/mentorlink/internal/app/system/timeouts"
	"github.com/campusconnect/mentorlink/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// HandleRequest handles POST /api/connections. A student asks an alum
// to connect over one of their own asks and the alum's offer.
func (h *Handler) HandleRequest(w http.ResponseWriter, r *http.Request) {
	_, name, uid, ok := authz.UserCtx(r)
	if !ok {
		h.respondError(w, r, http.StatusUnauthorized, "You must be signed in to request a connection.")
		return
	}

	if err := r.ParseForm(); err != nil {
		h.respondError(w, r, http.StatusBadRequest, "Invalid request.")
		return
	}

	askID, err := primitive.ObjectIDFromHex(r.FormValue("askId"))
	if err != nil {
		h.respondError(w, r, http.StatusBadRequest, "Ask not found.")
		return
	}
	offerID, err := primitive.ObjectIDFromHex(r.FormValue("offerId"))
	if err != nil {
		h.respondError(w, r, http.StatusBadRequest, "Offer not found.")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	ask, err := h.Asks.GetByID(ctx, askID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			h.respondError(w, r, http.StatusNotFound, "Ask not found.")
			return
		}
		h.ErrLog.InternalJSON(w, r, "request connection: load ask failed", err)
		return
	}

	if !connectionpolicy.CanRequest(r, ask.AuthorID) {
		h.respondError(w, r, http.StatusForbidden, "You can only request connections for your own asks.")
		return
	}

	offer, err := h.Offers.GetByID(ctx, offerID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			h.respondError(w, r, http.StatusNotFound, "Offer not found.")
			return
		}
		h.ErrLog.InternalJSON(w, r, "request connection: load offer failed", err)
		return
	}

	conn, err := h.Connections.Create(ctx, models.Connection{
		StudentID: uid,
		AlumID:    offer.AuthorID,
		AskID:     askID,
		OfferID:   offerID,
	})
	if err != nil {
		if errors.Is(err, connectionstore.ErrDuplicateConnection) {
			h.respondError(w, r, http.StatusConflict, "A connection request already exists for this match.")
			return
		}
		h.ErrLog.InternalJSON(w, r, "request connection: create failed", err)
		return
	}

	studentName := name
	if studentName == "" {
		studentName = "A student"
	}
	h.notify(ctx, models.Notification{
		UserID:       offer.AuthorID,
		Type:         models.NotifyConnectionRequest,
		Title:        "New Connection Request",
		Message:      fmt.Sprintf("%s wants to connect about %q", studentName, ask.Title),
		ConnectionID: &conn.ID,
	})

	h.Log.Info("connection requested",
		zap.String("connection_id", conn.ID.Hex()),
		zap.String("student_id", uid.Hex()),
		zap.String("alum_id", offer.AuthorID.Hex()))

	h.respond(w, r, "requested")
}
