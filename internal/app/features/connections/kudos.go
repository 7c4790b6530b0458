// internal/app/features/connections/kudos.go
package connections

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/campusconnect/mentorlink/internal/app/policy/connectionpolicy"
	"github.com/campusconnect/mentorlink/internal/app/system/authz"
	"github.com/campusconnect/mentorlink/internal/app/system/timeouts"
	"github.com/campusconnect/mentorlink/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// HandleKudos handles POST /api/connections/{connectionID}/kudos.
// The student on a completed connection thanks the alum; every press
// counts, so repeat kudos are allowed.
func (h *Handler) HandleKudos(w http.ResponseWriter, r *http.Request) {
	_, studentName, uid, ok := authz.UserCtx(r)
	if !ok {
		h.respondError(w, r, http.StatusUnauthorized, "You must be signed in.")
		return
	}

	connID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "connectionID"))
	if err != nil {
		h.respondError(w, r, http.StatusNotFound, "Connection not found.")
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
		h.ErrLog.InternalJSON(w, r, "kudos: load connection failed", err)
		return
	}

	if conn.StudentID != uid || !connectionpolicy.CanGiveKudos(r, conn.AlumID) {
		h.respondError(w, r, http.StatusForbidden, "Only the student on this connection can give kudos.")
		return
	}

	completed, err := h.Connections.ExistsCompleted(ctx, conn.StudentID, conn.AlumID)
	if err != nil {
		h.ErrLog.InternalJSON(w, r, "kudos: completed check failed", err)
		return
	}
	if !completed {
		h.respondError(w, r, http.StatusForbidden, "Kudos can be given after a completed connection.")
		return
	}

	alum, err := h.Users.IncrementKudos(ctx, conn.AlumID)
	if err != nil {
		h.ErrLog.InternalJSON(w, r, "kudos: increment failed", err)
		return
	}

	if studentName == "" {
		studentName = "Someone"
	}
	h.notify(ctx, models.Notification{
		UserID:  conn.AlumID,
		Type:    models.NotifyKudosReceived,
		Title:   "🏆 You received Kudos!",
		Message: fmt.Sprintf("%s gave you kudos! You now have %d kudos.", studentName, alum.Kudos),
	})

	h.Log.Info("kudos given",
		zap.String("student_id", uid.Hex()),
		zap.String("alum_id", conn.AlumID.Hex()),
		zap.Int("total", alum.Kudos))

	h.respond(w, r, "kudos")
}
