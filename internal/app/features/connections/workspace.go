// internal/app/features/connections/workspace.go
package connections

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/campusconnect/mentorlink/internal/app/policy/connectionpolicy"
	"github.com/campusconnect/mentorlink/internal/app/system/inputval"
	"github.com/campusconnect/mentorlink/internal/app/system/normalize"
	"github.com/campusconnect/mentorlink/internal/app/system/timeouts"
	"github.com/campusconnect/mentorlink/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type workspaceInput struct {
	MeetingLink string `validate:"httpurl" label:"Meeting link"`
}

// HandleWorkspace handles POST /api/connections/{connectionID}/workspace.
// Either participant of an accepted connection updates the shared
// meeting link and file references; both sides get a notification.
func (h *Handler) HandleWorkspace(w http.ResponseWriter, r *http.Request) {
	connID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "connectionID"))
	if err != nil {
		h.respondError(w, r, http.StatusNotFound, "Connection not found.")
		return
	}

	if err := r.ParseForm(); err != nil {
		h.respondError(w, r, http.StatusBadRequest, "Invalid request.")
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
		h.ErrLog.InternalJSON(w, r, "workspace: load connection failed", err)
		return
	}

	if !connectionpolicy.CanEditWorkspace(r, conn) {
		h.respondError(w, r, http.StatusForbidden, "Only participants of an accepted connection can edit its workspace.")
		return
	}

	// Absent fields keep their stored value; present-but-empty fields
	// clear it.
	var meetingLink, feedbackFile, studentUploadFile *string
	if r.PostForm.Has("meeting_link") {
		v := normalize.Name(r.FormValue("meeting_link"))
		if result := inputval.Validate(workspaceInput{MeetingLink: v}); result.HasErrors() {
			h.respondError(w, r, http.StatusBadRequest, result.First())
			return
		}
		meetingLink = &v
	}
	if r.PostForm.Has("feedback_file") {
		v := normalize.Name(r.FormValue("feedback_file"))
		feedbackFile = &v
	}
	if r.PostForm.Has("student_upload_file") {
		v := normalize.Name(r.FormValue("student_upload_file"))
		studentUploadFile = &v
	}
	if meetingLink == nil && feedbackFile == nil && studentUploadFile == nil {
		h.respondError(w, r, http.StatusBadRequest, "Nothing to update.")
		return
	}

	if err := h.Connections.UpdateWorkspace(ctx, connID, meetingLink, feedbackFile, studentUploadFile); err != nil {
		h.ErrLog.InternalJSON(w, r, "workspace update failed", err)
		return
	}

	askTitle := ""
	if ask, err := h.Asks.GetByID(ctx, conn.AskID); err == nil {
		askTitle = ask.Title
	}
	message := fmt.Sprintf("The connection workspace for %q has been updated.", askTitle)

	for _, userID := range []primitive.ObjectID{conn.StudentID, conn.AlumID} {
		h.notify(ctx, models.Notification{
			UserID:       userID,
			Type:         models.NotifyWorkspaceUpdated,
			Title:        "Connection Workspace Updated",
			Message:      message,
			ConnectionID: &conn.ID,
		})
	}

	h.Log.Info("connection workspace updated", zap.String("connection_id", connID.Hex()))

	h.respond(w, r, "workspace")
}
