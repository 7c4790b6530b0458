// Package connectionpolicy provides authorization policies for the
// connection lifecycle.
//
// Authorization rules:
//   - Only students may request connections, and only for their own asks
//   - Only the receiving alum may accept or deny a pending request
//   - Only the receiving alum may mark an accepted connection completed
//   - Both participants may edit an accepted connection's workspace
//   - Only the student may give kudos, and only after completion
package connectionpolicy

import (
	"net/http"

	"github.com/campusconnect/mentorlink/internal/app/system/authz"
	"github.com/campusconnect/mentorlink/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CanRequest reports whether the current user may request a connection
// on behalf of the ask's author.
func CanRequest(r *http.Request, askAuthorID primitive.ObjectID) bool {
	role, _, uid, ok := authz.UserCtx(r)
	if !ok || role != "student" {
		return false
	}
	return uid == askAuthorID
}

// CanDecide reports whether the current user may accept or deny the
// pending request. Only the alum on the receiving end decides.
func CanDecide(r *http.Request, conn models.Connection) bool {
	role, _, uid, ok := authz.UserCtx(r)
	if !ok || role != "alumni" {
		return false
	}
	return uid == conn.AlumID
}

// CanComplete reports whether the current user may mark the connection
// completed. The alum owns the completion step.
func CanComplete(r *http.Request, conn models.Connection) bool {
	return CanDecide(r, conn)
}

// CanChangeStatus routes a requested status change to the right check.
// Transition validity (pending to accepted, and so on) is enforced
// separately by models.CanTransition; this covers only who may act.
func CanChangeStatus(r *http.Request, conn models.Connection, to string) bool {
	switch to {
	case models.ConnectionAccepted, models.ConnectionDenied:
		return CanDecide(r, conn)
	case models.ConnectionCompleted:
		return CanComplete(r, conn)
	}
	return false
}

// CanEditWorkspace reports whether the current user may update the
// shared workspace. Either participant can, only while accepted.
func CanEditWorkspace(r *http.Request, conn models.Connection) bool {
	_, _, uid, ok := authz.UserCtx(r)
	if !ok {
		return false
	}
	if conn.Status != models.ConnectionAccepted {
		return false
	}
	return uid == conn.StudentID || uid == conn.AlumID
}

// CanGiveKudos reports whether the current user may give kudos to the
// alum. Only the student side of a connection gives kudos; the
// completed-connection requirement is checked against the store by
// the caller.
func CanGiveKudos(r *http.Request, alumID primitive.ObjectID) bool {
	role, _, uid, ok := authz.UserCtx(r)
	if !ok || role != "student" {
		return false
	}
	return uid != alumID
}
