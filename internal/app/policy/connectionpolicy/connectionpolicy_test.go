package connectionpolicy_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/campusconnect/mentorlink/internal/app/policy/connectionpolicy"
	"github.com/campusconnect/mentorlink/internal/app/system/auth"
	"github.com/campusconnect/mentorlink/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func reqAs(role string, id primitive.ObjectID) *http.Request {
	r := httptest.NewRequest("POST", "/api/connections", nil)
	return auth.WithTestUser(r, &auth.SessionUser{
		ID:   id.Hex(),
		Name: "Test User",
		Role: role,
	})
}

func TestCanRequest(t *testing.T) {
	studentID := primitive.NewObjectID()
	otherID := primitive.NewObjectID()

	if !connectionpolicy.CanRequest(reqAs("student", studentID), studentID) {
		t.Error("student should be able to request for own ask")
	}
	if connectionpolicy.CanRequest(reqAs("student", otherID), studentID) {
		t.Error("student should not request for someone else's ask")
	}
	if connectionpolicy.CanRequest(reqAs("alumni", studentID), studentID) {
		t.Error("alumni should not request connections")
	}
	if connectionpolicy.CanRequest(httptest.NewRequest("POST", "/", nil), studentID) {
		t.Error("anonymous user should not request connections")
	}
}

func TestCanDecide(t *testing.T) {
	alumID := primitive.NewObjectID()
	conn := models.Connection{
		AlumID:    alumID,
		StudentID: primitive.NewObjectID(),
		Status:    models.ConnectionPending,
	}

	if !connectionpolicy.CanDecide(reqAs("alumni", alumID), conn) {
		t.Error("receiving alum should decide")
	}
	if connectionpolicy.CanDecide(reqAs("alumni", primitive.NewObjectID()), conn) {
		t.Error("another alum should not decide")
	}
	if connectionpolicy.CanDecide(reqAs("student", conn.StudentID), conn) {
		t.Error("the student should not decide")
	}
}

func TestCanChangeStatus(t *testing.T) {
	alumID := primitive.NewObjectID()
	conn := models.Connection{AlumID: alumID, StudentID: primitive.NewObjectID()}

	alumReq := reqAs("alumni", alumID)
	for _, to := range []string{models.ConnectionAccepted, models.ConnectionDenied, models.ConnectionCompleted} {
		if !connectionpolicy.CanChangeStatus(alumReq, conn, to) {
			t.Errorf("receiving alum should be allowed to set %s", to)
		}
	}

	if connectionpolicy.CanChangeStatus(alumReq, conn, models.ConnectionPending) {
		t.Error("no one may set a connection back to PENDING")
	}
	if connectionpolicy.CanChangeStatus(reqAs("student", conn.StudentID), conn, models.ConnectionAccepted) {
		t.Error("student should not accept their own request")
	}
}

func TestCanEditWorkspace(t *testing.T) {
	studentID := primitive.NewObjectID()
	alumID := primitive.NewObjectID()

	accepted := models.Connection{
		StudentID: studentID,
		AlumID:    alumID,
		Status:    models.ConnectionAccepted,
	}

	if !connectionpolicy.CanEditWorkspace(reqAs("student", studentID), accepted) {
		t.Error("student participant should edit workspace")
	}
	if !connectionpolicy.CanEditWorkspace(reqAs("alumni", alumID), accepted) {
		t.Error("alum participant should edit workspace")
	}
	if connectionpolicy.CanEditWorkspace(reqAs("student", primitive.NewObjectID()), accepted) {
		t.Error("non-participant should not edit workspace")
	}

	pending := accepted
	pending.Status = models.ConnectionPending
	if connectionpolicy.CanEditWorkspace(reqAs("student", studentID), pending) {
		t.Error("workspace should be closed while pending")
	}

	completed := accepted
	completed.Status = models.ConnectionCompleted
	if connectionpolicy.CanEditWorkspace(reqAs("student", studentID), completed) {
		t.Error("workspace should be closed after completion")
	}
}

func TestCanGiveKudos(t *testing.T) {
	alumID := primitive.NewObjectID()

	if !connectionpolicy.CanGiveKudos(reqAs("student", primitive.NewObjectID()), alumID) {
		t.Error("student should give kudos")
	}
	if connectionpolicy.CanGiveKudos(reqAs("alumni", primitive.NewObjectID()), alumID) {
		t.Error("alumni should not give kudos")
	}
	if connectionpolicy.CanGiveKudos(reqAs("student", alumID), alumID) {
		t.Error("a user should not give kudos to themselves")
	}
	if connectionpolicy.CanGiveKudos(httptest.NewRequest("POST", "/", nil), alumID) {
		t.Error("anonymous user should not give kudos")
	}
}
