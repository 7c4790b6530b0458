package connections_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/campusconnect/mentorlink/internal/app/features/connections"
	"github.com/campusconnect/mentorlink/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func newTestHandler() *connections.Handler {
	return connections.NewHandler(nil, nil, nil, nil, nil, nil, zap.NewNop())
}

func jsonPost(target string, form url.Values) *http.Request {
	req := httptest.NewRequest("POST", target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	return req
}

func errorBody(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to parse response JSON: %v", err)
	}
	return body["error"]
}

func TestHandleRequest_Unauthenticated(t *testing.T) {
	handler := newTestHandler()

	rec := httptest.NewRecorder()
	handler.HandleRequest(rec, jsonPost("/api/connections", url.Values{}))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, rec.Code)
	}
}

func TestHandleRequest_InvalidAskID(t *testing.T) {
	handler := newTestHandler()

	form := url.Values{"askId": {"nope"}, "offerId": {primitive.NewObjectID().Hex()}}
	req := testutil.WithUser(jsonPost("/api/connections", form), testutil.StudentUser())
	rec := httptest.NewRecorder()

	handler.HandleRequest(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
	if got := errorBody(t, rec); got != "Ask not found." {
		t.Errorf("error: got %q", got)
	}
}

func TestHandleRequest_InvalidOfferID(t *testing.T) {
	handler := newTestHandler()

	form := url.Values{"askId": {primitive.NewObjectID().Hex()}, "offerId": {"nope"}}
	req := testutil.WithUser(jsonPost("/api/connections", form), testutil.StudentUser())
	rec := httptest.NewRecorder()

	handler.HandleRequest(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
	if got := errorBody(t, rec); got != "Offer not found." {
		t.Errorf("error: got %q", got)
	}
}

func TestHandleStatus_Unauthenticated(t *testing.T) {
	handler := newTestHandler()

	rec := httptest.NewRecorder()
	handler.HandleStatus(rec, jsonPost("/api/connections/abc/status", url.Values{}))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, rec.Code)
	}
}

func TestHandleStatus_InvalidConnectionID(t *testing.T) {
	handler := newTestHandler()

	req := testutil.WithUser(jsonPost("/api/connections/nope/status", url.Values{"status": {"ACCEPTED"}}), testutil.AlumniUser())
	req = testutil.WithChiURLParam(req, "connectionID", "nope")
	rec := httptest.NewRecorder()

	handler.HandleStatus(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected status %d, got %d", http.StatusNotFound, rec.Code)
	}
}

func TestHandleStatus_InvalidStatusValue(t *testing.T) {
	handler := newTestHandler()

	connID := primitive.NewObjectID().Hex()
	req := testutil.WithUser(jsonPost("/api/connections/"+connID+"/status", url.Values{"status": {"CANCELLED"}}), testutil.AlumniUser())
	req = testutil.WithChiURLParam(req, "connectionID", connID)
	rec := httptest.NewRecorder()

	handler.HandleStatus(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
	if got := errorBody(t, rec); got != "Invalid status." {
		t.Errorf("error: got %q", got)
	}
}

func TestHandleStatus_PendingNotAllowed(t *testing.T) {
	handler := newTestHandler()

	connID := primitive.NewObjectID().Hex()
	req := testutil.WithUser(jsonPost("/api/connections/"+connID+"/status", url.Values{"status": {"PENDING"}}), testutil.AlumniUser())
	req = testutil.WithChiURLParam(req, "connectionID", connID)
	rec := httptest.NewRecorder()

	handler.HandleStatus(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
}

func TestHandleWorkspace_InvalidConnectionID(t *testing.T) {
	handler := newTestHandler()

	req := testutil.WithUser(jsonPost("/api/connections/nope/workspace", url.Values{}), testutil.StudentUser())
	req = testutil.WithChiURLParam(req, "connectionID", "nope")
	rec := httptest.NewRecorder()

	handler.HandleWorkspace(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected status %d, got %d", http.StatusNotFound, rec.Code)
	}
}

func TestHandleKudos_InvalidConnectionID(t *testing.T) {
	handler := newTestHandler()

	req := testutil.WithUser(jsonPost("/api/connections/nope/kudos", url.Values{}), testutil.StudentUser())
	req = testutil.WithChiURLParam(req, "connectionID", "nope")
	rec := httptest.NewRecorder()

	handler.HandleKudos(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected status %d, got %d", http.StatusNotFound, rec.Code)
	}
}
