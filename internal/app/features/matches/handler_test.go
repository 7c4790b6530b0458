package matches_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/campusconnect/mentorlink/internal/app/features/matches"
	"github.com/campusconnect/mentorlink/internal/testutil"
	"go.uber.org/zap"
)

func TestServeMatches_InvalidAskID(t *testing.T) {
	handler := matches.NewHandler(nil, nil, nil, nil, zap.NewNop())

	req := testutil.NewAuthenticatedRequest("GET", "/api/match/not-an-id", testutil.StudentUser())
	req = testutil.WithChiURLParam(req, "askID", "not-an-id")
	rec := httptest.NewRecorder()

	handler.ServeMatches(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected status %d, got %d", http.StatusNotFound, rec.Code)
	}

	var response map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to parse response JSON: %v", err)
	}
	if response["error"] != "Ask not found" {
		t.Errorf("error: got %q, want %q", response["error"], "Ask not found")
	}
}
