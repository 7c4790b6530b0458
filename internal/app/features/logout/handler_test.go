package logout_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/campusconnect/mentorlink/internal/app/features/logout"
	"github.com/campusconnect/mentorlink/internal/app/system/auth"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) *logout.Handler {
	t.Helper()
	sessionMgr, err := auth.NewSessionManager("test-session-key-for-testing-only", "test-session", "", false, zap.NewNop())
	if err != nil {
		t.Fatalf("NewSessionManager failed: %v", err)
	}
	return logout.NewHandler(sessionMgr, zap.NewNop())
}

func TestServeLogout_RedirectsToHome(t *testing.T) {
	handler := newTestHandler(t)

	req := httptest.NewRequest("GET", "/logout", nil)
	rec := httptest.NewRecorder()

	handler.ServeLogout(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Errorf("expected status %d, got %d", http.StatusSeeOther, rec.Code)
	}
	if location := rec.Header().Get("Location"); location != "/" {
		t.Errorf("Location: got %q, want %q", location, "/")
	}
}

func TestServeLogout_ClearsSessionCookie(t *testing.T) {
	handler := newTestHandler(t)

	req := httptest.NewRequest("GET", "/logout", nil)
	rec := httptest.NewRecorder()

	handler.ServeLogout(rec, req)

	found := false
	for _, c := range rec.Result().Cookies() {
		if c.Name == "test-session" && c.MaxAge < 0 {
			found = true
		}
	}
	if !found {
		t.Error("expected session cookie with negative MaxAge")
	}
}

func TestServeLogout_HTMXUsesHXRedirect(t *testing.T) {
	handler := newTestHandler(t)

	req := httptest.NewRequest("GET", "/logout", nil)
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()

	handler.ServeLogout(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	if hx := rec.Header().Get("HX-Redirect"); hx != "/" {
		t.Errorf("HX-Redirect: got %q, want %q", hx, "/")
	}
}
