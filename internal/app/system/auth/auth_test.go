package auth_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/campusconnect/mentorlink/internal/app/system/auth"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func newTestSessionManager(t *testing.T) *auth.SessionManager {
	t.Helper()
	sm, err := auth.NewSessionManager(
		"test-session-key-must-be-32-chars-long",
		"test-session",
		"",
		false,
		zap.NewNop(),
	)
	if err != nil {
		t.Fatalf("failed to create session manager: %v", err)
	}
	return sm
}

func withTestUser(r *http.Request, role string) *http.Request {
	return auth.WithTestUser(r, &auth.SessionUser{
		ID:    primitive.NewObjectID().Hex(),
		Name:  "Test User",
		Email: "user@test.edu",
		Role:  role,
	})
}

func TestNewSessionManager_EmptyKey(t *testing.T) {
	if _, err := auth.NewSessionManager("", "s", "", false, zap.NewNop()); err == nil {
		t.Fatal("expected error for empty session key")
	}
}

func TestRequireSignedIn_NoUser_RedirectsToLogin(t *testing.T) {
	sm := newTestSessionManager(t)

	handler := sm.RequireSignedIn(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("protected content"))
	}))

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Accept", "text/html")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Errorf("expected status %d, got %d", http.StatusSeeOther, rec.Code)
	}

	location := rec.Header().Get("Location")
	if !strings.HasPrefix(location, "/login") {
		t.Errorf("expected redirect to /login, got %q", location)
	}
}

func TestRequireSignedIn_NoUser_API_Returns401(t *testing.T) {
	sm := newTestSessionManager(t)

	handler := sm.RequireSignedIn(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("GET", "/api/data", nil)
	req.Header.Set("Accept", "application/json")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, rec.Code)
	}
}

func TestRequireSignedIn_NoUser_HTMX_ReturnsHXRedirect(t *testing.T) {
	sm := newTestSessionManager(t)

	handler := sm.RequireSignedIn(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, rec.Code)
	}

	hxRedirect := rec.Header().Get("HX-Redirect")
	if !strings.HasPrefix(hxRedirect, "/login") {
		t.Errorf("expected HX-Redirect to /login, got %q", hxRedirect)
	}
}

func TestRequireSignedIn_WithUser_CallsNext(t *testing.T) {
	sm := newTestSessionManager(t)

	handler := sm.RequireSignedIn(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := withTestUser(httptest.NewRequest("GET", "/protected", nil), "student")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
}

func TestRequireRole_WrongRole_RedirectsToForbidden(t *testing.T) {
	sm := newTestSessionManager(t)

	handler := sm.RequireRole("admin")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("GET", "/admin", nil)
	req.Header.Set("Accept", "text/html")
	req = withTestUser(req, "student")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Errorf("expected status %d, got %d", http.StatusSeeOther, rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/forbidden" {
		t.Errorf("Location: got %q, want %q", loc, "/forbidden")
	}
}

func TestRequireRole_WrongRole_API_Returns403(t *testing.T) {
	sm := newTestSessionManager(t)

	handler := sm.RequireRole("admin")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("GET", "/api/admin/tags", nil)
	req.Header.Set("Accept", "application/json")
	req = withTestUser(req, "alumni")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Errorf("expected status %d, got %d", http.StatusForbidden, rec.Code)
	}
}

func TestRequireRole_AllowedRole_CallsNext(t *testing.T) {
	sm := newTestSessionManager(t)

	handler := sm.RequireRole("student", "alumni")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for _, role := range []string{"student", "alumni"} {
		req := withTestUser(httptest.NewRequest("GET", "/offers", nil), role)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Errorf("role %s: expected status %d, got %d", role, http.StatusOK, rec.Code)
		}
	}
}

func TestRequireRole_CaseInsensitive(t *testing.T) {
	sm := newTestSessionManager(t)

	handler := sm.RequireRole("Admin")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := withTestUser(httptest.NewRequest("GET", "/admin", nil), "admin")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
}

func TestCurrentUser(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	if _, ok := auth.CurrentUser(req); ok {
		t.Error("expected no user on plain request")
	}

	req = withTestUser(req, "student")
	u, ok := auth.CurrentUser(req)
	if !ok {
		t.Fatal("expected user in context")
	}
	if u.Role != "student" {
		t.Errorf("role: got %q", u.Role)
	}
}
