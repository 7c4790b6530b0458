package userinfo_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/campusconnect/mentorlink/internal/app/features/userinfo"
	"go.uber.org/zap"
)

func TestServeUserInfo_Unauthenticated(t *testing.T) {
	handler := userinfo.NewHandler(nil, zap.NewNop())

	req := httptest.NewRequest("GET", "/api/userinfo", nil)
	rec := httptest.NewRecorder()

	handler.ServeUserInfo(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
	}

	contentType := rec.Header().Get("Content-Type")
	if contentType != "application/json" {
		t.Errorf("Content-Type: got %q, want %q", contentType, "application/json")
	}

	var response map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to parse response JSON: %v", err)
	}

	if isAuth, ok := response["isAuthenticated"].(bool); !ok || isAuth {
		t.Errorf("isAuthenticated: got %v, want false", response["isAuthenticated"])
	}
	if name, ok := response["name"].(string); !ok || name != "" {
		t.Errorf("name: got %q, want empty string", response["name"])
	}
	if role, ok := response["role"].(string); !ok || role != "" {
		t.Errorf("role: got %q, want empty string", response["role"])
	}
	if unread, ok := response["unreadNotifications"].(float64); !ok || unread != 0 {
		t.Errorf("unreadNotifications: got %v, want 0", response["unreadNotifications"])
	}
}
