package scrape

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestProjectContext_ExtractsArticleText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body><nav>menu</nav><article><h1>My Project</h1><p>A cool readme.</p></article></body></html>`))
	}))
	defer srv.Close()

	s := New(zap.NewNop())
	got := s.ProjectContext(context.Background(), srv.URL)

	if !strings.Contains(got, "My Project") || !strings.Contains(got, "A cool readme.") {
		t.Errorf("article text missing, got %q", got)
	}
	if strings.Contains(got, "menu") {
		t.Errorf("text outside <article> should be excluded, got %q", got)
	}
}

func TestProjectContext_SetsUserAgent(t *testing.T) {
	var ua string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ua = r.Header.Get("User-Agent")
		w.Write([]byte(`<article>hi</article>`))
	}))
	defer srv.Close()

	New(zap.NewNop()).ProjectContext(context.Background(), srv.URL)

	if ua != "Mozilla/5.0" {
		t.Errorf("User-Agent: got %q, want %q", ua, "Mozilla/5.0")
	}
}

func TestProjectContext_CapsLength(t *testing.T) {
	long := strings.Repeat("x", 5000)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<article>" + long + "</article>"))
	}))
	defer srv.Close()

	got := New(zap.NewNop()).ProjectContext(context.Background(), srv.URL)
	if len([]rune(got)) != maxContextChars {
		t.Errorf("length: got %d, want %d", len([]rune(got)), maxContextChars)
	}
}

func TestProjectContext_AcceptsAny2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNonAuthoritativeInfo)
		w.Write([]byte(`<article>mirrored readme</article>`))
	}))
	defer srv.Close()

	got := New(zap.NewNop()).ProjectContext(context.Background(), srv.URL)
	if got != "mirrored readme" {
		t.Errorf("203 response should still be parsed, got %q", got)
	}
}

func TestProjectContext_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer srv.Close()

	if got := New(zap.NewNop()).ProjectContext(context.Background(), srv.URL); got != "" {
		t.Errorf("expected empty string on 404, got %q", got)
	}
}

func TestProjectContext_NoArticle(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body><p>no article element</p></body></html>`))
	}))
	defer srv.Close()

	if got := New(zap.NewNop()).ProjectContext(context.Background(), srv.URL); got != "" {
		t.Errorf("expected empty string without <article>, got %q", got)
	}
}

func TestProjectContext_EmptyURL(t *testing.T) {
	if got := New(zap.NewNop()).ProjectContext(context.Background(), "  "); got != "" {
		t.Errorf("expected empty string for blank URL, got %q", got)
	}
}

func TestProjectContext_UnreachableHost(t *testing.T) {
	if got := New(zap.NewNop()).ProjectContext(context.Background(), "http://127.0.0.1:1"); got != "" {
		t.Errorf("expected empty string for unreachable host, got %q", got)
	}
}
