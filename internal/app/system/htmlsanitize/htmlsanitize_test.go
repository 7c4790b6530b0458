package htmlsanitize

import (
	"strings"
	"testing"
)

func TestSanitize_StripsScript(t *testing.T) {
	in := `Hello <script>alert("xss")</script>world`
	got := Sanitize(in)
	if strings.Contains(got, "<script>") || strings.Contains(got, "alert") {
		t.Errorf("script should be removed, got %q", got)
	}
}

func TestSanitize_KeepsBasicFormatting(t *testing.T) {
	in := `<p>I need <strong>React</strong> help.</p>`
	got := Sanitize(in)
	if !strings.Contains(got, "<strong>React</strong>") {
		t.Errorf("basic formatting should survive, got %q", got)
	}
}

func TestSanitize_StripsEventHandlers(t *testing.T) {
	in := `<a href="https://example.com" onclick="steal()">link</a>`
	got := Sanitize(in)
	if strings.Contains(got, "onclick") {
		t.Errorf("event handler should be removed, got %q", got)
	}
}
