package gemini

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/campusconnect/mentorlink/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type stubGenerator struct {
	response   string
	err        error
	lastPrompt string
}

func (s *stubGenerator) GenerateContent(_ context.Context, prompt string) (string, error) {
	s.lastPrompt = prompt
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func testOffers() []models.OfferWithAuthor {
	return []models.OfferWithAuthor{
		{
			Offer: models.Offer{
				ID:    primitive.NewObjectID(),
				Title: "Backend mentoring",
				Tags:  []string{"go", "postgres"},
			},
		},
	}
}

func testAsk() models.Ask {
	return models.Ask{
		ID:          primitive.NewObjectID(),
		Title:       "API design help",
		Description: "I am building a REST API for a class project.",
		Tags:        []string{"go", "api"},
	}
}

func TestRank_ParsesPlainJSON(t *testing.T) {
	stub := &stubGenerator{response: `[{"title": "Backend mentoring", "matchReason": "Strong Go overlap"}]`}
	ranker := NewRanker(stub, zap.NewNop())

	matches, err := ranker.Rank(context.Background(), testAsk(), "", testOffers())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}
	if matches[0].MatchReason != "Strong Go overlap" {
		t.Errorf("matchReason: got %q", matches[0].MatchReason)
	}
}

func TestRank_ParsesFencedJSON(t *testing.T) {
	stub := &stubGenerator{response: "```json\n[{\"title\": \"Backend mentoring\", \"matchReason\": \"Fits\"}]\n```"}
	ranker := NewRanker(stub, zap.NewNop())

	matches, err := ranker.Rank(context.Background(), testAsk(), "", testOffers())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}
}

func TestRank_ParsesProseWrappedJSON(t *testing.T) {
	stub := &stubGenerator{response: `Here are the top matches:
[{"title": "Backend mentoring", "matchReason": "Fits"}]
Let me know if you need more.`}
	ranker := NewRanker(stub, zap.NewNop())

	matches, err := ranker.Rank(context.Background(), testAsk(), "", testOffers())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}
}

func TestRank_InvalidResponse(t *testing.T) {
	stub := &stubGenerator{response: "I cannot rank these offers."}
	ranker := NewRanker(stub, zap.NewNop())

	if _, err := ranker.Rank(context.Background(), testAsk(), "", testOffers()); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestRank_GeneratorError(t *testing.T) {
	stub := &stubGenerator{err: errors.New("quota exceeded")}
	ranker := NewRanker(stub, zap.NewNop())

	if _, err := ranker.Rank(context.Background(), testAsk(), "", testOffers()); err == nil {
		t.Fatal("expected error from generator")
	}
}

func TestRank_PromptSubstitution(t *testing.T) {
	stub := &stubGenerator{response: `[{"matchReason": "ok"}]`}
	ranker := NewRanker(stub, zap.NewNop())

	ask := testAsk()
	if _, err := ranker.Rank(context.Background(), ask, "Project readme text", testOffers()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(stub.lastPrompt, ask.Title) {
		t.Error("prompt missing ask title")
	}
	if !strings.Contains(stub.lastPrompt, "go, api") {
		t.Error("prompt missing joined ask tags")
	}
	if !strings.Contains(stub.lastPrompt, "- GitHub Project Context: Project readme text") {
		t.Error("prompt missing project context line")
	}
	if strings.Contains(stub.lastPrompt, "{{") {
		t.Errorf("prompt has unreplaced placeholders: %s", stub.lastPrompt)
	}
}

func TestRank_EmptyReadmeOmitsContextLine(t *testing.T) {
	stub := &stubGenerator{response: `[{"matchReason": "ok"}]`}
	ranker := NewRanker(stub, zap.NewNop())

	if _, err := ranker.Rank(context.Background(), testAsk(), "", testOffers()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(stub.lastPrompt, "GitHub Project Context") {
		t.Error("prompt should omit project context when readme is empty")
	}
}

func TestRank_EmptyOffers(t *testing.T) {
	stub := &stubGenerator{response: "should not be called"}
	ranker := NewRanker(stub, zap.NewNop())

	matches, err := ranker.Rank(context.Background(), testAsk(), "", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(matches) != 0 {
		t.Errorf("expected 0 matches, got %d", len(matches))
	}
	if stub.lastPrompt != "" {
		t.Error("generator should not be called with no offers")
	}
}

func TestStripFences(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain", `[1]`, `[1]`},
		{"json fence", "```json\n[1]\n```", "[1]"},
		{"bare fence", "```\n[1]\n```", "[1]"},
		{"whitespace", "  [1]  ", "[1]"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := stripFences(tc.in); got != tc.want {
				t.Errorf("stripFences(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}
