package match

import (
	"context"
	"errors"
	"testing"

	"github.com/campusconnect/mentorlink/internal/domain/models"
	"go.uber.org/zap"
)

type stubRanker struct {
	matches []Match
	err     error
}

func (s *stubRanker) Rank(_ context.Context, _ models.Ask, _ string, _ []models.OfferWithAuthor) ([]Match, error) {
	return s.matches, s.err
}

func TestEngineMatch_UsesRanker(t *testing.T) {
	want := []Match{
		{OfferWithAuthor: offerWithTags("Best", "go"), MatchReason: "Strong overlap in backend work"},
	}
	engine := NewEngine(&stubRanker{matches: want}, zap.NewNop())

	got := engine.Match(context.Background(), models.Ask{}, "", []models.OfferWithAuthor{offerWithTags("Best", "go")})
	if len(got) != 1 {
		t.Fatalf("expected 1 match, got %d", len(got))
	}
	if got[0].MatchReason != "Strong overlap in backend work" {
		t.Errorf("reason: got %q", got[0].MatchReason)
	}
}

func TestEngineMatch_FallsBackOnRankerError(t *testing.T) {
	engine := NewEngine(&stubRanker{err: errors.New("boom")}, zap.NewNop())

	ask := models.Ask{Tags: []string{"go"}}
	offers := []models.OfferWithAuthor{offerWithTags("Go mentoring", "go")}

	got := engine.Match(context.Background(), ask, "", offers)
	if len(got) != 1 {
		t.Fatalf("expected 1 fallback match, got %d", len(got))
	}
	if got[0].MatchReason != "Shares 1 common tag: go" {
		t.Errorf("fallback reason: got %q", got[0].MatchReason)
	}
}

func TestEngineMatch_NilRankerUsesTags(t *testing.T) {
	engine := NewEngine(nil, zap.NewNop())

	ask := models.Ask{Tags: []string{"python"}}
	offers := []models.OfferWithAuthor{
		offerWithTags("Python help", "python"),
		offerWithTags("Unrelated", "design"),
	}

	got := engine.Match(context.Background(), ask, "", offers)
	if len(got) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(got))
	}
	if got[0].Title != "Python help" {
		t.Errorf("best match: got %q", got[0].Title)
	}
}

func TestEngineMatch_ClipsToThree(t *testing.T) {
	engine := NewEngine(nil, zap.NewNop())

	ask := models.Ask{Tags: []string{"go"}}
	offers := []models.OfferWithAuthor{
		offerWithTags("A", "go"),
		offerWithTags("B", "go"),
		offerWithTags("C", "go"),
		offerWithTags("D", "go"),
		offerWithTags("E", "go"),
	}

	got := engine.Match(context.Background(), ask, "", offers)
	if len(got) != 3 {
		t.Fatalf("expected 3 matches, got %d", len(got))
	}
}

func TestEngineMatch_EmptyOffers(t *testing.T) {
	engine := NewEngine(&stubRanker{err: errors.New("should not be called")}, zap.NewNop())

	got := engine.Match(context.Background(), models.Ask{}, "", nil)
	if got == nil {
		t.Fatal("expected non-nil slice")
	}
	if len(got) != 0 {
		t.Errorf("expected 0 matches, got %d", len(got))
	}
}

func TestEngineMatch_NeverReturnsNil(t *testing.T) {
	engine := NewEngine(&stubRanker{matches: nil}, zap.NewNop())

	got := engine.Match(context.Background(), models.Ask{}, "", []models.OfferWithAuthor{offerWithTags("A", "go")})
	if got == nil {
		t.Fatal("expected non-nil slice from nil ranker result")
	}
}
