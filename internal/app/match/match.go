// Package match produces ranked mentor suggestions for a student ask.
//
// The engine prefers an AI ranker when one is configured and falls
// back to deterministic tag-overlap scoring whenever the AI call or
// its response parsing fails. Callers always get a non-nil slice of
// at most three matches.
package match

import (
	"context"

	"github.com/campusconnect/mentorlink/internal/domain/models"
	"go.uber.org/zap"
)

// maxMatches caps how many suggestions a single ask receives.
const maxMatches = 3

// Match is one suggested offer with an explanation of the pairing.
type Match struct {
	models.OfferWithAuthor
	MatchReason string `json:"matchReason"`
}

// Ranker orders candidate offers against an ask. readme carries
// optional project page context and may be empty.
type Ranker interface {
	Rank(ctx context.Context, ask models.Ask, readme string, offers []models.OfferWithAuthor) ([]Match, error)
}

type Engine struct {
	ranker Ranker
	log    *zap.Logger
}

// NewEngine builds a matching engine. ranker may be nil, in which case
// every request uses tag-overlap scoring.
func NewEngine(ranker Ranker, log *zap.Logger) *Engine {
	return &Engine{ranker: ranker, log: log}
}

// Match ranks the candidate offers for the ask. It never returns an
// error: any ranker failure downgrades to the tag-overlap fallback.
func (e *Engine) Match(ctx context.Context, ask models.Ask, readme string, offers []models.OfferWithAuthor) []Match {
	if len(offers) == 0 {
		return []Match{}
	}

	if e.ranker != nil {
		matches, err := e.ranker.Rank(ctx, ask, readme, offers)
		if err == nil {
			return clip(matches)
		}
		e.log.Warn("ai ranking failed, using tag overlap",
			zap.String("ask_id", ask.ID.Hex()),
			zap.Error(err),
		)
	}

	return clip(RankByTags(ask, offers))
}

func clip(matches []Match) []Match {
	if matches == nil {
		return []Match{}
	}
	if len(matches) > maxMatches {
		matches = matches[:maxMatches]
	}
	return matches
}
