package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	_ "embed"

	"github.com/campusconnect/mentorlink/internal/app/match"
	"github.com/campusconnect/mentorlink/internal/domain/models"
	"go.uber.org/zap"
)

type contentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

//go:embed prompt.md
var promptTemplate string

const logPreviewLen = 200

// Ranker asks Gemini to pick the best offers for a student ask.
type Ranker struct {
	generator contentGenerator
	logger    *zap.Logger
}

func NewRanker(generator contentGenerator, logger *zap.Logger) *Ranker {
	return &Ranker{generator: generator, logger: logger}
}

// Rank implements match.Ranker. Any API or parse failure is returned
// as an error so the caller can fall back to tag scoring.
func (r *Ranker) Rank(ctx context.Context, ask models.Ask, readme string, offers []models.OfferWithAuthor) ([]match.Match, error) {
	if len(offers) == 0 {
		return []match.Match{}, nil
	}

	offersJSON, err := json.MarshalIndent(offers, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal offers payload: %w", err)
	}

	prompt := buildPrompt(ask, readme, string(offersJSON))

	r.logger.Debug("gemini match request",
		zap.String("ask_id", ask.ID.Hex()),
		zap.Int("offer_count", len(offers)),
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", preview(prompt)),
	)

	raw, err := r.generator.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, err
	}

	r.logger.Debug("gemini match response",
		zap.String("ask_id", ask.ID.Hex()),
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", preview(raw)),
	)

	return parseResponse(raw)
}

func buildPrompt(ask models.Ask, readme, offersJSON string) string {
	template := promptTemplate
	if strings.TrimSpace(template) == "" {
		template = "Ask: {{ASK_TITLE}}\n{{ASK_DESCRIPTION}}\nTags: {{ASK_TAGS}}\n{{PROJECT_CONTEXT}}\nOffers:\n{{OFFERS_JSON}}\n\nJSON array:"
	}

	projectContext := ""
	if readme != "" {
		projectContext = "- GitHub Project Context: " + readme
	}

	prompt := strings.ReplaceAll(template, "{{ASK_TITLE}}", ask.Title)
	prompt = strings.ReplaceAll(prompt, "{{ASK_DESCRIPTION}}", ask.Description)
	prompt = strings.ReplaceAll(prompt, "{{ASK_TAGS}}", strings.Join(ask.Tags, ", "))
	prompt = strings.ReplaceAll(prompt, "{{PROJECT_CONTEXT}}", projectContext)
	prompt = strings.ReplaceAll(prompt, "{{OFFERS_JSON}}", offersJSON)
	return prompt
}

// parseResponse tolerates markdown fencing and surrounding prose: it
// strips code fences, then tries the outermost bracketed array before
// falling back to parsing the whole payload.
func parseResponse(raw string) ([]match.Match, error) {
	cleaned := stripFences(raw)

	candidate := cleaned
	if start := strings.Index(cleaned, "["); start != -1 {
		if end := strings.LastIndex(cleaned, "]"); end > start {
			candidate = cleaned[start : end+1]
		}
	}

	var matches []match.Match
	if err := json.Unmarshal([]byte(candidate), &matches); err != nil {
		if err2 := json.Unmarshal([]byte(cleaned), &matches); err2 != nil {
			return nil, fmt.Errorf("parse gemini response: %w", err)
		}
	}

	if matches == nil {
		return nil, errors.New("gemini response contained no matches")
	}
	return matches, nil
}

func stripFences(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSpace(raw)
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	raw = strings.Trim(raw, "`")
	return strings.TrimSpace(raw)
}

func preview(s string) string {
	if utf8.RuneCountInString(s) <= logPreviewLen {
		return s
	}
	runes := []rune(s)
	return string(runes[:logPreviewLen]) + "..."
}
