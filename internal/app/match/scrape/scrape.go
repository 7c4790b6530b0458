// Package scrape pulls project page context for the matching prompt.
package scrape

import (
	"context"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/campusconnect/mentorlink/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// maxContextChars caps how much page text feeds the matching prompt.
const maxContextChars = 2000

type Scraper struct {
	client *http.Client
	log    *zap.Logger
}

func New(log *zap.Logger) *Scraper {
	return &Scraper{
		client: &http.Client{Timeout: timeouts.Short()},
		log:    log,
	}
}

// ProjectContext fetches the project URL and returns the text of its
// main <article> element, capped for prompt use. Matching must never
// fail because a project page is unreachable, so every error path
// returns an empty string.
func (s *Scraper) ProjectContext(ctx context.Context, url string) string {
	url = strings.TrimSpace(url)
	if url == "" {
		return ""
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return ""
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := s.client.Do(req)
	if err != nil {
		s.log.Debug("project page fetch failed", zap.String("url", url), zap.Error(err))
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		s.log.Debug("project page fetch non-2xx",
			zap.String("url", url),
			zap.Int("status", resp.StatusCode),
		)
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		s.log.Debug("project page parse failed", zap.String("url", url), zap.Error(err))
		return ""
	}

	text := strings.TrimSpace(doc.Find("article").Text())
	if text == "" {
		return ""
	}

	runes := []rune(text)
	if len(runes) > maxContextChars {
		text = string(runes[:maxContextChars])
	}
	return text
}
