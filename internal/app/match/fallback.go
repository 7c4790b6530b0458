package match

import (
	"fmt"
	"sort"
	"strings"

	"github.com/campusconnect/mentorlink/internal/domain/models"
)

// RankByTags scores each offer by the number of distinct tags it
// shares with the ask and returns all candidates ordered best first.
// Repeated tags on either side count once. Ties keep the incoming
// candidate order.
func RankByTags(ask models.Ask, offers []models.OfferWithAuthor) []Match {
	type scored struct {
		m     Match
		score int
	}

	askTags := make(map[string]bool, len(ask.Tags))
	for _, t := range ask.Tags {
		askTags[t] = true
	}

	ranked := make([]scored, 0, len(offers))
	for _, offer := range offers {
		var common []string
		seen := make(map[string]bool, len(offer.Tags))
		for _, t := range offer.Tags {
			if askTags[t] && !seen[t] {
				seen[t] = true
				common = append(common, t)
			}
		}
		ranked = append(ranked, scored{
			m: Match{
				OfferWithAuthor: offer,
				MatchReason:     tagReason(common),
			},
			score: len(common),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	matches := make([]Match, len(ranked))
	for i, s := range ranked {
		matches[i] = s.m
	}
	return matches
}

func tagReason(common []string) string {
	plural := "s"
	if len(common) == 1 {
		plural = ""
	}
	list := strings.Join(common, ", ")
	if list == "" {
		list = "general expertise"
	}
	return fmt.Sprintf("Shares %d common tag%s: %s", len(common), plural, list)
}
