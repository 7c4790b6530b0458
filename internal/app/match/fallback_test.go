package match

import (
	"testing"

	"github.com/campusconnect/mentorlink/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func offerWithTags(title string, tags ...string) models.OfferWithAuthor {
	return models.OfferWithAuthor{
		Offer: models.Offer{
			ID:    primitive.NewObjectID(),
			Title: title,
			Tags:  tags,
		},
	}
}

func TestRankByTags_OrdersByOverlap(t *testing.T) {
	ask := models.Ask{
		ID:    primitive.NewObjectID(),
		Title: "Help with my web app",
		Tags:  []string{"react", "node.js", "mongodb"},
	}
	offers := []models.OfferWithAuthor{
		offerWithTags("Career advice", "resumes"),
		offerWithTags("Full stack mentoring", "react", "node.js"),
		offerWithTags("Database help", "mongodb"),
	}

	matches := RankByTags(ask, offers)
	if len(matches) != 3 {
		t.Fatalf("expected 3 matches, got %d", len(matches))
	}

	if matches[0].Title != "Full stack mentoring" {
		t.Errorf("best match: got %q, want %q", matches[0].Title, "Full stack mentoring")
	}
	if matches[0].MatchReason != "Shares 2 common tags: react, node.js" {
		t.Errorf("best match reason: got %q", matches[0].MatchReason)
	}

	if matches[1].Title != "Database help" {
		t.Errorf("second match: got %q, want %q", matches[1].Title, "Database help")
	}
	if matches[1].MatchReason != "Shares 1 common tag: mongodb" {
		t.Errorf("second match reason: got %q", matches[1].MatchReason)
	}

	if matches[2].Title != "Career advice" {
		t.Errorf("third match: got %q, want %q", matches[2].Title, "Career advice")
	}
	if matches[2].MatchReason != "Shares 0 common tags: general expertise" {
		t.Errorf("third match reason: got %q", matches[2].MatchReason)
	}
}

func TestRankByTags_TiesKeepInputOrder(t *testing.T) {
	ask := models.Ask{Tags: []string{"go"}}
	offers := []models.OfferWithAuthor{
		offerWithTags("First", "go"),
		offerWithTags("Second", "go"),
		offerWithTags("Third", "go"),
	}

	matches := RankByTags(ask, offers)
	want := []string{"First", "Second", "Third"}
	for i, title := range want {
		if matches[i].Title != title {
			t.Errorf("match %d: got %q, want %q", i, matches[i].Title, title)
		}
	}
}

func TestRankByTags_DuplicateTagsCountOnce(t *testing.T) {
	ask := models.Ask{Tags: []string{"react", "react", "go"}}
	offers := []models.OfferWithAuthor{
		offerWithTags("Doubled up", "react", "react"),
		offerWithTags("Broad", "react", "go"),
	}

	matches := RankByTags(ask, offers)
	if matches[0].Title != "Broad" {
		t.Errorf("best match: got %q, want %q", matches[0].Title, "Broad")
	}
	if matches[1].Title != "Doubled up" {
		t.Errorf("second match: got %q, want %q", matches[1].Title, "Doubled up")
	}
	if matches[1].MatchReason != "Shares 1 common tag: react" {
		t.Errorf("repeated tag should count once, got %q", matches[1].MatchReason)
	}
}

func TestRankByTags_NoOffers(t *testing.T) {
	matches := RankByTags(models.Ask{Tags: []string{"go"}}, nil)
	if len(matches) != 0 {
		t.Errorf("expected no matches, got %d", len(matches))
	}
}
