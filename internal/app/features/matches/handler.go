// internal/app/features/matches/handler.go
package matches

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/campusconnect/mentorlink/internal/app/match"
	"github.com/campusconnect/mentorlink/internal/app/match/scrape"
	askstore "github.com/campusconnect/mentorlink/internal/app/store/asks"
	offerstore "github.com/campusconnect/mentorlink/internal/app/store/offers"
	"github.com/campusconnect/mentorlink/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves mentor suggestions for an ask.
type Handler struct {
	Asks    *askstore.Store
	Offers  *offerstore.Store
	Engine  *match.Engine
	Scraper *scrape.Scraper
	Log     *zap.Logger
}

func NewHandler(asks *askstore.Store, offers *offerstore.Store, engine *match.Engine, scraper *scrape.Scraper, logger *zap.Logger) *Handler {
	return &Handler{
		Asks:    asks,
		Offers:  offers,
		Engine:  engine,
		Scraper: scraper,
		Log:     logger,
	}
}

// ServeMatches handles GET /api/match/{askID}.
//
// The response is always a JSON array of at most three matches, each
// an offer (with author) plus a matchReason sentence.
func (h *Handler) ServeMatches(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	askID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "askID"))
	if err != nil {
		writeError(w, http.StatusNotFound, "Ask not found")
		return
	}

	dbCtx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	ask, err := h.Asks.GetByID(dbCtx, askID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			writeError(w, http.StatusNotFound, "Ask not found")
			return
		}
		h.Log.Error("match: load ask failed", zap.Error(err), zap.String("ask_id", askID.Hex()))
		writeError(w, http.StatusInternalServerError, "Failed to generate matches")
		return
	}

	offers, err := h.Offers.ListAllWithAuthors(dbCtx)
	if err != nil {
		h.Log.Error("match: list offers failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Failed to generate matches")
		return
	}
	if len(offers) == 0 {
		_ = json.NewEncoder(w).Encode([]match.Match{})
		return
	}

	readme := ""
	if ask.ProjectURL != "" {
		scrapeCtx, cancelScrape := context.WithTimeout(r.Context(), timeouts.Short())
		readme = h.Scraper.ProjectContext(scrapeCtx, ask.ProjectURL)
		cancelScrape()
	}

	// The AI call gets the long budget; the engine falls back to tag
	// scoring if it cannot answer in time.
	matchCtx, cancelMatch := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancelMatch()

	matches := h.Engine.Match(matchCtx, ask, readme, offers)

	h.Log.Debug("match results",
		zap.String("ask_id", askID.Hex()),
		zap.Int("candidates", len(offers)),
		zap.Int("matches", len(matches)))

	_ = json.NewEncoder(w).Encode(matches)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
