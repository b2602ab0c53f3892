// internal/httpserver/routes_highscores.go
//
// HTTP routes for the per-game highscore boards.
// Exposes two endpoints under /highscores:
//   - GET  /highscores/{game} → top 10 entries, best first
//   - POST /highscores/{game} → record a new score
//
// The {game} path param is an opaque key: querying a game nobody has
// submitted to returns an empty board, and submitting to an unseen game
// creates its board on the fly. Structural validation of the POST body
// happens here, before the store is touched; the store itself has no
// error paths.

package httpserver

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/embeddr/arcade-scores/internal/leaderboard"
)

// mountHighscores registers the /highscores routes.
func (s *Server) mountHighscores(r chi.Router) {
	r.Route("/highscores", func(r chi.Router) {
		r.Get("/{game}", s.handleTopScores)
		r.Post("/{game}", s.handleSubmitScore)
	})
}

// topScoresRes is returned by GET /highscores/{game}.
type topScoresRes struct {
	Scores []leaderboard.Entry `json:"scores"`
}

// handleTopScores returns the board's top entries, best first.
func (s *Server) handleTopScores(w http.ResponseWriter, r *http.Request) {
	game := chi.URLParam(r, "game")
	scores := s.store.TopScores(r.Context(), game)
	s.metrics.queries.WithLabelValues(game).Inc()
	_ = json.NewEncoder(w).Encode(topScoresRes{Scores: scores})
}

// submitReq is the request payload for POST /highscores/{game}.
// Pointer fields so "required" enforces presence without rejecting the
// zero values "" and 0, which are legal submissions.
type submitReq struct {
	Player *string `json:"player" validate:"required"`
	Score  *int    `json:"score" validate:"required"`
}

// submitRes acknowledges a stored submission.
type submitRes struct {
	Status string `json:"status"`
}

// handleSubmitScore validates the body and records the entry on the
// game's board.
func (s *Server) handleSubmitScore(w http.ResponseWriter, r *http.Request) {
	game := chi.URLParam(r, "game")

	var req submitReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	if err := s.validate.Struct(req); err != nil {
		http.Error(w, `{"error":"invalid_body"}`, http.StatusBadRequest)
		return
	}

	if err := s.store.Submit(r.Context(), game, *req.Player, *req.Score); err != nil {
		log.Error().Err(err).Str("game", game).Msg("submit score")
		http.Error(w, `{"error":"submit_failed"}`, http.StatusInternalServerError)
		return
	}
	s.metrics.submissions.WithLabelValues(game).Inc()
	log.Debug().Str("game", game).Str("player", *req.Player).Int("score", *req.Score).Msg("score submitted")

	_ = json.NewEncoder(w).Encode(submitRes{Status: "success"})
}
