// internal/leaderboard/leaderboard.go
//
// Core type definitions for arcade leaderboards.
// Defines:
//   - Entry: one recorded (player, score) pair on a game's board.
//   - Store: the persistence interface handlers read and write through.

package leaderboard

import "context"

const (
	// MaxStored caps how many entries a board keeps after each submission;
	// everything below the cut is discarded.
	MaxStored = 50

	// TopN is the read window: TopScores never returns more than this.
	TopN = 10
)

// Entry is a single recorded score on a game's board.
// Player and Score are stored as submitted; no normalization is applied.
type Entry struct {
	Player string `json:"player"`
	Score  int    `json:"score"`
}

// Store defines the persistence interface for leaderboards.
// Implementations may be backed by memory (this package), Redis, SQL, etc.
type Store interface {
	// TopScores returns the highest-scoring entries for game, best first,
	// at most TopN of them. Unknown games yield an empty board, never an
	// error. The returned slice is a copy; callers may keep or mutate it.
	TopScores(ctx context.Context, game string) []Entry

	// Submit records a new entry on game's board, creating the board if it
	// does not exist yet, and re-applies the descending-score order and the
	// MaxStored cap.
	Submit(ctx context.Context, game, player string, score int) error
}
