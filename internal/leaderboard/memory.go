// internal/leaderboard/memory.go
//
// In-memory implementation of the Store interface.
// This is the only backend: boards live for the lifetime of the process
// and are lost on restart.
//
// Characteristics:
//   - Stores []Entry slices keyed by game name in a map.
//   - Each board is kept sorted by score descending at all times; ties keep
//     submission order (stable sort).
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - Unknown games are created lazily on first Submit; reads of unknown
//     games return an empty board rather than an error.

package leaderboard

import (
	"context"
	"sort"
	"sync"
)

// DefaultGames are the boards present (empty) at process start.
var DefaultGames = []string{"tetris", "invaders", "snake"}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu     sync.RWMutex       // guards boards
	boards map[string][]Entry // keyed by game, sorted by score descending
}

// NewMemoryStore constructs an in-memory Store with empty boards for
// each of DefaultGames.
func NewMemoryStore() Store {
	m := &memory{boards: make(map[string][]Entry, len(DefaultGames))}
	for _, g := range DefaultGames {
		m.boards[g] = []Entry{}
	}
	return m
}

// TopScores returns a copy of the first TopN entries of the board.
// The board is already sorted, so this is a prefix read.
func (m *memory) TopScores(ctx context.Context, game string) []Entry {
	m.mu.RLock()
	defer m.mu.RUnlock()
	board := m.boards[game]
	n := len(board)
	if n > TopN {
		n = TopN
	}
	out := make([]Entry, n)
	copy(out, board[:n])
	return out
}

// Submit appends the entry, restores descending order, and trims the board
// to MaxStored entries.
func (m *memory) Submit(ctx context.Context, game, player string, score int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	board := append(m.boards[game], Entry{Player: player, Score: score})
	sort.SliceStable(board, func(i, j int) bool { return board[i].Score > board[j].Score })
	if len(board) > MaxStored {
		board = board[:MaxStored]
	}
	m.boards[game] = board
	return nil
}
