package leaderboard

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedDemoFillsDefaultBoards(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	m := s.(*memory)

	require.NoError(t, SeedDemo(ctx, s, 5))

	for _, g := range DefaultGames {
		board := m.boards[g]
		assert.Len(t, board, 5, "board %q", g)
		for j := 1; j < len(board); j++ {
			assert.GreaterOrEqual(t, board[j-1].Score, board[j].Score)
		}
		for _, e := range board {
			assert.NotEmpty(t, e.Player)
		}
	}
}

func TestSeedDemoRespectsCap(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	m := s.(*memory)

	require.NoError(t, SeedDemo(ctx, s, MaxStored+10))

	for _, g := range DefaultGames {
		assert.Len(t, m.boards[g], MaxStored, "board %q", g)
	}
}
