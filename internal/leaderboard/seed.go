// internal/leaderboard/seed.go
//
// Demo data for local development. Production starts with empty boards;
// SeedDemo is only called when SEED_DEMO is set.

package leaderboard

import (
	"context"

	"github.com/brianvoe/gofakeit/v7"
)

// SeedDemo submits n fake entries to each of DefaultGames so a fresh dev
// instance has something to show. Scores land in [0, 100000].
func SeedDemo(ctx context.Context, s Store, n int) error {
	faker := gofakeit.New(0)
	for _, game := range DefaultGames {
		for i := 0; i < n; i++ {
			if err := s.Submit(ctx, game, faker.Gamertag(), faker.Number(0, 100000)); err != nil {
				return err
			}
		}
	}
	return nil
}
