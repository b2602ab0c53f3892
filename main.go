package main

import (
	"context"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/embeddr/arcade-scores/internal/httpserver"
	"github.com/embeddr/arcade-scores/internal/leaderboard"
)

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	store := leaderboard.NewMemoryStore()
	if n, err := strconv.Atoi(getEnv("SEED_DEMO", "0")); err == nil && n > 0 {
		if err := leaderboard.SeedDemo(context.Background(), store, n); err != nil {
			log.Fatal().Err(err).Msg("failed to seed demo scores")
		}
		log.Info().Int("perGame", n).Msg("seeded demo scores")
	}

	srv := httpserver.New(store)
	port := getEnv("PORT", "8090")
	log.Info().Str("port", port).Msg("starting arcade-scores")
	if err := srv.Start(":" + port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" { return v }
	return def
}
