package main

import (
	"context"
	"database/sql"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/openelect/election-api/internal/adapters/repository/postgres"
	"github.com/openelect/election-api/internal/core/services"
	"github.com/openelect/election-api/internal/infrastructure/config"
	"github.com/openelect/election-api/pkg/logger"
)

// Rewrites every candidate's denormalized vote_count from a live count over
// vote rows, correcting any drift.
func main() {
	log := logger.New("tallyreconcile")

	_ = godotenv.Load()

	cfg, err := config.Load(context.Background())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	db, err := sql.Open("postgres", cfg.Postgres.ConnString())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("failed to ping database")
	}

	statsRepo := postgres.NewStatsRepository(db)
	statsSvc := services.NewStatsService(statsRepo, log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	log.Info().Msg("starting tally reconciliation")

	if err := statsSvc.ReconcileTallies(ctx); err != nil {
		log.Fatal().Err(err).Msg("tally reconciliation failed")
	}

	log.Info().Msg("tally reconciliation completed")
}
