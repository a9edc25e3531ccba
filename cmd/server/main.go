package main

import (
	"context"
	"database/sql"
	"errors"
	stdhttp "net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	redisguard "github.com/openelect/election-api/internal/adapters/guard/redis"
	handler "github.com/openelect/election-api/internal/adapters/handler/http"
	"github.com/openelect/election-api/internal/adapters/repository/postgres"
	"github.com/openelect/election-api/internal/core/services"
	"github.com/openelect/election-api/internal/infrastructure/config"
	"github.com/openelect/election-api/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load(context.Background())
	if err != nil {
		l := logger.New("server")
		l.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})
	if cfg.JWTSecret == "" {
		log.Warn().Msg("JWT_SECRET not set; sessions will not survive restarts safely")
	}

	db, err := sql.Open("postgres", cfg.Postgres.ConnString())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("failed to ping database")
	}

	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	defer rdb.Close()

	userRepo := postgres.NewUserRepository(db)
	candidateRepo := postgres.NewCandidateRepository(db)
	voteRepo := postgres.NewVoteRepository(db)
	statsRepo := postgres.NewStatsRepository(db)
	voteGuard := redisguard.NewVoteGuard(rdb)

	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.SessionTTL, logger.New("auth"))
	candidateSvc := services.NewCandidateService(candidateRepo, logger.New("candidates"))
	voteSvc := services.NewVoteService(voteRepo, voteGuard, logger.New("votes"))
	statsSvc := services.NewStatsService(statsRepo, logger.New("stats"))

	cookies := handler.CookieConfig{TTL: cfg.SessionTTL, Secure: cfg.Env != "development"}
	authHandler := handler.NewAuthHandler(authSvc, cookies)
	candidateHandler := handler.NewCandidateHandler(candidateSvc)
	voteHandler := handler.NewVoteHandler(voteSvc, authSvc, cookies)
	statsHandler := handler.NewStatsHandler(statsSvc)
	healthHandler := handler.NewHealthHandler(db, rdb)

	router := handler.NewHandler(authHandler, candidateHandler, voteHandler, statsHandler, healthHandler, authSvc, logger.New("http"))
	server := &stdhttp.Server{Addr: "0.0.0.0:" + cfg.Port, Handler: router}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info().Str("port", cfg.Port).Msg("election portal listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("gracefully shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("shutdown failed")
	}
}
