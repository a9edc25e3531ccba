package main

import (
	"context"
	"database/sql"
	"encoding/csv"
	"flag"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"

	"github.com/openelect/election-api/internal/adapters/repository/postgres"
	"github.com/openelect/election-api/internal/core/domain"
	"github.com/openelect/election-api/internal/core/ports"
	"github.com/openelect/election-api/internal/infrastructure/config"
	"github.com/openelect/election-api/pkg/logger"
)

// Seeds the user roster out of band: one admin account plus an optional CSV
// of voters (voter_id,password,full_name per line).
func main() {
	log := logger.New("seed")

	_ = godotenv.Load()

	var adminVoterID, adminPassword, adminName, votersFile string
	flag.StringVar(&adminVoterID, "admin-id", "", "Voter id for the admin account")
	flag.StringVar(&adminPassword, "admin-password", "", "Password for the admin account")
	flag.StringVar(&adminName, "admin-name", "Election Administrator", "Display name for the admin account")
	flag.StringVar(&votersFile, "voters", "", "CSV file with voter_id,password,full_name rows")
	flag.Parse()

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

	userRepo := postgres.NewUserRepository(db)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	created := 0
	if adminVoterID != "" {
		if adminPassword == "" {
			log.Fatal().Msg("-admin-password is required when seeding an admin")
		}
		if err := createUser(ctx, userRepo, adminVoterID, adminPassword, adminName, domain.RoleAdmin); err != nil {
			log.Fatal().Err(err).Msg("failed to seed admin")
		}
		created++
	}

	if votersFile != "" {
		n, err := seedVoters(ctx, userRepo, votersFile)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to seed voters")
		}
		created += n
	}

	log.Info().Int("users", created).Msg("seeding completed")
}

func seedVoters(ctx context.Context, repo ports.UserRepository, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = 3

	created := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return created, err
		}
		if err := createUser(ctx, repo, record[0], record[1], record[2], domain.RoleVoter); err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}

func createUser(ctx context.Context, repo ports.UserRepository, voterID, password, fullName, role string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return repo.Create(ctx, &domain.User{
		ID:           uuid.New(),
		VoterID:      voterID,
		PasswordHash: string(hash),
		FullName:     fullName,
		Role:         role,
	})
}
