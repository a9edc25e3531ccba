package integration

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"golang.org/x/crypto/bcrypt"

	handler "github.com/openelect/election-api/internal/adapters/handler/http"
	repo "github.com/openelect/election-api/internal/adapters/repository/postgres"
	"github.com/openelect/election-api/internal/core/domain"
	"github.com/openelect/election-api/internal/core/ports"
	"github.com/openelect/election-api/internal/core/services"
)

const (
	testJWTSecret     = "test-secret"
	sessionCookieName = "voting_session"
)

type TestApp struct {
	DB          *sql.DB
	Server      *httptest.Server
	Client      *http.Client
	AuthSvc     *services.AuthService
	StatsSvc    ports.StatsService
	DBContainer testcontainers.Container
}

func setupPostgresContainer(ctx context.Context) (testcontainers.Container, string, error) {
	pgContainer, err := postgres.Run(ctx, "postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("user"),
		postgres.WithPassword("password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second),
		),
	)
	if err != nil {
		return nil, "", fmt.Errorf("failed to start postgres container: %w", err)
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return nil, "", err
	}

	return pgContainer, connStr, nil
}

func applyMigrations(db *sql.DB) error {
	dirPath := "../../internal/adapters/repository/postgres/migrations"

	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return fmt.Errorf("failed to read migrations directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !strings.HasSuffix(entry.Name(), "up.sql") {
			continue
		}

		content, err := os.ReadFile(filepath.Join(dirPath, entry.Name()))
		if err != nil {
			return fmt.Errorf("failed to read migration file %s: %w", entry.Name(), err)
		}

		if _, err := db.Exec(string(content)); err != nil {
			return fmt.Errorf("failed to execute migration %s: %w", entry.Name(), err)
		}
	}

	return nil
}

func setupTestApp(t *testing.T) *TestApp {
	ctx := context.Background()
	dbContainer, dbURL, err := setupPostgresContainer(ctx)
	require.NoError(t, err)

	db, err := sql.Open("postgres", dbURL)
	require.NoError(t, err)

	err = applyMigrations(db)
	require.NoError(t, err)

	userRepo := repo.NewUserRepository(db)
	candidateRepo := repo.NewCandidateRepository(db)
	voteRepo := repo.NewVoteRepository(db)
	statsRepo := repo.NewStatsRepository(db)

	authSvc := services.NewAuthService(userRepo, testJWTSecret, 15*time.Minute, zerolog.Nop())
	candidateSvc := services.NewCandidateService(candidateRepo, zerolog.Nop())
	// No Redis in integration runs; the unique constraint still guards.
	voteSvc := services.NewVoteService(voteRepo, nil, zerolog.Nop())
	statsSvc := services.NewStatsService(statsRepo, zerolog.Nop())

	cookies := handler.CookieConfig{TTL: 15 * time.Minute, Secure: false}
	authHandler := handler.NewAuthHandler(authSvc, cookies)
	candidateHandler := handler.NewCandidateHandler(candidateSvc)
	voteHandler := handler.NewVoteHandler(voteSvc, authSvc, cookies)
	statsHandler := handler.NewStatsHandler(statsSvc)

	router := handler.NewHandler(authHandler, candidateHandler, voteHandler, statsHandler, nil, authSvc, zerolog.Nop())
	server := httptest.NewServer(router)

	return &TestApp{
		DB:          db,
		Server:      server,
		Client:      server.Client(),
		AuthSvc:     authSvc,
		StatsSvc:    statsSvc,
		DBContainer: dbContainer,
	}
}

func (app *TestApp) Teardown(t *testing.T) {
	app.Server.Close()
	app.DB.Close()
	if err := app.DBContainer.Terminate(context.Background()); err != nil {
		t.Logf("failed to terminate container: %v", err)
	}
}

// createUser inserts a user row with a bcrypt-hashed password and returns it.
func (app *TestApp) createUser(t *testing.T, password, role string) *domain.User {
	t.Helper()

	userID := uuid.New()
	user := &domain.User{
		ID:       userID,
		VoterID:  fmt.Sprintf("VOT-%s", userID.String()[:8]),
		FullName: fmt.Sprintf("User %s", userID.String()[:8]),
		Role:     role,
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	_, err = app.DB.Exec(
		"INSERT INTO users (id, voter_id, password_hash, full_name, role) VALUES ($1, $2, $3, $4, $5)",
		user.ID, user.VoterID, string(hash), user.FullName, user.Role,
	)
	require.NoError(t, err)
	return user
}

// sessionToken issues a signed session cookie value for the given user.
func (app *TestApp) sessionToken(t *testing.T, user *domain.User) string {
	t.Helper()

	token, err := app.AuthSvc.IssueSession(user.Identity())
	require.NoError(t, err)
	return token
}

// createCandidate inserts a candidate row with the given starting tally.
func (app *TestApp) createCandidate(t *testing.T, name, party string, voteCount int64) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := app.DB.Exec(
		"INSERT INTO candidates (id, name, party, vote_count) VALUES ($1, $2, $3, $4)",
		id, name, party, voteCount,
	)
	require.NoError(t, err)
	return id
}

func (app *TestApp) candidateTally(t *testing.T, id uuid.UUID) int64 {
	t.Helper()

	var count int64
	err := app.DB.QueryRow("SELECT vote_count FROM candidates WHERE id = $1", id).Scan(&count)
	require.NoError(t, err)
	return count
}

func (app *TestApp) hasVoted(t *testing.T, id uuid.UUID) bool {
	t.Helper()

	var voted bool
	err := app.DB.QueryRow("SELECT has_voted FROM users WHERE id = $1", id).Scan(&voted)
	require.NoError(t, err)
	return voted
}

func (app *TestApp) voteCount(t *testing.T, userID uuid.UUID) int {
	t.Helper()

	var count int
	err := app.DB.QueryRow("SELECT COUNT(*) FROM votes WHERE user_id = $1", userID).Scan(&count)
	require.NoError(t, err)
	return count
}
