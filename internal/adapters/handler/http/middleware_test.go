package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openelect/election-api/internal/core/domain"
	"github.com/openelect/election-api/internal/core/services"
)

func testAuthService() *services.AuthService {
	return services.NewAuthService(nil, "test-secret", 15*time.Minute, zerolog.Nop())
}

func probeHandler(t *testing.T, captured *domain.Identity) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := identityFrom(r.Context())
		require.True(t, ok)
		*captured = identity
		w.WriteHeader(http.StatusOK)
	})
}

func TestSessionAuthValidCookie(t *testing.T) {
	auth := testAuthService()
	identity := domain.Identity{
		ID:       uuid.New(),
		VoterID:  "VOT-001",
		FullName: "Alice Example",
		Role:     domain.RoleVoter,
	}
	token, err := auth.IssueSession(identity)
	require.NoError(t, err)

	var seen domain.Identity
	handler := SessionAuth(auth)(probeHandler(t, &seen))

	req := httptest.NewRequest(http.MethodGet, "/api/candidates", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: token})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, identity, seen)
}

func TestSessionAuthMissingCookie(t *testing.T) {
	handler := SessionAuth(testAuthService())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not run")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/candidates", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSessionAuthBadToken(t *testing.T) {
	handler := SessionAuth(testAuthService())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not run")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/candidates", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "garbage"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireRoleForbidsOtherRoles(t *testing.T) {
	auth := testAuthService()
	token, err := auth.IssueSession(domain.Identity{ID: uuid.New(), VoterID: "VOT-002", Role: domain.RoleVoter})
	require.NoError(t, err)

	handler := SessionAuth(auth)(RequireRole(domain.RoleAdmin)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not run")
	})))

	req := httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: token})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireRoleAllowsMatchingRole(t *testing.T) {
	auth := testAuthService()
	token, err := auth.IssueSession(domain.Identity{ID: uuid.New(), VoterID: "ADM-001", Role: domain.RoleAdmin})
	require.NoError(t, err)

	var seen domain.Identity
	handler := SessionAuth(auth)(RequireRole(domain.RoleAdmin)(probeHandler(t, &seen)))

	req := httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: token})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.RoleAdmin, seen.Role)
}
