package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/openelect/election-api/internal/core/domain"
	"github.com/openelect/election-api/internal/core/ports"
	"github.com/openelect/election-api/internal/metrics"
)

type AuthHandler struct {
	authService ports.AuthService
	cookies     CookieConfig
}

func NewAuthHandler(authService ports.AuthService, cookies CookieConfig) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		cookies:     cookies,
	}
}

type loginRequest struct {
	VoterID  string `json:"voter_id" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	User domain.Identity `json:"user"`
}

// Login godoc
// @Summary      Authenticates a voter or admin
// @Description  Verifies the voter id and password, then sets the session cookie used by `/api` calls.
// @Tags         auth
// @Accept       json
// @Success      200
// @Failure      400
// @Failure      401
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	identity, token, err := h.authService.Login(r.Context(), req.VoterID, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
			writeError(w, http.StatusUnauthorized, domain.ErrInvalidCredentials.Error())
			return
		}
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		writeError(w, http.StatusInternalServerError, "login failed, please try again")
		return
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	setSessionCookie(w, token, h.cookies)
	writeJSON(w, http.StatusOK, loginResponse{User: *identity})
}

// Logout godoc
// @Summary      Logs the authenticated user out
// @Description  Clears the session cookie. A no-op when no session exists.
// @Tags         auth
// @Success      200
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	clearSessionCookie(w, h.cookies)
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Me returns the current session's identity, refreshed from the user store,
// letting a client restore its state after a restart.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	fresh, err := h.authService.Refresh(r.Context(), identity.ID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			clearSessionCookie(w, h.cookies)
			writeError(w, http.StatusUnauthorized, "session no longer valid")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to load profile")
		return
	}
	writeJSON(w, http.StatusOK, loginResponse{User: *fresh})
}
