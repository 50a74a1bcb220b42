package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dailydo/dailydo/internal/handler/dto"
	"github.com/dailydo/dailydo/internal/model"
	"github.com/dailydo/dailydo/internal/service"
)

// SessionReader resolves a session token to its identity.
// Used by check-auth, which runs outside the session gate.
type SessionReader interface {
	GetSession(ctx context.Context, token string) (*model.Session, error)
}

// AuthHandler handles registration, login, logout, and session checks.
type AuthHandler struct {
	svc        *service.AuthService
	sessions   SessionReader
	logger     *slog.Logger
	cookieName string
	secure     bool
}

// NewAuthHandler creates a new AuthHandler. secure controls the cookie's
// Secure flag and should be true outside development.
func NewAuthHandler(svc *service.AuthService, sessions SessionReader, logger *slog.Logger, cookieName string, secure bool) *AuthHandler {
	return &AuthHandler{
		svc:        svc,
		sessions:   sessions,
		logger:     logger,
		cookieName: cookieName,
		secure:     secure,
	}
}

// Register handles POST /api/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.svc.Register(r.Context(), service.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.handleAuthError(w, err)
		return
	}

	if !h.startSession(w, r, user) {
		return
	}

	h.logger.Info("user_registered",
		"user_id", user.ID,
		"username", user.Username,
	)

	writeJSON(w, http.StatusCreated, dto.AuthResponse{
		Message: "Registration successful",
		User:    dto.ToUserResponse(user),
	})
}

// Login handles POST /api/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.svc.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		h.handleAuthError(w, err)
		return
	}

	if !h.startSession(w, r, user) {
		return
	}

	h.logger.Info("user_logged_in", "user_id", user.ID)

	writeJSON(w, http.StatusOK, dto.AuthResponse{
		Message: "Login successful",
		User:    dto.ToUserResponse(user),
	})
}

// Logout handles POST /api/logout. Always succeeds, with or without a session.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(h.cookieName); err == nil {
		if err := h.svc.EndSession(r.Context(), cookie.Value); err != nil {
			h.logger.Warn("failed to clear session", "error", err.Error())
		}
	}

	h.clearCookie(w)

	writeJSON(w, http.StatusOK, map[string]string{"message": "Logged out successfully"})
}

// CheckAuth handles GET /api/check-auth. Reflects session state without
// side effects.
func (h *AuthHandler) CheckAuth(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(h.cookieName)
	if err != nil {
		writeJSON(w, http.StatusOK, dto.CheckAuthResponse{Authenticated: false})
		return
	}

	sess, err := h.sessions.GetSession(r.Context(), cookie.Value)
	if err != nil || sess == nil {
		writeJSON(w, http.StatusOK, dto.CheckAuthResponse{Authenticated: false})
		return
	}

	writeJSON(w, http.StatusOK, dto.CheckAuthResponse{
		Authenticated: true,
		User: &dto.UserResponse{
			ID:       sess.UserID,
			Username: sess.Username,
		},
	})
}

// startSession issues a session token and sets the browser cookie.
// Writes a 500 response and returns false on failure.
func (h *AuthHandler) startSession(w http.ResponseWriter, r *http.Request, user *model.User) bool {
	token, err := h.svc.StartSession(r.Context(), user)
	if err != nil {
		h.logger.Error("failed to start session", "error", err.Error())
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return false
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.svc.SessionTTL().Seconds()),
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteLaxMode,
	})

	return true
}

// clearCookie expires the session cookie in the browser.
func (h *AuthHandler) clearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// handleAuthError maps auth service errors to HTTP responses.
func (h *AuthHandler) handleAuthError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrMissingFields):
		writeError(w, http.StatusBadRequest, "All fields required")
	case errors.Is(err, service.ErrUsernameTaken):
		writeError(w, http.StatusBadRequest, "Username already exists")
	case errors.Is(err, service.ErrEmailTaken):
		writeError(w, http.StatusBadRequest, "Email already exists")
	case errors.Is(err, service.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "Invalid credentials")
	default:
		h.logger.Error("auth error", "error", err.Error())
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}
