// Package service provides business logic for the application.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/dailydo/dailydo/internal/auth"
	"github.com/dailydo/dailydo/internal/cache"
	"github.com/dailydo/dailydo/internal/metrics"
	"github.com/dailydo/dailydo/internal/model"
	"github.com/dailydo/dailydo/internal/repository"
)

// Auth service errors.
var (
	ErrMissingFields      = errors.New("all fields required")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrEmailTaken         = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// AuthService handles registration, login, and session lifecycle.
type AuthService struct {
	repo       *repository.Repository
	sessions   *cache.Cache
	metrics    metrics.Recorder
	sessionTTL time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(repo *repository.Repository, sessions *cache.Cache, sessionTTL time.Duration, recorder metrics.Recorder) *AuthService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &AuthService{
		repo:       repo,
		sessions:   sessions,
		metrics:    recorder,
		sessionTTL: sessionTTL,
	}
}

// SessionTTL returns the configured browser session lifetime.
func (s *AuthService) SessionTTL() time.Duration {
	return s.sessionTTL
}

// RegisterInput defines input for creating an account.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// Register creates a new account. The password is stored only as an Argon2id
// hash. Username and email must both be unused.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*model.User, error) {
	if input.Username == "" || input.Email == "" || input.Password == "" {
		return nil, ErrMissingFields
	}

	if taken, err := s.repo.UsernameExists(ctx, input.Username); err != nil {
		return nil, err
	} else if taken {
		return nil, ErrUsernameTaken
	}

	if taken, err := s.repo.EmailExists(ctx, input.Email); err != nil {
		return nil, err
	} else if taken {
		return nil, ErrEmailTaken
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		ID:           ulid.Make().String(),
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.repo.CreateUser(ctx, user); err != nil {
		// Existence checks above can race with a concurrent registration;
		// the unique indexes are the source of truth.
		switch {
		case errors.Is(err, repository.ErrUsernameExists):
			return nil, ErrUsernameTaken
		case errors.Is(err, repository.ErrEmailExists):
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.metrics.IncUserRegistered()

	return user, nil
}

// Login verifies credentials. Unknown usernames and wrong passwords return
// the same error to prevent account enumeration.
func (s *AuthService) Login(ctx context.Context, username, password string) (*model.User, error) {
	user, err := s.repo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			s.metrics.IncLoginFailed()
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	match, err := auth.VerifyPassword(password, user.PasswordHash)
	if err != nil || !match {
		s.metrics.IncLoginFailed()
		return nil, ErrInvalidCredentials
	}

	s.metrics.IncLoginSucceeded()

	return user, nil
}

// StartSession issues an opaque token for the user and stores the identity
// in Redis under the session TTL.
func (s *AuthService) StartSession(ctx context.Context, user *model.User) (string, error) {
	token, err := auth.NewSessionToken()
	if err != nil {
		return "", err
	}

	sess := &model.Session{
		UserID:   user.ID,
		Username: user.Username,
	}

	if err := s.sessions.SetSession(ctx, token, sess, s.sessionTTL); err != nil {
		return "", fmt.Errorf("failed to store session: %w", err)
	}

	return token, nil
}

// EndSession clears a session token. Idempotent: clearing an unknown or
// already-expired token succeeds.
func (s *AuthService) EndSession(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.sessions.DeleteSession(ctx, token)
}
