package service

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestAuthService_Register_MissingFields(t *testing.T) {
	t.Parallel()

	svc := NewAuthService(nil, nil, time.Hour, nil)

	tests := []struct {
		name  string
		input RegisterInput
	}{
		{name: "all empty", input: RegisterInput{}},
		{name: "missing username", input: RegisterInput{Email: "a@example.com", Password: "secret"}},
		{name: "missing email", input: RegisterInput{Username: "alice", Password: "secret"}},
		{name: "missing password", input: RegisterInput{Username: "alice", Email: "a@example.com"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := svc.Register(context.Background(), tt.input); !errors.Is(err, ErrMissingFields) {
				t.Errorf("expected ErrMissingFields, got %v", err)
			}
		})
	}
}

func TestAuthService_EndSession_EmptyToken(t *testing.T) {
	t.Parallel()

	svc := NewAuthService(nil, nil, time.Hour, nil)

	// Logging out without a cookie must not touch the session store
	if err := svc.EndSession(context.Background(), ""); err != nil {
		t.Errorf("expected nil error, got %v", err)
	}
}

func TestAuthService_SessionTTL(t *testing.T) {
	t.Parallel()

	svc := NewAuthService(nil, nil, 168*time.Hour, nil)

	if got := svc.SessionTTL(); got != 168*time.Hour {
		t.Errorf("expected 168h, got %s", got)
	}
}
