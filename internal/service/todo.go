package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/dailydo/dailydo/internal/metrics"
	"github.com/dailydo/dailydo/internal/model"
	"github.com/dailydo/dailydo/internal/repository"
)

// Todo service errors.
var (
	ErrEmptyText    = errors.New("text is required")
	ErrTodoNotFound = errors.New("todo not found")
)

// TodoService handles todo business logic. Every operation is scoped to the
// requesting user; a todo owned by another user behaves as if it did not exist.
type TodoService struct {
	repo    *repository.Repository
	metrics metrics.Recorder
	now     func() time.Time
}

// NewTodoService creates a new TodoService.
func NewTodoService(repo *repository.Repository, recorder metrics.Recorder) *TodoService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &TodoService{
		repo:    repo,
		metrics: recorder,
		now:     time.Now,
	}
}

// ListToday returns the user's todos for the server's current date.
func (s *TodoService) ListToday(ctx context.Context, userID string) ([]*model.Todo, error) {
	return s.repo.ListTodosByDate(ctx, userID, model.DateKey(s.now()))
}

// Add creates a todo stamped with today's date and month keys.
// The date is always the server's current date, never caller-supplied.
func (s *TodoService) Add(ctx context.Context, userID, text string) (*model.Todo, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyText
	}

	now := s.now()
	todo := &model.Todo{
		ID:        ulid.Make().String(),
		UserID:    userID,
		Text:      text,
		Completed: false,
		Date:      model.DateKey(now),
		Month:     model.MonthKey(now),
		CreatedAt: now.UTC(),
	}

	if err := s.repo.CreateTodo(ctx, todo); err != nil {
		return nil, fmt.Errorf("failed to create todo: %w", err)
	}

	s.metrics.IncTodoCreated()

	return todo, nil
}

// UpdateTodoInput defines a partial update. Nil fields are left untouched.
type UpdateTodoInput struct {
	Text      *string
	Completed *bool
}

// Update applies a partial update to a todo owned by the user.
func (s *TodoService) Update(ctx context.Context, userID, todoID string, input UpdateTodoInput) (*model.Todo, error) {
	todo, err := s.repo.GetTodo(ctx, userID, todoID)
	if err != nil {
		if errors.Is(err, repository.ErrTodoNotFound) {
			return nil, ErrTodoNotFound
		}
		return nil, err
	}

	if input.Text != nil {
		todo.Text = *input.Text
	}
	if input.Completed != nil {
		todo.Completed = *input.Completed
	}

	if err := s.repo.UpdateTodo(ctx, todo); err != nil {
		if errors.Is(err, repository.ErrTodoNotFound) {
			return nil, ErrTodoNotFound
		}
		return nil, err
	}

	s.metrics.IncTodoUpdated()

	return todo, nil
}

// Delete removes a todo owned by the user.
func (s *TodoService) Delete(ctx context.Context, userID, todoID string) error {
	if err := s.repo.DeleteTodo(ctx, userID, todoID); err != nil {
		if errors.Is(err, repository.ErrTodoNotFound) {
			return ErrTodoNotFound
		}
		return err
	}

	s.metrics.IncTodoDeleted()

	return nil
}
