package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/dailydo/dailydo/internal/model"
)

// ErrTodoNotFound is returned when a todo does not exist or is not owned by
// the requesting user. The two cases are deliberately indistinguishable.
var ErrTodoNotFound = errors.New("todo not found")

// CreateTodo inserts a new todo into the database.
func (r *Repository) CreateTodo(ctx context.Context, todo *model.Todo) error {
	query := `
		INSERT INTO todos (id, user_id, text, completed, date, month, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.pool.Exec(ctx, query,
		todo.ID,
		todo.UserID,
		todo.Text,
		todo.Completed,
		todo.Date,
		todo.Month,
		todo.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create todo: %w", err)
	}

	return nil
}

// GetTodo retrieves a todo by ID, scoped to the owning user.
func (r *Repository) GetTodo(ctx context.Context, userID, id string) (*model.Todo, error) {
	query := `
		SELECT id, user_id, text, completed, date, month, created_at
		FROM todos
		WHERE id = $1 AND user_id = $2
	`

	todo, err := scanTodo(r.pool.QueryRow(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTodoNotFound
		}
		return nil, fmt.Errorf("failed to get todo: %w", err)
	}

	return todo, nil
}

// ListTodosByDate retrieves all of a user's todos for one calendar day.
// No ordering is guaranteed.
func (r *Repository) ListTodosByDate(ctx context.Context, userID, date string) ([]*model.Todo, error) {
	query := `
		SELECT id, user_id, text, completed, date, month, created_at
		FROM todos
		WHERE user_id = $1 AND date = $2
	`

	rows, err := r.pool.Query(ctx, query, userID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list todos by date: %w", err)
	}
	defer rows.Close()

	return collectTodos(rows)
}

// ListTodosByUser retrieves all of a user's todos across all time.
// Used by the monthly statistics rollup.
func (r *Repository) ListTodosByUser(ctx context.Context, userID string) ([]*model.Todo, error) {
	query := `
		SELECT id, user_id, text, completed, date, month, created_at
		FROM todos
		WHERE user_id = $1
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list todos by user: %w", err)
	}
	defer rows.Close()

	return collectTodos(rows)
}

// UpdateTodo persists a todo's mutable fields (text and completed),
// scoped to the owning user.
func (r *Repository) UpdateTodo(ctx context.Context, todo *model.Todo) error {
	query := `
		UPDATE todos
		SET text = $3, completed = $4
		WHERE id = $1 AND user_id = $2
	`

	result, err := r.pool.Exec(ctx, query,
		todo.ID,
		todo.UserID,
		todo.Text,
		todo.Completed,
	)

	if err != nil {
		return fmt.Errorf("failed to update todo: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrTodoNotFound
	}

	return nil
}

// DeleteTodo removes a todo, scoped to the owning user.
func (r *Repository) DeleteTodo(ctx context.Context, userID, id string) error {
	query := `DELETE FROM todos WHERE id = $1 AND user_id = $2`

	result, err := r.pool.Exec(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete todo: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrTodoNotFound
	}

	return nil
}

// scanTodo scans a single row into a Todo model.
func scanTodo(row pgx.Row) (*model.Todo, error) {
	var todo model.Todo
	err := row.Scan(
		&todo.ID,
		&todo.UserID,
		&todo.Text,
		&todo.Completed,
		&todo.Date,
		&todo.Month,
		&todo.CreatedAt,
	)
	return &todo, err
}

// collectTodos drains rows into a slice of Todo models.
func collectTodos(rows pgx.Rows) ([]*model.Todo, error) {
	var todos []*model.Todo
	for rows.Next() {
		todo, err := scanTodo(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan todo: %w", err)
		}
		todos = append(todos, todo)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating todos: %w", err)
	}

	return todos, nil
}
