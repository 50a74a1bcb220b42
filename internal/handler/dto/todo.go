// Package dto provides Data Transfer Objects for API requests and responses.
package dto

import (
	"github.com/dailydo/dailydo/internal/model"
)

// createdAtLayout is the timestamp format used in API responses.
const createdAtLayout = "2006-01-02 15:04:05"

// CreateTodoRequest represents the request body for creating a todo.
type CreateTodoRequest struct {
	Text string `json:"text"`
}

// UpdateTodoRequest represents a partial update. Absent fields stay nil and
// leave the stored value untouched.
type UpdateTodoRequest struct {
	Text      *string `json:"text,omitempty"`
	Completed *bool   `json:"completed,omitempty"`
}

// TodoResponse represents a todo in API responses.
// CreatedAt is present on create/list and omitted on update.
type TodoResponse struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
	Date      string `json:"date"`
	Month     string `json:"month"`
	CreatedAt string `json:"created_at,omitempty"`
}

// ToTodoResponse converts a Todo model to a TodoResponse DTO.
func ToTodoResponse(todo *model.Todo, withCreatedAt bool) *TodoResponse {
	resp := &TodoResponse{
		ID:        todo.ID,
		Text:      todo.Text,
		Completed: todo.Completed,
		Date:      todo.Date,
		Month:     todo.Month,
	}
	if withCreatedAt {
		resp.CreatedAt = todo.CreatedAt.Format(createdAtLayout)
	}
	return resp
}

// ToTodoListResponse converts a slice of Todo models to response DTOs.
// Returns an empty (non-nil) slice so an empty list serializes as [].
func ToTodoListResponse(todos []*model.Todo) []TodoResponse {
	responses := make([]TodoResponse, 0, len(todos))
	for _, todo := range todos {
		responses = append(responses, *ToTodoResponse(todo, true))
	}
	return responses
}
