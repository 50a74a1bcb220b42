package dto

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/dailydo/dailydo/internal/model"
)

func newTodo() *model.Todo {
	return &model.Todo{
		ID:        "01HV0000000000000000000000",
		Text:      "Buy milk",
		Completed: false,
		Date:      "2024-03-15",
		Month:     "2024-03",
		CreatedAt: time.Date(2024, 3, 15, 9, 30, 5, 0, time.UTC),
	}
}

func TestToTodoResponse_WithCreatedAt(t *testing.T) {
	t.Parallel()

	resp := ToTodoResponse(newTodo(), true)

	if resp.CreatedAt != "2024-03-15 09:30:05" {
		t.Errorf("unexpected created_at format: %s", resp.CreatedAt)
	}
	if resp.Month != "2024-03" {
		t.Errorf("unexpected month: %s", resp.Month)
	}
}

func TestToTodoResponse_CreatedAtOmittedOnUpdate(t *testing.T) {
	t.Parallel()

	resp := ToTodoResponse(newTodo(), false)

	data, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("marshal response: %v", err)
	}

	if strings.Contains(string(data), "created_at") {
		t.Errorf("created_at should be omitted on update responses, got %s", data)
	}
}

func TestToTodoListResponse_EmptySerializesAsArray(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(ToTodoListResponse(nil))
	if err != nil {
		t.Fatalf("marshal response: %v", err)
	}

	if string(data) != "[]" {
		t.Errorf("expected empty array, got %s", data)
	}
}
