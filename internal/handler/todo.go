package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dailydo/dailydo/internal/auth"
	"github.com/dailydo/dailydo/internal/handler/dto"
	"github.com/dailydo/dailydo/internal/service"
)

// TodoHandler handles HTTP requests for todo operations.
// All routes sit behind the session gate, so the user ID is always in context.
type TodoHandler struct {
	svc    *service.TodoService
	logger *slog.Logger
}

// NewTodoHandler creates a new TodoHandler.
func NewTodoHandler(svc *service.TodoService, logger *slog.Logger) *TodoHandler {
	return &TodoHandler{
		svc:    svc,
		logger: logger,
	}
}

// List handles GET /api/todos. Returns today's todos only.
func (h *TodoHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserIDFromContext(r.Context())

	todos, err := h.svc.ListToday(r.Context(), userID)
	if err != nil {
		h.handleTodoError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTodoListResponse(todos))
}

// Create handles POST /api/todos. The todo is stamped with today's date.
func (h *TodoHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserIDFromContext(r.Context())

	var req dto.CreateTodoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	todo, err := h.svc.Add(r.Context(), userID, req.Text)
	if err != nil {
		h.handleTodoError(w, err)
		return
	}

	h.logger.Info("todo_created",
		"todo_id", todo.ID,
		"user_id", userID,
		"date", todo.Date,
	)

	writeJSON(w, http.StatusCreated, dto.ToTodoResponse(todo, true))
}

// Update handles PUT /api/todos/{id}. Only fields present in the body change.
func (h *TodoHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserIDFromContext(r.Context())
	id := chi.URLParam(r, "id")

	var req dto.UpdateTodoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	todo, err := h.svc.Update(r.Context(), userID, id, service.UpdateTodoInput{
		Text:      req.Text,
		Completed: req.Completed,
	})
	if err != nil {
		h.handleTodoError(w, err)
		return
	}

	h.logger.Info("todo_updated", "todo_id", todo.ID, "user_id", userID)

	writeJSON(w, http.StatusOK, dto.ToTodoResponse(todo, false))
}

// Delete handles DELETE /api/todos/{id}.
func (h *TodoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserIDFromContext(r.Context())
	id := chi.URLParam(r, "id")

	if err := h.svc.Delete(r.Context(), userID, id); err != nil {
		h.handleTodoError(w, err)
		return
	}

	h.logger.Info("todo_deleted", "todo_id", id, "user_id", userID)

	writeJSON(w, http.StatusOK, map[string]string{"message": "Todo deleted"})
}

// handleTodoError maps todo service errors to HTTP responses.
func (h *TodoHandler) handleTodoError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrEmptyText):
		writeError(w, http.StatusBadRequest, "Text is required")
	case errors.Is(err, service.ErrTodoNotFound):
		writeError(w, http.StatusNotFound, "Todo not found")
	default:
		h.logger.Error("todo error", "error", err.Error())
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}
