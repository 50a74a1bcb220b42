package service

import (
	"context"
	"time"

	"github.com/dailydo/dailydo/internal/model"
)

// TodoSource is the slice of the task store the aggregator reads from.
// *repository.Repository satisfies it; tests substitute an in-memory fake.
type TodoSource interface {
	ListTodosByDate(ctx context.Context, userID, date string) ([]*model.Todo, error)
	ListTodosByUser(ctx context.Context, userID string) ([]*model.Todo, error)
}

// StatsService derives completion rollups by scanning the task store and
// grouping in memory. It holds no state of its own.
type StatsService struct {
	todos TodoSource
	now   func() time.Time
}

// NewStatsService creates a new StatsService.
func NewStatsService(todos TodoSource) *StatsService {
	return &StatsService{
		todos: todos,
		now:   time.Now,
	}
}

// Today summarizes the user's todos for the current date.
func (s *StatsService) Today(ctx context.Context, userID string) (model.TodayStats, error) {
	todos, err := s.todos.ListTodosByDate(ctx, userID, model.DateKey(s.now()))
	if err != nil {
		return model.TodayStats{}, err
	}

	return summarizeDay(todos), nil
}

// Week summarizes each of the 7 days ending today, oldest first.
// Days with no todos report zero progress.
func (s *StatsService) Week(ctx context.Context, userID string) ([]model.DayStats, error) {
	now := s.now()
	week := make([]model.DayStats, 0, 7)

	for i := 6; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		date := model.DateKey(day)

		todos, err := s.todos.ListTodosByDate(ctx, userID, date)
		if err != nil {
			return nil, err
		}

		daily := summarizeDay(todos)
		week = append(week, model.DayStats{
			Date:      date,
			Day:       day.Weekday().String()[:3],
			Total:     daily.Total,
			Completed: daily.Completed,
			Pending:   daily.Pending,
			Progress:  daily.Progress,
		})
	}

	return week, nil
}

// Monthly groups all of the user's todos by month key, most recent first,
// returning at most the 12 most recent months.
func (s *StatsService) Monthly(ctx context.Context, userID string) ([]model.MonthStats, error) {
	todos, err := s.todos.ListTodosByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return groupMonthly(todos), nil
}
