package service

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/dailydo/dailydo/internal/model"
)

// maxMonthlyEntries caps the monthly rollup at the most recent months.
const maxMonthlyEntries = 12

// progress returns the completion percentage rounded to 1 decimal place.
// A group with no tasks reports 0 rather than dividing by zero.
func progress(completed, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(completed)/float64(total)*100*10) / 10
}

// countCompleted tallies completed todos in a group.
func countCompleted(todos []*model.Todo) int {
	completed := 0
	for _, t := range todos {
		if t.Completed {
			completed++
		}
	}
	return completed
}

// summarizeDay reduces one day's todos into a TodayStats tuple.
func summarizeDay(todos []*model.Todo) model.TodayStats {
	total := len(todos)
	completed := countCompleted(todos)

	return model.TodayStats{
		Total:     total,
		Completed: completed,
		Pending:   total - completed,
		Progress:  progress(completed, total),
	}
}

// monthLabel converts a YYYY-MM month key into a "March 2024" style label.
// Malformed keys fall back to the raw key.
func monthLabel(monthKey string) string {
	t, err := time.Parse(model.MonthKeyLayout, monthKey)
	if err != nil {
		return monthKey
	}
	return fmt.Sprintf("%s %d", t.Month(), t.Year())
}

// groupMonthly buckets todos by month key and reduces each bucket, most
// recent month first, capped at maxMonthlyEntries.
func groupMonthly(todos []*model.Todo) []model.MonthStats {
	type bucket struct {
		total     int
		completed int
	}

	buckets := make(map[string]*bucket)
	for _, t := range todos {
		b := buckets[t.Month]
		if b == nil {
			b = &bucket{}
			buckets[t.Month] = b
		}
		b.total++
		if t.Completed {
			b.completed++
		}
	}

	months := make([]string, 0, len(buckets))
	for month := range buckets {
		months = append(months, month)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(months)))

	if len(months) > maxMonthlyEntries {
		months = months[:maxMonthlyEntries]
	}

	stats := make([]model.MonthStats, 0, len(months))
	for _, month := range months {
		b := buckets[month]
		stats = append(stats, model.MonthStats{
			Month:     month,
			MonthName: monthLabel(month),
			Total:     b.total,
			Completed: b.completed,
			Pending:   b.total - b.completed,
			Progress:  progress(b.completed, b.total),
		})
	}

	return stats
}
