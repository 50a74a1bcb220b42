package model

// TodayStats summarizes completion for the current day.
type TodayStats struct {
	Total     int     `json:"total"`
	Completed int     `json:"completed"`
	Pending   int     `json:"pending"`
	Progress  float64 `json:"progress"`
}

// DayStats summarizes completion for a single calendar day in the weekly view.
// Day is the 3-letter weekday abbreviation (e.g. "Mon").
type DayStats struct {
	Date      string  `json:"date"`
	Day       string  `json:"day"`
	Total     int     `json:"total"`
	Completed int     `json:"completed"`
	Pending   int     `json:"pending"`
	Progress  float64 `json:"progress"`
}

// MonthStats summarizes completion for one calendar month.
// MonthName is a human-readable label like "March 2024".
type MonthStats struct {
	Month     string  `json:"month"`
	MonthName string  `json:"month_name"`
	Total     int     `json:"total"`
	Completed int     `json:"completed"`
	Pending   int     `json:"pending"`
	Progress  float64 `json:"progress"`
}
