package model

import "time"

// DateKeyLayout is the calendar-day key format (server-local time).
const DateKeyLayout = "2006-01-02"

// MonthKeyLayout is the calendar-month key format.
const MonthKeyLayout = "2006-01"

// Todo represents a single task scoped to an owning user and a calendar day.
// Month is always the first 7 characters of Date, stamped at creation time
// from the server's current date.
type Todo struct {
	ID        string    `json:"id"`
	UserID    string    `json:"-"`
	Text      string    `json:"text"`
	Completed bool      `json:"completed"`
	Date      string    `json:"date"`
	Month     string    `json:"month"`
	CreatedAt time.Time `json:"created_at"`
}

// DateKey formats t as a YYYY-MM-DD day key.
func DateKey(t time.Time) string {
	return t.Format(DateKeyLayout)
}

// MonthKey formats t as a YYYY-MM month key.
func MonthKey(t time.Time) string {
	return t.Format(MonthKeyLayout)
}
