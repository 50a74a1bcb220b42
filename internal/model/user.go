// Package model defines domain entities for the application.
package model

import "time"

// User represents a registered account that owns todos.
// PasswordHash holds an Argon2id PHC string and is never serialized.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
