package model

// Session identifies the authenticated user bound to an opaque browser token.
// The token itself is the Redis key; only the identity is stored as the value.
type Session struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}
