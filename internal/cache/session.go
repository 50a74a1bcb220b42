package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dailydo/dailydo/internal/model"
)

// sessionPrefix is the Redis key prefix for browser sessions.
const sessionPrefix = "session:"

// SetSession stores the session identity under the opaque token with a TTL.
// The TTL is the framework-managed expiry for the browser session.
func (c *Cache) SetSession(ctx context.Context, token string, sess *model.Session, ttl time.Duration) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	return c.client.Set(ctx, sessionPrefix+token, data, ttl).Err()
}

// GetSession retrieves the session identity for a token.
// Returns nil if the token is unknown or expired (not an error).
func (c *Cache) GetSession(ctx context.Context, token string) (*model.Session, error) {
	data, err := c.client.Get(ctx, sessionPrefix+token).Bytes()
	if err != nil {
		// Missing or expired token is a normal unauthenticated state
		return nil, nil //nolint:nilerr
	}

	var sess model.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		// Corrupted entry - treat as unauthenticated
		return nil, nil //nolint:nilerr
	}

	return &sess, nil
}

// DeleteSession removes a session token. Deleting an absent token is a no-op,
// which keeps logout idempotent.
func (c *Cache) DeleteSession(ctx context.Context, token string) error {
	return c.client.Del(ctx, sessionPrefix+token).Err()
}
