package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tyrehub/appointment-service/internal/wizard"
)

const keyPrefix = "wizard:session:"

// Store keeps wizard form state in Redis between requests. A session
// is the only transiently persisted piece of wizard state: it survives
// a page reload, expires after the configured TTL when abandoned, and
// is deleted on successful submission or explicit reset.
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStore creates a session store with the given TTL for idle
// sessions.
func NewStore(client *redis.Client, ttl time.Duration) *Store {
	return &Store{client: client, ttl: ttl}
}

// Save writes the state under the session id and refreshes the TTL.
func (s *Store) Save(ctx context.Context, sessionID string, state wizard.FormState) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEncode, err)
	}

	if err := s.client.Set(ctx, keyPrefix+sessionID, payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("%w: Save: %v", ErrRedis, err)
	}
	return nil
}

// Get loads the state for a session id.
func (s *Store) Get(ctx context.Context, sessionID string) (wizard.FormState, error) {
	payload, err := s.client.Get(ctx, keyPrefix+sessionID).Bytes()
	if err == redis.Nil {
		return wizard.FormState{}, ErrSessionNotFound
	}
	if err != nil {
		return wizard.FormState{}, fmt.Errorf("%w: Get: %v", ErrRedis, err)
	}

	var state wizard.FormState
	if err := json.Unmarshal(payload, &state); err != nil {
		return wizard.FormState{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return state, nil
}

// Delete removes a session. Deleting an unknown session is not an
// error.
func (s *Store) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, keyPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("%w: Delete: %v", ErrRedis, err)
	}
	return nil
}

// NewClient creates a Redis client from config values.
func NewClient(addr, password string, db, poolSize int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
		PoolSize: poolSize,
	})
}

// Ping verifies the Redis connection.
func Ping(ctx context.Context, client *redis.Client) error {
	if err := client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("%w: Ping: %v", ErrRedis, err)
	}
	return nil
}
