// Package session provides the Redis-backed refresh session store.
package session

import (
	"context"
	"encoding/json"
	"time"

	"draftdesk/config"
	"draftdesk/internal/domain/service"
	"draftdesk/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const keyPrefix = "refresh:"

type redisStore struct {
	client *redis.Client
}

// Params holds dependencies for the session store, injected by Fx.
type Params struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	Config *config.Config
}

// NewRedisStore connects to the configured Redis and ties its shutdown to
// the app lifecycle.
func NewRedisStore(params Params) (service.RefreshSessionStore, error) {
	opts, err := redis.ParseURL(params.Config.Redis.URL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse redis url")
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(params.Ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		return nil, errors.Wrap(err, "failed to connect to redis")
	}

	params.Lifecycle.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return errors.WithStack(client.Close())
		},
	})

	return &redisStore{client: client}, nil
}

// NewRedisStoreWithClient builds a store around an existing client. Used by
// tests backed by miniredis.
func NewRedisStoreWithClient(client *redis.Client) service.RefreshSessionStore {
	return &redisStore{client: client}
}

func (s *redisStore) key(tokenHash string) string {
	return keyPrefix + tokenHash
}

// Save stores a refresh session until expiresAt.
func (s *redisStore) Save(ctx context.Context, tokenHash string, sess service.RefreshSession, expiresAt time.Time) error {
	payload, err := json.Marshal(sess)
	if err != nil {
		return errors.Wrap(err, "failed to marshal refresh session")
	}

	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return errors.New("refresh session already expired")
	}

	if err := s.client.Set(ctx, s.key(tokenHash), payload, ttl).Err(); err != nil {
		return errors.Wrap(err, "failed to save refresh session")
	}

	return nil
}

// Find retrieves a refresh session by token hash.
func (s *redisStore) Find(ctx context.Context, tokenHash string) (*service.RefreshSession, error) {
	payload, err := s.client.Get(ctx, s.key(tokenHash)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, service.ErrSessionNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to look up refresh session")
	}

	var sess service.RefreshSession
	if err := json.Unmarshal([]byte(payload), &sess); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal refresh session")
	}

	return &sess, nil
}

// Delete revokes one refresh session. Deleting an absent session is a no-op.
func (s *redisStore) Delete(ctx context.Context, tokenHash string) error {
	if err := s.client.Del(ctx, s.key(tokenHash)).Err(); err != nil {
		return errors.Wrap(err, "failed to revoke refresh session")
	}

	return nil
}
