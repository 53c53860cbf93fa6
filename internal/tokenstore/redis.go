// Copyright (c) 2026 SecWatch Team
// SecWatch - security monitoring console
// This source code is licensed under the MIT license found in the LICENSE file.

package tokenstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps the token under a prefixed key in redis, which lets
// several consoles on different hosts share one login.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore connects lazily to the redis server at addr.
func NewRedisStore(addr, password string) *RedisStore {
	return NewRedisStoreFromClient(redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	}))
}

// NewRedisStoreFromClient wraps an existing client.
func NewRedisStoreFromClient(client *redis.Client) *RedisStore {
	return &RedisStore{client: client, prefix: "secwatch:"}
}

func (r *RedisStore) key() string { return r.prefix + Key }

func (r *RedisStore) Get(ctx context.Context) (string, error) {
	val, err := r.client.Get(ctx, r.key()).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read token: %w", err)
	}
	return val, nil
}

// Set stores the token without expiry; the backend decides validity.
func (r *RedisStore) Set(ctx context.Context, token string) error {
	if err := r.client.Set(ctx, r.key(), token, 0).Err(); err != nil {
		return fmt.Errorf("write token: %w", err)
	}
	return nil
}

func (r *RedisStore) Clear(ctx context.Context) error {
	if err := r.client.Del(ctx, r.key()).Err(); err != nil {
		return fmt.Errorf("clear token: %w", err)
	}
	return nil
}

// Close closes the redis client.
func (r *RedisStore) Close() error { return r.client.Close() }
