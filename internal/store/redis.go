// SPDX-License-Identifier: MIT

package store

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/redis/go-redis/v9"

	"github.com/katalvlaran/rdsim/simulation"
)

// Redis key scheme.
const (
	redisKeyPrefix = "rdsim:report:"
	redisIndexKey  = "rdsim:reports"
)

// Redis stores reports as string values plus a set index of run IDs.
type Redis struct {
	client *redis.Client
}

// OpenRedis connects using a redis:// URL and verifies the connection.
func OpenRedis(ctx context.Context, url string) (*Redis, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("OpenRedis: %w", err)
	}
	return NewRedis(ctx, redis.NewClient(opts))
}

// NewRedis wraps an existing client after a PING.
func NewRedis(ctx context.Context, client *redis.Client) (*Redis, error) {
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("OpenRedis: ping: %w", err)
	}
	return &Redis{client: client}, nil
}

// Save implements Store. Value and index are written in one transaction.
func (s *Redis) Save(ctx context.Context, rep *simulation.Report) error {
	data, err := encode(rep)
	if err != nil {
		return err
	}
	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, redisKeyPrefix+rep.RunID, data, 0)
		pipe.SAdd(ctx, redisIndexKey, rep.RunID)
		return nil
	})
	if err != nil {
		return fmt.Errorf("Save %s: %w", rep.RunID, err)
	}
	return nil
}

// Load implements Store.
func (s *Redis) Load(ctx context.Context, id string) (*simulation.Report, error) {
	data, err := s.client.Get(ctx, redisKeyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("Load %s: %w", id, err)
	}
	return decode(id, data)
}

// List implements Store.
func (s *Redis) List(ctx context.Context) ([]string, error) {
	ids, err := s.client.SMembers(ctx, redisIndexKey).Result()
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	sort.Strings(ids)
	return ids, nil
}

// Close implements Store.
func (s *Redis) Close() error { return s.client.Close() }
