package repository

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	pageKeyPrefix    = "page:"
	sessionKeyPrefix = "admin-session:"
)

// RedisRepo holds rendered public responses and admin sessions.
type RedisRepo struct {
	client  *redis.Client
	pageTTL time.Duration
}

func NewRedisRepo(client *redis.Client, pageTTL time.Duration) *RedisRepo {
	return &RedisRepo{
		client:  client,
		pageTTL: pageTTL,
	}
}

func PageKey(path string) string {
	return pageKeyPrefix + path
}

func SessionKey(id string) string {
	return sessionKeyPrefix + id
}

func (r *RedisRepo) GetPage(ctx context.Context, path string) ([]byte, bool) {
	body, err := r.client.Get(ctx, PageKey(path)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Printf("Error reading cached page %s: %v", path, err)
		}
		return nil, false
	}
	return body, true
}

func (r *RedisRepo) SavePage(ctx context.Context, path string, body []byte) {
	if err := r.client.Set(ctx, PageKey(path), body, r.pageTTL).Err(); err != nil {
		log.Printf("Error caching page %s: %v", path, err)
	}
}

// Invalidate marks the cached output of every path stale.
func (r *RedisRepo) Invalidate(ctx context.Context, paths ...string) error {
	if len(paths) == 0 {
		return nil
	}
	keys := make([]string, 0, len(paths))
	for _, p := range paths {
		keys = append(keys, PageKey(p))
	}
	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("error deleting cached pages %v: %w", paths, err)
	}
	return nil
}

func (r *RedisRepo) SaveSession(ctx context.Context, id string, ttl time.Duration) error {
	if err := r.client.Set(ctx, SessionKey(id), time.Now().Unix(), ttl).Err(); err != nil {
		return fmt.Errorf("error saving session %s: %w", id, err)
	}
	return nil
}

func (r *RedisRepo) SessionExists(ctx context.Context, id string) (bool, error) {
	n, err := r.client.Exists(ctx, SessionKey(id)).Result()
	if err != nil {
		return false, fmt.Errorf("error checking session %s: %w", id, err)
	}
	return n > 0, nil
}

func (r *RedisRepo) DeleteSession(ctx context.Context, id string) error {
	if err := r.client.Del(ctx, SessionKey(id)).Err(); err != nil {
		return fmt.Errorf("error deleting session %s: %w", id, err)
	}
	return nil
}
