// Package cache holds the optional short-TTL query-result cache. Repeated
// identical queries within the TTL skip the upstream call; filtering still
// runs per request because criteria are not part of the key.
//
// This cache is supplementary to the 7-day station directory file cache in
// the station package.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/kirorab/12306-skill/ticket"
)

// Key identifies one query: tickets belong to exactly one
// origin/destination/date triple.
type Key struct {
	From string
	To   string
	Date string
}

type Cache interface {
	Get(ctx context.Context, key Key) ([]ticket.Record, bool)
	Set(ctx context.Context, key Key, tickets []ticket.Record) error
	Close() error
}

type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	TTL      time.Duration
}

func DefaultRedisConfig() RedisConfig {
	return RedisConfig{
		Host: "localhost",
		Port: "6379",
		TTL:  5 * time.Minute,
	}
}

func NewRedisCache(cfg RedisConfig) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Host + ":" + cfg.Port,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &RedisCache{client: client, ttl: cfg.TTL}, nil
}

func (c *RedisCache) Get(ctx context.Context, key Key) ([]ticket.Record, bool) {
	data, err := c.client.Get(ctx, generateKey(key)).Bytes()
	if err != nil {
		return nil, false
	}

	var tickets []ticket.Record
	if err := json.Unmarshal(data, &tickets); err != nil {
		return nil, false
	}
	return tickets, true
}

func (c *RedisCache) Set(ctx context.Context, key Key, tickets []ticket.Record) error {
	data, err := json.Marshal(tickets)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, generateKey(key), data, c.ttl).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

// NoOpCache is the fallback when the query cache is disabled or
// unreachable.
type NoOpCache struct{}

func NewNoOpCache() *NoOpCache { return &NoOpCache{} }

func (c *NoOpCache) Get(ctx context.Context, key Key) ([]ticket.Record, bool) {
	return nil, false
}

func (c *NoOpCache) Set(ctx context.Context, key Key, tickets []ticket.Record) error {
	return nil
}

func (c *NoOpCache) Close() error { return nil }

func generateKey(key Key) string {
	data, _ := json.Marshal(key)
	hash := sha256.Sum256(data)
	return "tickets:" + hex.EncodeToString(hash[:])
}
