package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const keyPrefix = "washboard:session:"

// Redis keeps each session as one hash; the hash expires ttl after its last write.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

func NewRedisClient(cfg RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

func NewRedis(ctx context.Context, client *redis.Client, ttl time.Duration) (*Redis, error) {
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed %w", err)
	}
	return &Redis{client: client, ttl: ttl}, nil
}

func (r *Redis) Get(ctx context.Context, sessionID, key string) (string, bool, error) {
	v, err := r.client.HGet(ctx, keyPrefix+sessionID, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("redis get %w", err)
	}
	return v, true, nil
}

func (r *Redis) Set(ctx context.Context, sessionID, key, value string) error {
	hash := keyPrefix + sessionID
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, hash, key, value)
		if r.ttl > 0 {
			pipe.Expire(ctx, hash, r.ttl)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis set %w", err)
	}
	return nil
}

func (r *Redis) Delete(ctx context.Context, sessionID string, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := r.client.HDel(ctx, keyPrefix+sessionID, keys...).Err(); err != nil {
		return fmt.Errorf("redis delete %w", err)
	}
	return nil
}

func (r *Redis) Close() error {
	return r.client.Close()
}
