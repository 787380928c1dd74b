package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hexconv-service/internal/config"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// ErrNotFound is returned by GetConversion on a cache miss.
var ErrNotFound = errors.New("conversion not cached")

type RedisClient struct {
	client *redis.Client
	config config.RedisConfig
	logger *zap.Logger
}

// NewRedisClient connects to Redis and pings it once.
func NewRedisClient(cfg config.RedisConfig, logger *zap.Logger) (*RedisClient, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.Info("Connected to Redis",
		zap.String("addr", cfg.Addr),
		zap.Int("db", cfg.DB),
	)

	return &RedisClient{
		client: client,
		config: cfg,
		logger: logger,
	}, nil
}

func conversionKey(direction, input string) string {
	return fmt.Sprintf("conv:%s:%s", direction, input)
}

// GetConversion returns a cached result for direction ("hexify" or
// "decify") and the raw input.
func (r *RedisClient) GetConversion(ctx context.Context, direction, input string) (string, error) {
	key := conversionKey(direction, input)
	value, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrNotFound
		}
		r.logger.Error("Redis GET error",
			zap.String("key", key),
			zap.Error(err))
		return "", fmt.Errorf("redis get %s: %w", key, err)
	}
	return value, nil
}

// SetConversion stores a result with the configured TTL.
func (r *RedisClient) SetConversion(ctx context.Context, direction, input, output string) error {
	key := conversionKey(direction, input)
	if err := r.client.Set(ctx, key, output, r.config.TTL).Err(); err != nil {
		r.logger.Error("Redis SET error",
			zap.String("key", key),
			zap.Error(err))
		return fmt.Errorf("caching error: %w", err)
	}
	r.logger.Debug("Conversion saved to Redis",
		zap.String("key", key),
		zap.Duration("ttl", r.config.TTL),
	)
	return nil
}

// HealthCheck pings Redis.
func (r *RedisClient) HealthCheck(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		r.logger.Warn("Redis health check failed", zap.Error(err))
		return fmt.Errorf("redis health check failed: %w", err)
	}
	return nil
}

func (r *RedisClient) Close() error {
	if r == nil || r.client == nil {
		return nil
	}
	return r.client.Close()
}
