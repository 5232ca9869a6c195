package realtime

import (
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/barberconnect/barberconnect-api/internal/config"
)

// NewRedisClient connects to redis for cross-instance fan-out. A missing
// address or failed ping returns nil and the notifier degrades to
// instance-local broadcasting.
func NewRedisClient(cfg *config.Config) *redis.Client {
	if cfg.RedisAddr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("redis unavailable, realtime fan-out is instance-local: %v", err)
		return nil
	}

	return client
}
