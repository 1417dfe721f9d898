package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/ManuelReschke/PixelShop/internal/pkg/env"
	fiberlog "github.com/gofiber/fiber/v2/log"
	"github.com/redis/go-redis/v9"
)

var (
	client    *redis.Client
	available bool
)

// SetupCache initializes the connection to the Redis compatible cache server
func SetupCache() {
	host := env.GetEnv("CACHE_HOST", "localhost")
	port := env.GetEnv("CACHE_PORT", "6379")

	client = redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", host, port),
		Password: env.GetEnv("CACHE_PASSWORD", ""),
		DB:       0,
	})

	// Test the connection
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	pong, err := client.Ping(ctx).Result()
	if err != nil {
		available = false
		fiberlog.Warnf("[Cache] could not connect to cache: %v", err)
	} else {
		available = true
		fiberlog.Infof("[Cache] connected: %s", pong)
	}
}

// GetClient returns the Redis client instance
func GetClient() *redis.Client {
	if client == nil {
		SetupCache()
	}
	return client
}

// Available reports whether the last connection attempt succeeded.
func Available() bool {
	return client != nil && available
}

// Host and Port of the configured cache, for components that open their own
// connection (limiter storage).
func Host() string {
	return env.GetEnv("CACHE_HOST", "localhost")
}

func Port() int {
	p, err := strconv.Atoi(env.GetEnv("CACHE_PORT", "6379"))
	if err != nil {
		return 6379
	}
	return p
}
