// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"divineastro/config"

	"github.com/go-redis/redis/v8"
)

var (
	// CartCacheClient is the Redis client holding shopping-cart sessions.
	CartCacheClient *redis.Client
	// AuthCacheClient is the dedicated client for identity-verification caching.
	AuthCacheClient *redis.Client
)

// InitCartCache initializes the Redis client for cart sessions.
func InitCartCache() {
	CartCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCartDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := CartCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Cart Cache): %v", err)
	}
}

// GetCartCacheClient returns the cart session client.
func GetCartCacheClient() *redis.Client {
	if CartCacheClient == nil {
		InitCartCache()
	}
	return CartCacheClient
}

// InitAuthCache initializes the Redis client for identity-verification caching.
func InitAuthCache() {
	AuthCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisAuthDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := AuthCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Auth Cache): %v", err)
	}
}

// GetAuthCacheClient returns the identity-verification cache client.
func GetAuthCacheClient() *redis.Client {
	if AuthCacheClient == nil {
		InitAuthCache()
	}
	return AuthCacheClient
}
