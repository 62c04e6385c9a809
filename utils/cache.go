// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"pitchside/config"

	"github.com/go-redis/redis/v8"
)

// AuthCacheClient is the dedicated client for admin session caching.
var AuthCacheClient *redis.Client

const authTokenPrefix = "adminToken:"

// InitAuthCache initializes the Redis client for admin session caching.
func InitAuthCache() {
	AuthCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisAuthDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := AuthCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Auth Cache): %v", err)
	}
}

// GetAuthCacheClient returns the Redis client for admin session caching.
func GetAuthCacheClient() *redis.Client {
	if AuthCacheClient == nil {
		InitAuthCache()
	}
	return AuthCacheClient
}

// StoreAdminToken records the hash of an issued admin token with a TTL.
// Only tokens present in the cache are accepted by the admin middleware,
// so logout is an immediate revocation.
func StoreAdminToken(ctx context.Context, client *redis.Client, adminID, tokenHash string, ttl time.Duration) error {
	return client.Set(ctx, authTokenPrefix+tokenHash, adminID, ttl).Err()
}

// CheckAdminToken reports whether a token hash is an active session and
// returns the admin id it was issued to.
func CheckAdminToken(ctx context.Context, client *redis.Client, tokenHash string) (string, bool) {
	adminID, err := client.Get(ctx, authTokenPrefix+tokenHash).Result()
	if err != nil {
		return "", false
	}
	return adminID, true
}

// RevokeAdminToken drops an admin session.
func RevokeAdminToken(ctx context.Context, client *redis.Client, tokenHash string) error {
	return client.Del(ctx, authTokenPrefix+tokenHash).Err()
}
