package utils

import (
	"context"       // Context for Redis operations
	"encoding/json" // JSON encoding/decoding
	"strconv"       // Cache key building
	"time"          // Time durations

	"github.com/redis/go-redis/v9" // Redis client
)

// Cache keys used by the read-through list endpoints.
const (
	LibraryListKey        = "libraries:all"        // All-libraries list
	userLibrariesPrefix   = "libraries:user:"      // Per-user membership list
	AdminUsersKeyPrefix   = "admin:users:"         // Paginated admin user list
	DefaultTTL            = 60 * time.Second       // TTL for cached list responses
	adminUsersInvalidatePages = 5                  // How many cached admin pages to drop on write
)

// UserLibrariesKey builds the cache key for one user's library list.
func UserLibrariesKey(userID uint) string {
	return userLibrariesPrefix + strconv.Itoa(int(userID))
}

// GetCache retrieves a value from Redis and unmarshals it into dest.
// The bool reports whether the key existed.
func GetCache(ctx context.Context, rdb *redis.Client, key string, dest any) (bool, error) {
	val, err := rdb.Get(ctx, key).Result() // Get value from Redis
	if err == redis.Nil {
		return false, nil // Key does not exist
	} else if err != nil {
		return false, err // Other Redis error
	}
	return true, json.Unmarshal([]byte(val), dest) // Unmarshal JSON into dest
}

// SetCache sets a value in Redis with a specified TTL.
func SetCache(ctx context.Context, rdb *redis.Client, key string, value any, ttl time.Duration) error {
	b, err := json.Marshal(value) // Marshal value to JSON
	if err != nil {
		return err // Return error if marshaling fails
	}
	return rdb.Set(ctx, key, b, ttl).Err() // Set value in Redis with TTL
}

// DeleteCache deletes a key from Redis.
func DeleteCache(ctx context.Context, rdb *redis.Client, key string) error {
	return rdb.Del(ctx, key).Err() // Delete key from Redis
}

// InvalidateUserLibraries drops the cached library list for one user.
// Called after joins, leaves, and user deletion.
func InvalidateUserLibraries(ctx context.Context, rdb *redis.Client, userID uint) {
	_ = DeleteCache(ctx, rdb, UserLibrariesKey(userID))
}

// InvalidateAdminUsers drops the cached admin user pages after a user is
// created or deleted (simple version: delete the first few pages).
func InvalidateAdminUsers(ctx context.Context, rdb *redis.Client) {
	for i := 1; i <= adminUsersInvalidatePages; i++ {
		_ = DeleteCache(ctx, rdb, AdminUsersKeyPrefix+"page="+strconv.Itoa(i)+":size=20")
	}
}
