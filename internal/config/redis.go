package config

import (
	"context"
	"log"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	// RDB is the shared redis client used for dashboard caching.
	// Nil when REDIS_ADDR is unset; callers must treat the cache as optional.
	RDB *redis.Client
)

// InitRedis connects the analytics cache. The cache is best-effort: a missing
// or unreachable redis only disables caching, it never stops the server.
func InitRedis() {
	addr := getEnv("REDIS_ADDR", "")
	if addr == "" {
		log.Println("REDIS_ADDR not set – analytics caching disabled")
		return
	}

	db, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		db = 0
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("redis unreachable at %s: %v – analytics caching disabled", addr, err)
		return
	}

	RDB = client
}
