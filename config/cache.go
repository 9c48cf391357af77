package config

import (
	"context"
	"log"
	"os"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

var Redis *redis.Client

// ConnectRedis wires the optional availability cache. When REDIS_URL is
// unset or the server is unreachable the client stays nil and callers
// fall through to the database.
func ConnectRedis() {
	raw := strings.TrimSpace(os.Getenv("REDIS_URL"))
	if raw == "" {
		return
	}

	opts, err := redis.ParseURL(raw)
	if err != nil {
		log.Printf("warning: invalid REDIS_URL, cache disabled: %v", err)
		return
	}

	client := redis.NewClient(opts)
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("warning: redis unreachable, cache disabled: %v", err)
		_ = client.Close()
		return
	}

	Redis = client
	log.Println("Redis cache connected")
}
