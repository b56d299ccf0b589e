package initializers

import (
	"context"
	"os"

	logger "bookstore-api/loggers"

	"github.com/redis/go-redis/v9"
)

var Client *redis.Client

// ConnectRedis establishes the cache connection, checking it with a
// ping. Redis is optional: on failure the client is left nil and the
// API serves everything from the database.
func ConnectRedis() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		logger.Logger.Warn("redis unavailable, serving without cache: ", err)
		return
	}
	Client = client
}
