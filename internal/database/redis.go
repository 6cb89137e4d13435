package database

import (
	"context"
	"log"
	"os"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient connects to Redis when REDIS_ADDR is set. Redis is an
// optional read cache here, so a missing address or failed ping returns
// nil and the app serves everything from Postgres.
func NewRedisClient() *redis.Client {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Printf("warning: failed to connect to Redis at %s, leaderboard cache disabled: %v", addr, err)
		return nil
	}

	log.Println("Successfully connected to Redis")
	return client
}
