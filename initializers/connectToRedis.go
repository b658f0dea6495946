package initializers

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis stays nil when REDIS_ADDR is empty; callers treat that as "throttling disabled".
var Redis *redis.Client

func ConnectToRedis() {
	if Config.RedisAddr == "" {
		log.Println("REDIS_ADDR not set, login throttling disabled.")
		return
	}

	client := redis.NewClient(&redis.Options{
		Addr:         Config.RedisAddr,
		Password:     Config.RedisPassword,
		DB:           0,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Println("Redis unreachable, login throttling disabled:", err)
		return
	}

	Redis = client
	log.Println("Connected to Redis.")
}
