package middlewares

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// LoginRateLimit blocks a client IP for cooldown once it has failed maxAttempts
// logins. Without a Redis client it lets every request through.
func LoginRateLimit(client *redis.Client, maxAttempts int, cooldown time.Duration) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if client == nil || maxAttempts <= 0 {
			ctx.Next()
			return
		}

		reqCtx := ctx.Request.Context()
		ip := ctx.ClientIP()
		attemptsKey := "login_attempts:" + ip
		cooldownKey := "login_cooldown:" + ip

		if ttl, err := client.TTL(reqCtx, cooldownKey).Result(); err == nil && ttl > 0 {
			ctx.Header("Retry-After", fmt.Sprintf("%d", int(ttl.Seconds())))
			ctx.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"message":     fmt.Sprintf("Too many failed login attempts. Try again in %d minutes.", int(ttl.Minutes())+1),
				"retry_after": int(ttl.Seconds()),
			})
			return
		}

		ctx.Next()

		switch ctx.Writer.Status() {
		case http.StatusOK:
			client.Del(reqCtx, attemptsKey, cooldownKey)
		case http.StatusBadRequest, http.StatusUnauthorized, http.StatusForbidden:
			pipe := client.TxPipeline()
			incr := pipe.Incr(reqCtx, attemptsKey)
			pipe.Expire(reqCtx, attemptsKey, cooldown)
			if _, err := pipe.Exec(reqCtx); err != nil {
				log.Println("Rate limit error:", err)
				return
			}
			if incr.Val() >= int64(maxAttempts) {
				client.Set(reqCtx, cooldownKey, "1", cooldown)
				client.Del(reqCtx, attemptsKey)
			}
		}
	}
}
