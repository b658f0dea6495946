package middlewares

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Kariqs/shopcart-api/initializers"
	"github.com/Kariqs/shopcart-api/models"
	"github.com/Kariqs/shopcart-api/utils"
	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newProtectedRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, initializers.Migrate(db))

	previousConfig, previousDB := initializers.Config, initializers.DB
	t.Cleanup(func() {
		sqlDB.Close()
		initializers.Config, initializers.DB = previousConfig, previousDB
	})
	initializers.Config = initializers.DefaultSettings()
	initializers.Config.JWTSecret = "middleware-secret"
	initializers.DB = db

	router := gin.New()
	router.GET("/me", RequireAuth(), func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"userID": ctx.GetUint("userID")})
	})
	router.GET("/admin", RequireAuth(), RequireAdmin(), func(ctx *gin.Context) {
		ctx.Status(http.StatusOK)
	})
	return router, db
}

func seedUser(t *testing.T, db *gorm.DB, email string, staff bool) models.User {
	t.Helper()
	user := models.User{Email: email, Password: "hash", IsStaff: staff, IsActive: true}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func bearer(t *testing.T, userID uint, role string) string {
	t.Helper()
	token, err := utils.GenerateAccessToken(utils.TokenSubject{UserID: userID, Email: "x@example.com", Role: role}, "middleware-secret", time.Hour)
	require.NoError(t, err)
	return "Bearer " + token
}

func serve(router *gin.Engine, path, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRequireAuth(t *testing.T) {
	router, db := newProtectedRouter(t)
	user := seedUser(t, db, "shopper@example.com", false)

	assert.Equal(t, http.StatusUnauthorized, serve(router, "/me", "").Code)
	assert.Equal(t, http.StatusUnauthorized, serve(router, "/me", "Token abc").Code)
	assert.Equal(t, http.StatusUnauthorized, serve(router, "/me", "Bearer abc").Code)
	assert.Equal(t, http.StatusUnauthorized, serve(router, "/me", bearer(t, 999, "user")).Code)

	w := serve(router, "/me", bearer(t, user.ID, "user"))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, fmt.Sprintf(`{"userID":%d}`, user.ID), w.Body.String())
}

func TestRequireAuthRejectsDisabledAccount(t *testing.T) {
	router, db := newProtectedRouter(t)
	user := seedUser(t, db, "shopper@example.com", false)
	token := bearer(t, user.ID, "user")

	require.Equal(t, http.StatusOK, serve(router, "/me", token).Code)
	require.NoError(t, db.Model(&user).Update("is_active", false).Error)
	assert.Equal(t, http.StatusForbidden, serve(router, "/me", token).Code)
}

func TestRequireAdmin(t *testing.T) {
	router, db := newProtectedRouter(t)
	shopper := seedUser(t, db, "shopper@example.com", false)
	admin := seedUser(t, db, "admin@example.com", true)

	assert.Equal(t, http.StatusForbidden, serve(router, "/admin", bearer(t, shopper.ID, "user")).Code)
	assert.Equal(t, http.StatusOK, serve(router, "/admin", bearer(t, admin.ID, "admin")).Code)
}

func TestRequireAdminUsesCurrentRole(t *testing.T) {
	router, db := newProtectedRouter(t)
	admin := seedUser(t, db, "admin@example.com", true)
	token := bearer(t, admin.ID, "admin")

	require.Equal(t, http.StatusOK, serve(router, "/admin", token).Code)
	require.NoError(t, db.Model(&admin).Update("is_staff", false).Error)
	assert.Equal(t, http.StatusForbidden, serve(router, "/admin", token).Code)
}

func TestLoginRateLimitWithoutRedisIsNoop(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/login", LoginRateLimit(nil, 1, time.Minute), func(ctx *gin.Context) {
		ctx.Status(http.StatusBadRequest)
	})

	for n := 0; n < 3; n++ {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}
}

func newThrottledRouter(t *testing.T, maxAttempts int) (*gin.Engine, *miniredis.Miniredis) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { client.Close() })

	router := gin.New()
	router.POST("/login", LoginRateLimit(client, maxAttempts, time.Minute), func(ctx *gin.Context) {
		if ctx.GetHeader("X-Password") == "secret" {
			ctx.Status(http.StatusOK)
			return
		}
		ctx.Status(http.StatusBadRequest)
	})
	return router, server
}

func attemptLogin(router *gin.Engine, password string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	req.RemoteAddr = "192.0.2.10:4321"
	req.Header.Set("X-Password", password)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestLoginRateLimitBlocksAfterMaxFailures(t *testing.T) {
	router, server := newThrottledRouter(t, 3)

	for n := 0; n < 3; n++ {
		assert.Equal(t, http.StatusBadRequest, attemptLogin(router, "wrong").Code)
	}
	assert.True(t, server.Exists("login_cooldown:192.0.2.10"))

	w := attemptLogin(router, "secret")
	require.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "60", w.Header().Get("Retry-After"))
	var body struct {
		RetryAfter int `json:"retry_after"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 60, body.RetryAfter)

	server.FastForward(time.Minute)
	assert.Equal(t, http.StatusOK, attemptLogin(router, "secret").Code)
}

func TestLoginRateLimitResetsOnSuccess(t *testing.T) {
	router, server := newThrottledRouter(t, 3)

	for n := 0; n < 2; n++ {
		assert.Equal(t, http.StatusBadRequest, attemptLogin(router, "wrong").Code)
	}
	count, err := server.Get("login_attempts:192.0.2.10")
	require.NoError(t, err)
	assert.Equal(t, "2", count)

	assert.Equal(t, http.StatusOK, attemptLogin(router, "secret").Code)
	assert.False(t, server.Exists("login_attempts:192.0.2.10"))

	for n := 0; n < 2; n++ {
		assert.Equal(t, http.StatusBadRequest, attemptLogin(router, "wrong").Code)
	}
	assert.Equal(t, http.StatusOK, attemptLogin(router, "secret").Code)
}
