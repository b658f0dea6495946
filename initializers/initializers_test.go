package initializers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnvReadsEnvironment(t *testing.T) {
	previous := Config
	t.Cleanup(func() { Config = previous })

	t.Setenv("PORT", "9090")
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("ACCESS_TOKEN_TTL", "30m")
	t.Setenv("CORS_ORIGINS", "https://shop.example.com, http://localhost:4200 ,")
	t.Setenv("LOGIN_MAX_ATTEMPTS", "3")

	LoadEnv()

	assert.Equal(t, "9090", Config.Port)
	assert.Equal(t, "sqlite", Config.DBDriver)
	assert.Equal(t, 30*time.Minute, Config.AccessTokenTTL)
	assert.Equal(t, 24*time.Hour, Config.RefreshTokenTTL)
	assert.Equal(t, []string{"https://shop.example.com", "http://localhost:4200"}, Config.CORSOrigins)
	assert.Equal(t, 3, Config.LoginMaxAttempts)
	assert.Equal(t, 15*time.Minute, Config.LoginCooldown)
}

func TestOpenDatabaseAndMigrate(t *testing.T) {
	db, err := OpenDatabase("sqlite", "file::memory:")
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	require.NoError(t, Migrate(db))

	assert.True(t, db.Migrator().HasTable("cart_items"))
	assert.True(t, db.Migrator().HasIndex("cart_items", "idx_cart_product"))
	assert.True(t, db.Migrator().HasIndex("wishlist_items", "idx_wishlist_user_product"))

	_, err = OpenDatabase("oracle", "")
	assert.Error(t, err)
}
