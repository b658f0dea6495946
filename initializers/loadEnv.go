package initializers

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Settings struct {
	Port             string
	DBDriver         string
	DBDSN            string
	JWTSecret        string
	AccessTokenTTL   time.Duration
	RefreshTokenTTL  time.Duration
	CORSOrigins      []string
	StorageDriver    string
	S3Bucket         string
	MinIOEndpoint    string
	MinIOAccessKey   string
	MinIOSecretKey   string
	MinIOUseSSL      bool
	RedisAddr        string
	RedisPassword    string
	LoginMaxAttempts int
	LoginCooldown    time.Duration
	SMTPHost         string
	SMTPPort         int
	SMTPUsername     string
	SMTPPassword     string
	FromEmail        string
	FrontendURL      string
}

var Config = DefaultSettings()

// DefaultSettings returns the settings used when no environment is present.
func DefaultSettings() *Settings {
	return &Settings{
		Port:             "8080",
		DBDriver:         "mysql",
		StorageDriver:    "s3",
		AccessTokenTTL:   time.Hour,
		RefreshTokenTTL:  24 * time.Hour,
		CORSOrigins:      []string{"http://localhost:4200"},
		LoginMaxAttempts: 5,
		LoginCooldown:    15 * time.Minute,
		SMTPPort:         587,
	}
}

func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment.")
	}

	defaults := DefaultSettings()
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("PORT", defaults.Port)
	v.SetDefault("DB_DRIVER", defaults.DBDriver)
	v.SetDefault("STORAGE_DRIVER", defaults.StorageDriver)
	v.SetDefault("ACCESS_TOKEN_TTL", defaults.AccessTokenTTL)
	v.SetDefault("REFRESH_TOKEN_TTL", defaults.RefreshTokenTTL)
	v.SetDefault("CORS_ORIGINS", strings.Join(defaults.CORSOrigins, ","))
	v.SetDefault("LOGIN_MAX_ATTEMPTS", defaults.LoginMaxAttempts)
	v.SetDefault("LOGIN_COOLDOWN", defaults.LoginCooldown)
	v.SetDefault("SMTP_PORT", defaults.SMTPPort)

	Config = &Settings{
		Port:             v.GetString("PORT"),
		DBDriver:         strings.ToLower(v.GetString("DB_DRIVER")),
		DBDSN:            v.GetString("DB_DSN"),
		JWTSecret:        v.GetString("JWT_SECRET"),
		AccessTokenTTL:   v.GetDuration("ACCESS_TOKEN_TTL"),
		RefreshTokenTTL:  v.GetDuration("REFRESH_TOKEN_TTL"),
		CORSOrigins:      splitList(v.GetString("CORS_ORIGINS")),
		StorageDriver:    strings.ToLower(v.GetString("STORAGE_DRIVER")),
		S3Bucket:         v.GetString("S3_BUCKET"),
		MinIOEndpoint:    v.GetString("MINIO_ENDPOINT"),
		MinIOAccessKey:   v.GetString("MINIO_ACCESS_KEY"),
		MinIOSecretKey:   v.GetString("MINIO_SECRET_KEY"),
		MinIOUseSSL:      v.GetBool("MINIO_USE_SSL"),
		RedisAddr:        v.GetString("REDIS_ADDR"),
		RedisPassword:    v.GetString("REDIS_PASSWORD"),
		LoginMaxAttempts: v.GetInt("LOGIN_MAX_ATTEMPTS"),
		LoginCooldown:    v.GetDuration("LOGIN_COOLDOWN"),
		SMTPHost:         v.GetString("SMTP_HOST"),
		SMTPPort:         v.GetInt("SMTP_PORT"),
		SMTPUsername:     v.GetString("SMTP_USERNAME"),
		SMTPPassword:     v.GetString("SMTP_PASSWORD"),
		FromEmail:        v.GetString("FROM_EMAIL"),
		FrontendURL:      strings.TrimRight(v.GetString("FRONTEND_URL"), "/"),
	}

	if Config.JWTSecret == "" {
		log.Println("JWT_SECRET is not set, tokens will be signed with an empty key.")
	}
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
