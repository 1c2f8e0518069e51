package config

import (
	"os"
	"strconv"
	"time"
)

// Henrik API configuration struct.
type HenrikConfiguration struct {
	ApiKey  string
	BaseURL string
}

// Redis configuration struct.
type RedisConfiguration struct {
	Host     string
	Port     string
	Password string
}

// Database configuration struct.
type DatabaseConfiguration struct {
	URL            string
	Database       string
	MigrationsPath string

	// Size cap in bytes for the raw match payload storage.
	RawCacheMaxBytes int64
}

// Bucket configuration for the log uploads.
type BucketConfiguration struct {
	Region       string
	Endpoint     string
	AccessKey    string
	AccessSecret string
	LogBucket    string
}

// Webhook listener configuration.
type WebhookConfiguration struct {
	Secret       string
	Port         string
	UpdateScript string
}

// Single rate limit window.
type RateWindow struct {
	Count         int
	ResetInterval time.Duration
}

// Rate limits enforced by the Henrik API.
// The lower window is per second, the higher one per two minutes.
type RateLimits struct {
	Lower        RateWindow
	Higher       RateWindow
	SlowInterval time.Duration
}

var (
	Henrik   HenrikConfiguration
	Redis    RedisConfiguration
	Database DatabaseConfiguration
	Bucket   BucketConfiguration
	Webhook  WebhookConfiguration
	Limits   RateLimits
)

// Load the variables.
func LoadEnv() {
	Henrik.ApiKey = os.Getenv("HENRIK_API_KEY")
	Henrik.BaseURL = getEnvDefault("HENRIK_BASE_URL", "https://api.henrikdev.xyz/valorant")

	Redis.Host = os.Getenv("REDIS_HOST")
	Redis.Port = os.Getenv("REDIS_PORT")
	Redis.Password = os.Getenv("REDIS_PASSWORD")

	Database.URL = os.Getenv("DATABASE_URL")
	Database.Database = getEnvDefault("DATABASE_NAME", "shootystats")
	Database.MigrationsPath = getEnvDefault("MIGRATIONS_PATH", "migrations")
	Database.RawCacheMaxBytes = getEnvBytes("RAW_CACHE_MAX_MB", 50)

	Bucket.Region = os.Getenv("BUCKET_REGION")
	Bucket.Endpoint = os.Getenv("BUCKET_ENDPOINT")
	Bucket.AccessKey = os.Getenv("BUCKET_ACCESS_KEY")
	Bucket.AccessSecret = os.Getenv("BUCKET_ACCESS_SECRET")
	Bucket.LogBucket = os.Getenv("BUCKET_LOG_NAME")

	Webhook.Secret = os.Getenv("WEBHOOK_SECRET")
	Webhook.Port = getEnvDefault("WEBHOOK_PORT", "9000")
	Webhook.UpdateScript = getEnvDefault("UPDATE_SCRIPT", "./update.sh")

	// Free tier allows one request per second and 30 per two minutes.
	// An advanced key bumps the slow window.
	perTwoMinutes := 30
	if Henrik.ApiKey != "" {
		perTwoMinutes = 90
	}

	Limits = RateLimits{
		Lower: RateWindow{
			Count:         1,
			ResetInterval: time.Second,
		},
		Higher: RateWindow{
			Count:         perTwoMinutes,
			ResetInterval: 2 * time.Minute,
		},
		SlowInterval: 5 * time.Second,
	}
}

// Get a env variable with a fallback default.
func getEnvDefault(key string, def string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return def
}

// Read a megabyte sized env variable as bytes.
func getEnvBytes(key string, defMb int64) int64 {
	mb := defMb
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseInt(value, 10, 64); err == nil && parsed > 0 {
			mb = parsed
		}
	}
	return mb * 1024 * 1024
}
