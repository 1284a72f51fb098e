package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port     string
	DBUrl    string
	LogLevel string
	// Session cookie
	SessionSecret string
	SessionTTL    time.Duration
	CookieSecure  bool
	// Redis (session revocation). Optional.
	RedisURL      string
	RedisPassword string
	// Resume storage
	StorageProvider string // "local" or "s3"
	StorageLocalDir string
	S3Bucket        string
	S3Region        string
	S3AccessKeyID   string
	S3SecretKey     string
	S3Endpoint      string // Custom endpoint for S3-compatible providers
	MaxResumeBytes  int64
}

func LoadConfig() (*Config, error) {
	// Only effective locally; ignored in production when the file is absent
	_ = godotenv.Load()

	cfg := &Config{
		Port:            getEnv("PORT", "8080"),
		DBUrl:           getEnv("DATABASE_URL", ""),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		SessionSecret:   getEnv("SESSION_SECRET", ""),
		SessionTTL:      getEnvDuration("SESSION_TTL", 14*24*time.Hour),
		CookieSecure:    getEnvBool("COOKIE_SECURE", os.Getenv("GIN_MODE") == "release"),
		RedisURL:        getEnv("REDIS_URL", ""),
		RedisPassword:   getEnv("REDIS_PASSWORD", ""),
		StorageProvider: strings.ToLower(getEnv("STORAGE_PROVIDER", "local")),
		StorageLocalDir: getEnv("STORAGE_LOCAL_DIR", "./media"),
		S3Bucket:        getEnv("S3_BUCKET", ""),
		S3Region:        getEnv("S3_REGION", "us-east-1"),
		S3AccessKeyID:   getEnv("S3_ACCESS_KEY_ID", ""),
		S3SecretKey:     getEnv("S3_SECRET_ACCESS_KEY", ""),
		S3Endpoint:      strings.TrimRight(getEnv("S3_ENDPOINT", ""), "/"),
		MaxResumeBytes:  int64(getEnvInt("MAX_RESUME_BYTES", 5<<20)),
	}

	if cfg.MaxResumeBytes <= 0 {
		return nil, fmt.Errorf("MAX_RESUME_BYTES must be positive, got %d", cfg.MaxResumeBytes)
	}

	if cfg.DBUrl == "" {
		log.Println("WARNING: DATABASE_URL is missing. Application may fail to connect.")
	}

	if cfg.SessionSecret == "" {
		log.Println("WARNING: SESSION_SECRET not configured. Using an insecure development secret.")
		cfg.SessionSecret = "dev-insecure-session-secret"
	}

	if cfg.RedisURL == "" {
		log.Println("WARNING: REDIS_URL not configured. Logged-out sessions are tracked in memory.")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvBool returns a boolean environment variable or fallback if not set/invalid
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}

// getEnvDuration accepts Go duration syntax ("336h", "30m")
func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if d, err := time.ParseDuration(value); err == nil && d > 0 {
			return d
		}
	}
	return fallback
}
