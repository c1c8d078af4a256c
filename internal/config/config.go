package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds the whole application configuration.
// Populated from environment variables.
type Config struct {
	App     AppConfig
	Redis   RedisConfig
	Session SessionConfig
	Admin   AdminConfig
	MinIO   MinIOConfig
	Upload  UploadConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
}

type RedisConfig struct {
	Host     string
	Password string
	DB       int
}

type SessionConfig struct {
	Secret string
	Expiry time.Duration
	// Secure controls the Secure flag on the session cookie.
	Secure bool
}

// AdminConfig is the single static credential pair.
// There is no user system: exactly one admin identity, configured at deploy
// time. PasswordHash (bcrypt) takes precedence over the plain Password.
type AdminConfig struct {
	Email        string
	Password     string
	PasswordHash string
	Name         string
}

type MinIOConfig struct {
	Endpoint  string // localhost:9000
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

type UploadConfig struct {
	// MaxSize is the upload ceiling in bytes.
	MaxSize int64
	// Prefix is the object key prefix inside the bucket.
	Prefix string
}

// Load reads config from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Author Site API"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Session: SessionConfig{
			Secret: getEnv("SESSION_SECRET", "dev-secret-change-in-production"),
			Expiry: time.Duration(getEnvInt("SESSION_EXPIRY_HOURS", 168)) * time.Hour, // 7 days
			Secure: getEnv("APP_ENV", "development") == "production",
		},
		Admin: AdminConfig{
			Email:        getEnv("ADMIN_EMAIL", ""),
			Password:     getEnv("ADMIN_PASSWORD", ""),
			PasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
			Name:         getEnv("ADMIN_NAME", "Admin"),
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", "localhost:9000"),
			AccessKey: getEnv("MINIO_ACCESS_KEY", "minioadmin"),
			SecretKey: getEnv("MINIO_SECRET_KEY", "minioadmin"),
			Bucket:    getEnv("MINIO_BUCKET", "authorsite"),
			UseSSL:    getEnv("MINIO_USE_SSL", "false") == "true",
		},
		Upload: UploadConfig{
			MaxSize: int64(getEnvInt("UPLOAD_MAX_SIZE_MB", 5)) * 1024 * 1024,
			Prefix:  getEnv("UPLOAD_PREFIX", "uploads"),
		},
	}

	// Validate critical config
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks the config for deploy-breaking gaps.
func (c *Config) Validate() error {
	if c.App.Environment == "production" {
		if c.Session.Secret == "dev-secret-change-in-production" {
			return fmt.Errorf("SESSION_SECRET must be set in production")
		}
		if c.Admin.Email == "" {
			return fmt.Errorf("ADMIN_EMAIL must be set in production")
		}
		if c.Admin.Password == "" && c.Admin.PasswordHash == "" {
			return fmt.Errorf("ADMIN_PASSWORD or ADMIN_PASSWORD_HASH must be set in production")
		}
	}

	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
