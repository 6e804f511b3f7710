// Package config loads application configuration from environment variables.
package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Storage drivers understood by the server bootstrap.
const (
	DriverS3    = "s3"
	DriverMinio = "minio"
	DriverLocal = "local"
)

// ErrMissingBucket is returned by Validate when BUCKET is not set.
var ErrMissingBucket = errors.New("BUCKET environment variable not set")

// Config holds all runtime configuration for the service.
type Config struct {
	Port     string
	AppEnv   string
	LogLevel string

	// Bucket is the only required setting; every upload lands here.
	Bucket        string
	StorageDriver string

	// AWS S3. Credentials and region come from the ambient AWS environment.
	AWSRegion      string
	S3Endpoint     string
	S3UsePathStyle bool

	// MinIO (or any S3-compatible endpoint with static keys)
	StorageEndpoint     string
	StorageAccessKey    string
	StorageSecretKey    string
	StorageUseSSL       bool
	StorageCreateBucket bool

	LocalStoreDir string

	UploadTimeout   time.Duration
	MultipartMemory int64

	CORSAllowedOrigins []string
}

// Load reads configuration from a .env file (if present) and environment variables.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, reading from environment")
	}

	return &Config{
		Port:     getEnv("PORT", "8080"),
		AppEnv:   getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		Bucket:        strings.TrimSpace(os.Getenv("BUCKET")),
		StorageDriver: strings.ToLower(getEnv("STORAGE_DRIVER", DriverS3)),

		AWSRegion:      getEnv("AWS_REGION", ""),
		S3Endpoint:     getEnv("AWS_ENDPOINT_URL_S3", ""),
		S3UsePathStyle: getBool("AWS_S3_FORCE_PATH_STYLE", false),

		StorageEndpoint:     getEnv("STORAGE_ENDPOINT", "localhost:9000"),
		StorageAccessKey:    getEnv("STORAGE_ACCESS_KEY", "minioadmin"),
		StorageSecretKey:    getEnv("STORAGE_SECRET_KEY", "minioadmin"),
		StorageUseSSL:       getBool("STORAGE_USE_SSL", false),
		StorageCreateBucket: getBool("STORAGE_CREATE_BUCKET", false),

		LocalStoreDir: getEnv("LOCAL_STORE_DIR", "./data"),

		UploadTimeout:   getDuration("UPLOAD_TIMEOUT", 30*time.Second),
		MultipartMemory: getInt64("MULTIPART_MEMORY", 32<<20),

		CORSAllowedOrigins: splitAndTrim(getEnv("CORS_ALLOWED_ORIGINS", "*")),
	}
}

// Validate reports settings the service cannot start without.
func (c *Config) Validate() error {
	if c.Bucket == "" {
		return ErrMissingBucket
	}
	switch c.StorageDriver {
	case DriverS3, DriverMinio, DriverLocal:
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", c.StorageDriver)
	}
	if c.UploadTimeout <= 0 {
		return fmt.Errorf("UPLOAD_TIMEOUT must be positive, got %s", c.UploadTimeout)
	}
	if c.MultipartMemory <= 0 {
		return fmt.Errorf("MULTIPART_MEMORY must be positive, got %d", c.MultipartMemory)
	}
	return nil
}

// IsProduction returns true when the app is running in production mode.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func getInt64(key string, fallback int64) int64 {
	v, err := strconv.ParseInt(os.Getenv(key), 10, 64)
	if err != nil {
		return fallback
	}
	return v
}

func splitAndTrim(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
