package config

import (
	"errors"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("BUCKET", "uploads")
	t.Setenv("STORAGE_DRIVER", "")
	t.Setenv("UPLOAD_TIMEOUT", "")
	t.Setenv("MULTIPART_MEMORY", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")

	cfg := Load()

	if cfg.Bucket != "uploads" {
		t.Fatalf("Bucket = %q, want uploads", cfg.Bucket)
	}
	if cfg.StorageDriver != DriverS3 {
		t.Fatalf("StorageDriver = %q, want %q", cfg.StorageDriver, DriverS3)
	}
	if cfg.UploadTimeout != 30*time.Second {
		t.Fatalf("UploadTimeout = %s, want 30s", cfg.UploadTimeout)
	}
	if cfg.MultipartMemory != 32<<20 {
		t.Fatalf("MultipartMemory = %d, want %d", cfg.MultipartMemory, 32<<20)
	}
	if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
		t.Fatalf("CORSAllowedOrigins = %v, want [*]", cfg.CORSAllowedOrigins)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("BUCKET", " demo-api-bucket ")
	t.Setenv("STORAGE_DRIVER", "MINIO")
	t.Setenv("STORAGE_USE_SSL", "true")
	t.Setenv("UPLOAD_TIMEOUT", "5s")
	t.Setenv("MULTIPART_MEMORY", "1024")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, ,http://b.test")

	cfg := Load()

	if cfg.Bucket != "demo-api-bucket" {
		t.Fatalf("Bucket = %q", cfg.Bucket)
	}
	if cfg.StorageDriver != DriverMinio {
		t.Fatalf("StorageDriver = %q", cfg.StorageDriver)
	}
	if !cfg.StorageUseSSL {
		t.Fatalf("StorageUseSSL = false, want true")
	}
	if cfg.UploadTimeout != 5*time.Second {
		t.Fatalf("UploadTimeout = %s", cfg.UploadTimeout)
	}
	if cfg.MultipartMemory != 1024 {
		t.Fatalf("MultipartMemory = %d", cfg.MultipartMemory)
	}
	if len(cfg.CORSAllowedOrigins) != 2 {
		t.Fatalf("CORSAllowedOrigins = %v", cfg.CORSAllowedOrigins)
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	valid := func() Config {
		return Config{
			Bucket:          "b",
			StorageDriver:   DriverLocal,
			UploadTimeout:   time.Second,
			MultipartMemory: 1,
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "missing bucket", mutate: func(c *Config) { c.Bucket = "" }, wantErr: true},
		{name: "unknown driver", mutate: func(c *Config) { c.StorageDriver = "gcs" }, wantErr: true},
		{name: "zero timeout", mutate: func(c *Config) { c.UploadTimeout = 0 }, wantErr: true},
		{name: "zero multipart memory", mutate: func(c *Config) { c.MultipartMemory = 0 }, wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateMissingBucketSentinel(t *testing.T) {
	t.Parallel()
	cfg := Config{StorageDriver: DriverS3, UploadTimeout: time.Second, MultipartMemory: 1}
	if err := cfg.Validate(); !errors.Is(err, ErrMissingBucket) {
		t.Fatalf("Validate() = %v, want ErrMissingBucket", err)
	}
}
