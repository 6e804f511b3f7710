package server

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/demoapi/upload-service/internal/config"
	"github.com/demoapi/upload-service/internal/storage"
)

// NewStorage constructs the Storage selected by cfg.StorageDriver.
func NewStorage(ctx context.Context, cfg *config.Config, log *zap.Logger) (storage.Storage, error) {
	var (
		store storage.Storage
		err   error
	)
	switch cfg.StorageDriver {
	case config.DriverS3:
		store, err = newS3(ctx, storage.S3Options{
			Bucket:       cfg.Bucket,
			Region:       cfg.AWSRegion,
			Endpoint:     cfg.S3Endpoint,
			UsePathStyle: cfg.S3UsePathStyle,
		})
	case config.DriverMinio:
		store, err = newMinio(ctx, storage.MinioOptions{
			Endpoint:     cfg.StorageEndpoint,
			AccessKey:    cfg.StorageAccessKey,
			SecretKey:    cfg.StorageSecretKey,
			Bucket:       cfg.Bucket,
			UseSSL:       cfg.StorageUseSSL,
			Region:       cfg.AWSRegion,
			CreateBucket: cfg.StorageCreateBucket,
		}, log)
	case config.DriverLocal:
		store, err = newLocal(cfg.LocalStoreDir, cfg.Bucket)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
	if err != nil {
		return nil, fmt.Errorf("init %s storage: %w", cfg.StorageDriver, err)
	}

	log.Info("storage ready",
		zap.String("driver", cfg.StorageDriver),
		zap.String("bucket", cfg.Bucket),
	)
	return store, nil
}

// A failed constructor must yield a nil Storage, not a typed nil.

func newS3(ctx context.Context, opts storage.S3Options) (storage.Storage, error) {
	s, err := storage.NewS3Storage(ctx, opts)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func newMinio(ctx context.Context, opts storage.MinioOptions, log *zap.Logger) (storage.Storage, error) {
	s, err := storage.NewMinioStorage(ctx, opts, log)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func newLocal(root, bucket string) (storage.Storage, error) {
	s, err := storage.NewLocalStorage(root, bucket)
	if err != nil {
		return nil, err
	}
	return s, nil
}
