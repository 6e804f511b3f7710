package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LocalStorage implements Storage on the local filesystem. Objects live at
// <root>/<bucket>/<key>.
type LocalStorage struct {
	root   string
	bucket string
}

// NewLocalStorage creates the bucket directory under root if needed.
func NewLocalStorage(root, bucket string) (*LocalStorage, error) {
	if bucket == "" {
		return nil, errors.New("local bucket is required")
	}
	if strings.ContainsAny(bucket, `/\`) || bucket == "." || bucket == ".." {
		return nil, fmt.Errorf("invalid bucket name %q", bucket)
	}
	dir := filepath.Join(root, bucket)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return &LocalStorage{root: root, bucket: bucket}, nil
}

// Put writes body to a temp file and renames it into place, so a failed
// write never leaves a partial object behind.
func (s *LocalStorage) Put(ctx context.Context, key string, body io.Reader, _ int64, _ string) error {
	if err := ctx.Err(); err != nil {
		return newError(ctx, "put", s.bucket, key, "", err)
	}

	fullPath, err := s.objectPath(key)
	if err != nil {
		return newError(ctx, "put", s.bucket, key, "InvalidKey", err)
	}
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return newError(ctx, "put", s.bucket, key, "", fmt.Errorf("mkdir: %w", err))
	}

	tmp, err := os.CreateTemp(filepath.Dir(fullPath), ".upload-*")
	if err != nil {
		return newError(ctx, "put", s.bucket, key, "", fmt.Errorf("create temp: %w", err))
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck

	if _, err := io.Copy(tmp, body); err != nil {
		tmp.Close()
		return newError(ctx, "put", s.bucket, key, "", fmt.Errorf("write body: %w", err))
	}
	if err := tmp.Close(); err != nil {
		return newError(ctx, "put", s.bucket, key, "", fmt.Errorf("close temp: %w", err))
	}
	if err := ctx.Err(); err != nil {
		return newError(ctx, "put", s.bucket, key, "", err)
	}
	if err := os.Rename(tmp.Name(), fullPath); err != nil {
		return newError(ctx, "put", s.bucket, key, "", fmt.Errorf("rename: %w", err))
	}
	return nil
}

// Ping checks the bucket directory is still there.
func (s *LocalStorage) Ping(ctx context.Context) error {
	info, err := os.Stat(filepath.Join(s.root, s.bucket))
	if err != nil {
		return newError(ctx, "ping", s.bucket, "", "NoSuchBucket", err)
	}
	if !info.IsDir() {
		return newError(ctx, "ping", s.bucket, "", "NoSuchBucket", errors.New("bucket path is not a directory"))
	}
	return nil
}

func (s *LocalStorage) objectPath(key string) (string, error) {
	clean := filepath.Clean(key)
	if key == "" || clean == "." || strings.HasPrefix(clean, "..") || filepath.IsAbs(clean) {
		return "", fmt.Errorf("invalid storage key %q", key)
	}
	return filepath.Join(s.root, s.bucket, clean), nil
}

var _ Storage = (*LocalStorage)(nil)
