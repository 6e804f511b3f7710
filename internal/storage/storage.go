// Package storage defines the interface for object storage operations.
// Swap implementations by changing the concrete type injected at startup:
// S3Storage talks to AWS S3 with ambient credentials, MinioStorage to any
// S3-compatible endpoint with static keys, LocalStorage to a directory.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// DefaultContentType is stored when the upload did not declare one.
const DefaultContentType = "application/octet-stream"

// Storage is the interface for writing objects into the configured bucket.
type Storage interface {
	// Put writes body under key. size is the exact byte count, or -1 if unknown.
	Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) error
	// Ping reports whether the bucket is reachable.
	Ping(ctx context.Context) error
}

// Error is returned by every Storage implementation when the backend call fails.
type Error struct {
	Op     string
	Bucket string
	Key    string
	// Code is the backend's error code (e.g. NoSuchBucket, AccessDenied), empty if none.
	Code string
	Err  error
}

func (e *Error) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "storage %s bucket=%s", e.Op, e.Bucket)
	if e.Key != "" {
		fmt.Fprintf(&b, " key=%s", e.Key)
	}
	if e.Code != "" {
		fmt.Fprintf(&b, " code=%s", e.Code)
	}
	fmt.Fprintf(&b, ": %v", e.Err)
	return b.String()
}

func (e *Error) Unwrap() error { return e.Err }

// Timeout reports whether the call was cut off by its context.
func (e *Error) Timeout() bool {
	return errors.Is(e.Err, context.DeadlineExceeded)
}

// newError builds an *Error, folding in ctx.Err() when the backend reported
// the failure without it.
func newError(ctx context.Context, op, bucket, key, code string, err error) *Error {
	if ctxErr := ctx.Err(); ctxErr != nil && !errors.Is(err, ctxErr) {
		err = fmt.Errorf("%w: %w", ctxErr, err)
	}
	return &Error{Op: op, Bucket: bucket, Key: key, Code: code, Err: err}
}

func contentTypeOrDefault(ct string) string {
	if strings.TrimSpace(ct) == "" {
		return DefaultContentType
	}
	return ct
}
