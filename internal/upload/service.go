// Package upload stores files received over HTTP in object storage under
// freshly generated UUID keys.
package upload

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/demoapi/upload-service/internal/storage"
)

// File is a single uploaded payload.
type File struct {
	Body io.Reader
	// Size is the byte count, or -1 if unknown.
	Size        int64
	ContentType string
}

// Service writes uploads to the injected Storage.
type Service struct {
	store   storage.Storage
	timeout time.Duration
	newKey  func() (uuid.UUID, error)
}

// NewService creates a new upload Service. timeout bounds each storage call.
func NewService(store storage.Storage, timeout time.Duration) *Service {
	return &Service{
		store:   store,
		timeout: timeout,
		newKey:  uuid.NewRandom,
	}
}

// Upload stores f under a new random key and returns the key.
func (s *Service) Upload(ctx context.Context, f File) (string, error) {
	id, err := s.newKey()
	if err != nil {
		return "", fmt.Errorf("generate key: %w", err)
	}
	key := id.String()

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.store.Put(ctx, key, f.Body, f.Size, f.ContentType); err != nil {
		return "", fmt.Errorf("store object: %w", err)
	}
	return key, nil
}
