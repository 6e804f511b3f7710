package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/demoapi/upload-service/internal/config"
	"github.com/demoapi/upload-service/internal/storage"
)

type downStore struct{}

func (downStore) Put(ctx context.Context, key string, _ io.Reader, _ int64, _ string) error {
	return &storage.Error{Op: "put", Bucket: "gone", Key: key, Err: errors.New("dial tcp: connection refused")}
}

func (downStore) Ping(ctx context.Context) error {
	return &storage.Error{Op: "ping", Bucket: "gone", Err: errors.New("dial tcp: connection refused")}
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Bucket:             "demo-api-bucket",
		StorageDriver:      config.DriverLocal,
		LocalStoreDir:      t.TempDir(),
		UploadTimeout:      5 * time.Second,
		MultipartMemory:    32 << 20,
		CORSAllowedOrigins: []string{"*"},
	}
}

func newLocalRouter(t *testing.T) (http.Handler, *config.Config) {
	t.Helper()
	cfg := testConfig(t)
	store, err := NewStorage(context.Background(), cfg, zap.NewNop())
	if err != nil {
		t.Fatalf("NewStorage: %v", err)
	}
	return NewRouter(cfg, store, zap.NewNop()), cfg
}

func uploadRequest(t *testing.T, content []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "hello.txt")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := fw.Write(content); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestRouterUploadStoresObject(t *testing.T) {
	t.Parallel()

	router, cfg := newLocalRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, uploadRequest(t, []byte("hello")))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	id, err := uuid.Parse(body["key"])
	if err != nil || id.Version() != 4 {
		t.Fatalf("key %q is not a UUID v4", body["key"])
	}

	got, err := os.ReadFile(filepath.Join(cfg.LocalStoreDir, cfg.Bucket, body["key"]))
	if err != nil {
		t.Fatalf("read stored object: %v", err)
	}
	if string(got) != "hello" {
		t.Fatalf("stored content = %q, want hello", got)
	}
	if rec.Header().Get("Content-Type") != "application/json" {
		t.Fatalf("Content-Type = %q", rec.Header().Get("Content-Type"))
	}
}

func TestRouterUploadMissingFile(t *testing.T) {
	t.Parallel()

	router, _ := newLocalRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/upload", nil))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != `{"message":"No file to upload"}` {
		t.Fatalf("body = %s", got)
	}
}

func TestRouterUploadStorageDown(t *testing.T) {
	t.Parallel()

	router := NewRouter(testConfig(t), downStore{}, zap.NewNop())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, uploadRequest(t, []byte("hello")))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != `{"message":"File upload failed"}` {
		t.Fatalf("body = %s", got)
	}
}

func TestRouterUploadRejectsGet(t *testing.T) {
	t.Parallel()

	router, _ := newLocalRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/upload", nil))

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rec.Code)
	}
}

func TestRouterHealth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		store  func(t *testing.T) storage.Storage
		target string
		want   int
		status string
	}{
		{
			name:   "liveness ignores storage",
			store:  func(t *testing.T) storage.Storage { return downStore{} },
			target: "/health",
			want:   http.StatusOK,
			status: "ok",
		},
		{
			name:   "readiness with storage down",
			store:  func(t *testing.T) storage.Storage { return downStore{} },
			target: "/health?ready=1",
			want:   http.StatusServiceUnavailable,
			status: "unavailable",
		},
		{
			name: "readiness with storage up",
			store: func(t *testing.T) storage.Storage {
				s, err := storage.NewLocalStorage(t.TempDir(), "b")
				if err != nil {
					t.Fatalf("NewLocalStorage: %v", err)
				}
				return s
			},
			target: "/health?ready=1",
			want:   http.StatusOK,
			status: "ok",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			router := NewRouter(testConfig(t), tt.store(t), zap.NewNop())
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.target, nil))

			if rec.Code != tt.want {
				t.Fatalf("status = %d, want %d", rec.Code, tt.want)
			}
			var body map[string]string
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if body["status"] != tt.status {
				t.Fatalf("status field = %q, want %q", body["status"], tt.status)
			}
		})
	}
}

func TestRouterServesSwaggerDoc(t *testing.T) {
	t.Parallel()

	router, _ := newLocalRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"/upload"`) {
		t.Fatalf("swagger doc does not describe /upload")
	}
}

func TestNewStorageUnknownDriver(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	cfg.StorageDriver = "gcs"

	store, err := NewStorage(context.Background(), cfg, zap.NewNop())
	if err == nil || store != nil {
		t.Fatalf("NewStorage = %v, %v; want nil, error", store, err)
	}
}
