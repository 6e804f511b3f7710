package response

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestMessageOmitsEmptyKey(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	BadRequest(rec, "No file to upload")

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("Content-Type = %q", ct)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != `{"message":"No file to upload"}` {
		t.Fatalf("body = %s", got)
	}
}

func TestOKWithKey(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	OK(rec, Body{Message: "File upload successful", Key: "k"})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != `{"message":"File upload successful","key":"k"}` {
		t.Fatalf("body = %s", got)
	}
}
