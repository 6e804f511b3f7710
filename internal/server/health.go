package server

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/demoapi/upload-service/internal/response"
	"github.com/demoapi/upload-service/internal/storage"
)

const pingTimeout = 5 * time.Second

type healthHandler struct {
	store storage.Storage
	log   *zap.Logger
}

func newHealthHandler(store storage.Storage, log *zap.Logger) *healthHandler {
	return &healthHandler{store: store, log: log}
}

// ServeHTTP godoc
//
//	@Summary		Health check
//	@Description	Liveness by default. With ready=1 the storage bucket is pinged as well.
//	@Tags			health
//	@Produce		json
//	@Param			ready	query		string	false	"Set to 1 to check storage reachability"
//	@Success		200		{object}	response.Status
//	@Failure		503		{object}	response.Status
//	@Router			/health [get]
func (h *healthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("ready") == "" {
		response.OK(w, response.Status{Status: "ok"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		h.log.Warn("readiness check failed", zap.Error(err))
		response.ServiceUnavailable(w, response.Status{Status: "unavailable"})
		return
	}
	response.OK(w, response.Status{Status: "ok"})
}
