// Package server wires configuration, storage, and handlers into the HTTP router
// shared by the standalone server and the Lambda entry point.
package server

import (
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"

	"github.com/demoapi/upload-service/internal/config"
	appMiddleware "github.com/demoapi/upload-service/internal/middleware"
	"github.com/demoapi/upload-service/internal/storage"
	"github.com/demoapi/upload-service/internal/upload"

	_ "github.com/demoapi/upload-service/docs/swagger"
)

// NewRouter builds the chi router with all routes and middleware.
func NewRouter(cfg *config.Config, store storage.Storage, log *zap.Logger) *chi.Mux {
	// Wire dependencies: storage → service → handler
	uploadSvc := upload.NewService(store, cfg.UploadTimeout)
	uploadHandler := upload.NewHandler(uploadSvc, log, cfg.MultipartMemory)
	health := newHealthHandler(store, log)

	r := chi.NewRouter()
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(appMiddleware.Logger(log))
	r.Use(chiMiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))

	r.Get("/health", health.ServeHTTP)

	// Swagger UI at /swagger/index.html
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	r.Post("/upload", uploadHandler.Upload)

	return r
}
