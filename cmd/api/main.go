//	@title			Upload API
//	@version		1.0
//	@description	Stores uploaded files in object storage under random UUID keys.
//
//	@host		localhost:8080
//	@BasePath	/

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/demoapi/upload-service/internal/config"
	"github.com/demoapi/upload-service/internal/logger"
	"github.com/demoapi/upload-service/internal/server"
)

func main() {
	cfg := config.Load()

	log := logger.New(cfg.LogLevel, cfg.AppEnv)
	defer log.Sync() //nolint:errcheck

	if err := cfg.Validate(); err != nil {
		log.Fatal("invalid configuration", zap.Error(err))
	}

	initCtx, cancelInit := context.WithTimeout(context.Background(), 30*time.Second)
	store, err := server.NewStorage(initCtx, cfg, log)
	cancelInit()
	if err != nil {
		log.Fatal("object storage init failed", zap.Error(err))
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      server.NewRouter(cfg, store, log),
		ReadTimeout:  60 * time.Second,
		WriteTimeout: cfg.UploadTimeout + 30*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine; wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Info("server listening",
			zap.String("addr", srv.Addr),
			zap.String("env", cfg.AppEnv),
			zap.String("driver", cfg.StorageDriver),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit
	log.Info("shutting down gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("forced shutdown", zap.Error(err))
	}

	log.Info("server stopped")
}
