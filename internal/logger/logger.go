// Package logger builds the zap logger shared by the server and its handlers.
package logger

import (
	"strings"

	"go.uber.org/zap"
)

// New returns a JSON production logger in production and a console logger
// elsewhere. Unknown levels fall back to info.
func New(level, appEnv string) *zap.Logger {
	cfg := zap.NewProductionConfig()
	if appEnv != "production" {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = parseLevel(level)

	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

func parseLevel(level string) zap.AtomicLevel {
	switch strings.ToLower(level) {
	case "debug":
		return zap.NewAtomicLevelAt(zap.DebugLevel)
	case "warn":
		return zap.NewAtomicLevelAt(zap.WarnLevel)
	case "error":
		return zap.NewAtomicLevelAt(zap.ErrorLevel)
	default:
		return zap.NewAtomicLevelAt(zap.InfoLevel)
	}
}
