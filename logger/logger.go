// Package logger provides structured logging via the Uber zap library
// and a gin middleware that logs every handled request.
package logger

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// New builds a production zap logger at the given level ("debug", "info", ...).
func New(level string) (*zap.SugaredLogger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parsing log level: %w", err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = lvl

	zl, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}

	return zl.Sugar(), nil
}

// RequestLogger logs method, URI, response status, body size and duration
// for every request that passes through the engine.
func RequestLogger(log *zap.SugaredLogger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()

		ctx.Next()

		log.Infow("request completed",
			"method", ctx.Request.Method,
			"uri", ctx.Request.RequestURI,
			"status", ctx.Writer.Status(),
			"size", ctx.Writer.Size(),
			"duration", time.Since(start),
		)
	}
}
