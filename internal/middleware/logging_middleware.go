package middleware

import (
	"time"

	"github.com/toyz/usermvc/internal/logging"
	"github.com/toyz/usermvc/pkg/axon"
)

// LoggingMiddleware logs every request once it has been handled
type LoggingMiddleware struct {
	logger *logging.AppLogger
}

// NewLoggingMiddleware creates a LoggingMiddleware
func NewLoggingMiddleware(logger *logging.AppLogger) *LoggingMiddleware {
	return &LoggingMiddleware{logger: logger}
}

// Handle implements the middleware logic for request logging
func (m *LoggingMiddleware) Handle(next axon.HandlerFunc) axon.HandlerFunc {
	return func(c axon.RequestContext) error {
		start := time.Now()

		err := next(c)

		args := []any{
			"method", c.Method(),
			"path", c.Path(),
			"status", c.Response().Status(),
			"duration", time.Since(start),
			"ip", c.RealIP(),
		}
		if id, ok := c.Get(RequestIDKey).(string); ok {
			args = append(args, "request_id", id)
		}
		if err != nil {
			m.logger.Error("request failed", append(args, "error", err)...)
			return err
		}
		m.logger.Info("request", args...)
		return nil
	}
}
