package middleware

import (
	"github.com/toyz/usermvc/internal/logging"
	"github.com/toyz/usermvc/pkg/axon"
)

// Names under which the middlewares are registered
const (
	RequestID = "RequestID"
	Logging   = "Logging"
)

// Global lists the middlewares installed on every route, outermost first
var Global = []string{RequestID, Logging}

// Register adds the application middlewares to registry
func Register(registry axon.MiddlewareRegistry, logger *logging.AppLogger) {
	requestID := &RequestIDMiddleware{}
	registry.RegisterMiddleware(RequestID, requestID.Handle, requestID)

	logs := NewLoggingMiddleware(logger)
	registry.RegisterMiddleware(Logging, logs.Handle, logs)
}
