package middleware

import (
	"github.com/google/uuid"
	"github.com/toyz/usermvc/pkg/axon"
)

const (
	// RequestIDHeader carries the request id in both directions
	RequestIDHeader = "X-Request-ID"
	// RequestIDKey is the context key holding the request id
	RequestIDKey = "request_id"
)

// RequestIDMiddleware propagates the caller's request id or assigns a new one
type RequestIDMiddleware struct{}

// Handle implements the middleware logic
func (m *RequestIDMiddleware) Handle(next axon.HandlerFunc) axon.HandlerFunc {
	return func(c axon.RequestContext) error {
		id := c.Request().Header(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		c.Set(RequestIDKey, id)
		c.Response().SetHeader(RequestIDHeader, id)
		return next(c)
	}
}
