// Package middleware contains echo middleware shared by the API and worker
// servers.
package middleware

import (
	"log/slog"

	deliverycontext "deliwer/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// maxRequestIDLength bounds client supplied request IDs.
const maxRequestIDLength = 128

// RequestIDMiddleware extracts or generates the request ID and stores a
// request-scoped logger.
type RequestIDMiddleware struct {
	logger *slog.Logger
}

// NewRequestIDMiddleware creates a new Request ID middleware
func NewRequestIDMiddleware(logger *slog.Logger) *RequestIDMiddleware {
	return &RequestIDMiddleware{
		logger: logger,
	}
}

// Process handles the generation or extraction of the Request ID and creates a logger with requestID
func (m *RequestIDMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := c.Request().Header.Get(deliverycontext.HeaderXRequestID)
		if !validRequestID(requestID) {
			requestID = deliverycontext.NewRequestID()
		}

		deliverycontext.SetRequestID(c, requestID)
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

		ctx, _ := deliverycontext.WithRequestScope(c.Request().Context(), requestID, m.logger)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// validRequestID accepts short printable ASCII IDs so that client input
// cannot forge log lines.
func validRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLength {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] < 0x21 || id[i] > 0x7e {
			return false
		}
	}

	return true
}
