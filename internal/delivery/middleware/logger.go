package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"deliwer/config"
	deliverycontext "deliwer/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// LoggerMiddleware logs finished requests. Every request is logged in debug
// mode; otherwise only server errors are.
type LoggerMiddleware struct {
	logger    *slog.Logger
	debug     bool
	skipPaths map[string]struct{}
}

// NewLoggerMiddleware creates a new logger middleware
func NewLoggerMiddleware(logger *slog.Logger, config *config.Config) *LoggerMiddleware {
	skip := map[string]struct{}{"/health": {}}
	if config.Metrics != nil && config.Metrics.Path != "" {
		skip[config.Metrics.Path] = struct{}{}
	}

	return &LoggerMiddleware{
		logger:    logger,
		debug:     config.Env.Debug,
		skipPaths: skip,
	}
}

// Handle processes request logging
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, ok := m.skipPaths[c.Request().URL.Path]; ok {
			return next(c)
		}

		start := time.Now()
		err := next(c)

		status := c.Response().Status
		if err != nil {
			// The central error handler has not written the response yet
			if he, ok := err.(*echo.HTTPError); ok {
				status = he.Code
			} else if !c.Response().Committed {
				status = http.StatusInternalServerError
			}
		}

		if m.debug || status >= http.StatusInternalServerError {
			m.logRequest(c, start, status, err)
		}

		return err
	}
}

// logRequest logs request details
func (m *LoggerMiddleware) logRequest(c echo.Context, start time.Time, status int, err error) {
	req := c.Request()

	fields := []slog.Attr{
		slog.String("method", req.Method),
		slog.String("uri", req.URL.Path),
		slog.String("route", c.Path()),
		slog.Int("status", status),
		slog.Duration("latency", time.Since(start)),
		slog.Int64("bytes_out", c.Response().Size),
		slog.String("remote_ip", c.RealIP()),
		slog.String("user_agent", req.UserAgent()),
	}

	if len(req.URL.RawQuery) > 0 {
		fields = append(fields, slog.String("query", req.URL.RawQuery))
	}

	if err != nil {
		fields = append(fields, slog.Any("error", err))
	}

	logLevel := slog.LevelInfo
	if status >= http.StatusBadRequest {
		logLevel = slog.LevelWarn
	}
	if status >= http.StatusInternalServerError {
		logLevel = slog.LevelError
	}

	// The request-scoped logger already carries request_id
	logger := deliverycontext.GetLoggerOrDefault(req.Context(), m.logger)
	logger.LogAttrs(req.Context(), logLevel, "HTTP Request", fields...)
}
