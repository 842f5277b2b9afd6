package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"deliwer/config"
	deliverycontext "deliwer/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		wantSame bool
	}{
		{name: "keeps client id", header: "abc-123", wantSame: true},
		{name: "generates when missing", header: ""},
		{name: "replaces ids with spaces", header: "abc 123"},
		{name: "replaces oversized ids", header: strings.Repeat("a", maxRequestIDLength+1)},
	}

	m := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var ctxID string
			err := m.Process(func(c echo.Context) error {
				ctxID = deliverycontext.GetRequestIDFromContext(c.Request().Context())
				require.NotNil(t, deliverycontext.GetLogger(c.Request().Context()))

				return nil
			})(c)
			require.NoError(t, err)

			got := rec.Header().Get(deliverycontext.HeaderXRequestID)
			assert.Equal(t, got, ctxID)
			if tt.wantSame {
				assert.Equal(t, tt.header, got)
			} else {
				assert.NotEqual(t, tt.header, got)
				assert.NotEmpty(t, got)
			}
		})
	}
}

func TestLoggerMiddleware(t *testing.T) {
	tests := []struct {
		name    string
		debug   bool
		path    string
		status  int
		wantLog bool
	}{
		{name: "debug logs success", debug: true, path: "/api/leaderboard", status: http.StatusOK, wantLog: true},
		{name: "quiet skips success", debug: false, path: "/api/leaderboard", status: http.StatusOK},
		{name: "quiet logs server errors", debug: false, path: "/api/leaderboard", status: http.StatusInternalServerError, wantLog: true},
		{name: "health is never logged", debug: true, path: "/health", status: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			cfg := &config.Config{}
			cfg.Env.Debug = tt.debug
			m := NewLoggerMiddleware(slog.New(slog.NewTextHandler(&buf, nil)), cfg)

			e := echo.New()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, tt.path, nil), httptest.NewRecorder())

			err := m.Handle(func(c echo.Context) error {
				return c.NoContent(tt.status)
			})(c)
			require.NoError(t, err)

			if tt.wantLog {
				assert.Contains(t, buf.String(), "HTTP Request")
			} else {
				assert.Empty(t, buf.String())
			}
		})
	}
}
