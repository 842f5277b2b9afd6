package relational

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
	"time"

	"deliwer/config"
	deliverycontext "deliwer/internal/delivery/context"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newCapturingLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func decodeRecords(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var records []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var record map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &record))
		records = append(records, record)
	}

	return records
}

func TestQueryLogger_Trace(t *testing.T) {
	insert := func() (string, int64) { return "INSERT INTO affiliates (email) VALUES ('a@example.com')", 0 }

	tests := []struct {
		name      string
		debug     bool
		elapsed   time.Duration
		err       error
		wantLevel string
		wantMsg   string
	}{
		{name: "missing row is silent", err: gorm.ErrRecordNotFound},
		{name: "fast statement is silent", elapsed: time.Millisecond},
		{name: "duplicate key is a warning", err: gorm.ErrDuplicatedKey, wantLevel: "WARN", wantMsg: "Database constraint rejected write"},
		{name: "driver failure is an error", err: errors.New("connection reset"), wantLevel: "ERROR", wantMsg: "Database statement failed"},
		{name: "slow statement", elapsed: time.Second, wantLevel: "WARN", wantMsg: "Database slow statement"},
		{name: "debug logs every statement", debug: true, elapsed: time.Millisecond, wantLevel: "DEBUG", wantMsg: "Database statement"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			cfg := &config.Config{}
			cfg.Env.Debug = tt.debug
			cfg.Storage.Backend = config.BackendSQLite
			ql := newGormSlogLogger(newCapturingLogger(&buf), cfg)

			ql.Trace(context.Background(), time.Now().Add(-tt.elapsed), insert, tt.err)

			records := decodeRecords(t, &buf)
			if tt.wantMsg == "" {
				assert.Empty(t, records)

				return
			}
			require.Len(t, records, 1)
			assert.Equal(t, tt.wantLevel, records[0]["level"])
			assert.Equal(t, tt.wantMsg, records[0]["msg"])
			assert.Equal(t, "INSERT", records[0]["op"])
			assert.Equal(t, config.BackendSQLite, records[0]["backend"])
		})
	}
}

func TestQueryLogger_UsesRequestLogger(t *testing.T) {
	var base, scoped bytes.Buffer
	ql := newGormSlogLogger(newCapturingLogger(&base), &config.Config{})

	ctx, _ := deliverycontext.WithRequestScope(context.Background(), "req-42", newCapturingLogger(&scoped))
	ql.Trace(ctx, time.Now(), func() (string, int64) { return "UPDATE users SET hero_points = 1", 1 }, errors.New("boom"))

	assert.Empty(t, base.String())
	records := decodeRecords(t, &scoped)
	require.Len(t, records, 1)
	assert.Equal(t, "req-42", records[0]["request_id"])
	assert.Equal(t, "UPDATE", records[0]["op"])
}

func TestQueryLogger_TruncatesLongStatements(t *testing.T) {
	var buf bytes.Buffer
	ql := newGormSlogLogger(newCapturingLogger(&buf), &config.Config{})

	long := "SELECT " + strings.Repeat("x", 2*maxLoggedSQL)
	ql.Trace(context.Background(), time.Now(), func() (string, int64) { return long, 0 }, errors.New("boom"))

	records := decodeRecords(t, &buf)
	require.Len(t, records, 1)
	sql, ok := records[0]["sql"].(string)
	require.True(t, ok)
	assert.Len(t, sql, maxLoggedSQL+3)
}
