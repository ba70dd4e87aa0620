package postgres

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"devicestore/config"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newCapturedQueryLogger(debug bool) (logger.Interface, *bytes.Buffer) {
	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	return newQueryLogger(base, cfg), &buf
}

func decodeRecords(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var records []map[string]any
	dec := json.NewDecoder(buf)
	for dec.More() {
		var record map[string]any
		require.NoError(t, dec.Decode(&record))
		records = append(records, record)
	}

	return records
}

func sqlAndRows() (string, int64) {
	return `SELECT * FROM "device_documents" FOR UPDATE`, 1
}

func TestQueryLogger_Trace(t *testing.T) {
	tests := []struct {
		name      string
		debug     bool
		err       error
		wantLevel string
		wantMsg   string
	}{
		{
			name:      "retried conflict logs at debug",
			err:       errors.Wrap(gorm.ErrDuplicatedKey, "insert"),
			wantLevel: "DEBUG",
			wantMsg:   "Device document write conflict",
		},
		{
			name:      "other failures log as errors",
			err:       errors.New("connection refused"),
			wantLevel: "ERROR",
			wantMsg:   "Device document query failed",
		},
		{
			name:      "statements log in debug mode",
			debug:     true,
			wantLevel: "INFO",
			wantMsg:   "Device document query",
		},
		{
			name: "missing rows are not failures",
			err:  gorm.ErrRecordNotFound,
		},
		{
			name: "statements are quiet outside debug mode",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			queryLog, buf := newCapturedQueryLogger(tt.debug)

			queryLog.Trace(context.Background(), time.Now(), sqlAndRows, tt.err)

			records := decodeRecords(t, buf)
			if tt.wantMsg == "" {
				assert.Empty(t, records)

				return
			}

			require.Len(t, records, 1)
			assert.Equal(t, tt.wantLevel, records[0]["level"])
			assert.Equal(t, tt.wantMsg, records[0]["msg"])
			assert.Equal(t, "postgres", records[0]["store"])
		})
	}
}

func TestQueryLogger_SlowQuery(t *testing.T) {
	queryLog, buf := newCapturedQueryLogger(false)

	queryLog.Trace(context.Background(), time.Now().Add(-time.Second), sqlAndRows, nil)

	records := decodeRecords(t, buf)
	require.Len(t, records, 1)
	assert.Equal(t, "WARN", records[0]["level"])
	assert.Equal(t, "Slow device document query", records[0]["msg"])
}

func TestQueryLogger_SilentMode(t *testing.T) {
	queryLog, buf := newCapturedQueryLogger(true)

	queryLog.LogMode(logger.Silent).Trace(context.Background(), time.Now(), sqlAndRows, errors.New("boom"))

	assert.Empty(t, decodeRecords(t, buf))
}
