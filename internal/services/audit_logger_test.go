package services

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"frugalfolio/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeAuditLine(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestAuditLogger_LogScopeAccess(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewAuditLogger(slog.New(slog.NewJSONHandler(buf, nil)))
	caller := uuid.New()

	logger.LogScopeAccess(context.Background(), "trace-1", caller, models.AllUsersScope(), "/api/v1/analytics/dashboard")

	entry := decodeAuditLine(t, buf)
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "scope_access", entry["event_type"])
	assert.Equal(t, caller.String(), entry["caller_id"])
	assert.Equal(t, "all", entry["scope"])
	assert.Equal(t, "trace-1", entry["trace_id"])
}

func TestAuditLogger_LogScopeDenied(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewAuditLogger(slog.New(slog.NewJSONHandler(buf, nil)))
	caller, requested := uuid.New(), uuid.New()

	logger.LogScopeDenied(context.Background(), "trace-2", caller, requested, "/api/v1/items/price-insight")

	entry := decodeAuditLine(t, buf)
	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, "scope_denied", entry["event_type"])
	assert.Equal(t, requested.String(), entry["requested_user_id"])
	assert.Equal(t, "/api/v1/items/price-insight", entry["path"])
}

func TestNewAuditLogger_NilFallsBackToDefault(t *testing.T) {
	assert.NotNil(t, NewAuditLogger(nil))
}
