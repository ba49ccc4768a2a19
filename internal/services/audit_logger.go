package services

import (
	"context"
	"log/slog"
	"time"

	"frugalfolio/internal/models"

	"github.com/google/uuid"
)

// AuditLogger records who looked at whose purchases. Only reads that cross
// a user boundary are logged.
type AuditLogger struct {
	logger *slog.Logger
}

func NewAuditLogger(logger *slog.Logger) AuditLoggerInterface {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuditLogger{
		logger: logger,
	}
}

func (al *AuditLogger) LogScopeAccess(ctx context.Context, traceID string, callerID uuid.UUID, scope models.Scope, path string) {
	al.logger.InfoContext(ctx, "cross-user report access",
		slog.String("event_type", "scope_access"),
		slog.String("caller_id", callerID.String()),
		slog.String("scope", scope.String()),
		slog.String("path", path),
		slog.Time("timestamp", time.Now()),
		slog.String("trace_id", traceID),
	)
}

func (al *AuditLogger) LogScopeDenied(ctx context.Context, traceID string, callerID, requestedID uuid.UUID, path string) {
	al.logger.WarnContext(ctx, "cross-user report access denied",
		slog.String("event_type", "scope_denied"),
		slog.String("caller_id", callerID.String()),
		slog.String("requested_user_id", requestedID.String()),
		slog.String("path", path),
		slog.Time("timestamp", time.Now()),
		slog.String("trace_id", traceID),
	)
}
