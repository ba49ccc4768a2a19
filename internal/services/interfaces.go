package services

import (
	"context"
	"time"

	"frugalfolio/internal/models"

	"github.com/google/uuid"
)

// CategoryGrouperInterface maps purchase categories onto display groups.
type CategoryGrouperInterface interface {
	GroupFor(category string) string
	DefaultGroup() string
	Categories(group string) []string
}

// AggregatorInterface computes scoped, period-bounded spend aggregates.
type AggregatorInterface interface {
	Aggregate(ctx context.Context, req AggregateRequest) (*ResultSet, error)
}

// PriceTrendDetectorInterface finds unit price increases across purchase history
type PriceTrendDetectorInterface interface {
	DetectIncreases(ctx context.Context, scope models.Scope, anchor models.Date, limit int) (models.PriceAlerts, error)
	TopIncreaseGroup(ctx context.Context, scope models.Scope, anchor models.Date) (models.TopIncreaseGroup, error)
	ItemPriceInsight(ctx context.Context, scope models.Scope, itemName string) (*models.ItemPriceInsight, error)
}

// AnalyticsServiceInterface builds the dashboard and statistics reports.
// Reports are always returned; failures are carried inside them.
type AnalyticsServiceInterface interface {
	BuildDashboard(ctx context.Context, req ReportRequest) *models.AnalyticsReport
	BuildStatistics(ctx context.Context, req ReportRequest) *models.StatisticsReport
	ItemPriceInsight(ctx context.Context, scope models.Scope, itemName string) (*models.ItemPriceInsight, error)
}

type ChartServiceInterface interface {
	MonthlyTrend(ctx context.Context, scope models.Scope) (*models.TrendChart, error)
	WeeklyTrend(ctx context.Context, scope models.Scope) (*models.TrendChart, error)
	ThreeMonthWeeklyTrend(ctx context.Context, scope models.Scope) (*models.TrendChart, error)
	CategoryMonthComparison(ctx context.Context, scope models.Scope) (*models.CategoryMonthChart, error)
}

// MetricsRecorderInterface defines the contract for recording metrics
type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

// CircuitBreakerInterface defines the contract for circuit breaker pattern
type CircuitBreakerInterface interface {
	IsOpen() bool
	RecordSuccess()
	RecordFailure()
	GetState() CircuitBreakerState
	Reset()
	GetFailureCount() int
}

// TokenServiceInterface defines JWT token operations
type TokenServiceInterface interface {
	GenerateAccessToken(user *models.User) (string, time.Time, error)
	ValidateAccessToken(tokenString string) (*models.CustomClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
}

// AuditLoggerInterface records reads that cross a user boundary.
type AuditLoggerInterface interface {
	LogScopeAccess(ctx context.Context, traceID string, callerID uuid.UUID, scope models.Scope, path string)
	LogScopeDenied(ctx context.Context, traceID string, callerID, requestedID uuid.UUID, path string)
}

// PurchaseGeneratorInterface produces realistic purchase histories for seeding.
type PurchaseGeneratorInterface interface {
	Generate(userID uuid.UUID, from, to models.Date) ([]models.Purchase, error)
}
