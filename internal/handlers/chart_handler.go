package handlers

import (
	"context"
	stderrors "errors"
	"log/slog"

	"frugalfolio/internal/errors"
	"frugalfolio/internal/models"
	"frugalfolio/internal/services"

	"github.com/labstack/echo/v4"
)

// ChartHandler serves the dashboard chart series.
type ChartHandler struct {
	chartService services.ChartServiceInterface
	metrics      services.MetricsRecorderInterface
}

func NewChartHandler(chartService services.ChartServiceInterface, metrics services.MetricsRecorderInterface) *ChartHandler {
	return &ChartHandler{
		chartService: chartService,
		metrics:      metrics,
	}
}

// MonthlyTrend handles GET /api/v1/analytics/charts/monthly.
func (h *ChartHandler) MonthlyTrend(c echo.Context) error {
	return h.serveTrend(c, models.ChartMonthly, h.chartService.MonthlyTrend)
}

// WeeklyTrend handles GET /api/v1/analytics/charts/weekly.
func (h *ChartHandler) WeeklyTrend(c echo.Context) error {
	return h.serveTrend(c, models.ChartWeekly, h.chartService.WeeklyTrend)
}

// ThreeMonthWeeklyTrend handles GET /api/v1/analytics/charts/weekly-3-months.
func (h *ChartHandler) ThreeMonthWeeklyTrend(c echo.Context) error {
	return h.serveTrend(c, models.ChartWeeklyThreeMonth, h.chartService.ThreeMonthWeeklyTrend)
}

// CategoryMonthComparison handles GET /api/v1/analytics/charts/category-months.
func (h *ChartHandler) CategoryMonthComparison(c echo.Context) error {
	scope, err := getScopeFromContext(c)
	if err != nil {
		return sendScopeError(c, err)
	}

	chart, err := h.chartService.CategoryMonthComparison(c.Request().Context(), scope)
	if err != nil {
		return h.sendChartError(c, models.ChartCategoryMonths, scope, err)
	}
	h.metrics.IncrementCounter("api.served", map[string]string{"endpoint": "chart_" + string(models.ChartCategoryMonths)})
	return SendSuccess(c, chart, nil)
}

func (h *ChartHandler) serveTrend(c echo.Context, kind models.ChartKind, build func(context.Context, models.Scope) (*models.TrendChart, error)) error {
	scope, err := getScopeFromContext(c)
	if err != nil {
		return sendScopeError(c, err)
	}

	chart, err := build(c.Request().Context(), scope)
	if err != nil {
		return h.sendChartError(c, kind, scope, err)
	}
	h.metrics.IncrementCounter("api.served", map[string]string{"endpoint": "chart_" + string(kind)})
	return SendSuccess(c, chart, nil)
}

func (h *ChartHandler) sendChartError(c echo.Context, kind models.ChartKind, scope models.Scope, err error) error {
	if stderrors.Is(err, models.ErrInvalidScope) {
		return SendError(c, errors.AnalyticsInvalidScope)
	}

	slog.Error("chart build failed",
		"trace_id", getTraceID(c),
		"chart", string(kind),
		"scope", scope.String(),
		"error", err,
	)
	h.metrics.IncrementCounter("api.failed", map[string]string{"endpoint": "chart_" + string(kind)})

	if stderrors.Is(err, services.ErrCircuitBreakerOpen) {
		return SendError(c, errors.AnalyticsStoreUnavailable)
	}
	return SendError(c, errors.AnalyticsChartUnavailable)
}
