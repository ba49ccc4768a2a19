package handlers

import (
	stderrors "errors"
	"log/slog"
	"strings"

	"frugalfolio/internal/dto"
	"frugalfolio/internal/errors"
	"frugalfolio/internal/models"
	"frugalfolio/internal/services"

	"github.com/labstack/echo/v4"
)

// ReportMeta tells clients whether a report came back degraded.
type ReportMeta struct {
	Partial        bool     `json:"partial"`
	FailedSections []string `json:"failed_sections,omitempty"`
}

// AnalyticsHandler serves the dashboard, statistics and item price reports.
type AnalyticsHandler struct {
	analyticsService services.AnalyticsServiceInterface
	metrics          services.MetricsRecorderInterface
}

func NewAnalyticsHandler(analyticsService services.AnalyticsServiceInterface, metrics services.MetricsRecorderInterface) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analyticsService,
		metrics:          metrics,
	}
}

// Dashboard returns the spending dashboard for the resolved scope.
//
// GET /api/v1/analytics/dashboard?anchorDate=YYYY-MM-DD&userId=
//
// The report is always 200. Sections that could not be computed are listed
// in meta.failed_sections and carry an error status of their own.
func (h *AnalyticsHandler) Dashboard(c echo.Context) error {
	req, err := h.reportRequest(c)
	if req == nil {
		return err
	}

	report := h.analyticsService.BuildDashboard(c.Request().Context(), *req)
	h.metrics.IncrementCounter("api.served", map[string]string{"endpoint": "dashboard"})
	return SendSuccess(c, report, reportMeta(report.Failures))
}

// Statistics returns the detailed statistics report for the resolved scope.
//
// GET /api/v1/analytics/statistics?anchorDate=YYYY-MM-DD&userId=
func (h *AnalyticsHandler) Statistics(c echo.Context) error {
	req, err := h.reportRequest(c)
	if req == nil {
		return err
	}

	report := h.analyticsService.BuildStatistics(c.Request().Context(), *req)
	h.metrics.IncrementCounter("api.served", map[string]string{"endpoint": "statistics"})
	return SendSuccess(c, report, reportMeta(report.Failures))
}

// ItemPriceInsight returns the latest and previous unit price of one item.
//
// GET /api/v1/items/price-insight?itemName=&userId=
func (h *AnalyticsHandler) ItemPriceInsight(c echo.Context) error {
	scope, err := getScopeFromContext(c)
	if err != nil {
		return sendScopeError(c, err)
	}

	var query dto.ItemInsightQuery
	if err := c.Bind(&query); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid query parameters"))
	}
	if err := c.Validate(query); err != nil {
		return SendValidationError(c, err)
	}

	insight, err := h.analyticsService.ItemPriceInsight(c.Request().Context(), scope, query.ItemName)
	if err != nil {
		switch {
		case stderrors.Is(err, models.ErrItemNameRequired):
			return SendError(c, errors.ValidationRequiredField, errors.WithDetails("itemName: is required"))
		case stderrors.Is(err, models.ErrInvalidScope):
			return SendError(c, errors.AnalyticsInvalidScope)
		}
		slog.Error("item price insight failed",
			"trace_id", getTraceID(c),
			"scope", scope.String(),
			"item", query.ItemName,
			"error", err,
		)
		h.metrics.IncrementCounter("api.failed", map[string]string{"endpoint": "item_price_insight"})
		return SendError(c, errors.AnalyticsInsightUnavailable)
	}

	h.metrics.IncrementCounter("api.served", map[string]string{"endpoint": "item_price_insight"})
	return SendSuccess(c, insight, nil)
}

// reportRequest returns a nil request once it has written an error response.
func (h *AnalyticsHandler) reportRequest(c echo.Context) (*services.ReportRequest, error) {
	scope, err := getScopeFromContext(c)
	if err != nil {
		return nil, sendScopeError(c, err)
	}

	var query dto.ReportQuery
	if err := c.Bind(&query); err != nil {
		return nil, SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid query parameters"))
	}
	if err := c.Validate(query); err != nil {
		return nil, SendValidationError(c, err)
	}

	return &services.ReportRequest{
		Scope:      scope,
		AnchorDate: strings.TrimSpace(query.AnchorDate),
	}, nil
}

func reportMeta(failures []models.SectionFailure) ReportMeta {
	meta := ReportMeta{Partial: len(failures) > 0}
	for _, failure := range failures {
		meta.FailedSections = append(meta.FailedSections, failure.Section)
	}
	return meta
}

func sendScopeError(c echo.Context, err error) error {
	if stderrors.Is(err, models.ErrInvalidScope) {
		return SendError(c, errors.AnalyticsInvalidScope)
	}
	return SendError(c, errors.AuthMissingToken)
}
