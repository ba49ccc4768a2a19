package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"frugalfolio/internal/config"
	"frugalfolio/internal/models"
	"frugalfolio/internal/repositories"
)

const (
	reportDashboard  = "dashboard"
	reportStatistics = "statistics"

	msgStorageUnavailable = "Purchase data is temporarily unavailable. Please try again later."
)

var ErrInvalidAnchorDate = errors.New("anchor date must be formatted as YYYY-MM-DD")

// ReportRequest scopes one report. AnchorDate is optional; when set, the
// report is computed as of the latest purchase on or before that date.
type ReportRequest struct {
	Scope      models.Scope
	AnchorDate string
}

type analyticsService struct {
	repo       repositories.PurchaseRepositoryInterface
	aggregator AggregatorInterface
	detector   PriceTrendDetectorInterface
	metrics    MetricsRecorderInterface
	cfg        config.AnalyticsConfig
}

func NewAnalyticsService(
	repo repositories.PurchaseRepositoryInterface,
	aggregator AggregatorInterface,
	detector PriceTrendDetectorInterface,
	metrics MetricsRecorderInterface,
	cfg config.AnalyticsConfig,
) AnalyticsServiceInterface {
	return &analyticsService{
		repo:       repo,
		aggregator: aggregator,
		detector:   detector,
		metrics:    metrics,
		cfg:        cfg,
	}
}

// anchorOutcome is what anchor resolution decided about a request before any
// section is computed.
type anchorOutcome struct {
	anchor  models.Date
	status  string
	message string
	err     error
}

func (o anchorOutcome) resolved() bool {
	return o.status == ""
}

// resolveAnchor finds the latest purchase date in scope, bounded by the
// requested anchor date when one is given.
func (s *analyticsService) resolveAnchor(ctx context.Context, req ReportRequest) anchorOutcome {
	if err := req.Scope.Validate(); err != nil {
		return anchorOutcome{status: "invalid", message: err.Error(), err: err}
	}

	var before *models.Date
	if req.AnchorDate != "" {
		requested, err := models.ParseDate(req.AnchorDate)
		if err != nil {
			return anchorOutcome{
				status:  "invalid",
				message: fmt.Sprintf("Invalid anchor date %q: expected YYYY-MM-DD.", req.AnchorDate),
				err:     fmt.Errorf("%w: %v", ErrInvalidAnchorDate, err),
			}
		}
		next := requested.AddDays(1)
		before = &next
	}

	latest, err := s.repo.LatestPurchaseDate(ctx, req.Scope, before)
	if err != nil {
		return anchorOutcome{status: "unavailable", message: msgStorageUnavailable, err: err}
	}
	if latest == nil {
		return anchorOutcome{status: "no_history"}
	}

	return anchorOutcome{anchor: *latest}
}

func (s *analyticsService) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.cfg.ReportTimeout > 0 {
		return context.WithTimeout(ctx, s.cfg.ReportTimeout)
	}
	return context.WithCancel(ctx)
}

// BuildDashboard assembles the dashboard report. Input errors and a missing
// purchase history end the build before any aggregate is queried; a storage
// failure in one section degrades only that section.
func (s *analyticsService) BuildDashboard(ctx context.Context, req ReportRequest) *models.AnalyticsReport {
	started := time.Now()
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	outcome := s.resolveAnchor(ctx, req)
	if !outcome.resolved() {
		report := s.emptyDashboard(req.Scope, outcome)
		s.finish(reportDashboard, outcome.status, started)
		return report
	}

	anchor := outcome.anchor
	report := models.NewEmptyAnalyticsReport(req.Scope, models.SectionNoData, models.LabelNoData)
	report.AnchorDate = anchor

	record := func(section string, err error) {
		if err == nil {
			return
		}
		s.sectionFailed(reportDashboard, req.Scope, section, err)
		report.RecordFailure(section, err)
	}

	var err error
	report.Weekly, err = s.weeklySpend(ctx, req.Scope, anchor)
	record("weekly", err)

	report.AverageWeekly, err = s.averageWeeklySpend(ctx, req.Scope, report.Weekly.LatestWeek)
	record("average_weekly", err)

	report.MonthlyBlocks, err = s.monthlyBlocks(ctx, req.Scope, anchor)
	record("monthly_blocks", err)

	report.TopIncreaseGroup, err = s.detector.TopIncreaseGroup(ctx, req.Scope, anchor)
	if err != nil {
		report.TopIncreaseGroup.Status = models.SectionUnavailable
		report.TopIncreaseGroup.Label = models.LabelUnavailable
	}
	record("top_increase_group", err)

	report.MostSpentItem, err = s.itemHighlight(ctx, req.Scope, anchor, false, byTotal)
	record("most_spent_item", err)

	report.MostBoughtItem, err = s.itemHighlight(ctx, req.Scope, anchor, true, byCount)
	record("most_bought_item", err)

	report.CategoryGroups, err = s.groupHighlight(ctx, req.Scope, report.Weekly)
	record("category_groups", err)

	report.PriceAlerts, err = s.detector.DetectIncreases(ctx, req.Scope, anchor, s.cfg.AlertLimit)
	if err != nil {
		report.PriceAlerts.Status = models.SectionUnavailable
		report.PriceAlerts.Label = models.LabelUnavailable
		report.PriceAlerts.Alerts = []models.PriceAlert{}
	}
	record("price_alerts", err)

	status := "ok"
	if len(report.Failures) > 0 {
		status = "partial"
	}
	s.metrics.RecordGauge("report.price_alerts", float64(len(report.PriceAlerts.Alerts)), nil)
	s.finish(reportDashboard, status, started)

	slog.Info("dashboard built",
		"scope", req.Scope.String(),
		"anchor", anchor.String(),
		"failures", len(report.Failures),
		"duration_ms", time.Since(started).Milliseconds(),
	)
	return report
}

func (s *analyticsService) emptyDashboard(scope models.Scope, outcome anchorOutcome) *models.AnalyticsReport {
	switch outcome.status {
	case "no_history":
		report := models.NewEmptyAnalyticsReport(scope, models.SectionNoData, models.LabelNoPurchaseHistory)
		report.NoPurchaseHistory = true
		return report
	case "unavailable":
		report := models.NewEmptyAnalyticsReport(scope, models.SectionUnavailable, models.LabelUnavailable)
		report.ErrorMessage = outcome.message
		report.RecordFailure("anchor", outcome.err)
		slog.Error("failed to resolve anchor date", "scope", scope.String(), "error", outcome.err)
		return report
	default:
		report := models.NewEmptyAnalyticsReport(scope, models.SectionNoData, models.LabelNoData)
		report.ErrorMessage = outcome.message
		slog.Warn("rejected dashboard request", "scope", scope.String(), "error", outcome.err)
		return report
	}
}

// ItemPriceInsight validates the scope and delegates to the detector.
func (s *analyticsService) ItemPriceInsight(ctx context.Context, scope models.Scope, itemName string) (*models.ItemPriceInsight, error) {
	if err := scope.Validate(); err != nil {
		return nil, err
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	insight, err := s.detector.ItemPriceInsight(ctx, scope, itemName)
	if err != nil {
		return nil, fmt.Errorf("failed to build price insight for %s: %w", itemName, err)
	}
	return insight, nil
}

func (s *analyticsService) sectionFailed(report string, scope models.Scope, section string, err error) {
	slog.Warn("report section degraded",
		"report", report,
		"section", section,
		"scope", scope.String(),
		"error", err,
	)
	s.metrics.IncrementCounter("report.section.failed", map[string]string{"report": report, "section": section})
}

func (s *analyticsService) finish(report, status string, started time.Time) {
	s.metrics.IncrementCounter("report.built", map[string]string{"report": report, "status": status})
	s.metrics.RecordProcessingTime("report."+report, time.Since(started))
}
