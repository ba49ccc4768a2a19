package services

import (
	"context"
	"log/slog"
	"time"

	"frugalfolio/internal/models"

	"github.com/shopspring/decimal"
)

const fullMonthLabelLayout = "January 2006"

// BuildStatistics assembles the long-form statistics report: all-time totals
// by category, top items and price increases near the anchor, and the anchor
// month against the previous month that has purchases.
func (s *analyticsService) BuildStatistics(ctx context.Context, req ReportRequest) *models.StatisticsReport {
	started := time.Now()
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	outcome := s.resolveAnchor(ctx, req)
	if !outcome.resolved() {
		report := s.emptyStatistics(req.Scope, outcome)
		s.finish(reportStatistics, outcome.status, started)
		return report
	}

	anchor := outcome.anchor
	report := models.NewEmptyStatisticsReport(req.Scope, models.SectionNoData, models.LabelNoData)
	report.AnchorDate = anchor
	report.OverallTotal = decimal.Zero

	record := func(section string, err error) {
		if err == nil {
			return
		}
		s.sectionFailed(reportStatistics, req.Scope, section, err)
		report.RecordFailure(section, err)
	}

	var err error
	report.OverallTotal, report.Categories, err = s.categoryBreakdown(ctx, req.Scope)
	record("categories", err)

	report.TopItems, err = s.topItems(ctx, req.Scope, anchor)
	record("top_items", err)

	report.PriceIncreases, err = s.detector.DetectIncreases(ctx, req.Scope, anchor, s.cfg.StatisticsLimit)
	if err != nil {
		report.PriceIncreases.Status = models.SectionUnavailable
		report.PriceIncreases.Label = models.LabelUnavailable
		report.PriceIncreases.Alerts = []models.PriceAlert{}
	}
	record("price_increases", err)

	report.MonthOverMonth, err = s.monthOverMonth(ctx, req.Scope, anchor)
	record("month_over_month", err)

	status := "ok"
	if len(report.Failures) > 0 {
		status = "partial"
	}
	s.finish(reportStatistics, status, started)

	slog.Info("statistics built",
		"scope", req.Scope.String(),
		"anchor", anchor.String(),
		"failures", len(report.Failures),
	)
	return report
}

func (s *analyticsService) emptyStatistics(scope models.Scope, outcome anchorOutcome) *models.StatisticsReport {
	switch outcome.status {
	case "no_history":
		report := models.NewEmptyStatisticsReport(scope, models.SectionNoData, models.LabelNoPurchaseHistory)
		report.NoPurchaseHistory = true
		return report
	case "unavailable":
		report := models.NewEmptyStatisticsReport(scope, models.SectionUnavailable, models.LabelUnavailable)
		report.ErrorMessage = outcome.message
		report.RecordFailure("anchor", outcome.err)
		slog.Error("failed to resolve anchor date", "scope", scope.String(), "error", outcome.err)
		return report
	default:
		report := models.NewEmptyStatisticsReport(scope, models.SectionNoData, models.LabelNoData)
		report.ErrorMessage = outcome.message
		slog.Warn("rejected statistics request", "scope", scope.String(), "error", outcome.err)
		return report
	}
}

// categoryBreakdown sums all-time spend per category. A purchase in several
// categories adds its full price to each, so rows may sum past the overall
// total; percentages are still taken against the overall total.
func (s *analyticsService) categoryBreakdown(ctx context.Context, scope models.Scope) (decimal.Decimal, models.CategoryBreakdown, error) {
	section := models.CategoryBreakdown{
		Status: models.SectionNoData,
		Label:  models.LabelNoData,
		Rows:   []models.CategoryBreakdownRow{},
	}

	overall, categories, err := s.aggregatePair(ctx,
		AggregateRequest{Scope: scope, Dimension: DimensionTotal},
		AggregateRequest{Scope: scope, Dimension: DimensionByCategory},
	)
	if err != nil {
		section.Status = models.SectionUnavailable
		section.Label = models.LabelUnavailable
		return decimal.Zero, section, err
	}

	ranked := TopN(categories.Rows, -1, byTotal, rowName)
	for _, row := range ranked {
		average := decimal.Zero
		if row.PurchaseCount > 0 {
			average = row.Total.Div(decimal.NewFromInt(row.PurchaseCount)).Round(moneyPlaces)
		}
		section.Rows = append(section.Rows, models.CategoryBreakdownRow{
			CategoryName:    row.Name,
			TotalSpent:      row.Total,
			ItemCount:       row.PurchaseCount,
			Percentage:      percentOf(row.Total, overall.Total),
			AverageItemCost: average,
		})
	}

	if len(section.Rows) > 0 {
		section.Status = models.SectionOK
		section.Label = "All time"
	}
	return overall.Total, section, nil
}

func (s *analyticsService) topItems(ctx context.Context, scope models.Scope, anchor models.Date) (models.TopItems, error) {
	window := LookbackMonths(anchor, s.cfg.PriceLookbackMonths)
	section := models.TopItems{
		Status: models.SectionNoData,
		Label:  models.LabelNoData,
		Period: window,
		Items:  []models.ItemSpend{},
	}

	items, err := s.aggregator.Aggregate(ctx, AggregateRequest{Scope: scope, Period: window, Dimension: DimensionByItem})
	if err != nil {
		section.Status = models.SectionUnavailable
		section.Label = models.LabelUnavailable
		return section, err
	}

	section.Items = itemSpends(TopN(items.Rows, s.cfg.StatisticsLimit, byTotal, rowName))
	if len(section.Items) > 0 {
		section.Status = models.SectionOK
		section.Label = window.Label
	}
	return section, nil
}

// monthOverMonth compares the anchor's calendar month with the latest
// earlier month that has any purchase, which need not be the month before.
func (s *analyticsService) monthOverMonth(ctx context.Context, scope models.Scope, anchor models.Date) (models.MonthOverMonth, error) {
	latestMonth := CalendarMonth(anchor)
	section := models.MonthOverMonth{
		Status: models.SectionNoData,
		Latest: models.MonthSummary{
			Label:    latestMonth.Start.Format(fullMonthLabelLayout),
			Month:    latestMonth,
			Total:    decimal.Zero,
			TopItems: []models.ItemSpend{},
		},
		Previous: models.MonthSummary{
			Label:    models.LabelNoPreviousMonth,
			Total:    decimal.Zero,
			TopItems: []models.ItemSpend{},
		},
		Difference: decimal.Zero,
		Change:     models.NeutralComparison(),
	}

	unavailable := func(err error) (models.MonthOverMonth, error) {
		section.Status = models.SectionUnavailable
		section.Latest.Label = models.LabelUnavailable
		section.Previous.Label = models.LabelUnavailable
		return section, err
	}

	latest, err := s.monthSummary(ctx, scope, latestMonth)
	if err != nil {
		return unavailable(err)
	}
	section.Latest = latest
	section.Status = models.SectionOK

	monthStart := latestMonth.Start
	previousDate, err := s.repo.LatestPurchaseDate(ctx, scope, &monthStart)
	if err != nil {
		return unavailable(err)
	}
	if previousDate == nil {
		section.Difference = latest.Total
		return section, nil
	}

	previous, err := s.monthSummary(ctx, scope, CalendarMonth(*previousDate))
	if err != nil {
		return unavailable(err)
	}
	section.Previous = previous
	section.Difference = latest.Total.Sub(previous.Total)
	section.Change = CompareAmounts(latest.Total, &previous.Total)
	return section, nil
}

func (s *analyticsService) monthSummary(ctx context.Context, scope models.Scope, month models.Period) (models.MonthSummary, error) {
	items, err := s.aggregator.Aggregate(ctx, AggregateRequest{Scope: scope, Period: month, Dimension: DimensionByItem})
	if err != nil {
		return models.MonthSummary{}, err
	}
	return models.MonthSummary{
		Label:     month.Start.Format(fullMonthLabelLayout),
		Month:     month,
		Total:     items.Total,
		TopItems:  itemSpends(TopN(items.Rows, s.cfg.StatisticsLimit, byTotal, rowName)),
		Available: items.HasData(),
	}, nil
}

func itemSpends(rows []models.SpendRow) []models.ItemSpend {
	spends := make([]models.ItemSpend, 0, len(rows))
	for _, row := range rows {
		spends = append(spends, models.ItemSpend{
			ItemName:      row.Name,
			TotalSpent:    row.Total,
			PurchaseCount: row.PurchaseCount,
			Available:     true,
		})
	}
	return spends
}
