package services

import (
	"context"
	"fmt"

	"frugalfolio/internal/models"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

func byTotal(r models.SpendRow) float64 { return r.Total.InexactFloat64() }
func byCount(r models.SpendRow) float64 { return float64(r.PurchaseCount) }
func rowName(r models.SpendRow) string  { return r.Name }

// aggregatePair runs the same aggregate over two independent periods.
func (s *analyticsService) aggregatePair(ctx context.Context, latest, previous AggregateRequest) (*ResultSet, *ResultSet, error) {
	var latestSet, previousSet *ResultSet

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		latestSet, err = s.aggregator.Aggregate(gctx, latest)
		return err
	})
	g.Go(func() error {
		var err error
		previousSet, err = s.aggregator.Aggregate(gctx, previous)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return latestSet, previousSet, nil
}

func (s *analyticsService) weeklySpend(ctx context.Context, scope models.Scope, anchor models.Date) (models.WeeklySpend, error) {
	latestWeek := ActiveWeek(anchor)
	previousWeek := PriorWeek(latestWeek)

	section := models.WeeklySpend{
		Status:        models.SectionNoData,
		Label:         models.LabelNoData,
		LatestWeek:    latestWeek,
		PreviousWeek:  previousWeek,
		LatestTotal:   decimal.Zero,
		PreviousTotal: decimal.Zero,
		Change:        models.NeutralComparison(),
	}

	latest, previous, err := s.aggregatePair(ctx,
		AggregateRequest{Scope: scope, Period: latestWeek, Dimension: DimensionTotal},
		AggregateRequest{Scope: scope, Period: previousWeek, Dimension: DimensionTotal},
	)
	if err != nil {
		section.Status = models.SectionUnavailable
		section.Label = models.LabelUnavailable
		return section, err
	}

	section.LatestTotal = latest.Total
	section.PreviousTotal = previous.Total
	section.Change = CompareAmounts(latest.Total, &previous.Total)
	if latest.HasData() || previous.HasData() {
		section.Status = models.SectionOK
		section.Label = latestWeek.Label
	}
	return section, nil
}

// averageWeeklySpend averages weekly totals over the configured number of
// whole weeks ending with latestWeek, counting only weeks with purchases.
func (s *analyticsService) averageWeeklySpend(ctx context.Context, scope models.Scope, latestWeek models.Period) (models.AverageWeeklySpend, error) {
	period := WeeksEnding(latestWeek.End, s.cfg.AverageWeeklyWeeks)
	section := models.AverageWeeklySpend{
		Status:  models.SectionNoData,
		Label:   models.LabelNoData,
		Period:  period,
		Average: decimal.Zero,
	}

	days, err := s.aggregator.Aggregate(ctx, AggregateRequest{Scope: scope, Period: period, Dimension: DimensionByDay})
	if err != nil {
		section.Status = models.SectionUnavailable
		section.Label = models.LabelUnavailable
		return section, err
	}

	weeks := bucketDays(days.Days, weekStart)
	if len(weeks) == 0 {
		return section, nil
	}

	section.Status = models.SectionOK
	section.Label = period.Label
	section.Average = averageOfBuckets(weeks)
	section.WeeksWithData = len(weeks)
	return section, nil
}

// monthlyBlocks compares the average monthly spend of the most recent block
// of full months with the block before it.
func (s *analyticsService) monthlyBlocks(ctx context.Context, scope models.Scope, anchor models.Date) (models.MonthlyBlockComparison, error) {
	months := s.cfg.MonthBlockMonths
	recent := MonthBlock(anchor, months)
	prior := PriorMonthBlock(recent, months)
	fullMonth := PreviousCalendarMonth(anchor)

	section := models.MonthlyBlockComparison{
		Status:        models.SectionNoData,
		RecentBlock:   recent,
		PriorBlock:    prior,
		RecentAverage: decimal.Zero,
		PriorAverage:  decimal.Zero,
		RecentLabel:   fmt.Sprintf("No data for recent %d-month period", months),
		PriorLabel:    fmt.Sprintf("No data for prior %d-month period", months),
		Tooltip:       models.LabelDetailsNA,
		Change:        models.NeutralComparison(),
		MostRecentFullMonth: models.MonthTotal{
			Label: models.LabelNoData,
			Month: fullMonth,
			Total: decimal.Zero,
		},
	}

	recentDays, priorDays, err := s.aggregatePair(ctx,
		AggregateRequest{Scope: scope, Period: recent, Dimension: DimensionByDay},
		AggregateRequest{Scope: scope, Period: prior, Dimension: DimensionByDay},
	)
	if err != nil {
		section.Status = models.SectionUnavailable
		section.RecentLabel = models.LabelUnavailable
		section.PriorLabel = models.LabelUnavailable
		section.MostRecentFullMonth.Label = models.LabelUnavailable
		return section, err
	}

	recentMonths := bucketDays(recentDays.Days, monthStart)
	priorMonths := bucketDays(priorDays.Days, monthStart)

	section.RecentAverage = averageOfBuckets(recentMonths)
	section.PriorAverage = averageOfBuckets(priorMonths)
	section.Change = CompareAmounts(section.RecentAverage, &section.PriorAverage)

	hasRecent := section.RecentAverage.IsPositive()
	hasPrior := section.PriorAverage.IsPositive()
	if hasRecent {
		section.RecentLabel = recent.Label
	}
	if hasPrior {
		section.PriorLabel = prior.Label
	}

	switch {
	case hasRecent && hasPrior:
		section.Tooltip = fmt.Sprintf("Recent %d-mo avg (%s) vs. Prior %d-mo avg (%s)", months, recent.Label, months, prior.Label)
	case hasRecent:
		section.Tooltip = fmt.Sprintf("Average based on period: %s. No prior period data for comparison.", recent.Label)
	}

	if n := len(recentMonths); n > 0 && recentMonths[n-1].Start.Equal(fullMonth.Start) {
		section.MostRecentFullMonth.Label = fullMonth.Label
		section.MostRecentFullMonth.Total = recentMonths[n-1].Total
		section.MostRecentFullMonth.Available = true
	}

	if len(recentMonths) > 0 || len(priorMonths) > 0 {
		section.Status = models.SectionOK
	}
	return section, nil
}

// itemHighlight picks the leading item of the trailing window ending at the
// anchor and of the window before it. Counting by purchases skips
// weight-based rows, whose counts say nothing about how often an item is bought.
func (s *analyticsService) itemHighlight(ctx context.Context, scope models.Scope, anchor models.Date, excludeWeightBased bool, key func(models.SpendRow) float64) (models.ItemHighlight, error) {
	latestWindow := TrailingWindow(anchor, s.cfg.ItemWindowDays)
	previousWindow := PriorWindow(latestWindow)

	section := models.ItemHighlight{
		Status:         models.SectionNoData,
		Label:          models.LabelNoData,
		LatestWindow:   latestWindow,
		PreviousWindow: previousWindow,
		Latest:         models.ItemSpend{TotalSpent: decimal.Zero},
		Previous:       models.ItemSpend{TotalSpent: decimal.Zero},
	}

	latest, previous, err := s.aggregatePair(ctx,
		AggregateRequest{Scope: scope, Period: latestWindow, Dimension: DimensionByItem, ExcludeWeightBased: excludeWeightBased},
		AggregateRequest{Scope: scope, Period: previousWindow, Dimension: DimensionByItem, ExcludeWeightBased: excludeWeightBased},
	)
	if err != nil {
		section.Status = models.SectionUnavailable
		section.Label = models.LabelUnavailable
		return section, err
	}

	section.Latest = leadingItem(latest.Rows, key)
	section.Previous = leadingItem(previous.Rows, key)
	if section.Latest.Available || section.Previous.Available {
		section.Status = models.SectionOK
		section.Label = latestWindow.Label
	}
	return section, nil
}

func leadingItem(rows []models.SpendRow, key func(models.SpendRow) float64) models.ItemSpend {
	top := TopN(rows, 1, key, rowName)
	if len(top) == 0 {
		return models.ItemSpend{TotalSpent: decimal.Zero}
	}
	return models.ItemSpend{
		ItemName:      top[0].Name,
		TotalSpent:    top[0].Total,
		PurchaseCount: top[0].PurchaseCount,
		Available:     true,
	}
}

// groupHighlight names the biggest and smallest category groups of the two
// weeks by share of that week's spend. Each purchase counts once, under its
// first category.
func (s *analyticsService) groupHighlight(ctx context.Context, scope models.Scope, weekly models.WeeklySpend) (models.GroupHighlight, error) {
	latestWeek, previousWeek := weekly.LatestWeek, weekly.PreviousWeek
	section := models.GroupHighlight{
		Status:       models.SectionNoData,
		Label:        models.LabelNoData,
		LatestWeek:   latestWeek,
		PreviousWeek: previousWeek,
	}

	latest, previous, err := s.aggregatePair(ctx,
		AggregateRequest{Scope: scope, Period: latestWeek, Dimension: DimensionByCategoryGroup},
		AggregateRequest{Scope: scope, Period: previousWeek, Dimension: DimensionByCategoryGroup},
	)
	if err != nil {
		section.Status = models.SectionUnavailable
		section.Label = models.LabelUnavailable
		return section, err
	}

	section.MostLatest, section.LeastLatest = groupExtremes(latest, weekly.LatestTotal)
	section.MostPrevious, section.LeastPrevious = groupExtremes(previous, weekly.PreviousTotal)
	if section.MostLatest.Available || section.MostPrevious.Available {
		section.Status = models.SectionOK
		section.Label = latestWeek.Label
	}
	return section, nil
}

// groupExtremes reports shares of the week's whole spend, so uncategorized
// purchases still count in the denominator. The grouped sum stands in when
// the week total is unknown.
func groupExtremes(rs *ResultSet, weekTotal decimal.Decimal) (most, least models.GroupShare) {
	most = models.GroupShare{TotalSpent: decimal.Zero}
	least = models.GroupShare{TotalSpent: decimal.Zero}
	if !rs.Total.IsPositive() {
		return most, least
	}

	whole := weekTotal
	if whole.LessThan(rs.Total) {
		whole = rs.Total
	}

	top, bottom := Extremes(rs.Rows, byTotal, rowName)
	if len(top) == 1 {
		most = shareOf(top[0], whole)
	}
	if len(bottom) == 1 {
		least = shareOf(bottom[0], whole)
	}
	return most, least
}

func shareOf(row models.SpendRow, total decimal.Decimal) models.GroupShare {
	return models.GroupShare{
		GroupName:  row.Name,
		TotalSpent: row.Total,
		Percentage: percentOf(row.Total, total),
		Available:  true,
	}
}
