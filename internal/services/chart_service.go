package services

import (
	"context"
	"fmt"
	"sort"

	"frugalfolio/internal/config"
	"frugalfolio/internal/models"
	"frugalfolio/internal/repositories"

	"github.com/shopspring/decimal"
)

type chartService struct {
	repo       repositories.PurchaseRepositoryInterface
	aggregator AggregatorInterface
	metrics    MetricsRecorderInterface
	cfg        config.AnalyticsConfig
}

func NewChartService(repo repositories.PurchaseRepositoryInterface, aggregator AggregatorInterface, metrics MetricsRecorderInterface, cfg config.AnalyticsConfig) ChartServiceInterface {
	return &chartService{
		repo:       repo,
		aggregator: aggregator,
		metrics:    metrics,
		cfg:        cfg,
	}
}

// MonthlyTrend returns total spend per calendar month over the whole history.
func (c *chartService) MonthlyTrend(ctx context.Context, scope models.Scope) (*models.TrendChart, error) {
	return c.trend(ctx, scope, models.ChartMonthly,
		func(models.Date) models.Period { return models.Period{} },
		monthStart, MonthLabel)
}

// WeeklyTrend returns total spend per ISO week for the weeks up to the one
// holding the latest purchase.
func (c *chartService) WeeklyTrend(ctx context.Context, scope models.Scope) (*models.TrendChart, error) {
	return c.trend(ctx, scope, models.ChartWeekly,
		func(anchor models.Date) models.Period {
			week := ActiveWeek(anchor)
			return rangePeriod(week.Start.AddDays(-7*(c.cfg.TrendWeeks-1)), anchor)
		},
		weekStart, ISOWeekLabel)
}

// ThreeMonthWeeklyTrend returns weekly spend over the months before the
// latest purchase, with the headline figures the dashboard chart shows.
func (c *chartService) ThreeMonthWeeklyTrend(ctx context.Context, scope models.Scope) (*models.TrendChart, error) {
	return c.trend(ctx, scope, models.ChartWeeklyThreeMonth,
		func(anchor models.Date) models.Period { return LookbackMonths(anchor, c.cfg.TrendMonths) },
		weekStart, ShortWeekLabel)
}

func (c *chartService) trend(
	ctx context.Context,
	scope models.Scope,
	kind models.ChartKind,
	periodFor func(anchor models.Date) models.Period,
	startOf func(models.Date) models.Date,
	label func(models.Date) string,
) (*models.TrendChart, error) {
	anchor, err := c.anchor(ctx, scope)
	if err != nil {
		return nil, err
	}
	if anchor == nil {
		c.built(kind, models.SectionNoData)
		return models.NewEmptyTrendChart(kind, models.SectionNoData, models.LabelNoPurchaseHistory), nil
	}

	period := periodFor(*anchor)
	days, err := c.aggregator.Aggregate(ctx, AggregateRequest{Scope: scope, Period: period, Dimension: DimensionByDay})
	if err != nil {
		return nil, fmt.Errorf("failed to build %s chart: %w", kind, err)
	}

	chart := models.NewEmptyTrendChart(kind, models.SectionNoData, models.LabelNoData)
	chart.Period = period
	for _, bucket := range bucketDays(days.Days, startOf) {
		chart.Points = append(chart.Points, models.ChartPoint{Label: label(bucket.Start), Value: bucket.Total})
	}

	if len(chart.Points) > 0 {
		chart.Status = models.SectionOK
		chart.Label = period.Label
		if period.IsZero() {
			chart.Label = "All time"
		}
		chart.Headline = headlineOf(chart.Points)
	}

	c.built(kind, chart.Status)
	return chart, nil
}

// headlineOf summarises a series. High and low keep the earliest point on ties.
func headlineOf(points []models.ChartPoint) models.TrendHeadline {
	headline := models.TrendHeadline{Change: models.NeutralComparison()}
	if len(points) == 0 {
		return headline
	}

	last := points[len(points)-1]
	headline.Available = true
	headline.Latest = last.Value
	headline.LatestLabel = last.Label

	if len(points) > 1 {
		prev := points[len(points)-2]
		headline.Previous = prev.Value
		headline.PreviousLabel = prev.Label
		headline.Change = CompareAmounts(last.Value, &prev.Value)
	}

	high, low := points[0], points[0]
	for _, p := range points[1:] {
		if p.Value.GreaterThan(high.Value) {
			high = p
		}
		if p.Value.LessThan(low.Value) {
			low = p
		}
	}
	headline.High, headline.HighLabel = high.Value, high.Label
	headline.Low, headline.LowLabel = low.Value, low.Label
	return headline
}

// CategoryMonthComparison compares category group totals of the latest
// purchase's calendar month with the month before it.
func (c *chartService) CategoryMonthComparison(ctx context.Context, scope models.Scope) (*models.CategoryMonthChart, error) {
	anchor, err := c.anchor(ctx, scope)
	if err != nil {
		return nil, err
	}
	if anchor == nil {
		c.built(models.ChartCategoryMonths, models.SectionNoData)
		return models.NewEmptyCategoryMonthChart(models.SectionNoData, models.LabelNoPurchaseHistory), nil
	}

	latestMonth := CalendarMonth(*anchor)
	previousMonth := PreviousCalendarMonth(*anchor)

	latest, err := c.aggregator.Aggregate(ctx, AggregateRequest{Scope: scope, Period: latestMonth, Dimension: DimensionByCategoryGroup})
	if err != nil {
		return nil, fmt.Errorf("failed to build %s chart: %w", models.ChartCategoryMonths, err)
	}
	previous, err := c.aggregator.Aggregate(ctx, AggregateRequest{Scope: scope, Period: previousMonth, Dimension: DimensionByCategoryGroup})
	if err != nil {
		return nil, fmt.Errorf("failed to build %s chart: %w", models.ChartCategoryMonths, err)
	}

	chart := models.NewEmptyCategoryMonthChart(models.SectionNoData, models.LabelNoData)
	chart.LatestMonth = latestMonth
	chart.PreviousMonth = previousMonth

	latestByGroup := totalsByName(latest.Rows)
	previousByGroup := totalsByName(previous.Rows)

	seen := make(map[string]struct{}, len(latestByGroup)+len(previousByGroup))
	for name := range latestByGroup {
		seen[name] = struct{}{}
	}
	for name := range previousByGroup {
		seen[name] = struct{}{}
	}
	for name := range seen {
		chart.Labels = append(chart.Labels, name)
	}
	sort.Strings(chart.Labels)

	for _, name := range chart.Labels {
		chart.LatestValues = append(chart.LatestValues, valueOr(latestByGroup, name))
		chart.PreviousValues = append(chart.PreviousValues, valueOr(previousByGroup, name))
	}

	if len(chart.Labels) > 0 {
		chart.Status = models.SectionOK
		chart.Label = fmt.Sprintf("%s vs %s", latestMonth.Label, previousMonth.Label)
	}

	c.built(models.ChartCategoryMonths, chart.Status)
	return chart, nil
}

func (c *chartService) anchor(ctx context.Context, scope models.Scope) (*models.Date, error) {
	if err := scope.Validate(); err != nil {
		return nil, err
	}
	anchor, err := c.repo.LatestPurchaseDate(ctx, scope, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve anchor date: %w", err)
	}
	return anchor, nil
}

func (c *chartService) built(kind models.ChartKind, status models.SectionStatus) {
	c.metrics.IncrementCounter("chart.built", map[string]string{"kind": string(kind), "status": string(status)})
}

func totalsByName(rows []models.SpendRow) map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal, len(rows))
	for _, r := range rows {
		totals[r.Name] = r.Total
	}
	return totals
}

func valueOr(totals map[string]decimal.Decimal, name string) decimal.Decimal {
	if v, ok := totals[name]; ok {
		return v
	}
	return decimal.Zero
}
