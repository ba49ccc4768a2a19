package services

import (
	"context"
	"fmt"
	"strings"

	"frugalfolio/internal/models"
	"frugalfolio/internal/repositories"

	"github.com/shopspring/decimal"
)

const moneyPlaces = 2

type Dimension string

const (
	DimensionTotal           Dimension = "total"
	DimensionByItem          Dimension = "by_item"
	DimensionByCategory      Dimension = "by_category"
	DimensionByCategoryGroup Dimension = "by_category_group"
	DimensionByDay           Dimension = "by_day"
)

type AggregateRequest struct {
	Scope              models.Scope
	Period             models.Period
	Dimension          Dimension
	ExcludeWeightBased bool
}

// ResultSet is one scoped, period-bounded aggregate. Total is never nil;
// HasData tells "no rows" apart from a computed zero.
type ResultSet struct {
	Dimension     Dimension
	Period        models.Period
	Total         decimal.Decimal
	PurchaseCount int64
	Rows          []models.SpendRow
	Days          []models.DailyTotal
}

func (rs *ResultSet) HasData() bool {
	return rs.PurchaseCount > 0
}

type aggregator struct {
	repo    repositories.PurchaseRepositoryInterface
	grouper CategoryGrouperInterface
}

func NewAggregator(repo repositories.PurchaseRepositoryInterface, grouper CategoryGrouperInterface) AggregatorInterface {
	return &aggregator{
		repo:    repo,
		grouper: grouper,
	}
}

func (a *aggregator) Aggregate(ctx context.Context, req AggregateRequest) (*ResultSet, error) {
	result := &ResultSet{
		Dimension: req.Dimension,
		Period:    req.Period,
		Total:     decimal.Zero,
		Rows:      []models.SpendRow{},
		Days:      []models.DailyTotal{},
	}

	switch req.Dimension {
	case DimensionTotal:
		total, err := a.repo.SumTotal(ctx, req.Scope, req.Period)
		if err != nil {
			return nil, err
		}
		result.Total = total.Total
		result.PurchaseCount = total.PurchaseCount

	case DimensionByItem:
		rows, err := a.repo.SpendByItem(ctx, req.Scope, req.Period, models.ItemSpendFilter{ExcludeWeightBased: req.ExcludeWeightBased})
		if err != nil {
			return nil, err
		}
		result.setRows(rows)

	case DimensionByCategory:
		rows, err := a.repo.SpendByCategory(ctx, req.Scope, req.Period)
		if err != nil {
			return nil, err
		}
		result.setRows(rows)

	case DimensionByCategoryGroup:
		rows, err := a.repo.SpendByFirstCategory(ctx, req.Scope, req.Period)
		if err != nil {
			return nil, err
		}
		groups := newGroupAccumulator()
		for _, row := range rows {
			// No category means no group, not the default group.
			if strings.TrimSpace(row.Name) == "" {
				continue
			}
			groups.Add(a.grouper.GroupFor(row.Name), row.Total, row.PurchaseCount)
		}
		result.setRows(groups.Rows())

	case DimensionByDay:
		days, err := a.repo.DailyTotals(ctx, req.Scope, req.Period)
		if err != nil {
			return nil, err
		}
		result.Days = days
		for _, d := range days {
			result.Total = result.Total.Add(d.Total)
			result.PurchaseCount += d.PurchaseCount
		}

	default:
		return nil, fmt.Errorf("unsupported aggregate dimension %q", req.Dimension)
	}

	return result, nil
}

func (rs *ResultSet) setRows(rows []models.SpendRow) {
	if rows == nil {
		rows = []models.SpendRow{}
	}
	rs.Rows = rows
	for _, r := range rows {
		rs.Total = rs.Total.Add(r.Total)
		rs.PurchaseCount += r.PurchaseCount
	}
}

// bucketTotal is the spend of one week or month built from daily totals.
type bucketTotal struct {
	Start models.Date
	Total decimal.Decimal
	Count int64
}

// bucketDays folds ascending daily totals into buckets keyed by startOf.
// Buckets without purchases are not emitted.
func bucketDays(days []models.DailyTotal, startOf func(models.Date) models.Date) []bucketTotal {
	var buckets []bucketTotal
	for _, d := range days {
		start := startOf(d.Day)
		if n := len(buckets); n > 0 && buckets[n-1].Start.Equal(start) {
			buckets[n-1].Total = buckets[n-1].Total.Add(d.Total)
			buckets[n-1].Count += d.PurchaseCount
			continue
		}
		buckets = append(buckets, bucketTotal{Start: start, Total: d.Total, Count: d.PurchaseCount})
	}
	return buckets
}

func weekStart(d models.Date) models.Date {
	return ActiveWeek(d).Start
}

func monthStart(d models.Date) models.Date {
	return d.FirstOfMonth()
}

// averageOfBuckets averages bucket totals over the buckets that have data.
func averageOfBuckets(buckets []bucketTotal) decimal.Decimal {
	if len(buckets) == 0 {
		return decimal.Zero
	}
	sum := decimal.Zero
	for _, b := range buckets {
		sum = sum.Add(b.Total)
	}
	return sum.Div(decimal.NewFromInt(int64(len(buckets)))).Round(moneyPlaces)
}
