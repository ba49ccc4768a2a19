package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"frugalfolio/internal/config"
	"frugalfolio/internal/models"
	"frugalfolio/internal/repositories"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

const (
	labelNoPriceIncreases = "No price increases detected"
	labelNoItemPurchases  = "No purchases of this item yet"
	weightPlaces          = 3
)

type PriceTrendOptions struct {
	Threshold             float64
	LookbackMonths        int
	GroupLookbackMonths   int
	InsightLookbackMonths int
	Concurrency           int
}

func DefaultPriceTrendOptions() PriceTrendOptions {
	return PriceTrendOptions{
		Threshold:             0.01,
		LookbackMonths:        3,
		GroupLookbackMonths:   6,
		InsightLookbackMonths: 3,
		Concurrency:           4,
	}
}

// PriceTrendOptionsFromConfig maps the analytics tunables onto detector options.
func PriceTrendOptionsFromConfig(cfg config.AnalyticsConfig) PriceTrendOptions {
	opts := DefaultPriceTrendOptions()
	opts.Threshold = cfg.PriceThreshold
	opts.LookbackMonths = cfg.PriceLookbackMonths
	opts.GroupLookbackMonths = cfg.IncreaseGroupLookbackMonths
	opts.InsightLookbackMonths = cfg.InsightLookbackMonths
	return opts
}

type priceTrendDetector struct {
	repo    repositories.PurchaseRepositoryInterface
	grouper CategoryGrouperInterface
	opts    PriceTrendOptions
}

func NewPriceTrendDetector(repo repositories.PurchaseRepositoryInterface, grouper CategoryGrouperInterface, opts PriceTrendOptions) PriceTrendDetectorInterface {
	if opts.Concurrency < 1 {
		opts.Concurrency = 1
	}
	return &priceTrendDetector{
		repo:    repo,
		grouper: grouper,
		opts:    opts,
	}
}

// itemIncrease pairs an item's latest purchase with the highest comparable
// price paid for it earlier in the lookback window.
type itemIncrease struct {
	latest     models.LatestItemPurchase
	previous   models.Purchase
	difference decimal.Decimal
}

// DetectIncreases lists items whose latest unit price beats every comparable
// earlier price by more than the threshold, largest jump first.
func (d *priceTrendDetector) DetectIncreases(ctx context.Context, scope models.Scope, anchor models.Date, limit int) (models.PriceAlerts, error) {
	window := LookbackMonths(anchor, d.opts.LookbackMonths)
	section := models.PriceAlerts{
		Status: models.SectionNoData,
		Label:  labelNoPriceIncreases,
		Period: window,
		Alerts: []models.PriceAlert{},
	}

	increases, err := d.increasesWithin(ctx, scope, window, d.opts.LookbackMonths)
	if err != nil {
		return section, err
	}

	sort.SliceStable(increases, func(i, j int) bool {
		a, b := increases[i], increases[j]
		if !a.difference.Equal(b.difference) {
			return a.difference.GreaterThan(b.difference)
		}
		if !a.latest.PurchaseDate.Equal(b.latest.PurchaseDate) {
			return a.latest.PurchaseDate.After(b.latest.PurchaseDate)
		}
		return a.latest.ItemName < b.latest.ItemName
	})

	if limit >= 0 && len(increases) > limit {
		increases = increases[:limit]
	}

	for _, inc := range increases {
		section.Alerts = append(section.Alerts, models.PriceAlert{
			ItemName:      inc.latest.ItemName,
			Unit:          inc.latest.Unit,
			IsWeightBased: inc.latest.IsWeightBased,
			OldPrice:      inc.previous.PricePerUnit,
			OldDate:       inc.previous.PurchaseDate,
			NewPrice:      inc.latest.PricePerUnit,
			NewDate:       inc.latest.PurchaseDate,
			Difference:    inc.difference,
		})
	}

	if len(section.Alerts) > 0 {
		section.Status = models.SectionOK
		section.Label = window.Label
	}
	return section, nil
}

// TopIncreaseGroup surfaces the category group with the highest average
// per-item price increase. Each item counts once, under the group of the
// first category on its latest purchase; uncategorized items are skipped.
func (d *priceTrendDetector) TopIncreaseGroup(ctx context.Context, scope models.Scope, anchor models.Date) (models.TopIncreaseGroup, error) {
	window := LookbackMonths(anchor, d.opts.GroupLookbackMonths)
	section := models.TopIncreaseGroup{
		Status: models.SectionNoData,
		Label:  labelNoPriceIncreases,
		Period: window,
	}

	increases, err := d.increasesWithin(ctx, scope, window, d.opts.GroupLookbackMonths)
	if err != nil {
		return section, err
	}

	groups := newGroupAccumulator()
	for _, inc := range increases {
		if strings.TrimSpace(inc.latest.FirstCategory) == "" {
			continue
		}
		groups.Add(d.grouper.GroupFor(inc.latest.FirstCategory), inc.difference, 1)
	}
	if groups.Len() == 0 {
		return section, nil
	}

	rows := groups.Rows()
	top := TopN(rows, 1,
		func(r models.SpendRow) float64 { return groups.Average(r.Name).InexactFloat64() },
		func(r models.SpendRow) string { return r.Name },
	)[0]

	section.Status = models.SectionOK
	section.Label = window.Label
	section.GroupName = top.Name
	section.AverageIncrease = groups.Average(top.Name)
	section.ItemCount = int(top.PurchaseCount)
	return section, nil
}

// ItemPriceInsight reports an item's latest purchase and compares its price
// with the most recent earlier purchase priced the same way.
func (d *priceTrendDetector) ItemPriceInsight(ctx context.Context, scope models.Scope, itemName string) (*models.ItemPriceInsight, error) {
	name := models.NormalizeItemName(itemName)
	if name == "" {
		return nil, models.ErrItemNameRequired
	}

	insight := &models.ItemPriceInsight{
		ItemName:   name,
		Status:     models.SectionNoData,
		Label:      labelNoItemPurchases,
		Categories: []string{},
	}

	latestRows, err := d.repo.ItemHistory(ctx, scope, models.ItemHistoryQuery{ItemName: name, Limit: 1, WithCategories: true})
	if err != nil {
		return nil, err
	}
	if len(latestRows) == 0 {
		return insight, nil
	}

	latest := latestRows[0]
	insight.Status = models.SectionOK
	insight.Label = latest.PurchaseDate.Format(rangeLabelLayout)
	insight.LatestPrice = latest.PricePerUnit
	insight.LatestDate = latest.PurchaseDate
	insight.Quantity = latest.Quantity
	insight.Unit = latest.Unit
	insight.IsWeightBased = latest.IsWeightBased
	insight.Shop = latest.Shop
	insight.AverageWeight = latest.Weight
	for _, c := range latest.Categories {
		insight.Categories = append(insight.Categories, c.Name)
	}

	weightBased := latest.IsWeightBased
	if weightBased {
		from := latest.PurchaseDate.AddMonths(-d.opts.InsightLookbackMonths)
		recent, err := d.repo.ItemHistory(ctx, scope, models.ItemHistoryQuery{ItemName: name, IsWeightBased: &weightBased, From: &from})
		if err != nil {
			return nil, err
		}
		insight.AverageWeight = averageWeight(recent, latest.Weight)
	}

	before := latest.PurchaseDate
	from := latest.PurchaseDate.AddDays(-1).AddMonths(-d.opts.InsightLookbackMonths)
	previous, err := d.repo.ItemHistory(ctx, scope, models.ItemHistoryQuery{
		ItemName:      name,
		IsWeightBased: &weightBased,
		Unit:          latest.Unit,
		From:          &from,
		Before:        &before,
		Limit:         1,
	})
	if err != nil {
		return nil, err
	}
	if len(previous) == 1 {
		insight.HasPrevious = true
		insight.PreviousPrice = previous[0].PricePerUnit
		insight.PreviousDate = previous[0].PurchaseDate
		insight.Difference = latest.PricePerUnit.Sub(previous[0].PricePerUnit).Round(moneyPlaces)
		insight.PriceIncreased = insight.Difference.IsPositive()
	}

	return insight, nil
}

// increasesWithin evaluates every item whose latest purchase falls in window
// and returns those priced above their comparable history by more than the
// threshold. Items without comparable history are skipped.
func (d *priceTrendDetector) increasesWithin(ctx context.Context, scope models.Scope, window models.Period, historyMonths int) ([]itemIncrease, error) {
	latest, err := d.repo.LatestPurchasePerItem(ctx, scope, window)
	if err != nil {
		return nil, fmt.Errorf("failed to rank latest purchases: %w", err)
	}

	found := make([]*itemIncrease, len(latest))
	threshold := decimal.NewFromFloat(d.opts.Threshold)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(d.opts.Concurrency)
	for i := range latest {
		i := i
		g.Go(func() error {
			highest, err := d.highestComparable(gctx, scope, latest[i], historyMonths)
			if err != nil {
				return err
			}
			if highest == nil {
				return nil
			}
			diff := latest[i].PricePerUnit.Sub(highest.PricePerUnit).Round(moneyPlaces)
			if diff.GreaterThan(threshold) {
				found[i] = &itemIncrease{latest: latest[i], previous: *highest, difference: diff}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to scan price history: %w", err)
	}

	increases := make([]itemIncrease, 0, len(found))
	for _, inc := range found {
		if inc != nil {
			increases = append(increases, *inc)
		}
	}

	slog.Debug("price history scanned", "scope", scope.String(), "items", len(latest), "increases", len(increases))
	return increases, nil
}

// highestComparable returns the highest-priced earlier purchase of the item
// with the same weight basis and unit, within historyMonths before the latest
// purchase. Among equal prices the most recent wins.
func (d *priceTrendDetector) highestComparable(ctx context.Context, scope models.Scope, latest models.LatestItemPurchase, historyMonths int) (*models.Purchase, error) {
	weightBased := latest.IsWeightBased
	from := latest.PurchaseDate.AddMonths(-historyMonths)
	before := latest.PurchaseDate

	history, err := d.repo.ItemHistory(ctx, scope, models.ItemHistoryQuery{
		ItemName:      latest.ItemName,
		IsWeightBased: &weightBased,
		Unit:          latest.Unit,
		From:          &from,
		Before:        &before,
	})
	if err != nil {
		return nil, err
	}

	var highest *models.Purchase
	for i := range history {
		if highest == nil || history[i].PricePerUnit.GreaterThan(highest.PricePerUnit) {
			highest = &history[i]
		}
	}
	return highest, nil
}

func averageWeight(purchases []models.Purchase, fallback decimal.Decimal) decimal.Decimal {
	if len(purchases) == 0 {
		return fallback
	}
	sum := decimal.Zero
	for _, p := range purchases {
		sum = sum.Add(p.Weight)
	}
	return sum.Div(decimal.NewFromInt(int64(len(purchases)))).Round(weightPlaces)
}
