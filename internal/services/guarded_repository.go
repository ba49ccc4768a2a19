package services

import (
	"context"
	"errors"
	"log/slog"

	"frugalfolio/internal/models"
	"frugalfolio/internal/repositories"
)

const purchaseStoreService = "purchase_store"

// guardedRepository wraps the purchase store with a circuit breaker so that
// once the store keeps failing, the remaining report sections fail fast
// instead of each waiting on the database.
type guardedRepository struct {
	next    repositories.PurchaseRepositoryInterface
	breaker CircuitBreakerInterface
	metrics MetricsRecorderInterface
}

func NewGuardedPurchaseRepository(next repositories.PurchaseRepositoryInterface, breaker CircuitBreakerInterface, metrics MetricsRecorderInterface) repositories.PurchaseRepositoryInterface {
	return &guardedRepository{
		next:    next,
		breaker: breaker,
		metrics: metrics,
	}
}

func guard[T any](ctx context.Context, g *guardedRepository, operation string, call func() (T, error)) (T, error) {
	var zero T
	if g.breaker.IsOpen() {
		g.metrics.IncrementCounter("store.call.rejected", map[string]string{"operation": operation})
		return zero, ErrCircuitBreakerOpen
	}

	result, err := call()
	if err != nil {
		// A caller giving up or a bad scope is not a store fault.
		if errors.Is(err, models.ErrInvalidScope) || (errors.Is(err, context.Canceled) && ctx.Err() != nil) {
			return zero, err
		}
		g.breaker.RecordFailure()
		g.metrics.IncrementCounter("store.call.failed", map[string]string{"operation": operation})
		if g.breaker.GetState() == StateOpen {
			slog.Warn("purchase store circuit opened", "operation", operation, "failures", g.breaker.GetFailureCount())
			g.metrics.RecordGauge("circuit_breaker.state", float64(StateOpen), map[string]string{"service": purchaseStoreService})
		}
		return zero, err
	}

	g.breaker.RecordSuccess()
	g.metrics.RecordGauge("circuit_breaker.state", float64(g.breaker.GetState()), map[string]string{"service": purchaseStoreService})
	return result, nil
}

func (g *guardedRepository) LatestPurchaseDate(ctx context.Context, scope models.Scope, before *models.Date) (*models.Date, error) {
	return guard(ctx, g, "latest_purchase_date", func() (*models.Date, error) {
		return g.next.LatestPurchaseDate(ctx, scope, before)
	})
}

func (g *guardedRepository) SumTotal(ctx context.Context, scope models.Scope, period models.Period) (models.SpendTotal, error) {
	return guard(ctx, g, "sum_total", func() (models.SpendTotal, error) {
		return g.next.SumTotal(ctx, scope, period)
	})
}

func (g *guardedRepository) SpendByItem(ctx context.Context, scope models.Scope, period models.Period, filter models.ItemSpendFilter) ([]models.SpendRow, error) {
	return guard(ctx, g, "spend_by_item", func() ([]models.SpendRow, error) {
		return g.next.SpendByItem(ctx, scope, period, filter)
	})
}

func (g *guardedRepository) SpendByCategory(ctx context.Context, scope models.Scope, period models.Period) ([]models.SpendRow, error) {
	return guard(ctx, g, "spend_by_category", func() ([]models.SpendRow, error) {
		return g.next.SpendByCategory(ctx, scope, period)
	})
}

func (g *guardedRepository) SpendByFirstCategory(ctx context.Context, scope models.Scope, period models.Period) ([]models.SpendRow, error) {
	return guard(ctx, g, "spend_by_first_category", func() ([]models.SpendRow, error) {
		return g.next.SpendByFirstCategory(ctx, scope, period)
	})
}

func (g *guardedRepository) DailyTotals(ctx context.Context, scope models.Scope, period models.Period) ([]models.DailyTotal, error) {
	return guard(ctx, g, "daily_totals", func() ([]models.DailyTotal, error) {
		return g.next.DailyTotals(ctx, scope, period)
	})
}

func (g *guardedRepository) LatestPurchasePerItem(ctx context.Context, scope models.Scope, period models.Period) ([]models.LatestItemPurchase, error) {
	return guard(ctx, g, "latest_purchase_per_item", func() ([]models.LatestItemPurchase, error) {
		return g.next.LatestPurchasePerItem(ctx, scope, period)
	})
}

func (g *guardedRepository) ItemHistory(ctx context.Context, scope models.Scope, query models.ItemHistoryQuery) ([]models.Purchase, error) {
	return guard(ctx, g, "item_history", func() ([]models.Purchase, error) {
		return g.next.ItemHistory(ctx, scope, query)
	})
}
