package repositories

import (
	"context"

	"frugalfolio/internal/models"
)

// PurchaseRepositoryInterface is the read-only storage contract behind the
// analytics engine. Every method filters by scope in SQL; a zero period
// means "no date bounds".
type PurchaseRepositoryInterface interface {
	LatestPurchaseDate(ctx context.Context, scope models.Scope, before *models.Date) (*models.Date, error)
	SumTotal(ctx context.Context, scope models.Scope, period models.Period) (models.SpendTotal, error)
	SpendByItem(ctx context.Context, scope models.Scope, period models.Period, filter models.ItemSpendFilter) ([]models.SpendRow, error)
	SpendByCategory(ctx context.Context, scope models.Scope, period models.Period) ([]models.SpendRow, error)
	SpendByFirstCategory(ctx context.Context, scope models.Scope, period models.Period) ([]models.SpendRow, error)
	DailyTotals(ctx context.Context, scope models.Scope, period models.Period) ([]models.DailyTotal, error)
	LatestPurchasePerItem(ctx context.Context, scope models.Scope, period models.Period) ([]models.LatestItemPurchase, error)
	ItemHistory(ctx context.Context, scope models.Scope, query models.ItemHistoryQuery) ([]models.Purchase, error)
}
