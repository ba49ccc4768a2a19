package repositories

import (
	"context"
	"errors"
	"fmt"

	"frugalfolio/internal/models"

	"gorm.io/gorm"
)

const moneyPlaces = 2

type purchaseRepository struct {
	db *gorm.DB
}

func NewPurchaseRepository(db *gorm.DB) PurchaseRepositoryInterface {
	return &purchaseRepository{
		db: db,
	}
}

// LatestPurchaseDate returns the anchor date of a scope: its most recent
// purchase date, optionally strictly before a cutoff. Nil means no history.
func (r *purchaseRepository) LatestPurchaseDate(ctx context.Context, scope models.Scope, before *models.Date) (*models.Date, error) {
	if err := scope.Validate(); err != nil {
		return nil, err
	}

	query := r.db.WithContext(ctx).
		Model(&models.Purchase{}).
		Select("purchases.purchase_date").
		Scopes(withinScope(scope, "purchases"))
	if before != nil {
		query = query.Where("purchases.purchase_date < ?", *before)
	}

	var latest models.Purchase
	err := query.Order("purchases.purchase_date DESC").Limit(1).Take(&latest).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get latest purchase date: %w", err)
	}

	return &latest.PurchaseDate, nil
}

func (r *purchaseRepository) SumTotal(ctx context.Context, scope models.Scope, period models.Period) (models.SpendTotal, error) {
	if err := scope.Validate(); err != nil {
		return models.SpendTotal{}, err
	}

	var total models.SpendTotal
	err := r.db.WithContext(ctx).
		Table("purchases AS p").
		Select("COALESCE(SUM(p.total_price), 0) AS total, COUNT(p.id) AS purchase_count").
		Scopes(withinScope(scope, "p"), withinPeriod(period, "p")).
		Scan(&total).Error
	if err != nil {
		return models.SpendTotal{}, fmt.Errorf("failed to sum purchases: %w", err)
	}

	total.Total = total.Total.Round(moneyPlaces)
	return total, nil
}

func (r *purchaseRepository) SpendByItem(ctx context.Context, scope models.Scope, period models.Period, filter models.ItemSpendFilter) ([]models.SpendRow, error) {
	if err := scope.Validate(); err != nil {
		return nil, err
	}

	query := r.db.WithContext(ctx).
		Table("purchases AS p").
		Select("p.item_name AS name, COALESCE(SUM(p.total_price), 0) AS total, COUNT(p.id) AS purchase_count").
		Scopes(withinScope(scope, "p"), withinPeriod(period, "p"))
	if filter.ExcludeWeightBased {
		query = query.Where("p.is_weight_based = ?", false)
	}

	var rows []models.SpendRow
	if err := query.Group("p.item_name").Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to aggregate spend by item: %w", err)
	}

	return roundRows(rows), nil
}

// SpendByCategory counts every (purchase, category) pair, so a purchase with
// two categories contributes its total to both.
func (r *purchaseRepository) SpendByCategory(ctx context.Context, scope models.Scope, period models.Period) ([]models.SpendRow, error) {
	if err := scope.Validate(); err != nil {
		return nil, err
	}

	var rows []models.SpendRow
	err := r.db.WithContext(ctx).
		Table("purchases AS p").
		Select("c.name AS name, COALESCE(SUM(p.total_price), 0) AS total, COUNT(p.id) AS purchase_count").
		Joins("JOIN purchase_categories AS pc ON pc.purchase_id = p.id").
		Joins("JOIN categories AS c ON c.id = pc.category_id").
		Scopes(withinScope(scope, "p"), withinPeriod(period, "p")).
		Group("c.name").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate spend by category: %w", err)
	}

	return roundRows(rows), nil
}

// SpendByFirstCategory attributes each purchase to exactly one category, the
// alphabetically first it carries. Uncategorized purchases have no first
// category and are left out.
func (r *purchaseRepository) SpendByFirstCategory(ctx context.Context, scope models.Scope, period models.Period) ([]models.SpendRow, error) {
	if err := scope.Validate(); err != nil {
		return nil, err
	}

	var rows []models.SpendRow
	err := r.db.WithContext(ctx).
		Table("purchases AS p").
		Select("fc.category_name AS name, COALESCE(SUM(p.total_price), 0) AS total, COUNT(p.id) AS purchase_count").
		Joins("JOIN (?) AS fc ON fc.purchase_id = p.id", r.firstCategories()).
		Scopes(withinScope(scope, "p"), withinPeriod(period, "p")).
		Group("fc.category_name").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate spend by first category: %w", err)
	}

	return roundRows(rows), nil
}

func (r *purchaseRepository) DailyTotals(ctx context.Context, scope models.Scope, period models.Period) ([]models.DailyTotal, error) {
	if err := scope.Validate(); err != nil {
		return nil, err
	}

	var rows []models.DailyTotal
	err := r.db.WithContext(ctx).
		Table("purchases AS p").
		Select("p.purchase_date AS day, COALESCE(SUM(p.total_price), 0) AS total, COUNT(p.id) AS purchase_count").
		Scopes(withinScope(scope, "p"), withinPeriod(period, "p")).
		Group("p.purchase_date").
		Order("p.purchase_date ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate daily totals: %w", err)
	}

	for i := range rows {
		rows[i].Total = rows[i].Total.Round(moneyPlaces)
	}
	return rows, nil
}

// LatestPurchasePerItem ranks each item's purchases by date then id, newest
// first, and keeps rank 1 when it falls inside the period.
func (r *purchaseRepository) LatestPurchasePerItem(ctx context.Context, scope models.Scope, period models.Period) ([]models.LatestItemPurchase, error) {
	if err := scope.Validate(); err != nil {
		return nil, err
	}

	ranked := r.db.
		Table("purchases AS p").
		Select("p.id, p.item_name, p.purchase_date, p.price_per_unit, p.is_weight_based, p.unit, " +
			"ROW_NUMBER() OVER (PARTITION BY p.item_name ORDER BY p.purchase_date DESC, p.id DESC) AS rn").
		Scopes(withinScope(scope, "p"))

	var rows []models.LatestItemPurchase
	err := r.db.WithContext(ctx).
		Table("(?) AS latest", ranked).
		Select("latest.id, latest.item_name, latest.purchase_date, latest.price_per_unit, latest.is_weight_based, latest.unit, "+
			"COALESCE(fc.category_name, '') AS first_category").
		Joins("LEFT JOIN (?) AS fc ON fc.purchase_id = latest.id", r.firstCategories()).
		Where("latest.rn = 1").
		Scopes(withinPeriod(period, "latest")).
		Order("latest.item_name ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to rank latest purchase per item: %w", err)
	}

	return rows, nil
}

// ItemHistory returns one item's purchases newest first, ties broken by id.
func (r *purchaseRepository) ItemHistory(ctx context.Context, scope models.Scope, q models.ItemHistoryQuery) ([]models.Purchase, error) {
	if err := scope.Validate(); err != nil {
		return nil, err
	}
	itemName := models.NormalizeItemName(q.ItemName)
	if itemName == "" {
		return nil, models.ErrItemNameRequired
	}

	query := r.db.WithContext(ctx).
		Model(&models.Purchase{}).
		Scopes(withinScope(scope, "purchases")).
		Where("purchases.item_name = ?", itemName)
	if q.IsWeightBased != nil {
		query = query.Where("purchases.is_weight_based = ?", *q.IsWeightBased)
	}
	if q.Unit != "" {
		query = query.Where("purchases.unit = ?", q.Unit)
	}
	if q.From != nil {
		query = query.Where("purchases.purchase_date >= ?", *q.From)
	}
	if q.Before != nil {
		query = query.Where("purchases.purchase_date < ?", *q.Before)
	}
	if q.Limit > 0 {
		query = query.Limit(q.Limit)
	}
	if q.WithCategories {
		query = query.Preload("Categories", func(db *gorm.DB) *gorm.DB {
			return db.Order("categories.name ASC")
		})
	}

	var purchases []models.Purchase
	if err := query.Order("purchases.purchase_date DESC, purchases.id DESC").Find(&purchases).Error; err != nil {
		return nil, fmt.Errorf("failed to get history for item %s: %w", itemName, err)
	}

	return purchases, nil
}

// firstCategories maps each purchase id to its alphabetically first category.
func (r *purchaseRepository) firstCategories() *gorm.DB {
	return r.db.
		Table("purchase_categories AS pc").
		Select("pc.purchase_id, MIN(c.name) AS category_name").
		Joins("JOIN categories AS c ON c.id = pc.category_id").
		Group("pc.purchase_id")
}

func roundRows(rows []models.SpendRow) []models.SpendRow {
	for i := range rows {
		rows[i].Total = rows[i].Total.Round(moneyPlaces)
	}
	return rows
}
