package models

import "github.com/shopspring/decimal"

// SpendTotal is a scoped sum of total price with the number of rows behind it.
type SpendTotal struct {
	Total         decimal.Decimal `gorm:"column:total" json:"total"`
	PurchaseCount int64           `gorm:"column:purchase_count" json:"purchase_count"`
}

// SpendRow is one group of a grouped aggregate: an item name, a category
// name or a category group name.
type SpendRow struct {
	Name          string          `gorm:"column:name" json:"name"`
	Total         decimal.Decimal `gorm:"column:total" json:"total"`
	PurchaseCount int64           `gorm:"column:purchase_count" json:"purchase_count"`
}

type DailyTotal struct {
	Day           Date            `gorm:"column:day" json:"day"`
	Total         decimal.Decimal `gorm:"column:total" json:"total"`
	PurchaseCount int64           `gorm:"column:purchase_count" json:"purchase_count"`
}

// LatestItemPurchase is the most recent purchase of an item, ranked by date
// then id, with the item's first category on that purchase.
type LatestItemPurchase struct {
	ID            uint            `gorm:"column:id" json:"id"`
	ItemName      string          `gorm:"column:item_name" json:"item_name"`
	PurchaseDate  Date            `gorm:"column:purchase_date" json:"purchase_date"`
	PricePerUnit  decimal.Decimal `gorm:"column:price_per_unit" json:"price_per_unit"`
	IsWeightBased bool            `gorm:"column:is_weight_based" json:"is_weight_based"`
	Unit          Unit            `gorm:"column:unit" json:"unit"`
	FirstCategory string          `gorm:"column:first_category" json:"first_category"`
}

type ItemSpendFilter struct {
	ExcludeWeightBased bool
}

// ItemHistoryQuery selects one item's purchases, newest first. Nil or empty
// fields do not filter.
type ItemHistoryQuery struct {
	ItemName       string
	IsWeightBased  *bool
	Unit           Unit
	From           *Date
	Before         *Date
	Limit          int
	WithCategories bool
}
