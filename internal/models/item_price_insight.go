package models

import "github.com/shopspring/decimal"

// ItemPriceInsight describes an item's most recent purchase and how its price
// compares with the last comparable purchase before it.
type ItemPriceInsight struct {
	ItemName       string          `json:"item_name"`
	Status         SectionStatus   `json:"status"`
	Label          string          `json:"label"`
	LatestPrice    decimal.Decimal `json:"latest_price"`
	LatestDate     Date            `json:"latest_date"`
	Quantity       int             `json:"quantity"`
	Unit           Unit            `json:"unit"`
	IsWeightBased  bool            `json:"is_weight_based"`
	AverageWeight  decimal.Decimal `json:"average_weight"`
	Shop           string          `json:"shop"`
	Categories     []string        `json:"categories"`
	HasPrevious    bool            `json:"has_previous"`
	PreviousPrice  decimal.Decimal `json:"previous_price"`
	PreviousDate   Date            `json:"previous_date"`
	PriceIncreased bool            `json:"price_increased"`
	Difference     decimal.Decimal `json:"difference"`
}
