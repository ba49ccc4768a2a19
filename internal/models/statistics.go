package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const LabelNoPreviousMonth = "No Previous Month Data"

type CategoryBreakdownRow struct {
	CategoryName    string          `json:"category_name"`
	TotalSpent      decimal.Decimal `json:"total_spent"`
	ItemCount       int64           `json:"item_count"`
	Percentage      float64         `json:"percentage"`
	AverageItemCost decimal.Decimal `json:"average_item_cost"`
}

type CategoryBreakdown struct {
	Status SectionStatus          `json:"status"`
	Label  string                 `json:"label"`
	Rows   []CategoryBreakdownRow `json:"rows"`
}

type TopItems struct {
	Status SectionStatus `json:"status"`
	Label  string        `json:"label"`
	Period Period        `json:"period"`
	Items  []ItemSpend   `json:"items"`
}

type MonthSummary struct {
	Label     string          `json:"label"`
	Month     Period          `json:"month"`
	Total     decimal.Decimal `json:"total"`
	TopItems  []ItemSpend     `json:"top_items"`
	Available bool            `json:"available"`
}

type MonthOverMonth struct {
	Status     SectionStatus   `json:"status"`
	Latest     MonthSummary    `json:"latest"`
	Previous   MonthSummary    `json:"previous"`
	Difference decimal.Decimal `json:"difference"`
	Change     Comparison      `json:"change"`
}

// StatisticsReport is the long-form statistics view for one scope.
type StatisticsReport struct {
	Scope             Scope             `json:"scope"`
	AnchorDate        Date              `json:"anchor_date"`
	NoPurchaseHistory bool              `json:"no_purchase_history"`
	ErrorMessage      string            `json:"error_message,omitempty"`
	OverallTotal      decimal.Decimal   `json:"overall_total"`
	Categories        CategoryBreakdown `json:"categories"`
	TopItems          TopItems          `json:"top_items"`
	PriceIncreases    PriceAlerts       `json:"price_increases"`
	MonthOverMonth    MonthOverMonth    `json:"month_over_month"`
	Failures          []SectionFailure  `json:"failures"`
	GeneratedAt       time.Time         `json:"generated_at"`
}

func NewEmptyStatisticsReport(scope Scope, status SectionStatus, label string) *StatisticsReport {
	return &StatisticsReport{
		Scope:          scope,
		Categories:     CategoryBreakdown{Status: status, Label: label, Rows: []CategoryBreakdownRow{}},
		TopItems:       TopItems{Status: status, Label: label, Items: []ItemSpend{}},
		PriceIncreases: PriceAlerts{Status: status, Label: label, Alerts: []PriceAlert{}},
		MonthOverMonth: MonthOverMonth{
			Status:   status,
			Latest:   MonthSummary{Label: label, TopItems: []ItemSpend{}},
			Previous: MonthSummary{Label: label, TopItems: []ItemSpend{}},
			Change:   NeutralComparison(),
		},
		Failures:    []SectionFailure{},
		GeneratedAt: time.Now().UTC(),
	}
}

func (r *StatisticsReport) RecordFailure(section string, err error) {
	r.Failures = append(r.Failures, SectionFailure{Section: section, Message: err.Error()})
}
