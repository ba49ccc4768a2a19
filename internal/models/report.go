package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Direction string

const (
	DirectionIncrease Direction = "increase"
	DirectionDecrease Direction = "decrease"
	DirectionNeutral  Direction = "neutral"
)

// Comparison is a period-over-period change. Percent is nil when the prior
// period could not be resolved, which is not the same as a zero change.
type Comparison struct {
	Percent   *float64  `json:"percent"`
	Direction Direction `json:"direction"`
	Available bool      `json:"available"`
}

// SectionStatus says why a report section holds what it holds.
type SectionStatus string

const (
	SectionOK          SectionStatus = "ok"
	SectionNoData      SectionStatus = "no_data"
	SectionUnavailable SectionStatus = "unavailable"
)

const (
	LabelNoPurchaseHistory = "No purchase data found for your account."
	LabelNoData            = "No data for this period"
	LabelUnavailable       = "Temporarily unavailable"
	LabelDetailsNA         = "Details N/A"
)

type WeeklySpend struct {
	Status        SectionStatus   `json:"status"`
	Label         string          `json:"label"`
	LatestWeek    Period          `json:"latest_week"`
	PreviousWeek  Period          `json:"previous_week"`
	LatestTotal   decimal.Decimal `json:"latest_total"`
	PreviousTotal decimal.Decimal `json:"previous_total"`
	Change        Comparison      `json:"change"`
}

type AverageWeeklySpend struct {
	Status        SectionStatus   `json:"status"`
	Label         string          `json:"label"`
	Period        Period          `json:"period"`
	Average       decimal.Decimal `json:"average"`
	WeeksWithData int             `json:"weeks_with_data"`
}

type MonthTotal struct {
	Label     string          `json:"label"`
	Month     Period          `json:"month"`
	Total     decimal.Decimal `json:"total"`
	Available bool            `json:"available"`
}

type MonthlyBlockComparison struct {
	Status              SectionStatus   `json:"status"`
	RecentBlock         Period          `json:"recent_block"`
	PriorBlock          Period          `json:"prior_block"`
	RecentAverage       decimal.Decimal `json:"recent_average"`
	PriorAverage        decimal.Decimal `json:"prior_average"`
	RecentLabel         string          `json:"recent_label"`
	PriorLabel          string          `json:"prior_label"`
	Tooltip             string          `json:"tooltip"`
	Change              Comparison      `json:"change"`
	MostRecentFullMonth MonthTotal      `json:"most_recent_full_month"`
}

type TopIncreaseGroup struct {
	Status          SectionStatus   `json:"status"`
	Label           string          `json:"label"`
	Period          Period          `json:"period"`
	GroupName       string          `json:"group_name"`
	AverageIncrease decimal.Decimal `json:"avg_increase"`
	ItemCount       int             `json:"item_count"`
}

// ItemSpend is an item's spend and purchase count within one period.
type ItemSpend struct {
	ItemName      string          `json:"item_name"`
	TotalSpent    decimal.Decimal `json:"total_spent"`
	PurchaseCount int64           `json:"purchase_count"`
	Available     bool            `json:"available"`
}

type ItemHighlight struct {
	Status         SectionStatus `json:"status"`
	Label          string        `json:"label"`
	LatestWindow   Period        `json:"latest_window"`
	PreviousWindow Period        `json:"previous_window"`
	Latest         ItemSpend     `json:"latest"`
	Previous       ItemSpend     `json:"previous"`
}

type GroupShare struct {
	GroupName  string          `json:"group_name"`
	TotalSpent decimal.Decimal `json:"total_spent"`
	Percentage float64         `json:"percentage"`
	Available  bool            `json:"available"`
}

type GroupHighlight struct {
	Status        SectionStatus `json:"status"`
	Label         string        `json:"label"`
	LatestWeek    Period        `json:"latest_week"`
	PreviousWeek  Period        `json:"previous_week"`
	MostLatest    GroupShare    `json:"most_popular_group_latest"`
	LeastLatest   GroupShare    `json:"least_popular_group_latest"`
	MostPrevious  GroupShare    `json:"most_popular_group_previous"`
	LeastPrevious GroupShare    `json:"least_popular_group_previous"`
}

type PriceAlert struct {
	ItemName      string          `json:"item_name"`
	Unit          Unit            `json:"unit"`
	IsWeightBased bool            `json:"is_weight_based"`
	OldPrice      decimal.Decimal `json:"old_price"`
	OldDate       Date            `json:"old_date"`
	NewPrice      decimal.Decimal `json:"new_price"`
	NewDate       Date            `json:"new_date"`
	Difference    decimal.Decimal `json:"difference"`
}

type PriceAlerts struct {
	Status SectionStatus `json:"status"`
	Label  string        `json:"label"`
	Period Period        `json:"period"`
	Alerts []PriceAlert  `json:"alerts"`
}

type SectionFailure struct {
	Section string `json:"section"`
	Message string `json:"message"`
}

// AnalyticsReport is the dashboard view for one scope. Every section is
// always present; Status and Label explain empty ones.
type AnalyticsReport struct {
	Scope             Scope                  `json:"scope"`
	AnchorDate        Date                   `json:"anchor_date"`
	NoPurchaseHistory bool                   `json:"no_purchase_history"`
	ErrorMessage      string                 `json:"error_message,omitempty"`
	Weekly            WeeklySpend            `json:"weekly"`
	AverageWeekly     AverageWeeklySpend     `json:"average_weekly"`
	MonthlyBlocks     MonthlyBlockComparison `json:"monthly_blocks"`
	TopIncreaseGroup  TopIncreaseGroup       `json:"top_increase_group"`
	MostSpentItem     ItemHighlight          `json:"most_spent_item"`
	MostBoughtItem    ItemHighlight          `json:"most_bought_item"`
	CategoryGroups    GroupHighlight         `json:"category_groups"`
	PriceAlerts       PriceAlerts            `json:"price_alerts"`
	Failures          []SectionFailure       `json:"failures"`
	GeneratedAt       time.Time              `json:"generated_at"`
}

// NewEmptyAnalyticsReport returns a report whose sections all carry the
// given status and label.
func NewEmptyAnalyticsReport(scope Scope, status SectionStatus, label string) *AnalyticsReport {
	neutral := NeutralComparison()
	return &AnalyticsReport{
		Scope:            scope,
		Weekly:           WeeklySpend{Status: status, Label: label, Change: neutral},
		AverageWeekly:    AverageWeeklySpend{Status: status, Label: label},
		MonthlyBlocks:    MonthlyBlockComparison{Status: status, RecentLabel: label, PriorLabel: label, Tooltip: LabelDetailsNA, Change: neutral, MostRecentFullMonth: MonthTotal{Label: label}},
		TopIncreaseGroup: TopIncreaseGroup{Status: status, Label: label},
		MostSpentItem:    ItemHighlight{Status: status, Label: label},
		MostBoughtItem:   ItemHighlight{Status: status, Label: label},
		CategoryGroups:   GroupHighlight{Status: status, Label: label},
		PriceAlerts:      PriceAlerts{Status: status, Label: label, Alerts: []PriceAlert{}},
		Failures:         []SectionFailure{},
		GeneratedAt:      time.Now().UTC(),
	}
}

// NeutralComparison is the comparison used when there is nothing to compare.
func NeutralComparison() Comparison {
	return Comparison{Direction: DirectionNeutral}
}

func (r *AnalyticsReport) RecordFailure(section string, err error) {
	r.Failures = append(r.Failures, SectionFailure{Section: section, Message: err.Error()})
}
