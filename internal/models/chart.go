package models

import "github.com/shopspring/decimal"

type ChartKind string

const (
	ChartMonthly          ChartKind = "monthly"
	ChartWeekly           ChartKind = "weekly"
	ChartWeeklyThreeMonth ChartKind = "weekly_3_months"
	ChartCategoryMonths   ChartKind = "category_months"
)

// ChartPoint is one labelled bucket of a trend series.
type ChartPoint struct {
	Label string          `json:"label"`
	Value decimal.Decimal `json:"value"`
}

// TrendHeadline summarises a series: the last two buckets and the extremes.
type TrendHeadline struct {
	Available     bool            `json:"available"`
	Latest        decimal.Decimal `json:"latest"`
	LatestLabel   string          `json:"latest_label"`
	Previous      decimal.Decimal `json:"previous"`
	PreviousLabel string          `json:"previous_label"`
	Change        Comparison      `json:"change"`
	High          decimal.Decimal `json:"high"`
	HighLabel     string          `json:"high_label"`
	Low           decimal.Decimal `json:"low"`
	LowLabel      string          `json:"low_label"`
}

type TrendChart struct {
	Kind     ChartKind     `json:"kind"`
	Status   SectionStatus `json:"status"`
	Label    string        `json:"label"`
	Period   Period        `json:"period"`
	Points   []ChartPoint  `json:"points"`
	Headline TrendHeadline `json:"headline"`
}

// CategoryMonthChart compares group totals of two calendar months. Labels is
// the sorted union of groups seen in either month; both value slices align to it.
type CategoryMonthChart struct {
	Kind           ChartKind         `json:"kind"`
	Status         SectionStatus     `json:"status"`
	Label          string            `json:"label"`
	LatestMonth    Period            `json:"latest_month"`
	PreviousMonth  Period            `json:"previous_month"`
	Labels         []string          `json:"all_labels"`
	LatestValues   []decimal.Decimal `json:"latest_values"`
	PreviousValues []decimal.Decimal `json:"previous_values"`
}

func NewEmptyTrendChart(kind ChartKind, status SectionStatus, label string) *TrendChart {
	return &TrendChart{
		Kind:     kind,
		Status:   status,
		Label:    label,
		Points:   []ChartPoint{},
		Headline: TrendHeadline{Change: NeutralComparison()},
	}
}

func NewEmptyCategoryMonthChart(status SectionStatus, label string) *CategoryMonthChart {
	return &CategoryMonthChart{
		Kind:           ChartCategoryMonths,
		Status:         status,
		Label:          label,
		Labels:         []string{},
		LatestValues:   []decimal.Decimal{},
		PreviousValues: []decimal.Decimal{},
	}
}
