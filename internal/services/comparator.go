package services

import (
	"frugalfolio/internal/models"

	"github.com/shopspring/decimal"
)

// deadbandPercent is the band around zero, in percentage points, that is
// reported as neutral rather than an increase or decrease.
const deadbandPercent = 0.1

// Compare derives the percent change from previous to current.
//
// A nil previous means the prior period could not be resolved at all; the
// result then has a nil Percent and is marked unavailable. A zero previous
// with positive current reports 100 (new spending).
func Compare(current float64, previous *float64) models.Comparison {
	if previous == nil {
		return models.NeutralComparison()
	}

	var percent float64
	switch {
	case *previous > 0:
		percent = (current - *previous) / *previous * 100
	case current > 0:
		percent = 100
	default:
		percent = 0
	}

	return models.Comparison{
		Percent:   &percent,
		Direction: directionOf(percent),
		Available: true,
	}
}

// CompareAmounts is Compare for money values.
func CompareAmounts(current decimal.Decimal, previous *decimal.Decimal) models.Comparison {
	if previous == nil {
		return Compare(current.InexactFloat64(), nil)
	}
	prev := previous.InexactFloat64()
	return Compare(current.InexactFloat64(), &prev)
}

func directionOf(percent float64) models.Direction {
	switch {
	case percent > deadbandPercent:
		return models.DirectionIncrease
	case percent < -deadbandPercent:
		return models.DirectionDecrease
	default:
		return models.DirectionNeutral
	}
}

// percentOf returns part as a percentage of whole, zero when whole is zero.
func percentOf(part, whole decimal.Decimal) float64 {
	if !whole.IsPositive() {
		return 0
	}
	return part.Div(whole).Mul(decimal.NewFromInt(100)).Round(2).InexactFloat64()
}
