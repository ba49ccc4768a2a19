package services

import (
	"sort"

	"frugalfolio/internal/models"

	"github.com/shopspring/decimal"
)

type tally struct {
	sum   decimal.Decimal
	count int64
}

// groupAccumulator folds amounts into per-key running sums and counts.
type groupAccumulator struct {
	tallies map[string]*tally
}

func newGroupAccumulator() *groupAccumulator {
	return &groupAccumulator{tallies: make(map[string]*tally)}
}

func (a *groupAccumulator) Add(key string, amount decimal.Decimal, count int64) {
	t, ok := a.tallies[key]
	if !ok {
		t = &tally{}
		a.tallies[key] = t
	}
	t.sum = t.sum.Add(amount)
	t.count += count
}

func (a *groupAccumulator) Len() int {
	return len(a.tallies)
}

// Average returns sum/count for key, zero for unknown keys.
func (a *groupAccumulator) Average(key string) decimal.Decimal {
	t, ok := a.tallies[key]
	if !ok || t.count == 0 {
		return decimal.Zero
	}
	return t.sum.Div(decimal.NewFromInt(t.count)).Round(moneyPlaces)
}

// Rows returns one row per key, sorted by key.
func (a *groupAccumulator) Rows() []models.SpendRow {
	rows := make([]models.SpendRow, 0, len(a.tallies))
	for key, t := range a.tallies {
		rows = append(rows, models.SpendRow{Name: key, Total: t.sum, PurchaseCount: t.count})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Name < rows[j].Name })
	return rows
}
