package repositories

import (
	"frugalfolio/internal/models"

	"gorm.io/gorm"
)

// withinScope compiles a scope into a parameterized user predicate on the
// given table alias. The all-users scope adds no predicate.
func withinScope(scope models.Scope, alias string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if scope.AllUsers {
			return db
		}
		return db.Where(alias+".user_id = ?", scope.UserID)
	}
}

// withinPeriod bounds purchase_date to the inclusive period. A zero period
// adds no predicate.
func withinPeriod(period models.Period, alias string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if period.IsZero() {
			return db
		}
		return db.Where(alias+".purchase_date BETWEEN ? AND ?", period.Start, period.End)
	}
}
