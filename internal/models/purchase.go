package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Unit is the measurement unit of a purchase. UnitNone marks per-piece items.
type Unit string

const (
	UnitNone       Unit = "N/A"
	UnitGram       Unit = "G"
	UnitKilogram   Unit = "KG"
	UnitMilliliter Unit = "ML"
	UnitLiter      Unit = "L"
)

var (
	ErrItemNameRequired   = errors.New("item name is required")
	ErrInvalidQuantity    = errors.New("quantity must be positive")
	ErrInvalidWeight      = errors.New("weight must not be negative")
	ErrInvalidUnitPrice   = errors.New("unit price must be positive")
	ErrPurchaseDateNeeded = errors.New("purchase date is required")
	ErrTotalPriceMismatch = errors.New("total price does not match quantity, weight and unit price")
)

func AllUnits() []Unit {
	return []Unit{UnitNone, UnitGram, UnitKilogram, UnitMilliliter, UnitLiter}
}

func IsValidUnit(u string) bool {
	for _, unit := range AllUnits() {
		if string(unit) == u {
			return true
		}
	}
	return false
}

// Purchase is one line of a grocery receipt. Rows are append-only facts.
type Purchase struct {
	ID            uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID        uuid.UUID       `gorm:"type:uuid;not null;index:idx_purchases_user_date,priority:1;index:idx_purchases_user_item,priority:1" json:"user_id"`
	ItemName      string          `gorm:"type:varchar(255);not null;index:idx_purchases_user_item,priority:2" json:"item_name"`
	Quantity      int             `gorm:"not null;default:1" json:"quantity"`
	Weight        decimal.Decimal `gorm:"type:decimal(10,3);not null;default:0" json:"weight"`
	Unit          Unit            `gorm:"type:varchar(5);not null;default:'N/A'" json:"unit"`
	PricePerUnit  decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price_per_unit"`
	IsWeightBased bool            `gorm:"not null;default:false" json:"is_weight_based"`
	Shop          string          `gorm:"type:varchar(255)" json:"shop,omitempty"`
	PurchaseDate  Date            `gorm:"not null;index:idx_purchases_user_date,priority:2;index:idx_purchases_user_item,priority:3" json:"purchase_date"`
	TotalPrice    decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total_price"`
	CreatedAt     time.Time       `gorm:"not null" json:"created_at"`

	Categories []Category `gorm:"many2many:purchase_categories;" json:"categories,omitempty"`
}

// TotalFor applies the write-time pricing rule: weight-based lines are
// weight × price rounded to one decimal, everything else quantity × price
// rounded to two.
func TotalFor(isWeightBased bool, quantity int, weight, pricePerUnit decimal.Decimal) decimal.Decimal {
	if isWeightBased {
		return weight.Mul(pricePerUnit).Round(1)
	}
	return decimal.NewFromInt(int64(quantity)).Mul(pricePerUnit).Round(2)
}

// NormalizeItemName is the matching key used for item names.
func NormalizeItemName(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}

func (p *Purchase) BeforeCreate(tx *gorm.DB) error {
	p.ItemName = NormalizeItemName(p.ItemName)
	if p.Unit == "" {
		p.Unit = UnitNone
	}
	if p.Quantity == 0 {
		p.Quantity = 1
	}
	if p.TotalPrice.IsZero() {
		p.TotalPrice = TotalFor(p.IsWeightBased, p.Quantity, p.Weight, p.PricePerUnit)
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}

	return p.Validate()
}

func (p *Purchase) Validate() error {
	if strings.TrimSpace(p.ItemName) == "" {
		return ErrItemNameRequired
	}
	if p.Quantity <= 0 {
		return ErrInvalidQuantity
	}
	if p.Weight.IsNegative() {
		return ErrInvalidWeight
	}
	if !p.PricePerUnit.IsPositive() {
		return ErrInvalidUnitPrice
	}
	if !IsValidUnit(string(p.Unit)) {
		return fmt.Errorf("invalid unit: %s", p.Unit)
	}
	if p.PurchaseDate.IsZero() {
		return ErrPurchaseDateNeeded
	}
	if !p.TotalPrice.Equal(TotalFor(p.IsWeightBased, p.Quantity, p.Weight, p.PricePerUnit)) {
		return ErrTotalPriceMismatch
	}
	return nil
}

func (p *Purchase) TableName() string {
	return "purchases"
}
