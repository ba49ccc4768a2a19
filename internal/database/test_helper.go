package database

import (
	"testing"
	"time"

	"frugalfolio/internal/config"
	"frugalfolio/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB opens a migrated in-memory sqlite database. The pool is pinned
// to one connection because every new sqlite :memory: connection is a fresh,
// empty database.
func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		_ = testDB.Close()
	})

	return testDB
}

// TestPurchase describes one fixture row; zero fields get sensible defaults.
type TestPurchase struct {
	UserID        uuid.UUID
	ItemName      string
	Date          models.Date
	Price         string
	Quantity      int
	Weight        string
	Unit          models.Unit
	IsWeightBased bool
	Shop          string
	Categories    []string
}

func (tp TestPurchase) toModel() models.Purchase {
	quantity := tp.Quantity
	if quantity == 0 {
		quantity = 1
	}
	weight := decimal.Zero
	if tp.Weight != "" {
		weight = decimal.RequireFromString(tp.Weight)
	}
	unit := tp.Unit
	if unit == "" {
		unit = models.UnitNone
	}
	price := decimal.RequireFromString(tp.Price)

	categories := make([]models.Category, 0, len(tp.Categories))
	for _, name := range tp.Categories {
		categories = append(categories, models.Category{Name: name})
	}

	return models.Purchase{
		UserID:        tp.UserID,
		ItemName:      tp.ItemName,
		Quantity:      quantity,
		Weight:        weight,
		Unit:          unit,
		PricePerUnit:  price,
		IsWeightBased: tp.IsWeightBased,
		Shop:          tp.Shop,
		PurchaseDate:  tp.Date,
		TotalPrice:    models.TotalFor(tp.IsWeightBased, quantity, weight, price),
		CreatedAt:     time.Now(),
		Categories:    categories,
	}
}

// CreateTestPurchases inserts the fixtures in order, so later fixtures get
// higher ids.
func CreateTestPurchases(t *testing.T, db *DB, fixtures ...TestPurchase) []models.Purchase {
	t.Helper()

	purchases := make([]models.Purchase, 0, len(fixtures))
	for _, f := range fixtures {
		purchases = append(purchases, f.toModel())
	}

	if err := db.InsertPurchases(purchases); err != nil {
		t.Fatalf("failed to create test purchases: %v", err)
	}
	return purchases
}

func CreateTestUser(t *testing.T, db *DB, username string) *models.User {
	t.Helper()

	user, err := db.SeedUser(username, models.RoleUser)
	if err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}
