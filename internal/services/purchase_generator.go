package services

import (
	"errors"
	"time"

	"frugalfolio/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// groceryItem is one catalogue entry the generator buys from.
type groceryItem struct {
	Name        string
	Categories  []string
	Unit        models.Unit
	WeightBased bool
	MinPrice    float64
	MaxPrice    float64
	MinWeight   float64
	MaxWeight   float64
}

const (
	tripsPerWeek      = 2
	minItemsPerTrip   = 3
	maxItemsPerTrip   = 9
	priceDriftPercent = 8
)

var ErrInvalidGeneratorRange = errors.New("generator range end is before its start")

type purchaseGenerator struct {
	catalogue []groceryItem
	shops     []string
	faker     *gofakeit.Faker
}

// NewPurchaseGenerator builds a generator. A zero seed picks a random one;
// any other seed makes the output reproducible.
func NewPurchaseGenerator(seed uint64) PurchaseGeneratorInterface {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &purchaseGenerator{
		catalogue: initializeGroceryCatalogue(),
		shops:     []string{"SM Supermarket", "Puregold", "Robinsons Supermarket", "Savemore", "Landers", "Wet Market"},
		faker:     gofakeit.New(seed),
	}
}

func initializeGroceryCatalogue() []groceryItem {
	return []groceryItem{
		// Fresh produce
		{Name: "BANANA", Categories: []string{"FRUIT"}, Unit: models.UnitNone, MinPrice: 8, MaxPrice: 15},
		{Name: "APPLE", Categories: []string{"FRUIT"}, Unit: models.UnitNone, MinPrice: 20, MaxPrice: 35},
		{Name: "TOMATO", Categories: []string{"VEGETABLES"}, Unit: models.UnitKilogram, WeightBased: true, MinPrice: 60, MaxPrice: 120, MinWeight: 0.25, MaxWeight: 1.5},
		{Name: "ONION", Categories: []string{"VEGETABLES", "SPICES"}, Unit: models.UnitKilogram, WeightBased: true, MinPrice: 90, MaxPrice: 180, MinWeight: 0.25, MaxWeight: 1},

		// Meat and seafood
		{Name: "CHICKEN BREAST", Categories: []string{"MEAT"}, Unit: models.UnitKilogram, WeightBased: true, MinPrice: 220, MaxPrice: 290, MinWeight: 0.5, MaxWeight: 2},
		{Name: "PORK BELLY", Categories: []string{"MEAT"}, Unit: models.UnitKilogram, WeightBased: true, MinPrice: 320, MaxPrice: 420, MinWeight: 0.5, MaxWeight: 1.5},
		{Name: "TILAPIA", Categories: []string{"FISH", "SEAFOOD"}, Unit: models.UnitKilogram, WeightBased: true, MinPrice: 130, MaxPrice: 180, MinWeight: 0.5, MaxWeight: 1.5},

		// Dairy and bakery
		{Name: "MILK", Categories: []string{"DAIRY"}, Unit: models.UnitLiter, MinPrice: 85, MaxPrice: 110},
		{Name: "EGGS", Categories: []string{"DAIRY"}, Unit: models.UnitNone, MinPrice: 8, MaxPrice: 11},
		{Name: "PANDESAL", Categories: []string{"BREAD"}, Unit: models.UnitNone, MinPrice: 3, MaxPrice: 6},

		// Pantry
		{Name: "RICE", Categories: []string{"RICE"}, Unit: models.UnitKilogram, WeightBased: true, MinPrice: 48, MaxPrice: 62, MinWeight: 2, MaxWeight: 10},
		{Name: "CORNED BEEF", Categories: []string{"CANNED GOODS"}, Unit: models.UnitGram, MinPrice: 38, MaxPrice: 55},
		{Name: "SPAGHETTI", Categories: []string{"NOODLES-PASTA"}, Unit: models.UnitGram, MinPrice: 45, MaxPrice: 70},
		{Name: "OATS", Categories: []string{"CEREAL"}, Unit: models.UnitGram, MinPrice: 95, MaxPrice: 140},

		// Cooking essentials
		{Name: "COOKING OIL", Categories: []string{"OIL"}, Unit: models.UnitLiter, MinPrice: 95, MaxPrice: 150},
		{Name: "SOY SAUCE", Categories: []string{"CONDIMENTS"}, Unit: models.UnitMilliliter, MinPrice: 25, MaxPrice: 40},
		{Name: "PEANUT BUTTER", Categories: []string{"SPREAD"}, Unit: models.UnitGram, MinPrice: 80, MaxPrice: 130},

		// Beverages and others
		{Name: "INSTANT COFFEE", Categories: []string{"COFFEE", "BEVERAGE"}, Unit: models.UnitGram, MinPrice: 120, MaxPrice: 180},
		{Name: "POTATO CHIPS", Categories: []string{"JUNK FOOD"}, Unit: models.UnitGram, MinPrice: 30, MaxPrice: 60},

		// Household and personal care
		{Name: "DISHWASHING LIQUID", Categories: []string{"HOUSEHOLD SUPPLIES"}, Unit: models.UnitMilliliter, MinPrice: 45, MaxPrice: 80},
		{Name: "LAUNDRY DETERGENT", Categories: []string{"LAUNDRY"}, Unit: models.UnitKilogram, MinPrice: 150, MaxPrice: 240},
		{Name: "SHAMPOO", Categories: []string{"PERSONAL CARE"}, Unit: models.UnitMilliliter, MinPrice: 90, MaxPrice: 170},

		// Miscellaneous, and one item left without any category
		{Name: "CAT FOOD", Categories: []string{"PET FOOD"}, Unit: models.UnitGram, MinPrice: 60, MaxPrice: 95},
		{Name: "BATTERIES", Categories: nil, Unit: models.UnitNone, MinPrice: 40, MaxPrice: 90},
	}
}

// Generate produces shopping trips between from and to, inclusive. Each item
// keeps a base price that drifts a few percent between trips, so price
// increases show up in the history.
func (g *purchaseGenerator) Generate(userID uuid.UUID, from, to models.Date) ([]models.Purchase, error) {
	if to.Before(from) {
		return nil, ErrInvalidGeneratorRange
	}

	basePrices := make(map[string]float64, len(g.catalogue))
	for _, item := range g.catalogue {
		basePrices[item.Name] = g.faker.Price(item.MinPrice, item.MaxPrice)
	}

	var purchases []models.Purchase
	for day := from; !day.After(to); day = day.AddDays(1) {
		if g.faker.IntRange(1, 7) > tripsPerWeek {
			continue
		}

		shop := g.faker.RandomString(g.shops)
		for _, idx := range g.pickItems() {
			item := g.catalogue[idx]
			drift := 1 + float64(g.faker.IntRange(-priceDriftPercent, priceDriftPercent))/100
			basePrices[item.Name] *= drift
			purchases = append(purchases, g.purchaseOf(userID, item, basePrices[item.Name], shop, day))
		}
	}

	return purchases, nil
}

func (g *purchaseGenerator) pickItems() []int {
	count := g.faker.IntRange(minItemsPerTrip, maxItemsPerTrip)
	picked := make(map[int]struct{}, count)
	indexes := make([]int, 0, count)
	for len(indexes) < count && len(indexes) < len(g.catalogue) {
		idx := g.faker.IntRange(0, len(g.catalogue)-1)
		if _, ok := picked[idx]; ok {
			continue
		}
		picked[idx] = struct{}{}
		indexes = append(indexes, idx)
	}
	return indexes
}

func (g *purchaseGenerator) purchaseOf(userID uuid.UUID, item groceryItem, price float64, shop string, day models.Date) models.Purchase {
	purchase := models.Purchase{
		UserID:        userID,
		ItemName:      item.Name,
		Quantity:      1,
		Weight:        decimal.Zero,
		Unit:          item.Unit,
		PricePerUnit:  decimal.NewFromFloat(price).Round(moneyPlaces),
		IsWeightBased: item.WeightBased,
		Shop:          shop,
		PurchaseDate:  day,
	}

	if item.WeightBased {
		purchase.Weight = decimal.NewFromFloat(g.faker.Float64Range(item.MinWeight, item.MaxWeight)).Round(weightPlaces)
	} else {
		purchase.Quantity = g.faker.IntRange(1, 4)
	}
	if !purchase.PricePerUnit.IsPositive() {
		purchase.PricePerUnit = decimal.NewFromFloat(item.MinPrice)
	}
	purchase.TotalPrice = models.TotalFor(purchase.IsWeightBased, purchase.Quantity, purchase.Weight, purchase.PricePerUnit)

	for _, name := range item.Categories {
		purchase.Categories = append(purchase.Categories, models.Category{Name: name})
	}
	return purchase
}
