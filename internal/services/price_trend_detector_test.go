package services

import (
	"context"
	"testing"
	"time"

	"frugalfolio/internal/database"
	"frugalfolio/internal/models"
	"frugalfolio/internal/repositories"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type PriceTrendDetectorTestSuite struct {
	suite.Suite
	db       *database.DB
	detector PriceTrendDetectorInterface
	ctx      context.Context
	userID   uuid.UUID
	otherID  uuid.UUID
	scope    models.Scope
}

func TestPriceTrendDetectorSuite(t *testing.T) {
	suite.Run(t, new(PriceTrendDetectorTestSuite))
}

func (s *PriceTrendDetectorTestSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.detector = NewPriceTrendDetector(repositories.NewPurchaseRepository(s.db.DB), NewCategoryGrouper(), DefaultPriceTrendOptions())
	s.ctx = context.Background()
	s.userID = database.CreateTestUser(s.T(), s.db, gofakeit.Username()).ID
	s.otherID = database.CreateTestUser(s.T(), s.db, gofakeit.Username()+"-2").ID
	s.scope = models.UserScope(s.userID)
}

func date(year int, month time.Month, d int) models.Date {
	return models.NewDate(year, month, d)
}

func (s *PriceTrendDetectorTestSuite) buy(item string, on models.Date, price string, unit models.Unit, categories ...string) database.TestPurchase {
	return database.TestPurchase{UserID: s.userID, ItemName: item, Date: on, Price: price, Unit: unit, Shop: "Puregold", Categories: categories}
}

func (s *PriceTrendDetectorTestSuite) TestDetectIncreases_SingleAlert() {
	database.CreateTestPurchases(s.T(), s.db,
		s.buy("MILK", date(2024, time.January, 1), "60", models.UnitLiter, "DAIRY"),
		s.buy("MILK", date(2024, time.March, 1), "75", models.UnitLiter, "DAIRY"),
	)

	section, err := s.detector.DetectIncreases(s.ctx, s.scope, date(2024, time.March, 1), 5)
	s.Require().NoError(err)
	s.Equal(models.SectionOK, section.Status)
	s.Require().Len(section.Alerts, 1)

	alert := section.Alerts[0]
	s.Equal("MILK", alert.ItemName)
	s.True(money("60").Equal(alert.OldPrice))
	s.Equal("2024-01-01", alert.OldDate.String())
	s.True(money("75").Equal(alert.NewPrice))
	s.Equal("2024-03-01", alert.NewDate.String())
	s.True(money("15.00").Equal(alert.Difference))
}

func (s *PriceTrendDetectorTestSuite) TestDetectIncreases_DifferentUnitsAreNotCompared() {
	database.CreateTestPurchases(s.T(), s.db,
		s.buy("MILK", date(2024, time.January, 1), "60", models.UnitMilliliter, "DAIRY"),
		s.buy("MILK", date(2024, time.March, 1), "75", models.UnitLiter, "DAIRY"),
	)

	section, err := s.detector.DetectIncreases(s.ctx, s.scope, date(2024, time.March, 1), 5)
	s.Require().NoError(err)
	s.Empty(section.Alerts)
	s.Equal(models.SectionNoData, section.Status)
}

func (s *PriceTrendDetectorTestSuite) TestDetectIncreases_DifferentWeightBasisIsNotCompared() {
	perPiece := s.buy("TOMATO", date(2024, time.February, 1), "20", models.UnitKilogram)
	byWeight := s.buy("TOMATO", date(2024, time.March, 1), "90", models.UnitKilogram)
	byWeight.IsWeightBased = true
	byWeight.Weight = "0.5"
	database.CreateTestPurchases(s.T(), s.db, perPiece, byWeight)

	section, err := s.detector.DetectIncreases(s.ctx, s.scope, date(2024, time.March, 1), 5)
	s.Require().NoError(err)
	s.Empty(section.Alerts)
}

func (s *PriceTrendDetectorTestSuite) TestDetectIncreases_ComparesAgainstHighestEarlierPrice() {
	database.CreateTestPurchases(s.T(), s.db,
		s.buy("EGGS", date(2024, time.January, 5), "9", models.UnitNone),
		s.buy("EGGS", date(2024, time.January, 20), "10", models.UnitNone),
		s.buy("EGGS", date(2024, time.February, 10), "10", models.UnitNone),
		s.buy("EGGS", date(2024, time.February, 25), "8", models.UnitNone),
		s.buy("EGGS", date(2024, time.March, 1), "11", models.UnitNone),
	)

	section, err := s.detector.DetectIncreases(s.ctx, s.scope, date(2024, time.March, 1), 5)
	s.Require().NoError(err)
	s.Require().Len(section.Alerts, 1)
	s.True(money("10").Equal(section.Alerts[0].OldPrice))
	s.Equal("2024-02-10", section.Alerts[0].OldDate.String(), "the most recent of the tied highest prices")
	s.True(money("1").Equal(section.Alerts[0].Difference))
}

func (s *PriceTrendDetectorTestSuite) TestDetectIncreases_IgnoresDecreasesAndNegligibleChanges() {
	database.CreateTestPurchases(s.T(), s.db,
		s.buy("BREAD", date(2024, time.February, 1), "50", models.UnitNone),
		s.buy("BREAD", date(2024, time.March, 1), "45", models.UnitNone),
		s.buy("SALT", date(2024, time.February, 1), "20.00", models.UnitNone),
		s.buy("SALT", date(2024, time.March, 1), "20.01", models.UnitNone),
	)

	section, err := s.detector.DetectIncreases(s.ctx, s.scope, date(2024, time.March, 1), 5)
	s.Require().NoError(err)
	s.Empty(section.Alerts)
}

func (s *PriceTrendDetectorTestSuite) TestDetectIncreases_SortedAndCapped() {
	database.CreateTestPurchases(s.T(), s.db,
		s.buy("A-ITEM", date(2024, time.January, 10), "10", models.UnitNone),
		s.buy("A-ITEM", date(2024, time.February, 20), "15", models.UnitNone),
		s.buy("B-ITEM", date(2024, time.January, 10), "10", models.UnitNone),
		s.buy("B-ITEM", date(2024, time.February, 25), "15", models.UnitNone),
		s.buy("C-ITEM", date(2024, time.January, 10), "10", models.UnitNone),
		s.buy("C-ITEM", date(2024, time.February, 1), "40", models.UnitNone),
		s.buy("D-ITEM", date(2024, time.January, 10), "10", models.UnitNone),
		s.buy("D-ITEM", date(2024, time.February, 20), "15", models.UnitNone),
	)

	section, err := s.detector.DetectIncreases(s.ctx, s.scope, date(2024, time.February, 25), 3)
	s.Require().NoError(err)
	s.Require().Len(section.Alerts, 3)
	s.Equal("C-ITEM", section.Alerts[0].ItemName)
	s.Equal("B-ITEM", section.Alerts[1].ItemName, "equal difference, later date first")
	s.Equal("A-ITEM", section.Alerts[2].ItemName, "equal difference and date, name ascending")
}

func (s *PriceTrendDetectorTestSuite) TestDetectIncreases_RespectsScopeAndLookback() {
	other := s.buy("MILK", date(2024, time.February, 1), "10", models.UnitLiter)
	other.UserID = s.otherID
	database.CreateTestPurchases(s.T(), s.db,
		other,
		s.buy("MILK", date(2024, time.March, 1), "75", models.UnitLiter),
		s.buy("COFFEE", date(2023, time.June, 1), "100", models.UnitGram),
		s.buy("COFFEE", date(2023, time.July, 1), "150", models.UnitGram),
	)

	section, err := s.detector.DetectIncreases(s.ctx, s.scope, date(2024, time.March, 1), 5)
	s.Require().NoError(err)
	s.Empty(section.Alerts, "other users' history and purchases outside the lookback are ignored")

	all, err := s.detector.DetectIncreases(s.ctx, models.AllUsersScope(), date(2024, time.March, 1), 5)
	s.Require().NoError(err)
	s.Require().Len(all.Alerts, 1)
	s.True(money("65").Equal(all.Alerts[0].Difference))
}

func (s *PriceTrendDetectorTestSuite) TestTopIncreaseGroup_UsesAverageNotTotal() {
	database.CreateTestPurchases(s.T(), s.db,
		// Pantry Staples: three small increases, 3 in total.
		s.buy("RICE", date(2024, time.January, 5), "50", models.UnitNone, "RICE"),
		s.buy("RICE", date(2024, time.March, 1), "51", models.UnitNone, "RICE"),
		s.buy("OATS", date(2024, time.January, 5), "90", models.UnitNone, "CEREAL"),
		s.buy("OATS", date(2024, time.March, 1), "91", models.UnitNone, "CEREAL"),
		s.buy("SARDINES", date(2024, time.January, 5), "20", models.UnitNone, "CANNED GOODS"),
		s.buy("SARDINES", date(2024, time.March, 1), "21", models.UnitNone, "CANNED GOODS"),
		// Meat & Seafood: one item up by 2.
		s.buy("TILAPIA", date(2024, time.January, 5), "150", models.UnitNone, "FISH"),
		s.buy("TILAPIA", date(2024, time.March, 1), "152", models.UnitNone, "FISH", "SEAFOOD"),
	)

	section, err := s.detector.TopIncreaseGroup(s.ctx, s.scope, date(2024, time.March, 1))
	s.Require().NoError(err)
	s.Equal(models.SectionOK, section.Status)
	s.Equal(models.GroupMeatSeafood, section.GroupName)
	s.True(money("2").Equal(section.AverageIncrease))
	s.Equal(1, section.ItemCount)
}

func (s *PriceTrendDetectorTestSuite) TestTopIncreaseGroup_SkipsUncategorizedItems() {
	database.CreateTestPurchases(s.T(), s.db,
		s.buy("BATTERIES", date(2024, time.January, 5), "100", models.UnitNone),
		s.buy("BATTERIES", date(2024, time.March, 1), "180", models.UnitNone),
		s.buy("RICE", date(2024, time.January, 5), "50", models.UnitNone, "RICE"),
		s.buy("RICE", date(2024, time.March, 1), "53", models.UnitNone, "RICE"),
	)

	section, err := s.detector.TopIncreaseGroup(s.ctx, s.scope, date(2024, time.March, 1))
	s.Require().NoError(err)
	s.Equal(models.GroupPantryStaples, section.GroupName)
	s.True(money("3").Equal(section.AverageIncrease))
	s.Equal(1, section.ItemCount)

	alerts, err := s.detector.DetectIncreases(s.ctx, s.scope, date(2024, time.March, 1), 5)
	s.Require().NoError(err)
	s.Require().Len(alerts.Alerts, 2, "price alerts still cover uncategorized items")
	s.Equal("BATTERIES", alerts.Alerts[0].ItemName)
}

func (s *PriceTrendDetectorTestSuite) TestTopIncreaseGroup_NoIncreases() {
	database.CreateTestPurchases(s.T(), s.db,
		s.buy("RICE", date(2024, time.March, 1), "51", models.UnitNone, "RICE"),
	)

	section, err := s.detector.TopIncreaseGroup(s.ctx, s.scope, date(2024, time.March, 1))
	s.Require().NoError(err)
	s.Equal(models.SectionNoData, section.Status)
	s.Empty(section.GroupName)
}

func (s *PriceTrendDetectorTestSuite) TestItemPriceInsight_WeightBased() {
	first := s.buy("pork belly", date(2024, time.January, 15), "320", models.UnitKilogram, "MEAT")
	first.IsWeightBased, first.Weight = true, "1.0"
	second := s.buy("PORK BELLY", date(2024, time.February, 15), "330", models.UnitKilogram, "MEAT")
	second.IsWeightBased, second.Weight = true, "0.5"
	latest := s.buy("PORK BELLY", date(2024, time.March, 10), "350", models.UnitKilogram, "MEAT")
	latest.IsWeightBased, latest.Weight = true, "1.5"
	database.CreateTestPurchases(s.T(), s.db, first, second, latest)

	insight, err := s.detector.ItemPriceInsight(s.ctx, s.scope, "  pork belly ")
	s.Require().NoError(err)
	s.Equal("PORK BELLY", insight.ItemName)
	s.Equal(models.SectionOK, insight.Status)
	s.True(money("350").Equal(insight.LatestPrice))
	s.Equal("2024-03-10", insight.LatestDate.String())
	s.True(money("1").Equal(insight.AverageWeight))
	s.Equal([]string{"MEAT"}, insight.Categories)
	s.True(insight.HasPrevious)
	s.True(money("330").Equal(insight.PreviousPrice))
	s.Equal("2024-02-15", insight.PreviousDate.String())
	s.True(insight.PriceIncreased)
	s.True(money("20").Equal(insight.Difference))
}

func (s *PriceTrendDetectorTestSuite) TestItemPriceInsight_NoHistory() {
	insight, err := s.detector.ItemPriceInsight(s.ctx, s.scope, "dragon fruit")
	s.Require().NoError(err)
	s.Equal(models.SectionNoData, insight.Status)
	s.False(insight.HasPrevious)
	s.NotNil(insight.Categories)
}

func (s *PriceTrendDetectorTestSuite) TestItemPriceInsight_RequiresName() {
	_, err := s.detector.ItemPriceInsight(s.ctx, s.scope, "   ")
	s.ErrorIs(err, models.ErrItemNameRequired)
}
