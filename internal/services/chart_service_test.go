package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"frugalfolio/internal/config"
	"frugalfolio/internal/database"
	"frugalfolio/internal/models"
	"frugalfolio/internal/repositories"
	"frugalfolio/internal/repositories/repository_mocks"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type ChartServiceTestSuite struct {
	suite.Suite
	db      *database.DB
	metrics *recordingMetrics
	service ChartServiceInterface
	ctx     context.Context
	userID  uuid.UUID
	scope   models.Scope
}

func TestChartServiceSuite(t *testing.T) {
	suite.Run(t, new(ChartServiceTestSuite))
}

func (s *ChartServiceTestSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.metrics = newRecordingMetrics()
	repo := repositories.NewPurchaseRepository(s.db.DB)
	s.service = NewChartService(repo, NewAggregator(repo, NewCategoryGrouper()), s.metrics, config.LoadAnalytics())
	s.ctx = context.Background()
	s.userID = database.CreateTestUser(s.T(), s.db, gofakeit.Username()).ID
	s.scope = models.UserScope(s.userID)
}

func (s *ChartServiceTestSuite) buy(item string, on models.Date, price string, categories ...string) database.TestPurchase {
	return database.TestPurchase{UserID: s.userID, ItemName: item, Date: on, Price: price, Categories: categories}
}

func (s *ChartServiceTestSuite) TestMonthlyTrend() {
	database.CreateTestPurchases(s.T(), s.db,
		s.buy("RICE", date(2023, time.November, 3), "200"),
		s.buy("RICE", date(2023, time.November, 20), "100"),
		s.buy("RICE", date(2024, time.January, 8), "450"),
		s.buy("RICE", date(2024, time.February, 8), "150"),
	)

	chart, err := s.service.MonthlyTrend(s.ctx, s.scope)
	s.Require().NoError(err)

	s.Equal(models.ChartMonthly, chart.Kind)
	s.Equal(models.SectionOK, chart.Status)
	s.Equal("All time", chart.Label)
	s.Require().Len(chart.Points, 3, "months without purchases are not plotted")
	s.Equal("Nov 2023", chart.Points[0].Label)
	s.True(money("300").Equal(chart.Points[0].Value))
	s.Equal("Jan 2024", chart.Points[1].Label)
	s.Equal("Feb 2024", chart.Points[2].Label)

	h := chart.Headline
	s.True(h.Available)
	s.Equal("Feb 2024", h.LatestLabel)
	s.Equal("Jan 2024", h.PreviousLabel)
	s.InDelta(-66.67, *h.Change.Percent, 0.01)
	s.Equal(models.DirectionDecrease, h.Change.Direction)
	s.Equal("Jan 2024", h.HighLabel)
	s.Equal("Feb 2024", h.LowLabel)
	s.Equal(1, s.metrics.count("chart.built", map[string]string{"kind": "monthly", "status": "ok"}))
}

func (s *ChartServiceTestSuite) TestWeeklyTrend_WindowAndLabels() {
	database.CreateTestPurchases(s.T(), s.db,
		s.buy("EGGS", date(2023, time.November, 1), "999"),
		s.buy("EGGS", date(2024, time.January, 29), "80"),
		s.buy("EGGS", date(2024, time.February, 1), "20"),
		s.buy("EGGS", date(2024, time.February, 7), "60"),
	)

	chart, err := s.service.WeeklyTrend(s.ctx, s.scope)
	s.Require().NoError(err)

	s.Equal("2023-11-20", chart.Period.Start.String())
	s.Equal("2024-02-07", chart.Period.End.String())
	s.Require().Len(chart.Points, 2)
	s.Equal("2024-W05", chart.Points[0].Label)
	s.True(money("100").Equal(chart.Points[0].Value))
	s.Equal("2024-W06", chart.Points[1].Label)
	s.InDelta(-40.0, *chart.Headline.Change.Percent, 0.001)
}

func (s *ChartServiceTestSuite) TestThreeMonthWeeklyTrend_HighLowTies() {
	database.CreateTestPurchases(s.T(), s.db,
		s.buy("BREAD", date(2024, time.January, 2), "50"),
		s.buy("BREAD", date(2024, time.January, 9), "90"),
		s.buy("BREAD", date(2024, time.January, 16), "50"),
		s.buy("BREAD", date(2024, time.January, 23), "90"),
	)

	chart, err := s.service.ThreeMonthWeeklyTrend(s.ctx, s.scope)
	s.Require().NoError(err)

	s.Equal(models.ChartWeeklyThreeMonth, chart.Kind)
	s.Equal("2023-10-23", chart.Period.Start.String())
	s.Require().Len(chart.Points, 4)
	s.Equal("W01", chart.Points[0].Label)
	s.Equal("W02", chart.Headline.HighLabel)
	s.Equal("W01", chart.Headline.LowLabel)
}

func (s *ChartServiceTestSuite) TestSinglePointHasNoComparison() {
	database.CreateTestPurchases(s.T(), s.db, s.buy("MILK", date(2024, time.March, 4), "90"))

	chart, err := s.service.WeeklyTrend(s.ctx, s.scope)
	s.Require().NoError(err)
	s.Require().Len(chart.Points, 1)
	s.True(chart.Headline.Available)
	s.Nil(chart.Headline.Change.Percent)
	s.Empty(chart.Headline.PreviousLabel)
}

func (s *ChartServiceTestSuite) TestCategoryMonthComparison() {
	database.CreateTestPurchases(s.T(), s.db,
		s.buy("APPLES", date(2024, time.February, 10), "120", "FRUIT"),
		s.buy("TILAPIA", date(2024, time.February, 12), "200", "FISH"),
		s.buy("TILAPIA", date(2024, time.March, 2), "220", "FISH"),
		s.buy("SOAP", date(2024, time.March, 5), "60", "LAUNDRY"),
		s.buy("BATTERIES", date(2024, time.March, 6), "500"),
	)

	chart, err := s.service.CategoryMonthComparison(s.ctx, s.scope)
	s.Require().NoError(err)

	s.Equal(models.SectionOK, chart.Status)
	s.Equal("Mar 2024 vs Feb 2024", chart.Label)
	s.Equal([]string{models.GroupFreshProduce, models.GroupHouseholdPersonal, models.GroupMeatSeafood}, chart.Labels)
	s.NotContains(chart.Labels, models.GroupMiscellaneous, "uncategorized spend belongs to no group")
	s.Require().Len(chart.LatestValues, 3)
	s.Require().Len(chart.PreviousValues, 3)
	s.True(chart.LatestValues[0].IsZero())
	s.True(money("120").Equal(chart.PreviousValues[0]))
	s.True(money("60").Equal(chart.LatestValues[1]))
	s.True(chart.PreviousValues[1].IsZero())
	s.True(money("220").Equal(chart.LatestValues[2]))
	s.True(money("200").Equal(chart.PreviousValues[2]))
}

func (s *ChartServiceTestSuite) TestNoPurchaseHistory() {
	trend, err := s.service.MonthlyTrend(s.ctx, s.scope)
	s.Require().NoError(err)
	s.Equal(models.SectionNoData, trend.Status)
	s.Equal(models.LabelNoPurchaseHistory, trend.Label)
	s.NotNil(trend.Points)

	categories, err := s.service.CategoryMonthComparison(s.ctx, s.scope)
	s.Require().NoError(err)
	s.Equal(models.LabelNoPurchaseHistory, categories.Label)
	s.NotNil(categories.Labels)
}

func (s *ChartServiceTestSuite) TestInvalidScope() {
	_, err := s.service.WeeklyTrend(s.ctx, models.Scope{})
	s.ErrorIs(err, models.ErrInvalidScope)
}

func TestChartService_StorageErrorIsReturned(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := repository_mocks.NewMockPurchaseRepositoryInterface(ctrl)
	scope := models.UserScope(uuid.New())
	anchor := date(2024, time.March, 4)
	repo.EXPECT().LatestPurchaseDate(gomock.Any(), scope, gomock.Nil()).Return(&anchor, nil)
	repo.EXPECT().DailyTotals(gomock.Any(), scope, gomock.Any()).Return(nil, errors.New("connection refused"))

	service := NewChartService(repo, NewAggregator(repo, NewCategoryGrouper()), newRecordingMetrics(), config.LoadAnalytics())
	chart, err := service.MonthlyTrend(context.Background(), scope)

	assert.Nil(t, chart)
	assert.ErrorContains(t, err, "connection refused")
}
