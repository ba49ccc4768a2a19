package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"frugalfolio/internal/errors"
	"frugalfolio/internal/models"
	"frugalfolio/internal/services"
	"frugalfolio/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ChartHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	echo        *echo.Echo
	mockService *service_mocks.MockChartServiceInterface
	mockMetrics *service_mocks.MockMetricsRecorderInterface
	handler     *ChartHandler
	scope       models.Scope
}

func TestChartHandlerSuite(t *testing.T) {
	suite.Run(t, new(ChartHandlerTestSuite))
}

func (s *ChartHandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.echo = echo.New()
	s.mockService = service_mocks.NewMockChartServiceInterface(s.ctrl)
	s.mockMetrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)
	s.handler = NewChartHandler(s.mockService, s.mockMetrics)
	s.scope = models.UserScope(uuid.New())
}

func (s *ChartHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ChartHandlerTestSuite) newContext(scope *models.Scope) (echo.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(httptest.NewRequest(http.MethodGet, "/api/v1/charts", nil), rec)
	if scope != nil {
		c.Set(ScopeContextKey, *scope)
	}
	return c, rec
}

func (s *ChartHandlerTestSuite) trendChart(kind models.ChartKind) *models.TrendChart {
	return &models.TrendChart{
		Kind:   kind,
		Status: models.SectionOK,
		Points: []models.ChartPoint{
			{Label: "Jan 2024", Value: decimal.NewFromInt(300)},
			{Label: "Feb 2024", Value: decimal.NewFromInt(100)},
		},
	}
}

func (s *ChartHandlerTestSuite) TestTrendCharts_Success() {
	testCases := []struct {
		kind   models.ChartKind
		expect func() *gomock.Call
		serve  func(echo.Context) error
	}{
		{models.ChartMonthly, func() *gomock.Call { return s.mockService.EXPECT().MonthlyTrend(gomock.Any(), s.scope) }, s.handler.MonthlyTrend},
		{models.ChartWeekly, func() *gomock.Call { return s.mockService.EXPECT().WeeklyTrend(gomock.Any(), s.scope) }, s.handler.WeeklyTrend},
		{models.ChartWeeklyThreeMonth, func() *gomock.Call { return s.mockService.EXPECT().ThreeMonthWeeklyTrend(gomock.Any(), s.scope) }, s.handler.ThreeMonthWeeklyTrend},
	}

	for _, tc := range testCases {
		s.Run(string(tc.kind), func() {
			tc.expect().Return(s.trendChart(tc.kind), nil)
			s.mockMetrics.EXPECT().IncrementCounter("api.served", map[string]string{"endpoint": "chart_" + string(tc.kind)})

			c, rec := s.newContext(&s.scope)
			s.Require().NoError(tc.serve(c))

			s.Equal(http.StatusOK, rec.Code)
			s.Contains(rec.Body.String(), fmt.Sprintf(`"kind":"%s"`, tc.kind))
			s.Contains(rec.Body.String(), `"label":"Feb 2024"`)
		})
	}
}

func (s *ChartHandlerTestSuite) TestCategoryMonthComparison_Success() {
	chart := &models.CategoryMonthChart{
		Kind:           models.ChartCategoryMonths,
		Status:         models.SectionOK,
		Labels:         []string{models.GroupFreshProduce, models.GroupMeatSeafood},
		LatestValues:   []decimal.Decimal{decimal.NewFromInt(40), decimal.Zero},
		PreviousValues: []decimal.Decimal{decimal.Zero, decimal.NewFromInt(90)},
	}
	s.mockService.EXPECT().CategoryMonthComparison(gomock.Any(), s.scope).Return(chart, nil)
	s.mockMetrics.EXPECT().IncrementCounter("api.served", map[string]string{"endpoint": "chart_category_months"})

	c, rec := s.newContext(&s.scope)
	s.Require().NoError(s.handler.CategoryMonthComparison(c))

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"all_labels":["Fresh Produce","Meat \u0026 Seafood"]`)
}

func (s *ChartHandlerTestSuite) TestChartErrors() {
	testCases := []struct {
		name    string
		err     error
		status  int
		code    errors.ErrorCode
		counted bool
	}{
		{"invalid scope", fmt.Errorf("failed to load monthly totals: %w", models.ErrInvalidScope), http.StatusBadRequest, errors.AnalyticsInvalidScope, false},
		{"circuit open", fmt.Errorf("failed to load monthly totals: %w", services.ErrCircuitBreakerOpen), http.StatusServiceUnavailable, errors.AnalyticsStoreUnavailable, true},
		{"query failed", fmt.Errorf("failed to load monthly totals: connection reset"), http.StatusServiceUnavailable, errors.AnalyticsChartUnavailable, true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.mockService.EXPECT().MonthlyTrend(gomock.Any(), s.scope).Return(nil, tc.err)
			if tc.counted {
				s.mockMetrics.EXPECT().IncrementCounter("api.failed", map[string]string{"endpoint": "chart_monthly"})
			}

			c, rec := s.newContext(&s.scope)
			s.Require().NoError(s.handler.MonthlyTrend(c))

			s.Equal(tc.status, rec.Code)
			s.Contains(rec.Body.String(), string(tc.code))
			s.NotContains(rec.Body.String(), "connection reset")
		})
	}
}

func (s *ChartHandlerTestSuite) TestMissingScope() {
	c, rec := s.newContext(nil)
	s.Require().NoError(s.handler.WeeklyTrend(c))

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Contains(rec.Body.String(), string(errors.AuthMissingToken))
}
