package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"frugalfolio/internal/config"
	"frugalfolio/internal/database"
	"frugalfolio/internal/handlers"
	"frugalfolio/internal/middleware"
	"frugalfolio/internal/observability"
	"frugalfolio/internal/repositories"
	"frugalfolio/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"
)

const rateLimitCleanupInterval = time.Minute

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	cfg := config.Load()

	logger := observability.NewLogger(cfg.Logging)
	slog.SetDefault(logger)

	db, err := database.Initialize(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	metrics := services.NewPrometheusMetrics(prometheus.DefaultRegisterer)
	breaker := services.NewCircuitBreaker(services.CircuitBreakerConfig{
		MaxFailures:     cfg.Analytics.BreakerFailureThreshold,
		ResetTimeout:    cfg.Analytics.BreakerTimeout,
		HalfOpenMaxSucc: 2,
	})
	purchases := services.NewGuardedPurchaseRepository(repositories.NewPurchaseRepository(db.DB), breaker, metrics)

	grouper := services.NewCategoryGrouper()
	aggregator := services.NewAggregator(purchases, grouper)
	detector := services.NewPriceTrendDetector(purchases, grouper, services.PriceTrendOptionsFromConfig(cfg.Analytics))
	analyticsService := services.NewAnalyticsService(purchases, aggregator, detector, metrics, cfg.Analytics)
	chartService := services.NewChartService(purchases, aggregator, metrics, cfg.Analytics)
	tokenService := services.NewTokenService(&cfg.JWT)
	auditLogger := services.NewAuditLogger(logger)

	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService, metrics)
	chartHandler := handlers.NewChartHandler(chartService, metrics)
	healthHandler := handlers.NewHealthCheckHandler(db.DB, breaker)

	rateLimiter := middleware.NewRateLimiter(cfg.RateLimit)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderAuthorization, echo.HeaderContentType, middleware.TraceIDHeader},
	}))
	e.Use(rateLimiter.Middleware())

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1", middleware.RequireAuth(tokenService), middleware.ResolveScope(auditLogger))
	api.GET("/analytics/dashboard", analyticsHandler.Dashboard)
	api.GET("/analytics/statistics", analyticsHandler.Statistics)
	api.GET("/analytics/charts/monthly", chartHandler.MonthlyTrend)
	api.GET("/analytics/charts/weekly", chartHandler.WeeklyTrend)
	api.GET("/analytics/charts/weekly-3-months", chartHandler.ThreeMonthWeeklyTrend)
	api.GET("/analytics/charts/category-months", chartHandler.CategoryMonthComparison)
	api.GET("/items/price-insight", analyticsHandler.ItemPriceInsight)

	server := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, cfg.Server.Port),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("starting server", "addr", server.Addr, "environment", cfg.Server.Environment)
		if err := e.StartServer(server); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		rateLimiter.Cleanup(gctx, rateLimitCleanupInterval)
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
	logger.Info("server stopped gracefully")
}
