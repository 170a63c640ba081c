package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"chequemate/internal/clock"
	"chequemate/internal/config"
	"chequemate/internal/database"
	"chequemate/internal/handlers"
	"chequemate/internal/middleware"
	"chequemate/internal/repositories"
	"chequemate/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// settlementInterval is how often the background pass re-checks for due
// instruments. The pass is idempotent, so running it well inside a civil day
// only costs one indexed query.
const settlementInterval = time.Hour

func main() {
	// .env is optional; real deployments configure through the environment
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg := config.Load()

	db, err := database.Initialize(cfg)
	if err != nil {
		logger.Error("database initialization failed", "error", err.Error())
		os.Exit(1)
	}

	// Repositories
	userRepo := repositories.NewUserRepository(db)
	accountRepo := repositories.NewAccountRepository(db)
	instrumentRepo := repositories.NewInstrumentRepository(db)

	// Services
	metrics := services.NewPrometheusMetrics()
	clk := clock.NewSystemClock()
	passwordService := services.NewPasswordService(&cfg.Security)
	tokenService := services.NewTokenService(&cfg.JWT)
	authService := services.NewAuthService(userRepo, passwordService, tokenService, metrics, logger)
	accountService := services.NewAccountService(accountRepo, instrumentRepo, logger)
	instrumentService := services.NewInstrumentService(instrumentRepo, accountRepo, metrics, logger)
	forecastService := services.NewForecastService(accountRepo, instrumentRepo, cfg.Forecast, clk, metrics, logger)
	settlementService := services.NewSettlementService(instrumentRepo, userRepo, cfg.Forecast, clk, metrics, logger)
	statementService := services.NewStatementService(accountRepo, instrumentRepo, logger)

	// Handlers
	healthHandler := handlers.NewHealthCheckHandler(db)
	authHandler := handlers.NewAuthHandler(authService, logger)
	accountHandler := handlers.NewAccountHandler(accountService, forecastService, logger)
	instrumentHandler := handlers.NewInstrumentHandler(instrumentService, logger)
	forecastHandler := handlers.NewForecastHandler(forecastService, statementService, logger)
	settlementHandler := handlers.NewSettlementHandler(settlementService, logger)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization},
	}))
	e.Use(middleware.RateLimiterWithConfig(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst))

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1")

	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)

	protected := api.Group("", middleware.RequireAuth(tokenService))
	protected.GET("/auth/me", authHandler.Me)

	protected.POST("/accounts", accountHandler.CreateAccount)
	protected.GET("/accounts", accountHandler.ListAccounts)
	protected.GET("/accounts/:id", accountHandler.GetAccount)
	protected.PATCH("/accounts/:id", accountHandler.UpdateAccount)
	protected.DELETE("/accounts/:id", accountHandler.DeleteAccount)
	protected.GET("/accounts/:id/balance", accountHandler.GetBalance)

	protected.POST("/instruments", instrumentHandler.CreateInstrument)
	protected.GET("/instruments", instrumentHandler.ListInstruments)
	protected.GET("/instruments/:id", instrumentHandler.GetInstrument)
	protected.PATCH("/instruments/:id", instrumentHandler.UpdateInstrument)
	protected.PATCH("/instruments/:id/status", instrumentHandler.UpdateInstrumentStatus)
	protected.DELETE("/instruments/:id", instrumentHandler.DeleteInstrument)

	protected.GET("/accounts/:accountId/forecast", forecastHandler.GetProjection)
	protected.GET("/accounts/:accountId/forecast/month", forecastHandler.GetMonthProjection)
	protected.GET("/accounts/:accountId/forecast/quick", forecastHandler.GetQuickProjection)
	protected.GET("/accounts/:accountId/forecast/day", forecastHandler.GetDayDetail)
	protected.GET("/accounts/:accountId/statement", forecastHandler.GetStatement)
	protected.GET("/accounts/:accountId/summary", forecastHandler.GetAccountSummary)
	protected.GET("/accounts/:accountId/summary/monthly", forecastHandler.GetMonthlyBreakdown)

	protected.POST("/settlements/run", settlementHandler.RunSettlement)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go runSettlementLoop(ctx, settlementService, logger)

	go func() {
		addr := cfg.Server.Host + ":" + cfg.Server.Port
		logger.Info("server starting", "addr", addr, "env", cfg.Server.Environment)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Error("server stopped", "error", err.Error())
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err.Error())
	}
}

// runSettlementLoop periodically settles pending instruments whose due date
// has arrived in their owner's timezone. One pass at startup, then on a
// fixed interval until shutdown.
func runSettlementLoop(ctx context.Context, settlementService services.SettlementServiceInterface, logger *slog.Logger) {
	runOnce := func() {
		result, err := settlementService.SettleDue()
		if err != nil {
			logger.Error("scheduled settlement failed", "error", err.Error())
			return
		}
		if result.Applied > 0 {
			logger.Info("scheduled settlement applied transitions",
				"examined", result.Examined,
				"deducted", result.Deducted,
				"cleared", result.Cleared,
				"applied", result.Applied,
			)
		}
	}

	runOnce()

	ticker := time.NewTicker(settlementInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			runOnce()
		}
	}
}
