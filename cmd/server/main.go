package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"finance-tracker/internal/config"
	"finance-tracker/internal/database"
	"finance-tracker/internal/handlers"
	"finance-tracker/internal/middleware"
	"finance-tracker/internal/models"
	"finance-tracker/internal/repositories"
	"finance-tracker/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

func main() {
	// .env is optional; real deployments configure through the environment
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	cfg := config.Load()

	logLevel := slog.LevelInfo
	if cfg.Server.Environment == "development" {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})))

	db, err := database.Initialize(cfg)
	if err != nil {
		slog.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}

	e := buildServer(cfg, db)

	go func() {
		addr := cfg.Server.Host + ":" + cfg.Server.Port
		slog.Info("starting server", "addr", addr, "environment", cfg.Server.Environment)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("server stopped", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		slog.Error("graceful shutdown failed", "error", err)
	}
}

// buildServer wires repositories, services, handlers and the middleware
// chain into a configured Echo instance
func buildServer(cfg *config.Config, db *gorm.DB) *echo.Echo {
	// Repositories
	transactionRepo := repositories.NewTransactionRepository(db)
	budgetRepo := repositories.NewBudgetRepository(db)
	goalRepo := repositories.NewGoalRepository(db)
	userRepo := repositories.NewUserRepository(db)

	// Services
	metrics := services.NewPrometheusMetrics()
	tokenService := services.NewTokenService(&cfg.JWT)
	budgetService := services.NewBudgetService(budgetRepo, transactionRepo)
	transactionService := services.NewTransactionService(transactionRepo, budgetService, metrics)
	goalService := services.NewGoalService(goalRepo, metrics)
	insightsService := services.NewInsightsService(transactionRepo, metrics)
	projectionService := services.NewProjectionService(transactionRepo, budgetRepo, metrics)

	if cfg.Seed.Enabled {
		seedSampleData(cfg, userRepo, transactionRepo)
	}

	// Handlers
	healthHandler := handlers.NewHealthCheckHandler(db)
	transactionHandler := handlers.NewTransactionHandler(transactionService)
	budgetHandler := handlers.NewBudgetHandler(budgetService)
	goalHandler := handlers.NewGoalHandler(goalService)
	insightHandler := handlers.NewInsightHandler(insightsService, projectionService)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
	}))
	e.Use(middleware.RateLimiterWithConfig(cfg.Security.RateLimitPerSecond, cfg.Security.RateLimitBurst))

	e.GET("/health", healthHandler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1", middleware.RequireAuth(tokenService))

	api.GET("/transactions", transactionHandler.ListTransactions)
	api.POST("/transactions", transactionHandler.CreateTransaction)
	api.GET("/transactions/:id", transactionHandler.GetTransaction)
	api.PUT("/transactions/:id", transactionHandler.UpdateTransaction)
	api.DELETE("/transactions/:id", transactionHandler.DeleteTransaction)

	api.GET("/budget", budgetHandler.GetBudget)
	api.PUT("/budget", budgetHandler.UpsertBudget)

	api.GET("/goals", goalHandler.ListGoals)
	api.POST("/goals", goalHandler.CreateGoal)
	api.GET("/goals/:id", goalHandler.GetGoal)
	api.POST("/goals/:id/contributions", goalHandler.Contribute)
	api.DELETE("/goals/:id", goalHandler.DeleteGoal)

	api.GET("/insights", insightHandler.GetInsights)
	api.GET("/projection", insightHandler.GetProjection)

	return e
}

// seedSampleData populates a development user's history with generated
// transactions. Skipped when the owner already has data, so restarting the
// server does not multiply the history.
func seedSampleData(cfg *config.Config, userRepo repositories.UserRepositoryInterface, transactionRepo repositories.TransactionRepositoryInterface) {
	email := os.Getenv("SEED_OWNER_EMAIL")
	if email == "" {
		slog.Warn("sample data seeding enabled but SEED_OWNER_EMAIL is not set")
		return
	}

	user, err := userRepo.GetByEmail(email)
	if err != nil {
		slog.Warn("sample data seeding skipped, owner not found", "email", email, "error", err)
		return
	}

	existing, err := transactionRepo.ListByOwner(user.ID, models.TransactionFilters{})
	if err != nil {
		slog.Warn("sample data seeding skipped", "error", err)
		return
	}
	if len(existing) > 0 {
		slog.Info("sample data seeding skipped, owner already has transactions",
			"email", email,
			"transaction_count", len(existing))
		return
	}

	now := time.Now().UTC()
	startDate := now.AddDate(0, -cfg.Seed.HistoryMonths, 0)

	generator := services.NewSampleDataGenerator()
	transactions := generator.GenerateHistory(user.ID, startDate, now, cfg.Seed.TransactionCount)

	created := 0
	for _, transaction := range transactions {
		if err := transactionRepo.Create(transaction); err != nil {
			slog.Warn("failed to seed transaction", "error", err)
			continue
		}
		created++
	}

	slog.Info("sample data seeded", "email", email, "transaction_count", created)
}
