package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"contribution-tracker/api"
	"contribution-tracker/internal/config"
	"contribution-tracker/internal/database"
	"contribution-tracker/internal/handler"
	"contribution-tracker/internal/metrics"
	"contribution-tracker/internal/repository"
	"contribution-tracker/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

func main() {
	// Логгер
	logger := logrus.New()
	logger.SetLevel(logrus.InfoLevel)
	logger.SetFormatter(&logrus.JSONFormatter{})

	// Конфиг
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Warnf("Config loaded with warnings: %v", err)
	}
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(level)
	} else {
		logger.Warnf("Unknown LOG_LEVEL %q, using info", cfg.LogLevel)
	}

	// База данных (database/sql)
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		logger.Fatalf("Database connection failed: %v", err)
	}
	defer db.Close()
	logger.Info("Database connected")

	// SQLC queries
	queries := database.New(db)

	// Метрики
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	statsMetrics := metrics.NewStatsCollector(registry, cfg.MetricsEnabled)

	// Репозитории
	statsRepo := repository.NewStatsRepository(db, queries)
	contributionRepo := repository.NewContributionRepository(queries)
	projectRepo := repository.NewProjectRepository(queries)

	// Хранилище статистики
	statsStore := usecase.NewStatsStore(
		statsRepo,
		usecase.WithMaxAttempts(cfg.StatsMaxAttempts),
		usecase.WithApplyTimeout(cfg.StatsApplyTimeout),
		usecase.WithRecorder(statsMetrics),
		usecase.WithLogger(logger),
	)
	clock := usecase.SystemClock{}

	// Use Cases
	contributionUC := usecase.NewContributionUseCase(contributionRepo, statsStore, clock, usecase.ContributionSettings{
		OutOfOrderPolicy: usecase.OutOfOrderPolicy(cfg.OutOfOrderPolicy),
		PageLimit:        cfg.ContributionsPageLimit,
	})
	projectUC := usecase.NewProjectUseCase(projectRepo, statsStore, clock)
	statsUC := usecase.NewStatsUseCase(statsRepo, statsStore, clock, cfg.LeaderboardLimit)

	// Echo + Handlers
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(handler.LoggingMiddleware(logger))
	e.Use(handler.IdentityMiddleware(handler.HeaderIdentityProvider{}))

	// Handlers
	apiHandler := handler.NewAPIHandler(contributionUC, projectUC, statsUC, logger)
	api.RegisterHandlers(e, apiHandler)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})
	if cfg.MetricsEnabled {
		e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry})))
	}

	// Запуск сервера
	go func() {
		if err := e.Start(":" + cfg.ServerPort); err != nil {
			logger.Infof("Server stopped: %v", err)
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Info("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Fatalf("Shutdown failed: %v", err)
	}

	logger.Info("Server exited")
}
