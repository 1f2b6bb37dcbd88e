package main

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/terraincognita07/emotrack/internal/api"
	"github.com/terraincognita07/emotrack/internal/config"
	"github.com/terraincognita07/emotrack/internal/metrics"
	"gorm.io/gorm"
)

func newApp(cfg *config.Config, database *gorm.DB, registry *prometheus.Registry) (*fiber.App, error) {
	app := fiber.New(fiber.Config{
		AppName:               "Emotrack",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())

	options := api.Options{
		SecretKey:  cfg.SecretKey,
		Algorithm:  cfg.Algorithm,
		TokenTTL:   cfg.TokenTTL,
		BcryptCost: cfg.BcryptCost,
	}
	if cfg.MetricsEnabled && registry != nil {
		collector := metrics.NewCollector(registry)
		app.Use(collector.Middleware())
		app.Get("/metrics", metrics.Handler(registry))
		options.ActivityObserver = collector
		options.LoginObserver = collector
	}

	handler, err := api.NewHandler(database, options)
	if err != nil {
		return nil, fmt.Errorf("handler init failed: %w", err)
	}
	api.RegisterRoutes(app, handler)
	return app, nil
}
