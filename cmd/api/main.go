package main

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"capilia/docs"
	"capilia/internal/cache"
	"capilia/internal/config"
	"capilia/internal/database"
	"capilia/internal/database/migration"
	"capilia/internal/database/seed"
	handlers "capilia/internal/http/handler"
	"capilia/internal/http/middleware"
	"capilia/internal/logger"
	"capilia/internal/otel"
	"capilia/internal/repository/sqldb"
	"capilia/internal/service"
	"capilia/internal/storage"
)

// @title Capilia CDMO Analytics API
// @version 1.0
// @description Company location, chemistry and product aggregates, catalog filters and RFQ submission.
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg, err := config.Load()
	if err != nil {
		logger.New("info", nil).WithError(err).Fatal("config_invalid")
	}
	log := logger.New(cfg.LogLevel, cfg.Location())

	if err := run(cfg, log); err != nil {
		log.WithError(err).Fatal("server_failed")
	}
}

func run(cfg *config.AppConfig, log *logrus.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, log)
	if err != nil {
		return err
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := shutdownTracing(sctx); err != nil {
			log.WithError(err).Warn("tracing_shutdown_failed")
		}
	}()

	db, dialect, err := database.Open(cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := prepareDatabase(ctx, db, dialect, cfg, log); err != nil {
		return err
	}

	// Object storage is optional; without it RFQs are stored but not archived.
	var archive storage.Archive
	if cfg.MinIO.Enabled() {
		m, err := storage.NewMinIO(ctx, cfg.MinIO)
		if err != nil {
			return err
		}
		archive = m
	} else {
		log.WithField("component", "storage").Warn("object_storage_disabled")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	aggCache, err := cache.New(cfg.Cache.TTL, cfg.Cache.CleanupInterval, reg)
	if err != nil {
		return err
	}

	statsSvc := service.NewStatsService(sqldb.NewStatsSQL(db, dialect), aggCache)
	rfqSvc := service.NewRFQService(archive, sqldb.NewRFQSQL(db, dialect), cfg.MinIO.PresignExpiry)

	promMiddleware, err := middleware.NewPrometheusMiddleware(reg, "/healthz")
	if err != nil {
		return err
	}

	app := fiber.New(fiber.Config{
		ErrorHandler:          handlers.ErrorHandler(log),
		DisableStartupMessage: true,
	})

	app.Use(otelfiber.Middleware(otelfiber.WithNext(func(c *fiber.Ctx) bool {
		return c.Path() == "/metrics" || c.Path() == "/healthz"
	})))
	app.Use(cors.New())
	// RequestID must run before Logger so every log line carries request_id.
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(log))
	app.Use(promMiddleware.Handler())

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})))

	handlers.RegisterRoutes(app, db, statsSvc, rfqSvc)

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.TrimSpace(strings.Split(proto, ",")[0])
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	errCh := make(chan error, 1)
	go func() {
		log.WithFields(logrus.Fields{"port": cfg.Port, "dialect": string(dialect)}).Info("server_listening")
		errCh <- app.Listen(":" + cfg.Port)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("server_shutting_down")
	if err := app.ShutdownWithTimeout(cfg.ShutdownTimeout); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	aggCache.Flush()
	return nil
}

func prepareDatabase(ctx context.Context, db *sql.DB, d database.Dialect, cfg *config.AppConfig, log *logrus.Logger) error {
	if !cfg.Database.AutoMigrate {
		return nil
	}
	host := cfg.Database.Host
	if d == database.SQLite {
		host = cfg.Database.Path
	}
	if err := migration.EnsureMigrated(ctx, db, d, log, host); err != nil {
		return err
	}
	if !cfg.Database.Seed {
		return nil
	}

	needed, err := seed.Needed(ctx, db)
	if err != nil || !needed {
		return err
	}
	if err := seed.Run(ctx, db, d); err != nil {
		return err
	}
	log.WithField("component", "database").Info("db_seeded")
	return nil
}
