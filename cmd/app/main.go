package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"restaurant/cmd"
	httpadapter "restaurant/internal/adapters/in/http"
	"restaurant/internal/adapters/out/postgres"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func main() {
	configs := getConfigs()

	appLogger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: configs.SlogLevel()}))
	slog.SetDefault(appLogger)

	gormDB := mustOpenDB(configs)
	if err := postgres.Migrate(gormDB); err != nil {
		log.Fatalf("Error migrating database schema: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, gormDB, appLogger)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}

	serveErr := startWebServer(app, configs.HTTPPort, appLogger)
	jobManager.StopAll()
	if serveErr != nil {
		appLogger.Error("HTTP server stopped", "error", serveErr)
		os.Exit(1)
	}
}

func getConfigs() cmd.Config {
	// .env is optional; real environment variables win.
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	config := cmd.Config{
		HTTPPort:              envOrDefault("HTTP_PORT", "8082"),
		DBHost:                os.Getenv("DB_HOST"),
		DBPort:                envOrDefault("DB_PORT", "5432"),
		DBUser:                os.Getenv("DB_USER"),
		DBPassword:            os.Getenv("DB_PASSWORD"),
		DBName:                os.Getenv("DB_NAME"),
		DBSslMode:             os.Getenv("DB_SSLMODE"),
		LogLevel:              os.Getenv("LOG_LEVEL"),
		BacklogReportSchedule: os.Getenv("BACKLOG_REPORT_SCHEDULE"),
	}
	return config
}

func envOrDefault(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func mustOpenDB(configs cmd.Config) *gorm.DB {
	gormDB, err := gorm.Open(postgresdriver.Open(configs.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		log.Fatalf("Error getting database handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	return gormDB
}

// startWebServer serves until SIGINT/SIGTERM or a listener failure and returns
// the failure, so callers can stop background jobs before exiting.
func startWebServer(app cmd.CompositionRoot, port string, appLogger *slog.Logger) error {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	e, err := httpadapter.NewRouter(app.CreateHTTPServer(), httpadapter.NewMetrics(registry), appLogger)
	if err != nil {
		return fmt.Errorf("build router: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		appLogger.Info("HTTP server listening", "port", port)
		if startErr := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); startErr != nil && !errors.Is(startErr, http.ErrServerClosed) {
			errCh <- startErr
		}
	}()

	select {
	case err = <-errCh:
		return fmt.Errorf("listen on port %s: %w", port, err)
	case <-ctx.Done():
	}
	appLogger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err = e.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("HTTP server shutdown failed", "error", err)
	}
	return nil
}
