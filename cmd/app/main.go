package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sendit/cmd"
	httpadapter "sendit/internal/adapters/in/http"
	"sendit/internal/adapters/out/postgres/deliveryrepo"
	"sendit/internal/adapters/out/postgres/raterepo"
	"sendit/internal/adapters/out/postgres/riderrepo"
	"sendit/internal/adapters/out/postgres/userrepo"
	"sendit/internal/core/domain/model/kernel"
	"sendit/internal/core/domain/model/pricing"
	"sendit/internal/generated/servers"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const baseURL = "/api/v1"

// Default rates applied when the rate table is empty on first boot.
const (
	defaultPricePerKm = 50
	defaultPricePerKg = 30
	defaultPricePerCm = 5
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	configs := getConfigs(logger)

	gormDB, err := openDatabase(configs)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	if err = migrate(gormDB); err != nil {
		logger.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	if err = seedRateTable(gormDB); err != nil {
		logger.Error("failed to seed rate table", "error", err)
		os.Exit(1)
	}

	root := cmd.NewCompositionRoot(configs, gormDB, logger)

	jobManager := root.CreateJobManager(reminderAge(configs, logger))
	if err = jobManager.StartAll(); err != nil {
		logger.Error("failed to start jobs", "error", err)
		os.Exit(1)
	}
	defer jobManager.StopAll()

	startWebServer(root, configs.HTTPPort, logger)
}

func getConfigs(logger *slog.Logger) cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		logger.Info("no .env file found, relying on environment")
	}

	return cmd.Config{
		HTTPPort:            envOr("HTTP_PORT", "8080"),
		DBHost:              envOr("DB_HOST", "localhost"),
		DBPort:              envOr("DB_PORT", "5432"),
		DBUser:              envOr("DB_USER", "postgres"),
		DBPassword:          envOr("DB_PASSWORD", "postgres"),
		DBName:              envOr("DB_NAME", "sendit"),
		DBSslMode:           envOr("DB_SSLMODE", "disable"),
		JWTSecret:           envOr("JWT_SECRET", "dev-secret-change-me"),
		EmailHost:           envOr("EMAIL_HOST", "localhost"),
		EmailPort:           envOr("EMAIL_PORT", "1025"),
		EmailUsername:       os.Getenv("EMAIL_USERNAME"),
		EmailPassword:       os.Getenv("EMAIL_PASSWORD"),
		EmailFrom:           envOr("EMAIL_FROM", "noreply@sendit.local"),
		PendingReminderCron: envOr("PENDING_REMINDER_CRON", "0 0 * * * *"),
		PendingReminderAge:  envOr("PENDING_REMINDER_AGE", "24h"),
	}
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func reminderAge(configs cmd.Config, logger *slog.Logger) time.Duration {
	age, err := time.ParseDuration(configs.PendingReminderAge)
	if err != nil || age <= 0 {
		logger.Warn("invalid PENDING_REMINDER_AGE, using 24h", "value", configs.PendingReminderAge)
		return 24 * time.Hour
	}
	return age
}

func openDatabase(configs cmd.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		configs.DBHost, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBPort, configs.DBSslMode,
	)
	return gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userrepo.UserDTO{},
		&riderrepo.RiderDTO{},
		&deliveryrepo.DeliveryDTO{},
		&raterepo.RateTableDTO{},
	)
}

// seedRateTable installs the default rates so pricing works out of the box.
// An already configured table is left alone.
func seedRateTable(db *gorm.DB) error {
	repo := raterepo.NewGormRateTableRepository(db)

	ctx := context.Background()
	if _, err := repo.Current(ctx); err == nil {
		return nil
	}

	rate, err := pricing.NewRateTable(
		kernel.NewUUID(), defaultPricePerKm, defaultPricePerKg, defaultPricePerCm,
	)
	if err != nil {
		return err
	}

	return repo.Add(ctx, rate)
}

func startWebServer(root cmd.CompositionRoot, port string, logger *slog.Logger) {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(httpadapter.AuthMiddleware(root.CreateTokenService()))

	servers.RegisterHandlersWithBaseURL(e, root.CreateServer(), baseURL)

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil {
			logger.Info("http server stopped", "error", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}
}
