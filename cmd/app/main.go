package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"logistics/cmd"
	httpadapter "logistics/internal/adapters/in/http"
	"logistics/internal/adapters/out/postgres/migrations"
	"logistics/internal/core/ports"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	gormpg "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	configs := getConfigs()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gormDB := mustOpenDatabase(configs)

	app, err := cmd.NewCompositionRoot(ctx, configs, gormDB, logger)
	if err != nil {
		log.Fatalf("failed to build application: %v", err)
	}
	defer func() {
		if err := app.Close(); err != nil {
			logger.Error("failed to release connections", "error", err)
		}
	}()

	var wg sync.WaitGroup
	for _, r := range app.Runners() {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := r.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				logger.Error("background runner stopped", "runner", r.Name, "error", err)
			}
		}()
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	app.Orchestrator().Trigger(ports.RefreshManual)

	startWebServer(ctx, app, configs.HTTPPort, logger)

	stop()
	wg.Wait()
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	return cmd.Config{
		HTTPPort:               os.Getenv("HTTP_PORT"),
		DBHost:                 os.Getenv("DB_HOST"),
		DBPort:                 os.Getenv("DB_PORT"),
		DBUser:                 os.Getenv("DB_USER"),
		DBPassword:             os.Getenv("DB_PASSWORD"),
		DBName:                 os.Getenv("DB_NAME"),
		DBSslMode:              os.Getenv("DB_SSLMODE"),
		RedisAddr:              os.Getenv("REDIS_ADDR"),
		EventBus:               os.Getenv("EVENT_BUS"),
		KafkaHost:              os.Getenv("KAFKA_HOST"),
		KafkaConsumerGroup:     os.Getenv("KAFKA_CONSUMER_GROUP"),
		KafkaOrderChangedTopic: os.Getenv("KAFKA_ORDER_CHANGED_TOPIC"),
		RabbitMQURL:            os.Getenv("RABBITMQ_URL"),
		RabbitMQExchange:       os.Getenv("RABBITMQ_EXCHANGE"),
		CoveragePollSchedule:   os.Getenv("COVERAGE_POLL_SCHEDULE"),
		EscalationScanSchedule: os.Getenv("ESCALATION_SCAN_SCHEDULE"),
	}
}

func mustOpenDatabase(configs cmd.Config) *gorm.DB {
	gormDB, err := gorm.Open(gormpg.Open(configs.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	if err = migrations.Up(sqlDB); err != nil {
		log.Fatalf("failed to apply migrations: %v", err)
	}

	return gormDB
}

func startWebServer(ctx context.Context, app *cmd.CompositionRoot, port string, logger *slog.Logger) {
	server := httpadapter.NewServer(app.CreateHTTPHandlers(), logger)

	e, err := httpadapter.NewRouter(server, logger)
	if err != nil {
		log.Fatalf("failed to build router: %v", err)
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			logger.Error("http shutdown failed", "error", err)
		}
	}()

	if err = e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
		e.Logger.Fatal(err)
	}
}
