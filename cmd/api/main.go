package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"subtrack/internal/config"
	"subtrack/internal/database"
	"subtrack/internal/docs"
	"subtrack/internal/jobs"
	"subtrack/internal/logger"
	"subtrack/internal/metrics"
	"subtrack/internal/notify"
	"subtrack/internal/queue"
	"subtrack/internal/server"
	"subtrack/internal/services"
	"subtrack/internal/validator"
)

// @title           Subtrack API
// @version         1.0
// @description     Subtrack tracks recurring subscriptions, generates their charges and reports spending against budgets.

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
// @description Pipeline key for the machine-triggered job endpoints.

// localQueueCapacity bounds the in-process generation queue.
const localQueueCapacity = 256

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if appConfig.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	dbConfig, err := database.NewConfig(appConfig)
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer dbManager.Close()

	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	validator.Register()
	appMetrics := metrics.New()

	var notifier notify.Notifier = notify.Nop{}
	if appConfig.TelegramBotToken != "" && appConfig.TelegramChatID != 0 {
		tg, err := notify.NewTelegramNotifier(appConfig.TelegramBotToken, appConfig.TelegramChatID)
		if err != nil {
			log.Warnw("Telegram notifications disabled", "error", err)
		} else {
			notifier = tg
		}
	}

	db := dbManager.DB()
	transactionService := services.NewTransactionService(db)
	categoryService := services.NewCategoryService(db)
	preferenceService := services.NewPreferenceService(db)
	generatorService := services.NewGeneratorService(db, transactionService, preferenceService,
		appMetrics, notify.NewGenerationReporter(notifier))

	// Generation runs go through RabbitMQ when configured and are executed by
	// cmd/worker; otherwise this process runs them on its own worker pool.
	var sink jobs.Sink
	var closeSink func()
	if appConfig.QueueEnabled() {
		client, err := queue.NewClient(appConfig.AMQPURL, appConfig.AMQPExchange, appConfig.AMQPQueue)
		if err != nil {
			return fmt.Errorf("failed to connect to job queue: %w", err)
		}
		sink = client
		closeSink = func() {
			if err := client.Close(); err != nil {
				log.Warnw("failed to close job queue", "error", err)
			}
		}
	} else {
		local := jobs.NewLocalSink(generatorService, appConfig.GeneratorWorkers, localQueueCapacity)
		sink = local
		closeSink = local.Close
	}
	scheduler := jobs.NewScheduler(sink)

	router := server.NewRouter(server.Services{
		Subscriptions: services.NewSubscriptionService(db, transactionService, scheduler),
		Categories:    categoryService,
		Preferences:   preferenceService,
		Budget:        services.NewBudgetService(db, transactionService, preferenceService, categoryService),
		Transactions:  transactionService,
		Dashboard:     services.NewDashboardService(db, transactionService, preferenceService, categoryService),
		Audit:         services.NewAuditService(db),
		Jobs:          scheduler,
	}, server.Options{
		CORSOrigins:    appConfig.CORSOrigins,
		EnablePprof:    appConfig.EnablePprof,
		PipelineAPIKey: appConfig.PipelineAPIKey,
		Metrics:        appMetrics,
	})

	docs.SwaggerInfo.Host = "localhost:" + appConfig.Port

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if !appConfig.QueueEnabled() {
		go func() {
			if err := jobs.RunPeriodically(ctx, generatorService, appConfig.GeneratorInterval); err != nil {
				log.Errorw("periodic generation stopped", "error", err)
			}
		}()
	}

	srv := &http.Server{
		Addr:              ":" + appConfig.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Infof("Starting Subtrack server on port %s", appConfig.Port)
		log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
	case <-ctx.Done():
		log.Info("Shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Warnw("graceful shutdown failed", "error", err)
	}

	scheduler.Stop()
	closeSink()
	log.Info("Server stopped")
	return nil
}
