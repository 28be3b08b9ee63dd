package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"subtrack/internal/config"
	"subtrack/internal/database"
	"subtrack/internal/jobs"
	"subtrack/internal/logger"
	"subtrack/internal/metrics"
	"subtrack/internal/notify"
	"subtrack/internal/queue"
	"subtrack/internal/services"
)

// The worker consumes generation requests published by the API and runs the
// periodic sweep. It is only needed when AMQP_URL is set.
func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Worker error: %v", err)
	}
}

func run() error {
	log := logger.Named("worker")

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if !cfg.QueueEnabled() {
		return errors.New("AMQP_URL is required to run the worker")
	}

	dbConfig, err := database.NewConfig(cfg)
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer dbManager.Close()

	var notifier notify.Notifier = notify.Nop{}
	if cfg.TelegramBotToken != "" && cfg.TelegramChatID != 0 {
		tg, err := notify.NewTelegramNotifier(cfg.TelegramBotToken, cfg.TelegramChatID)
		if err != nil {
			log.Warnw("Telegram notifications disabled", "error", err)
		} else {
			notifier = tg
		}
	}

	db := dbManager.DB()
	transactionService := services.NewTransactionService(db)
	workerMetrics := metrics.New()
	generator := services.NewGeneratorService(db, transactionService, services.NewPreferenceService(db),
		workerMetrics, notify.NewGenerationReporter(notifier))

	client, err := queue.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
	if err != nil {
		return fmt.Errorf("failed to connect to job queue: %w", err)
	}
	defer client.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return client.Consume(ctx, func(ctx context.Context, msg *queue.GenerateMessage) error {
			result, err := generator.Generate(ctx, msg.Request())
			if err != nil {
				return err
			}
			log.Infow("generation request handled",
				"subscription_id", msg.SubscriptionID,
				"created", result.Created,
				"skipped", result.Skipped,
			)
			return nil
		})
	})
	g.Go(func() error {
		return jobs.RunPeriodically(ctx, generator, cfg.GeneratorInterval)
	})

	ln, err := net.Listen("tcp", ":"+cfg.MetricsPort)
	if err != nil {
		return fmt.Errorf("failed to listen for metrics: %w", err)
	}
	g.Go(func() error {
		log.Infow("serving metrics", "addr", ln.Addr().String())
		return workerMetrics.Serve(ctx, ln)
	})

	log.Infow("worker started", "queue", cfg.AMQPQueue, "interval", cfg.GeneratorInterval)
	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	log.Info("worker stopped")
	return nil
}
