package jobs

import (
	"context"
	"time"

	"subtrack/internal/logger"
	"subtrack/internal/services"
)

// RunPeriodically calls the generator for today once at start and then on
// every tick of interval until ctx is cancelled.
func RunPeriodically(ctx context.Context, generator services.GeneratorServicer, interval time.Duration) error {
	log := logger.Named("jobs")
	log.Infow("periodic transaction generation started", "interval", interval)

	run := func() {
		if _, err := generator.Generate(ctx, services.GenerateRequest{}); err != nil {
			log.Errorw("periodic generation run failed", "error", err)
		}
	}

	run()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info("periodic transaction generation stopped")
			return nil
		case <-ticker.C:
			run()
		}
	}
}
