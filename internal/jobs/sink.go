// Package jobs runs transaction generation outside the request path.
package jobs

import (
	"context"
	"sync"

	apperrors "subtrack/internal/errors"
	"subtrack/internal/logger"
	"subtrack/internal/services"
)

// Sink accepts generation runs for later execution.
type Sink interface {
	Enqueue(ctx context.Context, req services.GenerateRequest) error
}

// LocalSink executes generation runs on a fixed pool of goroutines fed by a
// bounded channel.
type LocalSink struct {
	generator services.GeneratorServicer
	queue     chan services.GenerateRequest
	mu        sync.RWMutex
	closed    bool
	wg        sync.WaitGroup
}

// NewLocalSink starts workers goroutines that pass queued requests to the
// generator. The channel holds up to capacity pending requests.
func NewLocalSink(generator services.GeneratorServicer, workers, capacity int) *LocalSink {
	if workers < 1 {
		workers = 1
	}
	if capacity < 1 {
		capacity = 1
	}

	s := &LocalSink{
		generator: generator,
		queue:     make(chan services.GenerateRequest, capacity),
	}

	for i := 0; i < workers; i++ {
		s.wg.Add(1)
		go s.work(i)
	}
	return s
}

// Enqueue queues req without blocking. It returns ErrQueueFull when the
// channel is at capacity and ErrUnavailable after Close.
func (s *LocalSink) Enqueue(ctx context.Context, req services.GenerateRequest) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return apperrors.ErrUnavailable
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case s.queue <- req:
		return nil
	default:
		return apperrors.ErrQueueFull
	}
}

// Close stops accepting work, lets the workers finish what is queued and
// waits for them.
func (s *LocalSink) Close() {
	s.mu.Lock()
	if !s.closed {
		s.closed = true
		close(s.queue)
	}
	s.mu.Unlock()
	s.wg.Wait()
}

func (s *LocalSink) work(id int) {
	defer s.wg.Done()
	log := logger.Named("jobs")

	for req := range s.queue {
		if _, err := s.generator.Generate(context.Background(), req); err != nil {
			log.Errorw("generation run failed",
				"worker", id,
				"subscription_id", req.SubscriptionID,
				"error", err,
			)
		}
	}
}
