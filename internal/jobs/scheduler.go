package jobs

import (
	"context"
	"sync"
	"time"

	"subtrack/internal/logger"
	"subtrack/internal/services"
)

// enqueueTimeout bounds a single hand-off to the sink.
const enqueueTimeout = 5 * time.Second

// Scheduler arms generation runs for individual subscriptions and hands them
// to a Sink when they are due. It implements services.GenerationScheduler.
type Scheduler struct {
	sink    Sink
	mu      sync.Mutex
	timers  map[string]*pending
	stopped bool
	now     func() time.Time
}

// pending is one armed run.
type pending struct {
	timer *time.Timer
}

// NewScheduler creates a Scheduler delivering runs to sink.
func NewScheduler(sink Sink) *Scheduler {
	return &Scheduler{
		sink:   sink,
		timers: make(map[string]*pending),
		now:    time.Now,
	}
}

// Dispatch hands req to the sink immediately.
func (s *Scheduler) Dispatch(req services.GenerateRequest) error {
	s.mu.Lock()
	stopped := s.stopped
	s.mu.Unlock()
	if stopped {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), enqueueTimeout)
	defer cancel()
	return s.sink.Enqueue(ctx, req)
}

// ScheduleAt dispatches req at the given time. A later call for the same
// subscription replaces the pending one. Times in the past fire at once.
func (s *Scheduler) ScheduleAt(req services.GenerateRequest, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return
	}

	key := req.SubscriptionID
	if p, ok := s.timers[key]; ok {
		p.timer.Stop()
	}

	delay := at.Sub(s.now())
	if delay < 0 {
		delay = 0
	}

	p := &pending{}
	p.timer = time.AfterFunc(delay, func() {
		s.fire(key, p, req)
	})
	s.timers[key] = p
}

// Cancel disarms the pending run of a subscription, if any.
func (s *Scheduler) Cancel(subscriptionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p, ok := s.timers[subscriptionID]; ok {
		p.timer.Stop()
		delete(s.timers, subscriptionID)
	}
}

// Pending returns the number of armed timers.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}

// Stop disarms every timer. Later calls to Dispatch and ScheduleAt are
// ignored.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopped = true
	for key, p := range s.timers {
		p.timer.Stop()
		delete(s.timers, key)
	}
}

func (s *Scheduler) fire(key string, p *pending, req services.GenerateRequest) {
	s.mu.Lock()
	// A superseded timer can still fire when it expired during replacement.
	if s.timers[key] != p {
		s.mu.Unlock()
		return
	}
	delete(s.timers, key)
	s.mu.Unlock()

	if err := s.Dispatch(req); err != nil {
		logger.Named("jobs").Warnw("failed to dispatch scheduled generation",
			"subscription_id", req.SubscriptionID,
			"error", err,
		)
	}
}
