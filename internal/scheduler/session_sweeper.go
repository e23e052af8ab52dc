package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/MrSnakeDoc/marketmarket/internal/logger"
	"github.com/MrSnakeDoc/marketmarket/internal/metrics"
)

const (
	// DefaultSweepInterval is used when no interval is configured
	DefaultSweepInterval = 5 * time.Minute
)

// Sweepable is a session store that drops expired entries on demand.
type Sweepable interface {
	Sweep(now time.Time) int
}

// SessionSweeper periodically evicts expired sessions from an in-memory store
type SessionSweeper struct {
	store    Sweepable
	logger   logger.Logger
	metrics  *metrics.Metrics
	interval time.Duration
	now      func() time.Time

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewSessionSweeper creates a new sweeper. m may be nil.
func NewSessionSweeper(store Sweepable, log logger.Logger, m *metrics.Metrics, interval time.Duration) *SessionSweeper {
	if interval <= 0 {
		interval = DefaultSweepInterval
	}

	return &SessionSweeper{
		store:    store,
		logger:   log,
		metrics:  m,
		interval: interval,
		now:      time.Now,
		stopCh:   make(chan struct{}),
	}
}

// Start begins the periodic sweep. It returns immediately; the loop ends
// on Stop or when ctx is cancelled.
func (s *SessionSweeper) Start(ctx context.Context) {
	s.logger.Info("session sweeper started", logger.Duration("interval", s.interval))

	ticker := time.NewTicker(s.interval)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.Sweep()
			case <-s.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Stop ends the sweep loop and waits for it to exit. Safe to call twice.
func (s *SessionSweeper) Stop() {
	s.stopOnce.Do(func() { close(s.stopCh) })
	s.wg.Wait()
}

// Sweep runs one eviction pass and returns how many sessions expired
func (s *SessionSweeper) Sweep() int {
	removed := s.store.Sweep(s.now())
	s.metrics.SessionsExpired(removed)

	if removed > 0 {
		s.logger.Info("expired sessions removed", logger.Int("count", removed))
	} else {
		s.logger.Debug("no expired sessions")
	}
	return removed
}
