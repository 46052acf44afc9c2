package sweeper

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/squadplay/squad-engine/internal/adapter"
	"github.com/squadplay/squad-engine/internal/court"
	"github.com/squadplay/squad-engine/internal/logger"
	"github.com/squadplay/squad-engine/internal/store"
)

// ExpirySweeperConfig holds configuration for the expiry sweeper
type ExpirySweeperConfig struct {
	Interval        time.Duration // Time to sleep between sweep cycles
	BatchSize       int           // Challenges to expire per batch
	WorkerPoolSize  int           // Concurrent workers
	WorkerQueueSize int           // Pending tasks the pool accepts
}

// expirySweeper implements the Sweeper interface for deadline enforcement.
// It expires overdue challenges and purges dead targeting relations.
type expirySweeper struct {
	config    *ExpirySweeperConfig
	store     store.Store
	court     court.Court
	pool      pond.Pool
	clock     adapter.Clock
	running   atomic.Bool
	stopChan  chan struct{}
	stoppedCh chan struct{}
}

// NewExpirySweeper creates a new expiry sweeper
func NewExpirySweeper(
	config *ExpirySweeperConfig,
	st store.Store,
	c court.Court,
	clock adapter.Clock,
) Sweeper {
	return &expirySweeper{
		config:    config,
		store:     st,
		court:     c,
		clock:     clock,
		stopChan:  make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}
}

// Name returns the sweeper's name
func (s *expirySweeper) Name() string {
	return "expiry-sweeper"
}

// Start begins the sweeper's main loop
func (s *expirySweeper) Start(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return fmt.Errorf("sweeper already running")
	}
	defer func() {
		s.running.Store(false)
		close(s.stoppedCh) // Signal that we've stopped
	}()

	logger.InfoCtx(ctx, "Starting expiry sweeper",
		zap.Duration("interval", s.config.Interval),
		zap.Int("batch_size", s.config.BatchSize),
		zap.Int("worker_pool_size", s.config.WorkerPoolSize),
	)

	// Create worker pool
	s.pool = pond.NewPool(
		s.config.WorkerPoolSize,
		pond.WithQueueSize(s.config.WorkerQueueSize),
		pond.WithContext(ctx),
	)

	// Continuous loop - stops when context is canceled or stop is requested
	for {
		select {
		case <-ctx.Done():
			logger.InfoCtx(ctx, "Expiry sweeper stopping due to context cancellation", zap.Error(ctx.Err()))
			s.cleanup()
			return nil
		case <-s.stopChan:
			logger.InfoCtx(ctx, "Expiry sweeper stop requested")
			s.cleanup()
			return nil
		default:
			if err := s.runSweepCycle(ctx); err != nil {
				if !errors.Is(err, context.Canceled) {
					logger.ErrorCtx(ctx, err)
				}
			}
		}
	}
}

// cleanup stops the worker pool and waits for tasks to complete
func (s *expirySweeper) cleanup() {
	if s.pool != nil {
		s.pool.StopAndWait()
	}
}

// Stop gracefully stops the sweeper with timeout support
func (s *expirySweeper) Stop(ctx context.Context) error {
	if !s.running.CompareAndSwap(true, false) {
		return nil // Already stopped
	}

	logger.InfoCtx(ctx, "Stopping expiry sweeper")

	// Signal stop to the main loop
	close(s.stopChan)

	// Wait for main loop to exit, but respect context cancellation
	select {
	case <-s.stoppedCh:
		logger.InfoCtx(ctx, "Expiry sweeper stopped gracefully")
		return nil
	case <-ctx.Done():
		logger.WarnCtx(ctx, "Expiry sweeper stop interrupted by context timeout")
		return ctx.Err()
	}
}

// runSweepCycle runs a single sweep cycle
func (s *expirySweeper) runSweepCycle(ctx context.Context) error {
	startTime := s.clock.Now()

	// Get active challenges past their voting deadline. No locking; the
	// expiry transition is a guarded update, so concurrent sweepers are safe.
	challenges, err := s.store.ListExpirableChallenges(ctx, startTime, s.config.BatchSize)
	if err != nil {
		return fmt.Errorf("failed to list expirable challenges: %w", err)
	}

	var expiredCount, skippedCount atomic.Int32

	if len(challenges) > 0 {
		logger.InfoCtx(ctx, "Found overdue challenges", zap.Int("count", len(challenges)))

		// Submit all expirations to worker pool
		for _, challenge := range challenges {
			s.pool.Submit(func() {
				expired, err := s.court.Expire(ctx, challenge.ID)
				if err != nil {
					logger.ErrorCtx(ctx, err, zap.Int64("challenge_id", challenge.ID))
					return
				}
				if expired {
					expiredCount.Add(1)
				} else {
					// Lost the race to a concurrent vote or sweeper
					skippedCount.Add(1)
				}
			})
		}

		// Wait for all expirations to complete
		s.pool.StopAndWait()

		// Recreate pool for next cycle
		s.pool = pond.NewPool(
			s.config.WorkerPoolSize,
			pond.WithQueueSize(s.config.WorkerQueueSize),
			pond.WithContext(ctx),
		)
	}

	// Purge dead targeting relations with retry
	purged, err := s.purgeExpiredTargetsWithRetry(ctx)
	if err != nil {
		// After all retries failed, log with high severity for monitoring/alerting
		logger.ErrorCtx(ctx, fmt.Errorf("CRITICAL: failed to purge expired targets after retries: %w", err))
	}

	duration := s.clock.Since(startTime)
	if len(challenges) > 0 || purged > 0 {
		logger.InfoCtx(ctx, "Sweep cycle completed",
			zap.Duration("duration", duration),
			zap.Int32("challenges_expired", expiredCount.Load()),
			zap.Int32("challenges_skipped", skippedCount.Load()),
			zap.Int64("targets_purged", purged),
		)
	}

	// Sleep for a while to avoid tight loop
	// Use context-aware sleep so we can be interrupted
	if !s.sleep(ctx, s.config.Interval) {
		return ctx.Err() // Context canceled during sleep
	}

	return nil
}

// sleep sleeps for the given duration but can be interrupted by context cancellation
// Returns true if sleep completed normally, false if interrupted by context
func (s *expirySweeper) sleep(ctx context.Context, duration time.Duration) bool {
	select {
	case <-s.clock.After(duration):
		return true // Sleep completed
	case <-ctx.Done():
		return false // Interrupted by context cancellation
	case <-s.stopChan:
		return false // Interrupted by stop signal
	}
}

// purgeExpiredTargetsWithRetry deletes expired targeting relations with exponential backoff retry
func (s *expirySweeper) purgeExpiredTargetsWithRetry(ctx context.Context) (int64, error) {
	// Configure exponential backoff
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 5 * time.Second
	b.MaxInterval = 1 * time.Minute
	b.MaxElapsedTime = 5 * time.Minute // Total retry time limit
	b.Multiplier = 2.0
	b.RandomizationFactor = 0.5 // Add jitter to prevent thundering herd

	// Wrap with context to respect cancellation
	backoffWithContext := backoff.WithContext(b, ctx)

	var purged int64
	operation := func() error {
		var err error
		purged, err = s.store.DeleteExpiredTargets(ctx, s.clock.Now(), s.config.BatchSize)
		return err
	}

	// Execute with retry and detailed logging
	var attemptCount int
	notifyOnError := func(err error, duration time.Duration) {
		attemptCount++
		logger.WarnCtx(ctx, "Target purge failed, retrying",
			zap.Error(err),
			zap.Int("attempt", attemptCount),
			zap.Duration("next_retry_in", duration),
		)
	}

	if err := backoff.RetryNotify(operation, backoffWithContext, notifyOnError); err != nil {
		return 0, fmt.Errorf("failed after %d attempts: %w", attemptCount, err)
	}

	return purged, nil
}
