package cache

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// ScheduleDisabled is the configuration value that turns the janitor off
// explicitly. Expired entries then only leave the store through Get.
const ScheduleDisabled = "off"

// Janitor sweeps expired entries out of a Store on a cron schedule. Expired
// entries are already invisible to Get, so the janitor only reclaims the
// memory they hold between accesses.
type Janitor struct {
	store    *Store
	schedule string
	cron     *cron.Cron
	mu       sync.Mutex
	logger   *slog.Logger
	running  bool
}

// NewJanitor creates a janitor sweeping store on the given cron schedule.
// An empty or "off" schedule disables the janitor.
func NewJanitor(store *Store, schedule string, logger *slog.Logger) *Janitor {
	if logger == nil {
		logger = slog.Default()
	}

	return &Janitor{
		store:    store,
		schedule: schedule,
		cron:     cron.New(),
		logger:   logger.With("component", "cache.janitor"),
	}
}

// Start begins the scheduled sweeps.
//
// Common cron expressions:
//   - "0 * * * *"    - Hourly on the hour
//   - "*/30 * * * *" - Every 30 minutes
//   - "0 3 * * *"    - Daily at 3 AM
//
// If the schedule is empty or "off", Start logs and does nothing.
func (j *Janitor) Start(ctx context.Context) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.schedule == "" || j.schedule == ScheduleDisabled {
		j.logger.Info("sweep schedule disabled, skipping janitor")
		return nil
	}

	// Validate cron expression
	if _, err := cron.ParseStandard(j.schedule); err != nil {
		return fmt.Errorf("invalid cron schedule %q: %w", j.schedule, err)
	}

	if _, err := j.cron.AddFunc(j.schedule, j.sweep); err != nil {
		return fmt.Errorf("failed to schedule cache sweep: %w", err)
	}

	j.cron.Start()
	j.running = true

	j.logger.Info("cache janitor started",
		"schedule", j.schedule,
	)

	// Wait for context cancellation in background
	go func() {
		<-ctx.Done()
		j.Stop()
	}()

	return nil
}

// sweep executes one prune cycle.
func (j *Janitor) sweep() {
	start := time.Now()
	removed := j.store.PruneExpired()

	if removed > 0 {
		j.logger.Info("cache sweep completed",
			"removed", removed,
			"remaining", j.store.Len(),
			"duration", time.Since(start),
		)
	} else {
		j.logger.Debug("cache sweep completed, nothing expired")
	}
}

// Stop stops the janitor and waits for a running sweep to complete.
func (j *Janitor) Stop() {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.cron != nil && j.running {
		ctx := j.cron.Stop()
		<-ctx.Done() // Wait for a running sweep to finish
		j.running = false
		j.logger.Info("cache janitor stopped")
	}
}

// IsRunning returns true if the janitor is running.
func (j *Janitor) IsRunning() bool {
	j.mu.Lock()
	defer j.mu.Unlock()

	return j.running
}

// NextRun returns the next scheduled sweep time, or nil when the janitor is
// not scheduled.
func (j *Janitor) NextRun() *time.Time {
	j.mu.Lock()
	defer j.mu.Unlock()

	entries := j.cron.Entries()
	if len(entries) == 0 {
		return nil
	}

	next := entries[0].Next
	return &next
}
