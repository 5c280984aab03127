// Package schedule runs recurring jobs against an injected clock. Under a
// virtual clock the scheduler's own waiting drives time forward, so a month
// of hourly runs completes in microseconds and lands on exact instants.
package schedule

import (
	"context"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/theory-cloud/hourglass"
	"github.com/theory-cloud/hourglass/pkg/observability"
)

// Job is a unit of scheduled work. The now argument is the clock's instant
// at the start of the run, not the wall clock.
type Job func(ctx context.Context, now time.Time) error

type Option func(*Scheduler)

// WithLogger sets the logger for run progress and job failures.
func WithLogger(log observability.StructuredLogger) Option {
	return func(s *Scheduler) {
		if log == nil {
			log = observability.NewNoOpLogger()
		}
		s.log = log
	}
}

// Scheduler executes jobs on interval or deadline boundaries read from an
// injected hourglass.Clock.
type Scheduler struct {
	clock hourglass.Clock
	log   observability.StructuredLogger
}

func New(clock hourglass.Clock, opts ...Option) *Scheduler {
	s := &Scheduler{
		clock: clock,
		log:   observability.NewNoOpLogger(),
	}
	if s.clock == nil {
		s.clock = hourglass.SystemClock{}
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(s)
	}
	return s
}

// Every runs job once per interval, starting immediately, until the clock
// reaches end or ctx is cancelled. A failing job is logged and the schedule
// keeps going. Returns the number of completed runs.
func (s *Scheduler) Every(ctx context.Context, interval time.Duration, end time.Time, job Job) int {
	if ctx == nil {
		ctx = context.Background()
	}
	runID := ulid.Make().String()
	log := s.log.WithFields(map[string]any{
		"run_id":   runID,
		"interval": interval.String(),
	})

	runs := 0
	for s.clock.Now().Before(end) {
		if ctx.Err() != nil {
			log.Debug("schedule cancelled", map[string]any{"runs": runs})
			return runs
		}
		now := s.clock.Now()
		if err := job(ctx, now); err != nil {
			log.Error("scheduled job failed", map[string]any{
				"at":    now.Format(time.RFC3339),
				"error": err.Error(),
			})
		}
		runs++
		s.clock.Wait(ctx, interval)
	}
	log.Debug("schedule finished", map[string]any{"runs": runs})
	return runs
}

// At waits until deadline and then runs job once. A deadline already in the
// past runs the job immediately at the clock's current instant.
func (s *Scheduler) At(ctx context.Context, deadline time.Time, job Job) error {
	if ctx == nil {
		ctx = context.Background()
	}
	s.clock.WaitUntil(ctx, deadline)
	if ctx.Err() != nil {
		return ctx.Err()
	}
	return job(ctx, s.clock.Now())
}

// NextDaily returns the next day's occurrence of hh:mm:00 UTC after the
// clock's current instant. The occurrence is always tomorrow: a daily job
// scheduled at 02:00 never fires twice in one day even when started at
// 01:59.
func (s *Scheduler) NextDaily(hour, minute int) time.Time {
	now := s.clock.Now().UTC()
	tomorrow := now.Truncate(24 * time.Hour).Add(24 * time.Hour)
	return time.Date(tomorrow.Year(), tomorrow.Month(), tomorrow.Day(), hour, minute, 0, 0, time.UTC)
}

// DailyAt runs job at hh:mm UTC every day until the clock reaches end or ctx
// is cancelled. Returns the number of completed runs.
func (s *Scheduler) DailyAt(ctx context.Context, hour, minute int, end time.Time, job Job) int {
	if ctx == nil {
		ctx = context.Background()
	}
	runID := ulid.Make().String()
	log := s.log.WithFields(map[string]any{
		"run_id": runID,
		"daily":  time.Date(0, 1, 1, hour, minute, 0, 0, time.UTC).Format("15:04"),
	})

	runs := 0
	for {
		next := s.NextDaily(hour, minute)
		if !next.Before(end) || ctx.Err() != nil {
			log.Debug("daily schedule finished", map[string]any{"runs": runs})
			return runs
		}
		s.clock.WaitUntil(ctx, next)
		if ctx.Err() != nil {
			log.Debug("daily schedule cancelled", map[string]any{"runs": runs})
			return runs
		}
		now := s.clock.Now()
		if err := job(ctx, now); err != nil {
			log.Error("daily job failed", map[string]any{
				"at":    now.Format(time.RFC3339),
				"error": err.Error(),
			})
		}
		runs++
	}
}
