package schedule

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/theory-cloud/hourglass"
	"github.com/theory-cloud/hourglass/pkg/observability"
	"github.com/theory-cloud/hourglass/testkit"
)

func TestEvery_HourlyForADayRunsExactly24Times(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	env := testkit.NewWithTime(start)
	s := New(env.Clock())

	var executions []time.Time
	runs := s.Every(context.Background(), time.Hour, start.Add(24*time.Hour),
		func(_ context.Context, now time.Time) error {
			executions = append(executions, now)
			return nil
		})

	require.Equal(t, 24, runs)
	require.Len(t, executions, 24)
	for i, at := range executions {
		require.Equal(t, start.Add(time.Duration(i)*time.Hour), at)
	}
	require.Equal(t, 24*time.Hour, env.Control.TotalWaited())
	require.Equal(t, 24, env.Control.WaitCallCount())
}

func TestEvery_CancelledContextStopsTheLoop(t *testing.T) {
	env := testkit.New()
	s := New(env.Clock())

	ctx, cancel := context.WithCancel(context.Background())
	runs := s.Every(ctx, time.Hour, env.Provider.Now().Add(100*time.Hour),
		func(_ context.Context, _ time.Time) error {
			cancel()
			return nil
		})

	require.Equal(t, 1, runs)
}

func TestEvery_JobErrorIsLoggedAndScheduleContinues(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	env := testkit.NewWithTime(start)
	capture := observability.NewTestLogger()
	s := New(env.Clock(), WithLogger(capture))

	runs := s.Every(context.Background(), time.Hour, start.Add(3*time.Hour),
		func(_ context.Context, _ time.Time) error {
			return errors.New("transient")
		})

	require.Equal(t, 3, runs)
	require.Len(t, capture.EntriesByLevel("error"), 3)
}

func TestAt_FutureDeadlineRunsAtDeadline(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	env := testkit.NewWithTime(start)
	s := New(env.Clock())

	var ranAt time.Time
	err := s.At(context.Background(), start.Add(6*time.Hour),
		func(_ context.Context, now time.Time) error {
			ranAt = now
			return nil
		})

	require.NoError(t, err)
	require.Equal(t, start.Add(6*time.Hour), ranAt)
}

func TestAt_PastDeadlineRunsImmediately(t *testing.T) {
	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	env := testkit.NewWithTime(start)
	s := New(env.Clock())

	var ranAt time.Time
	err := s.At(context.Background(), start.Add(-time.Hour),
		func(_ context.Context, now time.Time) error {
			ranAt = now
			return nil
		})

	require.NoError(t, err)
	require.Equal(t, start, ranAt)
	require.Equal(t, 0, env.Control.WaitCallCount())
}

func TestNextDaily_AlwaysTomorrow(t *testing.T) {
	env := testkit.NewWithTime(time.Date(2024, 1, 1, 1, 59, 0, 0, time.UTC))
	s := New(env.Clock())

	next := s.NextDaily(2, 0)

	// 01:59 today does not fire at 02:00 today.
	require.Equal(t, time.Date(2024, 1, 2, 2, 0, 0, 0, time.UTC), next)
}

func TestDailyAt_RunsEveryDayAtTheSameInstant(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	env := testkit.NewWithTime(start)
	s := New(env.Clock())

	var executions []time.Time
	runs := s.DailyAt(context.Background(), 2, 0, time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
		func(_ context.Context, now time.Time) error {
			executions = append(executions, now)
			return nil
		})

	require.Equal(t, 29, runs)
	require.Equal(t, time.Date(2024, 1, 2, 2, 0, 0, 0, time.UTC), executions[0])
	require.Equal(t, time.Date(2024, 1, 30, 2, 0, 0, 0, time.UTC), executions[len(executions)-1])
	for _, at := range executions {
		require.Equal(t, 2, at.Hour())
		require.Equal(t, 0, at.Minute())
	}
}

func TestNew_NilClockFallsBackToSystem(t *testing.T) {
	s := New(nil)

	require.False(t, s.clock.IsTest())
	_, isSystem := s.clock.(hourglass.SystemClock)
	require.True(t, isSystem)
}
