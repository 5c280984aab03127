package observability

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNoOpLogger_ReturnsSelfFromWith(t *testing.T) {
	log := NewNoOpLogger()

	require.Same(t, log, log.WithField("k", "v"))
	require.Same(t, log, log.WithFields(map[string]any{"k": "v"}))

	// No panics on any level.
	log.Debug("d")
	log.Info("i")
	log.Warn("w")
	log.Error("e")
}

func TestTestLogger_CapturesEntries(t *testing.T) {
	log := NewTestLogger()

	log.Info("hello", map[string]any{"a": 1})
	log.Warn("careful")

	entries := log.Entries()
	require.Len(t, entries, 2)
	require.Equal(t, "info", entries[0].Level)
	require.Equal(t, "hello", entries[0].Message)
	require.Equal(t, 1, entries[0].Fields["a"])
	require.Equal(t, "warn", entries[1].Level)
}

func TestTestLogger_DerivedLoggersShareCore(t *testing.T) {
	root := NewTestLogger()
	derived := root.WithField("component", "scheduler")

	derived.Error("boom")

	entries := root.Entries()
	require.Len(t, entries, 1)
	require.Equal(t, "scheduler", entries[0].Fields["component"])
}

func TestTestLogger_CallSiteFieldsWinOverBoundFields(t *testing.T) {
	root := NewTestLogger()
	derived := root.WithFields(map[string]any{"k": "bound"})

	derived.Info("msg", map[string]any{"k": "call"})

	entries := root.Entries()
	require.Len(t, entries, 1)
	require.Equal(t, "call", entries[0].Fields["k"])
}

func TestTestLogger_EntriesByLevelAndReset(t *testing.T) {
	log := NewTestLogger()
	log.Info("one")
	log.Warn("two")
	log.Warn("three")

	require.Len(t, log.EntriesByLevel("warn"), 2)
	require.Len(t, log.EntriesByLevel("error"), 0)

	log.Reset()
	require.Empty(t, log.Entries())
}
