package observability

import (
	"sync"
	"time"
)

type testLoggerCore struct {
	mu      sync.Mutex
	entries []LogEntry
}

// TestLogger is an in-memory logger implementation for deterministic unit
// tests.
//
// Derived loggers (via With* calls) share the same underlying core, so
// entries logged through any derivation are visible from the root.
type TestLogger struct {
	core   *testLoggerCore
	fields map[string]any
}

var _ StructuredLogger = (*TestLogger)(nil)

func NewTestLogger() *TestLogger {
	return &TestLogger{
		core:   &testLoggerCore{},
		fields: map[string]any{},
	}
}

// Entries returns a copy of every entry logged so far.
func (l *TestLogger) Entries() []LogEntry {
	if l == nil || l.core == nil {
		return nil
	}
	l.core.mu.Lock()
	defer l.core.mu.Unlock()
	out := make([]LogEntry, len(l.core.entries))
	copy(out, l.core.entries)
	return out
}

// EntriesByLevel returns the logged entries matching level.
func (l *TestLogger) EntriesByLevel(level string) []LogEntry {
	var out []LogEntry
	for _, entry := range l.Entries() {
		if entry.Level == level {
			out = append(out, entry)
		}
	}
	return out
}

// Reset discards every captured entry.
func (l *TestLogger) Reset() {
	if l == nil || l.core == nil {
		return
	}
	l.core.mu.Lock()
	defer l.core.mu.Unlock()
	l.core.entries = nil
}

func (l *TestLogger) Debug(message string, fields ...map[string]any) {
	l.log("debug", message, fields...)
}

func (l *TestLogger) Info(message string, fields ...map[string]any) {
	l.log("info", message, fields...)
}

func (l *TestLogger) Warn(message string, fields ...map[string]any) {
	l.log("warn", message, fields...)
}

func (l *TestLogger) Error(message string, fields ...map[string]any) {
	l.log("error", message, fields...)
}

func (l *TestLogger) WithField(key string, value any) StructuredLogger {
	return l.WithFields(map[string]any{key: value})
}

func (l *TestLogger) WithFields(fields map[string]any) StructuredLogger {
	next := l.clone()
	for k, v := range fields {
		next.fields[k] = v
	}
	return next
}

func (l *TestLogger) clone() *TestLogger {
	fields := make(map[string]any, len(l.fields))
	for k, v := range l.fields {
		fields[k] = v
	}
	return &TestLogger{core: l.core, fields: fields}
}

func (l *TestLogger) log(level, message string, fields ...map[string]any) {
	if l == nil || l.core == nil {
		return
	}
	merged := make(map[string]any, len(l.fields))
	for k, v := range l.fields {
		merged[k] = v
	}
	for _, m := range fields {
		for k, v := range m {
			merged[k] = v
		}
	}
	entry := LogEntry{
		Timestamp: time.Now().UTC(),
		Level:     level,
		Message:   message,
		Fields:    merged,
	}
	l.core.mu.Lock()
	defer l.core.mu.Unlock()
	l.core.entries = append(l.core.entries, entry)
}
