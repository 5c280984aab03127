package observability

import "time"

// LogEntry represents a structured log entry.
//
// This type is intentionally small and stable so implementations can adapt it
// to their backend.
type LogEntry struct {
	Timestamp time.Time      `json:"timestamp"`
	Level     string         `json:"level"`
	Message   string         `json:"message"`
	Fields    map[string]any `json:"fields,omitempty"`
}

// StructuredLogger is the logging surface used throughout hourglass.
//
// It intentionally mirrors the message + map-fields shape so implementations
// can swap freely between the zap-backed logger, the in-memory test logger,
// and the no-op default.
type StructuredLogger interface {
	Debug(message string, fields ...map[string]any)
	Info(message string, fields ...map[string]any)
	Warn(message string, fields ...map[string]any)
	Error(message string, fields ...map[string]any)

	WithField(key string, value any) StructuredLogger
	WithFields(fields map[string]any) StructuredLogger
}

// LoggerConfig configures logger implementations.
type LoggerConfig struct {
	Format       string `json:"format"`
	Level        string `json:"level"`
	EnableCaller bool   `json:"enable_caller"`
}

type LoggerFactory interface {
	CreateConsoleLogger(config LoggerConfig) (StructuredLogger, error)
	CreateTestLogger() StructuredLogger
	CreateNoOpLogger() StructuredLogger
}
