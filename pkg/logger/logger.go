package logger

import (
	"sync"

	"github.com/theory-cloud/hourglass/pkg/observability"
	zaplog "github.com/theory-cloud/hourglass/pkg/observability/zap"
)

var (
	globalMu     sync.RWMutex
	globalLogger = defaultLogger()
)

// defaultLogger writes warn-and-above to stderr so diagnostics like the
// TIME_START fallback stay visible without any wiring by the host
// application.
func defaultLogger() observability.StructuredLogger {
	log, err := zaplog.NewZapLogger(observability.LoggerConfig{
		Format: "console",
		Level:  "warn",
	})
	if err != nil {
		return observability.NewNoOpLogger()
	}
	return log
}

// Logger returns the global structured logger singleton.
func Logger() observability.StructuredLogger {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return globalLogger
}

// SetLogger replaces the global structured logger singleton.
//
// Passing nil resets the logger to the stderr default.
func SetLogger(next observability.StructuredLogger) {
	globalMu.Lock()
	defer globalMu.Unlock()
	if next == nil {
		globalLogger = defaultLogger()
		return
	}
	globalLogger = next
}
