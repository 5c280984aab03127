package hourglass

import (
	"time"

	"github.com/spf13/viper"

	"github.com/theory-cloud/hourglass/pkg/logger"
)

type sourceKind int

const (
	sourceSystem sourceKind = iota
	sourceVirtual
	sourceVirtualAtNow
)

// Source selects which clock a Provider is built around. It is chosen once
// at construction and immutable afterwards.
type Source struct {
	kind  sourceKind
	start time.Time
}

// System selects the real system clock.
func System() Source {
	return Source{kind: sourceSystem}
}

// Virtual selects a virtual clock starting at start.
func Virtual(start time.Time) Source {
	return Source{kind: sourceVirtual, start: start}
}

// VirtualAtNow selects a virtual clock starting at the current system time.
func VirtualAtNow() Source {
	return Source{kind: sourceVirtualAtNow}
}

const (
	envTimeSource = "TIME_SOURCE"
	envTimeStart  = "TIME_START"
)

// SourceFromEnv builds a Source from the environment:
//
//   - TIME_SOURCE: "system" (default) or "test"
//   - TIME_START: RFC3339 start instant for test mode
//
// A missing TIME_START starts the virtual clock at the current system time.
// A malformed TIME_START does the same and additionally emits a warning
// through the structured logger. Construction never fails.
func SourceFromEnv() Source {
	v := viper.New()
	v.SetDefault("source", "system")
	_ = v.BindEnv("source", envTimeSource)
	_ = v.BindEnv("start", envTimeStart)

	if v.GetString("source") != "test" {
		return System()
	}

	raw := v.GetString("start")
	if raw == "" {
		return VirtualAtNow()
	}
	start, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		logger.Logger().Warn("invalid TIME_START, using current time", map[string]any{
			"value": raw,
			"error": err.Error(),
		})
		return VirtualAtNow()
	}
	return Virtual(start)
}
