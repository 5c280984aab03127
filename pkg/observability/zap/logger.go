package zap

import (
	"errors"
	"os"
	"strings"

	ubzap "go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/theory-cloud/hourglass/pkg/observability"
)

const (
	levelDebug = "debug"
	levelInfo  = "info"
	levelWarn  = "warn"
	levelError = "error"
)

type Option func(*loggerOptions)

type loggerOptions struct {
	zapLogger *ubzap.Logger
}

// WithZapLogger supplies a pre-built zap logger instead of constructing one
// from the config.
func WithZapLogger(logger *ubzap.Logger) Option {
	return func(opts *loggerOptions) {
		opts.zapLogger = logger
	}
}

// Logger adapts go.uber.org/zap to the observability.StructuredLogger
// surface. Diagnostics go to stderr so they stay visible to the operator
// without mixing into application output.
type Logger struct {
	log    *ubzap.Logger
	fields map[string]any
}

var _ observability.StructuredLogger = (*Logger)(nil)

func NewZapLogger(config observability.LoggerConfig, options ...Option) (observability.StructuredLogger, error) {
	cfg := normalizeLoggerConfig(config)

	opts := &loggerOptions{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(opts)
	}

	base := opts.zapLogger
	if base == nil {
		level, err := parseZapLevel(cfg.Level)
		if err != nil {
			return nil, err
		}

		enc := zapEncoderConfig(cfg.EnableCaller)
		var encoder zapcore.Encoder
		switch strings.ToLower(strings.TrimSpace(cfg.Format)) {
		case "console":
			encoder = zapcore.NewConsoleEncoder(enc)
		case "json", "":
			encoder = zapcore.NewJSONEncoder(enc)
		default:
			return nil, errors.New("observability/zap: unsupported log format")
		}

		core := zapcore.NewCore(encoder, zapcore.AddSync(os.Stderr), level)
		base = ubzap.New(core)
		if cfg.EnableCaller {
			base = base.WithOptions(ubzap.AddCaller())
		}
	}

	return &Logger{
		log:    base,
		fields: map[string]any{},
	}, nil
}

func normalizeLoggerConfig(config observability.LoggerConfig) observability.LoggerConfig {
	cfg := config
	if strings.TrimSpace(cfg.Format) == "" {
		cfg.Format = "console"
	}
	if strings.TrimSpace(cfg.Level) == "" {
		cfg.Level = levelInfo
	}
	return cfg
}

func parseZapLevel(level string) (zapcore.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case levelDebug:
		return zapcore.DebugLevel, nil
	case levelInfo, "":
		return zapcore.InfoLevel, nil
	case levelWarn, "warning":
		return zapcore.WarnLevel, nil
	case levelError:
		return zapcore.ErrorLevel, nil
	default:
		return 0, errors.New("observability/zap: unsupported log level")
	}
}

func zapEncoderConfig(enableCaller bool) zapcore.EncoderConfig {
	enc := zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		MessageKey:     "message",
		EncodeTime:     zapcore.RFC3339TimeEncoder,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeDuration: zapcore.StringDurationEncoder,
	}
	if enableCaller {
		enc.CallerKey = "caller"
		enc.EncodeCaller = zapcore.ShortCallerEncoder
	}
	return enc
}

func (l *Logger) Debug(message string, fields ...map[string]any) {
	l.logEntry(zapcore.DebugLevel, message, fields...)
}

func (l *Logger) Info(message string, fields ...map[string]any) {
	l.logEntry(zapcore.InfoLevel, message, fields...)
}

func (l *Logger) Warn(message string, fields ...map[string]any) {
	l.logEntry(zapcore.WarnLevel, message, fields...)
}

func (l *Logger) Error(message string, fields ...map[string]any) {
	l.logEntry(zapcore.ErrorLevel, message, fields...)
}

func (l *Logger) WithField(key string, value any) observability.StructuredLogger {
	return l.WithFields(map[string]any{key: value})
}

func (l *Logger) WithFields(fields map[string]any) observability.StructuredLogger {
	next := l.clone()
	for k, v := range fields {
		next.fields[k] = v
	}
	next.log = next.log.With(anyFields(fields)...)
	return next
}

func (l *Logger) clone() *Logger {
	fields := make(map[string]any, len(l.fields))
	for k, v := range l.fields {
		fields[k] = v
	}
	return &Logger{log: l.log, fields: fields}
}

func (l *Logger) logEntry(level zapcore.Level, message string, fields ...map[string]any) {
	var zfields []ubzap.Field
	for _, m := range fields {
		zfields = append(zfields, anyFields(m)...)
	}
	if ce := l.log.Check(level, message); ce != nil {
		ce.Write(zfields...)
	}
}

func anyFields(fields map[string]any) []ubzap.Field {
	out := make([]ubzap.Field, 0, len(fields))
	for k, v := range fields {
		out = append(out, ubzap.Any(k, v))
	}
	return out
}
