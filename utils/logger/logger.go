package logger

import (
	"context"

	utilsContext "github.com/muhammadheryan/marketplace/utils/context"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var globalLogger *zap.Logger

func newConfig(environment string) zap.Config {
	if environment == "production" {
		return zap.NewProductionConfig()
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	return cfg
}

// Init builds the process-wide logger. Production gets JSON output, everything else the console encoder.
// An empty or unknown level keeps the environment default.
func Init(environment, level string) error {
	cfg := newConfig(environment)
	if lvl, err := zapcore.ParseLevel(level); level != "" && err == nil {
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}
	cfg.InitialFields = map[string]interface{}{"env": environment}

	l, err := cfg.Build()
	if err != nil {
		return err
	}
	globalLogger = l
	return nil
}

// Set swaps the global logger. Tests use it with an observer core.
func Set(l *zap.Logger) {
	globalLogger = l
}

func Get() *zap.Logger {
	if globalLogger == nil {
		globalLogger, _ = zap.NewProduction()
	}
	return globalLogger
}

// WithContext returns the global logger annotated with the request id and caller found in ctx.
func WithContext(ctx context.Context) *zap.Logger {
	l := Get()
	if ctx == nil {
		return l
	}

	fields := make([]zap.Field, 0, 3)
	if id := utilsContext.GetRequestID(ctx); id != "" {
		fields = append(fields, zap.String("request_id", id))
	}
	if caller, ok := utilsContext.GetCaller(ctx); ok {
		fields = append(fields, zap.Uint64("user_id", caller.UserID), zap.String("role", string(caller.Role)))
	}
	if len(fields) == 0 {
		return l
	}
	return l.With(fields...)
}

// Close flushes buffered entries.
func Close() error {
	if globalLogger != nil {
		return globalLogger.Sync()
	}
	return nil
}

func Info(msg string, fields ...zap.Field) {
	Get().Info(msg, fields...)
}

func Error(msg string, fields ...zap.Field) {
	Get().Error(msg, fields...)
}

func Debug(msg string, fields ...zap.Field) {
	Get().Debug(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	Get().Warn(msg, fields...)
}

// Fatal logs and exits the process.
func Fatal(msg string, fields ...zap.Field) {
	Get().Fatal(msg, fields...)
}
