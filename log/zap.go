package log

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Zap adapts a zap logger to the driver Logger interface.
func Zap(l *zap.Logger) Logger {
	return zapAdapter{l: l}
}

type zapAdapter struct {
	l *zap.Logger
}

func (a zapAdapter) Log(ctx context.Context, msg string, fields ...Field) {
	zapFields := make([]zap.Field, 0, len(fields))
	for _, f := range fields {
		zapFields = append(zapFields, zapField(f))
	}
	a.l.Log(zapLevel(LevelFromContext(ctx)), msg, zapFields...)
}

func zapLevel(l Level) zapcore.Level {
	switch l {
	case TRACE, DEBUG:
		return zapcore.DebugLevel
	case INFO:
		return zapcore.InfoLevel
	case WARN:
		return zapcore.WarnLevel
	default:
		return zapcore.ErrorLevel
	}
}

func zapField(f Field) zap.Field {
	switch f.Type() {
	case StringType:
		return zap.String(f.Key(), f.StringValue())
	case IntType:
		return zap.Int(f.Key(), f.IntValue())
	case BoolType:
		return zap.Bool(f.Key(), f.BoolValue())
	case DurationType:
		return zap.Duration(f.Key(), f.DurationValue())
	case ErrorType:
		return zap.Error(f.ErrorValue())
	default:
		return zap.Any(f.Key(), f.AnyValue())
	}
}
