// Package log contains the logging interface of the driver and adapters
// that feed driver traces into it.
package log

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// Level of a log message.
type Level int

const (
	TRACE = Level(iota)
	DEBUG
	INFO
	WARN
	ERROR
	QUIET
)

func (l Level) String() string {
	switch l {
	case TRACE:
		return "TRACE"
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	case QUIET:
		return "QUIET"
	default:
		return fmt.Sprintf("UNKNOWN_LEVEL_%d", l)
	}
}

// Logger is the sink the driver writes to. The level is carried in ctx, see
// WithLevel.
type Logger interface {
	Log(ctx context.Context, msg string, fields ...Field)
}

type levelContextKey struct{}

// WithLevel returns a context carrying the level of the message being logged.
func WithLevel(ctx context.Context, l Level) context.Context {
	return context.WithValue(ctx, levelContextKey{}, l)
}

// LevelFromContext returns the message level carried in ctx, or INFO.
func LevelFromContext(ctx context.Context) Level {
	if l, ok := ctx.Value(levelContextKey{}).(Level); ok {
		return l
	}

	return INFO
}

type simpleLoggerOption func(l *defaultLogger)

// WithMinLevel drops messages below the given level.
func WithMinLevel(level Level) simpleLoggerOption {
	return func(l *defaultLogger) {
		l.minLevel = level
	}
}

// WithClock replaces the wall clock of the timestamp, for tests.
func WithClock(clock clockwork.Clock) simpleLoggerOption {
	return func(l *defaultLogger) {
		l.clock = clock
	}
}

// Default returns a plain text logger writing to w.
func Default(w io.Writer, opts ...simpleLoggerOption) Logger {
	l := &defaultLogger{
		w:        w,
		minLevel: INFO,
		clock:    clockwork.NewRealClock(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(l)
		}
	}

	return l
}

type defaultLogger struct {
	w        io.Writer
	minLevel Level
	clock    clockwork.Clock

	mu sync.Mutex
}

func (l *defaultLogger) Log(ctx context.Context, msg string, fields ...Field) {
	level := LevelFromContext(ctx)
	if level < l.minLevel {
		return
	}
	b := make([]byte, 0, 128)
	b = l.clock.Now().AppendFormat(b, time.RFC3339)
	b = append(b, ' ')
	b = append(b, level.String()...)
	b = append(b, ' ')
	b = append(b, msg...)
	for _, f := range fields {
		b = append(b, ' ')
		b = append(b, f.Key()...)
		b = append(b, '=')
		b = append(b, f.String()...)
	}
	b = append(b, '\n')
	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = l.w.Write(b)
}
