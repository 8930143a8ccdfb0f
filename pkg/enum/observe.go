package enum

import "sync/atomic"

// Logger is the structured logger used by the registry. *slog.Logger
// satisfies it.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// Metrics receives registry events. Implementations must be safe for
// concurrent use.
type Metrics interface {
	ConstantsDiscovered(typ string, count int)
	InstanceConstructed(typ, name string)
	LookupFailed(typ string, kind Kind)
}

type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}

type noopMetrics struct{}

func (noopMetrics) ConstantsDiscovered(string, int)    {}
func (noopMetrics) InstanceConstructed(string, string) {}
func (noopMetrics) LookupFailed(string, Kind)          {}

var (
	currentLogger  atomic.Pointer[Logger]
	currentMetrics atomic.Pointer[Metrics]
)

// SetLogger replaces the process-wide logger. A nil logger disables logging.
func SetLogger(l Logger) {
	if l == nil {
		l = noopLogger{}
	}
	currentLogger.Store(&l)
}

// SetMetrics replaces the process-wide metrics sink. A nil sink disables metrics.
func SetMetrics(m Metrics) {
	if m == nil {
		m = noopMetrics{}
	}
	currentMetrics.Store(&m)
}

func logger() Logger {
	if l := currentLogger.Load(); l != nil {
		return *l
	}
	return noopLogger{}
}

func metrics() Metrics {
	if m := currentMetrics.Load(); m != nil {
		return *m
	}
	return noopMetrics{}
}
