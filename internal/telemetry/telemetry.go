package telemetry

import (
	"context"
	"log/slog"
)

// Recorder is the instrumentation facade. Every method performs exactly one
// fire-and-forget call into the underlying SDKs: it must never block, fail, or
// alter the outcome of the operation it annotates. Handlers and services
// receive a Recorder by injection so they can be tested against Noop().
type Recorder interface {
	// Count increments a named counter.
	Count(name string, value int64, tags map[string]string)
	// Gauge sets a named gauge to the given value.
	Gauge(name string, value float64, tags map[string]string)
	// Distribution records a single observation (timings, sizes).
	Distribution(name string, value float64, tags map[string]string)
	// Breadcrumb appends a timestamped annotation for later correlation
	// with a captured error.
	Breadcrumb(category, message string, data map[string]any)
	// Log emits a leveled structured log record.
	Log(level slog.Level, msg string, args ...any)
	// CaptureError reports an exception with optional tags.
	CaptureError(err error, tags map[string]string)
	// SetUser attaches user context to subsequent events; ClearUser drops it.
	SetUser(id, username, email string)
	ClearUser()
	// SetTag attaches a key/value tag to subsequent events.
	SetTag(key, value string)
	// StartSpan opens a timed span. The returned context carries the span;
	// the returned func finishes it and records its duration.
	StartSpan(ctx context.Context, op, description string) (context.Context, func())
}

type noopRecorder struct{}

// Noop returns a Recorder that discards everything. Used in tests and as the
// degraded mode when no telemetry backend is configured.
func Noop() Recorder {
	return noopRecorder{}
}

func (noopRecorder) Count(string, int64, map[string]string)         {}
func (noopRecorder) Gauge(string, float64, map[string]string)       {}
func (noopRecorder) Distribution(string, float64, map[string]string) {}
func (noopRecorder) Breadcrumb(string, string, map[string]any)      {}
func (noopRecorder) Log(slog.Level, string, ...any)                 {}
func (noopRecorder) CaptureError(error, map[string]string)          {}
func (noopRecorder) SetUser(string, string, string)                 {}
func (noopRecorder) ClearUser()                                     {}
func (noopRecorder) SetTag(string, string)                          {}

func (noopRecorder) StartSpan(ctx context.Context, _, _ string) (context.Context, func()) {
	return ctx, func() {}
}
