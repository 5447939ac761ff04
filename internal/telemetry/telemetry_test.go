package telemetry_test

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sentryos/backend/internal/telemetry"
)

// exerciseRecorder runs every facade method once. Used to prove both
// implementations tolerate arbitrary calls without panicking.
func exerciseRecorder(rec telemetry.Recorder) {
	rec.Count("requests", 1, map[string]string{"assistant": "email"})
	rec.Gauge("active", 2, nil)
	rec.Distribution("duration_seconds", 0.5, nil)
	rec.Breadcrumb("test", "something happened", map[string]any{"k": "v"})
	rec.Log(slog.LevelInfo, "hello", "k", "v")
	rec.CaptureError(errors.New("boom"), map[string]string{"assistant": "email"})
	rec.SetUser("u1", "demo", "demo@example.com")
	rec.SetTag("release", "test")
	rec.ClearUser()
	_, finish := rec.StartSpan(context.Background(), "test.op", "test span")
	finish()
}

func TestNoopRecorder(t *testing.T) {
	rec := telemetry.Noop()
	exerciseRecorder(rec)

	ctx := context.Background()
	spanCtx, finish := rec.StartSpan(ctx, "op", "desc")
	assert.Equal(t, ctx, spanCtx, "noop spans must not touch the context")
	finish()
}

func TestNewRecorder(t *testing.T) {
	t.Run("Success - empty DSN degrades silently", func(t *testing.T) {
		rec, err := telemetry.NewRecorder(telemetry.Options{Registry: prometheus.NewRegistry()})
		require.NoError(t, err)
		exerciseRecorder(rec)
	})

	t.Run("Failure - malformed DSN", func(t *testing.T) {
		_, err := telemetry.NewRecorder(telemetry.Options{
			DSN:      "not-a-dsn",
			Registry: prometheus.NewRegistry(),
		})
		assert.Error(t, err)
	})
}

func TestTelemetry_Metrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec, err := telemetry.NewRecorder(telemetry.Options{Registry: reg})
	require.NoError(t, err)

	rec.Count("relay.requests", 2, nil)
	rec.Count("relay.requests", 3, map[string]string{"assistant": "call"})
	rec.Gauge("relay.active", 2, nil)
	rec.Gauge("relay.active", 7, nil)

	// Tags never become Prometheus labels; the vectors are keyed by metric
	// name only.
	expected := `
# HELP sentryos_counter_total Counters recorded through the telemetry facade.
# TYPE sentryos_counter_total counter
sentryos_counter_total{name="relay.requests"} 5
# HELP sentryos_gauge Gauges recorded through the telemetry facade.
# TYPE sentryos_gauge gauge
sentryos_gauge{name="relay.active"} 7
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected),
		"sentryos_counter_total", "sentryos_gauge"))

	rec.Distribution("relay.duration_seconds", 0.5, nil)
	rec.Distribution("relay.duration_seconds", 1.5, nil)
	series, err := testutil.GatherAndCount(reg, "sentryos_distribution")
	require.NoError(t, err)
	assert.Equal(t, 1, series)

	rec.CaptureError(errors.New("boom"), nil)
	countErrors := `
# HELP sentryos_counter_total Counters recorded through the telemetry facade.
# TYPE sentryos_counter_total counter
sentryos_counter_total{name="errors_captured"} 1
sentryos_counter_total{name="relay.requests"} 5
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(countErrors),
		"sentryos_counter_total"))
}

func TestTelemetry_MetricsHandler(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec, err := telemetry.NewRecorder(telemetry.Options{Registry: reg})
	require.NoError(t, err)

	rec.Count("handler.test", 1, nil)
	assert.NotNil(t, rec.MetricsHandler())
}

func TestTelemetry_StartSpan(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec, err := telemetry.NewRecorder(telemetry.Options{Registry: reg})
	require.NoError(t, err)

	ctx, finish := rec.StartSpan(context.Background(), "assistant.stream", "email")
	require.NotNil(t, ctx)
	finish()

	// Finishing a span records its duration as a distribution under the op.
	series, err := testutil.GatherAndCount(reg, "sentryos_distribution")
	require.NoError(t, err)
	assert.Equal(t, 1, series)
}
