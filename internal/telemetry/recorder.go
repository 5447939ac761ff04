package telemetry

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Options configures the SDK-backed Recorder. An empty DSN disables the
// Sentry side entirely (events are dropped by the SDK) while metrics and
// logging stay live, so missing credentials degrade silently.
type Options struct {
	DSN         string
	Environment string
	Release     string

	// Registry receives the facade's metric vectors. Nil means a fresh
	// registry with the standard Go and process collectors attached.
	Registry *prometheus.Registry
}

// Telemetry is the production Recorder: errors, breadcrumbs, user context and
// spans go to Sentry; counters, gauges and distributions go to Prometheus;
// leveled logs go to slog.
type Telemetry struct {
	registry *prometheus.Registry

	counters *prometheus.CounterVec
	gauges   *prometheus.GaugeVec
	dists    *prometheus.HistogramVec
}

// Metric vectors are keyed by the facade-level metric name only. Free-form
// tags go to the Sentry side; folding them into Prometheus labels would make
// the label set unbounded.
func NewRecorder(opts Options) (*Telemetry, error) {
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              opts.DSN,
		Environment:      opts.Environment,
		Release:          opts.Release,
		EnableTracing:    true,
		TracesSampleRate: 1.0,
	}); err != nil {
		return nil, err
	}

	reg := opts.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	t := &Telemetry{
		registry: reg,
		counters: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sentryos_counter_total",
			Help: "Counters recorded through the telemetry facade.",
		}, []string{"name"}),
		gauges: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "sentryos_gauge",
			Help: "Gauges recorded through the telemetry facade.",
		}, []string{"name"}),
		dists: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "sentryos_distribution",
			Help:    "Distributions recorded through the telemetry facade.",
			Buckets: prometheus.DefBuckets,
		}, []string{"name"}),
	}
	reg.MustRegister(t.counters, t.gauges, t.dists)

	return t, nil
}

// MetricsHandler exposes the facade's registry for the /metrics route.
func (t *Telemetry) MetricsHandler() http.Handler {
	return promhttp.HandlerFor(t.registry, promhttp.HandlerOpts{})
}

// Flush drains buffered Sentry events, typically on shutdown.
func (t *Telemetry) Flush(timeout time.Duration) {
	sentry.Flush(timeout)
}

func (t *Telemetry) Count(name string, value int64, tags map[string]string) {
	t.counters.WithLabelValues(name).Add(float64(value))
	t.breadcrumbMetric("counter", name, float64(value), tags)
}

func (t *Telemetry) Gauge(name string, value float64, tags map[string]string) {
	t.gauges.WithLabelValues(name).Set(value)
	t.breadcrumbMetric("gauge", name, value, tags)
}

func (t *Telemetry) Distribution(name string, value float64, tags map[string]string) {
	t.dists.WithLabelValues(name).Observe(value)
	t.breadcrumbMetric("distribution", name, value, tags)
}

func (t *Telemetry) breadcrumbMetric(kind, name string, value float64, tags map[string]string) {
	data := map[string]any{"kind": kind, "value": value}
	for k, v := range tags {
		data[k] = v
	}
	sentry.AddBreadcrumb(&sentry.Breadcrumb{
		Category:  "metric." + name,
		Level:     sentry.LevelInfo,
		Data:      data,
		Timestamp: time.Now(),
	})
}

func (t *Telemetry) Breadcrumb(category, message string, data map[string]any) {
	sentry.AddBreadcrumb(&sentry.Breadcrumb{
		Category:  category,
		Message:   message,
		Level:     sentry.LevelInfo,
		Data:      data,
		Timestamp: time.Now(),
	})
}

func (t *Telemetry) Log(level slog.Level, msg string, args ...any) {
	slog.Log(context.Background(), level, msg, args...)
}

func (t *Telemetry) CaptureError(err error, tags map[string]string) {
	t.counters.WithLabelValues("errors_captured").Inc()
	sentry.WithScope(func(scope *sentry.Scope) {
		for k, v := range tags {
			scope.SetTag(k, v)
		}
		sentry.CaptureException(err)
	})
}

func (t *Telemetry) SetUser(id, username, email string) {
	sentry.ConfigureScope(func(scope *sentry.Scope) {
		scope.SetUser(sentry.User{ID: id, Username: username, Email: email})
	})
}

func (t *Telemetry) ClearUser() {
	sentry.ConfigureScope(func(scope *sentry.Scope) {
		scope.SetUser(sentry.User{})
	})
}

func (t *Telemetry) SetTag(key, value string) {
	sentry.ConfigureScope(func(scope *sentry.Scope) {
		scope.SetTag(key, value)
	})
}

func (t *Telemetry) StartSpan(ctx context.Context, op, description string) (context.Context, func()) {
	span := sentry.StartSpan(ctx, op, sentry.WithDescription(description))
	start := time.Now()
	return span.Context(), func() {
		span.Finish()
		t.dists.WithLabelValues(op).Observe(time.Since(start).Seconds())
	}
}
