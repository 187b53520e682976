// Package observe provides application-wide observability primitives for
// DocVox: OpenTelemetry metrics, tracing helpers, structured logging, and
// HTTP middleware that ties them together.
//
// Metrics are recorded through the OpenTelemetry Metrics API. A Prometheus
// exporter bridge is available via [InitProvider] so that metrics can still
// be scraped via the standard /metrics endpoint. A package-level default
// [Metrics] instance ([DefaultMetrics]) is provided for convenience; tests
// should use [NewMetrics] with a custom [metric.MeterProvider] to avoid
// cross-test pollution.
package observe

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// meterName is the instrumentation scope name used for all DocVox metrics.
const meterName = "github.com/NithinRegidi/docvox"

// Metrics holds all OpenTelemetry metric instruments for the application.
// All fields are safe for concurrent use; the underlying OTel types handle
// their own synchronisation.
type Metrics struct {
	// CommandDuration tracks end-to-end voice-command processing latency
	// (normalise + match + compose + dispatch).
	CommandDuration metric.Float64Histogram

	// IntentMatches counts recognised commands. Use with attributes:
	//   attribute.String("intent", ...), attribute.String("tier", ...)
	IntentMatches metric.Int64Counter

	// UnknownCommands counts transcripts that fell through every tier.
	UnknownCommands metric.Int64Counter

	// SynthesisDispatches counts fire-and-forget speak calls. Use with
	// attribute: attribute.String("status", "ok"|"error")
	SynthesisDispatches metric.Int64Counter

	// TranslateRequests counts translate dispatches. Use with attribute:
	//   attribute.String("language", ...)
	TranslateRequests metric.Int64Counter

	// CaptureErrors counts errors surfaced by the capture collaborator.
	CaptureErrors metric.Int64Counter

	// ActiveSessions tracks the number of live command sessions.
	ActiveSessions metric.Int64UpDownCounter

	// HTTPRequestDuration tracks HTTP request processing time. Use with
	// attributes: attribute.String("method", ...), attribute.String("path", ...)
	HTTPRequestDuration metric.Float64Histogram
}

// latencyBuckets defines histogram bucket boundaries (in seconds) optimised
// for local command-processing latencies.
var latencyBuckets = []float64{
	0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1,
}

// NewMetrics creates a fully initialised [Metrics] struct using the given
// [metric.MeterProvider]. Returns an error if any instrument creation fails.
func NewMetrics(mp metric.MeterProvider) (*Metrics, error) {
	m := mp.Meter(meterName)
	var err error
	met := &Metrics{}

	if met.CommandDuration, err = m.Float64Histogram("docvox.command.duration",
		metric.WithDescription("End-to-end voice-command processing latency."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(latencyBuckets...),
	); err != nil {
		return nil, err
	}

	if met.IntentMatches, err = m.Int64Counter("docvox.intent.matches",
		metric.WithDescription("Recognised commands by intent and matching tier."),
	); err != nil {
		return nil, err
	}
	if met.UnknownCommands, err = m.Int64Counter("docvox.intent.unknown",
		metric.WithDescription("Transcripts that matched no intent."),
	); err != nil {
		return nil, err
	}
	if met.SynthesisDispatches, err = m.Int64Counter("docvox.synthesis.dispatches",
		metric.WithDescription("Fire-and-forget speech synthesis dispatches by status."),
	); err != nil {
		return nil, err
	}
	if met.TranslateRequests, err = m.Int64Counter("docvox.translate.requests",
		metric.WithDescription("Translate dispatches by target language."),
	); err != nil {
		return nil, err
	}
	if met.CaptureErrors, err = m.Int64Counter("docvox.capture.errors",
		metric.WithDescription("Errors surfaced by the speech capture collaborator."),
	); err != nil {
		return nil, err
	}

	if met.ActiveSessions, err = m.Int64UpDownCounter("docvox.active_sessions",
		metric.WithDescription("Number of live voice-command sessions."),
	); err != nil {
		return nil, err
	}

	if met.HTTPRequestDuration, err = m.Float64Histogram("docvox.http.request.duration",
		metric.WithDescription("HTTP request latency by method and path."),
		metric.WithUnit("s"),
	); err != nil {
		return nil, err
	}

	return met, nil
}

// defaultMetrics is the lazily-initialised package-level Metrics instance.
var (
	defaultMetrics     *Metrics
	defaultMetricsOnce sync.Once
)

// DefaultMetrics returns the package-level [Metrics] instance, creating it
// on first call using [otel.GetMeterProvider]. Subsequent calls return the
// same pointer. Panics if instrument creation fails (should not happen with
// the global provider).
func DefaultMetrics() *Metrics {
	defaultMetricsOnce.Do(func() {
		var err error
		defaultMetrics, err = NewMetrics(otel.GetMeterProvider())
		if err != nil {
			panic("observe: failed to create default metrics: " + err.Error())
		}
	})
	return defaultMetrics
}

// Attr is a convenience alias for [attribute.String] to reduce verbosity at
// call sites.
func Attr(key, value string) attribute.KeyValue {
	return attribute.String(key, value)
}

// RecordIntent records one recognised command with the standard attribute
// set, bumping the unknown counter as appropriate. Safe to call on a nil
// receiver (no-op), so callers need not branch on optional metrics.
func (m *Metrics) RecordIntent(ctx context.Context, intent, tier string) {
	if m == nil {
		return
	}
	m.IntentMatches.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("intent", intent),
			attribute.String("tier", tier),
		),
	)
	if intent == "UNKNOWN" {
		m.UnknownCommands.Add(ctx, 1)
	}
}

// RecordCommandDuration records one command's processing latency in seconds.
// Safe to call on a nil receiver.
func (m *Metrics) RecordCommandDuration(ctx context.Context, seconds float64) {
	if m == nil {
		return
	}
	m.CommandDuration.Record(ctx, seconds)
}

// RecordSynthesisDispatch records one speak dispatch outcome. Safe to call
// on a nil receiver.
func (m *Metrics) RecordSynthesisDispatch(ctx context.Context, status string) {
	if m == nil {
		return
	}
	m.SynthesisDispatches.Add(ctx, 1, metric.WithAttributes(attribute.String("status", status)))
}

// RecordTranslateRequest records one translate dispatch. Safe to call on a
// nil receiver.
func (m *Metrics) RecordTranslateRequest(ctx context.Context, language string) {
	if m == nil {
		return
	}
	m.TranslateRequests.Add(ctx, 1, metric.WithAttributes(attribute.String("language", language)))
}

// RecordCaptureError counts one capture collaborator error. Safe to call on
// a nil receiver.
func (m *Metrics) RecordCaptureError(ctx context.Context) {
	if m == nil {
		return
	}
	m.CaptureErrors.Add(ctx, 1)
}

// AddActiveSessions adjusts the live session gauge. Safe to call on a nil
// receiver.
func (m *Metrics) AddActiveSessions(ctx context.Context, delta int64) {
	if m == nil {
		return
	}
	m.ActiveSessions.Add(ctx, delta)
}
