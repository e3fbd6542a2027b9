// Package metrics owns the OpenTelemetry instruments of the converter and the
// meter provider that exports them to Prometheus.
package metrics

import (
	"context"
	"fmt"
	"strings"
	"time"

	"ipconv/pkg/domain"
	"ipconv/pkg/serrors"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.00001, .00005, .0001, .0005, .001, .005, .01, .05, .1, .5, 1} //nolint: gochecknoglobals

// MeterName is the instrumentation scope used for every converter instrument.
const MeterName = "ipconv"

// OutcomeOK labels calls that finished without an error.
const OutcomeOK = "ok"

// NewMeterProvider creates a meter provider whose readings are exposed
// through the given Prometheus registerer.
func NewMeterProvider(registerer prometheus.Registerer) (*sdkmetric.MeterProvider, error) {
	exp, err := otelprom.New(otelprom.WithRegisterer(registerer))
	if err != nil {
		return nil, fmt.Errorf("could not create otel exporter: %w", err)
	}

	return sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp)), nil
}

// Recorder records conversion and synchronization activity.
// A nil *Recorder is valid and records nothing.
type Recorder struct {
	conversions metric.Int64Counter
	duration    metric.Float64Histogram
	edits       metric.Int64Counter
}

// NewRecorder creates the converter instruments on meter.
func NewRecorder(meter metric.Meter) (*Recorder, error) {
	conversions, err := meter.Int64Counter("ipconv.conversions",
		metric.WithDescription("Number of one-shot conversions by direction and outcome"))
	if err != nil {
		return nil, fmt.Errorf("could not create conversions counter: %w", err)
	}

	duration, err := meter.Float64Histogram("ipconv.conversion.duration",
		metric.WithDescription("Time spent converting a single value"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(DefaultBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create conversion duration histogram: %w", err)
	}

	edits, err := meter.Int64Counter("ipconv.edits",
		metric.WithDescription("Number of field edits by field and resulting state"))
	if err != nil {
		return nil, fmt.Errorf("could not create edits counter: %w", err)
	}

	return &Recorder{
		conversions: conversions,
		duration:    duration,
		edits:       edits,
	}, nil
}

// Outcome turns an error into a low-cardinality label value.
func Outcome(err error) string {
	if err == nil {
		return OutcomeOK
	}
	if k := serrors.KindOf(err); k != nil {
		return strings.ToLower(k.Error())
	}

	return strings.ToLower(serrors.ErrInternal.Error())
}

// Conversion records one conversion in direction that took elapsed and
// finished with err.
func (r *Recorder) Conversion(ctx context.Context, direction domain.Direction, err error, elapsed time.Duration) {
	if r == nil {
		return
	}

	attrs := metric.WithAttributes(
		attribute.String("direction", string(direction)),
		attribute.String("outcome", Outcome(err)),
	)
	r.conversions.Add(ctx, 1, attrs)
	r.duration.Record(ctx, elapsed.Seconds(), attrs)
}

// Edit records one edit of field that left it in state. Rejected edits are
// those dropped without changing anything.
func (r *Recorder) Edit(ctx context.Context, field domain.FieldName, state domain.FieldState, rejected bool) {
	if r == nil {
		return
	}

	r.edits.Add(ctx, 1, metric.WithAttributes(
		attribute.String("field", string(field)),
		attribute.String("state", string(state)),
		attribute.Bool("rejected", rejected),
	))
}
