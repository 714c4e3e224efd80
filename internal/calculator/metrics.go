package calculator

import (
	"context"
	"fmt"

	"massiohealth/internal/bmi"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

// Metric instruments. They start as no-ops and are replaced by InitMetrics.
var (
	opsCounter   metric.Int64Counter     = noop.Int64Counter{}
	opsHistogram metric.Float64Histogram = noop.Float64Histogram{}
	errorCounter metric.Int64Counter     = noop.Int64Counter{}
	bmiGauge     metric.Float64Gauge     = noop.Float64Gauge{}
)

// classifications is scraped from /metrics regardless of OTLP export.
var classifications = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "massiohealth_bmi_classifications_total",
		Help: "Number of BMI computations by resulting category.",
	},
	[]string{"category", "source"},
)

// InitMetrics registers custom OTel metric instruments for the calculator domain.
// Call this once at startup (after observability.InitMetrics).
func InitMetrics() error {
	meter := otel.Meter("calculator")

	var err error

	opsCounter, err = meter.Int64Counter("calculator.operations.total",
		metric.WithDescription("Total number of BMI computations performed"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return fmt.Errorf("creating ops counter: %w", err)
	}

	opsHistogram, err = meter.Float64Histogram("calculator.operation.duration",
		metric.WithDescription("Duration of BMI computations in milliseconds"),
		metric.WithUnit("ms"),
		metric.WithExplicitBucketBoundaries(0.01, 0.05, 0.1, 0.5, 1, 5, 10),
	)
	if err != nil {
		return fmt.Errorf("creating ops histogram: %w", err)
	}

	errorCounter, err = meter.Int64Counter("calculator.errors.total",
		metric.WithDescription("Total number of rejected BMI requests"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return fmt.Errorf("creating error counter: %w", err)
	}

	bmiGauge, err = meter.Float64Gauge("calculator.last_bmi",
		metric.WithDescription("The rounded BMI of the last computation"),
		metric.WithUnit("kg/m2"),
	)
	if err != nil {
		return fmt.Errorf("creating bmi gauge: %w", err)
	}

	return nil
}

// Observe records one successful computation. source names the surface that
// produced it ("api", "batch", "form").
func Observe(ctx context.Context, source string, res bmi.Result, elapsedMS float64) {
	attrs := metric.WithAttributes(
		attribute.String("operation", source),
		attribute.String("category", res.Category.String()),
	)
	opsCounter.Add(ctx, 1, attrs)
	opsHistogram.Record(ctx, elapsedMS, attrs)
	bmiGauge.Record(ctx, res.Value, attrs)

	classifications.WithLabelValues(res.Category.String(), source).Inc()
}
