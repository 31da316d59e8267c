package infrastructure

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.28.0"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"

	"asteroidcli/internal/config"
)

// InstrumentationName identifies spans and instruments created by this module
const InstrumentationName = "asteroidcli"

// traceWriter receives spans from the stdout exporter; stdout itself carries the report.
var traceWriter io.Writer = os.Stderr

// Telemetry bundles the tracer and run metrics for one process run.
type Telemetry struct {
	Tracer  trace.Tracer
	Metrics *RunMetrics

	tracerProvider *sdktrace.TracerProvider
	meterProvider  *sdkmetric.MeterProvider
	registry       *prometheus.Registry
	metricsFile    string
	logger         *slog.Logger
}

// RunMetrics are recorded once per run and written out on Shutdown
type RunMetrics struct {
	Records  metric.Int64Counter
	NEO      metric.Int64Counter
	PHA      metric.Int64Counter
	Duration metric.Float64Histogram
}

// InitializeTelemetry sets up tracing and run metrics according to cfg.
// Disabled parts fall back to no-op implementations, so callers never nil-check.
func InitializeTelemetry(cfg config.TelemetryConfig, logger *slog.Logger) (*Telemetry, error) {
	if logger == nil {
		logger = GetLogger()
	}

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(cfg.ServiceName),
		semconv.ServiceVersion(config.AppVersion),
	)

	t := &Telemetry{
		metricsFile: cfg.MetricsFile,
		logger:      logger,
	}

	if err := t.initializeTracing(cfg, res); err != nil {
		return nil, fmt.Errorf("failed to initialize tracing: %w", err)
	}
	if err := t.initializeMetrics(res); err != nil {
		return nil, fmt.Errorf("failed to initialize metrics: %w", err)
	}

	logger.Debug("Telemetry initialized",
		slog.String("trace_exporter", cfg.TraceExporter),
		slog.Bool("metrics_enabled", cfg.MetricsFile != ""))

	return t, nil
}

func (t *Telemetry) initializeTracing(cfg config.TelemetryConfig, res *resource.Resource) error {
	switch cfg.TraceExporter {
	case "", "none":
		t.Tracer = tracenoop.NewTracerProvider().Tracer(InstrumentationName)
		return nil
	case "stdout":
		exporter, err := stdouttrace.New(
			stdouttrace.WithWriter(traceWriter),
			stdouttrace.WithPrettyPrint(),
		)
		if err != nil {
			return fmt.Errorf("failed to create trace exporter: %w", err)
		}
		tp := sdktrace.NewTracerProvider(
			sdktrace.WithBatcher(exporter),
			sdktrace.WithResource(res),
		)
		otel.SetTracerProvider(tp)
		t.tracerProvider = tp
		t.Tracer = tp.Tracer(InstrumentationName, trace.WithInstrumentationVersion(config.AppVersion))
		return nil
	default:
		return fmt.Errorf("unsupported trace exporter: %s", cfg.TraceExporter)
	}
}

func (t *Telemetry) initializeMetrics(res *resource.Resource) error {
	var meter metric.Meter
	if t.metricsFile == "" {
		meter = metricnoop.NewMeterProvider().Meter(InstrumentationName)
	} else {
		t.registry = prometheus.NewRegistry()
		exporter, err := otelprom.New(
			otelprom.WithRegisterer(t.registry),
			otelprom.WithoutScopeInfo(),
			otelprom.WithoutTargetInfo(),
		)
		if err != nil {
			return fmt.Errorf("failed to create prometheus exporter: %w", err)
		}
		t.meterProvider = sdkmetric.NewMeterProvider(
			sdkmetric.WithResource(res),
			sdkmetric.WithReader(exporter),
		)
		meter = t.meterProvider.Meter(InstrumentationName, metric.WithInstrumentationVersion(config.AppVersion))
	}

	m, err := newRunMetrics(meter)
	if err != nil {
		return err
	}
	t.Metrics = m
	return nil
}

func newRunMetrics(meter metric.Meter) (*RunMetrics, error) {
	records, err := meter.Int64Counter("asteroid_records",
		metric.WithDescription("Dataset records processed"))
	if err != nil {
		return nil, err
	}
	neo, err := meter.Int64Counter("asteroid_neo",
		metric.WithDescription("Near-Earth objects found"))
	if err != nil {
		return nil, err
	}
	pha, err := meter.Int64Counter("asteroid_pha",
		metric.WithDescription("Potentially hazardous asteroids found"))
	if err != nil {
		return nil, err
	}
	duration, err := meter.Float64Histogram("asteroid_run_duration",
		metric.WithDescription("Wall time of one report run"),
		metric.WithUnit("s"))
	if err != nil {
		return nil, err
	}
	return &RunMetrics{Records: records, NEO: neo, PHA: pha, Duration: duration}, nil
}

// Shutdown writes the metrics textfile, if configured, and flushes spans.
func (t *Telemetry) Shutdown(ctx context.Context) error {
	var errs []error

	if t.registry != nil {
		if err := prometheus.WriteToTextfile(t.metricsFile, t.registry); err != nil {
			errs = append(errs, fmt.Errorf("write metrics file %s: %w", t.metricsFile, err))
		} else {
			t.logger.DebugContext(ctx, "Metrics written", slog.String("path", t.metricsFile))
		}
	}
	if t.meterProvider != nil {
		if err := t.meterProvider.Shutdown(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	if t.tracerProvider != nil {
		if err := t.tracerProvider.Shutdown(ctx); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
