package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"asteroidcli/internal/config"
	"asteroidcli/internal/dataprocessing"
	"asteroidcli/internal/exporter"
	"asteroidcli/internal/infrastructure"
	"asteroidcli/internal/validation"
	"asteroidcli/pkg/contracts/domain"
)

// Options are the per-run inputs taken from the command line
type Options struct {
	DatasetPath string
	// ReportPath selects spreadsheet mode when set, summary mode otherwise
	ReportPath string
}

// Application wires the loader, summarizer and reporters into one pipeline
type Application struct {
	Config     *config.Config
	Logger     *slog.Logger
	Telemetry  *infrastructure.Telemetry
	Validator  *validation.FileValidator
	Summarizer *dataprocessing.Summarizer
	Reporter   *exporter.ExcelReporter

	// Stdout receives the summary text and the report confirmation
	Stdout io.Writer
}

// New creates an Application. A nil telemetry gets no-op tracing and metrics;
// a nil stdout means os.Stdout.
func New(cfg *config.Config, logger *slog.Logger, tel *infrastructure.Telemetry, stdout io.Writer) (*Application, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = infrastructure.GetLogger()
	}
	if stdout == nil {
		stdout = os.Stdout
	}
	if tel == nil {
		var err error
		tel, err = infrastructure.InitializeTelemetry(config.TelemetryConfig{
			ServiceName:   config.AppName,
			TraceExporter: "none",
		}, logger)
		if err != nil {
			return nil, err
		}
	}

	return &Application{
		Config:     cfg,
		Logger:     logger,
		Telemetry:  tel,
		Validator:  validation.NewFileValidator(infrastructure.WithComponent(logger, "validation")),
		Summarizer: dataprocessing.NewSummarizer(infrastructure.WithComponent(logger, "summarizer")),
		Reporter:   exporter.NewExcelReporter(cfg.Report, infrastructure.WithComponent(logger, "exporter")),
		Stdout:     stdout,
	}, nil
}

// Run executes validate → load → summarize → report once.
// Both paths are validated before the dataset is opened.
func (a *Application) Run(ctx context.Context, opts Options) (err error) {
	ctx = infrastructure.EnsureTraceID(ctx)
	start := time.Now()

	ctx, span := a.Telemetry.Tracer.Start(ctx, "asteroid-report.run")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	a.Logger.InfoContext(ctx, "Starting asteroid report",
		slog.String("dataset", opts.DatasetPath),
		slog.String("report", opts.ReportPath))

	if err := a.step(ctx, "validate", func(context.Context) error {
		return a.validate(opts)
	}); err != nil {
		return err
	}

	var records []domain.Asteroid
	if err := a.step(ctx, "load", func(context.Context) error {
		var lerr error
		records, lerr = dataprocessing.ParseFile(opts.DatasetPath)
		return lerr
	}); err != nil {
		return err
	}

	var summary *domain.AsteroidSummary
	if err := a.step(ctx, "summarize", func(ctx context.Context) error {
		var serr error
		summary, serr = a.Summarizer.Summarize(ctx, records)
		return serr
	}); err != nil {
		return err
	}

	a.Telemetry.Metrics.Records.Add(ctx, int64(summary.ItemsTotal))
	a.Telemetry.Metrics.NEO.Add(ctx, int64(summary.NEOTotal))
	a.Telemetry.Metrics.PHA.Add(ctx, int64(summary.PHATotal))
	span.SetAttributes(
		attribute.Int("asteroid.items_total", summary.ItemsTotal),
		attribute.Int("asteroid.neo_total", summary.NEOTotal),
		attribute.Int("asteroid.pha_total", summary.PHATotal),
	)

	if err := a.step(ctx, "report", func(ctx context.Context) error {
		return a.report(ctx, summary, opts)
	}); err != nil {
		return err
	}

	elapsed := time.Since(start)
	a.Telemetry.Metrics.Duration.Record(ctx, elapsed.Seconds())
	a.Logger.InfoContext(ctx, "Asteroid report completed",
		slog.Duration("elapsed", elapsed))
	return nil
}

func (a *Application) validate(opts Options) error {
	if err := a.Validator.ValidateDatasetPath(opts.DatasetPath); err != nil {
		return err
	}
	if opts.ReportPath != "" {
		if err := a.Validator.ValidateReportPath(opts.ReportPath); err != nil {
			return err
		}
	}
	return a.Validator.ValidateFile(opts.DatasetPath)
}

func (a *Application) report(ctx context.Context, summary *domain.AsteroidSummary, opts Options) error {
	if opts.ReportPath == "" {
		return exporter.WriteSummary(a.Stdout, summary)
	}

	if err := a.Reporter.Export(ctx, summary, opts.ReportPath); err != nil {
		return err
	}
	_, err := fmt.Fprintf(a.Stdout, "The Excel report called '%s' has been created.\n", opts.ReportPath)
	return err
}

// step runs fn inside a child span named after the pipeline stage
func (a *Application) step(ctx context.Context, name string, fn func(context.Context) error) error {
	ctx, span := a.Telemetry.Tracer.Start(ctx, name)
	defer span.End()

	if err := fn(ctx); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		a.Logger.DebugContext(ctx, "Pipeline step failed",
			slog.String("step", name),
			slog.String("error", err.Error()))
		return err
	}
	return nil
}
