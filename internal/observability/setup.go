package observability

import (
	"context"
	"errors"
	"fmt"
)

// TelemetryOptions selects which OTLP exporters Setup starts.
type TelemetryOptions struct {
	ServiceName string
	ExportLogs  bool
}

// Setup starts tracing, metrics and, optionally, log export. The returned
// shutdown flushes every started provider, newest first.
func Setup(ctx context.Context, opts TelemetryOptions) (func(context.Context) error, error) {
	var shutdowns []func(context.Context) error

	shutdown := func(ctx context.Context) error {
		var errs []error
		for i := len(shutdowns) - 1; i >= 0; i-- {
			errs = append(errs, shutdowns[i](ctx))
		}
		return errors.Join(errs...)
	}

	traceShutdown, err := InitTracing(ctx, opts.ServiceName)
	if err != nil {
		return nil, fmt.Errorf("init tracing: %w", err)
	}
	shutdowns = append(shutdowns, traceShutdown)

	metricShutdown, err := InitMetrics(ctx, opts.ServiceName)
	if err != nil {
		_ = shutdown(ctx)
		return nil, fmt.Errorf("init metrics: %w", err)
	}
	shutdowns = append(shutdowns, metricShutdown)

	if opts.ExportLogs {
		logShutdown, err := InitLogging(ctx, opts.ServiceName)
		if err != nil {
			_ = shutdown(ctx)
			return nil, fmt.Errorf("init logging: %w", err)
		}
		shutdowns = append(shutdowns, logShutdown)
	}

	return shutdown, nil
}
