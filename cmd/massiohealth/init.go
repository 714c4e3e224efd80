package main

import (
	"context"

	"massiohealth/internal/calculator"
	"massiohealth/internal/config"
	"massiohealth/internal/observability"
)

// initTelemetry starts the OTLP providers when enabled and registers the
// application metric instruments. Add new domain InitMetrics calls here as the
// project grows.
func initTelemetry(ctx context.Context, tc config.TelemetryConfig) (func(context.Context) error, error) {
	shutdown := func(context.Context) error { return nil }

	if tc.Enabled {
		var err error
		shutdown, err = observability.Setup(ctx, observability.TelemetryOptions{
			ServiceName: tc.ServiceName,
			ExportLogs:  tc.ExportLogs,
		})
		if err != nil {
			return nil, err
		}
	}

	if err := calculator.InitMetrics(); err != nil {
		_ = shutdown(ctx)
		return nil, err
	}

	return shutdown, nil
}
