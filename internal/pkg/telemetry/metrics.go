package telemetry

import (
	"context"

	"go.opentelemetry.io/contrib/instrumentation/runtime"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/sdk/metric"
)

// InitMeterProvider exposes OpenTelemetry instruments, Go runtime metrics
// included, on the default Prometheus registry served at /metrics.
func InitMeterProvider(serviceName, serviceVersion string) (ShutdownFunc, error) {
	exporter, err := prometheus.New()
	if err != nil {
		return nil, err
	}

	mp := metric.NewMeterProvider(
		metric.WithReader(exporter),
		metric.WithResource(newResource(serviceName, serviceVersion)),
	)
	otel.SetMeterProvider(mp)

	if err = runtime.Start(); err != nil {
		_ = mp.Shutdown(context.Background())
		return nil, err
	}

	return mp.Shutdown, nil
}
