// Package telemetry wires OpenTelemetry tracing.
package telemetry

import (
	"context"

	"github.com/caarlos0/env/v11"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"

	"github.com/Hagni1/jurney/internal/errors"
)

// Settings is read from the environment
type Settings struct {
	// Endpoint is an OTLP/HTTP URL such as http://localhost:4318. Empty disables tracing.
	Endpoint string `env:"JOURNEY_OTEL_ENDPOINT"`
	Enabled  bool   `env:"JOURNEY_OTEL_ENABLED" envDefault:"true"`
	// SampleRatio is the share of root spans kept
	SampleRatio float64 `env:"JOURNEY_OTEL_SAMPLE_RATIO" envDefault:"1"`
}

// SettingsFromEnv parses Settings
func SettingsFromEnv() (Settings, error) {
	var s Settings
	if err := env.Parse(&s); err != nil {
		return Settings{}, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse telemetry env")
	}
	return s, nil
}

// Setup installs a global tracer provider exporting to s.Endpoint.
// When tracing is off it returns a no-op shutdown and leaves the globals alone.
func Setup(ctx context.Context, serviceName string, s Settings) (shutdown func(context.Context) error, err error) {
	noop := func(context.Context) error { return nil }

	if !s.Enabled || s.Endpoint == "" {
		return noop, nil
	}

	exporter, err := otlptracehttp.New(ctx, otlptracehttp.WithEndpointURL(s.Endpoint))
	if err != nil {
		return noop, errors.Wrap(err, "failed to create trace exporter")
	}

	res, err := resource.New(ctx, resource.WithAttributes(semconv.ServiceName(serviceName)))
	if err != nil {
		return noop, errors.Wrap(err, "failed to build trace resource")
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(s.SampleRatio))),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Shutdown, nil
}
