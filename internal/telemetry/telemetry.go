// Package telemetry provides OpenTelemetry instrumentation for Honeycomb.
package telemetry

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

const (
	serviceName    = "dungeonmaze"
	serviceVersion = "0.2.0"

	honeycombEndpoint = "https://api.honeycomb.io"
)

// Options selects where spans are exported.
type Options struct {
	// APIKey is the Honeycomb team key. Without it no exporter is installed
	// and the global provider stays a no-op.
	APIKey string
	// Dataset defaults to the service name.
	Dataset string
}

// ExportEnv returns the OTEL_* variables the OTLP exporter reads for the
// given options. It is empty when no API key is configured.
func (o Options) ExportEnv() map[string]string {
	if o.APIKey == "" {
		return nil
	}
	dataset := o.Dataset
	if dataset == "" {
		dataset = serviceName
	}
	return map[string]string{
		"OTEL_EXPORTER_OTLP_ENDPOINT": honeycombEndpoint,
		"OTEL_EXPORTER_OTLP_HEADERS": fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s",
			o.APIKey, dataset),
	}
}

// Setup initializes OpenTelemetry with an OTLP HTTP exporter pointed at
// Honeycomb. With no API key it installs nothing and returns a shutdown
// function that does nothing.
//
// Returns a shutdown function that should be called on application exit.
func Setup(ctx context.Context, opts Options) (shutdown func(context.Context) error, err error) {
	env := opts.ExportEnv()
	if env == nil {
		return func(context.Context) error { return nil }, nil
	}
	for k, v := range env {
		if err := os.Setenv(k, v); err != nil {
			return nil, fmt.Errorf("set %s: %w", k, err)
		}
	}

	// Create OTLP HTTP exporter - automatically uses OTEL_* env vars
	exporter, err := otlptracehttp.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("create exporter: %w", err)
	}

	// We create our own resource without merging with Default() to avoid schema URL conflicts
	res, err := resource.New(ctx,
		resource.WithAttributes(
			attribute.String("service.name", serviceName),
			attribute.String("service.version", serviceVersion),
			attribute.String("telemetry.sdk.language", "go"),
			attribute.String("host.name", getHostname()),
			attribute.String("os.type", runtime.GOOS),
			attribute.String("process.runtime.version", runtime.Version()),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("build resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Shutdown, nil
}

// Tracer returns a named tracer for the given component.
func Tracer(name string) trace.Tracer {
	return otel.GetTracerProvider().Tracer(serviceName + "/" + name)
}

// getHostname returns the system hostname, or "unknown" if it cannot be determined.
func getHostname() string {
	hostname, err := os.Hostname()
	if err != nil {
		return "unknown"
	}
	return hostname
}
