// Package telemetry traces game sessions with OpenTelemetry.
package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

const (
	serviceName    = "hangman"
	serviceVersion = "0.1.0"

	honeycombEndpoint = "https://api.honeycomb.io"
	defaultDataset    = "hangman"
)

// Environment variables read by the package.
const (
	EnvEndpoint         = "OTEL_EXPORTER_OTLP_ENDPOINT"
	EnvTracesEndpoint   = "OTEL_EXPORTER_OTLP_TRACES_ENDPOINT"
	EnvHeaders          = "OTEL_EXPORTER_OTLP_HEADERS"
	EnvHoneycombKey     = "HONEYCOMB_HANGMAN_API_KEY"
	EnvHoneycombDataset = "HONEYCOMB_HANGMAN_DATASET"
)

// Span attribute keys recorded by the game.
const (
	SessionKey    = attribute.Key("hangman.session")
	WordLengthKey = attribute.Key("hangman.word.length")
	AttemptsKey   = attribute.Key("hangman.attempts")
	GuessKey      = attribute.Key("hangman.guess")
	HitKey        = attribute.Key("hangman.hit")
	TurnsLeftKey  = attribute.Key("hangman.turns_left")
	HiddenKey     = attribute.Key("hangman.hidden")
	GuessesKey    = attribute.Key("hangman.guesses")
	OutcomeKey    = attribute.Key("hangman.outcome")
)

// ConfigureHoneycomb maps the Honeycomb API key and dataset onto the standard
// OTLP variables, leaving an explicitly configured endpoint alone. It reports
// whether a key was found.
func ConfigureHoneycomb(getenv func(string) string, setenv func(string, string) error) (bool, error) {
	apiKey := getenv(EnvHoneycombKey)
	if apiKey == "" {
		return false, nil
	}
	dataset := getenv(EnvHoneycombDataset)
	if dataset == "" {
		dataset = defaultDataset
	}

	if getenv(EnvEndpoint) == "" {
		if err := setenv(EnvEndpoint, honeycombEndpoint); err != nil {
			return true, err
		}
	}
	headers := fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset)
	return true, setenv(EnvHeaders, headers)
}

// Enabled reports whether an OTLP endpoint is configured. Without one the
// global no-op provider stays in place and spans cost nothing.
func Enabled(getenv func(string) string) bool {
	return getenv(EnvEndpoint) != "" || getenv(EnvTracesEndpoint) != ""
}

// Setup installs a tracer provider exporting over OTLP/HTTP, configured from
// the standard OTEL_* environment variables. The returned function flushes
// pending spans and must be called before the process exits.
func Setup(ctx context.Context) (shutdown func(context.Context) error, err error) {
	exporter, err := otlptracehttp.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create OTLP exporter: %w", err)
	}

	res, err := newResource(ctx)
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Shutdown, nil
}

// newResource describes this process. It is built without resource.Default()
// to avoid schema URL conflicts.
func newResource(ctx context.Context) (*resource.Resource, error) {
	res, err := resource.New(ctx,
		resource.WithHost(),
		resource.WithOS(),
		resource.WithProcessRuntimeVersion(),
		resource.WithAttributes(
			attribute.String("service.name", serviceName),
			attribute.String("service.version", serviceVersion),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build telemetry resource: %w", err)
	}
	return res, nil
}

// Tracer returns a named tracer for the given component.
func Tracer(name string) trace.Tracer {
	return otel.GetTracerProvider().Tracer(serviceName + "/" + name)
}
