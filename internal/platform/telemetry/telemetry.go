// Package telemetry wires OpenTelemetry tracing and metrics. Setup registers
// global providers backed by stdout exporters for development or OTLP/HTTP
// for production, and pre-registers the service's metric instruments.
//
//	providers, err := telemetry.Setup(ctx, telemetry.Config{
//	    ServiceName: "planmate",
//	    Exporter:    "stdout",
//	})
//	defer providers.Shutdown(ctx)
//
//	providers.Metrics.AuditRecordTotal.Add(ctx, 1, ...)
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.39.0"
)

// Attribute keys for metric labels.
var (
	AttrHTTPMethod = attribute.Key("http.method")
	AttrHTTPStatus = attribute.Key("http.status_code")
	AttrEntityType = attribute.Key("entity.type")
	AttrActionType = attribute.Key("action.type")
	AttrCollection = attribute.Key("db.collection")
	AttrResult     = attribute.Key("result")
)

// Config selects the exporters. Exporter "otlp" ships to Endpoint over
// OTLP/HTTP; any other value writes to stdout.
type Config struct {
	ServiceName string
	Exporter    string
	Endpoint    string
}

// Providers bundles the registered providers and instruments. The zero value
// is a valid no-op bundle for when telemetry is disabled.
type Providers struct {
	tracer *sdktrace.TracerProvider
	meter  *sdkmetric.MeterProvider

	Metrics *Metrics
}

// Metrics holds the pre-registered metric instruments.
type Metrics struct {
	ServerRequestDuration metric.Float64Histogram
	ServerRequestTotal    metric.Int64Counter
	AuditRecordTotal      metric.Int64Counter
	StorageOpDuration     metric.Float64Histogram
}

// Setup registers global tracer and meter providers and creates the metric
// instruments. The returned Providers must be shut down on exit to flush
// pending spans and metric points.
func Setup(ctx context.Context, cfg Config) (*Providers, error) {
	res, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(cfg.ServiceName),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	spanExporter, err := newSpanExporter(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating span exporter: %w", err)
	}
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(spanExporter),
		sdktrace.WithResource(res),
	)

	metricExporter, err := newMetricExporter(ctx, cfg)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}
	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(metricExporter)),
		sdkmetric.WithResource(res),
	)

	metrics, err := newMetrics(mp)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	otel.SetTracerProvider(tp)
	otel.SetMeterProvider(mp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return &Providers{tracer: tp, meter: mp, Metrics: metrics}, nil
}

// Shutdown flushes both providers. Nil-safe on a zero-value bundle.
func (p *Providers) Shutdown(ctx context.Context) error {
	var errs []error
	if p.tracer != nil {
		if err := p.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if p.meter != nil {
		if err := p.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func newMetrics(mp *sdkmetric.MeterProvider) (*Metrics, error) {
	meter := mp.Meter("github.com/planmate/planmate")

	var (
		m   Metrics
		err error
	)
	if m.ServerRequestDuration, err = meter.Float64Histogram(
		"http.server.request.duration",
		metric.WithDescription("Duration of incoming HTTP requests"),
		metric.WithUnit("s"),
	); err != nil {
		return nil, fmt.Errorf("creating http.server.request.duration: %w", err)
	}
	if m.ServerRequestTotal, err = meter.Int64Counter(
		"http.server.request.total",
		metric.WithDescription("Total number of incoming HTTP requests"),
		metric.WithUnit("{request}"),
	); err != nil {
		return nil, fmt.Errorf("creating http.server.request.total: %w", err)
	}
	if m.AuditRecordTotal, err = meter.Int64Counter(
		"audit.record.total",
		metric.WithDescription("Total number of audit records written"),
		metric.WithUnit("{record}"),
	); err != nil {
		return nil, fmt.Errorf("creating audit.record.total: %w", err)
	}
	if m.StorageOpDuration, err = meter.Float64Histogram(
		"db.operation.duration",
		metric.WithDescription("Duration of document store operations"),
		metric.WithUnit("s"),
	); err != nil {
		return nil, fmt.Errorf("creating db.operation.duration: %w", err)
	}
	return &m, nil
}

func newSpanExporter(ctx context.Context, cfg Config) (sdktrace.SpanExporter, error) {
	if cfg.Exporter != "otlp" {
		return stdouttrace.New(stdouttrace.WithPrettyPrint())
	}
	opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(hostPort(cfg.Endpoint))}
	if !isHTTPS(cfg.Endpoint) {
		opts = append(opts, otlptracehttp.WithInsecure())
	}
	return otlptracehttp.New(ctx, opts...)
}

func newMetricExporter(ctx context.Context, cfg Config) (sdkmetric.Exporter, error) {
	if cfg.Exporter != "otlp" {
		return stdoutmetric.New()
	}
	opts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(hostPort(cfg.Endpoint))}
	if !isHTTPS(cfg.Endpoint) {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}
	return otlpmetrichttp.New(ctx, opts...)
}

// hostPort strips the scheme from an endpoint URL, since the OTLP/HTTP
// options take host:port ("http://collector:4318" -> "collector:4318").
func hostPort(endpoint string) string {
	u, err := url.Parse(endpoint)
	if err != nil || u.Host == "" {
		return endpoint
	}
	return u.Host
}

func isHTTPS(endpoint string) bool {
	u, err := url.Parse(endpoint)
	if err != nil {
		return false
	}
	return u.Scheme == "https"
}
