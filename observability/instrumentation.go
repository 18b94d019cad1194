package observability

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/kbukum/testrail/errors"
)

// Instrumentation traces and measures HTTP round-trips. The zero value is not
// usable; use NewInstrumentation or Default.
type Instrumentation struct {
	tracer  trace.Tracer
	metrics *Metrics
}

// NewInstrumentation creates instruments on the given providers.
func NewInstrumentation(tp trace.TracerProvider, mp metric.MeterProvider) (*Instrumentation, error) {
	metrics, err := NewMetrics(mp.Meter(ScopeName))
	if err != nil {
		return nil, err
	}
	return &Instrumentation{tracer: tp.Tracer(ScopeName), metrics: metrics}, nil
}

// Default uses the global providers, which are no-ops until InitTracer or
// InitMeter install real ones.
func Default() *Instrumentation {
	inst, err := NewInstrumentation(otel.GetTracerProvider(), otel.GetMeterProvider())
	if err != nil {
		// Global providers only fail on invalid instrument names.
		panic(err)
	}
	return inst
}

// RoundTrip tracks one HTTP exchange.
type RoundTrip struct {
	span    trace.Span
	metrics *Metrics
	method  string
	started time.Time
}

// Start opens a span for one exchange and returns the context carrying it.
func (i *Instrumentation) Start(ctx context.Context, method, path, requestID string) (context.Context, *RoundTrip) {
	ctx, span := i.tracer.Start(ctx, SpanRequest,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String(AttrMethod, method),
			attribute.String(AttrPath, path),
			attribute.String(AttrRequestID, requestID),
		),
	)
	i.metrics.RecordRequestStart(ctx)
	return ctx, &RoundTrip{span: span, metrics: i.metrics, method: method, started: time.Now()}
}

// End closes the span. status is 0 when no status line was read.
func (r *RoundTrip) End(ctx context.Context, status int, err error) {
	if status > 0 {
		r.span.SetAttributes(attribute.Int(AttrStatusCode, status))
	}
	if err != nil {
		r.span.RecordError(err)
		r.span.SetStatus(codes.Error, err.Error())
		if appErr, ok := errors.AsAppError(err); ok {
			r.span.SetAttributes(attribute.String(AttrErrorCode, string(appErr.Code)))
		}
	}
	r.span.End()
	r.metrics.RecordRequestEnd(ctx, r.method, status, time.Since(r.started))
}

// Page records one decoded page on the current span.
func (i *Instrumentation) Page(ctx context.Context, resource string, index, items int) {
	trace.SpanFromContext(ctx).AddEvent("page", trace.WithAttributes(
		attribute.String("resource", resource),
		attribute.Int(AttrPage, index),
		attribute.Int("items", items),
	))
	i.metrics.RecordPage(ctx, resource)
}

// Fail counts a failed call.
func (i *Instrumentation) Fail(ctx context.Context, err error) {
	code := "UNKNOWN"
	if appErr, ok := errors.AsAppError(err); ok {
		code = string(appErr.Code)
	}
	i.metrics.RecordError(ctx, code)
}
