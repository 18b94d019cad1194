// Package observability provides OpenTelemetry tracing and metrics for the
// TestRail client.
//
// Every HTTP round-trip opens a "testrail.request" span and records request
// count, duration and in-flight metrics. Instrumentation defaults to the
// global providers, so nothing is exported until the application installs
// real ones, as trctl does when given --otlp-endpoint:
//
//	tp, err := observability.InitTracer(ctx, observability.DefaultTracerConfig("trctl"), log)
//	defer tp.Shutdown(ctx)
//
//	mp, err := observability.InitMeter(ctx, observability.DefaultMeterConfig("trctl"), log)
//	defer mp.Shutdown(ctx)
package observability
