// Package telemetry provides structured logging (zerolog), Prometheus
// metrics, and OpenTelemetry tracing for groupforge.
//
// All three are optional: a disabled Metrics or Tracer is a safe no-op,
// so library code can record unconditionally and the CLI decides what is
// actually collected.
package telemetry
