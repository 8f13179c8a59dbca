// observability.go: the capability interfaces an Invocation exposes to a
// running operation — structured logging, an audit trail, tracing, and
// metrics — so that render/check/stats can report what they did without
// the front-end hardcoding any particular backend.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package cliapp

import "context"

// Logger records what an operation is doing — which document it opened,
// how many references it resolved, why a run was refused.
type Logger interface {
	// Trace logs fine-grained, per-reference detail.
	Trace(ctx context.Context, msg string, fields ...Field)

	// Debug logs detail useful while diagnosing a single run.
	Debug(ctx context.Context, msg string, fields ...Field)

	// Info logs a normal, expected event (document opened, run complete).
	Info(ctx context.Context, msg string, fields ...Field)

	// Warn logs a recoverable problem (an undefined variable, a missing
	// heading) that did not abort the run.
	Warn(ctx context.Context, msg string, fields ...Field)

	// Error logs a failure that aborted or degraded the run.
	Error(ctx context.Context, msg string, fields ...Field)

	// WithFields returns a Logger that attaches fields to every
	// subsequent call, in addition to whatever each call adds itself.
	WithFields(fields ...Field) Logger
}

// AuditLogger records security-relevant activity separately from
// ordinary logging: which operation ran, which paths it touched, and
// whether any reference was refused.
type AuditLogger interface {
	// LogCommand records that an operation ran, with the input document
	// path (if any) and the user that invoked it.
	LogCommand(ctx context.Context, operation string, args []string, user string, fields ...Field)

	// LogAccess records an attempt to read a referenced file, and
	// whether it was allowed.
	LogAccess(ctx context.Context, resource string, action string, allowed bool, fields ...Field)

	// LogSecurity records a reference refused on security grounds —
	// path traversal, an absolute path, an escape of the containment
	// root.
	LogSecurity(ctx context.Context, event string, severity string, fields ...Field)

	// LogPerformance records how long an operation took.
	LogPerformance(ctx context.Context, operation string, duration int64, fields ...Field)
}

// Tracer opens spans around an operation's work, in the OpenTelemetry
// style: one span per run, child spans per reference resolved.
type Tracer interface {
	// StartSpan opens a span named name, derived from ctx.
	StartSpan(ctx context.Context, name string, opts ...SpanOption) (context.Context, Span)

	// SpanFromContext returns the span already active on ctx, if any.
	SpanFromContext(ctx context.Context) Span
}

// Span is one open trace span.
type Span interface {
	SetAttribute(key string, value interface{})
	SetStatus(code StatusCode, description string)
	RecordError(err error, opts ...ErrorOption)
	End()
}

// MetricsCollector exposes counters, gauges, and histograms an operation
// can update — references resolved, cache hits, run duration.
type MetricsCollector interface {
	Counter(name string, description string, labels ...string) Counter
	Gauge(name string, description string, labels ...string) Gauge
	Histogram(name string, description string, buckets []float64, labels ...string) Histogram
}

// Counter is a monotonically increasing count.
type Counter interface {
	Inc(ctx context.Context, labels ...string)
	Add(ctx context.Context, value float64, labels ...string)
}

// Gauge is a value that moves up and down — an open cache entry count,
// say.
type Gauge interface {
	Set(ctx context.Context, value float64, labels ...string)
	Inc(ctx context.Context, labels ...string)
	Dec(ctx context.Context, labels ...string)
	Add(ctx context.Context, value float64, labels ...string)
}

// Histogram records a distribution of observed values — resolution
// latency, say.
type Histogram interface {
	Observe(ctx context.Context, value float64, labels ...string)
}

// Field is one key/value pair attached to a log line.
type Field struct {
	Key   string
	Value interface{}
}

// StringField builds a string-valued Field.
func StringField(key, value string) Field {
	return Field{Key: key, Value: value}
}

// IntField builds an int-valued Field.
func IntField(key string, value int) Field {
	return Field{Key: key, Value: value}
}

// Float64Field builds a float64-valued Field.
func Float64Field(key string, value float64) Field {
	return Field{Key: key, Value: value}
}

// BoolField builds a bool-valued Field.
func BoolField(key string, value bool) Field {
	return Field{Key: key, Value: value}
}

// ErrorField wraps err as a Field under the conventional "error" key.
func ErrorField(err error) Field {
	return Field{Key: "error", Value: err}
}

// SpanOption configures a span at creation time.
type SpanOption interface {
	apply(*spanConfig)
}

// ErrorOption configures how an error is recorded on a span.
type ErrorOption interface {
	apply(*errorConfig)
}

// StatusCode is a span's terminal status.
type StatusCode int

const (
	StatusCodeUnset StatusCode = iota
	StatusCodeOK
	StatusCodeError
)

type spanConfig struct {
	_ struct{}
}

type errorConfig struct {
	_ struct{}
}
