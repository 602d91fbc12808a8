// Package trace sends spans to Datadog when tracing is switched on
// with TABULATE_TRACE=1.
package trace

import (
	"context"
	"os"

	"gopkg.in/DataDog/dd-trace-go.v1/ddtrace"
	"gopkg.in/DataDog/dd-trace-go.v1/ddtrace/tracer"
)

var (
	globalDDTraceID string
	globalDDSpanID  string
)

// MaybeTrace starts the tracer if TABULATE_TRACE=1 is set in the
// environment. DD_TRACE_ID and DD_SPAN_ID, when present, become the
// parent of every span we emit; they are unset again so that
// subprocesses don't parent onto them twice.
func MaybeTrace(serviceVersion string) bool {
	if os.Getenv("TABULATE_TRACE") != "1" {
		return false
	}

	globalDDTraceID = os.Getenv("DD_TRACE_ID")
	globalDDSpanID = os.Getenv("DD_SPAN_ID")
	os.Unsetenv("DD_TRACE_ID")
	os.Unsetenv("DD_SPAN_ID")

	opts := []tracer.StartOption{
		tracer.WithService("tabulate"),
		tracer.WithServiceVersion(serviceVersion),
	}
	if logger, err := NewDatadogLogger(); err == nil {
		opts = append(opts, tracer.WithLogger(logger))
	}
	tracer.Start(opts...)
	return true
}

// Stop flushes and stops the tracer started by MaybeTrace.
func Stop() {
	tracer.Stop()
}

func StartSpanFromExistingContext(name string) (ddtrace.Span, context.Context) {
	ctx := context.Background()
	parentContext, _ := GetParentContext()
	if parentContext == nil {
		return tracer.StartSpanFromContext(ctx, name)
	}
	return tracer.StartSpanFromContext(ctx, name, WithParentContext(parentContext))
}

func GetParentContext() (*SpanContext, error) {
	traceID := globalDDTraceID
	spanID := globalDDSpanID
	if traceID == "" || spanID == "" {
		return nil, nil
	}
	parentContext := &SpanContext{}
	err := parentContext.ParseTraceID(traceID)
	if err != nil {
		return nil, err
	}
	err = parentContext.ParseSpanID(spanID)
	if err != nil {
		return nil, err
	}
	return parentContext, nil
}

func WithParentContext(c *SpanContext) ddtrace.StartSpanOption {
	return func(cfg *ddtrace.StartSpanConfig) {
		cfg.Parent = c
	}
}
