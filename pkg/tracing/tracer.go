// Package tracing provides the shared OTel tracer helper.
//
// When no TracerProvider is registered (tests, local dev) the global no-op
// provider is used and all calls are inert.
package tracing

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "numiflow-website"

// Start creates a span as a child of the span in ctx. The caller must End it.
//
//	ctx, span := tracing.Start(ctx, "contact.submit",
//	    attribute.String("numiflow.form.id", id),
//	)
//	defer span.End()
func Start(ctx context.Context, spanName string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return otel.Tracer(tracerName).Start(ctx, spanName, trace.WithAttributes(attrs...))
}

// Fail records err on span and marks it as failed. A nil err is a no-op.
func Fail(span trace.Span, err error) {
	if err == nil {
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
