// SPDX-License-Identifier: MIT

package simulation

import (
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/katalvlaran/rdsim/simulation"

var (
	tracerOnce sync.Once
	simTracer  trace.Tracer
)

// getTracer resolves the tracer lazily so a provider installed after import
// is still picked up.
func getTracer() trace.Tracer {
	tracerOnce.Do(func() {
		simTracer = otel.Tracer(tracerName)
	})
	return simTracer
}

// endSpan records err on span, if any, and ends it.
func endSpan(span trace.Span, err error, ok string) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, ok)
	}
	span.End()
}
