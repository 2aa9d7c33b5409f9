// internal/telemetry/telemetry_test.go
package telemetry

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestRecordRequestCanceled(t *testing.T) {
	before := testutil.ToFloat64(requestsCanceledTotal.WithLabelValues("stale"))
	RecordRequestCanceled("stale")
	RecordRequestCanceled("stale")
	after := testutil.ToFloat64(requestsCanceledTotal.WithLabelValues("stale"))

	assert.Equal(t, 2.0, after-before)
}

func TestRecordRequestRejected(t *testing.T) {
	before := testutil.ToFloat64(requestsRejectedTotal.WithLabelValues("InvalidInput"))
	RecordRequestRejected("InvalidInput")
	assert.Equal(t, 1.0, testutil.ToFloat64(requestsRejectedTotal.WithLabelValues("InvalidInput"))-before)
}

func TestObserveHTTPRequest(t *testing.T) {
	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/health", "200"))
	ObserveHTTPRequest("GET", "/health", "200", 0.01)
	assert.Equal(t, 1.0, testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/health", "200"))-before)
}

func TestTraceID(t *testing.T) {
	assert.Empty(t, TraceID(context.Background()))

	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sdktrace.NewSimpleSpanProcessor(tracetest.NewInMemoryExporter())))
	ctx, span := tp.Tracer("test").Start(context.Background(), "op")
	defer span.End()

	id := TraceID(ctx)
	assert.Len(t, id, 32)
	assert.Equal(t, span.SpanContext().TraceID().String(), id)
}

func TestInitTracing_NoEndpoint(t *testing.T) {
	shutdown, err := InitTracing("pet-food", "", 1)
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}
