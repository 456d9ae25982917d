package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"

	mw "github.com/donaldgifford/price-trigger-monitor/internal/api/middleware"
)

// The global tracer provider is process-wide, so this test is not parallel.
func TestTracing(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})
	t.Cleanup(func() { _ = tp.Shutdown(t.Context()) })

	e := echo.New()
	e.Use(mw.Tracing())

	var handlerSpan trace.SpanContext
	e.GET("/api/v1/triggers/:id", func(c echo.Context) error {
		handlerSpan = trace.SpanContextFromContext(c.Request().Context())
		return c.NoContent(http.StatusOK)
	})
	e.POST("/api/v1/triggers", func(echo.Context) error {
		return echo.NewHTTPError(http.StatusInternalServerError, "db down")
	})
	e.GET("/healthz", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	const parent = "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01"
	req := httptest.NewRequest(http.MethodGet, "/api/v1/triggers/t1", http.NoBody)
	req.Header.Set("traceparent", parent)
	e.ServeHTTP(httptest.NewRecorder(), req)

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/v1/triggers", http.NoBody))
	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/healthz", http.NoBody))

	spans := sr.Ended()
	require.Len(t, spans, 2, "probe paths are not traced")

	get := spans[0]
	assert.Equal(t, "GET /api/v1/triggers/:id", get.Name())
	assert.Equal(t, trace.SpanKindServer, get.SpanKind())
	assert.Equal(t, "4bf92f3577b34da6a3ce929d0e0e4736", get.SpanContext().TraceID().String())
	assert.Equal(t, get.SpanContext().SpanID(), handlerSpan.SpanID())
	assert.Contains(t, get.Attributes(), attribute.Int("http.response.status_code", http.StatusOK))

	post := spans[1]
	assert.Equal(t, codes.Error, post.Status().Code)
	assert.Contains(t, post.Attributes(), attribute.Int("http.response.status_code", http.StatusInternalServerError))
}
