package tracing

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func recordSpans(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	prev := Tracer
	Tracer = tp.Tracer(ServiceName)
	t.Cleanup(func() {
		Tracer = prev
		_ = tp.Shutdown(context.Background())
	})
	return sr
}

func attrs(span sdktrace.ReadOnlySpan) map[attribute.Key]attribute.Value {
	m := map[attribute.Key]attribute.Value{}
	for _, kv := range span.Attributes() {
		m[kv.Key] = kv.Value
	}
	return m
}

func TestStartSpanAndEnd(t *testing.T) {
	sr := recordSpans(t)

	_, span := StartSpan(context.Background(), "ProgressService.Update", AttrUnit.String("task"), AttrUser.String("s1"))
	End(span, "past_deadline", errors.New("Past deadline, no further update possible"))

	ended := sr.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, "courseware.ProgressService.Update", ended[0].Name())
	a := attrs(ended[0])
	assert.Equal(t, "task", a[AttrUnit].AsString())
	assert.Equal(t, "s1", a[AttrUser].AsString())
	assert.Equal(t, "past_deadline", a[AttrOutcome].AsString())
	assert.Equal(t, codes.Error, ended[0].Status().Code)
	assert.Len(t, ended[0].Events(), 1, "错误作为 exception 事件记录")
}

func TestEndWithoutError(t *testing.T) {
	sr := recordSpans(t)

	_, span := StartSpan(context.Background(), "ProgressService.Create")
	End(span, "ok", nil)

	ended := sr.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, codes.Unset, ended[0].Status().Code)
	assert.Equal(t, "ok", attrs(ended[0])[AttrOutcome].AsString())
}

func TestGinMiddlewareUsesRouteTemplate(t *testing.T) {
	sr := recordSpans(t)
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(GinMiddleware())
	r.GET("/api/progress/:id", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/api/boom", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/progress/p-42", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/boom", nil))

	ended := sr.Ended()
	require.Len(t, ended, 2)
	assert.Equal(t, "GET /api/progress/:id", ended[0].Name())
	assert.Equal(t, int64(200), attrs(ended[0])["http.status_code"].AsInt64())
	assert.Equal(t, codes.Unset, ended[0].Status().Code)
	assert.Equal(t, codes.Error, ended[1].Status().Code)
}
