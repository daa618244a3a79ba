package monitoring

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestInitIsIdempotent(t *testing.T) {
	assert.NotPanics(t, func() {
		Init()
		Init()
	})
}

func TestObserveProgressWrite(t *testing.T) {
	before := testutil.ToFloat64(ProgressWrites.WithLabelValues("create", ResultPastDeadline))
	ObserveProgressWrite("create", ResultPastDeadline)
	assert.Equal(t, before+1, testutil.ToFloat64(ProgressWrites.WithLabelValues("create", ResultPastDeadline)))
}

func TestMetricsMiddlewareRouteLabel(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(MetricsMiddleware())
	r.GET("/api/units/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	matched := RequestCounter.WithLabelValues(http.MethodGet, "/api/units/:id", "200")
	unmatched := RequestCounter.WithLabelValues(http.MethodGet, unmatchedRoute, "404")
	m0, u0 := testutil.ToFloat64(matched), testutil.ToFloat64(unmatched)

	for _, path := range []string{"/api/units/u1", "/api/units/u2", "/no/such/route"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, m0+2, testutil.ToFloat64(matched), "路由模板聚合，不按具体 ID 拆标签")
	assert.Equal(t, u0+1, testutil.ToFloat64(unmatched))
}
