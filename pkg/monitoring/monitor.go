package monitoring

import (
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Namespace 所有指标的统一前缀
const Namespace = "courseware"

// 进度写入结果标签
const (
	ResultOK           = "ok"
	ResultPastDeadline = "past_deadline"
	ResultRejected     = "rejected"
	ResultError        = "error"
)

// 未命中任何路由时的 route 标签，避免扫描请求撑爆标签基数
const unmatchedRoute = "unmatched"

var (
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by method, route template and status",
		},
		[]string{"method", "route", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by route template",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "route"},
	)

	// ProgressWrites op: create|update
	ProgressWrites = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: "progress",
			Name:      "writes_total",
			Help:      "Progress create/update attempts by outcome",
		},
		[]string{"op", "result"},
	)
)

// Init 注册到默认 Registry，重复调用（测试里多次建 App）不会 panic
func Init() {
	for _, c := range []prometheus.Collector{RequestCounter, RequestDuration, ProgressWrites} {
		if err := prometheus.Register(c); err != nil {
			var are prometheus.AlreadyRegisteredError
			if !errors.As(err, &are) {
				panic(err)
			}
		}
	}
}

func ObserveProgressWrite(op, result string) {
	ProgressWrites.WithLabelValues(op, result).Inc()
}

func routeLabel(c *gin.Context) string {
	if route := c.FullPath(); route != "" {
		return route
	}
	return unmatchedRoute
}

func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := routeLabel(c)
		RequestCounter.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		RequestDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

func PrometheusHandler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
