package monitoring

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{0.1, 0.5, 1, 2, 5},
		},
		[]string{"method", "endpoint"},
	)

	// EngineOpCounter 按引擎操作（recommend/plan/explain/mentor_chat）计数
	EngineOpCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "engine_operations_total",
			Help: "Total number of adaptive engine operations",
		},
		[]string{"operation"},
	)

	// ExplanationFallbackCounter 解释调用降级次数，按降级原因区分
	ExplanationFallbackCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "explanation_fallbacks_total",
			Help: "Total number of explanation calls answered by the local fallback",
		},
		[]string{"reason"},
	)

	AutonomyEventCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "mentor_autonomy_events_total",
			Help: "Total number of simulated autonomy update events",
		},
	)
)

func Init() {
	prometheus.MustRegister(RequestCounter)
	prometheus.MustRegister(RequestDuration)
	prometheus.MustRegister(EngineOpCounter)
	prometheus.MustRegister(ExplanationFallbackCounter)
	prometheus.MustRegister(AutonomyEventCounter)
}

func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		duration := time.Since(start).Seconds()
		status := c.Writer.Status()

		RequestCounter.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			strconv.Itoa(status),
		).Inc()

		RequestDuration.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
		).Observe(duration)
	}
}

func PrometheusHandler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
