package monitoring

import (
	"strconv"
	"sync"
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

	AIRequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ai_requests_total",
			Help: "Total number of LLM completion requests",
		},
		[]string{"operation", "status"},
	)

	// 大模型响应通常在秒级
	AIRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ai_request_duration_seconds",
			Help:    "Duration of LLM completion requests",
			Buckets: []float64{0.5, 1, 2, 5, 10, 30},
		},
		[]string{"operation"},
	)

	QuizGeneratedCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "quiz_generated_total",
			Help: "Total number of quizzes generated",
		},
	)

	QuizSubmittedCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "quiz_submitted_total",
			Help: "Total number of scored quiz submissions by suggested level",
		},
		[]string{"suggested_level"},
	)
)

var registerOnce sync.Once

func Init() {
	registerOnce.Do(func() {
		prometheus.MustRegister(RequestCounter)
		prometheus.MustRegister(RequestDuration)
		prometheus.MustRegister(AIRequestCounter)
		prometheus.MustRegister(AIRequestDuration)
		prometheus.MustRegister(QuizGeneratedCounter)
		prometheus.MustRegister(QuizSubmittedCounter)
	})
}

func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		duration := time.Since(start).Seconds()
		status := c.Writer.Status()

		// 未匹配路由时 FullPath 为空，避免原始路径撑爆标签基数
		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}

		RequestCounter.WithLabelValues(
			c.Request.Method,
			endpoint,
			strconv.Itoa(status),
		).Inc()

		RequestDuration.WithLabelValues(
			c.Request.Method,
			endpoint,
		).Observe(duration)
	}
}

func PrometheusHandler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
