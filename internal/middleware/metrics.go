package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// HTTPMetrics tracks request counts, latency and in-flight requests per route.
type HTTPMetrics struct {
	totalRequests   *prometheus.CounterVec
	durationSec     *prometheus.HistogramVec
	inflightRequest *prometheus.GaugeVec
}

func NewHTTPMetrics(reg prometheus.Registerer) (*HTTPMetrics, error) {
	labels := []string{"route", "method", "code"}
	inflightLabels := []string{"route", "method"}

	t := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "campushub",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total number of requests",
	}, labels)
	d := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "campushub",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "Duration of requests",
		Buckets: []float64{
			0.005, 0.01, 0.025, 0.05,
			0.1, 0.25, 0.5, 1,
			2, 5,
		},
	}, labels)
	i := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "campushub",
		Subsystem: "http",
		Name:      "requests_inflight",
		Help:      "Number of inflight requests",
	}, inflightLabels)

	for _, c := range []prometheus.Collector{t, d, i} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return &HTTPMetrics{totalRequests: t, durationSec: d, inflightRequest: i}, nil
}

func (m *HTTPMetrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		route := c.FullPath()
		if route == "" {
			route = "<unmatched>"
		}
		method := c.Request.Method

		m.inflightRequest.WithLabelValues(route, method).Inc()
		defer m.inflightRequest.WithLabelValues(route, method).Dec()

		c.Next()

		code := strconv.Itoa(c.Writer.Status())
		m.totalRequests.WithLabelValues(route, method, code).Inc()
		m.durationSec.WithLabelValues(route, method, code).Observe(time.Since(start).Seconds())
	}
}
