package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	namespace = "laytime"

	RequestsCollectorName     = "http_requests_total"
	LatencyCollectorName      = "http_request_duration_milliseconds"
	CalculationsCollectorName = "calculations_total"
	FailuresCollectorName     = "calculation_failures_total"

	KindLaytime = "laytime"
	KindVoyage  = "voyage"
	KindCompare = "compare"
)

var bucketsConfig = []float64{5, 25, 100, 500, 1000}

// Metrics holds the HTTP and calculation collectors of one server.
type Metrics struct {
	requests     *prometheus.CounterVec
	latency      *prometheus.HistogramVec
	calculations *prometheus.CounterVec
	failures     *prometheus.CounterVec
}

func New(service string) *Metrics {
	labels := prometheus.Labels{"service": service}
	return &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        RequestsCollectorName,
			Help:        "Number of HTTP requests partitioned by status code, method and route.",
			ConstLabels: labels,
		}, []string{"code", "method", "path"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   namespace,
			Name:        LatencyCollectorName,
			Help:        "Time spent on the request partitioned by status code, method and route.",
			ConstLabels: labels,
			Buckets:     bucketsConfig,
		}, []string{"code", "method", "path"}),
		calculations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        CalculationsCollectorName,
			Help:        "Completed calculations partitioned by kind and variant (duration policy or cost mode).",
			ConstLabels: labels,
		}, []string{"kind", "variant"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        FailuresCollectorName,
			Help:        "Rejected calculations partitioned by kind.",
			ConstLabels: labels,
		}, []string{"kind"}),
	}
}

// Collectors returns collector for your own collector registry.
func (m *Metrics) Collectors() []prometheus.Collector {
	return []prometheus.Collector{m.requests, m.latency, m.calculations, m.failures}
}

func (m *Metrics) Register(reg prometheus.Registerer) error {
	for _, c := range m.Collectors() {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

func (m *Metrics) Calculated(kind, variant string) {
	m.calculations.WithLabelValues(kind, variant).Inc()
}

func (m *Metrics) Failed(kind string) {
	m.failures.WithLabelValues(kind).Inc()
}

// Handler records request count and latency by route pattern.
func (m *Metrics) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		code := strconv.Itoa(c.Writer.Status())
		m.requests.WithLabelValues(code, c.Request.Method, path).Inc()
		m.latency.WithLabelValues(code, c.Request.Method, path).Observe(float64(time.Since(start).Milliseconds()))
	}
}
