package observability

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type Metrics struct {
	registry *prometheus.Registry

	httpRequests    *prometheus.CounterVec
	backendDuration *prometheus.HistogramVec
	fallbacks       *prometheus.CounterVec
	dailyCache      *prometheus.CounterVec
	ratingsFlushed  *prometheus.CounterVec
}

func NewMetrics(namespace string) (*Metrics, error) {
	if namespace == "" {
		namespace = "style_sync"
	}
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests served, by route and status.",
		}, []string{"method", "route", "status"}),
		backendDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "backend_request_duration_seconds",
			Help:      "Latency of calls to the styling backend.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"endpoint", "status"}),
		fallbacks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fallbacks_total",
			Help:      "Responses served from local fallback data.",
		}, []string{"component"}),
		dailyCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "daily_outfit_cache_total",
			Help:      "Daily outfit cache lookups by result.",
		}, []string{"result"}),
		ratingsFlushed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ratings_flushed_total",
			Help:      "Debounced outfit ratings sent to the backend.",
		}, []string{"result"}),
	}

	collectors := []prometheus.Collector{
		m.httpRequests, m.backendDuration, m.fallbacks, m.dailyCache, m.ratingsFlushed,
		prometheus.NewGoCollector(),
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
	}
	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			var are prometheus.AlreadyRegisteredError
			if errors.As(err, &are) {
				continue
			}
			return nil, fmt.Errorf("register metric: %w", err)
		}
	}
	return m, nil
}

func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

func (m *Metrics) ObserveHTTP(method, route string, status int) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
}

func (m *Metrics) ObserveBackend(endpoint string, status int, d time.Duration) {
	if m == nil {
		return
	}
	label := "error"
	if status > 0 {
		label = strconv.Itoa(status)
	}
	m.backendDuration.WithLabelValues(endpoint, label).Observe(d.Seconds())
}

func (m *Metrics) Fallback(component string) {
	if m == nil {
		return
	}
	m.fallbacks.WithLabelValues(component).Inc()
}

func (m *Metrics) DailyCache(result string) {
	if m == nil {
		return
	}
	m.dailyCache.WithLabelValues(result).Inc()
}

func (m *Metrics) RatingFlushed(err error) {
	if m == nil {
		return
	}
	if err != nil {
		m.ratingsFlushed.WithLabelValues("error").Inc()
		return
	}
	m.ratingsFlushed.WithLabelValues("ok").Inc()
}
