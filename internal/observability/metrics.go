package observability

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/signalsfoundry/gnss-conformance/conformance"
)

// Collector bundles Prometheus metrics for conformance runs and provides
// a ready-to-serve /metrics handler.
type Collector struct {
	gatherer prometheus.Gatherer

	RecordsTotal    *prometheus.CounterVec
	ChecksTotal     *prometheus.CounterVec
	ViolationsTotal *prometheus.CounterVec
	CheckDuration   prometheus.Histogram
}

// NewCollector registers conformance Prometheus metrics against the
// provided registerer, defaulting to the global Prometheus registry when
// nil.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	records := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "conformance_records_total",
		Help: "Total number of location records consumed, labeled by source.",
	}, []string{"source"})
	records, err := registerCounterVec(reg, records, "conformance_records_total")
	if err != nil {
		return nil, err
	}

	checks := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "conformance_checks_total",
		Help: "Total number of checked records, labeled by pass/fail result.",
	}, []string{"result"})
	checks, err = registerCounterVec(reg, checks, "conformance_checks_total")
	if err != nil {
		return nil, err
	}

	violations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "conformance_violations_total",
		Help: "Total number of contract violations, labeled by rule.",
	}, []string{"rule"})
	violations, err = registerCounterVec(reg, violations, "conformance_violations_total")
	if err != nil {
		return nil, err
	}

	duration, err := registerHistogram(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "conformance_check_duration_seconds",
		Help:    "Latency of a single record check in seconds.",
		Buckets: []float64{0.000001, 0.00001, 0.0001, 0.001, 0.01, 0.1},
	}), "conformance_check_duration_seconds")
	if err != nil {
		return nil, err
	}

	return &Collector{
		gatherer:        gatherer,
		RecordsTotal:    records,
		ChecksTotal:     checks,
		ViolationsTotal: violations,
		CheckDuration:   duration,
	}, nil
}

// ObserveCheck records the outcome of checking one record from the named
// source.
func (c *Collector) ObserveCheck(source string, violations []conformance.Violation, elapsed time.Duration) {
	if c == nil {
		return
	}

	if c.RecordsTotal != nil {
		c.RecordsTotal.WithLabelValues(source).Inc()
	}

	result := "pass"
	if len(violations) > 0 {
		result = "fail"
	}
	if c.ChecksTotal != nil {
		c.ChecksTotal.WithLabelValues(result).Inc()
	}
	if c.ViolationsTotal != nil {
		for _, v := range violations {
			c.ViolationsTotal.WithLabelValues(string(v.Rule)).Inc()
		}
	}
	if c.CheckDuration != nil {
		c.CheckDuration.Observe(elapsed.Seconds())
	}
}

// Handler exposes a ready-to-use /metrics handler.
func (c *Collector) Handler() http.Handler {
	gatherer := c.gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

func registerCounterVec(reg prometheus.Registerer, vec *prometheus.CounterVec, name string) (*prometheus.CounterVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerHistogram(reg prometheus.Registerer, hist prometheus.Histogram, name string) (prometheus.Histogram, error) {
	if err := reg.Register(hist); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Histogram); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return hist, nil
}
