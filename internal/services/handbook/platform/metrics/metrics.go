// Package metrics exposes handbook counters through a Prometheus registry.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "handbook"

// Outcomes recorded for demo fetches.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// Recorder owns one Prometheus registry and the handbook collectors in it.
type Recorder struct {
	registry    *prometheus.Registry
	pageRenders *prometheus.CounterVec
	demoFetches *prometheus.CounterVec
}

// New builds a recorder with its own registry, so separate servers (and
// tests) never share collectors.
func New() *Recorder {
	reg := prometheus.NewRegistry()
	r := &Recorder{
		registry: reg,
		pageRenders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "page_renders_total",
			Help:      "Handbook page responses by route and status code.",
		}, []string{"route", "code"}),
		demoFetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "demo_fetches_total",
			Help:      "Demo API fetches by resource and outcome.",
		}, []string{"resource", "outcome"}),
	}
	reg.MustRegister(
		r.pageRenders,
		r.demoFetches,
		collectors.NewGoCollector(),
	)
	return r
}

// PageRendered counts one page response. Unknown paths are recorded under
// the "unmatched" route so scanners cannot grow label cardinality.
func (r *Recorder) PageRendered(route string, statusCode int) {
	if r == nil {
		return
	}
	if route == "" {
		route = "unmatched"
	}
	r.pageRenders.WithLabelValues(route, strconv.Itoa(statusCode)).Inc()
}

// DemoFetched counts one demo API call.
func (r *Recorder) DemoFetched(resource string, err error) {
	if r == nil {
		return
	}
	outcome := OutcomeOK
	if err != nil {
		outcome = OutcomeError
	}
	r.demoFetches.WithLabelValues(resource, outcome).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	if r == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// Gatherer exposes the underlying registry for inspection.
func (r *Recorder) Gatherer() prometheus.Gatherer {
	return r.registry
}
