// Package metrics exposes Prometheus collectors for the site.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

var Module = fx.Module("metrics",
	fx.Provide(New),
)

// Metrics groups the collectors on a private registry so tests can create
// as many instances as they like.
type Metrics struct {
	registry *prometheus.Registry

	Searches      *prometheus.CounterVec
	SearchResults *prometheus.HistogramVec
	Contact       *prometheus.CounterVec
	Requests      *prometheus.CounterVec
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		Searches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "website_searches_total",
			Help: "Filter requests served, by list",
		}, []string{"list"}),
		SearchResults: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "website_search_results",
			Help:    "Number of records in a filtered view",
			Buckets: []float64{0, 1, 2, 3, 5, 8, 13},
		}, []string{"list"}),
		Contact: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "website_contact_submissions_total",
			Help: "Contact form submissions, by outcome",
		}, []string{"outcome"}),
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "website_http_requests_total",
			Help: "HTTP requests, by route pattern and status",
		}, []string{"route", "status"}),
	}

	reg.MustRegister(
		m.Searches,
		m.SearchResults,
		m.Contact,
		m.Requests,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ObserveSearch records one filtered view of size n.
func (m *Metrics) ObserveSearch(list string, n int) {
	m.Searches.WithLabelValues(list).Inc()
	m.SearchResults.WithLabelValues(list).Observe(float64(n))
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
