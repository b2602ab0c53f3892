// internal/httpserver/metrics.go
//
// Prometheus instrumentation for the highscore endpoints. Each Server owns
// a private registry so tests can construct servers independently without
// duplicate-registration panics.

package httpserver

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type metrics struct {
	registry    *prometheus.Registry
	queries     *prometheus.CounterVec
	submissions *prometheus.CounterVec
}

func newMetrics() *metrics {
	reg := prometheus.NewRegistry()
	m := &metrics{
		registry: reg,
		queries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "highscores_queries_total",
			Help: "Top-score reads served, per game.",
		}, []string{"game"}),
		submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "highscores_submissions_total",
			Help: "Score submissions accepted, per game.",
		}, []string{"game"}),
	}
	reg.MustRegister(m.queries, m.submissions)
	return m
}

// handler serves the exposition format for this server's registry.
func (m *metrics) handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
