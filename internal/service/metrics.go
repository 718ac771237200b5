package service

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/alexanderramin/wbsimport/internal/domain"
)

type metrics struct {
	schedulesCreated prometheus.Counter
	nodesTotal       *prometheus.CounterVec
	projectsTotal    *prometheus.CounterVec
	importDuration   prometheus.Histogram
}

var metricsSingleton = sync.OnceValue(func() *metrics {
	return &metrics{
		schedulesCreated: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: "wbsimport",
			Name:      "schedules_created_total",
			Help:      "Total number of schedules created by imports.",
		}),
		nodesTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "wbsimport",
			Name:      "wbs_nodes_total",
			Help:      "Total number of source WBS entries processed, by outcome.",
		}, []string{"outcome"}),
		projectsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "wbsimport",
			Name:      "projects_total",
			Help:      "Total number of source projects processed, by result.",
		}, []string{"result"}),
		importDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: "wbsimport",
			Name:      "import_duration_seconds",
			Help:      "Duration of a full source import.",
			Buckets:   []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 2, 5, 10, 30},
		}),
	}
})

func getMetrics() *metrics {
	return metricsSingleton()
}

func recordNode(outcome domain.NodeOutcome) {
	getMetrics().nodesTotal.WithLabelValues(string(outcome)).Inc()
}

func recordProject(result string) {
	getMetrics().projectsTotal.WithLabelValues(result).Inc()
}

func recordScheduleCreated() {
	getMetrics().schedulesCreated.Inc()
}

func observeImportDuration(d time.Duration) {
	getMetrics().importDuration.Observe(d.Seconds())
}
