package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	ServiceName = "roadmaptracker"

	// PhaseAll labels the catalog-wide figures.
	PhaseAll = "_all"
)

var (
	CompletedDays = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: prometheus.BuildFQName(ServiceName, "progress", "completed_days"),
		Help: "Number of completed curriculum days",
	}, []string{"phase"})
	TotalDays = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: prometheus.BuildFQName(ServiceName, "progress", "total_days"),
		Help: "Number of curriculum days",
	}, []string{"phase"})
	CompletionPercent = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: prometheus.BuildFQName(ServiceName, "progress", "completion_percent"),
		Help: "Rounded completion percentage",
	}, []string{"phase"})
	Mutations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(ServiceName, "progress", "mutations_total"),
		Help: "Progress store mutations by kind",
	}, []string{"kind"})
	StorageFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(ServiceName, "storage", "failures_total"),
		Help: "Storage slot operations that failed and were skipped",
	}, []string{"op"})
)
