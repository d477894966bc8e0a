// Package metrics records run statistics and writes them in the Prometheus
// text format for the node-exporter textfile collector.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Registry holds every cgmlst-dists collector.
	Registry = prometheus.NewRegistry()

	factory = promauto.With(Registry)

	// SamplesLoaded is the number of profiles in the last table.
	SamplesLoaded = factory.NewGauge(prometheus.GaugeOpts{
		Name: "cgmlst_dists_samples_loaded",
		Help: "Number of sample profiles loaded",
	})

	// LociLoaded is the number of loci per profile.
	LociLoaded = factory.NewGauge(prometheus.GaugeOpts{
		Name: "cgmlst_dists_loci_loaded",
		Help: "Number of loci per profile",
	})

	// MatrixBytes is the memory reserved for the distance matrix.
	MatrixBytes = factory.NewGauge(prometheus.GaugeOpts{
		Name: "cgmlst_dists_matrix_bytes",
		Help: "Bytes reserved for the distance matrix",
	})

	// PairsComputed counts distance evaluations, including the diagonal and
	// both orientations of every pair.
	PairsComputed = factory.NewCounterVec(prometheus.CounterOpts{
		Name: "cgmlst_dists_pairs_computed_total",
		Help: "Total number of pairwise distances computed",
	}, []string{"worker"})

	// PairsCapped counts distances that reached the cap.
	PairsCapped = factory.NewCounterVec(prometheus.CounterOpts{
		Name: "cgmlst_dists_pairs_capped_total",
		Help: "Total number of distances that reached the configured cap",
	}, []string{"worker"})

	// WorkerDurationSeconds measures how long each worker took.
	WorkerDurationSeconds = factory.NewHistogram(prometheus.HistogramOpts{
		Name:    "cgmlst_dists_worker_duration_seconds",
		Help:    "Wall time spent by each distance worker",
		Buckets: prometheus.ExponentialBuckets(0.01, 4, 10),
	})

	// RowsEmitted counts matrix rows written.
	RowsEmitted = factory.NewCounterVec(prometheus.CounterOpts{
		Name: "cgmlst_dists_rows_emitted_total",
		Help: "Total number of matrix rows written",
	}, []string{"format"})

	// PhaseDurationSeconds records load, compute and emit wall time.
	PhaseDurationSeconds = factory.NewGaugeVec(prometheus.GaugeOpts{
		Name: "cgmlst_dists_phase_duration_seconds",
		Help: "Wall time of each processing phase in the last run",
	}, []string{"phase"})
)

// WriteTextfile writes the current registry contents to path atomically.
func WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, Registry)
}
