// Package metrics holds the Prometheus metrics reported while growing and
// evaluating trees.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Registry is the registry every wordtree metric is registered on.
var Registry = prometheus.NewRegistry()

// Tree growth and evaluation metrics.
var (
	SplitsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "wordtree",
			Name:      "splits_total",
			Help:      "Total number of leaves turned into decision nodes",
		},
		[]string{"strategy"},
	)

	GainEvaluationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "wordtree",
			Name:      "gain_evaluations_total",
			Help:      "Total number of information gain computations for a feature over a node's documents",
		},
		[]string{"strategy"},
	)

	GrowDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "wordtree",
			Name:      "grow_duration_seconds",
			Help:      "Time spent growing a tree",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 10, 30, 60, 300},
		},
		[]string{"strategy"},
	)

	Accuracy = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "wordtree",
			Name:      "accuracy_ratio",
			Help:      "Fraction of documents classified with their label",
		},
		[]string{"split"}, // "training" / "testing"
	)
)

func init() {
	Registry.MustRegister(SplitsTotal, GainEvaluationsTotal, GrowDuration, Accuracy)
}

// WriteFile writes every metric on the Registry to the file at the given
// path in the Prometheus text exposition format.
func WriteFile(path string) error {
	return prometheus.WriteToTextfile(path, Registry)
}
