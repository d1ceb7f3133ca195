// Package metrics holds the Prometheus collectors for scoring and lineup
// operations.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder is what the lineup and score services report to.
type Recorder interface {
	ScoreSubmitted(category string)
	RankRecomputed(d time.Duration)
	LineupGenerated()
	TiesDetected(n int)
}

// Metrics registers its collectors on a caller supplied registry so the
// router can expose exactly this set at /metrics.
type Metrics struct {
	scoresSubmitted  *prometheus.CounterVec
	recomputeLatency prometheus.Histogram
	lineupsGenerated prometheus.Counter
	tiesDetected     prometheus.Counter
}

func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		scoresSubmitted: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "scores_submitted_total",
				Help: "Judge score submissions accepted, by category.",
			},
			[]string{"category"},
		),
		recomputeLatency: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "rank_recompute_duration_seconds",
				Help:    "Time spent re-ranking a category, including persistence.",
				Buckets: prometheus.DefBuckets,
			},
		),
		lineupsGenerated: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "lineups_generated_total",
				Help: "Lineups generated from registrations.",
			},
		),
		tiesDetected: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "ties_detected_total",
				Help: "Tie groups reported by the tie view.",
			},
		),
	}
}

func (m *Metrics) ScoreSubmitted(category string) {
	m.scoresSubmitted.WithLabelValues(category).Inc()
}

func (m *Metrics) RankRecomputed(d time.Duration) {
	m.recomputeLatency.Observe(d.Seconds())
}

func (m *Metrics) LineupGenerated() {
	m.lineupsGenerated.Inc()
}

func (m *Metrics) TiesDetected(n int) {
	if n > 0 {
		m.tiesDetected.Add(float64(n))
	}
}

// Nop discards everything. Tests and tools that do not expose /metrics use it.
type Nop struct{}

func (Nop) ScoreSubmitted(string)        {}
func (Nop) RankRecomputed(time.Duration) {}
func (Nop) LineupGenerated()             {}
func (Nop) TiesDetected(int)             {}
