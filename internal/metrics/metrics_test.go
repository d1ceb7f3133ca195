package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsRecord(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.ScoreSubmitted("Bikini Open")
	m.ScoreSubmitted("Bikini Open")
	m.ScoreSubmitted("Classic")
	m.LineupGenerated()
	m.TiesDetected(2)
	m.TiesDetected(0)
	m.RankRecomputed(15 * time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.scoresSubmitted.WithLabelValues("Bikini Open")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.scoresSubmitted.WithLabelValues("Classic")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.lineupsGenerated))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.tiesDetected))

	count, err := testutil.GatherAndCount(reg, "rank_recompute_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestNopSatisfiesRecorder(t *testing.T) {
	var r Recorder = Nop{}
	r.ScoreSubmitted("x")
	r.TiesDetected(3)
}
