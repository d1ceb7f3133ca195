package score

import (
	"math/rand"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregate(t *testing.T) {
	tests := []struct {
		name   string
		scores []float64
		want   float64
	}{
		{"no valid scores", []float64{0, 0, 0, 0, 0}, 0},
		{"empty", nil, 0},
		{"four valid, no trim", []float64{10, 20, 30, 40}, 100},
		{"five valid", []float64{10, 20, 30, 40, 50}, 90},
		{"seven valid with duplicates", []float64{5, 10, 10, 20, 25, 30, 100}, 95},
		{"order does not matter", []float64{50, 10, 40, 20, 30}, 90},
		{"unscored slots ignored before counting", []float64{3, 0, 4, 0, 5, 6}, 18},
		{"negative is unscored", []float64{-1, 2, 3, 4, 5}, 14},
		{"six valid", []float64{1, 2, 3, 4, 5, 6}, 14},
		{"equal extremes drop one each", []float64{2, 2, 2, 2, 2}, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Aggregate(tt.scores), 1e-9)
		})
	}
}

func TestAggregateIndependentOfJudgeOrder(t *testing.T) {
	tests := []struct {
		name string
		a, b []float64
	}{
		{"three valid", []float64{0.1, 0.2, 0.3}, []float64{0.3, 0.2, 0.1}},
		{"four valid", []float64{0.7, 0.1, 0.2, 0.3}, []float64{0.3, 0.2, 0.1, 0.7}},
		{"six valid", []float64{0.1, 0.6, 0.2, 0.5, 0.3, 0.4}, []float64{0.4, 0.3, 0.5, 0.2, 0.6, 0.1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, Aggregate(tt.a), Aggregate(tt.b))
		})
	}
}

func TestDetectTiesAcrossJudgeOrder(t *testing.T) {
	rows := []Score{
		row(1, 101, Aggregate([]float64{0.1, 0.2, 0.3}), false),
		row(2, 102, Aggregate([]float64{0.3, 0.2, 0.1}), false),
	}
	ties := DetectTies(rows)
	require.Len(t, ties, 1)
	assert.ElementsMatch(t, []uint{101, 102}, ties[0].AthleteIDs)
}

func TestAggregateDoesNotMutateInput(t *testing.T) {
	in := []float64{50, 10, 40, 20, 30}
	Aggregate(in)
	assert.Equal(t, []float64{50, 10, 40, 20, 30}, in)
}

func row(id, athleteID uint, total float64, retired bool) Score {
	return Score{ID: id, AthleteID: athleteID, Category: "Classic", TotalScore: total, IsRetired: retired}
}

func TestAssignRanks(t *testing.T) {
	rows := []Score{
		row(1, 101, 30, false),
		row(2, 102, 0, false),
		row(3, 103, 10, false),
		row(4, 104, 5, true),
		row(5, 105, 20, false),
		row(6, 106, 10, false),
	}

	got := AssignRanks(rows)

	type rk struct {
		athlete  uint
		rank     int
		champion bool
	}
	var summary []rk
	for _, r := range got {
		summary = append(summary, rk{r.AthleteID, r.Rank, r.IsChampion})
	}
	assert.Equal(t, []rk{
		{103, 1, true},
		{106, 2, false},
		{105, 3, false},
		{101, 4, false},
		{102, 0, false},
		{104, 0, false},
	}, summary)
	assert.Equal(t, 0, rows[0].Rank, "input must not be modified")
}

func TestAssignRanksClearsStaleFlags(t *testing.T) {
	rows := []Score{
		{ID: 1, AthleteID: 1, TotalScore: 12, Rank: 1, IsChampion: true, IsRetired: true},
		{ID: 2, AthleteID: 2, TotalScore: 15, Rank: 2},
	}
	got := AssignRanks(rows)
	assert.Equal(t, uint(2), got[0].AthleteID)
	assert.True(t, got[0].IsChampion)
	assert.Equal(t, 0, got[1].Rank)
	assert.False(t, got[1].IsChampion)
}

func randomRows(rng *rand.Rand, n int) []Score {
	rows := make([]Score, n)
	for i := range rows {
		judges := make([]float64, 5+rng.Intn(3))
		for j := range judges {
			judges[j] = float64(rng.Intn(6))
		}
		rows[i] = Score{
			ID:          uint(i + 1),
			AthleteID:   uint(100 + i),
			Category:    "Bikini",
			JudgeScores: judges,
			TotalScore:  Aggregate(judges),
			IsRetired:   rng.Intn(6) == 0,
		}
	}
	return rows
}

func TestAssignRanksProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for iter := 0; iter < 200; iter++ {
		ranked := AssignRanks(randomRows(rng, 1+rng.Intn(12)))

		var scored []Score
		for _, r := range ranked {
			if r.Ranked() {
				scored = append(scored, r)
			} else {
				require.Equal(t, 0, r.Rank)
				require.False(t, r.IsChampion)
			}
		}
		for i := range scored {
			require.Equal(t, i+1, scored[i].Rank)
			for j := range scored {
				if scored[i].TotalScore < scored[j].TotalScore {
					require.LessOrEqual(t, scored[i].Rank, scored[j].Rank)
				}
			}
		}

		champions := 0
		for _, r := range ranked {
			if r.IsChampion {
				champions++
				require.Equal(t, 1, r.Rank)
				for _, o := range scored {
					require.LessOrEqual(t, r.TotalScore, o.TotalScore)
				}
			}
		}
		if len(scored) > 0 {
			require.Equal(t, 1, champions)
		} else {
			require.Equal(t, 0, champions)
		}

		require.Equal(t, ranked, AssignRanks(ranked), "re-ranking a ranked set changes nothing")
	}
}

func TestDetectTies(t *testing.T) {
	rows := AssignRanks([]Score{
		row(1, 1, 20, false),
		row(2, 2, 10, false),
		row(3, 3, 20, false),
		row(4, 4, 10, true),
		row(5, 5, 0, false),
		row(6, 6, 0, false),
		row(7, 7, 30, false),
		row(8, 8, 10, false),
		row(9, 9, 20, false),
	})

	ties := DetectTies(rows)

	assert.Equal(t, []Tie{
		{Category: "Classic", TotalScore: 10, AthleteIDs: []uint{2, 8}},
		{Category: "Classic", TotalScore: 20, AthleteIDs: []uint{1, 3, 9}},
	}, ties)
}

func TestDetectTiesNone(t *testing.T) {
	assert.Empty(t, DetectTies([]Score{row(1, 1, 10, false), row(2, 2, 10, true), row(3, 3, 11, false)}))
	assert.NotNil(t, DetectTies(nil))
}

func TestKeyedMutexSerializesPerKey(t *testing.T) {
	km := NewKeyedMutex[string]()
	var inside, maxInside int32
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := km.Lock("a")
			defer unlock()
			n := atomic.AddInt32(&inside, 1)
			for {
				m := atomic.LoadInt32(&maxInside)
				if n <= m || atomic.CompareAndSwapInt32(&maxInside, m, n) {
					break
				}
			}
			time.Sleep(time.Millisecond)
			atomic.AddInt32(&inside, -1)
		}()
	}
	wg.Wait()
	assert.Equal(t, int32(1), maxInside)
	assert.Equal(t, 0, km.size())
}

func TestKeyedMutexIndependentKeys(t *testing.T) {
	km := NewKeyedMutex[string]()
	unlockA := km.Lock("a")
	done := make(chan struct{})
	go func() {
		unlock := km.Lock("b")
		unlock()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("lock on b blocked behind a")
	}
	unlockA()
	assert.Equal(t, 0, km.size())
}
