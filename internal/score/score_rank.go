package score

import (
	"cmp"
	"slices"
)

// trimThreshold is the number of valid judge scores from which the single
// lowest and highest are discarded.
const trimThreshold = 5

// Aggregate turns a judge vector into a total. Entries <= 0 are unscored
// slots. With at least five valid scores one lowest and one highest are
// dropped before summing. Lower totals are better.
func Aggregate(judgeScores []float64) float64 {
	valid := make([]float64, 0, len(judgeScores))
	for _, s := range judgeScores {
		if s > 0 {
			valid = append(valid, s)
		}
	}
	// Summed in ascending order so equal panels give bit-equal totals.
	slices.Sort(valid)
	if len(valid) >= trimThreshold {
		valid = valid[1 : len(valid)-1]
	}
	var total float64
	for _, s := range valid {
		total += s
	}
	return total
}

// AssignRanks returns rows re-ranked as a whole. Ranked rows are stably
// sorted by total ascending and numbered from 1, rank 1 being champion.
// Retired and unscored rows follow in their input order with rank 0.
func AssignRanks(rows []Score) []Score {
	ranked := make([]Score, 0, len(rows))
	var unranked []Score
	for _, r := range rows {
		if r.Ranked() {
			ranked = append(ranked, r)
		} else {
			unranked = append(unranked, r)
		}
	}
	slices.SortStableFunc(ranked, func(a, b Score) int {
		return cmp.Compare(a.TotalScore, b.TotalScore)
	})

	for i := range ranked {
		ranked[i].Rank = i + 1
		ranked[i].IsChampion = i == 0
	}
	for i := range unranked {
		unranked[i].Rank = 0
		unranked[i].IsChampion = false
	}
	return append(ranked, unranked...)
}

// DetectTies groups ranked rows of one category by total. Groups of more
// than one athlete are returned by total ascending, athletes in row order.
func DetectTies(rows []Score) []Tie {
	groups := map[float64]*Tie{}
	var totals []float64
	for _, r := range rows {
		if !r.Ranked() {
			continue
		}
		t, ok := groups[r.TotalScore]
		if !ok {
			t = &Tie{Category: r.Category, TotalScore: r.TotalScore}
			groups[r.TotalScore] = t
			totals = append(totals, r.TotalScore)
		}
		t.AthleteIDs = append(t.AthleteIDs, r.AthleteID)
	}
	slices.Sort(totals)

	ties := []Tie{}
	for _, total := range totals {
		if t := groups[total]; len(t.AthleteIDs) > 1 {
			ties = append(ties, *t)
		}
	}
	return ties
}

// tiedAthletes indexes the athletes of ties.
func tiedAthletes(ties []Tie) map[uint]bool {
	out := map[uint]bool{}
	for _, t := range ties {
		for _, id := range t.AthleteIDs {
			out[id] = true
		}
	}
	return out
}
