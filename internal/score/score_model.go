package score

import (
	"time"

	"github.com/DhavalSuthar-24/musclemyths/internal/athlete"
	"gorm.io/datatypes"
)

// MaxJudges bounds the judge panel a score vector may describe.
const MaxJudges = 15

// Score is one athlete's result in one category of an event. Rank and
// IsChampion are derived and rewritten for the whole category on every
// change; Rank 0 means unranked.
type Score struct {
	ID          uint                         `json:"id" gorm:"primarykey"`
	EventID     uint                         `json:"event_id" gorm:"not null;uniqueIndex:idx_score_key,priority:1;index:idx_score_rank,priority:1"`
	AthleteID   uint                         `json:"athlete_id" gorm:"not null;uniqueIndex:idx_score_key,priority:2"`
	Category    string                       `json:"category" gorm:"not null;uniqueIndex:idx_score_key,priority:3;index:idx_score_rank,priority:2"`
	JudgeScores datatypes.JSONSlice[float64] `json:"judge_scores" gorm:"type:jsonb;not null"`
	TotalScore  float64                      `json:"total_score" gorm:"not null;default:0"`
	Rank        int                          `json:"rank" gorm:"not null;default:0;index:idx_score_rank,priority:3"`
	IsChampion  bool                         `json:"is_champion" gorm:"not null;default:false"`
	IsRetired   bool                         `json:"is_retired" gorm:"not null;default:false"`
	CreatedAt   time.Time                    `json:"created_at"`
	UpdatedAt   time.Time                    `json:"updated_at"`
}

// Ranked reports whether the row takes part in the competitive ranking.
func (s *Score) Ranked() bool {
	return !s.IsRetired && s.TotalScore > 0
}

type SubmitRequest struct {
	EventID     uint      `json:"event_id" binding:"required"`
	AthleteID   uint      `json:"athlete_id" binding:"required"`
	Category    string    `json:"category" binding:"required,max=200"`
	JudgeScores []float64 `json:"judge_scores" binding:"max=15"`
}

type RetireRequest struct {
	EventID   uint   `json:"event_id" binding:"required"`
	AthleteID uint   `json:"athlete_id" binding:"required"`
	Category  string `json:"category" binding:"required"`
	IsRetired *bool  `json:"is_retired" binding:"required"`
}

type RecomputeRequest struct {
	Category string `json:"category" binding:"required"`
}

// Tie is a set of athletes sharing one total within a category.
type Tie struct {
	Category   string  `json:"category"`
	TotalScore float64 `json:"total_score"`
	AthleteIDs []uint  `json:"athlete_ids"`
}

// Standing is a score row joined with its athlete, flagged when tied.
type Standing struct {
	Score
	Athlete *athlete.Summary `json:"athlete"`
	IsTied  bool             `json:"is_tied"`
}
