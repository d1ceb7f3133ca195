package score

import (
	"cmp"
	"context"
	"fmt"
	"log"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/DhavalSuthar-24/musclemyths/internal/athlete"
	"github.com/DhavalSuthar-24/musclemyths/internal/event"
	"github.com/DhavalSuthar-24/musclemyths/internal/metrics"
	"github.com/DhavalSuthar-24/musclemyths/pkg/apperror"
)

type EventLookup interface {
	GetEventByID(id uint) (*event.Event, error)
}

type AthleteLookup interface {
	GetAthleteByID(id uint) (*athlete.Athlete, error)
	GetAthletesByIDs(ids []uint) (map[uint]*athlete.Athlete, error)
}

type rankKey struct {
	eventID  uint
	category string
}

type ScoreService struct {
	repo     ScoreRepository
	events   EventLookup
	athletes AthleteLookup
	metrics  metrics.Recorder
	locks    *KeyedMutex[rankKey]
}

func NewScoreService(repo ScoreRepository, events EventLookup, athletes AthleteLookup, rec metrics.Recorder) *ScoreService {
	if rec == nil {
		rec = metrics.Nop{}
	}
	return &ScoreService{
		repo:     repo,
		events:   events,
		athletes: athletes,
		metrics:  rec,
		locks:    NewKeyedMutex[rankKey](),
	}
}

func (s *ScoreService) loadEvent(eventID uint) (*event.Event, error) {
	ev, err := s.events.GetEventByID(eventID)
	if err != nil {
		return nil, fmt.Errorf("load event %d: %w", eventID, err)
	}
	if ev == nil {
		return nil, apperror.NotFound("Event %d not found", eventID)
	}
	return ev, nil
}

func validateJudgeScores(scores []float64) error {
	if len(scores) > MaxJudges {
		return apperror.Validation("At most %d judge scores are allowed", MaxJudges)
	}
	for i, v := range scores {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return apperror.Validation("Judge score %d is not a number", i+1)
		}
	}
	return nil
}

// recompute re-ranks one category inside repo's transaction. The caller
// holds the category lock.
func (s *ScoreService) recompute(ctx context.Context, repo ScoreRepository, eventID uint, category string) ([]Score, error) {
	start := time.Now()
	rows, err := repo.FindByEventAndCategory(ctx, eventID, category)
	if err != nil {
		return nil, fmt.Errorf("load scores of %q: %w", category, err)
	}
	ranked := AssignRanks(rows)
	if err := repo.SaveAll(ctx, ranked); err != nil {
		return nil, fmt.Errorf("save ranks of %q: %w", category, err)
	}
	s.metrics.RankRecomputed(time.Since(start))
	return ranked, nil
}

// mutate runs fn and a full re-rank of the category in one transaction while
// holding the category lock.
func (s *ScoreService) mutate(ctx context.Context, eventID uint, category string, fn func(repo ScoreRepository) error) ([]Score, error) {
	unlock := s.locks.Lock(rankKey{eventID: eventID, category: category})
	defer unlock()

	var ranked []Score
	err := s.repo.Transaction(ctx, func(repo ScoreRepository) error {
		if fn != nil {
			if err := fn(repo); err != nil {
				return err
			}
		}
		var err error
		ranked, err = s.recompute(ctx, repo, eventID, category)
		return err
	})
	if err != nil {
		return nil, err
	}
	return ranked, nil
}

func findAthlete(rows []Score, athleteID uint) *Score {
	for i := range rows {
		if rows[i].AthleteID == athleteID {
			return &rows[i]
		}
	}
	return nil
}

// Submit stores a judge vector for (event, athlete, category), clears the
// retired flag and re-ranks the category.
func (s *ScoreService) Submit(ctx context.Context, req SubmitRequest) (*Score, error) {
	category := strings.TrimSpace(req.Category)
	if category == "" {
		return nil, apperror.Validation("Category is required")
	}
	if err := validateJudgeScores(req.JudgeScores); err != nil {
		return nil, err
	}
	if _, err := s.loadEvent(req.EventID); err != nil {
		return nil, err
	}
	a, err := s.athletes.GetAthleteByID(req.AthleteID)
	if err != nil {
		return nil, fmt.Errorf("load athlete %d: %w", req.AthleteID, err)
	}
	if a == nil {
		return nil, apperror.NotFound("Athlete %d not found", req.AthleteID)
	}

	judgeScores := req.JudgeScores
	if judgeScores == nil {
		judgeScores = []float64{}
	}
	row := &Score{
		EventID:     req.EventID,
		AthleteID:   req.AthleteID,
		Category:    category,
		JudgeScores: judgeScores,
		TotalScore:  Aggregate(judgeScores),
		IsRetired:   false,
	}
	ranked, err := s.mutate(ctx, req.EventID, category, func(repo ScoreRepository) error {
		if err := repo.Upsert(ctx, row); err != nil {
			return fmt.Errorf("upsert score: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.metrics.ScoreSubmitted(category)

	stored := findAthlete(ranked, req.AthleteID)
	if stored == nil {
		return nil, apperror.Unexpected("score vanished after upsert", nil)
	}
	log.Printf("score submitted: event=%d category=%q athlete=%d total=%g rank=%d", req.EventID, category, req.AthleteID, stored.TotalScore, stored.Rank)
	return stored, nil
}

// SetRetired withdraws an athlete from a category, or reinstates them, and
// re-ranks it. Scores are kept.
func (s *ScoreService) SetRetired(ctx context.Context, req RetireRequest) (*Score, error) {
	category := strings.TrimSpace(req.Category)
	if category == "" {
		return nil, apperror.Validation("Category is required")
	}
	if _, err := s.loadEvent(req.EventID); err != nil {
		return nil, err
	}
	retired := req.IsRetired != nil && *req.IsRetired
	ranked, err := s.mutate(ctx, req.EventID, category, func(repo ScoreRepository) error {
		row, err := repo.FindOne(ctx, req.EventID, req.AthleteID, category)
		if err != nil {
			return fmt.Errorf("load score: %w", err)
		}
		if row == nil {
			return apperror.NotFound("No score for athlete %d in %q", req.AthleteID, category)
		}
		return repo.SetRetired(ctx, row.ID, retired)
	})
	if err != nil {
		return nil, err
	}
	return findAthlete(ranked, req.AthleteID), nil
}

// Recompute re-ranks a category without changing any score.
func (s *ScoreService) Recompute(ctx context.Context, eventID uint, category string) ([]Score, error) {
	category = strings.TrimSpace(category)
	if category == "" {
		return nil, apperror.Validation("Category is required")
	}
	if _, err := s.loadEvent(eventID); err != nil {
		return nil, err
	}
	return s.mutate(ctx, eventID, category, nil)
}

// rankOrder sorts by category, then rank with unranked rows last, then id.
func rankOrder(a, b Score) int {
	if c := strings.Compare(a.Category, b.Category); c != 0 {
		return c
	}
	if (a.Rank == 0) != (b.Rank == 0) {
		if a.Rank == 0 {
			return 1
		}
		return -1
	}
	if c := cmp.Compare(a.Rank, b.Rank); c != 0 {
		return c
	}
	return cmp.Compare(a.ID, b.ID)
}

func (s *ScoreService) load(ctx context.Context, eventID uint, category string) ([]Score, error) {
	var rows []Score
	var err error
	if category != "" {
		rows, err = s.repo.FindByEventAndCategory(ctx, eventID, category)
	} else {
		rows, err = s.repo.FindByEvent(ctx, eventID)
	}
	if err != nil {
		return nil, fmt.Errorf("load scores of event %d: %w", eventID, err)
	}
	slices.SortStableFunc(rows, rankOrder)
	return rows, nil
}

func groupByCategory(rows []Score) ([]string, map[string][]Score) {
	var order []string
	groups := map[string][]Score{}
	for _, r := range rows {
		if _, ok := groups[r.Category]; !ok {
			order = append(order, r.Category)
		}
		groups[r.Category] = append(groups[r.Category], r)
	}
	return order, groups
}

// Standings returns the event's results with athletes joined, optionally
// for one category.
func (s *ScoreService) Standings(ctx context.Context, eventID uint, category string) ([]Standing, error) {
	rows, err := s.load(ctx, eventID, strings.TrimSpace(category))
	if err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.AthleteID)
	}
	athletes, err := s.athletes.GetAthletesByIDs(ids)
	if err != nil {
		return nil, fmt.Errorf("load athletes: %w", err)
	}

	order, groups := groupByCategory(rows)
	out := make([]Standing, 0, len(rows))
	for _, c := range order {
		tied := tiedAthletes(DetectTies(groups[c]))
		for _, r := range groups[c] {
			st := Standing{Score: r, IsTied: tied[r.AthleteID]}
			if a, ok := athletes[r.AthleteID]; ok {
				sum := a.Summary()
				st.Athlete = &sum
			}
			out = append(out, st)
		}
	}
	return out, nil
}

// Ties reports the tie groups of a category for a judge to resolve.
func (s *ScoreService) Ties(ctx context.Context, eventID uint, category string) ([]Tie, error) {
	category = strings.TrimSpace(category)
	if category == "" {
		return nil, apperror.Validation("Category is required")
	}
	rows, err := s.load(ctx, eventID, category)
	if err != nil {
		return nil, err
	}
	ties := DetectTies(rows)
	s.metrics.TiesDetected(len(ties))
	return ties, nil
}
