package score

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ScoreRepository interface {
	// Transaction runs fn against a repository bound to one database
	// transaction.
	Transaction(ctx context.Context, fn func(repo ScoreRepository) error) error
	// Upsert inserts the row or overwrites the judge vector, total and retired
	// flag of the row with the same (event, athlete, category).
	Upsert(ctx context.Context, s *Score) error
	FindOne(ctx context.Context, eventID, athleteID uint, category string) (*Score, error)
	// FindByEventAndCategory returns the category's rows by id, i.e. in
	// submission order.
	FindByEventAndCategory(ctx context.Context, eventID uint, category string) ([]Score, error)
	FindByEvent(ctx context.Context, eventID uint) ([]Score, error)
	SetRetired(ctx context.Context, id uint, retired bool) error
	// SaveAll writes rank and champion of every row.
	SaveAll(ctx context.Context, rows []Score) error
}

type scoreRepository struct {
	db *gorm.DB
}

func NewScoreRepository(db *gorm.DB) ScoreRepository {
	return &scoreRepository{db: db}
}

func (r *scoreRepository) Transaction(ctx context.Context, fn func(repo ScoreRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&scoreRepository{db: tx})
	})
}

func (r *scoreRepository) Upsert(ctx context.Context, s *Score) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "event_id"}, {Name: "athlete_id"}, {Name: "category"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"judge_scores", "total_score", "is_retired", "updated_at",
		}),
	}).Create(s).Error
}

func (r *scoreRepository) FindOne(ctx context.Context, eventID, athleteID uint, category string) (*Score, error) {
	var s Score
	err := r.db.WithContext(ctx).
		Where("event_id = ? AND athlete_id = ? AND category = ?", eventID, athleteID, category).
		First(&s).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *scoreRepository) FindByEventAndCategory(ctx context.Context, eventID uint, category string) ([]Score, error) {
	var rows []Score
	err := r.db.WithContext(ctx).
		Where("event_id = ? AND category = ?", eventID, category).
		Order("id ASC").
		Find(&rows).Error
	return rows, err
}

func (r *scoreRepository) FindByEvent(ctx context.Context, eventID uint) ([]Score, error) {
	var rows []Score
	err := r.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("category ASC, id ASC").
		Find(&rows).Error
	return rows, err
}

func (r *scoreRepository) SetRetired(ctx context.Context, id uint, retired bool) error {
	return r.db.WithContext(ctx).Model(&Score{}).Where("id = ?", id).
		Updates(map[string]any{"is_retired": retired, "updated_at": time.Now()}).Error
}

func (r *scoreRepository) SaveAll(ctx context.Context, rows []Score) error {
	db := r.db.WithContext(ctx)
	for _, row := range rows {
		err := db.Model(&Score{}).Where("id = ?", row.ID).
			Updates(map[string]any{"rank": row.Rank, "is_champion": row.IsChampion}).Error
		if err != nil {
			return err
		}
	}
	return nil
}
