package lineup

import (
	"context"
	"errors"

	"github.com/DhavalSuthar-24/musclemyths/pkg/apperror"
	"gorm.io/gorm"
)

const msgLineupExists = "Lineup already exists; delete it before regenerating"

type LineupRepository interface {
	FindByEvent(ctx context.Context, eventID uint) (*Lineup, error)
	// Create fails with a Conflict when the event already has a lineup.
	Create(ctx context.Context, l *Lineup) error
	Update(ctx context.Context, l *Lineup) error
	// DeleteByEvent reports whether a lineup was removed.
	DeleteByEvent(ctx context.Context, eventID uint) (bool, error)
}

type lineupRepository struct {
	db *gorm.DB
}

func NewLineupRepository(db *gorm.DB) LineupRepository {
	return &lineupRepository{db: db}
}

func (r *lineupRepository) FindByEvent(ctx context.Context, eventID uint) (*Lineup, error) {
	var l Lineup
	err := r.db.WithContext(ctx).Where("event_id = ?", eventID).First(&l).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &l, nil
}

func (r *lineupRepository) Create(ctx context.Context, l *Lineup) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&Lineup{}).Where("event_id = ?", l.EventID).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return apperror.Conflict(msgLineupExists)
		}
		if err := tx.Create(l).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperror.Conflict(msgLineupExists)
			}
			return err
		}
		return nil
	})
}

func (r *lineupRepository) Update(ctx context.Context, l *Lineup) error {
	return r.db.WithContext(ctx).
		Model(l).
		Select("Items", "MergedGroups", "UpdatedAt").
		Updates(l).Error
}

func (r *lineupRepository) DeleteByEvent(ctx context.Context, eventID uint) (bool, error) {
	res := r.db.WithContext(ctx).Where("event_id = ?", eventID).Delete(&Lineup{})
	return res.RowsAffected > 0, res.Error
}
