package athlete

import (
	"errors"

	"gorm.io/gorm"
)

type AthleteRepository interface {
	CreateAthlete(a *Athlete) error
	GetAthleteByID(id uint) (*Athlete, error)
	GetAthletesByIDs(ids []uint) (map[uint]*Athlete, error)
	ListAthletes(search string) ([]Athlete, error)
	UpdateAthlete(a *Athlete) error
	DeleteAthlete(id uint) error
	FindByBibNumber(bib string) (*Athlete, error)
	FindByPhone(phone string) (*Athlete, error)
}

type athleteRepository struct {
	db *gorm.DB
}

// NewAthleteRepository creates a new instance of AthleteRepository.
func NewAthleteRepository(db *gorm.DB) AthleteRepository {
	return &athleteRepository{db: db}
}

func (r *athleteRepository) CreateAthlete(a *Athlete) error {
	return r.db.Create(a).Error
}

func (r *athleteRepository) GetAthleteByID(id uint) (*Athlete, error) {
	var a Athlete
	if err := r.db.First(&a, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

// GetAthletesByIDs loads the given athletes keyed by id. Missing ids are
// simply absent from the map.
func (r *athleteRepository) GetAthletesByIDs(ids []uint) (map[uint]*Athlete, error) {
	out := make(map[uint]*Athlete, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var athletes []Athlete
	if err := r.db.Where("id IN ?", ids).Find(&athletes).Error; err != nil {
		return nil, err
	}
	for i := range athletes {
		out[athletes[i].ID] = &athletes[i]
	}
	return out, nil
}

func (r *athleteRepository) ListAthletes(search string) ([]Athlete, error) {
	var athletes []Athlete
	query := r.db.Model(&Athlete{})
	if search != "" {
		like := "%" + search + "%"
		query = query.Where("name ILIKE ? OR bib_number ILIKE ? OR phone ILIKE ?", like, like, like)
	}
	err := query.Order("created_at DESC").Find(&athletes).Error
	return athletes, err
}

func (r *athleteRepository) UpdateAthlete(a *Athlete) error {
	return r.db.Save(a).Error
}

func (r *athleteRepository) DeleteAthlete(id uint) error {
	return r.db.Delete(&Athlete{}, id).Error
}

func (r *athleteRepository) FindByBibNumber(bib string) (*Athlete, error) {
	var a Athlete
	if err := r.db.Where("bib_number = ?", bib).First(&a).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func (r *athleteRepository) FindByPhone(phone string) (*Athlete, error) {
	var a Athlete
	if err := r.db.Where("phone = ?", phone).First(&a).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}
