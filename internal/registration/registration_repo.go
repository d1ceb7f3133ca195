package registration

import (
	"errors"

	"gorm.io/gorm"
)

type RegistrationRepository interface {
	CreateRegistration(r *Registration) error
	GetRegistrationByID(id uint) (*Registration, error)
	ListRegistrations(filter ListFilter) ([]Registration, error)
	FindByEvent(eventID uint) ([]Registration, error)
	UpdateRegistration(r *Registration) error
	UpdatePaymentStatus(id uint, status string) error
	DeleteRegistration(id uint) error
}

type registrationRepository struct {
	db *gorm.DB
}

func NewRegistrationRepository(db *gorm.DB) RegistrationRepository {
	return &registrationRepository{db: db}
}

func (r *registrationRepository) CreateRegistration(reg *Registration) error {
	return r.db.Omit("Event", "Athlete").Create(reg).Error
}

func (r *registrationRepository) GetRegistrationByID(id uint) (*Registration, error) {
	var reg Registration
	err := r.db.Preload("Athlete").Preload("Event").First(&reg, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &reg, nil
}

func (r *registrationRepository) ListRegistrations(filter ListFilter) ([]Registration, error) {
	var regs []Registration
	query := r.db.Preload("Athlete").Preload("Event")
	if filter.EventID != 0 {
		query = query.Where("event_id = ?", filter.EventID)
	}
	if filter.AthleteID != 0 {
		query = query.Where("athlete_id = ?", filter.AthleteID)
	}
	err := query.Order("created_at DESC").Find(&regs).Error
	return regs, err
}

// FindByEvent returns the event's registrations with athletes resolved, in
// insertion order.
func (r *registrationRepository) FindByEvent(eventID uint) ([]Registration, error) {
	var regs []Registration
	err := r.db.Preload("Athlete").
		Where("event_id = ?", eventID).
		Order("id ASC").
		Find(&regs).Error
	return regs, err
}

func (r *registrationRepository) UpdateRegistration(reg *Registration) error {
	return r.db.Omit("Event", "Athlete").Save(reg).Error
}

func (r *registrationRepository) UpdatePaymentStatus(id uint, status string) error {
	return r.db.Model(&Registration{}).Where("id = ?", id).Update("payment_status", status).Error
}

func (r *registrationRepository) DeleteRegistration(id uint) error {
	return r.db.Unscoped().Delete(&Registration{}, id).Error
}
