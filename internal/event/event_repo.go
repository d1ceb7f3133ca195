package event

import (
	"errors"

	"gorm.io/gorm"
)

type EventRepository interface {
	CreateEvent(e *Event) error
	GetEventByID(id uint) (*Event, error)
	ListEvents() ([]Event, error)
	UpdateEvent(e *Event) error
	DeleteEvent(id uint) error
}

type eventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) CreateEvent(e *Event) error {
	return r.db.Create(e).Error
}

func (r *eventRepository) GetEventByID(id uint) (*Event, error) {
	var e Event
	if err := r.db.First(&e, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}

func (r *eventRepository) ListEvents() ([]Event, error) {
	var events []Event
	err := r.db.Order("date DESC").Find(&events).Error
	return events, err
}

func (r *eventRepository) UpdateEvent(e *Event) error {
	return r.db.Save(e).Error
}

func (r *eventRepository) DeleteEvent(id uint) error {
	return r.db.Delete(&Event{}, id).Error
}
