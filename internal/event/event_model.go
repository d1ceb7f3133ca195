package event

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	StatusUpcoming = "upcoming"
	StatusOngoing  = "ongoing"
	StatusFinished = "finished"
)

// Judge is one seat on the panel. Panel order is the judge slot order used by
// score vectors.
type Judge struct {
	Name   string `json:"name" binding:"required"`
	Title  string `json:"title"`
	Avatar string `json:"avatar"`
}

// Event is a competition instance.
type Event struct {
	gorm.Model
	Name          string                     `json:"name" gorm:"not null"`
	Type          string                     `json:"type" gorm:"not null;index"`
	Date          time.Time                  `json:"date" gorm:"not null;index"`
	Location      string                     `json:"location" gorm:"not null"`
	CoverImage    string                     `json:"cover_image"`
	Description   string                     `json:"description"`
	Judges        datatypes.JSONSlice[Judge] `json:"judges" gorm:"type:jsonb"`
	BaseFee       float64                    `json:"base_fee" gorm:"not null"`
	AdditionalFee float64                    `json:"additional_fee" gorm:"not null"`
	Status        string                     `json:"status" gorm:"not null;default:upcoming"`
}

// CategoryFee returns the entry fee for n categories: the base fee covers the
// first, each further category costs the additional fee.
func (e *Event) CategoryFee(n int) float64 {
	if n <= 0 {
		return 0
	}
	return e.BaseFee + e.AdditionalFee*float64(n-1)
}

type CreateEventRequest struct {
	Name          string    `json:"name" binding:"required,max=200"`
	Type          string    `json:"type" binding:"required,max=60"`
	Date          time.Time `json:"date" binding:"required"`
	Location      string    `json:"location" binding:"required,max=200"`
	CoverImage    string    `json:"cover_image" binding:"omitempty,max=500"`
	Description   string    `json:"description" binding:"omitempty,max=5000"`
	Judges        []Judge   `json:"judges" binding:"omitempty,max=15,dive"`
	BaseFee       *float64  `json:"base_fee" binding:"required,gte=0"`
	AdditionalFee *float64  `json:"additional_fee" binding:"required,gte=0"`
	Status        string    `json:"status" binding:"omitempty,oneof=upcoming ongoing finished"`
}

type UpdateEventRequest struct {
	Name          string     `json:"name" binding:"omitempty,max=200"`
	Type          string     `json:"type" binding:"omitempty,max=60"`
	Date          *time.Time `json:"date"`
	Location      string     `json:"location" binding:"omitempty,max=200"`
	CoverImage    *string    `json:"cover_image" binding:"omitempty,max=500"`
	Description   *string    `json:"description" binding:"omitempty,max=5000"`
	Judges        *[]Judge   `json:"judges" binding:"omitempty,max=15,dive"`
	BaseFee       *float64   `json:"base_fee" binding:"omitempty,gte=0"`
	AdditionalFee *float64   `json:"additional_fee" binding:"omitempty,gte=0"`
	Status        string     `json:"status" binding:"omitempty,oneof=upcoming ongoing finished"`
}

func (req CreateEventRequest) toModel() *Event {
	e := &Event{
		Name:          req.Name,
		Type:          req.Type,
		Date:          req.Date,
		Location:      req.Location,
		CoverImage:    req.CoverImage,
		Description:   req.Description,
		Judges:        req.Judges,
		BaseFee:       *req.BaseFee,
		AdditionalFee: *req.AdditionalFee,
		Status:        req.Status,
	}
	if e.Status == "" {
		e.Status = StatusUpcoming
	}
	return e
}

func (req UpdateEventRequest) apply(e *Event) {
	if req.Name != "" {
		e.Name = req.Name
	}
	if req.Type != "" {
		e.Type = req.Type
	}
	if req.Date != nil {
		e.Date = *req.Date
	}
	if req.Location != "" {
		e.Location = req.Location
	}
	if req.CoverImage != nil {
		e.CoverImage = *req.CoverImage
	}
	if req.Description != nil {
		e.Description = *req.Description
	}
	if req.Judges != nil {
		e.Judges = *req.Judges
	}
	if req.BaseFee != nil {
		e.BaseFee = *req.BaseFee
	}
	if req.AdditionalFee != nil {
		e.AdditionalFee = *req.AdditionalFee
	}
	if req.Status != "" {
		e.Status = req.Status
	}
}
