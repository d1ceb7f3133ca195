package lineup

import (
	"time"

	"github.com/DhavalSuthar-24/musclemyths/internal/athlete"
	"gorm.io/datatypes"
)

// Item is one appearance on stage. Order is global across the event and
// contiguous from 1.
type Item struct {
	Order     int    `json:"order"`
	AthleteID uint   `json:"athlete_id"`
	Category  string `json:"category"`
	IsDisplay bool   `json:"is_display"`
	IsRetired bool   `json:"is_retired"`
	GroupID   string `json:"group_id,omitempty"`
}

// MergedGroup runs several categories together on stage.
type MergedGroup struct {
	GroupID    string   `json:"group_id"`
	Categories []string `json:"categories"`
}

// Lineup is the startlist of one event. Deletion is physical so the event can
// be regenerated.
type Lineup struct {
	ID           uint                             `json:"id" gorm:"primarykey"`
	EventID      uint                             `json:"event_id" gorm:"not null;uniqueIndex"`
	Items        datatypes.JSONSlice[Item]        `json:"items" gorm:"type:jsonb;not null"`
	MergedGroups datatypes.JSONSlice[MergedGroup] `json:"merged_groups" gorm:"type:jsonb"`
	CreatedAt    time.Time                        `json:"created_at"`
	UpdatedAt    time.Time                        `json:"updated_at"`
}

// ItemInput is an item as the client sends it on reorder; its position in the
// array becomes its order.
type ItemInput struct {
	AthleteID uint   `json:"athlete_id"`
	Category  string `json:"category"`
	IsDisplay *bool  `json:"is_display"`
	IsRetired bool   `json:"is_retired"`
	GroupID   string `json:"group_id"`
}

type ReplaceRequest struct {
	Items        []ItemInput   `json:"items" binding:"required"`
	MergedGroups []MergedGroup `json:"merged_groups"`
}

// ItemView is an item joined with the athlete it refers to.
type ItemView struct {
	Item
	Athlete *athlete.Summary `json:"athlete"`
}

type View struct {
	ID           uint          `json:"id"`
	EventID      uint          `json:"event_id"`
	Items        []ItemView    `json:"items"`
	MergedGroups []MergedGroup `json:"merged_groups"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}
