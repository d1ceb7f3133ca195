package registration

import (
	"strings"

	"github.com/DhavalSuthar-24/musclemyths/internal/athlete"
	"github.com/DhavalSuthar-24/musclemyths/internal/event"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	PaymentPending  = "pending"
	PaymentPaid     = "paid"
	PaymentRefunded = "refunded"
)

// CategoryEntry is one competitive class an athlete entered. DisplayName is
// the key the lineup and the scores use.
type CategoryEntry struct {
	Level1      string `json:"level1" binding:"required"`
	Level2      string `json:"level2" binding:"required"`
	Level3      string `json:"level3" binding:"required"`
	DisplayName string `json:"display_name"`
	IsPrimary   bool   `json:"is_primary"`
}

// Service is an extra paid item attached to a registration (tanning, photo
// package and so on).
type Service struct {
	ServiceType string  `json:"service_type" binding:"required"`
	Category    string  `json:"category"`
	Price       float64 `json:"price" binding:"gte=0"`
}

type Registration struct {
	gorm.Model
	EventID       uint                               `json:"event_id" gorm:"not null;uniqueIndex:idx_registration_event_athlete"`
	Event         *event.Event                       `json:"event,omitempty" gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE"`
	AthleteID     uint                               `json:"athlete_id" gorm:"not null;uniqueIndex:idx_registration_event_athlete;index"`
	Athlete       *athlete.Athlete                   `json:"athlete,omitempty" gorm:"foreignKey:AthleteID;constraint:OnDelete:CASCADE"`
	Categories    datatypes.JSONSlice[CategoryEntry] `json:"categories" gorm:"type:jsonb;not null"`
	Services      datatypes.JSONSlice[Service]       `json:"services" gorm:"type:jsonb"`
	TotalFee      float64                            `json:"total_fee" gorm:"not null"`
	PaymentStatus string                             `json:"payment_status" gorm:"not null;default:pending"`
	Notes         string                             `json:"notes"`
}

// DefaultDisplayName collapses the three levels into the label shown on the
// startlist, e.g. "Men's Bodybuilding 75kg Open".
func DefaultDisplayName(e CategoryEntry) string {
	return strings.Join(strings.Fields(e.Level2+" "+e.Level1+" "+e.Level3), " ")
}

// NormalizeCategories fills missing display names and derives the primary
// flag from position: the first entry is primary, no other one is.
func NormalizeCategories(entries []CategoryEntry) []CategoryEntry {
	out := make([]CategoryEntry, len(entries))
	for i, e := range entries {
		e.DisplayName = strings.TrimSpace(e.DisplayName)
		if e.DisplayName == "" {
			e.DisplayName = DefaultDisplayName(e)
		}
		e.IsPrimary = i == 0
		out[i] = e
	}
	return out
}

// Primary returns the primary category entry, if any.
func (r *Registration) Primary() (CategoryEntry, bool) {
	if len(r.Categories) == 0 {
		return CategoryEntry{}, false
	}
	return r.Categories[0], true
}

// DisplayNames returns the registration's categories as lineup keys.
func (r *Registration) DisplayNames() []string {
	names := make([]string, len(r.Categories))
	for i, c := range r.Categories {
		names[i] = c.DisplayName
	}
	return names
}

type CreateRegistrationRequest struct {
	EventID    uint            `json:"event_id" binding:"required"`
	AthleteID  uint            `json:"athlete_id" binding:"required"`
	Categories []CategoryEntry `json:"categories" binding:"required,min=1,dive"`
	Services   []Service       `json:"services" binding:"omitempty,dive"`
	Notes      string          `json:"notes" binding:"omitempty,max=2000"`
}

type UpdateRegistrationRequest struct {
	Categories []CategoryEntry `json:"categories" binding:"omitempty,min=1,dive"`
	Services   *[]Service      `json:"services" binding:"omitempty,dive"`
	Notes      *string         `json:"notes" binding:"omitempty,max=2000"`
}

type PaymentRequest struct {
	PaymentStatus string `json:"payment_status" binding:"required,oneof=pending paid refunded"`
}

type ListFilter struct {
	EventID   uint
	AthleteID uint
}
