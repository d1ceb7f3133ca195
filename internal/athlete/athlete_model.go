package athlete

import (
	"strings"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	GenderMale   = "male"
	GenderFemale = "female"
)

// Athlete is a competitor. Bib number and phone are unique.
type Athlete struct {
	gorm.Model
	Name                string                      `json:"name" gorm:"not null;index"`
	Gender              string                      `json:"gender" gorm:"not null"`
	BibNumber           *string                     `json:"bib_number" gorm:"uniqueIndex"`
	Phone               string                      `json:"phone" gorm:"uniqueIndex;not null"`
	Nationality         string                      `json:"nationality" gorm:"not null"`
	IDType              string                      `json:"id_type" gorm:"not null"`
	IDNumber            string                      `json:"id_number" gorm:"not null"`
	Birthdate           *time.Time                  `json:"birthdate"`
	Age                 *int                        `json:"age"`
	Height              *float64                    `json:"height"`
	Weight              *float64                    `json:"weight"`
	DrugTest            bool                        `json:"drug_test" gorm:"default:false"`
	RegistrationChannel string                      `json:"registration_channel" gorm:"not null"`
	Notes               string                      `json:"notes"`
	Email               string                      `json:"email"`
	Media               datatypes.JSONSlice[string] `json:"media" gorm:"type:jsonb"`
}

// Bib returns the bib number or "" when unassigned.
func (a *Athlete) Bib() string {
	if a == nil || a.BibNumber == nil {
		return ""
	}
	return *a.BibNumber
}

// SetBib stores a trimmed bib; an empty value clears it so the unique index
// only covers assigned bibs.
func (a *Athlete) SetBib(bib string) {
	bib = strings.TrimSpace(bib)
	if bib == "" {
		a.BibNumber = nil
		return
	}
	a.BibNumber = &bib
}

// AgeOn returns the athlete's age in whole years at now.
func AgeOn(birthdate, now time.Time) int {
	age := now.Year() - birthdate.Year()
	if now.Month() < birthdate.Month() || (now.Month() == birthdate.Month() && now.Day() < birthdate.Day()) {
		age--
	}
	return age
}

// RefreshAge recomputes Age from Birthdate.
func (a *Athlete) RefreshAge(now time.Time) {
	if a.Birthdate == nil {
		a.Age = nil
		return
	}
	age := AgeOn(*a.Birthdate, now)
	a.Age = &age
}

// Summary is the slice of athlete data joined into lineups and score tables.
type Summary struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	BibNumber string `json:"bib_number"`
	Gender    string `json:"gender"`
}

func (a *Athlete) Summary() Summary {
	return Summary{ID: a.ID, Name: a.Name, BibNumber: a.Bib(), Gender: a.Gender}
}

type CreateAthleteRequest struct {
	Name                string     `json:"name" binding:"required,max=100"`
	Gender              string     `json:"gender" binding:"required,oneof=male female"`
	BibNumber           string     `json:"bib_number" binding:"omitempty,max=20"`
	Phone               string     `json:"phone" binding:"required,max=30"`
	Nationality         string     `json:"nationality" binding:"required,max=60"`
	IDType              string     `json:"id_type" binding:"required,max=30"`
	IDNumber            string     `json:"id_number" binding:"required,max=60"`
	Birthdate           *time.Time `json:"birthdate"`
	Height              *float64   `json:"height" binding:"omitempty,gt=0,lt=300"`
	Weight              *float64   `json:"weight" binding:"omitempty,gt=0,lt=400"`
	DrugTest            bool       `json:"drug_test"`
	RegistrationChannel string     `json:"registration_channel" binding:"required,max=60"`
	Notes               string     `json:"notes" binding:"omitempty,max=2000"`
	Email               string     `json:"email" binding:"omitempty,email"`
	Media               []string   `json:"media"`
}

// UpdateAthleteRequest applies only the fields that are set.
type UpdateAthleteRequest struct {
	Name                string     `json:"name" binding:"omitempty,max=100"`
	Gender              string     `json:"gender" binding:"omitempty,oneof=male female"`
	BibNumber           string     `json:"bib_number" binding:"omitempty,max=20"`
	Phone               string     `json:"phone" binding:"omitempty,max=30"`
	Nationality         string     `json:"nationality" binding:"omitempty,max=60"`
	IDType              string     `json:"id_type" binding:"omitempty,max=30"`
	IDNumber            string     `json:"id_number" binding:"omitempty,max=60"`
	Birthdate           *time.Time `json:"birthdate"`
	Height              *float64   `json:"height" binding:"omitempty,gt=0,lt=300"`
	Weight              *float64   `json:"weight" binding:"omitempty,gt=0,lt=400"`
	DrugTest            *bool      `json:"drug_test"`
	RegistrationChannel string     `json:"registration_channel" binding:"omitempty,max=60"`
	Notes               string     `json:"notes" binding:"omitempty,max=2000"`
	Email               string     `json:"email" binding:"omitempty,email"`
	Media               []string   `json:"media"`
}

func (req CreateAthleteRequest) toModel(now time.Time) *Athlete {
	a := &Athlete{
		Name:                strings.TrimSpace(req.Name),
		Gender:              req.Gender,
		Phone:               strings.TrimSpace(req.Phone),
		Nationality:         req.Nationality,
		IDType:              req.IDType,
		IDNumber:            req.IDNumber,
		Birthdate:           req.Birthdate,
		Height:              req.Height,
		Weight:              req.Weight,
		DrugTest:            req.DrugTest,
		RegistrationChannel: req.RegistrationChannel,
		Notes:               req.Notes,
		Email:               req.Email,
		Media:               req.Media,
	}
	a.SetBib(req.BibNumber)
	a.RefreshAge(now)
	return a
}

func (req UpdateAthleteRequest) apply(a *Athlete, now time.Time) {
	if req.Name != "" {
		a.Name = strings.TrimSpace(req.Name)
	}
	if req.Gender != "" {
		a.Gender = req.Gender
	}
	if req.BibNumber != "" {
		a.SetBib(req.BibNumber)
	}
	if req.Phone != "" {
		a.Phone = strings.TrimSpace(req.Phone)
	}
	if req.Nationality != "" {
		a.Nationality = req.Nationality
	}
	if req.IDType != "" {
		a.IDType = req.IDType
	}
	if req.IDNumber != "" {
		a.IDNumber = req.IDNumber
	}
	if req.Birthdate != nil {
		a.Birthdate = req.Birthdate
	}
	if req.Height != nil {
		a.Height = req.Height
	}
	if req.Weight != nil {
		a.Weight = req.Weight
	}
	if req.DrugTest != nil {
		a.DrugTest = *req.DrugTest
	}
	if req.RegistrationChannel != "" {
		a.RegistrationChannel = req.RegistrationChannel
	}
	if req.Notes != "" {
		a.Notes = req.Notes
	}
	if req.Email != "" {
		a.Email = req.Email
	}
	if req.Media != nil {
		a.Media = req.Media
	}
	a.RefreshAge(now)
}
