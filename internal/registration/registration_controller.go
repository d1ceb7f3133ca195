package registration

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/DhavalSuthar-24/musclemyths/internal/athlete"
	"github.com/DhavalSuthar-24/musclemyths/internal/event"
	"github.com/DhavalSuthar-24/musclemyths/pkg/apperror"
	"github.com/DhavalSuthar-24/musclemyths/pkg/responses"
	"github.com/DhavalSuthar-24/musclemyths/pkg/validator"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type EventLookup interface {
	GetEventByID(id uint) (*event.Event, error)
}

type AthleteLookup interface {
	GetAthleteByID(id uint) (*athlete.Athlete, error)
}

type RegistrationController struct {
	repo     RegistrationRepository
	events   EventLookup
	athletes AthleteLookup
}

func NewRegistrationController(repo RegistrationRepository, events EventLookup, athletes AthleteLookup) *RegistrationController {
	return &RegistrationController{repo: repo, events: events, athletes: athletes}
}

func parseUintQuery(c *gin.Context, key string) (uint, error) {
	raw := c.Query(key)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, apperror.Validation("%s must be a positive integer", key)
	}
	return uint(v), nil
}

// prepareCategories normalizes entries and rejects duplicate display names.
func prepareCategories(entries []CategoryEntry) ([]CategoryEntry, error) {
	if len(entries) == 0 {
		return nil, apperror.Validation("At least one category is required")
	}
	normalized := NormalizeCategories(entries)
	seen := make(map[string]struct{}, len(normalized))
	for _, e := range normalized {
		if _, dup := seen[e.DisplayName]; dup {
			return nil, apperror.Validation("Category %q is listed twice", e.DisplayName)
		}
		seen[e.DisplayName] = struct{}{}
	}
	return normalized, nil
}

func (rc *RegistrationController) loadEvent(id uint) (*event.Event, error) {
	ev, err := rc.events.GetEventByID(id)
	if err != nil {
		return nil, err
	}
	if ev == nil {
		return nil, apperror.NotFound("Event %d not found", id)
	}
	return ev, nil
}

func (rc *RegistrationController) load(c *gin.Context) (*Registration, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		responses.BadRequest(c, "Invalid registration ID format")
		return nil, false
	}
	reg, err := rc.repo.GetRegistrationByID(uint(id))
	if err != nil {
		responses.SendAppError(c, err)
		return nil, false
	}
	if reg == nil {
		responses.NotFound(c, "Registration")
		return nil, false
	}
	return reg, true
}

// GetRegistrations godoc
// @Summary List registrations
// @Tags Registrations
// @Produce json
// @Param event_id query int false "Event ID"
// @Param athlete_id query int false "Athlete ID"
// @Success 200 {object} responses.SuccessResponse{data=[]Registration}
// @Router /registrations [get]
// @Security BearerAuth
func (rc *RegistrationController) GetRegistrations(c *gin.Context) {
	var filter ListFilter
	var err error
	if filter.EventID, err = parseUintQuery(c, "event_id"); err != nil {
		responses.SendAppError(c, err)
		return
	}
	if filter.AthleteID, err = parseUintQuery(c, "athlete_id"); err != nil {
		responses.SendAppError(c, err)
		return
	}
	regs, err := rc.repo.ListRegistrations(filter)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Registrations retrieved successfully", regs)
}

// GetRegistrationByID godoc
// @Summary Get a registration
// @Tags Registrations
// @Produce json
// @Param id path int true "Registration ID"
// @Success 200 {object} responses.SuccessResponse{data=Registration}
// @Failure 404 {object} responses.ErrorResponse "Registration not found"
// @Router /registrations/{id} [get]
// @Security BearerAuth
func (rc *RegistrationController) GetRegistrationByID(c *gin.Context) {
	reg, ok := rc.load(c)
	if !ok {
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Registration retrieved successfully", reg)
}

// CreateRegistration godoc
// @Summary Register an athlete for an event
// @Description The fee is computed from the event's fee schedule
// @Tags Registrations
// @Accept json
// @Produce json
// @Param registration body CreateRegistrationRequest true "Registration"
// @Success 201 {object} responses.SuccessResponse{data=Registration}
// @Failure 400 {object} responses.ErrorResponse "Validation error"
// @Failure 404 {object} responses.ErrorResponse "Event or athlete not found"
// @Router /registrations [post]
// @Security BearerAuth
func (rc *RegistrationController) CreateRegistration(c *gin.Context) {
	var req CreateRegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	ev, err := rc.loadEvent(req.EventID)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	ath, err := rc.athletes.GetAthleteByID(req.AthleteID)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	if ath == nil {
		responses.SendAppError(c, apperror.NotFound("Athlete %d not found", req.AthleteID))
		return
	}

	categories, err := prepareCategories(req.Categories)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}

	reg := &Registration{
		EventID:       ev.ID,
		AthleteID:     ath.ID,
		Categories:    categories,
		Services:      req.Services,
		TotalFee:      ev.CategoryFee(len(categories)),
		PaymentStatus: PaymentPending,
		Notes:         req.Notes,
	}
	if err := rc.repo.CreateRegistration(reg); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			err = apperror.Conflict("Athlete %d is already registered for event %d", ath.ID, ev.ID)
		}
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Registration created successfully", reg)
}

// UpdateRegistration godoc
// @Summary Update a registration
// @Description Replacing the categories recomputes the fee
// @Tags Registrations
// @Accept json
// @Produce json
// @Param id path int true "Registration ID"
// @Param registration body UpdateRegistrationRequest true "Fields to change"
// @Success 200 {object} responses.SuccessResponse{data=Registration}
// @Failure 404 {object} responses.ErrorResponse "Registration not found"
// @Router /registrations/{id} [put]
// @Security BearerAuth
func (rc *RegistrationController) UpdateRegistration(c *gin.Context) {
	reg, ok := rc.load(c)
	if !ok {
		return
	}
	var req UpdateRegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	if req.Categories != nil {
		categories, err := prepareCategories(req.Categories)
		if err != nil {
			responses.SendAppError(c, err)
			return
		}
		ev, err := rc.loadEvent(reg.EventID)
		if err != nil {
			responses.SendAppError(c, err)
			return
		}
		reg.Categories = categories
		reg.TotalFee = ev.CategoryFee(len(categories))
	}
	if req.Services != nil {
		reg.Services = *req.Services
	}
	if req.Notes != nil {
		reg.Notes = *req.Notes
	}

	if err := rc.repo.UpdateRegistration(reg); err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Registration updated successfully", reg)
}

// UpdatePayment godoc
// @Summary Set the payment status
// @Tags Registrations
// @Accept json
// @Produce json
// @Param id path int true "Registration ID"
// @Param payment body PaymentRequest true "Payment status"
// @Success 200 {object} responses.SuccessResponse{data=Registration}
// @Failure 400 {object} responses.ErrorResponse "Invalid status"
// @Failure 404 {object} responses.ErrorResponse "Registration not found"
// @Router /registrations/{id}/payment [patch]
// @Security BearerAuth
func (rc *RegistrationController) UpdatePayment(c *gin.Context) {
	reg, ok := rc.load(c)
	if !ok {
		return
	}
	var req PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}
	if err := rc.repo.UpdatePaymentStatus(reg.ID, req.PaymentStatus); err != nil {
		responses.SendAppError(c, err)
		return
	}
	reg.PaymentStatus = req.PaymentStatus
	responses.SendSuccess(c, http.StatusOK, "Payment status updated", reg)
}

// DeleteRegistration godoc
// @Summary Delete a registration
// @Tags Registrations
// @Produce json
// @Param id path int true "Registration ID"
// @Success 200 {object} responses.SuccessResponse
// @Failure 404 {object} responses.ErrorResponse "Registration not found"
// @Router /registrations/{id} [delete]
// @Security BearerAuth
func (rc *RegistrationController) DeleteRegistration(c *gin.Context) {
	reg, ok := rc.load(c)
	if !ok {
		return
	}
	if err := rc.repo.DeleteRegistration(reg.ID); err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Registration deleted", nil)
}
