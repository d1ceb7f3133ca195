package athlete

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/DhavalSuthar-24/musclemyths/pkg/apperror"
	"github.com/DhavalSuthar-24/musclemyths/pkg/responses"
	"github.com/DhavalSuthar-24/musclemyths/pkg/validator"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AthleteController handles API requests related to athletes.
type AthleteController struct {
	repo AthleteRepository
	now  func() time.Time
}

// NewAthleteController creates a new AthleteController.
func NewAthleteController(repo AthleteRepository) *AthleteController {
	return &AthleteController{repo: repo, now: time.Now}
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		responses.BadRequest(c, "Invalid athlete ID format")
		return 0, false
	}
	return uint(id), true
}

// checkUnique reports a Conflict when another athlete already holds the bib
// or phone of a.
func (ac *AthleteController) checkUnique(a *Athlete) error {
	if bib := a.Bib(); bib != "" {
		other, err := ac.repo.FindByBibNumber(bib)
		if err != nil {
			return err
		}
		if other != nil && other.ID != a.ID {
			return apperror.Conflict("Bib number %s is already assigned to another athlete", bib)
		}
	}
	other, err := ac.repo.FindByPhone(a.Phone)
	if err != nil {
		return err
	}
	if other != nil && other.ID != a.ID {
		return apperror.Conflict("Phone %s is already registered to another athlete", a.Phone)
	}
	return nil
}

func duplicateOr(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperror.Conflict("Bib number or phone is already in use")
	}
	return err
}

// GetAthletes godoc
// @Summary List athletes
// @Description Athletes newest first, optionally filtered by name, bib or phone
// @Tags Athletes
// @Produce json
// @Param search query string false "Search term"
// @Success 200 {object} responses.SuccessResponse{data=[]Athlete}
// @Router /athletes [get]
// @Security BearerAuth
func (ac *AthleteController) GetAthletes(c *gin.Context) {
	athletes, err := ac.repo.ListAthletes(strings.TrimSpace(c.Query("search")))
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Athletes retrieved successfully", athletes)
}

// GetAthleteByID godoc
// @Summary Get an athlete
// @Tags Athletes
// @Produce json
// @Param id path int true "Athlete ID"
// @Success 200 {object} responses.SuccessResponse{data=Athlete}
// @Failure 404 {object} responses.ErrorResponse "Athlete not found"
// @Router /athletes/{id} [get]
// @Security BearerAuth
func (ac *AthleteController) GetAthleteByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	a, err := ac.repo.GetAthleteByID(id)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	if a == nil {
		responses.NotFound(c, "Athlete")
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Athlete retrieved successfully", a)
}

// CreateAthlete godoc
// @Summary Create an athlete
// @Tags Athletes
// @Accept json
// @Produce json
// @Param athlete body CreateAthleteRequest true "Athlete"
// @Success 201 {object} responses.SuccessResponse{data=Athlete}
// @Failure 400 {object} responses.ErrorResponse "Validation error or duplicate bib/phone"
// @Router /athletes [post]
// @Security BearerAuth
func (ac *AthleteController) CreateAthlete(c *gin.Context) {
	var req CreateAthleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	a := req.toModel(ac.now())
	if err := ac.checkUnique(a); err != nil {
		responses.SendAppError(c, err)
		return
	}
	if err := ac.repo.CreateAthlete(a); err != nil {
		responses.SendAppError(c, duplicateOr(err))
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Athlete created successfully", a)
}

// UpdateAthlete godoc
// @Summary Update an athlete
// @Description Only non-empty fields are applied; age is recomputed from birthdate
// @Tags Athletes
// @Accept json
// @Produce json
// @Param id path int true "Athlete ID"
// @Param athlete body UpdateAthleteRequest true "Fields to change"
// @Success 200 {object} responses.SuccessResponse{data=Athlete}
// @Failure 400 {object} responses.ErrorResponse "Validation error or duplicate bib/phone"
// @Failure 404 {object} responses.ErrorResponse "Athlete not found"
// @Router /athletes/{id} [put]
// @Security BearerAuth
func (ac *AthleteController) UpdateAthlete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req UpdateAthleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}

	a, err := ac.repo.GetAthleteByID(id)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	if a == nil {
		responses.NotFound(c, "Athlete")
		return
	}

	req.apply(a, ac.now())
	if err := ac.checkUnique(a); err != nil {
		responses.SendAppError(c, err)
		return
	}
	if err := ac.repo.UpdateAthlete(a); err != nil {
		responses.SendAppError(c, duplicateOr(err))
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Athlete updated successfully", a)
}

// DeleteAthlete godoc
// @Summary Delete an athlete
// @Tags Athletes
// @Produce json
// @Param id path int true "Athlete ID"
// @Success 200 {object} responses.SuccessResponse
// @Failure 404 {object} responses.ErrorResponse "Athlete not found"
// @Router /athletes/{id} [delete]
// @Security BearerAuth
func (ac *AthleteController) DeleteAthlete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	a, err := ac.repo.GetAthleteByID(id)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	if a == nil {
		responses.NotFound(c, "Athlete")
		return
	}
	if err := ac.repo.DeleteAthlete(id); err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Athlete deleted", nil)
}
