package lineup

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/DhavalSuthar-24/musclemyths/pkg/export"
	"github.com/DhavalSuthar-24/musclemyths/pkg/responses"
	"github.com/DhavalSuthar-24/musclemyths/pkg/validator"
	"github.com/gin-gonic/gin"
)

type LineupController struct {
	service *LineupService
}

func NewLineupController(service *LineupService) *LineupController {
	return &LineupController{service: service}
}

func eventID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("event_id"), 10, 64)
	if err != nil || id == 0 {
		responses.BadRequest(c, "Invalid event ID format")
		return 0, false
	}
	return uint(id), true
}

// GenerateLineup godoc
// @Summary Generate the lineup of an event
// @Description Flattens registrations to one entry per category, sorted by category then bib
// @Tags Lineups
// @Produce json
// @Param event_id path int true "Event ID"
// @Success 201 {object} responses.SuccessResponse{data=Lineup}
// @Failure 400 {object} responses.ErrorResponse "Lineup exists or no registrations"
// @Failure 404 {object} responses.ErrorResponse "Event not found"
// @Router /lineups/{event_id}/generate [post]
// @Security BearerAuth
func (lc *LineupController) GenerateLineup(c *gin.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}
	l, err := lc.service.Generate(c.Request.Context(), id)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Lineup generated successfully", l)
}

// GetLineup godoc
// @Summary Get the lineup of an event
// @Tags Lineups
// @Produce json
// @Param event_id path int true "Event ID"
// @Param category query string false "Only this category"
// @Success 200 {object} responses.SuccessResponse{data=View}
// @Failure 404 {object} responses.ErrorResponse "Lineup not found"
// @Router /lineups/{event_id} [get]
func (lc *LineupController) GetLineup(c *gin.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}
	v, err := lc.service.Get(c.Request.Context(), id, strings.TrimSpace(c.Query("category")))
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Lineup retrieved successfully", v)
}

// ReplaceLineup godoc
// @Summary Reorder the lineup
// @Description Replaces every item; order is taken from array position
// @Tags Lineups
// @Accept json
// @Produce json
// @Param event_id path int true "Event ID"
// @Param lineup body ReplaceRequest true "Items in running order"
// @Success 200 {object} responses.SuccessResponse{data=Lineup}
// @Failure 400 {object} responses.ErrorResponse "Validation error"
// @Failure 404 {object} responses.ErrorResponse "Lineup not found"
// @Router /lineups/{event_id} [put]
// @Security BearerAuth
func (lc *LineupController) ReplaceLineup(c *gin.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}
	var req ReplaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}
	l, err := lc.service.Replace(c.Request.Context(), id, req)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Lineup updated successfully", l)
}

// DeleteLineup godoc
// @Summary Delete the lineup of an event
// @Tags Lineups
// @Produce json
// @Param event_id path int true "Event ID"
// @Success 200 {object} responses.SuccessResponse
// @Failure 404 {object} responses.ErrorResponse "Lineup not found"
// @Router /lineups/{event_id} [delete]
// @Security BearerAuth
func (lc *LineupController) DeleteLineup(c *gin.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}
	if err := lc.service.Delete(c.Request.Context(), id); err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Lineup deleted", nil)
}

// GetCategories godoc
// @Summary Categories of a lineup in running order
// @Tags Lineups
// @Produce json
// @Param event_id path int true "Event ID"
// @Success 200 {object} responses.SuccessResponse{data=[]string}
// @Failure 404 {object} responses.ErrorResponse "Lineup not found"
// @Router /lineups/{event_id}/categories [get]
func (lc *LineupController) GetCategories(c *gin.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}
	cats, err := lc.service.Categories(c.Request.Context(), id)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Categories retrieved successfully", cats)
}

// ExportLineup godoc
// @Summary Download the lineup as a spreadsheet
// @Tags Lineups
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param event_id path int true "Event ID"
// @Param category query string false "Only this category"
// @Success 200 {file} file
// @Failure 404 {object} responses.ErrorResponse "Lineup not found"
// @Router /lineups/{event_id}/export [get]
// @Security BearerAuth
func (lc *LineupController) ExportLineup(c *gin.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}
	category := strings.TrimSpace(c.Query("category"))
	v, err := lc.service.Get(c.Request.Context(), id, category)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	buf, err := Workbook(v, category)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	export.Send(c, fmt.Sprintf("lineup-event-%d.xlsx", id), buf)
}
