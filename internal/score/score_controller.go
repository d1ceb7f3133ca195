package score

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/DhavalSuthar-24/musclemyths/pkg/export"
	"github.com/DhavalSuthar-24/musclemyths/pkg/responses"
	"github.com/DhavalSuthar-24/musclemyths/pkg/validator"
	"github.com/gin-gonic/gin"
)

type ScoreController struct {
	service *ScoreService
}

func NewScoreController(service *ScoreService) *ScoreController {
	return &ScoreController{service: service}
}

func eventID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("event_id"), 10, 64)
	if err != nil || id == 0 {
		responses.BadRequest(c, "Invalid event ID format")
		return 0, false
	}
	return uint(id), true
}

// SubmitScore godoc
// @Summary Submit judge scores
// @Description Upserts the score of an athlete in a category and re-ranks the category
// @Tags Scores
// @Accept json
// @Produce json
// @Param score body SubmitRequest true "Judge scores in panel order"
// @Success 200 {object} responses.SuccessResponse{data=Score}
// @Failure 400 {object} responses.ErrorResponse "Validation error"
// @Failure 404 {object} responses.ErrorResponse "Event or athlete not found"
// @Router /scores [post]
// @Security BearerAuth
func (sc *ScoreController) SubmitScore(c *gin.Context) {
	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}
	s, err := sc.service.Submit(c.Request.Context(), req)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Score saved", s)
}

// RetireAthlete godoc
// @Summary Withdraw or reinstate an athlete in a category
// @Tags Scores
// @Accept json
// @Produce json
// @Param retire body RetireRequest true "Retire flag"
// @Success 200 {object} responses.SuccessResponse{data=Score}
// @Failure 404 {object} responses.ErrorResponse "Score not found"
// @Router /scores/retire [patch]
// @Security BearerAuth
func (sc *ScoreController) RetireAthlete(c *gin.Context) {
	var req RetireRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}
	s, err := sc.service.SetRetired(c.Request.Context(), req)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Retired flag updated", s)
}

// RecomputeRanks godoc
// @Summary Re-rank a category
// @Tags Scores
// @Accept json
// @Produce json
// @Param event_id path int true "Event ID"
// @Param body body RecomputeRequest true "Category"
// @Success 200 {object} responses.SuccessResponse{data=[]Score}
// @Router /scores/{event_id}/recompute [post]
// @Security BearerAuth
func (sc *ScoreController) RecomputeRanks(c *gin.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}
	var req RecomputeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}
	rows, err := sc.service.Recompute(c.Request.Context(), id, req.Category)
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Ranks recomputed", rows)
}

// GetScores godoc
// @Summary Standings of an event
// @Tags Scores
// @Produce json
// @Param event_id path int true "Event ID"
// @Param category query string false "Only this category"
// @Success 200 {object} responses.SuccessResponse{data=[]Standing}
// @Router /scores/{event_id} [get]
func (sc *ScoreController) GetScores(c *gin.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}
	rows, err := sc.service.Standings(c.Request.Context(), id, c.Query("category"))
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Scores retrieved successfully", rows)
}

// GetTies godoc
// @Summary Ties within a category
// @Tags Scores
// @Produce json
// @Param event_id path int true "Event ID"
// @Param category query string true "Category"
// @Success 200 {object} responses.SuccessResponse{data=[]Tie}
// @Router /scores/{event_id}/ties [get]
func (sc *ScoreController) GetTies(c *gin.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}
	ties, err := sc.service.Ties(c.Request.Context(), id, c.Query("category"))
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Ties retrieved successfully", ties)
}

// ExportScores godoc
// @Summary Download the standings as a spreadsheet
// @Tags Scores
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param event_id path int true "Event ID"
// @Param category query string false "Only this category"
// @Success 200 {file} file
// @Failure 404 {object} responses.ErrorResponse "Event not found"
// @Router /scores/{event_id}/export [get]
// @Security BearerAuth
func (sc *ScoreController) ExportScores(c *gin.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}
	buf, err := sc.service.Export(c.Request.Context(), id, c.Query("category"))
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	export.Send(c, fmt.Sprintf("scores-event-%d.xlsx", id), buf)
}
