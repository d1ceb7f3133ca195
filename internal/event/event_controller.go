package event

import (
	"net/http"
	"strconv"

	"github.com/DhavalSuthar-24/musclemyths/pkg/responses"
	"github.com/DhavalSuthar-24/musclemyths/pkg/validator"
	"github.com/gin-gonic/gin"
)

type EventController struct {
	repo EventRepository
}

func NewEventController(repo EventRepository) *EventController {
	return &EventController{repo: repo}
}

func (ec *EventController) load(c *gin.Context) (*Event, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		responses.BadRequest(c, "Invalid event ID format")
		return nil, false
	}
	e, err := ec.repo.GetEventByID(uint(id))
	if err != nil {
		responses.SendAppError(c, err)
		return nil, false
	}
	if e == nil {
		responses.NotFound(c, "Event")
		return nil, false
	}
	return e, true
}

// GetEvents godoc
// @Summary List events
// @Description Events ordered by date, newest first
// @Tags Events
// @Produce json
// @Success 200 {object} responses.SuccessResponse{data=[]Event}
// @Router /events [get]
func (ec *EventController) GetEvents(c *gin.Context) {
	events, err := ec.repo.ListEvents()
	if err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Events retrieved successfully", events)
}

// GetEventByID godoc
// @Summary Get an event
// @Tags Events
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} responses.SuccessResponse{data=Event}
// @Failure 404 {object} responses.ErrorResponse "Event not found"
// @Router /events/{id} [get]
func (ec *EventController) GetEventByID(c *gin.Context) {
	e, ok := ec.load(c)
	if !ok {
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Event retrieved successfully", e)
}

// CreateEvent godoc
// @Summary Create an event
// @Tags Events
// @Accept json
// @Produce json
// @Param event body CreateEventRequest true "Event"
// @Success 201 {object} responses.SuccessResponse{data=Event}
// @Failure 400 {object} responses.ErrorResponse "Validation error"
// @Router /events [post]
// @Security BearerAuth
func (ec *EventController) CreateEvent(c *gin.Context) {
	var req CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}
	e := req.toModel()
	if err := ec.repo.CreateEvent(e); err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusCreated, "Event created successfully", e)
}

// UpdateEvent godoc
// @Summary Update an event
// @Tags Events
// @Accept json
// @Produce json
// @Param id path int true "Event ID"
// @Param event body UpdateEventRequest true "Fields to change"
// @Success 200 {object} responses.SuccessResponse{data=Event}
// @Failure 404 {object} responses.ErrorResponse "Event not found"
// @Router /events/{id} [put]
// @Security BearerAuth
func (ec *EventController) UpdateEvent(c *gin.Context) {
	e, ok := ec.load(c)
	if !ok {
		return
	}
	var req UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.SendError(c, http.StatusBadRequest, "Validation failed", validator.ParseError(err))
		return
	}
	req.apply(e)
	if err := ec.repo.UpdateEvent(e); err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Event updated successfully", e)
}

// DeleteEvent godoc
// @Summary Delete an event
// @Tags Events
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} responses.SuccessResponse
// @Failure 404 {object} responses.ErrorResponse "Event not found"
// @Router /events/{id} [delete]
// @Security BearerAuth
func (ec *EventController) DeleteEvent(c *gin.Context) {
	e, ok := ec.load(c)
	if !ok {
		return
	}
	if err := ec.repo.DeleteEvent(e.ID); err != nil {
		responses.SendAppError(c, err)
		return
	}
	responses.SendSuccess(c, http.StatusOK, "Event deleted", nil)
}
