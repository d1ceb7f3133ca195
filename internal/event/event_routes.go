package event

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterEventRoutes(router *gin.RouterGroup, db *gorm.DB, protect gin.HandlerFunc) {
	NewEventController(NewEventRepository(db)).Mount(router, protect)
}

// Mount attaches the event endpoints. Reads are public.
func (ec *EventController) Mount(router *gin.RouterGroup, protect gin.HandlerFunc) {
	events := router.Group("/events")
	{
		events.GET("", ec.GetEvents)
		events.GET("/:id", ec.GetEventByID)
		events.POST("", protect, ec.CreateEvent)
		events.PUT("/:id", protect, ec.UpdateEvent)
		events.DELETE("/:id", protect, ec.DeleteEvent)
	}
}
