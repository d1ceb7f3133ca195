package registration

import (
	"github.com/DhavalSuthar-24/musclemyths/internal/athlete"
	"github.com/DhavalSuthar-24/musclemyths/internal/event"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRegistrationRoutes(router *gin.RouterGroup, db *gorm.DB, protect gin.HandlerFunc) {
	rc := NewRegistrationController(
		NewRegistrationRepository(db),
		event.NewEventRepository(db),
		athlete.NewAthleteRepository(db),
	)
	rc.Mount(router, protect)
}

func (rc *RegistrationController) Mount(router *gin.RouterGroup, protect gin.HandlerFunc) {
	regs := router.Group("/registrations", protect)
	{
		regs.GET("", rc.GetRegistrations)
		regs.POST("", rc.CreateRegistration)
		regs.GET("/:id", rc.GetRegistrationByID)
		regs.PUT("/:id", rc.UpdateRegistration)
		regs.PATCH("/:id/payment", rc.UpdatePayment)
		regs.DELETE("/:id", rc.DeleteRegistration)
	}
}
