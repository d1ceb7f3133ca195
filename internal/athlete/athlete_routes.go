package athlete

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterAthleteRoutes(router *gin.RouterGroup, db *gorm.DB, protect gin.HandlerFunc) {
	NewAthleteController(NewAthleteRepository(db)).Mount(router, protect)
}

// Mount attaches the athlete endpoints. Every route requires a logged-in admin.
func (ac *AthleteController) Mount(router *gin.RouterGroup, protect gin.HandlerFunc) {
	athletes := router.Group("/athletes")
	athletes.Use(protect)
	{
		athletes.GET("", ac.GetAthletes)
		athletes.POST("", ac.CreateAthlete)
		athletes.GET("/:id", ac.GetAthleteByID)
		athletes.PUT("/:id", ac.UpdateAthlete)
		athletes.DELETE("/:id", ac.DeleteAthlete)
	}
}
