package lineup

import (
	"github.com/DhavalSuthar-24/musclemyths/internal/athlete"
	"github.com/DhavalSuthar-24/musclemyths/internal/event"
	"github.com/DhavalSuthar-24/musclemyths/internal/metrics"
	"github.com/DhavalSuthar-24/musclemyths/internal/registration"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterLineupRoutes(router *gin.RouterGroup, db *gorm.DB, rec metrics.Recorder, protect gin.HandlerFunc) {
	service := NewLineupService(
		NewLineupRepository(db),
		event.NewEventRepository(db),
		registration.NewRegistrationRepository(db),
		athlete.NewAthleteRepository(db),
		rec,
	)
	NewLineupController(service).Mount(router, protect)
}

// Mount attaches the lineup endpoints. The startlist and its categories are
// public; everything else needs an admin.
func (lc *LineupController) Mount(router *gin.RouterGroup, protect gin.HandlerFunc) {
	lineups := router.Group("/lineups")
	{
		lineups.GET("/:event_id", lc.GetLineup)
		lineups.GET("/:event_id/categories", lc.GetCategories)
		lineups.GET("/:event_id/export", protect, lc.ExportLineup)
		lineups.POST("/:event_id/generate", protect, lc.GenerateLineup)
		lineups.PUT("/:event_id", protect, lc.ReplaceLineup)
		lineups.DELETE("/:event_id", protect, lc.DeleteLineup)
	}
}
