package score

import (
	"github.com/DhavalSuthar-24/musclemyths/internal/athlete"
	"github.com/DhavalSuthar-24/musclemyths/internal/event"
	"github.com/DhavalSuthar-24/musclemyths/internal/metrics"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterScoreRoutes(router *gin.RouterGroup, db *gorm.DB, rec metrics.Recorder, protect gin.HandlerFunc) {
	service := NewScoreService(
		NewScoreRepository(db),
		event.NewEventRepository(db),
		athlete.NewAthleteRepository(db),
		rec,
	)
	NewScoreController(service).Mount(router, protect)
}

func (sc *ScoreController) Mount(router *gin.RouterGroup, protect gin.HandlerFunc) {
	scores := router.Group("/scores")
	{
		scores.POST("", protect, sc.SubmitScore)
		scores.PATCH("/retire", protect, sc.RetireAthlete)
		scores.GET("/:event_id", sc.GetScores)
		scores.GET("/:event_id/ties", sc.GetTies)
		scores.GET("/:event_id/export", protect, sc.ExportScores)
		scores.POST("/:event_id/recompute", protect, sc.RecomputeRanks)
	}
}
