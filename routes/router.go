package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/DhavalSuthar-24/musclemyths/config"
	"github.com/DhavalSuthar-24/musclemyths/internal/athlete"
	"github.com/DhavalSuthar-24/musclemyths/internal/auth"
	"github.com/DhavalSuthar-24/musclemyths/internal/event"
	"github.com/DhavalSuthar-24/musclemyths/internal/lineup"
	"github.com/DhavalSuthar-24/musclemyths/internal/metrics"
	"github.com/DhavalSuthar-24/musclemyths/internal/middleware"
	"github.com/DhavalSuthar-24/musclemyths/internal/registration"
	"github.com/DhavalSuthar-24/musclemyths/internal/score"
	"github.com/DhavalSuthar-24/musclemyths/internal/upload"
)

func corsConfig(cfg *config.Config) cors.Config {
	c := cors.DefaultConfig()
	c.AllowOrigins = []string{cfg.App.FrontendURL}
	c.AllowHeaders = append(c.AllowHeaders, "Authorization")
	c.ExposeHeaders = []string{"Content-Disposition"}
	c.AllowCredentials = true
	return c
}

func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	r := gin.Default()
	r.Use(cors.New(corsConfig(cfg)))

	r.Static(upload.PublicPrefix, cfg.App.UploadDir)

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Muscle Myths API is running"})
	})

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	rec := metrics.New(registry)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	protect := middleware.AuthMiddleware(cfg.JWT.Secret, db)
	loginLimit := middleware.RateLimit(middleware.NewIPRateLimiter(cfg.Login.RatePerMinute, cfg.Login.Burst))

	api := r.Group("/api")
	auth.RegisterAuthRoutes(api, db, cfg, protect, loginLimit)
	athlete.RegisterAthleteRoutes(api, db, protect)
	event.RegisterEventRoutes(api, db, protect)
	registration.RegisterRegistrationRoutes(api, db, protect)
	lineup.RegisterLineupRoutes(api, db, rec, protect)
	score.RegisterScoreRoutes(api, db, rec, protect)
	upload.RegisterUploadRoutes(api, cfg.App.UploadDir, cfg.UploadMaxBytes(), protect)

	return r
}
