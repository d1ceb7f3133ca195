package auth

import (
	"github.com/DhavalSuthar-24/musclemyths/config"
	"github.com/DhavalSuthar-24/musclemyths/pkg/rmiddleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterAuthRoutes(router *gin.RouterGroup, db *gorm.DB, appConfig *config.Config, protect, loginLimit gin.HandlerFunc) {
	authController := NewAuthController(NewAuthRepository(db), appConfig)
	authController.Mount(router, protect, loginLimit)
}

// Mount attaches the auth endpoints to router.
func (ac *AuthController) Mount(router *gin.RouterGroup, protect, loginLimit gin.HandlerFunc) {
	router.POST("/auth/login", loginLimit, ac.Login)

	admins := router.Group("/admins")
	admins.Use(protect, rmiddleware.SuperAdminMiddleware())
	{
		admins.POST("", ac.RegisterAdmin)
		admins.GET("", ac.GetAdmins)
		admins.DELETE("/:id", ac.DeleteAdmin)
	}
}
