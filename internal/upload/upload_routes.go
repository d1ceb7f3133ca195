package upload

import "github.com/gin-gonic/gin"

func RegisterUploadRoutes(router *gin.RouterGroup, dir string, maxBytes int64, protect gin.HandlerFunc) {
	NewUploadController(dir, maxBytes).Mount(router, protect)
}

func (uc *UploadController) Mount(router *gin.RouterGroup, protect gin.HandlerFunc) {
	router.POST("/upload", protect, uc.UploadMedia)
}
