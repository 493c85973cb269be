package routes

import (
	"nearmarket/internal/handlers"
	"nearmarket/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupUploadRoutes sets up the image upload route for authenticated actors
func SetupUploadRoutes(r *gin.RouterGroup, uploadHandler *handlers.UploadHandler, jwtSecret string) {
	uploads := r.Group("/uploads")
	uploads.Use(middleware.AuthRequired(jwtSecret))
	{
		uploads.POST("", uploadHandler.Upload)
	}
}
