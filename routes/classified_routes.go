package routes

import (
	"nearmarket/internal/handlers"
	"nearmarket/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupClassifiedRoutes sets up routes for classified listings. Any
// authenticated actor may post; ownership checks live in the service.
func SetupClassifiedRoutes(r *gin.RouterGroup, classifiedHandler *handlers.ClassifiedHandler, jwtSecret string) {
	classifieds := r.Group("/classifieds")
	classifieds.Use(middleware.AuthRequired(jwtSecret))
	{
		classifieds.POST("", classifiedHandler.Create)
		classifieds.GET("/mine", classifiedHandler.Mine)
		classifieds.GET("/:id", classifiedHandler.Get)
		classifieds.PUT("/:id", classifiedHandler.Update)
		classifieds.DELETE("/:id", classifiedHandler.Delete)
	}
}
