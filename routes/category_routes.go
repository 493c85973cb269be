package routes

import (
	"nearmarket/internal/handlers"
	"nearmarket/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupCategoryRoutes sets up the public category listing and the
// admin-only category management route.
func SetupCategoryRoutes(r *gin.RouterGroup, categoryHandler *handlers.CategoryHandler, jwtSecret string) {
	r.GET("/categories", categoryHandler.List)

	admin := r.Group("/admin/categories")
	admin.Use(middleware.AuthRequired(jwtSecret), middleware.AdminRequired())
	{
		admin.POST("", categoryHandler.Create)
	}
}
