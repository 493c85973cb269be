package routes

import (
	"nearmarket/internal/handlers"
	"nearmarket/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupProductRoutes sets up routes for product catalog management
func SetupProductRoutes(r *gin.RouterGroup, productHandler *handlers.ProductHandler, jwtSecret string) {
	products := r.Group("/products")
	products.Use(middleware.AuthRequired(jwtSecret))
	{
		products.GET("/:id", productHandler.Get)

		owned := products.Group("")
		owned.Use(middleware.BusinessRequired())
		{
			owned.POST("", productHandler.Create)
			owned.GET("/mine", productHandler.Mine)
			owned.PUT("/:id", productHandler.Update)
			owned.DELETE("/:id", productHandler.Delete)
		}
	}
}
