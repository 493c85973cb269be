package routes

import (
	"nearmarket/internal/handlers"
	"nearmarket/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupBusinessRoutes sets up routes for business profile management
func SetupBusinessRoutes(r *gin.RouterGroup, businessHandler *handlers.BusinessHandler, jwtSecret string) {
	businesses := r.Group("/businesses")
	businesses.Use(middleware.AuthRequired(jwtSecret))
	{
		// Profile lookup is open to any authenticated actor
		businesses.GET("/:id", businessHandler.Get)

		// Profile ownership requires a store or freelancer account
		owned := businesses.Group("")
		owned.Use(middleware.BusinessRequired())
		{
			owned.POST("", businessHandler.Create)
			owned.GET("/me", businessHandler.Me)
			owned.PUT("/me", businessHandler.Update)
		}
	}
}
