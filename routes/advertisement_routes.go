package routes

import (
	"nearmarket/internal/handlers"
	"nearmarket/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupAdvertisementRoutes sets up the paid advertisement flow for
// business accounts plus the admin moderation surface.
func SetupAdvertisementRoutes(r *gin.RouterGroup, adHandler *handlers.AdvertisementHandler, jwtSecret string) {
	ads := r.Group("/ads")
	ads.Use(middleware.AuthRequired(jwtSecret), middleware.BusinessRequired())
	{
		ads.GET("/plans", adHandler.Plans)
		ads.POST("/checkout", adHandler.Checkout)
		ads.POST("", adHandler.Submit)
		ads.POST("/:id/resubmit", adHandler.Resubmit)
		ads.GET("/mine", adHandler.Mine)
	}

	admin := r.Group("/admin/ads")
	admin.Use(middleware.AuthRequired(jwtSecret), middleware.AdminRequired())
	{
		admin.GET("/pending", adHandler.ListPending)
		admin.POST("", adHandler.SubmitAdmin)
		admin.POST("/:id/approve", adHandler.Approve)
		admin.POST("/:id/reject", adHandler.Reject)
	}
}
