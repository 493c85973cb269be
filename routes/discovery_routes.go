package routes

import (
	"nearmarket/internal/handlers"
	"nearmarket/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupDiscoveryRoutes sets up the public proximity discovery routes.
// Discovery is anonymous: viewer location comes from query parameters,
// never from an authenticated profile. The search-frequency report the
// counters feed is admin-only.
func SetupDiscoveryRoutes(r *gin.RouterGroup, discoveryHandler *handlers.DiscoveryHandler, jwtSecret string) {
	discovery := r.Group("/discovery")
	{
		discovery.GET("/businesses/nearby", discoveryHandler.NearbyBusinesses)
		discovery.GET("/products/nearby", discoveryHandler.NearbyProducts)
		discovery.GET("/classifieds", discoveryHandler.NearbyClassifieds)
		discovery.GET("/ads", discoveryHandler.VisibleAds)
	}

	admin := r.Group("/admin")
	admin.Use(middleware.AuthRequired(jwtSecret), middleware.AdminRequired())
	{
		admin.GET("/search-terms", discoveryHandler.TopSearchTerms)
	}
}
