package handlers

import (
	"nearmarket/internal/models"
	"nearmarket/internal/services"
	"nearmarket/internal/utils"
	"nearmarket/internal/validators"
	"nearmarket/pkg/logger"

	"github.com/gin-gonic/gin"
)

// DiscoveryHandler serves the location-aware read side: nearby businesses,
// products, classifieds, visible advertisements, and trending searches.
type DiscoveryHandler struct {
	discoveryService services.DiscoveryService
	log              *logger.Logger
}

func NewDiscoveryHandler(discoveryService services.DiscoveryService, log *logger.Logger) *DiscoveryHandler {
	return &DiscoveryHandler{
		discoveryService: discoveryService,
		log:              log,
	}
}

func (h *DiscoveryHandler) discoveryParams(c *gin.Context) (*services.DiscoveryParams, bool) {
	req, errs := validators.ValidateNearbyQuery(c)
	if errs != nil {
		utils.ValidationErrorResponse(c, errs)
		return nil, false
	}

	viewer, errs := validators.ParseViewerLocation(c)
	if errs != nil {
		utils.ValidationErrorResponse(c, errs)
		return nil, false
	}

	pagination := utils.GetPaginationParams(c)

	return &services.DiscoveryParams{
		Latitude:   viewer.Latitude,
		Longitude:  viewer.Longitude,
		Search:     req.Search,
		CategoryID: req.CategoryID,
		Type:       models.BusinessType(req.Type),
		OffersOnly: req.OffersOnly,
		Skip:       pagination.Skip,
		Limit:      pagination.Limit,
	}, true
}

// NearbyBusinesses handles GET /discover/businesses.
func (h *DiscoveryHandler) NearbyBusinesses(c *gin.Context) {
	params, ok := h.discoveryParams(c)
	if !ok {
		return
	}

	results, err := h.discoveryService.NearbyBusinesses(c.Request.Context(), params)
	if err != nil {
		h.log.WithError(err).Error("nearby businesses query failed")
		utils.InternalServerErrorResponse(c)
		return
	}

	utils.SuccessResponseWithMeta(c, "Nearby businesses retrieved", results, &utils.Meta{Count: len(results)})
}

// NearbyProducts handles GET /discover/products.
func (h *DiscoveryHandler) NearbyProducts(c *gin.Context) {
	params, ok := h.discoveryParams(c)
	if !ok {
		return
	}

	results, err := h.discoveryService.NearbyProducts(c.Request.Context(), params)
	if err != nil {
		h.log.WithError(err).Error("nearby products query failed")
		utils.InternalServerErrorResponse(c)
		return
	}

	utils.SuccessResponseWithMeta(c, "Nearby products retrieved", results, &utils.Meta{Count: len(results)})
}

// NearbyClassifieds handles GET /discover/classifieds.
func (h *DiscoveryHandler) NearbyClassifieds(c *gin.Context) {
	params, ok := h.discoveryParams(c)
	if !ok {
		return
	}

	results, err := h.discoveryService.NearbyClassifieds(c.Request.Context(), params)
	if err != nil {
		h.log.WithError(err).Error("nearby classifieds query failed")
		utils.InternalServerErrorResponse(c)
		return
	}

	utils.SuccessResponseWithMeta(c, "Nearby classifieds retrieved", results, &utils.Meta{Count: len(results)})
}

// VisibleAds handles GET /discover/ads. Targeted ads are filtered by the
// viewer's distance from each ad's center; admin ads always show.
func (h *DiscoveryHandler) VisibleAds(c *gin.Context) {
	viewer, errs := validators.ParseViewerLocation(c)
	if errs != nil {
		utils.ValidationErrorResponse(c, errs)
		return
	}

	pagination := utils.GetPaginationParams(c)

	ads, err := h.discoveryService.VisibleAds(c.Request.Context(), viewer.Latitude, viewer.Longitude, pagination.Skip, pagination.Limit)
	if err != nil {
		h.log.WithError(err).Error("visible ads query failed")
		utils.InternalServerErrorResponse(c)
		return
	}

	utils.SuccessResponseWithMeta(c, "Advertisements retrieved", ads, &utils.Meta{Count: len(ads)})
}

// TopSearchTerms handles GET /discover/top-searches.
func (h *DiscoveryHandler) TopSearchTerms(c *gin.Context) {
	pagination := utils.GetPaginationParams(c)

	terms, err := h.discoveryService.TopSearchTerms(c.Request.Context(), pagination.Limit)
	if err != nil {
		h.log.WithError(err).Error("top searches query failed")
		utils.InternalServerErrorResponse(c)
		return
	}

	utils.SuccessResponseWithMeta(c, "Top search terms retrieved", terms, &utils.Meta{Count: len(terms)})
}
