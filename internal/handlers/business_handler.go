package handlers

import (
	"nearmarket/internal/middleware"
	"nearmarket/internal/services"
	"nearmarket/internal/utils"
	"nearmarket/internal/validators"
	"nearmarket/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BusinessHandler struct {
	businessService services.BusinessService
	log             *logger.Logger
}

func NewBusinessHandler(businessService services.BusinessService, log *logger.Logger) *BusinessHandler {
	return &BusinessHandler{
		businessService: businessService,
		log:             log,
	}
}

// Create handles POST /businesses: registers the caller's store or
// freelancer profile. One profile per owner.
func (h *BusinessHandler) Create(c *gin.Context) {
	principal, _ := middleware.GetPrincipal(c)

	var req validators.BusinessCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}
	if verrs := validators.ValidateStruct(&req); len(verrs) > 0 {
		utils.ValidationErrorResponse(c, verrs.ToDetails())
		return
	}

	business, err := h.businessService.Create(c.Request.Context(), principal.ID, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.CreatedResponse(c, "Business profile created", business)
}

// Me handles GET /businesses/me.
func (h *BusinessHandler) Me(c *gin.Context) {
	principal, _ := middleware.GetPrincipal(c)

	business, err := h.businessService.GetByOwner(c.Request.Context(), principal.ID)
	if err != nil {
		utils.NotFoundResponse(c, "Business profile")
		return
	}

	utils.SuccessResponse(c, "Business profile retrieved", business)
}

// Update handles PUT /businesses/me. Moving the profile's location also
// re-copies it onto the profile's products.
func (h *BusinessHandler) Update(c *gin.Context) {
	principal, _ := middleware.GetPrincipal(c)

	var req validators.BusinessUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}
	if verrs := validators.ValidateStruct(&req); len(verrs) > 0 {
		utils.ValidationErrorResponse(c, verrs.ToDetails())
		return
	}
	if (req.Latitude == "") != (req.Longitude == "") {
		utils.BadRequestResponse(c, "Latitude and longitude must be provided together")
		return
	}

	business, err := h.businessService.Update(c.Request.Context(), principal.ID, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Business profile updated", business)
}

// Get handles GET /businesses/:id.
func (h *BusinessHandler) Get(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid business id")
		return
	}

	business, err := h.businessService.GetByID(c.Request.Context(), id)
	if err != nil {
		utils.NotFoundResponse(c, "Business")
		return
	}

	utils.SuccessResponse(c, "Business retrieved", business)
}
