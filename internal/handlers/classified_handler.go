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

type ClassifiedHandler struct {
	classifiedService services.ClassifiedService
	log               *logger.Logger
}

func NewClassifiedHandler(classifiedService services.ClassifiedService, log *logger.Logger) *ClassifiedHandler {
	return &ClassifiedHandler{
		classifiedService: classifiedService,
		log:               log,
	}
}

// Create handles POST /classifieds. Listings live 30 days and are then
// purged by the cleanup sweep.
func (h *ClassifiedHandler) Create(c *gin.Context) {
	principal, _ := middleware.GetPrincipal(c)

	var req validators.ClassifiedCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}
	if verrs := validators.ValidateStruct(&req); len(verrs) > 0 {
		utils.ValidationErrorResponse(c, verrs.ToDetails())
		return
	}

	listing, err := h.classifiedService.Create(c.Request.Context(), principal.ID, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.CreatedResponse(c, "Listing created", listing)
}

// Mine handles GET /classifieds/mine.
func (h *ClassifiedHandler) Mine(c *gin.Context) {
	principal, _ := middleware.GetPrincipal(c)
	pagination := utils.GetPaginationParams(c)

	listings, total, err := h.classifiedService.ListByOwner(c.Request.Context(), principal.ID, pagination.Skip, pagination.Limit)
	if err != nil {
		h.log.WithError(err).Error("failed to list classified listings")
		utils.InternalServerErrorResponse(c)
		return
	}

	utils.SuccessResponseWithMeta(c, "Listings retrieved", listings, &utils.Meta{
		Pagination: utils.CreatePaginationMeta(pagination, total),
	})
}

// Get handles GET /classifieds/:id.
func (h *ClassifiedHandler) Get(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid listing id")
		return
	}

	listing, err := h.classifiedService.GetByID(c.Request.Context(), id)
	if err != nil {
		utils.NotFoundResponse(c, "Listing")
		return
	}

	utils.SuccessResponse(c, "Listing retrieved", listing)
}

// Update handles PUT /classifieds/:id.
func (h *ClassifiedHandler) Update(c *gin.Context) {
	principal, _ := middleware.GetPrincipal(c)

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid listing id")
		return
	}

	var req validators.ClassifiedUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}
	if verrs := validators.ValidateStruct(&req); len(verrs) > 0 {
		utils.ValidationErrorResponse(c, verrs.ToDetails())
		return
	}

	if err := h.classifiedService.Update(c.Request.Context(), principal.ID, id, &req); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Listing updated", nil)
}

// Delete handles DELETE /classifieds/:id. Stored images go with it.
func (h *ClassifiedHandler) Delete(c *gin.Context) {
	principal, _ := middleware.GetPrincipal(c)

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid listing id")
		return
	}

	if err := h.classifiedService.Delete(c.Request.Context(), principal.ID, id); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
