package handlers

import (
	"nearmarket/internal/services"
	"nearmarket/internal/utils"
	"nearmarket/internal/validators"
	"nearmarket/pkg/logger"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	categoryService services.CategoryService
	log             *logger.Logger
}

func NewCategoryHandler(categoryService services.CategoryService, log *logger.Logger) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
		log:             log,
	}
}

// List handles GET /categories.
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.categoryService.List(c.Request.Context())
	if err != nil {
		h.log.WithError(err).Error("failed to list categories")
		utils.InternalServerErrorResponse(c)
		return
	}

	utils.SuccessResponse(c, "Categories retrieved", categories)
}

// Create handles POST /admin/categories.
func (h *CategoryHandler) Create(c *gin.Context) {
	var req validators.CategoryCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}
	if verrs := validators.ValidateStruct(&req); len(verrs) > 0 {
		utils.ValidationErrorResponse(c, verrs.ToDetails())
		return
	}

	category, err := h.categoryService.Create(c.Request.Context(), req.Name, req.IconKey)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.CreatedResponse(c, "Category created", category)
}
