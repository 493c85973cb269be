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

type ProductHandler struct {
	productService services.ProductService
	log            *logger.Logger
}

func NewProductHandler(productService services.ProductService, log *logger.Logger) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		log:            log,
	}
}

// Create handles POST /products. The product inherits the owning
// business's location.
func (h *ProductHandler) Create(c *gin.Context) {
	principal, _ := middleware.GetPrincipal(c)

	var req validators.ProductCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}
	if verrs := validators.ValidateStruct(&req); len(verrs) > 0 {
		utils.ValidationErrorResponse(c, verrs.ToDetails())
		return
	}

	product, err := h.productService.Create(c.Request.Context(), principal.ID, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.CreatedResponse(c, "Product created", product)
}

// Mine handles GET /products/mine.
func (h *ProductHandler) Mine(c *gin.Context) {
	principal, _ := middleware.GetPrincipal(c)
	pagination := utils.GetPaginationParams(c)

	products, total, err := h.productService.ListByOwner(c.Request.Context(), principal.ID, pagination.Skip, pagination.Limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponseWithMeta(c, "Products retrieved", products, &utils.Meta{
		Pagination: utils.CreatePaginationMeta(pagination, total),
	})
}

// Get handles GET /products/:id.
func (h *ProductHandler) Get(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product id")
		return
	}

	product, err := h.productService.GetByID(c.Request.Context(), id)
	if err != nil {
		utils.NotFoundResponse(c, "Product")
		return
	}

	utils.SuccessResponse(c, "Product retrieved", product)
}

// Update handles PUT /products/:id.
func (h *ProductHandler) Update(c *gin.Context) {
	principal, _ := middleware.GetPrincipal(c)

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product id")
		return
	}

	var req validators.ProductUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}
	if verrs := validators.ValidateStruct(&req); len(verrs) > 0 {
		utils.ValidationErrorResponse(c, verrs.ToDetails())
		return
	}

	product, err := h.productService.Update(c.Request.Context(), principal.ID, id, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Product updated", product)
}

// Delete handles DELETE /products/:id.
func (h *ProductHandler) Delete(c *gin.Context) {
	principal, _ := middleware.GetPrincipal(c)

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product id")
		return
	}

	if err := h.productService.Delete(c.Request.Context(), principal.ID, id); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
