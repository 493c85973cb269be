package handlers

import (
	"strconv"
	"strings"

	"nearmarket/internal/middleware"
	"nearmarket/internal/services"
	"nearmarket/internal/utils"
	"nearmarket/internal/validators"
	"nearmarket/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AdvertisementHandler struct {
	adService       services.AdvertisementService
	businessService services.BusinessService
	log             *logger.Logger
}

func NewAdvertisementHandler(adService services.AdvertisementService, businessService services.BusinessService, log *logger.Logger) *AdvertisementHandler {
	return &AdvertisementHandler{
		adService:       adService,
		businessService: businessService,
		log:             log,
	}
}

// Plans handles GET /ads/plans.
func (h *AdvertisementHandler) Plans(c *gin.Context) {
	plans, err := h.adService.Plans(c.Request.Context())
	if err != nil {
		h.log.WithError(err).Error("failed to list ad plans")
		utils.InternalServerErrorResponse(c)
		return
	}

	utils.SuccessResponse(c, "Advertisement plans retrieved", plans)
}

// Checkout handles POST /ads/checkout: creates the payment intent the
// client confirms before submitting the ad.
func (h *AdvertisementHandler) Checkout(c *gin.Context) {
	principal, _ := middleware.GetPrincipal(c)

	var req validators.AdPlanCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}
	if verrs := validators.ValidateStruct(&req); len(verrs) > 0 {
		utils.ValidationErrorResponse(c, verrs.ToDetails())
		return
	}

	planID, _ := primitive.ObjectIDFromHex(req.PlanID)
	resp, err := h.adService.Checkout(c.Request.Context(), principal.ID, planID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Checkout created", resp)
}

// Submit handles POST /ads.
func (h *AdvertisementHandler) Submit(c *gin.Context) {
	principal, _ := middleware.GetPrincipal(c)

	var req validators.AdSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}
	if verrs := validators.ValidateStruct(&req); len(verrs) > 0 {
		utils.ValidationErrorResponse(c, verrs.ToDetails())
		return
	}

	lat, _ := strconv.ParseFloat(req.Latitude, 64)
	lng, _ := strconv.ParseFloat(req.Longitude, 64)
	planID, _ := primitive.ObjectIDFromHex(req.PlanID)

	ad, err := h.adService.Submit(c.Request.Context(), principal.ID, &services.AdSubmission{
		Title:     req.Title,
		ImageKey:  req.ImageKey,
		Latitude:  lat,
		Longitude: lng,
		RadiusKM:  req.RadiusKM,
		PlanID:    planID,
		PaymentID: req.PaymentID,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.CreatedResponse(c, "Advertisement submitted for review", ad)
}

// Resubmit handles POST /ads/:id/resubmit.
func (h *AdvertisementHandler) Resubmit(c *gin.Context) {
	principal, _ := middleware.GetPrincipal(c)

	adID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid advertisement id")
		return
	}

	var req validators.AdResubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}
	if verrs := validators.ValidateStruct(&req); len(verrs) > 0 {
		utils.ValidationErrorResponse(c, verrs.ToDetails())
		return
	}

	ad, err := h.adService.Resubmit(c.Request.Context(), principal.ID, adID, req.PaymentID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.CreatedResponse(c, "Advertisement resubmitted for review", ad)
}

// Mine handles GET /ads/mine: the business's own ads, every status.
func (h *AdvertisementHandler) Mine(c *gin.Context) {
	principal, _ := middleware.GetPrincipal(c)

	business, err := h.businessService.GetByOwner(c.Request.Context(), principal.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	pagination := utils.GetPaginationParams(c)
	ads, total, err := h.adService.ListByBusiness(c.Request.Context(), business.ID, pagination.Skip, pagination.Limit)
	if err != nil {
		h.log.WithError(err).Error("failed to list business ads")
		utils.InternalServerErrorResponse(c)
		return
	}

	utils.SuccessResponseWithMeta(c, "Advertisements retrieved", ads, &utils.Meta{
		Pagination: utils.CreatePaginationMeta(pagination, total),
	})
}

// ListPending handles GET /admin/ads/pending.
func (h *AdvertisementHandler) ListPending(c *gin.Context) {
	pagination := utils.GetPaginationParams(c)

	ads, total, err := h.adService.ListPending(c.Request.Context(), pagination.Skip, pagination.Limit)
	if err != nil {
		h.log.WithError(err).Error("failed to list pending ads")
		utils.InternalServerErrorResponse(c)
		return
	}

	utils.SuccessResponseWithMeta(c, "Pending advertisements retrieved", ads, &utils.Meta{
		Pagination: utils.CreatePaginationMeta(pagination, total),
	})
}

// SubmitAdmin handles POST /admin/ads: an untargeted platform ad, live
// immediately with no expiry.
func (h *AdvertisementHandler) SubmitAdmin(c *gin.Context) {
	principal, _ := middleware.GetPrincipal(c)

	var req validators.AdminAdRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}
	if verrs := validators.ValidateStruct(&req); len(verrs) > 0 {
		utils.ValidationErrorResponse(c, verrs.ToDetails())
		return
	}

	ad, err := h.adService.SubmitAdmin(c.Request.Context(), principal.ID, req.Title, req.ImageKey)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.CreatedResponse(c, "Advertisement published", ad)
}

// Approve handles POST /admin/ads/:id/approve.
func (h *AdvertisementHandler) Approve(c *gin.Context) {
	adID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid advertisement id")
		return
	}

	if err := h.adService.Approve(c.Request.Context(), adID); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Advertisement approved", nil)
}

// Reject handles POST /admin/ads/:id/reject.
func (h *AdvertisementHandler) Reject(c *gin.Context) {
	adID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid advertisement id")
		return
	}

	var req validators.AdDecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		utils.BadRequestResponse(c, "Invalid request body")
		return
	}
	if verrs := validators.ValidateStruct(&req); len(verrs) > 0 {
		utils.ValidationErrorResponse(c, verrs.ToDetails())
		return
	}

	if err := h.adService.Reject(c.Request.Context(), adID, req.Reason); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Advertisement rejected", nil)
}

// respondServiceError maps service failures onto the response envelope.
// Services speak in user-presentable sentences; "not found" picks the 404.
func respondServiceError(c *gin.Context, err error) {
	if strings.Contains(err.Error(), "not found") {
		utils.ErrorResponse(c, 404, "NOT_FOUND", err.Error())
		return
	}
	utils.BadRequestResponse(c, err.Error())
}
