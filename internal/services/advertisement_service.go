package services

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"nearmarket/internal/models"
	"nearmarket/internal/repositories/interfaces"
	"nearmarket/internal/scheduler"
	"nearmarket/internal/utils"
	"nearmarket/pkg/logger"
	"nearmarket/pkg/payment"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AdSubmission carries a business ad submission after request validation.
type AdSubmission struct {
	Title     string
	ImageKey  string
	Latitude  float64
	Longitude float64
	RadiusKM  float64
	PlanID    primitive.ObjectID
	PaymentID string
}

type AdvertisementService interface {
	Plans(ctx context.Context) ([]*models.AdPlan, error)
	Checkout(ctx context.Context, ownerID, planID primitive.ObjectID) (*payment.PaymentResponse, error)
	Submit(ctx context.Context, ownerID primitive.ObjectID, submission *AdSubmission) (*models.Advertisement, error)
	SubmitAdmin(ctx context.Context, adminID primitive.ObjectID, title, imageKey string) (*models.Advertisement, error)
	Resubmit(ctx context.Context, ownerID, adID primitive.ObjectID, paymentID string) (*models.Advertisement, error)
	Approve(ctx context.Context, adID primitive.ObjectID) error
	Reject(ctx context.Context, adID primitive.ObjectID, reason string) error
	ListPending(ctx context.Context, skip, limit int64) ([]*models.Advertisement, int64, error)
	ListByBusiness(ctx context.Context, businessID primitive.ObjectID, skip, limit int64) ([]*models.Advertisement, int64, error)

	// ExpireDue is the sweep body: live ads past their deadline become
	// expired and inactive. Idempotent.
	ExpireDue(ctx context.Context, now time.Time) error
}

type advertisementService struct {
	adRepo        interfaces.AdvertisementRepository
	planRepo      interfaces.AdPlanRepository
	businessRepo  interfaces.BusinessRepository
	notifications NotificationService
	payments      payment.PaymentProvider
	clock         scheduler.Clock
	log           *logger.Logger
}

func NewAdvertisementService(
	adRepo interfaces.AdvertisementRepository,
	planRepo interfaces.AdPlanRepository,
	businessRepo interfaces.BusinessRepository,
	notifications NotificationService,
	payments payment.PaymentProvider,
	clock scheduler.Clock,
	log *logger.Logger,
) AdvertisementService {
	return &advertisementService{
		adRepo:        adRepo,
		planRepo:      planRepo,
		businessRepo:  businessRepo,
		notifications: notifications,
		payments:      payments,
		clock:         clock,
		log:           log,
	}
}

func (s *advertisementService) Plans(ctx context.Context) ([]*models.AdPlan, error) {
	return s.planRepo.ListActive(ctx)
}

func (s *advertisementService) Checkout(ctx context.Context, ownerID, planID primitive.ObjectID) (*payment.PaymentResponse, error) {
	plan, err := s.planRepo.GetByID(ctx, planID)
	if err != nil {
		return nil, err
	}
	if !plan.IsActive {
		return nil, fmt.Errorf("ad plan is not available")
	}

	return s.payments.CreatePaymentIntent(ctx, &payment.PaymentRequest{
		Amount:   plan.Price,
		Currency: plan.Currency,
		Metadata: map[string]string{
			"plan_id":  plan.ID.Hex(),
			"owner_id": ownerID.Hex(),
		},
	})
}

func (s *advertisementService) Submit(ctx context.Context, ownerID primitive.ObjectID, submission *AdSubmission) (*models.Advertisement, error) {
	business, err := s.businessRepo.GetByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	if _, err := s.planRepo.GetByID(ctx, submission.PlanID); err != nil {
		return nil, err
	}

	paid, err := s.payments.VerifyPayment(ctx, submission.PaymentID)
	if err != nil {
		return nil, fmt.Errorf("failed to verify payment: %w", err)
	}
	if !paid {
		return nil, fmt.Errorf("payment not completed")
	}

	ad := &models.Advertisement{
		BusinessID:      &business.ID,
		PostedBy:        ownerID,
		IsPostedByAdmin: false,
		Title:           submission.Title,
		ImageKey:        submission.ImageKey,
		Location:        models.NewGeoPoint(submission.Latitude, submission.Longitude),
		RadiusKM:        submission.RadiusKM,
		RadiusInRadians: utils.KMToRadians(submission.RadiusKM),
		PlanID:          submission.PlanID,
		Status:          models.AdStatusPending,
		IsActive:        false,
	}

	if err := s.adRepo.Create(ctx, ad); err != nil {
		return nil, err
	}

	return ad, nil
}

// SubmitAdmin posts an untargeted ad: no location, no radius, no expiry,
// live immediately.
func (s *advertisementService) SubmitAdmin(ctx context.Context, adminID primitive.ObjectID, title, imageKey string) (*models.Advertisement, error) {
	ad := &models.Advertisement{
		PostedBy:        adminID,
		IsPostedByAdmin: true,
		Title:           title,
		ImageKey:        imageKey,
		Status:          models.AdStatusLive,
		IsActive:        true,
	}

	if err := s.adRepo.Create(ctx, ad); err != nil {
		return nil, err
	}

	return ad, nil
}

// Resubmit creates a fresh pending ad copying the location and plan of a
// rejected or expired one. The old document is never mutated.
func (s *advertisementService) Resubmit(ctx context.Context, ownerID, adID primitive.ObjectID, paymentID string) (*models.Advertisement, error) {
	old, err := s.adRepo.GetByID(ctx, adID)
	if err != nil {
		return nil, err
	}
	if old.PostedBy != ownerID {
		return nil, fmt.Errorf("advertisement does not belong to caller")
	}
	if old.Status != models.AdStatusRejected && old.Status != models.AdStatusExpired {
		return nil, fmt.Errorf("only rejected or expired advertisements can be resubmitted")
	}

	paid, err := s.payments.VerifyPayment(ctx, paymentID)
	if err != nil {
		return nil, fmt.Errorf("failed to verify payment: %w", err)
	}
	if !paid {
		return nil, fmt.Errorf("payment not completed")
	}

	ad := &models.Advertisement{
		BusinessID:      old.BusinessID,
		PostedBy:        old.PostedBy,
		IsPostedByAdmin: false,
		Title:           old.Title,
		ImageKey:        old.ImageKey,
		Location:        old.Location,
		RadiusKM:        old.RadiusKM,
		RadiusInRadians: old.RadiusInRadians,
		PlanID:          old.PlanID,
		Status:          models.AdStatusPending,
		IsActive:        false,
	}

	if err := s.adRepo.Create(ctx, ad); err != nil {
		return nil, err
	}

	return ad, nil
}

func (s *advertisementService) Approve(ctx context.Context, adID primitive.ObjectID) error {
	ad, err := s.adRepo.GetByID(ctx, adID)
	if err != nil {
		return err
	}

	plan, err := s.planRepo.GetByID(ctx, ad.PlanID)
	if err != nil {
		return err
	}

	expireAt := s.clock.Now().Add(plan.Duration())
	if err := s.adRepo.Approve(ctx, adID, expireAt); err != nil {
		return err
	}

	s.notifications.Notify(ctx, ad.PostedBy, models.NotificationAdApproved,
		"Advertisement approved",
		fmt.Sprintf("%q is now live until %s", ad.Title, expireAt.Format("2006-01-02")),
		map[string]string{"ad_id": adID.Hex()})

	return nil
}

func (s *advertisementService) Reject(ctx context.Context, adID primitive.ObjectID, reason string) error {
	ad, err := s.adRepo.GetByID(ctx, adID)
	if err != nil {
		return err
	}

	if err := s.adRepo.Reject(ctx, adID); err != nil {
		return err
	}

	body := fmt.Sprintf("%q was rejected", ad.Title)
	if reason != "" {
		body += ": " + reason
	}
	s.notifications.Notify(ctx, ad.PostedBy, models.NotificationAdRejected,
		"Advertisement rejected", body,
		map[string]string{"ad_id": adID.Hex()})

	return nil
}

func (s *advertisementService) ListPending(ctx context.Context, skip, limit int64) ([]*models.Advertisement, int64, error) {
	return s.adRepo.ListByStatus(ctx, models.AdStatusPending, skip, limit)
}

func (s *advertisementService) ListByBusiness(ctx context.Context, businessID primitive.ObjectID, skip, limit int64) ([]*models.Advertisement, int64, error) {
	return s.adRepo.ListByBusiness(ctx, businessID, skip, limit)
}

func (s *advertisementService) ExpireDue(ctx context.Context, now time.Time) error {
	count, err := s.adRepo.ExpireDue(ctx, now)
	if err != nil {
		return err
	}
	if count > 0 {
		s.log.WithField("count", strconv.FormatInt(count, 10)).Info("expired advertisements")
	}

	return nil
}
