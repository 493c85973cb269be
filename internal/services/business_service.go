package services

import (
	"context"
	"fmt"

	"nearmarket/internal/models"
	"nearmarket/internal/repositories/interfaces"
	"nearmarket/internal/validators"
	"nearmarket/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BusinessService interface {
	Create(ctx context.Context, ownerID primitive.ObjectID, req *validators.BusinessCreateRequest) (*models.Business, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Business, error)
	GetByOwner(ctx context.Context, ownerID primitive.ObjectID) (*models.Business, error)
	Update(ctx context.Context, ownerID primitive.ObjectID, req *validators.BusinessUpdateRequest) (*models.Business, error)
	SetActive(ctx context.Context, id primitive.ObjectID, active bool) error
}

type businessService struct {
	businessRepo interfaces.BusinessRepository
	productRepo  interfaces.ProductRepository
	categoryRepo interfaces.CategoryRepository
	log          *logger.Logger
}

func NewBusinessService(
	businessRepo interfaces.BusinessRepository,
	productRepo interfaces.ProductRepository,
	categoryRepo interfaces.CategoryRepository,
	log *logger.Logger,
) BusinessService {
	return &businessService{
		businessRepo: businessRepo,
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		log:          log,
	}
}

func (s *businessService) Create(ctx context.Context, ownerID primitive.ObjectID, req *validators.BusinessCreateRequest) (*models.Business, error) {
	if existing, _ := s.businessRepo.GetByOwner(ctx, ownerID); existing != nil {
		return nil, fmt.Errorf("owner already has a business profile")
	}

	categoryID, err := primitive.ObjectIDFromHex(req.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("invalid category id")
	}
	if _, err := s.categoryRepo.GetByID(ctx, categoryID); err != nil {
		return nil, err
	}

	lat, lng, err := parseCoordinatePair(req.Latitude, req.Longitude)
	if err != nil {
		return nil, err
	}

	business := &models.Business{
		OwnerID:     ownerID,
		Name:        req.Name,
		Bio:         req.Bio,
		Keywords:    req.Keywords,
		Type:        models.BusinessType(req.Type),
		CategoryID:  categoryID,
		Location:    models.NewGeoPoint(lat, lng),
		Phone:       req.Phone,
		IsActive:    true,
		IsAvailable: true,
	}

	if err := s.businessRepo.Create(ctx, business); err != nil {
		return nil, err
	}

	return business, nil
}

func (s *businessService) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Business, error) {
	return s.businessRepo.GetByID(ctx, id)
}

func (s *businessService) GetByOwner(ctx context.Context, ownerID primitive.ObjectID) (*models.Business, error) {
	return s.businessRepo.GetByOwner(ctx, ownerID)
}

// Update mutates the caller's profile. A location change is propagated to
// the business's products, which carry a copy rather than a reference.
func (s *businessService) Update(ctx context.Context, ownerID primitive.ObjectID, req *validators.BusinessUpdateRequest) (*models.Business, error) {
	business, err := s.businessRepo.GetByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.Bio != "" {
		updates["bio"] = req.Bio
	}
	if req.Keywords != nil {
		updates["keywords"] = req.Keywords
	}
	if req.Phone != "" {
		updates["phone"] = req.Phone
	}
	if req.IsAvailable != nil {
		updates["is_available"] = *req.IsAvailable
	}
	if req.CategoryID != "" {
		categoryID, err := primitive.ObjectIDFromHex(req.CategoryID)
		if err != nil {
			return nil, fmt.Errorf("invalid category id")
		}
		if _, err := s.categoryRepo.GetByID(ctx, categoryID); err != nil {
			return nil, err
		}
		updates["category_id"] = categoryID
	}

	var moved *models.GeoPoint
	if req.Latitude != "" && req.Longitude != "" {
		lat, lng, err := parseCoordinatePair(req.Latitude, req.Longitude)
		if err != nil {
			return nil, err
		}
		moved = models.NewGeoPoint(lat, lng)
		updates["location"] = moved
	}

	if len(updates) > 0 {
		if err := s.businessRepo.Update(ctx, business.ID, updates); err != nil {
			return nil, err
		}
	}

	if moved != nil {
		if err := s.productRepo.SyncLocation(ctx, business.ID, moved); err != nil {
			// Products keep the stale copy until the next save; log it.
			s.log.WithError(err).WithField("business_id", business.ID.Hex()).Error("failed to sync product locations")
		}
	}

	return s.businessRepo.GetByID(ctx, business.ID)
}

func (s *businessService) SetActive(ctx context.Context, id primitive.ObjectID, active bool) error {
	return s.businessRepo.SetActive(ctx, id, active)
}
