package services

import (
	"context"
	"fmt"
	"time"

	"nearmarket/internal/models"
	"nearmarket/internal/repositories/interfaces"
	"nearmarket/internal/scheduler"
	"nearmarket/internal/utils"
	"nearmarket/internal/validators"
	"nearmarket/pkg/logger"
	"nearmarket/pkg/storage"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ClassifiedService interface {
	Create(ctx context.Context, ownerID primitive.ObjectID, req *validators.ClassifiedCreateRequest) (*models.ClassifiedListing, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.ClassifiedListing, error)
	ListByOwner(ctx context.Context, ownerID primitive.ObjectID, skip, limit int64) ([]*models.ClassifiedListing, int64, error)
	Update(ctx context.Context, ownerID, id primitive.ObjectID, req *validators.ClassifiedUpdateRequest) error
	Delete(ctx context.Context, ownerID, id primitive.ObjectID) error

	// CleanupExpired is the daily sweep body: listings past expireAt are
	// deleted along with their stored images. Idempotent.
	CleanupExpired(ctx context.Context, now time.Time) error
}

type classifiedService struct {
	classifiedRepo interfaces.ClassifiedRepository
	storage        storage.StorageProvider
	clock          scheduler.Clock
	log            *logger.Logger
}

func NewClassifiedService(
	classifiedRepo interfaces.ClassifiedRepository,
	storageProvider storage.StorageProvider,
	clock scheduler.Clock,
	log *logger.Logger,
) ClassifiedService {
	return &classifiedService{
		classifiedRepo: classifiedRepo,
		storage:        storageProvider,
		clock:          clock,
		log:            log,
	}
}

func (s *classifiedService) Create(ctx context.Context, ownerID primitive.ObjectID, req *validators.ClassifiedCreateRequest) (*models.ClassifiedListing, error) {
	lat, lng, err := parseCoordinatePair(req.Latitude, req.Longitude)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	listing := &models.ClassifiedListing{
		OwnerID:     ownerID,
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		ImageKeys:   req.ImageKeys,
		Location:    models.NewGeoPoint(lat, lng),
		ExpireAt:    now.Add(utils.ClassifiedListingTTL),
	}

	if err := s.classifiedRepo.Create(ctx, listing); err != nil {
		return nil, err
	}

	return listing, nil
}

func (s *classifiedService) GetByID(ctx context.Context, id primitive.ObjectID) (*models.ClassifiedListing, error) {
	return s.classifiedRepo.GetByID(ctx, id)
}

func (s *classifiedService) ListByOwner(ctx context.Context, ownerID primitive.ObjectID, skip, limit int64) ([]*models.ClassifiedListing, int64, error) {
	return s.classifiedRepo.ListByOwner(ctx, ownerID, skip, limit)
}

func (s *classifiedService) Update(ctx context.Context, ownerID, id primitive.ObjectID, req *validators.ClassifiedUpdateRequest) error {
	listing, err := s.classifiedRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if listing.OwnerID != ownerID {
		return fmt.Errorf("listing does not belong to caller")
	}

	updates := map[string]interface{}{}
	if req.Title != "" {
		updates["title"] = req.Title
	}
	if req.Description != "" {
		updates["description"] = req.Description
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.ImageKeys != nil {
		updates["image_keys"] = req.ImageKeys
	}
	if len(updates) == 0 {
		return nil
	}

	return s.classifiedRepo.Update(ctx, id, updates)
}

func (s *classifiedService) Delete(ctx context.Context, ownerID, id primitive.ObjectID) error {
	listing, err := s.classifiedRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if listing.OwnerID != ownerID {
		return fmt.Errorf("listing does not belong to caller")
	}

	s.deleteImages(ctx, listing)
	return s.classifiedRepo.Delete(ctx, id)
}

func (s *classifiedService) CleanupExpired(ctx context.Context, now time.Time) error {
	expired, err := s.classifiedRepo.FindExpired(ctx, now)
	if err != nil {
		return err
	}
	if len(expired) == 0 {
		return nil
	}

	ids := make([]primitive.ObjectID, 0, len(expired))
	for _, listing := range expired {
		s.deleteImages(ctx, listing)
		ids = append(ids, listing.ID)
	}

	count, err := s.classifiedRepo.DeleteMany(ctx, ids)
	if err != nil {
		return err
	}

	s.log.WithField("count", count).Info("purged expired classified listings")
	return nil
}

// deleteImages removes stored images best-effort; a failed delete is
// logged and never blocks the listing's removal.
func (s *classifiedService) deleteImages(ctx context.Context, listing *models.ClassifiedListing) {
	if s.storage == nil {
		return
	}
	for _, key := range listing.ImageKeys {
		if err := s.storage.Delete(ctx, key); err != nil {
			s.log.WithError(err).WithField("key", key).Warn("failed to delete listing image")
		}
	}
}
