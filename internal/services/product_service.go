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

type ProductService interface {
	Create(ctx context.Context, ownerID primitive.ObjectID, req *validators.ProductCreateRequest) (*models.Product, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
	ListByOwner(ctx context.Context, ownerID primitive.ObjectID, skip, limit int64) ([]*models.Product, int64, error)
	Update(ctx context.Context, ownerID, productID primitive.ObjectID, req *validators.ProductUpdateRequest) (*models.Product, error)
	Delete(ctx context.Context, ownerID, productID primitive.ObjectID) error
}

type productService struct {
	productRepo  interfaces.ProductRepository
	businessRepo interfaces.BusinessRepository
	categoryRepo interfaces.CategoryRepository
	log          *logger.Logger
}

func NewProductService(
	productRepo interfaces.ProductRepository,
	businessRepo interfaces.BusinessRepository,
	categoryRepo interfaces.CategoryRepository,
	log *logger.Logger,
) ProductService {
	return &productService{
		productRepo:  productRepo,
		businessRepo: businessRepo,
		categoryRepo: categoryRepo,
		log:          log,
	}
}

func (s *productService) Create(ctx context.Context, ownerID primitive.ObjectID, req *validators.ProductCreateRequest) (*models.Product, error) {
	business, err := s.businessRepo.GetByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("business profile required: %w", err)
	}

	product := &models.Product{
		BusinessID:  business.ID,
		Name:        req.Name,
		Description: req.Description,
		Keywords:    req.Keywords,
		Price:       req.Price,
		OfferPrice:  req.OfferPrice,
		HasOffer:    req.HasOffer,
		ImageKeys:   req.ImageKeys,
		Location:    business.Location,
		IsActive:    true,
	}

	if req.CategoryID != "" {
		categoryID, err := primitive.ObjectIDFromHex(req.CategoryID)
		if err != nil {
			return nil, fmt.Errorf("invalid category id")
		}
		if _, err := s.categoryRepo.GetByID(ctx, categoryID); err != nil {
			return nil, err
		}
		product.CategoryID = categoryID
	} else {
		product.CategoryID = business.CategoryID
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

func (s *productService) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	return s.productRepo.GetByID(ctx, id)
}

func (s *productService) ListByOwner(ctx context.Context, ownerID primitive.ObjectID, skip, limit int64) ([]*models.Product, int64, error) {
	business, err := s.businessRepo.GetByOwner(ctx, ownerID)
	if err != nil {
		return nil, 0, err
	}
	return s.productRepo.ListByBusiness(ctx, business.ID, skip, limit)
}

func (s *productService) Update(ctx context.Context, ownerID, productID primitive.ObjectID, req *validators.ProductUpdateRequest) (*models.Product, error) {
	product, err := s.ownedProduct(ctx, ownerID, productID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.Description != "" {
		updates["description"] = req.Description
	}
	if req.Keywords != nil {
		updates["keywords"] = req.Keywords
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.OfferPrice != nil {
		updates["offer_price"] = *req.OfferPrice
	}
	if req.HasOffer != nil {
		updates["has_offer"] = *req.HasOffer
	}
	if req.ImageKeys != nil {
		updates["image_keys"] = req.ImageKeys
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
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

	if len(updates) > 0 {
		if err := s.productRepo.Update(ctx, product.ID, updates); err != nil {
			return nil, err
		}
	}

	return s.productRepo.GetByID(ctx, product.ID)
}

func (s *productService) Delete(ctx context.Context, ownerID, productID primitive.ObjectID) error {
	product, err := s.ownedProduct(ctx, ownerID, productID)
	if err != nil {
		return err
	}
	return s.productRepo.Delete(ctx, product.ID)
}

func (s *productService) ownedProduct(ctx context.Context, ownerID, productID primitive.ObjectID) (*models.Product, error) {
	business, err := s.businessRepo.GetByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product.BusinessID != business.ID {
		return nil, fmt.Errorf("product does not belong to caller")
	}
	return product, nil
}
