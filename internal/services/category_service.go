package services

import (
	"context"

	"nearmarket/internal/models"
	"nearmarket/internal/repositories/interfaces"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CategoryService interface {
	Create(ctx context.Context, name, iconKey string) (*models.Category, error)
	List(ctx context.Context) ([]*models.Category, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Category, error)
}

type categoryService struct {
	categoryRepo interfaces.CategoryRepository
}

func NewCategoryService(categoryRepo interfaces.CategoryRepository) CategoryService {
	return &categoryService{categoryRepo: categoryRepo}
}

func (s *categoryService) Create(ctx context.Context, name, iconKey string) (*models.Category, error) {
	category := &models.Category{
		Name:     name,
		IconKey:  iconKey,
		IsActive: true,
	}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *categoryService) List(ctx context.Context) ([]*models.Category, error) {
	return s.categoryRepo.List(ctx)
}

func (s *categoryService) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Category, error) {
	return s.categoryRepo.GetByID(ctx, id)
}
