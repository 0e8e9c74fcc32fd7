package category

import (
	"Recipe-Share-Backend/domain"
	"Recipe-Share-Backend/entities"
	"context"
	"errors"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	CategoryService interface {
		GetCategories(ctx context.Context) ([]domain.CategoryResponse, error)
		GetCategoryByID(ctx context.Context, id string) (*domain.CategoryResponse, error)
		CreateCategory(ctx context.Context, req domain.CategoryRequest) (*domain.CategoryResponse, error)
		UpdateCategory(ctx context.Context, id string, req domain.CategoryRequest) (*domain.CategoryResponse, error)
		DeleteCategory(ctx context.Context, id string) error
	}

	categoryService struct {
		categoryRepository CategoryRepository
	}
)

func NewCategoryService(categoryRepository CategoryRepository) CategoryService {
	return &categoryService{categoryRepository: categoryRepository}
}

func (s *categoryService) GetCategories(ctx context.Context) ([]domain.CategoryResponse, error) {
	categories, err := s.categoryRepository.GetCategories(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]domain.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		res, err := s.convertToResponse(ctx, c)
		if err != nil {
			return nil, err
		}
		result = append(result, *res)
	}
	return result, nil
}

func (s *categoryService) GetCategoryByID(ctx context.Context, id string) (*domain.CategoryResponse, error) {
	category, err := s.categoryRepository.GetCategoryByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, err
	}
	return s.convertToResponse(ctx, category)
}

func (s *categoryService) CreateCategory(ctx context.Context, req domain.CategoryRequest) (*domain.CategoryResponse, error) {
	taken, err := s.categoryRepository.ExistsByName(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.ErrCategoryNameTaken
	}

	category := &entities.Category{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		IconURL:     req.IconURL,
	}

	if err := s.categoryRepository.CreateCategory(ctx, category); err != nil {
		return nil, err
	}

	return s.convertToResponse(ctx, category)
}

func (s *categoryService) UpdateCategory(ctx context.Context, id string, req domain.CategoryRequest) (*domain.CategoryResponse, error) {
	category, err := s.categoryRepository.GetCategoryByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, err
	}

	if category.Name != req.Name {
		taken, err := s.categoryRepository.ExistsByName(ctx, req.Name)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, domain.ErrCategoryNameTaken
		}
	}

	category.Name = req.Name
	category.Description = req.Description
	category.IconURL = req.IconURL

	if err := s.categoryRepository.SaveCategory(ctx, category); err != nil {
		return nil, err
	}

	return s.convertToResponse(ctx, category)
}

func (s *categoryService) DeleteCategory(ctx context.Context, id string) error {
	if _, err := s.categoryRepository.GetCategoryByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrCategoryNotFound
		}
		return err
	}
	return s.categoryRepository.DeleteCategory(ctx, id)
}

func (s *categoryService) convertToResponse(ctx context.Context, category *entities.Category) (*domain.CategoryResponse, error) {
	recipeCount, err := s.categoryRepository.CountRecipesByCategory(ctx, category.ID.String())
	if err != nil {
		return nil, err
	}

	return &domain.CategoryResponse{
		ID:          category.ID.String(),
		Name:        category.Name,
		Description: category.Description,
		IconURL:     category.IconURL,
		RecipeCount: int(recipeCount),
	}, nil
}
