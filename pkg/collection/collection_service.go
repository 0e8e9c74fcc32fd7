package collection

import (
	"Recipe-Share-Backend/domain"
	"Recipe-Share-Backend/entities"
	"Recipe-Share-Backend/internal/utils"
	"Recipe-Share-Backend/pkg/recipe"
	"context"
	"errors"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var collectionSortFields = []string{"created_at", "name"}

type (
	CollectionService interface {
		CreateCollection(ctx context.Context, req domain.CollectionRequest, userID string) (*domain.CollectionResponse, error)
		UpdateCollection(ctx context.Context, collectionID string, req domain.CollectionRequest, userID string) (*domain.CollectionResponse, error)
		DeleteCollection(ctx context.Context, collectionID string, userID string) error
		GetCollection(ctx context.Context, collectionID string, userID string) (*domain.CollectionResponse, error)
		GetMyCollections(ctx context.Context, userID string, req domain.PageRequest) ([]domain.CollectionResponse, domain.PageMeta, error)
		GetUserPublicCollections(ctx context.Context, ownerID string, req domain.PageRequest) ([]domain.CollectionResponse, domain.PageMeta, error)

		AddRecipe(ctx context.Context, collectionID, recipeID string, userID string) error
		RemoveRecipe(ctx context.Context, collectionID, recipeID string, userID string) error
	}

	collectionService struct {
		collectionRepository CollectionRepository
		recipeRepository     recipe.RecipeRepository
	}
)

func NewCollectionService(collectionRepository CollectionRepository, recipeRepository recipe.RecipeRepository) CollectionService {
	return &collectionService{
		collectionRepository: collectionRepository,
		recipeRepository:     recipeRepository,
	}
}

func (s *collectionService) CreateCollection(ctx context.Context, req domain.CollectionRequest, userID string) (*domain.CollectionResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	collection := &entities.Collection{
		ID:          uuid.New(),
		UserID:      userUUID,
		Name:        req.Name,
		Description: req.Description,
		IsPublic:    req.IsPublic,
	}

	if err := s.collectionRepository.CreateCollection(ctx, collection); err != nil {
		return nil, err
	}

	return s.convertToResponse(ctx, collection)
}

func (s *collectionService) UpdateCollection(ctx context.Context, collectionID string, req domain.CollectionRequest, userID string) (*domain.CollectionResponse, error) {
	collection, err := s.getOwned(ctx, collectionID, userID)
	if err != nil {
		return nil, err
	}

	collection.Name = req.Name
	collection.Description = req.Description
	collection.IsPublic = req.IsPublic

	if err := s.collectionRepository.SaveCollection(ctx, collection); err != nil {
		return nil, err
	}

	return s.convertToResponse(ctx, collection)
}

func (s *collectionService) DeleteCollection(ctx context.Context, collectionID string, userID string) error {
	if _, err := s.getOwned(ctx, collectionID, userID); err != nil {
		return err
	}
	return s.collectionRepository.DeleteCollection(ctx, collectionID)
}

// GetCollection returns a private collection only to its owner.
func (s *collectionService) GetCollection(ctx context.Context, collectionID string, userID string) (*domain.CollectionResponse, error) {
	collection, err := s.collectionRepository.GetCollectionByID(ctx, collectionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCollectionNotFound
		}
		return nil, err
	}

	if !collection.IsPublic && collection.UserID.String() != userID {
		return nil, domain.ErrCollectionPrivate
	}

	return s.convertToResponse(ctx, collection)
}

func (s *collectionService) GetMyCollections(ctx context.Context, userID string, req domain.PageRequest) ([]domain.CollectionResponse, domain.PageMeta, error) {
	req = utils.SanitizePageRequest(req, collectionSortFields...)
	collections, count, err := s.collectionRepository.GetCollectionsByUser(ctx, userID, false, req)
	if err != nil {
		return nil, domain.PageMeta{}, err
	}
	result, err := s.convertAll(ctx, collections)
	if err != nil {
		return nil, domain.PageMeta{}, err
	}
	return result, utils.NewPageMeta(req, count), nil
}

func (s *collectionService) GetUserPublicCollections(ctx context.Context, ownerID string, req domain.PageRequest) ([]domain.CollectionResponse, domain.PageMeta, error) {
	req = utils.SanitizePageRequest(req, collectionSortFields...)
	collections, count, err := s.collectionRepository.GetCollectionsByUser(ctx, ownerID, true, req)
	if err != nil {
		return nil, domain.PageMeta{}, err
	}
	result, err := s.convertAll(ctx, collections)
	if err != nil {
		return nil, domain.PageMeta{}, err
	}
	return result, utils.NewPageMeta(req, count), nil
}

func (s *collectionService) AddRecipe(ctx context.Context, collectionID, recipeID string, userID string) error {
	collection, err := s.getOwned(ctx, collectionID, userID)
	if err != nil {
		return err
	}

	target, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}

	return s.collectionRepository.AddRecipe(ctx, collection.ID, target.ID)
}

func (s *collectionService) RemoveRecipe(ctx context.Context, collectionID, recipeID string, userID string) error {
	if _, err := s.getOwned(ctx, collectionID, userID); err != nil {
		return err
	}
	return s.collectionRepository.RemoveRecipe(ctx, collectionID, recipeID)
}

func (s *collectionService) getOwned(ctx context.Context, collectionID string, userID string) (*entities.Collection, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	collection, err := s.collectionRepository.GetCollectionByID(ctx, collectionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCollectionNotFound
		}
		return nil, err
	}

	if err := domain.AssertOwner(collection.UserID, userUUID); err != nil {
		return nil, err
	}

	return collection, nil
}

func (s *collectionService) convertAll(ctx context.Context, collections []*entities.Collection) ([]domain.CollectionResponse, error) {
	result := make([]domain.CollectionResponse, 0, len(collections))
	for _, c := range collections {
		res, err := s.convertToResponse(ctx, c)
		if err != nil {
			return nil, err
		}
		result = append(result, *res)
	}
	return result, nil
}

func (s *collectionService) convertToResponse(ctx context.Context, collection *entities.Collection) (*domain.CollectionResponse, error) {
	recipeCount, err := s.collectionRepository.CountRecipes(ctx, collection.ID.String())
	if err != nil {
		return nil, err
	}

	return &domain.CollectionResponse{
		ID:          collection.ID.String(),
		UserID:      collection.UserID.String(),
		Name:        collection.Name,
		Description: collection.Description,
		IsPublic:    collection.IsPublic,
		RecipeCount: int(recipeCount),
		CreatedAt:   collection.CreatedAt,
	}, nil
}
