package collection

import (
	"Recipe-Share-Backend/domain"
	"Recipe-Share-Backend/entities"
	"Recipe-Share-Backend/internal/utils"
	"context"
	"errors"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"time"
)

type (
	CollectionRepository interface {
		CreateCollection(ctx context.Context, collection *entities.Collection) error
		SaveCollection(ctx context.Context, collection *entities.Collection) error
		GetCollectionByID(ctx context.Context, id string) (*entities.Collection, error)
		DeleteCollection(ctx context.Context, id string) error
		GetCollectionsByUser(ctx context.Context, userID string, publicOnly bool, req domain.PageRequest) ([]*entities.Collection, int64, error)

		AddRecipe(ctx context.Context, collectionID, recipeID uuid.UUID) error
		RemoveRecipe(ctx context.Context, collectionID, recipeID string) error
		CountRecipes(ctx context.Context, collectionID string) (int64, error)
	}

	collectionRepository struct {
		db *gorm.DB
	}
)

func NewCollectionRepository(db *gorm.DB) CollectionRepository {
	return &collectionRepository{db: db}
}

func (r *collectionRepository) CreateCollection(ctx context.Context, collection *entities.Collection) error {
	return r.db.WithContext(ctx).Create(collection).Error
}

func (r *collectionRepository) SaveCollection(ctx context.Context, collection *entities.Collection) error {
	return r.db.WithContext(ctx).Save(collection).Error
}

func (r *collectionRepository) GetCollectionByID(ctx context.Context, id string) (*entities.Collection, error) {
	var collection entities.Collection
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&collection).Error; err != nil {
		return nil, err
	}
	return &collection, nil
}

func (r *collectionRepository) DeleteCollection(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("collection_id = ?", id).Delete(&entities.CollectionRecipe{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&entities.Collection{}).Error
	})
}

func (r *collectionRepository) GetCollectionsByUser(ctx context.Context, userID string, publicOnly bool, req domain.PageRequest) ([]*entities.Collection, int64, error) {
	var collections []*entities.Collection
	var count int64

	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if publicOnly {
		query = query.Where("is_public = ?", true)
	}

	if err := query.Model(&entities.Collection{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.
		Offset(utils.Offset(req)).
		Limit(req.Size).
		Order(utils.OrderClause(req)).
		Find(&collections).Error; err != nil {
		return nil, 0, err
	}

	return collections, count, nil
}

func (r *collectionRepository) AddRecipe(ctx context.Context, collectionID, recipeID uuid.UUID) error {
	// Already a member, nothing to do
	var existing entities.CollectionRecipe
	if err := r.db.WithContext(ctx).
		Where("collection_id = ? AND recipe_id = ?", collectionID, recipeID).
		First(&existing).Error; err == nil {
		return nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	member := entities.CollectionRecipe{
		ID:           uuid.New(),
		CollectionID: collectionID,
		RecipeID:     recipeID,
		CreatedAt:    time.Now(),
	}

	return r.db.WithContext(ctx).Create(&member).Error
}

func (r *collectionRepository) RemoveRecipe(ctx context.Context, collectionID, recipeID string) error {
	return r.db.WithContext(ctx).
		Where("collection_id = ? AND recipe_id = ?", collectionID, recipeID).
		Delete(&entities.CollectionRecipe{}).Error
}

func (r *collectionRepository) CountRecipes(ctx context.Context, collectionID string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.CollectionRecipe{}).
		Where("collection_id = ?", collectionID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
