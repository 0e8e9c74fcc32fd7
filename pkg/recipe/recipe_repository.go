package recipe

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
	RecipeRepository interface {
		CreateRecipe(ctx context.Context, recipe *entities.Recipe) error
		SaveRecipe(ctx context.Context, recipe *entities.Recipe) error
		GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error)
		DeleteRecipe(ctx context.Context, id string) error
		IncrementViewCount(ctx context.Context, id string) error
		CountRecipesByAuthor(ctx context.Context, authorID string) (int64, error)

		GetPublishedRecipes(ctx context.Context, req domain.PageRequest) ([]*entities.Recipe, int64, error)
		SearchRecipes(ctx context.Context, keyword string, req domain.PageRequest) ([]*entities.Recipe, int64, error)
		GetRecipesByCategory(ctx context.Context, categoryID string, req domain.PageRequest) ([]*entities.Recipe, int64, error)
		GetRecipesByDifficulty(ctx context.Context, difficulty string, req domain.PageRequest) ([]*entities.Recipe, int64, error)
		GetRecipesByAuthor(ctx context.Context, authorID string, req domain.PageRequest) ([]*entities.Recipe, int64, error)
		GetTopRatedRecipes(ctx context.Context, req domain.PageRequest) ([]*entities.Recipe, int64, error)
		GetLatestRecipes(ctx context.Context, req domain.PageRequest) ([]*entities.Recipe, int64, error)
		GetMostViewedRecipes(ctx context.Context, req domain.PageRequest) ([]*entities.Recipe, int64, error)

		ReplaceRecipeIngredients(ctx context.Context, recipeID uuid.UUID, rows []*entities.RecipeIngredient) error
		GetRecipeIngredients(ctx context.Context, recipeID string) ([]*entities.RecipeIngredient, error)

		AddFavorite(ctx context.Context, userID, recipeID string) error
		RemoveFavorite(ctx context.Context, userID, recipeID string) error
		IsFavorite(ctx context.Context, userID, recipeID string) (bool, error)
		GetFavoriteRecipes(ctx context.Context, userID string, req domain.PageRequest) ([]*entities.Recipe, int64, error)
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Create(recipe).Error
}

func (r *recipeRepository) SaveRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Save(recipe).Error
}

func (r *recipeRepository) GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Category").
		Where("id = ?", id).
		First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

// DeleteRecipe removes the recipe together with its ingredient rows, reviews,
// favorites and collection memberships in one transaction.
func (r *recipeRepository) DeleteRecipe(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", id).Delete(&entities.RecipeIngredient{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&entities.Review{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&entities.Favorite{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&entities.CollectionRecipe{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&entities.Recipe{}).Error
	})
}

func (r *recipeRepository) IncrementViewCount(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + ?", 1)).Error
}

func (r *recipeRepository) CountRecipesByAuthor(ctx context.Context, authorID string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Where("user_id = ?", authorID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *recipeRepository) GetPublishedRecipes(ctx context.Context, req domain.PageRequest) ([]*entities.Recipe, int64, error) {
	query := r.db.WithContext(ctx).Where("published = ?", true)
	return r.pageRecipes(query, req)
}

func (r *recipeRepository) SearchRecipes(ctx context.Context, keyword string, req domain.PageRequest) ([]*entities.Recipe, int64, error) {
	pattern := "%" + keyword + "%"
	query := r.db.WithContext(ctx).
		Where("published = ?", true).
		Where("LOWER(title) LIKE LOWER(?) OR LOWER(description) LIKE LOWER(?)", pattern, pattern)
	return r.pageRecipes(query, req)
}

func (r *recipeRepository) GetRecipesByCategory(ctx context.Context, categoryID string, req domain.PageRequest) ([]*entities.Recipe, int64, error) {
	query := r.db.WithContext(ctx).
		Where("published = ?", true).
		Where("category_id = ?", categoryID)
	return r.pageRecipes(query, req)
}

func (r *recipeRepository) GetRecipesByDifficulty(ctx context.Context, difficulty string, req domain.PageRequest) ([]*entities.Recipe, int64, error) {
	query := r.db.WithContext(ctx).
		Where("published = ?", true).
		Where("difficulty = ?", difficulty)
	return r.pageRecipes(query, req)
}

// GetRecipesByAuthor includes unpublished recipes, an author's own page shows
// drafts as well.
func (r *recipeRepository) GetRecipesByAuthor(ctx context.Context, authorID string, req domain.PageRequest) ([]*entities.Recipe, int64, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", authorID)
	return r.pageRecipes(query, req)
}

func (r *recipeRepository) GetTopRatedRecipes(ctx context.Context, req domain.PageRequest) ([]*entities.Recipe, int64, error) {
	var recipes []*entities.Recipe
	var count int64

	query := r.db.WithContext(ctx).Where("published = ?", true)

	if err := query.Model(&entities.Recipe{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.
		Preload("User").
		Preload("Category").
		Offset(utils.Offset(req)).
		Limit(req.Size).
		Order("average_rating desc, review_count desc").
		Find(&recipes).Error; err != nil {
		return nil, 0, err
	}

	return recipes, count, nil
}

func (r *recipeRepository) GetLatestRecipes(ctx context.Context, req domain.PageRequest) ([]*entities.Recipe, int64, error) {
	var recipes []*entities.Recipe
	var count int64

	query := r.db.WithContext(ctx).Where("published = ?", true)

	if err := query.Model(&entities.Recipe{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.
		Preload("User").
		Preload("Category").
		Offset(utils.Offset(req)).
		Limit(req.Size).
		Order("created_at desc").
		Find(&recipes).Error; err != nil {
		return nil, 0, err
	}

	return recipes, count, nil
}

func (r *recipeRepository) GetMostViewedRecipes(ctx context.Context, req domain.PageRequest) ([]*entities.Recipe, int64, error) {
	var recipes []*entities.Recipe
	var count int64

	query := r.db.WithContext(ctx).Where("published = ?", true)

	if err := query.Model(&entities.Recipe{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.
		Preload("User").
		Preload("Category").
		Offset(utils.Offset(req)).
		Limit(req.Size).
		Order("view_count desc").
		Find(&recipes).Error; err != nil {
		return nil, 0, err
	}

	return recipes, count, nil
}

// ReplaceRecipeIngredients deletes the existing rows and reinserts the new
// list in one transaction, display order is positional.
func (r *recipeRepository) ReplaceRecipeIngredients(ctx context.Context, recipeID uuid.UUID, rows []*entities.RecipeIngredient) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", recipeID).Delete(&entities.RecipeIngredient{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(rows).Error
	})
}

func (r *recipeRepository) GetRecipeIngredients(ctx context.Context, recipeID string) ([]*entities.RecipeIngredient, error) {
	var rows []*entities.RecipeIngredient
	if err := r.db.WithContext(ctx).
		Preload("Ingredient").
		Where("recipe_id = ?", recipeID).
		Order("display_order asc").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *recipeRepository) AddFavorite(ctx context.Context, userID, recipeID string) error {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return err
	}

	recipeUUID, err := uuid.Parse(recipeID)
	if err != nil {
		return err
	}

	// Already favorited, nothing to do
	var existing entities.Favorite
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userUUID, recipeUUID).
		First(&existing).Error; err == nil {
		return nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	favorite := entities.Favorite{
		ID:        uuid.New(),
		UserID:    userUUID,
		RecipeID:  recipeUUID,
		CreatedAt: time.Now(),
	}

	return r.db.WithContext(ctx).Create(&favorite).Error
}

func (r *recipeRepository) RemoveFavorite(ctx context.Context, userID, recipeID string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(&entities.Favorite{}).Error
}

func (r *recipeRepository) IsFavorite(ctx context.Context, userID, recipeID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Favorite{}).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *recipeRepository) GetFavoriteRecipes(ctx context.Context, userID string, req domain.PageRequest) ([]*entities.Recipe, int64, error) {
	var recipes []*entities.Recipe
	var count int64

	if err := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Joins("JOIN favorites ON recipes.id = favorites.recipe_id").
		Where("favorites.user_id = ?", userID).
		Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Category").
		Joins("JOIN favorites ON recipes.id = favorites.recipe_id").
		Where("favorites.user_id = ?", userID).
		Offset(utils.Offset(req)).
		Limit(req.Size).
		Order("favorites.created_at desc").
		Find(&recipes).Error; err != nil {
		return nil, 0, err
	}

	return recipes, count, nil
}

func (r *recipeRepository) pageRecipes(query *gorm.DB, req domain.PageRequest) ([]*entities.Recipe, int64, error) {
	var recipes []*entities.Recipe
	var count int64

	if err := query.Model(&entities.Recipe{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.
		Preload("User").
		Preload("Category").
		Offset(utils.Offset(req)).
		Limit(req.Size).
		Order(utils.OrderClause(req)).
		Find(&recipes).Error; err != nil {
		return nil, 0, err
	}

	return recipes, count, nil
}
