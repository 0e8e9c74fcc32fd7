package review

import (
	"Recipe-Share-Backend/domain"
	"Recipe-Share-Backend/entities"
	"Recipe-Share-Backend/internal/utils"
	"context"
	"gorm.io/gorm"
)

type (
	ReviewRepository interface {
		// The *WithStats writers pair the review mutation with the recipe
		// aggregate recompute in a single transaction. A review row is never
		// visible without its effect on average_rating/review_count.
		CreateReviewWithStats(ctx context.Context, review *entities.Review) error
		UpdateReviewWithStats(ctx context.Context, review *entities.Review) error
		DeleteReviewWithStats(ctx context.Context, review *entities.Review) error

		GetReviewByID(ctx context.Context, id string) (*entities.Review, error)
		ExistsByUserAndRecipe(ctx context.Context, userID, recipeID string) (bool, error)
		GetReviewsByRecipe(ctx context.Context, recipeID string, req domain.PageRequest) ([]*entities.Review, int64, error)
		GetReviewsByUser(ctx context.Context, userID string, req domain.PageRequest) ([]*entities.Review, int64, error)
	}

	reviewRepository struct {
		db *gorm.DB
	}
)

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) CreateReviewWithStats(ctx context.Context, review *entities.Review) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(review).Error; err != nil {
			return err
		}
		return recomputeRecipeStats(tx, review.RecipeID.String())
	})
}

func (r *reviewRepository) UpdateReviewWithStats(ctx context.Context, review *entities.Review) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(review).Error; err != nil {
			return err
		}
		return recomputeRecipeStats(tx, review.RecipeID.String())
	})
}

func (r *reviewRepository) DeleteReviewWithStats(ctx context.Context, review *entities.Review) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", review.ID).Delete(&entities.Review{}).Error; err != nil {
			return err
		}
		return recomputeRecipeStats(tx, review.RecipeID.String())
	})
}

// recomputeRecipeStats rewrites the denormalized aggregate from the review
// rows in a single statement, so the recompute always sees the rows as they
// are at write time. Zero reviews yields 0.0 / 0.
func recomputeRecipeStats(tx *gorm.DB, recipeID string) error {
	return tx.Model(&entities.Recipe{}).
		Where("id = ?", recipeID).
		UpdateColumns(map[string]interface{}{
			"average_rating": gorm.Expr("COALESCE((SELECT AVG(rating) FROM reviews WHERE recipe_id = ?), 0)", recipeID),
			"review_count":   gorm.Expr("(SELECT COUNT(*) FROM reviews WHERE recipe_id = ?)", recipeID),
		}).Error
}

func (r *reviewRepository) GetReviewByID(ctx context.Context, id string) (*entities.Review, error) {
	var review entities.Review
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Recipe").
		Where("id = ?", id).
		First(&review).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) ExistsByUserAndRecipe(ctx context.Context, userID, recipeID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Review{}).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *reviewRepository) GetReviewsByRecipe(ctx context.Context, recipeID string, req domain.PageRequest) ([]*entities.Review, int64, error) {
	var reviews []*entities.Review
	var count int64

	query := r.db.WithContext(ctx).Where("recipe_id = ?", recipeID)

	if err := query.Model(&entities.Review{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.
		Preload("User").
		Preload("Recipe").
		Offset(utils.Offset(req)).
		Limit(req.Size).
		Order(utils.OrderClause(req)).
		Find(&reviews).Error; err != nil {
		return nil, 0, err
	}

	return reviews, count, nil
}

func (r *reviewRepository) GetReviewsByUser(ctx context.Context, userID string, req domain.PageRequest) ([]*entities.Review, int64, error) {
	var reviews []*entities.Review
	var count int64

	query := r.db.WithContext(ctx).Where("user_id = ?", userID)

	if err := query.Model(&entities.Review{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.
		Preload("User").
		Preload("Recipe").
		Offset(utils.Offset(req)).
		Limit(req.Size).
		Order(utils.OrderClause(req)).
		Find(&reviews).Error; err != nil {
		return nil, 0, err
	}

	return reviews, count, nil
}
