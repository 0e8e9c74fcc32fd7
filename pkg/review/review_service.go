package review

import (
	"Recipe-Share-Backend/domain"
	"Recipe-Share-Backend/entities"
	"Recipe-Share-Backend/internal/utils"
	"Recipe-Share-Backend/pkg/recipe"
	"Recipe-Share-Backend/pkg/user"
	"context"
	"errors"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"time"
)

var reviewSortFields = []string{"created_at", "rating"}

type (
	ReviewService interface {
		CreateReview(ctx context.Context, recipeID string, req domain.ReviewRequest, userID string) (*domain.ReviewResponse, error)
		UpdateReview(ctx context.Context, reviewID string, req domain.ReviewRequest, userID string) (*domain.ReviewResponse, error)
		DeleteReview(ctx context.Context, reviewID string, userID string) error
		GetReviewsByRecipe(ctx context.Context, recipeID string, req domain.PageRequest) (*domain.ReviewListResponse, error)
		GetReviewsByUser(ctx context.Context, userID string, req domain.PageRequest) (*domain.ReviewListResponse, error)
	}

	reviewService struct {
		reviewRepository ReviewRepository
		recipeRepository recipe.RecipeRepository
		userRepository   user.UserRepository
	}
)

func NewReviewService(
	reviewRepository ReviewRepository,
	recipeRepository recipe.RecipeRepository,
	userRepository user.UserRepository,
) ReviewService {
	return &reviewService{
		reviewRepository: reviewRepository,
		recipeRepository: recipeRepository,
		userRepository:   userRepository,
	}
}

func (s *reviewService) CreateReview(ctx context.Context, recipeID string, req domain.ReviewRequest, userID string) (*domain.ReviewResponse, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, domain.ErrInvalidRating
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	reviewer, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	target, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, err
	}

	exists, err := s.reviewRepository.ExistsByUserAndRecipe(ctx, userID, recipeID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDuplicateReview
	}

	review := &entities.Review{
		ID:        uuid.New(),
		UserID:    userUUID,
		RecipeID:  target.ID,
		Rating:    req.Rating,
		Comment:   req.Comment,
		CreatedAt: time.Now(),
	}

	if err := s.reviewRepository.CreateReviewWithStats(ctx, review); err != nil {
		return nil, err
	}

	review.User = reviewer
	review.Recipe = target
	return convertToResponse(review), nil
}

func (s *reviewService) UpdateReview(ctx context.Context, reviewID string, req domain.ReviewRequest, userID string) (*domain.ReviewResponse, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, domain.ErrInvalidRating
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	review, err := s.reviewRepository.GetReviewByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrReviewNotFound
		}
		return nil, err
	}

	if err := domain.AssertOwner(review.UserID, userUUID); err != nil {
		return nil, err
	}

	review.Rating = req.Rating
	review.Comment = req.Comment

	if err := s.reviewRepository.UpdateReviewWithStats(ctx, review); err != nil {
		return nil, err
	}

	return convertToResponse(review), nil
}

func (s *reviewService) DeleteReview(ctx context.Context, reviewID string, userID string) error {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}

	review, err := s.reviewRepository.GetReviewByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrReviewNotFound
		}
		return err
	}

	if err := domain.AssertOwner(review.UserID, userUUID); err != nil {
		return err
	}

	return s.reviewRepository.DeleteReviewWithStats(ctx, review)
}

func (s *reviewService) GetReviewsByRecipe(ctx context.Context, recipeID string, req domain.PageRequest) (*domain.ReviewListResponse, error) {
	if _, err := s.recipeRepository.GetRecipeByID(ctx, recipeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, err
	}

	req = utils.SanitizePageRequest(req, reviewSortFields...)
	reviews, count, err := s.reviewRepository.GetReviewsByRecipe(ctx, recipeID, req)
	if err != nil {
		return nil, err
	}
	return convertToList(reviews, req, count), nil
}

func (s *reviewService) GetReviewsByUser(ctx context.Context, userID string, req domain.PageRequest) (*domain.ReviewListResponse, error) {
	if _, err := s.userRepository.GetUserByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	req = utils.SanitizePageRequest(req, reviewSortFields...)
	reviews, count, err := s.reviewRepository.GetReviewsByUser(ctx, userID, req)
	if err != nil {
		return nil, err
	}
	return convertToList(reviews, req, count), nil
}

func convertToList(reviews []*entities.Review, req domain.PageRequest, count int64) *domain.ReviewListResponse {
	result := make([]domain.ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		result = append(result, *convertToResponse(r))
	}
	return &domain.ReviewListResponse{
		Reviews: result,
		Meta:    utils.NewPageMeta(req, count),
	}
}

func convertToResponse(review *entities.Review) *domain.ReviewResponse {
	res := &domain.ReviewResponse{
		ID:        review.ID.String(),
		Rating:    review.Rating,
		Comment:   review.Comment,
		UserID:    review.UserID.String(),
		RecipeID:  review.RecipeID.String(),
		CreatedAt: review.CreatedAt,
	}
	if review.User != nil {
		res.Username = review.User.Username
	}
	if review.Recipe != nil {
		res.RecipeTitle = review.Recipe.Title
	}
	return res
}
