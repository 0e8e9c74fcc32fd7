package domain

import (
	"fmt"
	"time"
)

var (
	MessageSuccessGetReviews   = "success get reviews"
	MessageSuccessSaveReview   = "review saved successfully"
	MessageSuccessUpdateReview = "review updated successfully"
	MessageSuccessDeleteReview = "review deleted successfully"

	MessageFailedGetReviews   = "failed to get reviews"
	MessageFailedSaveReview   = "failed to save review"
	MessageFailedUpdateReview = "failed to update review"
	MessageFailedDeleteReview = "failed to delete review"

	ErrReviewNotFound  = fmt.Errorf("review %w", ErrNotFound)
	ErrDuplicateReview = fmt.Errorf("review for this recipe %w", ErrConflict)
	ErrInvalidRating   = fmt.Errorf("%w: rating must be between 1 and 5", ErrBadRequest)
)

type (
	ReviewRequest struct {
		Rating  int    `json:"rating" validate:"required,min=1,max=5"`
		Comment string `json:"comment,omitempty"`
	}

	ReviewResponse struct {
		ID          string    `json:"id"`
		Rating      int       `json:"rating"`
		Comment     string    `json:"comment,omitempty"`
		UserID      string    `json:"user_id"`
		Username    string    `json:"username,omitempty"`
		RecipeID    string    `json:"recipe_id"`
		RecipeTitle string    `json:"recipe_title,omitempty"`
		CreatedAt   time.Time `json:"created_at"`
	}

	ReviewListResponse struct {
		Reviews []ReviewResponse `json:"reviews"`
		Meta    PageMeta         `json:"meta"`
	}
)
