package domain

import (
	"fmt"
	"time"
)

var (
	MessageSuccessGetRecipes      = "success get recipes"
	MessageSuccessGetRecipeDetail = "success get recipe detail"
	MessageSuccessSaveRecipe      = "recipe saved successfully"
	MessageSuccessUpdateRecipe    = "recipe updated successfully"
	MessageSuccessDeleteRecipe    = "recipe deleted successfully"
	MessageSuccessFavoriteRecipe  = "recipe added to favorites"
	MessageSuccessUnfavorite      = "recipe removed from favorites"
	MessageSuccessGetFavorites    = "success get favorite recipes"

	MessageFailedGetRecipes      = "failed to get recipes"
	MessageFailedGetRecipeDetail = "failed to get recipe detail"
	MessageFailedSaveRecipe      = "failed to save recipe"
	MessageFailedUpdateRecipe    = "failed to update recipe"
	MessageFailedDeleteRecipe    = "failed to delete recipe"
	MessageFailedFavoriteRecipe  = "failed to update favorites"

	ErrRecipeNotFound     = fmt.Errorf("recipe %w", ErrNotFound)
	ErrIngredientNotFound = fmt.Errorf("ingredient %w", ErrNotFound)
	ErrInvalidDifficulty  = fmt.Errorf("%w: unknown difficulty level", ErrBadRequest)
)

type (
	IngredientItem struct {
		IngredientID   string  `json:"ingredient_id,omitempty"`
		IngredientName string  `json:"ingredient_name,omitempty"`
		Quantity       float64 `json:"quantity" validate:"required,gt=0"`
		Unit           string  `json:"unit" validate:"required"`
		Notes          string  `json:"notes,omitempty"`
		DisplayOrder   int     `json:"display_order"`
	}

	RecipeRequest struct {
		Title           string           `json:"title" validate:"required,max=200"`
		Description     string           `json:"description"`
		Instructions    string           `json:"instructions" validate:"required"`
		ImageURL        string           `json:"image_url,omitempty"`
		PrepTimeMinutes int              `json:"prep_time_minutes" validate:"required,gt=0"`
		CookTimeMinutes int              `json:"cook_time_minutes" validate:"required,gt=0"`
		Servings        int              `json:"servings" validate:"required,gt=0"`
		Difficulty      string           `json:"difficulty" validate:"required,oneof=EASY MEDIUM HARD"`
		CategoryID      string           `json:"category_id,omitempty" validate:"omitempty,uuid"`
		Calories        *int             `json:"calories,omitempty"`
		Protein         *float64         `json:"protein,omitempty"`
		Carbohydrates   *float64         `json:"carbohydrates,omitempty"`
		Fat             *float64         `json:"fat,omitempty"`
		Fiber           *float64         `json:"fiber,omitempty"`
		Published       bool             `json:"published"`
		Ingredients     []IngredientItem `json:"ingredients,omitempty" validate:"omitempty,dive"`
	}

	RecipeResponse struct {
		ID              string           `json:"id"`
		Title           string           `json:"title"`
		Description     string           `json:"description"`
		Instructions    string           `json:"instructions"`
		ImageURL        string           `json:"image_url,omitempty"`
		PrepTimeMinutes int              `json:"prep_time_minutes"`
		CookTimeMinutes int              `json:"cook_time_minutes"`
		TotalTime       int              `json:"total_time"`
		Servings        int              `json:"servings"`
		Difficulty      string           `json:"difficulty"`
		Calories        *int             `json:"calories,omitempty"`
		Protein         *float64         `json:"protein,omitempty"`
		Carbohydrates   *float64         `json:"carbohydrates,omitempty"`
		Fat             *float64         `json:"fat,omitempty"`
		Fiber           *float64         `json:"fiber,omitempty"`
		AverageRating   float64          `json:"average_rating"`
		ReviewCount     int              `json:"review_count"`
		ViewCount       int              `json:"view_count"`
		Published       bool             `json:"published"`
		AuthorID        string           `json:"author_id"`
		AuthorUsername  string           `json:"author_username,omitempty"`
		CategoryID      string           `json:"category_id,omitempty"`
		CategoryName    string           `json:"category_name,omitempty"`
		Ingredients     []IngredientItem `json:"ingredients,omitempty"`
		CreatedAt       time.Time        `json:"created_at"`
		UpdatedAt       time.Time        `json:"updated_at"`
	}

	RecipeListResponse struct {
		Recipes []RecipeResponse `json:"recipes"`
		Meta    PageMeta         `json:"meta"`
	}
)
