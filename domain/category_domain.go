package domain

import (
	"fmt"
)

var (
	MessageSuccessGetCategories  = "success get categories"
	MessageSuccessSaveCategory   = "category saved successfully"
	MessageSuccessUpdateCategory = "category updated successfully"
	MessageSuccessDeleteCategory = "category deleted successfully"

	MessageFailedGetCategories  = "failed to get categories"
	MessageFailedSaveCategory   = "failed to save category"
	MessageFailedDeleteCategory = "failed to delete category"

	ErrCategoryNotFound  = fmt.Errorf("category %w", ErrNotFound)
	ErrCategoryNameTaken = fmt.Errorf("category name %w", ErrConflict)
)

type (
	CategoryRequest struct {
		Name        string `json:"name" validate:"required,max=100"`
		Description string `json:"description,omitempty"`
		IconURL     string `json:"icon_url,omitempty"`
	}

	CategoryResponse struct {
		ID          string `json:"id"`
		Name        string `json:"name"`
		Description string `json:"description,omitempty"`
		IconURL     string `json:"icon_url,omitempty"`
		RecipeCount int    `json:"recipe_count"`
	}
)
