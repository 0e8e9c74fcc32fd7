package domain

import (
	"fmt"
	"time"
)

var (
	MessageSuccessGetCollections   = "success get collections"
	MessageSuccessSaveCollection   = "collection saved successfully"
	MessageSuccessUpdateCollection = "collection updated successfully"
	MessageSuccessDeleteCollection = "collection deleted successfully"

	MessageFailedGetCollections = "failed to get collections"
	MessageFailedSaveCollection = "failed to save collection"

	ErrCollectionNotFound = fmt.Errorf("collection %w", ErrNotFound)
	ErrCollectionPrivate  = fmt.Errorf("%w: collection is private", ErrUserNotAllowed)
)

type (
	CollectionRequest struct {
		Name        string `json:"name" validate:"required,max=200"`
		Description string `json:"description,omitempty"`
		IsPublic    bool   `json:"is_public"`
	}

	CollectionResponse struct {
		ID          string    `json:"id"`
		UserID      string    `json:"user_id"`
		Name        string    `json:"name"`
		Description string    `json:"description,omitempty"`
		IsPublic    bool      `json:"is_public"`
		RecipeCount int       `json:"recipe_count"`
		CreatedAt   time.Time `json:"created_at"`
	}
)
