package entities

import (
	"github.com/google/uuid"
	"time"
)

type Collection struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Name        string    `gorm:"size:200" json:"name"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	IsPublic    bool      `gorm:"default:false" json:"is_public"`

	User    *User               `gorm:"foreignKey:UserID"`
	Recipes []*CollectionRecipe `gorm:"foreignKey:CollectionID"`
	Timestamp
}

type CollectionRecipe struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CollectionID uuid.UUID `gorm:"uniqueIndex:idx_collection_recipes_member" json:"collection_id"`
	RecipeID     uuid.UUID `gorm:"uniqueIndex:idx_collection_recipes_member" json:"recipe_id"`
	CreatedAt    time.Time `gorm:"type:timestamp" json:"created_at"`

	Collection *Collection `gorm:"foreignKey:CollectionID"`
	Recipe     *Recipe     `gorm:"foreignKey:RecipeID"`
}
