package entities

import (
	"github.com/google/uuid"
)

type Ingredient struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name        string    `gorm:"uniqueIndex;size:100" json:"name"`
	Description string    `gorm:"type:text" json:"description,omitempty"`

	RecipeIngredients []*RecipeIngredient `gorm:"foreignKey:IngredientID" json:"-"`
	Timestamp
}
