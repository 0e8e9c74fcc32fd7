package entities

import (
	"github.com/google/uuid"
	"time"
)

type Recipe struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	UserID          uuid.UUID  `json:"user_id"`
	CategoryID      *uuid.UUID `json:"category_id,omitempty"`
	Title           string     `gorm:"size:200" json:"title"`
	Description     string     `gorm:"type:text" json:"description"`
	Instructions    string     `gorm:"type:text" json:"instructions"`
	ImageURL        string     `json:"image_url,omitempty"`
	PrepTimeMinutes int        `json:"prep_time_minutes"`
	CookTimeMinutes int        `json:"cook_time_minutes"`
	Servings        int        `json:"servings"`
	Difficulty      string     `json:"difficulty"` // "EASY", "MEDIUM", "HARD"

	// Nutrition facts, optional
	Calories      *int     `json:"calories,omitempty"`
	Protein       *float64 `json:"protein,omitempty"`
	Carbohydrates *float64 `json:"carbohydrates,omitempty"`
	Fat           *float64 `json:"fat,omitempty"`
	Fiber         *float64 `json:"fiber,omitempty"`

	// Denormalized statistics, kept in sync with the review rows
	AverageRating float64 `gorm:"default:0" json:"average_rating"`
	ReviewCount   int     `gorm:"default:0" json:"review_count"`
	ViewCount     int     `gorm:"default:0" json:"view_count"`
	Published     bool    `gorm:"default:false" json:"published"`

	User        *User               `gorm:"foreignKey:UserID"`
	Category    *Category           `gorm:"foreignKey:CategoryID"`
	Ingredients []*RecipeIngredient `gorm:"foreignKey:RecipeID"`
	Reviews     []*Review           `gorm:"foreignKey:RecipeID"`
	Timestamp
}

// TotalTime is derived, never stored.
func (r *Recipe) TotalTime() int {
	return r.PrepTimeMinutes + r.CookTimeMinutes
}

type RecipeIngredient struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	RecipeID     uuid.UUID `json:"recipe_id"`
	IngredientID uuid.UUID `json:"ingredient_id"`
	Quantity     float64   `json:"quantity"`
	Unit         string    `json:"unit"`
	Notes        string    `json:"notes,omitempty"`
	DisplayOrder int       `json:"display_order"`

	Recipe     *Recipe     `gorm:"foreignKey:RecipeID"`
	Ingredient *Ingredient `gorm:"foreignKey:IngredientID"`
}

type Favorite struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	RecipeID  uuid.UUID `json:"recipe_id"`
	CreatedAt time.Time `gorm:"type:timestamp" json:"created_at"`

	User   *User   `gorm:"foreignKey:UserID"`
	Recipe *Recipe `gorm:"foreignKey:RecipeID"`
}
