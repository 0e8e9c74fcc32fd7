package entities

import (
	"github.com/google/uuid"
)

type Category struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name        string    `gorm:"uniqueIndex;size:100" json:"name"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	IconURL     string    `json:"icon_url,omitempty"`

	Recipes []*Recipe `gorm:"foreignKey:CategoryID" json:"-"`
	Timestamp
}
