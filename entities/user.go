package entities

import (
	"github.com/google/uuid"
	"time"
)

type User struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Username        string    `gorm:"uniqueIndex;size:50" json:"username"`
	Email           string    `gorm:"uniqueIndex;size:100" json:"email"`
	Password        string    `json:"-"`
	FullName        string    `json:"full_name"`
	Bio             string    `gorm:"type:text" json:"bio,omitempty"`
	ProfileImageURL string    `json:"profile_image_url,omitempty"`
	Role            string    `gorm:"default:USER" json:"role"` // "USER" or "ADMIN"
	Enabled         bool      `gorm:"default:true" json:"enabled"`

	Recipes []*Recipe `gorm:"foreignKey:UserID" json:"-"`
	Timestamp
}

// UserFollow is the owned direction of the follow relation. The follower set of
// a user is always derived by querying the inverse, never stored.
type UserFollow struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	FollowerID  uuid.UUID `gorm:"uniqueIndex:idx_user_follows_edge" json:"follower_id"`
	FollowingID uuid.UUID `gorm:"uniqueIndex:idx_user_follows_edge" json:"following_id"`
	CreatedAt   time.Time `gorm:"type:timestamp" json:"created_at"`

	Follower  *User `gorm:"foreignKey:FollowerID"`
	Following *User `gorm:"foreignKey:FollowingID"`
}
