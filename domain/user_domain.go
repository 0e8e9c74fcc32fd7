package domain

import (
	"fmt"
	"time"
)

var (
	MessageSuccessRegister     = "user registered successfully"
	MessageSuccessLogin        = "login success"
	MessageSuccessGetUser      = "success get user"
	MessageSuccessUpdateUser   = "user updated successfully"
	MessageSuccessFollowUser   = "user followed successfully"
	MessageSuccessUnfollowUser = "user unfollowed successfully"
	MessageSuccessGetFollowers = "success get followers"
	MessageSuccessGetFollowing = "success get following"

	MessageFailedRegister   = "failed to register user"
	MessageFailedLogin      = "failed to login"
	MessageFailedGetUser    = "failed to get user"
	MessageFailedUpdateUser = "failed to update user"
	MessageFailedFollowUser = "failed to update follow relation"

	ErrUserNotFound       = fmt.Errorf("user %w", ErrNotFound)
	ErrUsernameTaken      = fmt.Errorf("username %w", ErrConflict)
	ErrEmailTaken         = fmt.Errorf("email %w", ErrConflict)
	ErrSelfFollow         = fmt.Errorf("%w: cannot follow yourself", ErrBadRequest)
	ErrInvalidCredentials = fmt.Errorf("%w: invalid username or password", ErrBadRequest)
)

type (
	RegisterRequest struct {
		Username string `json:"username" validate:"required,min=3,max=50"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=6,max=100"`
		FullName string `json:"full_name" validate:"required"`
	}

	LoginRequest struct {
		Username string `json:"username" validate:"required"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		Token string       `json:"token"`
		User  UserResponse `json:"user"`
	}

	UpdateProfileRequest struct {
		FullName        string `json:"full_name,omitempty"`
		Bio             string `json:"bio,omitempty"`
		ProfileImageURL string `json:"profile_image_url,omitempty"`
	}

	UserResponse struct {
		ID              string    `json:"id"`
		Username        string    `json:"username"`
		Email           string    `json:"email,omitempty"`
		FullName        string    `json:"full_name"`
		Bio             string    `json:"bio,omitempty"`
		ProfileImageURL string    `json:"profile_image_url,omitempty"`
		Role            string    `json:"role"`
		RecipeCount     int       `json:"recipe_count"`
		FollowerCount   int       `json:"follower_count"`
		FollowingCount  int       `json:"following_count"`
		CreatedAt       time.Time `json:"created_at"`
	}
)
