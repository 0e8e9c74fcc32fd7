package user

import (
	"Recipe-Share-Backend/domain"
	"Recipe-Share-Backend/entities"
	"Recipe-Share-Backend/pkg/jwt"
	"context"
	"errors"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (*domain.UserResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (*domain.LoginResponse, error)
		Me(ctx context.Context, userID string) (*domain.UserResponse, error)
		GetUserByID(ctx context.Context, id string) (*domain.UserResponse, error)
		UpdateProfile(ctx context.Context, req domain.UpdateProfileRequest, userID string) (*domain.UserResponse, error)

		FollowUser(ctx context.Context, targetUserID string, userID string) error
		UnfollowUser(ctx context.Context, targetUserID string, userID string) error
		GetFollowers(ctx context.Context, userID string) ([]domain.UserResponse, error)
		GetFollowing(ctx context.Context, userID string) ([]domain.UserResponse, error)
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
	}
)

func NewUserService(userRepository UserRepository, jwtService jwt.JWTService) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
	}
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (*domain.UserResponse, error) {
	taken, err := s.userRepository.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.ErrUsernameTaken
	}

	taken, err = s.userRepository.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		ID:       uuid.New(),
		Username: req.Username,
		Email:    req.Email,
		Password: string(hashed),
		FullName: req.FullName,
		Role:     domain.RoleUser,
		Enabled:  true,
	}

	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	return s.convertToResponse(ctx, user)
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (*domain.LoginResponse, error) {
	user, err := s.userRepository.GetUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.Enabled {
		return nil, domain.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	token := s.jwtService.GenerateTokenUser(user.ID.String(), user.Role)

	res, err := s.convertToResponse(ctx, user)
	if err != nil {
		return nil, err
	}

	return &domain.LoginResponse{
		Token: token,
		User:  *res,
	}, nil
}

func (s *userService) Me(ctx context.Context, userID string) (*domain.UserResponse, error) {
	return s.GetUserByID(ctx, userID)
}

func (s *userService) GetUserByID(ctx context.Context, id string) (*domain.UserResponse, error) {
	user, err := s.userRepository.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return s.convertToResponse(ctx, user)
}

// UpdateProfile only ever touches the caller's own display fields.
func (s *userService) UpdateProfile(ctx context.Context, req domain.UpdateProfileRequest, userID string) (*domain.UserResponse, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	if req.FullName != "" {
		user.FullName = req.FullName
	}
	if req.Bio != "" {
		user.Bio = req.Bio
	}
	if req.ProfileImageURL != "" {
		user.ProfileImageURL = req.ProfileImageURL
	}

	if err := s.userRepository.SaveUser(ctx, user); err != nil {
		return nil, err
	}

	return s.convertToResponse(ctx, user)
}

func (s *userService) FollowUser(ctx context.Context, targetUserID string, userID string) error {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}

	targetUUID, err := uuid.Parse(targetUserID)
	if err != nil {
		return domain.ErrParseUUID
	}

	if userUUID == targetUUID {
		return domain.ErrSelfFollow
	}

	if _, err := s.userRepository.GetUserByID(ctx, targetUserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	return s.userRepository.AddFollow(ctx, userUUID, targetUUID)
}

func (s *userService) UnfollowUser(ctx context.Context, targetUserID string, userID string) error {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}

	targetUUID, err := uuid.Parse(targetUserID)
	if err != nil {
		return domain.ErrParseUUID
	}

	if _, err := s.userRepository.GetUserByID(ctx, targetUserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrUserNotFound
		}
		return err
	}

	return s.userRepository.RemoveFollow(ctx, userUUID, targetUUID)
}

func (s *userService) GetFollowers(ctx context.Context, userID string) ([]domain.UserResponse, error) {
	if _, err := s.userRepository.GetUserByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	followers, err := s.userRepository.GetFollowers(ctx, userID)
	if err != nil {
		return nil, err
	}

	return s.convertAll(ctx, followers)
}

func (s *userService) GetFollowing(ctx context.Context, userID string) ([]domain.UserResponse, error) {
	if _, err := s.userRepository.GetUserByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	following, err := s.userRepository.GetFollowing(ctx, userID)
	if err != nil {
		return nil, err
	}

	return s.convertAll(ctx, following)
}

func (s *userService) convertAll(ctx context.Context, users []*entities.User) ([]domain.UserResponse, error) {
	result := make([]domain.UserResponse, 0, len(users))
	for _, u := range users {
		res, err := s.convertToResponse(ctx, u)
		if err != nil {
			return nil, err
		}
		result = append(result, *res)
	}
	return result, nil
}

func (s *userService) convertToResponse(ctx context.Context, user *entities.User) (*domain.UserResponse, error) {
	id := user.ID.String()

	recipeCount, err := s.userRepository.CountRecipesByUser(ctx, id)
	if err != nil {
		return nil, err
	}

	followerCount, err := s.userRepository.CountFollowers(ctx, id)
	if err != nil {
		return nil, err
	}

	followingCount, err := s.userRepository.CountFollowing(ctx, id)
	if err != nil {
		return nil, err
	}

	return &domain.UserResponse{
		ID:              id,
		Username:        user.Username,
		Email:           user.Email,
		FullName:        user.FullName,
		Bio:             user.Bio,
		ProfileImageURL: user.ProfileImageURL,
		Role:            user.Role,
		RecipeCount:     int(recipeCount),
		FollowerCount:   int(followerCount),
		FollowingCount:  int(followingCount),
		CreatedAt:       user.CreatedAt,
	}, nil
}
