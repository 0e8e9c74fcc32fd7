package recipe

import (
	"Recipe-Share-Backend/domain"
	"Recipe-Share-Backend/entities"
	"Recipe-Share-Backend/internal/utils"
	"Recipe-Share-Backend/pkg/category"
	"Recipe-Share-Backend/pkg/ingredient"
	"Recipe-Share-Backend/pkg/user"
	"context"
	"errors"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Sort fields accepted by the browse queries. Anything else falls back to
// created_at without erroring.
var recipeSortFields = []string{
	"created_at",
	"updated_at",
	"title",
	"average_rating",
	"review_count",
	"view_count",
	"prep_time_minutes",
	"cook_time_minutes",
	"servings",
}

type (
	RecipeService interface {
		CreateRecipe(ctx context.Context, req domain.RecipeRequest, userID string) (*domain.RecipeResponse, error)
		UpdateRecipe(ctx context.Context, recipeID string, req domain.RecipeRequest, userID string) (*domain.RecipeResponse, error)
		DeleteRecipe(ctx context.Context, recipeID string, userID string) error
		GetRecipeDetail(ctx context.Context, recipeID string) (*domain.RecipeResponse, error)

		GetPublishedRecipes(ctx context.Context, req domain.PageRequest) (*domain.RecipeListResponse, error)
		SearchRecipes(ctx context.Context, keyword string, req domain.PageRequest) (*domain.RecipeListResponse, error)
		GetRecipesByCategory(ctx context.Context, categoryID string, req domain.PageRequest) (*domain.RecipeListResponse, error)
		GetRecipesByDifficulty(ctx context.Context, difficulty string, req domain.PageRequest) (*domain.RecipeListResponse, error)
		GetRecipesByAuthor(ctx context.Context, authorID string, req domain.PageRequest) (*domain.RecipeListResponse, error)
		GetTopRatedRecipes(ctx context.Context, req domain.PageRequest) (*domain.RecipeListResponse, error)
		GetLatestRecipes(ctx context.Context, req domain.PageRequest) (*domain.RecipeListResponse, error)
		GetMostViewedRecipes(ctx context.Context, req domain.PageRequest) (*domain.RecipeListResponse, error)

		AddFavorite(ctx context.Context, recipeID string, userID string) error
		RemoveFavorite(ctx context.Context, recipeID string, userID string) error
		GetFavoriteRecipes(ctx context.Context, userID string, req domain.PageRequest) (*domain.RecipeListResponse, error)
	}

	recipeService struct {
		recipeRepository     RecipeRepository
		userRepository       user.UserRepository
		categoryRepository   category.CategoryRepository
		ingredientRepository ingredient.IngredientRepository
	}
)

func NewRecipeService(
	recipeRepository RecipeRepository,
	userRepository user.UserRepository,
	categoryRepository category.CategoryRepository,
	ingredientRepository ingredient.IngredientRepository,
) RecipeService {
	return &recipeService{
		recipeRepository:     recipeRepository,
		userRepository:       userRepository,
		categoryRepository:   categoryRepository,
		ingredientRepository: ingredientRepository,
	}
}

func (s *recipeService) CreateRecipe(ctx context.Context, req domain.RecipeRequest, userID string) (*domain.RecipeResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	author, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	recipe := &entities.Recipe{
		ID:     uuid.New(),
		UserID: userUUID,
		User:   author,
	}

	if err := s.applyRequest(ctx, recipe, req); err != nil {
		return nil, err
	}

	if err := s.recipeRepository.CreateRecipe(ctx, recipe); err != nil {
		return nil, err
	}

	if len(req.Ingredients) > 0 {
		rows, err := s.resolveIngredients(ctx, recipe.ID, req.Ingredients)
		if err != nil {
			return nil, err
		}
		if err := s.recipeRepository.ReplaceRecipeIngredients(ctx, recipe.ID, rows); err != nil {
			return nil, err
		}
	}

	return s.convertToResponse(ctx, recipe, true)
}

// UpdateRecipe replaces every scalar field from the request and reinserts the
// whole ingredient list, display order is positional.
func (s *recipeService) UpdateRecipe(ctx context.Context, recipeID string, req domain.RecipeRequest, userID string) (*domain.RecipeResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	recipe, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, err
	}

	if err := domain.AssertOwner(recipe.UserID, userUUID); err != nil {
		return nil, err
	}

	if err := s.applyRequest(ctx, recipe, req); err != nil {
		return nil, err
	}

	if err := s.recipeRepository.SaveRecipe(ctx, recipe); err != nil {
		return nil, err
	}

	rows, err := s.resolveIngredients(ctx, recipe.ID, req.Ingredients)
	if err != nil {
		return nil, err
	}
	if err := s.recipeRepository.ReplaceRecipeIngredients(ctx, recipe.ID, rows); err != nil {
		return nil, err
	}

	return s.convertToResponse(ctx, recipe, true)
}

func (s *recipeService) DeleteRecipe(ctx context.Context, recipeID string, userID string) error {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}

	recipe, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}

	if err := domain.AssertOwner(recipe.UserID, userUUID); err != nil {
		return err
	}

	return s.recipeRepository.DeleteRecipe(ctx, recipeID)
}

// GetRecipeDetail bumps the view counter on every successful fetch, repeated
// fetches by the same caller all count.
func (s *recipeService) GetRecipeDetail(ctx context.Context, recipeID string) (*domain.RecipeResponse, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, err
	}

	if err := s.recipeRepository.IncrementViewCount(ctx, recipeID); err != nil {
		return nil, err
	}
	recipe.ViewCount++

	return s.convertToResponse(ctx, recipe, true)
}

func (s *recipeService) GetPublishedRecipes(ctx context.Context, req domain.PageRequest) (*domain.RecipeListResponse, error) {
	req = utils.SanitizePageRequest(req, recipeSortFields...)
	recipes, count, err := s.recipeRepository.GetPublishedRecipes(ctx, req)
	if err != nil {
		return nil, err
	}
	return s.convertToList(recipes, req, count), nil
}

func (s *recipeService) SearchRecipes(ctx context.Context, keyword string, req domain.PageRequest) (*domain.RecipeListResponse, error) {
	req = utils.SanitizePageRequest(req, recipeSortFields...)
	recipes, count, err := s.recipeRepository.SearchRecipes(ctx, keyword, req)
	if err != nil {
		return nil, err
	}
	return s.convertToList(recipes, req, count), nil
}

func (s *recipeService) GetRecipesByCategory(ctx context.Context, categoryID string, req domain.PageRequest) (*domain.RecipeListResponse, error) {
	if _, err := s.categoryRepository.GetCategoryByID(ctx, categoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, err
	}

	req = utils.SanitizePageRequest(req, recipeSortFields...)
	recipes, count, err := s.recipeRepository.GetRecipesByCategory(ctx, categoryID, req)
	if err != nil {
		return nil, err
	}
	return s.convertToList(recipes, req, count), nil
}

func (s *recipeService) GetRecipesByDifficulty(ctx context.Context, difficulty string, req domain.PageRequest) (*domain.RecipeListResponse, error) {
	switch difficulty {
	case domain.DifficultyEasy, domain.DifficultyMedium, domain.DifficultyHard:
	default:
		return nil, domain.ErrInvalidDifficulty
	}

	req = utils.SanitizePageRequest(req, recipeSortFields...)
	recipes, count, err := s.recipeRepository.GetRecipesByDifficulty(ctx, difficulty, req)
	if err != nil {
		return nil, err
	}
	return s.convertToList(recipes, req, count), nil
}

func (s *recipeService) GetRecipesByAuthor(ctx context.Context, authorID string, req domain.PageRequest) (*domain.RecipeListResponse, error) {
	if _, err := s.userRepository.GetUserByID(ctx, authorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	req = utils.SanitizePageRequest(req, recipeSortFields...)
	recipes, count, err := s.recipeRepository.GetRecipesByAuthor(ctx, authorID, req)
	if err != nil {
		return nil, err
	}
	return s.convertToList(recipes, req, count), nil
}

func (s *recipeService) GetTopRatedRecipes(ctx context.Context, req domain.PageRequest) (*domain.RecipeListResponse, error) {
	req = utils.SanitizePageRequest(req, recipeSortFields...)
	recipes, count, err := s.recipeRepository.GetTopRatedRecipes(ctx, req)
	if err != nil {
		return nil, err
	}
	return s.convertToList(recipes, req, count), nil
}

func (s *recipeService) GetLatestRecipes(ctx context.Context, req domain.PageRequest) (*domain.RecipeListResponse, error) {
	req = utils.SanitizePageRequest(req, recipeSortFields...)
	recipes, count, err := s.recipeRepository.GetLatestRecipes(ctx, req)
	if err != nil {
		return nil, err
	}
	return s.convertToList(recipes, req, count), nil
}

func (s *recipeService) GetMostViewedRecipes(ctx context.Context, req domain.PageRequest) (*domain.RecipeListResponse, error) {
	req = utils.SanitizePageRequest(req, recipeSortFields...)
	recipes, count, err := s.recipeRepository.GetMostViewedRecipes(ctx, req)
	if err != nil {
		return nil, err
	}
	return s.convertToList(recipes, req, count), nil
}

func (s *recipeService) AddFavorite(ctx context.Context, recipeID string, userID string) error {
	if _, err := s.recipeRepository.GetRecipeByID(ctx, recipeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}
	return s.recipeRepository.AddFavorite(ctx, userID, recipeID)
}

func (s *recipeService) RemoveFavorite(ctx context.Context, recipeID string, userID string) error {
	if _, err := s.recipeRepository.GetRecipeByID(ctx, recipeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}
	return s.recipeRepository.RemoveFavorite(ctx, userID, recipeID)
}

func (s *recipeService) GetFavoriteRecipes(ctx context.Context, userID string, req domain.PageRequest) (*domain.RecipeListResponse, error) {
	req = utils.SanitizePageRequest(req, recipeSortFields...)
	recipes, count, err := s.recipeRepository.GetFavoriteRecipes(ctx, userID, req)
	if err != nil {
		return nil, err
	}
	return s.convertToList(recipes, req, count), nil
}

// applyRequest is full-replace, not a partial merge.
func (s *recipeService) applyRequest(ctx context.Context, recipe *entities.Recipe, req domain.RecipeRequest) error {
	recipe.Title = req.Title
	recipe.Description = req.Description
	recipe.Instructions = req.Instructions
	recipe.ImageURL = req.ImageURL
	recipe.PrepTimeMinutes = req.PrepTimeMinutes
	recipe.CookTimeMinutes = req.CookTimeMinutes
	recipe.Servings = req.Servings
	recipe.Difficulty = req.Difficulty
	recipe.Calories = req.Calories
	recipe.Protein = req.Protein
	recipe.Carbohydrates = req.Carbohydrates
	recipe.Fat = req.Fat
	recipe.Fiber = req.Fiber
	recipe.Published = req.Published

	if req.CategoryID == "" {
		recipe.CategoryID = nil
		recipe.Category = nil
		return nil
	}

	cat, err := s.categoryRepository.GetCategoryByID(ctx, req.CategoryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrCategoryNotFound
		}
		return err
	}

	recipe.CategoryID = &cat.ID
	recipe.Category = cat
	return nil
}

// resolveIngredients maps request entries to join rows. An entry referencing
// an id must exist; an entry with only a name is created on first use; an
// entry with neither is skipped while keeping its list position as the
// display order.
func (s *recipeService) resolveIngredients(ctx context.Context, recipeID uuid.UUID, items []domain.IngredientItem) ([]*entities.RecipeIngredient, error) {
	rows := make([]*entities.RecipeIngredient, 0, len(items))

	for i, item := range items {
		var resolved *entities.Ingredient

		switch {
		case item.IngredientID != "":
			ing, err := s.ingredientRepository.GetIngredientByID(ctx, item.IngredientID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return nil, domain.ErrIngredientNotFound
				}
				return nil, err
			}
			resolved = ing
		case item.IngredientName != "":
			ing, err := s.ingredientRepository.GetIngredientByName(ctx, item.IngredientName)
			if err != nil {
				if !errors.Is(err, gorm.ErrRecordNotFound) {
					return nil, err
				}
				ing = &entities.Ingredient{
					ID:   uuid.New(),
					Name: item.IngredientName,
				}
				if err := s.ingredientRepository.CreateIngredient(ctx, ing); err != nil {
					return nil, err
				}
			}
			resolved = ing
		default:
			continue
		}

		rows = append(rows, &entities.RecipeIngredient{
			ID:           uuid.New(),
			RecipeID:     recipeID,
			IngredientID: resolved.ID,
			Quantity:     item.Quantity,
			Unit:         item.Unit,
			Notes:        item.Notes,
			DisplayOrder: i,
		})
	}

	return rows, nil
}

func (s *recipeService) convertToList(recipes []*entities.Recipe, req domain.PageRequest, count int64) *domain.RecipeListResponse {
	result := make([]domain.RecipeResponse, 0, len(recipes))
	for _, r := range recipes {
		result = append(result, *s.buildResponse(r, nil))
	}
	return &domain.RecipeListResponse{
		Recipes: result,
		Meta:    utils.NewPageMeta(req, count),
	}
}

func (s *recipeService) convertToResponse(ctx context.Context, recipe *entities.Recipe, withIngredients bool) (*domain.RecipeResponse, error) {
	var rows []*entities.RecipeIngredient
	if withIngredients {
		var err error
		rows, err = s.recipeRepository.GetRecipeIngredients(ctx, recipe.ID.String())
		if err != nil {
			return nil, err
		}
	}
	return s.buildResponse(recipe, rows), nil
}

func (s *recipeService) buildResponse(recipe *entities.Recipe, rows []*entities.RecipeIngredient) *domain.RecipeResponse {
	res := &domain.RecipeResponse{
		ID:              recipe.ID.String(),
		Title:           recipe.Title,
		Description:     recipe.Description,
		Instructions:    recipe.Instructions,
		ImageURL:        recipe.ImageURL,
		PrepTimeMinutes: recipe.PrepTimeMinutes,
		CookTimeMinutes: recipe.CookTimeMinutes,
		TotalTime:       recipe.TotalTime(),
		Servings:        recipe.Servings,
		Difficulty:      recipe.Difficulty,
		Calories:        recipe.Calories,
		Protein:         recipe.Protein,
		Carbohydrates:   recipe.Carbohydrates,
		Fat:             recipe.Fat,
		Fiber:           recipe.Fiber,
		AverageRating:   recipe.AverageRating,
		ReviewCount:     recipe.ReviewCount,
		ViewCount:       recipe.ViewCount,
		Published:       recipe.Published,
		AuthorID:        recipe.UserID.String(),
		CreatedAt:       recipe.CreatedAt,
		UpdatedAt:       recipe.UpdatedAt,
	}

	if recipe.User != nil {
		res.AuthorUsername = recipe.User.Username
	}
	if recipe.Category != nil {
		res.CategoryID = recipe.Category.ID.String()
		res.CategoryName = recipe.Category.Name
	}

	for _, row := range rows {
		item := domain.IngredientItem{
			IngredientID: row.IngredientID.String(),
			Quantity:     row.Quantity,
			Unit:         row.Unit,
			Notes:        row.Notes,
			DisplayOrder: row.DisplayOrder,
		}
		if row.Ingredient != nil {
			item.IngredientName = row.Ingredient.Name
		}
		res.Ingredients = append(res.Ingredients, item)
	}

	return res
}
