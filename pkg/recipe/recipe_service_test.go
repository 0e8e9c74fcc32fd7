package recipe

import (
	"context"
	"testing"

	"Recipe-Share-Backend/domain"
	"Recipe-Share-Backend/entities"
	"Recipe-Share-Backend/pkg/category"
	"Recipe-Share-Backend/pkg/ingredient"
	"Recipe-Share-Backend/pkg/user"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entities.User{},
		&entities.Category{},
		&entities.Ingredient{},
		&entities.Recipe{},
		&entities.RecipeIngredient{},
		&entities.Review{},
		&entities.Favorite{},
		&entities.CollectionRecipe{},
	))
	return db
}

func newTestService(t *testing.T) (RecipeService, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)
	svc := NewRecipeService(
		NewRecipeRepository(db),
		user.NewUserRepository(db),
		category.NewCategoryRepository(db),
		ingredient.NewIngredientRepository(db),
	)
	return svc, db
}

func seedUser(t *testing.T, db *gorm.DB, username string) *entities.User {
	t.Helper()
	u := &entities.User{
		ID:       uuid.New(),
		Username: username,
		Email:    username + "@example.com",
		FullName: username,
		Role:     domain.RoleUser,
		Enabled:  true,
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

func seedCategory(t *testing.T, db *gorm.DB, name string) *entities.Category {
	t.Helper()
	c := &entities.Category{ID: uuid.New(), Name: name}
	require.NoError(t, db.Create(c).Error)
	return c
}

func TestCreateRecipe(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	author := seedUser(t, db, "author")

	res, err := svc.CreateRecipe(ctx, domain.RecipeRequest{
		Title:           "Pasta",
		Instructions:    "Boil and mix",
		PrepTimeMinutes: 10,
		CookTimeMinutes: 15,
		Servings:        2,
		Difficulty:      domain.DifficultyEasy,
		Published:       true,
	}, author.ID.String())
	require.NoError(t, err)

	assert.Equal(t, "Pasta", res.Title)
	assert.Equal(t, 25, res.TotalTime)
	assert.Equal(t, 0.0, res.AverageRating)
	assert.Equal(t, 0, res.ReviewCount)
	assert.Equal(t, 0, res.ViewCount)
	assert.Equal(t, author.ID.String(), res.AuthorID)
	assert.Equal(t, "author", res.AuthorUsername)
}

func TestCreateRecipeMissingAuthor(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.CreateRecipe(context.Background(), domain.RecipeRequest{
		Title:           "Pasta",
		Instructions:    "Boil",
		PrepTimeMinutes: 5,
		CookTimeMinutes: 5,
		Servings:        1,
		Difficulty:      domain.DifficultyEasy,
	}, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateRecipeIngredientResolution(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	author := seedUser(t, db, "author")
	existing := &entities.Ingredient{ID: uuid.New(), Name: "Salt"}
	require.NoError(t, db.Create(existing).Error)

	req := domain.RecipeRequest{
		Title:           "Soup",
		Instructions:    "Simmer",
		PrepTimeMinutes: 5,
		CookTimeMinutes: 30,
		Servings:        4,
		Difficulty:      domain.DifficultyMedium,
		Ingredients: []domain.IngredientItem{
			{IngredientID: existing.ID.String(), Quantity: 1, Unit: "tsp"},
			{IngredientName: "Onion", Quantity: 2, Unit: "pcs"},
			{Quantity: 3, Unit: "cups"}, // no id, no name: skipped
			{IngredientName: "Salt", Quantity: 0.5, Unit: "tsp"},
		},
	}

	res, err := svc.CreateRecipe(ctx, req, author.ID.String())
	require.NoError(t, err)
	require.Len(t, res.Ingredients, 3)

	// Display order keeps the request index, so the skipped entry leaves a gap.
	assert.Equal(t, 0, res.Ingredients[0].DisplayOrder)
	assert.Equal(t, "Salt", res.Ingredients[0].IngredientName)
	assert.Equal(t, 1, res.Ingredients[1].DisplayOrder)
	assert.Equal(t, "Onion", res.Ingredients[1].IngredientName)
	assert.Equal(t, 3, res.Ingredients[2].DisplayOrder)

	// "Salt" was matched by name, not created twice.
	var count int64
	require.NoError(t, db.Model(&entities.Ingredient{}).Where("name = ?", "Salt").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestCreateRecipeUnknownIngredientID(t *testing.T) {
	svc, db := newTestService(t)
	author := seedUser(t, db, "author")

	req := domain.RecipeRequest{
		Title:           "Soup",
		Instructions:    "Simmer",
		PrepTimeMinutes: 5,
		CookTimeMinutes: 30,
		Servings:        4,
		Difficulty:      domain.DifficultyMedium,
		Ingredients: []domain.IngredientItem{
			{IngredientID: uuid.NewString(), Quantity: 1, Unit: "tsp"},
		},
	}

	_, err := svc.CreateRecipe(context.Background(), req, author.ID.String())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateRecipeUnknownCategory(t *testing.T) {
	svc, db := newTestService(t)
	author := seedUser(t, db, "author")

	req := domain.RecipeRequest{
		Title:           "Pasta",
		Instructions:    "Boil",
		PrepTimeMinutes: 5,
		CookTimeMinutes: 5,
		Servings:        1,
		Difficulty:      domain.DifficultyEasy,
		CategoryID:      uuid.NewString(),
	}

	_, err := svc.CreateRecipe(context.Background(), req, author.ID.String())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateRecipeNotOwnerForbidden(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	author := seedUser(t, db, "author")
	other := seedUser(t, db, "other")

	res, err := svc.CreateRecipe(ctx, domain.RecipeRequest{
		Title:           "Pasta",
		Instructions:    "Boil",
		PrepTimeMinutes: 5,
		CookTimeMinutes: 5,
		Servings:        1,
		Difficulty:      domain.DifficultyEasy,
	}, author.ID.String())
	require.NoError(t, err)

	_, err = svc.UpdateRecipe(ctx, res.ID, domain.RecipeRequest{
		Title:           "Stolen",
		Instructions:    "Boil",
		PrepTimeMinutes: 5,
		CookTimeMinutes: 5,
		Servings:        1,
		Difficulty:      domain.DifficultyEasy,
	}, other.ID.String())
	assert.ErrorIs(t, err, domain.ErrUserNotAllowed)

	err = svc.DeleteRecipe(ctx, res.ID, other.ID.String())
	assert.ErrorIs(t, err, domain.ErrUserNotAllowed)
}

func TestUpdateRecipeClearsCategory(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	author := seedUser(t, db, "author")
	cat := seedCategory(t, db, "Dinner")

	res, err := svc.CreateRecipe(ctx, domain.RecipeRequest{
		Title:           "Pasta",
		Instructions:    "Boil",
		PrepTimeMinutes: 5,
		CookTimeMinutes: 5,
		Servings:        1,
		Difficulty:      domain.DifficultyEasy,
		CategoryID:      cat.ID.String(),
	}, author.ID.String())
	require.NoError(t, err)
	assert.Equal(t, "Dinner", res.CategoryName)

	res, err = svc.UpdateRecipe(ctx, res.ID, domain.RecipeRequest{
		Title:           "Pasta",
		Instructions:    "Boil",
		PrepTimeMinutes: 5,
		CookTimeMinutes: 5,
		Servings:        1,
		Difficulty:      domain.DifficultyEasy,
	}, author.ID.String())
	require.NoError(t, err)
	assert.Empty(t, res.CategoryID)
	assert.Empty(t, res.CategoryName)
}

func TestDeleteRecipeCascades(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	author := seedUser(t, db, "author")
	fan := seedUser(t, db, "fan")

	res, err := svc.CreateRecipe(ctx, domain.RecipeRequest{
		Title:           "Pasta",
		Instructions:    "Boil",
		PrepTimeMinutes: 5,
		CookTimeMinutes: 5,
		Servings:        1,
		Difficulty:      domain.DifficultyEasy,
		Published:       true,
		Ingredients: []domain.IngredientItem{
			{IngredientName: "Salt", Quantity: 1, Unit: "tsp"},
		},
	}, author.ID.String())
	require.NoError(t, err)

	require.NoError(t, svc.AddFavorite(ctx, res.ID, fan.ID.String()))
	require.NoError(t, svc.DeleteRecipe(ctx, res.ID, author.ID.String()))

	var rows int64
	require.NoError(t, db.Model(&entities.RecipeIngredient{}).Where("recipe_id = ?", res.ID).Count(&rows).Error)
	assert.Equal(t, int64(0), rows)
	require.NoError(t, db.Model(&entities.Favorite{}).Where("recipe_id = ?", res.ID).Count(&rows).Error)
	assert.Equal(t, int64(0), rows)

	_, err = svc.GetRecipeDetail(ctx, res.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetRecipeDetailIncrementsViewCount(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	author := seedUser(t, db, "author")

	created, err := svc.CreateRecipe(ctx, domain.RecipeRequest{
		Title:           "Pasta",
		Instructions:    "Boil",
		PrepTimeMinutes: 5,
		CookTimeMinutes: 5,
		Servings:        1,
		Difficulty:      domain.DifficultyEasy,
	}, author.ID.String())
	require.NoError(t, err)

	first, err := svc.GetRecipeDetail(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, first.ViewCount)

	second, err := svc.GetRecipeDetail(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, second.ViewCount)
}

func TestGetPublishedRecipesExcludesDrafts(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	author := seedUser(t, db, "author")

	for i, published := range []bool{true, false, true} {
		req := domain.RecipeRequest{
			Title:           "Recipe " + string(rune('A'+i)),
			Instructions:    "Cook",
			PrepTimeMinutes: 5,
			CookTimeMinutes: 5,
			Servings:        1,
			Difficulty:      domain.DifficultyEasy,
			Published:       published,
		}
		_, err := svc.CreateRecipe(ctx, req, author.ID.String())
		require.NoError(t, err)
	}

	res, err := svc.GetPublishedRecipes(ctx, domain.PageRequest{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), res.Meta.TotalItems)

	// The author listing includes drafts.
	byAuthor, err := svc.GetRecipesByAuthor(ctx, author.ID.String(), domain.PageRequest{})
	require.NoError(t, err)
	assert.Equal(t, int64(3), byAuthor.Meta.TotalItems)
}

func TestSearchRecipesMatchesTitleAndDescription(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	author := seedUser(t, db, "author")

	_, err := svc.CreateRecipe(ctx, domain.RecipeRequest{
		Title:           "Chicken Curry",
		Instructions:    "Cook",
		PrepTimeMinutes: 5,
		CookTimeMinutes: 5,
		Servings:        1,
		Difficulty:      domain.DifficultyEasy,
		Published:       true,
	}, author.ID.String())
	require.NoError(t, err)

	_, err = svc.CreateRecipe(ctx, domain.RecipeRequest{
		Title:           "Plain Rice",
		Description:     "Goes well with curry",
		Instructions:    "Boil",
		PrepTimeMinutes: 5,
		CookTimeMinutes: 5,
		Servings:        1,
		Difficulty:      domain.DifficultyEasy,
		Published:       true,
	}, author.ID.String())
	require.NoError(t, err)

	res, err := svc.SearchRecipes(ctx, "CURRY", domain.PageRequest{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), res.Meta.TotalItems)

	res, err = svc.SearchRecipes(ctx, "rice", domain.PageRequest{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.Meta.TotalItems)
}

func TestGetRecipesByDifficultyValidation(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.GetRecipesByDifficulty(context.Background(), "IMPOSSIBLE", domain.PageRequest{})
	assert.ErrorIs(t, err, domain.ErrBadRequest)
}

func TestGetRecipesByCategoryMissingCategory(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.GetRecipesByCategory(context.Background(), uuid.NewString(), domain.PageRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetTopRatedOrdering(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	author := seedUser(t, db, "author")

	seed := func(title string, rating float64, reviews int) {
		r := &entities.Recipe{
			ID:              uuid.New(),
			UserID:          author.ID,
			Title:           title,
			Instructions:    "Cook",
			PrepTimeMinutes: 5,
			CookTimeMinutes: 5,
			Servings:        1,
			Difficulty:      domain.DifficultyEasy,
			AverageRating:   rating,
			ReviewCount:     reviews,
			Published:       true,
		}
		require.NoError(t, db.Create(r).Error)
	}

	seed("Low", 3.0, 10)
	seed("HighFewReviews", 4.5, 2)
	seed("HighManyReviews", 4.5, 20)

	res, err := svc.GetTopRatedRecipes(ctx, domain.PageRequest{})
	require.NoError(t, err)
	require.Len(t, res.Recipes, 3)
	assert.Equal(t, "HighManyReviews", res.Recipes[0].Title)
	assert.Equal(t, "HighFewReviews", res.Recipes[1].Title)
	assert.Equal(t, "Low", res.Recipes[2].Title)
}

func TestPaginationClamping(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	author := seedUser(t, db, "author")
	_, err := svc.CreateRecipe(ctx, domain.RecipeRequest{
		Title:           "Pasta",
		Instructions:    "Boil",
		PrepTimeMinutes: 5,
		CookTimeMinutes: 5,
		Servings:        1,
		Difficulty:      domain.DifficultyEasy,
		Published:       true,
	}, author.ID.String())
	require.NoError(t, err)

	res, err := svc.GetPublishedRecipes(ctx, domain.PageRequest{Page: -5, Size: 500})
	require.NoError(t, err)
	assert.Equal(t, 0, res.Meta.Page)
	assert.Equal(t, 100, res.Meta.Size)
	assert.Len(t, res.Recipes, 1)
}

func TestFavoritesIdempotent(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	author := seedUser(t, db, "author")
	fan := seedUser(t, db, "fan")

	created, err := svc.CreateRecipe(ctx, domain.RecipeRequest{
		Title:           "Pasta",
		Instructions:    "Boil",
		PrepTimeMinutes: 5,
		CookTimeMinutes: 5,
		Servings:        1,
		Difficulty:      domain.DifficultyEasy,
		Published:       true,
	}, author.ID.String())
	require.NoError(t, err)

	require.NoError(t, svc.AddFavorite(ctx, created.ID, fan.ID.String()))
	require.NoError(t, svc.AddFavorite(ctx, created.ID, fan.ID.String()))

	var count int64
	require.NoError(t, db.Model(&entities.Favorite{}).Where("user_id = ?", fan.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	favorites, err := svc.GetFavoriteRecipes(ctx, fan.ID.String(), domain.PageRequest{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), favorites.Meta.TotalItems)

	require.NoError(t, svc.RemoveFavorite(ctx, created.ID, fan.ID.String()))
	require.NoError(t, svc.RemoveFavorite(ctx, created.ID, fan.ID.String()))

	favorites, err = svc.GetFavoriteRecipes(ctx, fan.ID.String(), domain.PageRequest{})
	require.NoError(t, err)
	assert.Equal(t, int64(0), favorites.Meta.TotalItems)
}

func TestAddFavoriteMissingRecipe(t *testing.T) {
	svc, db := newTestService(t)
	fan := seedUser(t, db, "fan")

	err := svc.AddFavorite(context.Background(), uuid.NewString(), fan.ID.String())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
