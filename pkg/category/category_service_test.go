package category

import (
	"context"
	"testing"

	"Recipe-Share-Backend/domain"
	"Recipe-Share-Backend/entities"

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
		&entities.Recipe{},
	))
	return db
}

func newTestService(t *testing.T) (CategoryService, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)
	return NewCategoryService(NewCategoryRepository(db)), db
}

func TestCreateCategoryDuplicateName(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateCategory(ctx, domain.CategoryRequest{Name: "Dessert"})
	require.NoError(t, err)

	_, err = svc.CreateCategory(ctx, domain.CategoryRequest{Name: "Dessert"})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestUpdateCategory(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateCategory(ctx, domain.CategoryRequest{Name: "Dessert"})
	require.NoError(t, err)

	updated, err := svc.UpdateCategory(ctx, created.ID, domain.CategoryRequest{Name: "Desserts", Description: "Sweet things"})
	require.NoError(t, err)
	assert.Equal(t, "Desserts", updated.Name)
	assert.Equal(t, "Sweet things", updated.Description)
}

func TestDeleteCategoryDetachesRecipes(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateCategory(ctx, domain.CategoryRequest{Name: "Dessert"})
	require.NoError(t, err)
	catID := uuid.MustParse(created.ID)

	r := &entities.Recipe{
		ID:         uuid.New(),
		UserID:     uuid.New(),
		CategoryID: &catID,
		Title:      "Cake",
	}
	require.NoError(t, db.Create(r).Error)

	require.NoError(t, svc.DeleteCategory(ctx, created.ID))

	var reloaded entities.Recipe
	require.NoError(t, db.First(&reloaded, "id = ?", r.ID).Error)
	assert.Nil(t, reloaded.CategoryID)

	_, err = svc.GetCategoryByID(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetCategoryMissing(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.GetCategoryByID(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
