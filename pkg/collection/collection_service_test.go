package collection

import (
	"context"
	"testing"

	"Recipe-Share-Backend/domain"
	"Recipe-Share-Backend/entities"
	"Recipe-Share-Backend/pkg/recipe"

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
		&entities.Recipe{},
		&entities.Collection{},
		&entities.CollectionRecipe{},
	))
	return db
}

func newTestService(t *testing.T) (CollectionService, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)
	return NewCollectionService(
		NewCollectionRepository(db),
		recipe.NewRecipeRepository(db),
	), db
}

func seedRecipe(t *testing.T, db *gorm.DB) *entities.Recipe {
	t.Helper()
	r := &entities.Recipe{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		Title:     "Pasta",
		Published: true,
	}
	require.NoError(t, db.Create(r).Error)
	return r
}

func TestCollectionVisibility(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	owner := uuid.NewString()
	stranger := uuid.NewString()

	private, err := svc.CreateCollection(ctx, domain.CollectionRequest{Name: "Secret stash"}, owner)
	require.NoError(t, err)

	public, err := svc.CreateCollection(ctx, domain.CollectionRequest{Name: "Weeknight dinners", IsPublic: true}, owner)
	require.NoError(t, err)

	// The owner sees both, a stranger only the public one.
	_, err = svc.GetCollection(ctx, private.ID, owner)
	require.NoError(t, err)

	_, err = svc.GetCollection(ctx, private.ID, stranger)
	assert.ErrorIs(t, err, domain.ErrUserNotAllowed)

	_, err = svc.GetCollection(ctx, public.ID, stranger)
	require.NoError(t, err)

	mine, _, err := svc.GetMyCollections(ctx, owner, domain.PageRequest{})
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	visible, _, err := svc.GetUserPublicCollections(ctx, owner, domain.PageRequest{})
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, "Weeknight dinners", visible[0].Name)
}

func TestCollectionMembershipIdempotent(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	owner := uuid.NewString()
	r := seedRecipe(t, db)

	created, err := svc.CreateCollection(ctx, domain.CollectionRequest{Name: "Favorites"}, owner)
	require.NoError(t, err)

	require.NoError(t, svc.AddRecipe(ctx, created.ID, r.ID.String(), owner))
	require.NoError(t, svc.AddRecipe(ctx, created.ID, r.ID.String(), owner))

	res, err := svc.GetCollection(ctx, created.ID, owner)
	require.NoError(t, err)
	assert.Equal(t, 1, res.RecipeCount)

	require.NoError(t, svc.RemoveRecipe(ctx, created.ID, r.ID.String(), owner))
	require.NoError(t, svc.RemoveRecipe(ctx, created.ID, r.ID.String(), owner))

	res, err = svc.GetCollection(ctx, created.ID, owner)
	require.NoError(t, err)
	assert.Equal(t, 0, res.RecipeCount)
}

func TestCollectionOwnershipGates(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	owner := uuid.NewString()
	stranger := uuid.NewString()
	r := seedRecipe(t, db)

	created, err := svc.CreateCollection(ctx, domain.CollectionRequest{Name: "Favorites", IsPublic: true}, owner)
	require.NoError(t, err)

	_, err = svc.UpdateCollection(ctx, created.ID, domain.CollectionRequest{Name: "Hijacked"}, stranger)
	assert.ErrorIs(t, err, domain.ErrUserNotAllowed)

	err = svc.AddRecipe(ctx, created.ID, r.ID.String(), stranger)
	assert.ErrorIs(t, err, domain.ErrUserNotAllowed)

	err = svc.DeleteCollection(ctx, created.ID, stranger)
	assert.ErrorIs(t, err, domain.ErrUserNotAllowed)
}

func TestAddMissingRecipe(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	owner := uuid.NewString()
	created, err := svc.CreateCollection(ctx, domain.CollectionRequest{Name: "Favorites"}, owner)
	require.NoError(t, err)

	err = svc.AddRecipe(ctx, created.ID, uuid.NewString(), owner)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteCollectionRemovesMembers(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	owner := uuid.NewString()
	r := seedRecipe(t, db)

	created, err := svc.CreateCollection(ctx, domain.CollectionRequest{Name: "Favorites"}, owner)
	require.NoError(t, err)
	require.NoError(t, svc.AddRecipe(ctx, created.ID, r.ID.String(), owner))

	require.NoError(t, svc.DeleteCollection(ctx, created.ID, owner))

	var count int64
	require.NoError(t, db.Model(&entities.CollectionRecipe{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)

	_, err = svc.GetCollection(ctx, created.ID, owner)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
