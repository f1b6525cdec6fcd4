package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/dishcovery/backend/internal/models"
	"github.com/dishcovery/backend/internal/service"
	"github.com/dishcovery/backend/internal/testhelpers"
)

func seedUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := &models.User{
		Username:     username,
		PasswordHash: "x",
		MealPlan:     models.MealPlan{},
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func snapshotOf(recipe *models.Recipe) models.RecipeSnapshot {
	return models.RecipeSnapshot(*recipe)
}

func TestBookmarks(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewProfileService(db)
	ctx := context.Background()

	seedUser(t, db, "alice")
	recipe := seedRecipe(t, db, &models.Recipe{Name: "Dal", Cuisine: "Indian"})

	bookmarks, err := svc.ListBookmarks(ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, bookmarks)

	require.NoError(t, svc.AddBookmark(ctx, "alice", snapshotOf(recipe)))

	bookmarks, err = svc.ListBookmarks(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, bookmarks, 1)
	assert.Equal(t, recipe.ID, bookmarks[0].ID)
	assert.Equal(t, "Dal", bookmarks[0].Name)
}

func TestAddBookmark_Duplicate(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewProfileService(db)
	ctx := context.Background()

	seedUser(t, db, "alice")
	recipe := seedRecipe(t, db, &models.Recipe{Name: "Dal", Cuisine: "Indian"})

	require.NoError(t, svc.AddBookmark(ctx, "alice", snapshotOf(recipe)))
	err := svc.AddBookmark(ctx, "alice", snapshotOf(recipe))
	assert.ErrorIs(t, err, service.ErrAlreadyBookmarked)

	bookmarks, err := svc.ListBookmarks(ctx, "alice")
	require.NoError(t, err)
	assert.Len(t, bookmarks, 1)
}

func TestAddBookmark_MissingID(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewProfileService(db)

	seedUser(t, db, "alice")

	err := svc.AddBookmark(context.Background(), "alice", models.RecipeSnapshot{Name: "No ID"})
	assert.ErrorIs(t, err, service.ErrMissingRecipeID)
}

func TestRemoveBookmark(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewProfileService(db)
	ctx := context.Background()

	seedUser(t, db, "alice")
	recipe := seedRecipe(t, db, &models.Recipe{Name: "Dal", Cuisine: "Indian"})

	require.NoError(t, svc.AddBookmark(ctx, "alice", snapshotOf(recipe)))
	require.NoError(t, svc.RemoveBookmark(ctx, "alice", recipe.ID))

	err := svc.RemoveBookmark(ctx, "alice", recipe.ID)
	assert.ErrorIs(t, err, service.ErrBookmarkNotFound)

	bookmarks, err := svc.ListBookmarks(ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, bookmarks)
}

func TestBookmarks_UserNotFound(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewProfileService(db)
	ctx := context.Background()

	_, err := svc.ListBookmarks(ctx, "nobody")
	assert.ErrorIs(t, err, service.ErrUserNotFound)

	err = svc.AddBookmark(ctx, "nobody", models.RecipeSnapshot{ID: uuid.New()})
	assert.ErrorIs(t, err, service.ErrUserNotFound)

	err = svc.RemoveBookmark(ctx, "nobody", uuid.New())
	assert.ErrorIs(t, err, service.ErrUserNotFound)
}

func TestSetMealPlanSlot(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewProfileService(db)
	ctx := context.Background()

	seedUser(t, db, "alice")
	recipe := seedRecipe(t, db, &models.Recipe{Name: "Dal", Cuisine: "Indian"})

	id := recipe.ID.String()
	require.NoError(t, svc.SetMealPlanSlot(ctx, "alice", "Monday", &id))

	plan, err := svc.GetMealPlan(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, plan, len(models.Weekdays))
	require.NotNil(t, plan["monday"])
	assert.Equal(t, recipe.ID, plan["monday"].ID)
	assert.Nil(t, plan["tuesday"])
}

func TestSetMealPlanSlot_InvalidWeekday(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewProfileService(db)

	seedUser(t, db, "alice")

	id := uuid.New().String()
	err := svc.SetMealPlanSlot(context.Background(), "alice", "someday", &id)
	assert.ErrorIs(t, err, service.ErrInvalidWeekday)
}

func TestSetMealPlanSlot_NilRecipeID(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewProfileService(db)

	seedUser(t, db, "alice")

	err := svc.SetMealPlanSlot(context.Background(), "alice", "monday", nil)
	assert.ErrorIs(t, err, service.ErrMissingRecipeID)
}

func TestSetMealPlanSlot_ClearSlot(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewProfileService(db)
	ctx := context.Background()

	seedUser(t, db, "alice")
	recipe := seedRecipe(t, db, &models.Recipe{Name: "Dal", Cuisine: "Indian"})

	id := recipe.ID.String()
	require.NoError(t, svc.SetMealPlanSlot(ctx, "alice", "friday", &id))

	empty := ""
	require.NoError(t, svc.SetMealPlanSlot(ctx, "alice", "friday", &empty))

	plan, err := svc.GetMealPlan(ctx, "alice")
	require.NoError(t, err)
	assert.Nil(t, plan["friday"])
}

func TestSetMealPlanSlot_IndependentSlots(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewProfileService(db)
	ctx := context.Background()

	seedUser(t, db, "alice")
	dal := seedRecipe(t, db, &models.Recipe{Name: "Dal", Cuisine: "Indian"})
	soup := seedRecipe(t, db, &models.Recipe{Name: "Soup", Cuisine: "Continental"})

	dalID := dal.ID.String()
	soupID := soup.ID.String()
	require.NoError(t, svc.SetMealPlanSlot(ctx, "alice", "monday", &dalID))
	require.NoError(t, svc.SetMealPlanSlot(ctx, "alice", "tuesday", &soupID))

	plan, err := svc.GetMealPlan(ctx, "alice")
	require.NoError(t, err)
	require.NotNil(t, plan["monday"])
	require.NotNil(t, plan["tuesday"])
	assert.Equal(t, dal.ID, plan["monday"].ID)
	assert.Equal(t, soup.ID, plan["tuesday"].ID)

	// Clearing one slot leaves the other untouched.
	empty := ""
	require.NoError(t, svc.SetMealPlanSlot(ctx, "alice", "monday", &empty))

	plan, err = svc.GetMealPlan(ctx, "alice")
	require.NoError(t, err)
	assert.Nil(t, plan["monday"])
	require.NotNil(t, plan["tuesday"])
	assert.Equal(t, soup.ID, plan["tuesday"].ID)
}

func TestGetMealPlan_DanglingRecipe(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewProfileService(db)
	ctx := context.Background()

	seedUser(t, db, "alice")

	// Points at a recipe that was never stored.
	id := uuid.New().String()
	require.NoError(t, svc.SetMealPlanSlot(ctx, "alice", "sunday", &id))

	plan, err := svc.GetMealPlan(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, plan, len(models.Weekdays))
	assert.Nil(t, plan["sunday"])
}

func TestGetMealPlan_AlwaysSevenSlots(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	svc := service.NewProfileService(db)

	seedUser(t, db, "alice")

	plan, err := svc.GetMealPlan(context.Background(), "alice")
	require.NoError(t, err)
	require.Len(t, plan, 7)
	for _, day := range models.Weekdays {
		slot, ok := plan[day]
		assert.True(t, ok)
		assert.Nil(t, slot)
	}
}
