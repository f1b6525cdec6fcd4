package api_test

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dishcovery/backend/internal/models"
	"github.com/dishcovery/backend/internal/types"
)

func TestBookmarkFlow(t *testing.T) {
	router, authService, db := setupTestRouter(t)
	token := authToken(t, authService, "alice")

	recipe := createRecipe(t, db, &models.Recipe{Name: "Dal", Cuisine: "Indian"})
	snapshot := models.RecipeSnapshot(*recipe)

	w := doJSON(t, router, http.MethodPost, "/api/v1/users/alice/bookmarks", token, types.BookmarkRequest{Recipe: snapshot})
	require.Equal(t, http.StatusOK, w.Code)

	// Duplicate bookmark is rejected
	w = doJSON(t, router, http.MethodPost, "/api/v1/users/alice/bookmarks", token, types.BookmarkRequest{Recipe: snapshot})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/v1/users/alice/bookmarks", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list struct {
		Bookmarks []models.RecipeSnapshot `json:"bookmarks"`
	}
	decodeBody(t, w, &list)
	require.Len(t, list.Bookmarks, 1)
	assert.Equal(t, recipe.ID, list.Bookmarks[0].ID)

	w = doJSON(t, router, http.MethodDelete, "/api/v1/users/alice/bookmarks/"+recipe.ID.String(), token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodDelete, "/api/v1/users/alice/bookmarks/"+recipe.ID.String(), token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBookmarks_RequireAuth(t *testing.T) {
	router, authService, db := setupTestRouter(t)
	authToken(t, authService, "alice")

	recipe := createRecipe(t, db, &models.Recipe{Name: "Dal", Cuisine: "Indian"})

	w := doJSON(t, router, http.MethodPost, "/api/v1/users/alice/bookmarks", "", types.BookmarkRequest{
		Recipe: models.RecipeSnapshot(*recipe),
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, router, http.MethodDelete, "/api/v1/users/alice/bookmarks/"+recipe.ID.String(), "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestBookmarks_UnknownUser(t *testing.T) {
	router, authService, _ := setupTestRouter(t)
	token := authToken(t, authService, "alice")

	w := doJSON(t, router, http.MethodGet, "/api/v1/users/nobody/bookmarks", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/v1/users/nobody/bookmarks", token, types.BookmarkRequest{
		Recipe: models.RecipeSnapshot{ID: uuid.New()},
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMealPlanFlow(t *testing.T) {
	router, authService, db := setupTestRouter(t)
	token := authToken(t, authService, "alice")

	recipe := createRecipe(t, db, &models.Recipe{Name: "Dal", Cuisine: "Indian"})

	id := recipe.ID.String()
	w := doJSON(t, router, http.MethodPut, "/api/v1/users/alice/mealplan/monday", token, types.MealPlanSlotRequest{RecipeID: &id})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/v1/users/alice/mealplan", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var plan map[string]*models.Recipe
	decodeBody(t, w, &plan)
	require.Len(t, plan, 7)
	require.NotNil(t, plan["monday"])
	assert.Equal(t, recipe.ID, plan["monday"].ID)
	assert.Nil(t, plan["tuesday"])

	// Clearing the slot
	empty := ""
	w = doJSON(t, router, http.MethodPut, "/api/v1/users/alice/mealplan/monday", token, types.MealPlanSlotRequest{RecipeID: &empty})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/v1/users/alice/mealplan", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &plan)
	assert.Nil(t, plan["monday"])
}

func TestMealPlan_BadRequests(t *testing.T) {
	router, authService, _ := setupTestRouter(t)
	token := authToken(t, authService, "alice")

	id := uuid.New().String()
	w := doJSON(t, router, http.MethodPut, "/api/v1/users/alice/mealplan/someday", token, types.MealPlanSlotRequest{RecipeID: &id})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodPut, "/api/v1/users/alice/mealplan/monday", token, types.MealPlanSlotRequest{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodPut, "/api/v1/users/alice/mealplan/monday", "", types.MealPlanSlotRequest{RecipeID: &id})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
