package models_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dishcovery/backend/internal/models"
)

func TestIsWeekday(t *testing.T) {
	for _, day := range models.Weekdays {
		assert.True(t, models.IsWeekday(day))
	}
	assert.True(t, models.IsWeekday("Monday"))
	assert.True(t, models.IsWeekday("SUNDAY"))
	assert.False(t, models.IsWeekday("someday"))
	assert.False(t, models.IsWeekday(""))
}

func TestMealPlanScan(t *testing.T) {
	var plan models.MealPlan

	require.NoError(t, plan.Scan(nil))
	assert.Empty(t, plan)

	id := uuid.NewString()
	require.NoError(t, plan.Scan(`{"monday":"`+id+`"}`))
	assert.Equal(t, id, plan["monday"])
}

func TestRecipeSnapshotRoundTrip(t *testing.T) {
	original := models.RecipeSnapshot{
		ID:          uuid.New(),
		Name:        "Dal",
		Cuisine:     "Indian",
		Ingredients: models.JSONBStringArray{"lentils", "salt"},
	}

	value, err := original.Value()
	require.NoError(t, err)

	var restored models.RecipeSnapshot
	require.NoError(t, restored.Scan(value))
	assert.Equal(t, original.ID, restored.ID)
	assert.Equal(t, original.Name, restored.Name)
	assert.Equal(t, original.Ingredients, restored.Ingredients)
}
