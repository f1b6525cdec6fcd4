package types

import "github.com/dishcovery/backend/internal/models"

type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// NewRecipeRequest carries the fields accepted at ingestion. Restaurants and
// Locations are parallel lists and must be the same length.
type NewRecipeRequest struct {
	Name               string   `json:"name"`
	CookingTimeMinutes int      `json:"cooking_time_minutes"`
	DietType           string   `json:"diet_type"`
	Cuisine            string   `json:"cuisine"`
	Rating             float64  `json:"rating"`
	Ingredients        []string `json:"ingredients"`
	Restaurants        []string `json:"restaurants"`
	Locations          []string `json:"locations"`
	Instructions       string   `json:"instructions"`
	ImageURL           string   `json:"image_url"`
	SourceURL          string   `json:"source_url"`
}

// UpdateRecipeRequest is a partial patch; nil fields are left unchanged.
type UpdateRecipeRequest struct {
	Name               *string             `json:"name"`
	CookingTimeMinutes *int                `json:"cooking_time_minutes"`
	DietType           *string             `json:"diet_type"`
	Cuisine            *string             `json:"cuisine"`
	Ingredients        *[]string           `json:"ingredients"`
	Restaurants        *[]models.Restaurant `json:"restaurants"`
	Instructions       *string             `json:"instructions"`
	ImageURL           *string             `json:"image_url"`
	SourceURL          *string             `json:"source_url"`
}

type RateRecipeRequest struct {
	Rating float64 `json:"rating"`
}

type BookmarkRequest struct {
	Recipe models.RecipeSnapshot `json:"recipe" binding:"required"`
}

// MealPlanSlotRequest sets a weekday slot. A nil RecipeID is rejected; an
// empty string clears the slot.
type MealPlanSlotRequest struct {
	RecipeID *string `json:"recipe_id"`
}

type SearchResponse struct {
	Recipes      []*models.Recipe `json:"recipes"`
	Page         int              `json:"page"`
	PageSize     int              `json:"entries_per_page"`
	TotalResults int64            `json:"total_results"`
}
