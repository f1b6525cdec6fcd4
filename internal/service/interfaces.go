package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/dishcovery/backend/internal/models"
	"github.com/dishcovery/backend/internal/types"
)

// IAuthService defines the interface for authentication operations
type IAuthService interface {
	Register(ctx context.Context, username, password string) (*models.User, error)
	Login(ctx context.Context, username, password string) (*models.User, error)
	GenerateToken(user *models.User) (string, error)
	ValidateToken(token string) (*types.TokenClaims, error)
}

// IRecipeService defines the interface for recipe search, ingestion and rating
type IRecipeService interface {
	SearchByName(ctx context.Context, pattern string) []*models.Recipe
	SearchByFilters(ctx context.Context, ingredientTokens []string, cuisine string, page, pageSize int) ([]*models.Recipe, int64)
	Cuisines(ctx context.Context) []string
	IngredientNames(ctx context.Context) []string
	GetRecipe(ctx context.Context, id uuid.UUID) (*models.Recipe, error)
	CreateRecipe(ctx context.Context, req *types.NewRecipeRequest) (*models.Recipe, error)
	UpdateRecipe(ctx context.Context, id uuid.UUID, req *types.UpdateRecipeRequest) (bool, error)
	RateRecipe(ctx context.Context, id uuid.UUID, rating float64) (*models.Recipe, error)
}

// IProfileService defines the interface for bookmark and meal-plan operations
type IProfileService interface {
	ListBookmarks(ctx context.Context, username string) ([]models.RecipeSnapshot, error)
	AddBookmark(ctx context.Context, username string, snapshot models.RecipeSnapshot) error
	RemoveBookmark(ctx context.Context, username string, recipeID uuid.UUID) error
	SetMealPlanSlot(ctx context.Context, username, weekday string, recipeID *string) error
	GetMealPlan(ctx context.Context, username string) (map[string]*models.Recipe, error)
}

// IEmailService defines the interface for email operations
type IEmailService interface {
	SendEmail(to, subject, body string) error
	SendSearchDigest(to, cuisine string, recipes []*models.Recipe) error
}
