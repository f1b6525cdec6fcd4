package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dishcovery/backend/internal/models"
	"github.com/dishcovery/backend/internal/types"
)

var (
	ErrMissingName        = errors.New("recipe name is required")
	ErrRecipeNotFound     = errors.New("recipe not found")
	ErrInvalidRating      = errors.New("rating must be between 0 and 5")
	ErrRestaurantMismatch = errors.New("restaurants and locations must have the same length")
)

// DefaultPageSize is used when a filter search does not specify a page size.
const DefaultPageSize = 20

// RecipeService handles recipe search, ingestion and rating aggregation.
type RecipeService struct {
	db *gorm.DB
}

// Ensure RecipeService implements IRecipeService
var _ IRecipeService = (*RecipeService)(nil)

// NewRecipeService creates a new RecipeService instance
func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{db: db}
}

// SearchByName returns recipes whose name contains every whitespace-separated
// token of pattern as a whole word, case-insensitively and in any order.
// Malformed patterns and store errors yield an empty result, never an error.
func (s *RecipeService) SearchByName(ctx context.Context, pattern string) []*models.Recipe {
	tokens := strings.Fields(pattern)
	if len(tokens) == 0 {
		return []*models.Recipe{}
	}

	// Substring prefilter in SQL, then exact word-boundary matching in Go so
	// the semantics hold identically on every dialect.
	query := s.db.WithContext(ctx)
	matchers := make([]*regexp.Regexp, 0, len(tokens))
	for _, token := range tokens {
		like := "%" + strings.ToLower(token) + "%"
		query = query.Where("LOWER(name) LIKE ?", like)

		re, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(token) + `\b`)
		if err != nil {
			return []*models.Recipe{}
		}
		matchers = append(matchers, re)
	}

	var candidates []models.Recipe
	if err := query.Find(&candidates).Error; err != nil {
		log.Printf("recipe name search failed: %v", err)
		return []*models.Recipe{}
	}

	matched := make([]*models.Recipe, 0, len(candidates))
	for i := range candidates {
		ok := true
		for _, re := range matchers {
			if !re.MatchString(candidates[i].Name) {
				ok = false
				break
			}
		}
		if ok {
			matched = append(matched, &candidates[i])
		}
	}
	return matched
}

// SearchByFilters returns the page of recipes whose ingredient text contains
// every requested token as a case-insensitive substring and whose cuisine
// matches exactly, plus the total size of the match set. An empty cuisine
// imposes no cuisine constraint; with no filters at all the result is the
// requested page of the whole collection. Store errors yield an empty page
// and a zero count.
func (s *RecipeService) SearchByFilters(ctx context.Context, ingredientTokens []string, cuisine string, page, pageSize int) ([]*models.Recipe, int64) {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if page < 0 {
		page = 0
	}

	var total int64
	if err := s.filterQuery(ctx, ingredientTokens, cuisine).Count(&total).Error; err != nil {
		log.Printf("recipe filter count failed: %v", err)
		return []*models.Recipe{}, 0
	}

	var recipes []models.Recipe
	err := s.filterQuery(ctx, ingredientTokens, cuisine).
		Offset(page * pageSize).
		Limit(pageSize).
		Find(&recipes).Error
	if err != nil {
		log.Printf("recipe filter search failed: %v", err)
		return []*models.Recipe{}, 0
	}

	result := make([]*models.Recipe, len(recipes))
	for i := range recipes {
		result[i] = &recipes[i]
	}
	return result, total
}

func (s *RecipeService) filterQuery(ctx context.Context, ingredientTokens []string, cuisine string) *gorm.DB {
	query := s.db.WithContext(ctx).Model(&models.Recipe{})
	if cuisine != "" {
		query = query.Where("cuisine = ?", cuisine)
	}
	for _, token := range ingredientTokens {
		like := "%" + strings.ToLower(token) + "%"
		if s.db.Dialector.Name() == "postgres" {
			query = query.Where("LOWER(ingredients::text) LIKE ?", like)
		} else {
			query = query.Where("LOWER(ingredients) LIKE ?", like)
		}
	}
	return query
}

// Cuisines returns all distinct cuisine values across all recipes.
func (s *RecipeService) Cuisines(ctx context.Context) []string {
	var cuisines []string
	if err := s.db.WithContext(ctx).Model(&models.Recipe{}).Distinct().Pluck("cuisine", &cuisines).Error; err != nil {
		log.Printf("unable to list cuisines: %v", err)
		return []string{}
	}
	return cuisines
}

// IngredientNames returns all distinct ingredient reference names.
func (s *RecipeService) IngredientNames(ctx context.Context) []string {
	var names []string
	if err := s.db.WithContext(ctx).Model(&models.Ingredient{}).Distinct().Pluck("item_name", &names).Error; err != nil {
		log.Printf("unable to list ingredients: %v", err)
		return []string{}
	}
	return names
}

// GetRecipe retrieves a recipe by ID
func (s *RecipeService) GetRecipe(ctx context.Context, id uuid.UUID) (*models.Recipe, error) {
	var recipe models.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, fmt.Errorf("fetching recipe: %w", err)
	}
	return &recipe, nil
}

// CreateRecipe validates and stores a new recipe. TimesRated starts at 1.
func (s *RecipeService) CreateRecipe(ctx context.Context, req *types.NewRecipeRequest) (*models.Recipe, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrMissingName
	}
	if len(req.Restaurants) != len(req.Locations) {
		return nil, ErrRestaurantMismatch
	}

	restaurants := make(models.RestaurantList, 0, len(req.Restaurants))
	for i := range req.Restaurants {
		restaurants = append(restaurants, models.Restaurant{
			Name:     req.Restaurants[i],
			Location: req.Locations[i],
		})
	}

	recipe := &models.Recipe{
		Name:               req.Name,
		CookingTimeMinutes: req.CookingTimeMinutes,
		DietType:           req.DietType,
		Cuisine:            req.Cuisine,
		Rating:             req.Rating,
		TimesRated:         1,
		Ingredients:        req.Ingredients,
		Restaurants:        restaurants,
		Instructions:       req.Instructions,
		ImageURL:           req.ImageURL,
		SourceURL:          req.SourceURL,
	}
	if err := s.db.WithContext(ctx).Create(recipe).Error; err != nil {
		return nil, fmt.Errorf("creating recipe: %w", err)
	}
	return recipe, nil
}

// UpdateRecipe applies a partial patch to an existing recipe. It reports
// whether any row was modified; a zero-field patch modifies nothing.
func (s *RecipeService) UpdateRecipe(ctx context.Context, id uuid.UUID, req *types.UpdateRecipeRequest) (bool, error) {
	if _, err := s.GetRecipe(ctx, id); err != nil {
		return false, err
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.CookingTimeMinutes != nil {
		updates["cooking_time_minutes"] = *req.CookingTimeMinutes
	}
	if req.DietType != nil {
		updates["diet_type"] = *req.DietType
	}
	if req.Cuisine != nil {
		updates["cuisine"] = *req.Cuisine
	}
	if req.Ingredients != nil {
		updates["ingredients"] = models.JSONBStringArray(*req.Ingredients)
	}
	if req.Restaurants != nil {
		updates["restaurants"] = models.RestaurantList(*req.Restaurants)
	}
	if req.Instructions != nil {
		updates["instructions"] = *req.Instructions
	}
	if req.ImageURL != nil {
		updates["image_url"] = *req.ImageURL
	}
	if req.SourceURL != nil {
		updates["source_url"] = *req.SourceURL
	}

	if len(updates) == 0 {
		return false, nil
	}

	result := s.db.WithContext(ctx).Model(&models.Recipe{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return false, fmt.Errorf("updating recipe: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

// RateRecipe folds a new rating into the recipe's running average and bumps
// the rating count, as a single row update. The rating must be within [0,5].
func (s *RecipeService) RateRecipe(ctx context.Context, id uuid.UUID, rating float64) (*models.Recipe, error) {
	if rating < 0 || rating > 5 {
		return nil, ErrInvalidRating
	}

	result := s.db.WithContext(ctx).Model(&models.Recipe{}).Where("id = ?", id).Updates(map[string]interface{}{
		"rating":      gorm.Expr("(rating * times_rated + ?) / (times_rated + 1)", rating),
		"times_rated": gorm.Expr("times_rated + 1"),
	})
	if result.Error != nil {
		return nil, fmt.Errorf("rating recipe: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrRecipeNotFound
	}

	return s.GetRecipe(ctx, id)
}
