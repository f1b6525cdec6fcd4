package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dishcovery/backend/internal/models"
)

var (
	ErrAlreadyBookmarked = errors.New("recipe already bookmarked")
	ErrBookmarkNotFound  = errors.New("bookmark not found")
	ErrInvalidWeekday    = errors.New("invalid weekday")
	ErrMissingRecipeID   = errors.New("recipe id is required")
)

// ProfileService manages a user's bookmarks and weekly meal plan.
type ProfileService struct {
	db *gorm.DB
}

// Ensure ProfileService implements IProfileService
var _ IProfileService = (*ProfileService)(nil)

// NewProfileService creates a new ProfileService instance
func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{db: db}
}

func (s *ProfileService) getUser(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("fetching user: %w", err)
	}
	return &user, nil
}

// ListBookmarks returns the user's saved recipe snapshots.
func (s *ProfileService) ListBookmarks(ctx context.Context, username string) ([]models.RecipeSnapshot, error) {
	user, err := s.getUser(ctx, username)
	if err != nil {
		return nil, err
	}

	var bookmarks []models.Bookmark
	if err := s.db.WithContext(ctx).Where("user_id = ?", user.ID).Find(&bookmarks).Error; err != nil {
		return nil, fmt.Errorf("listing bookmarks: %w", err)
	}

	snapshots := make([]models.RecipeSnapshot, len(bookmarks))
	for i := range bookmarks {
		snapshots[i] = bookmarks[i].Snapshot
	}
	return snapshots, nil
}

// AddBookmark saves a point-in-time copy of the recipe to the user's profile.
// At most one bookmark per recipe id per user.
func (s *ProfileService) AddBookmark(ctx context.Context, username string, snapshot models.RecipeSnapshot) error {
	if snapshot.ID == uuid.Nil {
		return ErrMissingRecipeID
	}

	user, err := s.getUser(ctx, username)
	if err != nil {
		return err
	}

	var existing models.Bookmark
	err = s.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", user.ID, snapshot.ID).
		First(&existing).Error
	if err == nil {
		return ErrAlreadyBookmarked
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("checking bookmark: %w", err)
	}

	bookmark := models.Bookmark{
		UserID:   user.ID,
		RecipeID: snapshot.ID,
		Snapshot: snapshot,
	}
	if err := s.db.WithContext(ctx).Create(&bookmark).Error; err != nil {
		return fmt.Errorf("creating bookmark: %w", err)
	}
	return nil
}

// RemoveBookmark deletes the bookmark for the given recipe id.
func (s *ProfileService) RemoveBookmark(ctx context.Context, username string, recipeID uuid.UUID) error {
	user, err := s.getUser(ctx, username)
	if err != nil {
		return err
	}

	result := s.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", user.ID, recipeID).
		Delete(&models.Bookmark{})
	if result.Error != nil {
		return fmt.Errorf("removing bookmark: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrBookmarkNotFound
	}
	return nil
}

// SetMealPlanSlot overwrites the single slot for the given weekday. A nil
// recipe id is rejected; an empty string clears the slot.
func (s *ProfileService) SetMealPlanSlot(ctx context.Context, username, weekday string, recipeID *string) error {
	weekday = strings.ToLower(weekday)
	if !models.IsWeekday(weekday) {
		return ErrInvalidWeekday
	}
	if recipeID == nil {
		return ErrMissingRecipeID
	}

	user, err := s.getUser(ctx, username)
	if err != nil {
		return err
	}

	// Path update on the plan document, so concurrent writes to different
	// weekdays never overwrite each other. The weekday is validated against
	// the fixed set above before it reaches a path expression.
	var value interface{}
	if s.db.Dialector.Name() == "postgres" {
		if *recipeID == "" {
			value = gorm.Expr("meal_plan - ?::text", weekday)
		} else {
			value = gorm.Expr("jsonb_set(meal_plan, ?::text[], to_jsonb(?::text))", "{"+weekday+"}", *recipeID)
		}
	} else {
		if *recipeID == "" {
			value = gorm.Expr("json_remove(meal_plan, ?)", "$."+weekday)
		} else {
			value = gorm.Expr("json_set(meal_plan, ?, ?)", "$."+weekday, *recipeID)
		}
	}

	err = s.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", user.ID).
		Update("meal_plan", value).Error
	if err != nil {
		return fmt.Errorf("updating meal plan: %w", err)
	}
	return nil
}

// GetMealPlan resolves the user's plan against the recipe store. The result
// always holds exactly the 7 weekday keys; a dangling recipe id is nil.
func (s *ProfileService) GetMealPlan(ctx context.Context, username string) (map[string]*models.Recipe, error) {
	user, err := s.getUser(ctx, username)
	if err != nil {
		return nil, err
	}

	plan := make(map[string]*models.Recipe, len(models.Weekdays))
	for _, day := range models.Weekdays {
		plan[day] = nil

		idStr, ok := user.MealPlan[day]
		if !ok || idStr == "" {
			continue
		}
		id, err := uuid.Parse(idStr)
		if err != nil {
			continue
		}

		var recipe models.Recipe
		if err := s.db.WithContext(ctx).First(&recipe, "id = ?", id).Error; err != nil {
			// Recipe removed since it was planned; the slot resolves to nil.
			continue
		}
		plan[day] = &recipe
	}
	return plan, nil
}
