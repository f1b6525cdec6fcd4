package models

import (
	"database/sql/driver"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Weekdays is the fixed set of meal-plan slots, in calendar order.
var Weekdays = []string{
	"sunday",
	"monday",
	"tuesday",
	"wednesday",
	"thursday",
	"friday",
	"saturday",
}

// IsWeekday reports whether day names one of the seven meal-plan slots.
func IsWeekday(day string) bool {
	day = strings.ToLower(day)
	for _, w := range Weekdays {
		if w == day {
			return true
		}
	}
	return false
}

// MealPlan maps a weekday name to the id of the recipe planned for that day.
// Stored as a single JSONB document so a slot write is one row update.
type MealPlan map[string]string

// Value implements the driver.Valuer interface
func (p MealPlan) Value() (driver.Value, error) {
	if len(p) == 0 {
		return "{}", nil
	}
	return json.Marshal(p)
}

// Scan implements the sql.Scanner interface
func (p *MealPlan) Scan(value interface{}) error {
	if value == nil {
		*p = MealPlan{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, p)
}

type User struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
	Username     string         `gorm:"size:50;not null;uniqueIndex" json:"username"`
	PasswordHash string         `gorm:"not null" json:"-"`
	MealPlan     MealPlan       `gorm:"type:jsonb;not null;default:'{}'" json:"meal_plan"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	if u.MealPlan == nil {
		u.MealPlan = MealPlan{}
	}
	return nil
}

// Bookmark is a user-owned snapshot copy of a recipe at save time. At most
// one bookmark per recipe id per user.
type Bookmark struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_bookmarks_user_recipe" json:"user_id"`
	RecipeID  uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_bookmarks_user_recipe" json:"recipe_id"`
	Snapshot  RecipeSnapshot `gorm:"type:jsonb;not null" json:"snapshot"`
}

func (Bookmark) TableName() string {
	return "bookmarks"
}

func (b *Bookmark) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}
