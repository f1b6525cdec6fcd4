package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Diet types accepted on a recipe.
const (
	DietNoRestrictions = "NoRestrictions"
	DietVegetarian     = "Vegetarian"
	DietVegan          = "Vegan"
	DietPescatarian    = "Pescatarian"
)

// JSONBStringArray is a custom type for handling string arrays in JSONB
type JSONBStringArray []string

// Value implements the driver.Valuer interface
func (a JSONBStringArray) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	return json.Marshal(a)
}

// Scan implements the sql.Scanner interface
func (a *JSONBStringArray) Scan(value interface{}) error {
	if value == nil {
		*a = JSONBStringArray{}
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

	return json.Unmarshal(bytes, a)
}

// Restaurant pairs a restaurant name with its location.
type Restaurant struct {
	Name     string `json:"name"`
	Location string `json:"location"`
}

// RestaurantList stores restaurant/location pairs as a JSONB array.
type RestaurantList []Restaurant

// Value implements the driver.Valuer interface
func (l RestaurantList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	return json.Marshal(l)
}

// Scan implements the sql.Scanner interface
func (l *RestaurantList) Scan(value interface{}) error {
	if value == nil {
		*l = RestaurantList{}
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

	return json.Unmarshal(bytes, l)
}

// Recipe is the canonical recipe document. Rating is the arithmetic mean of
// every rating submitted so far; TimesRated is at least 1 once created.
type Recipe struct {
	ID                 uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	CreatedAt          time.Time        `json:"created_at"`
	UpdatedAt          time.Time        `json:"updated_at"`
	DeletedAt          gorm.DeletedAt   `gorm:"index" json:"-"`
	Name               string           `gorm:"size:255;not null" json:"name"`
	CookingTimeMinutes int              `gorm:"not null;default:0" json:"cooking_time_minutes"`
	DietType           string           `gorm:"size:50" json:"diet_type"`
	Cuisine            string           `gorm:"size:100;index" json:"cuisine"`
	Rating             float64          `gorm:"type:float;not null;default:0" json:"rating"`
	TimesRated         int              `gorm:"not null;default:1" json:"times_rated"`
	Ingredients        JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"ingredients"`
	Restaurants        RestaurantList   `gorm:"type:jsonb;not null;default:'[]'" json:"restaurants"`
	Instructions       string           `gorm:"type:text" json:"instructions"`
	ImageURL           string           `gorm:"size:255" json:"image_url"`
	SourceURL          string           `gorm:"size:255" json:"source_url"`
}

func (r *Recipe) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	if r.TimesRated < 1 {
		r.TimesRated = 1
	}
	return nil
}

// RecipeSnapshot is a point-in-time copy of a recipe, stored as a JSONB
// document inside a bookmark. It does not track later edits to the recipe.
type RecipeSnapshot Recipe

// Value implements the driver.Valuer interface
func (s RecipeSnapshot) Value() (driver.Value, error) {
	return json.Marshal(s)
}

// Scan implements the sql.Scanner interface
func (s *RecipeSnapshot) Scan(value interface{}) error {
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, s)
}
