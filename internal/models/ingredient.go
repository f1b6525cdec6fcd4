package models

// Ingredient is a reference row used to populate search suggestions. It has
// no relationship to recipes beyond free-text matching.
type Ingredient struct {
	ID       uint   `gorm:"primarykey" json:"id"`
	ItemName string `gorm:"size:100;not null;uniqueIndex" json:"item_name"`
}

func (Ingredient) TableName() string {
	return "ingredient_list"
}
