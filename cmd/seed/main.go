package main

import (
	"log"

	"github.com/dishcovery/backend/config"
	"github.com/dishcovery/backend/internal/database"
	"github.com/dishcovery/backend/internal/models"
)

var sampleRecipes = []models.Recipe{
	{
		Name:               "Masala Karela Recipe",
		CookingTimeMinutes: 45,
		DietType:           models.DietVegetarian,
		Cuisine:            "Indian",
		Rating:             4.1,
		Ingredients:        models.JSONBStringArray{"karela", "onion", "turmeric powder", "red chilli powder", "gram flour", "salt"},
		Instructions:       "Deseed the karela, slice thinly and fry with onions and spices until crisp.",
		SourceURL:          "https://www.archanaskitchen.com/masala-karela-recipe",
	},
	{
		Name:               "Tomato Soup",
		CookingTimeMinutes: 30,
		DietType:           models.DietVegan,
		Cuisine:            "Continental",
		Rating:             4.0,
		Ingredients:        models.JSONBStringArray{"tomato", "salt", "pepper", "basil", "olive oil"},
		Instructions:       "Roast the tomatoes, blend with basil and simmer with seasoning.",
	},
	{
		Name:               "Egg Curry Masala",
		CookingTimeMinutes: 40,
		DietType:           models.DietNoRestrictions,
		Cuisine:            "Indian",
		Rating:             4.4,
		Ingredients:        models.JSONBStringArray{"egg", "onion", "tomato", "garam masala", "coriander"},
		Instructions:       "Boil the eggs, prepare the onion-tomato gravy and simmer together.",
	},
	{
		Name:               "Grilled Fish Tacos",
		CookingTimeMinutes: 25,
		DietType:           models.DietPescatarian,
		Cuisine:            "Mexican",
		Rating:             4.6,
		Ingredients:        models.JSONBStringArray{"white fish", "corn tortilla", "cabbage", "lime", "crema"},
		Instructions:       "Grill the fish with lime, serve on warm tortillas with slaw.",
		Restaurants: models.RestaurantList{
			{Name: "La Costa", Location: "San Diego"},
		},
	},
}

var sampleIngredients = []string{
	"salt", "onion", "tomato", "egg", "karela", "turmeric powder",
	"red chilli powder", "gram flour", "basil", "olive oil", "garam masala",
	"coriander", "white fish", "corn tortilla", "cabbage", "lime",
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	var count int64
	if err := db.Model(&models.Recipe{}).Count(&count).Error; err != nil {
		log.Fatalf("Failed to inspect recipes: %v", err)
	}
	if count > 0 {
		log.Printf("Recipes already present (%d), skipping seed", count)
		return
	}

	for i := range sampleRecipes {
		if err := db.Create(&sampleRecipes[i]).Error; err != nil {
			log.Fatalf("Failed to seed recipe %q: %v", sampleRecipes[i].Name, err)
		}
	}

	for _, name := range sampleIngredients {
		if err := db.Create(&models.Ingredient{ItemName: name}).Error; err != nil {
			log.Fatalf("Failed to seed ingredient %q: %v", name, err)
		}
	}

	log.Printf("Seeded %d recipes and %d ingredients", len(sampleRecipes), len(sampleIngredients))
}
