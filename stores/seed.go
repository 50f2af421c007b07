package stores

import (
	"context"
	"time"

	"tastebook/models"

	"go.mongodb.org/mongo-driver/bson"
)

// SeedRecipes inserts the sample recipes on first run so a fresh
// database is not empty. Does nothing once any recipe exists.
func SeedRecipes(ctx context.Context, store *MongoRecipeStore) error {
	count, err := store.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	now := time.Now()
	samples := []interface{}{
		models.Recipe{
			Title: "Creamy Pasta Carbonara",
			Ingredients: []string{
				"400g spaghetti",
				"200g pancetta or guanciale, diced",
				"4 large eggs",
				"50g pecorino cheese, grated",
				"50g parmesan, grated",
				"Freshly ground black pepper",
				"Salt to taste",
			},
			Instructions: "1. Cook pasta in boiling salted water until al dente\n" +
				"2. Fry pancetta until crispy\n" +
				"3. Whisk eggs and cheeses together\n" +
				"4. Drain pasta, reserving some water\n" +
				"5. Quickly mix hot pasta with egg mixture\n" +
				"6. Add pancetta and mix well\n" +
				"7. Season with black pepper and salt",
			PrepTime:   15,
			CookTime:   15,
			Servings:   4,
			Difficulty: "medium",
			Tags:       []string{"pasta", "italian", "dinner"},
			Image:      "imgPasta.jpg",
			CreatedAt:  now,
			UpdatedAt:  now,
		},
		models.Recipe{
			Title: "Authentic Chicken Curry",
			Ingredients: []string{
				"1kg chicken, cut into pieces",
				"2 onions, finely chopped",
				"4 garlic cloves, minced",
				"2 tbsp ginger paste",
				"3 tomatoes, pureed",
				"2 tbsp curry powder",
				"1 tsp turmeric",
				"1 cup coconut milk",
				"Fresh coriander for garnish",
			},
			Instructions: "1. Heat oil in a pan and saute onions until golden\n" +
				"2. Add garlic and ginger, cook for 2 minutes\n" +
				"3. Add chicken pieces and brown on all sides\n" +
				"4. Stir in spices and cook for 1 minute\n" +
				"5. Add tomato puree and simmer for 10 minutes\n" +
				"6. Pour in coconut milk and cook for 15 more minutes\n" +
				"7. Garnish with fresh coriander",
			PrepTime:   20,
			CookTime:   40,
			Servings:   4,
			Difficulty: "medium",
			Tags:       []string{"chicken", "indian", "curry"},
			Image:      "imgChickenCurry.jpg",
			CreatedAt:  now,
			UpdatedAt:  now,
		},
		models.Recipe{
			Title: "Avocado Toast with Poached Egg",
			Ingredients: []string{
				"2 slices sourdough bread",
				"1 ripe avocado",
				"2 eggs",
				"1 tbsp lemon juice",
				"Red pepper flakes",
				"Salt and pepper to taste",
				"Microgreens for garnish",
			},
			Instructions: "1. Toast bread until golden and crisp\n" +
				"2. Mash avocado with lemon juice, salt and pepper\n" +
				"3. Poach eggs in simmering water for 3-4 minutes\n" +
				"4. Spread avocado mixture on toast\n" +
				"5. Top with poached eggs\n" +
				"6. Sprinkle with red pepper flakes and microgreens",
			PrepTime:   10,
			CookTime:   10,
			Servings:   2,
			Difficulty: "easy",
			Tags:       []string{"breakfast", "healthy", "vegetarian"},
			Image:      "imgAvacadoegg.jpg",
			CreatedAt:  now,
			UpdatedAt:  now,
		},
	}

	_, err = store.coll.InsertMany(ctx, samples)
	return err
}
