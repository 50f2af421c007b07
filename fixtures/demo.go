// Package fixtures holds the hardcoded demo recipes served when a detail
// lookup finds nothing in the store. This is a deliberate static dataset,
// not an error path.
package fixtures

import "tastebook/models"

var demoRecipes = map[string]models.Recipe{
	"1": {
		Title:        "Bruschetta",
		Ingredients:  []string{"Tomatoes", "Basil", "Olive Oil", "Bread"},
		Instructions: "Chop tomatoes and basil, mix with olive oil, serve on toasted bread.",
		PrepTime:     10,
		CookTime:     5,
		Servings:     2,
		Difficulty:   "easy",
		Tags:         []string{"starter", "italian"},
		Image:        "imageBruschita.jpg",
	},
	"2": {
		Title:        "Stuffed Mushrooms",
		Ingredients:  []string{"Mushrooms", "Cream Cheese", "Garlic"},
		Instructions: "Stuff mushrooms with cream cheese and garlic, bake until golden.",
		PrepTime:     15,
		CookTime:     20,
		Servings:     4,
		Difficulty:   "easy",
		Tags:         []string{"starter", "baked"},
		Image:        "imageStuffedMush.jpg",
	},
	"3": {
		Title:        "Caprese Salad",
		Ingredients:  []string{"Mozzarella", "Tomatoes", "Basil"},
		Instructions: "Layer tomatoes, mozzarella, and basil. Drizzle with olive oil and serve cold.",
		PrepTime:     5,
		CookTime:     0,
		Servings:     2,
		Difficulty:   "easy",
		Tags:         []string{"starter", "fresh", "italian"},
		Image:        "imgCapraseSalad.jpg",
	},
	"4": {
		Title:        "Grilled Chicken",
		Ingredients:  []string{"Chicken", "Olive Oil", "Garlic", "Spices"},
		Instructions: "Marinate chicken with spices and grill until cooked through.",
		PrepTime:     20,
		CookTime:     25,
		Servings:     3,
		Difficulty:   "medium",
		Tags:         []string{"main", "grilled"},
		Image:        "imgGrilledChick.jpg",
	},
	"5": {
		Title:        "Vegetable Stir Fry",
		Ingredients:  []string{"Mixed Vegetables", "Soy Sauce", "Garlic", "Ginger"},
		Instructions: "Quick-fry vegetables with soy sauce and serve hot.",
		PrepTime:     10,
		CookTime:     10,
		Servings:     2,
		Difficulty:   "easy",
		Tags:         []string{"main", "vegetarian"},
		Image:        "imgVegStirFry.jpg",
	},
	"6": {
		Title:        "Spaghetti Carbonara",
		Ingredients:  []string{"Spaghetti", "Eggs", "Parmesan", "Bacon"},
		Instructions: "Mix cooked spaghetti with eggs, cheese, and crispy bacon.",
		PrepTime:     15,
		CookTime:     15,
		Servings:     4,
		Difficulty:   "medium",
		Tags:         []string{"main", "pasta"},
		Image:        "imgSpageti.jpg",
	},
	"7": {
		Title:        "Chocolate Cake",
		Ingredients:  []string{"Cocoa Powder", "Flour", "Sugar", "Eggs", "Butter"},
		Instructions: "Mix ingredients, pour into pan, and bake until set.",
		PrepTime:     20,
		CookTime:     30,
		Servings:     8,
		Difficulty:   "medium",
		Tags:         []string{"dessert", "baking"},
		Image:        "imgDBC.jpg",
	},
	"8": {
		Title:        "Fruit Tart",
		Ingredients:  []string{"Pastry", "Fresh Fruits", "Custard"},
		Instructions: "Fill baked pastry with custard and top with sliced fruits.",
		PrepTime:     25,
		CookTime:     10,
		Servings:     6,
		Difficulty:   "medium",
		Tags:         []string{"dessert", "fruit"},
		Image:        "imgFruitTart.jpg",
	},
	"9": {
		Title:        "Cheesecake",
		Ingredients:  []string{"Cream Cheese", "Eggs", "Sugar", "Graham Cracker Crust"},
		Instructions: "Bake cream cheese mixture over crust and chill before serving.",
		PrepTime:     30,
		CookTime:     45,
		Servings:     8,
		Difficulty:   "medium",
		Tags:         []string{"dessert", "baking"},
		Image:        "imgCheesecake.jpg",
	},
}

// Lookup returns the demo recipe for a small string id ("1".."9").
func Lookup(id string) (models.Recipe, bool) {
	recipe, ok := demoRecipes[id]
	return recipe, ok
}

// Count reports how many demo recipes exist.
func Count() int {
	return len(demoRecipes)
}
