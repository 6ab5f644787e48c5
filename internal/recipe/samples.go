package recipe

import "github.com/hammamikhairi/recipebook/internal/domain"

// Samples returns the built-in demo recipes. Each call builds fresh
// values, so callers may mutate them freely.
func Samples() []*domain.Recipe {
	return []*domain.Recipe{
		vegetableStirFry(),
		chickenAlfredo(),
	}
}

func chickenAlfredo() *domain.Recipe {
	r := domain.NewRecipe("Chicken Alfredo")
	for _, ing := range []domain.Ingredient{
		{Name: "spaghetti", Quantity: 250, Unit: "grams", CaloriesPerUnit: 1.58, FoodGroup: "Grains"},
		{Name: "chicken breast", Quantity: 2, Unit: "pieces", CaloriesPerUnit: 165, FoodGroup: "Protein"},
		{Name: "creme fraiche", Quantity: 1, Unit: "cup", CaloriesPerUnit: 780, FoodGroup: "Dairy"},
		{Name: "gruyere cheese", Quantity: 1, Unit: "cup", CaloriesPerUnit: 440, FoodGroup: "Dairy"},
		{Name: "garlic", Quantity: 4, Unit: "cloves", CaloriesPerUnit: 4.5, FoodGroup: "Vegetables"},
		{Name: "olive oil", Quantity: 1, Unit: "tablespoon", CaloriesPerUnit: 119, FoodGroup: "Fats and oils"},
	} {
		r.AddIngredient(ing)
	}
	r.AddStep("Bring a large pot of salted water to a boil for the pasta.")
	r.AddStep("Season the chicken with salt and pepper and sear in olive oil for about 6 minutes per side. Set aside to rest.")
	r.AddStep("Cook the spaghetti until al dente. Reserve a cup of pasta water before draining.")
	r.AddStep("Soften the garlic in the same skillet, stir in the creme fraiche and let it reduce for 3 minutes.")
	r.AddStep("Off the heat, melt in the gruyere. Loosen with pasta water if needed.")
	r.AddStep("Toss the pasta through the sauce and top with sliced chicken.")
	return r
}

func vegetableStirFry() *domain.Recipe {
	r := domain.NewRecipe("Vegetable Stir Fry")
	for _, ing := range []domain.Ingredient{
		{Name: "bell pepper", Quantity: 1, Unit: "pieces", CaloriesPerUnit: 37, FoodGroup: "Vegetables"},
		{Name: "broccoli florets", Quantity: 2, Unit: "cups", CaloriesPerUnit: 31, FoodGroup: "Vegetables"},
		{Name: "carrot", Quantity: 1, Unit: "pieces", CaloriesPerUnit: 25, FoodGroup: "Vegetables"},
		{Name: "soy sauce", Quantity: 2, Unit: "tablespoons", CaloriesPerUnit: 9, FoodGroup: "Condiments"},
		{Name: "vegetable oil", Quantity: 1, Unit: "tablespoon", CaloriesPerUnit: 120, FoodGroup: "Fats and oils"},
	} {
		r.AddIngredient(ing)
	}
	r.AddStep("Prep all vegetables before the pan goes on.")
	r.AddStep("Heat the oil in a wok on high until it just starts to smoke.")
	r.AddStep("Stir-fry broccoli and carrot for 2 minutes, then the pepper for 2 more.")
	r.AddStep("Add the soy sauce, toss to coat and serve immediately.")
	return r
}
