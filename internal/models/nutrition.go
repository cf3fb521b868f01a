package models

// NutritionLog represents one logged meal or snack
type NutritionLog struct {
	ID        string  `json:"id" csv:"id"`
	UserID    string  `json:"user_id" csv:"user_id"`
	MealType  string  `json:"meal_type" csv:"meal_type"`
	FoodName  string  `json:"food_name" csv:"food_name"`
	Calories  float64 `json:"calories" csv:"calories"`
	Protein   float64 `json:"protein" csv:"protein"`
	Carbs     float64 `json:"carbs" csv:"carbs"`
	Fats      float64 `json:"fats" csv:"fats"`
	LoggedAt  string  `json:"logged_at" csv:"logged_at"`
	CreatedAt string  `json:"created_at" csv:"created_at"`
}

func (n NutritionLog) GetID() string { return n.ID }

// Recipe is shared by all users and has no owner.
type Recipe struct {
	ID           string  `json:"id" csv:"id"`
	Title        string  `json:"title" csv:"title"`
	Description  string  `json:"description" csv:"description"`
	Cuisine      string  `json:"cuisine" csv:"cuisine"`
	PrepTime     float64 `json:"prep_time" csv:"prep_time"` // minutes
	CookTime     float64 `json:"cook_time" csv:"cook_time"` // minutes
	Servings     float64 `json:"servings" csv:"servings"`
	Calories     float64 `json:"calories" csv:"calories"`
	Protein      float64 `json:"protein" csv:"protein"`
	Carbs        float64 `json:"carbs" csv:"carbs"`
	Fats         float64 `json:"fats" csv:"fats"`
	Ingredients  string  `json:"ingredients" csv:"ingredients"`
	Instructions string  `json:"instructions" csv:"instructions"`
	ImageURL     string  `json:"image_url" csv:"image_url"`
	CreatedAt    string  `json:"created_at" csv:"created_at"`
}

func (r Recipe) GetID() string { return r.ID }
