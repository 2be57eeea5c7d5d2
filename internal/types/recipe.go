package types

// RawRecipe is one corpus record as delivered by a dataset source,
// matching the train.json layout used by the What's Cooking dataset:
// {"id": 10259, "cuisine": "greek", "ingredients": ["romaine lettuce", ...]}.
type RawRecipe struct {
	ID          int      `json:"id"`
	Cuisine     string   `json:"cuisine"`
	Ingredients []string `json:"ingredients"`
}
