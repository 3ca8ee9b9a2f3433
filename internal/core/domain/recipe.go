package domain

import "encoding/json"

// RecipeResult is the raw payload of the external recipe search API.
// Results is kept as raw JSON and passed through to clients untouched.
type RecipeResult struct {
	Title   string          `json:"title"`
	Href    string          `json:"href"`
	Results json.RawMessage `json:"results"`
}

// RecipeSummary is the display-friendly form merged into inventory responses.
type RecipeSummary struct {
	Info    string          `json:"info"`
	Recipes json.RawMessage `json:"recipes"`
}
