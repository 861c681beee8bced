package models

import (
	"strconv"

	"recipe-be/internal/entities"
)

// Shape selects how a recipe is rendered.
type Shape int

const (
	// ShapeSummary renders related tags and ingredients as ID lists. Used for
	// listings and write responses.
	ShapeSummary Shape = iota
	// ShapeDetail nests related tags and ingredients as {id, name} objects.
	// Used for single recipe retrieval.
	ShapeDetail
)

// RecipeSummary is the list/write representation of a recipe
type RecipeSummary struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Ingredients []int64 `json:"ingredients"`
	Tags        []int64 `json:"tags"`
	TimeMinutes int     `json:"time_minutes"`
	Price       string  `json:"price"`
	Link        string  `json:"link"`
	Image       *string `json:"image"`
}

// RecipeDetail is the single-item representation of a recipe
type RecipeDetail struct {
	ID          int64           `json:"id"`
	Title       string          `json:"title"`
	Ingredients []LabelResponse `json:"ingredients"`
	Tags        []LabelResponse `json:"tags"`
	TimeMinutes int             `json:"time_minutes"`
	Price       string          `json:"price"`
	Link        string          `json:"link"`
	Image       *string         `json:"image"`
}

// FormatPrice renders a price with two decimals.
func FormatPrice(p float64) string {
	return strconv.FormatFloat(p, 'f', 2, 64)
}

// RenderRecipe maps r to the requested shape. imageURL resolves a stored
// image path to its public URL.
func RenderRecipe(r *entities.Recipe, shape Shape, imageURL func(string) string) any {
	var image *string
	if r.Image != nil && *r.Image != "" {
		u := imageURL(*r.Image)
		image = &u
	}

	if shape == ShapeDetail {
		return &RecipeDetail{
			ID:          r.ID,
			Title:       r.Title,
			Ingredients: NewLabelResponses(r.Ingredients),
			Tags:        NewLabelResponses(r.Tags),
			TimeMinutes: r.TimeMinutes,
			Price:       FormatPrice(r.Price),
			Link:        r.Link,
			Image:       image,
		}
	}

	return &RecipeSummary{
		ID:          r.ID,
		Title:       r.Title,
		Ingredients: r.IngredientIDs(),
		Tags:        r.TagIDs(),
		TimeMinutes: r.TimeMinutes,
		Price:       FormatPrice(r.Price),
		Link:        r.Link,
		Image:       image,
	}
}

// RenderRecipes renders a listing; the result is never nil.
func RenderRecipes(recipes []*entities.Recipe, shape Shape, imageURL func(string) string) []any {
	out := make([]any, 0, len(recipes))
	for _, r := range recipes {
		out = append(out, RenderRecipe(r, shape, imageURL))
	}
	return out
}
