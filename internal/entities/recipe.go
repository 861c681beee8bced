package entities

import "time"

// Recipe represents a recipe row together with its linked tags and ingredients
type Recipe struct {
	ID          int64        `json:"id"`
	UserID      int64        `json:"user_id"`
	Title       string       `json:"title"`
	TimeMinutes int          `json:"time_minutes"`
	Price       float64      `json:"price"`
	Link        string       `json:"link"`
	Image       *string      `json:"image,omitempty"` // Storage path, nil when no image was uploaded
	Tags        []Tag        `json:"tags"`
	Ingredients []Ingredient `json:"ingredients"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// TagIDs returns the identifiers of the linked tags in order.
func (r *Recipe) TagIDs() []int64 {
	return labelIDs(r.Tags)
}

// IngredientIDs returns the identifiers of the linked ingredients in order.
func (r *Recipe) IngredientIDs() []int64 {
	return labelIDs(r.Ingredients)
}

func labelIDs(labels []Label) []int64 {
	ids := make([]int64, 0, len(labels))
	for _, l := range labels {
		ids = append(ids, l.ID)
	}
	return ids
}
