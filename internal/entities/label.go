package entities

// Label is a named entity owned by a single user. Tags and ingredients share
// this shape and live in separate tables.
type Label struct {
	ID     int64  `json:"id"`
	UserID int64  `json:"user_id"`
	Name   string `json:"name"`
}

type (
	Tag        = Label
	Ingredient = Label
)
