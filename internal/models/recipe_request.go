package models

import (
	"math"
	"strings"

	"recipe-be/internal/validation"
)

// RecipeRequest is the write payload for recipes. Pointer fields distinguish
// "absent" from "zero": on a partial update only present fields change, and
// a present empty tag or ingredient list clears the relation.
type RecipeRequest struct {
	Title       *string  `json:"title" validate:"omitempty,max=255"`
	TimeMinutes *int     `json:"time_minutes" validate:"omitempty,gte=0,lte=2147483647"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0,lte=999999.99"`
	Link        *string  `json:"link" validate:"omitempty,max=255"`
	Tags        *[]int64 `json:"tags"`
	Ingredients *[]int64 `json:"ingredients"`
}

// Validate checks field rules. With partial=false (create and full update)
// title, time_minutes and price are required.
func (r *RecipeRequest) Validate(partial bool) error {
	errs := validation.Errors{}
	if err := validation.Struct(r); err != nil {
		verr, ok := validation.As(err)
		if !ok {
			return err
		}
		errs = verr
	}

	if r.Title != nil && strings.TrimSpace(*r.Title) == "" {
		errs.Add("title", "This field may not be blank.")
	}

	if r.Price != nil && !hasAtMostTwoDecimals(*r.Price) {
		errs.Add("price", "Ensure that there are no more than 2 decimal places.")
	}

	if r.Link != nil && *r.Link != "" {
		if err := validation.Var("link", *r.Link, "url"); err != nil {
			verr, ok := validation.As(err)
			if !ok {
				return err
			}
			for _, msg := range verr["link"] {
				errs.Add("link", msg)
			}
		}
	}

	if !partial {
		if r.Title == nil {
			errs.Add("title", "This field is required.")
		}
		if r.TimeMinutes == nil {
			errs.Add("time_minutes", "This field is required.")
		}
		if r.Price == nil {
			errs.Add("price", "This field is required.")
		}
	}

	return errs.OrNil()
}

// price is stored as NUMERIC(8,2)
func hasAtMostTwoDecimals(p float64) bool {
	cents := p * 100
	return math.Abs(cents-math.Round(cents)) < 1e-6
}

// ImageUploadResponse is returned after a successful image upload
type ImageUploadResponse struct {
	ID    int64  `json:"id"`
	Image string `json:"image"`
}
