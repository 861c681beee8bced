package filters

import (
	"fmt"
	"strconv"
	"strings"

	"recipe-be/internal/validation"
)

// RecipeFilter narrows a recipe listing. A nil slice means "no filter";
// within one slice the IDs are OR-ed, and the two slices are AND-ed.
type RecipeFilter struct {
	TagIDs        []int64
	IngredientIDs []int64
}

// IsEmpty reports whether the filter leaves the listing untouched.
func (f RecipeFilter) IsEmpty() bool {
	return f.TagIDs == nil && f.IngredientIDs == nil
}

// ParseIDList splits a comma separated list of integer identifiers.
// An empty string yields nil. Surrounding whitespace is tolerated.
func ParseIDList(raw string) ([]int64, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	ids := make([]int64, 0, len(parts))
	for _, p := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid identifier %q", p)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// ParseRecipeFilter builds a filter from the raw `tags` and `ingredients`
// query values. Malformed tokens are reported as field errors.
func ParseRecipeFilter(tags, ingredients string) (RecipeFilter, error) {
	var f RecipeFilter
	errs := validation.Errors{}

	ids, err := ParseIDList(tags)
	if err != nil {
		errs.Add("tags", err.Error())
	}
	f.TagIDs = ids

	ids, err = ParseIDList(ingredients)
	if err != nil {
		errs.Add("ingredients", err.Error())
	}
	f.IngredientIDs = ids

	if err := errs.OrNil(); err != nil {
		return RecipeFilter{}, err
	}
	return f, nil
}
