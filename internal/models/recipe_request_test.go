package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recipe-be/internal/validation"
)

func ptr[T any](v T) *T { return &v }

func TestRecipeRequest_ValidateFull(t *testing.T) {
	req := &RecipeRequest{}
	verr, ok := validation.As(req.Validate(false))
	require.True(t, ok)
	assert.Contains(t, verr, "title")
	assert.Contains(t, verr, "time_minutes")
	assert.Contains(t, verr, "price")

	req = &RecipeRequest{Title: ptr("Soup"), TimeMinutes: ptr(5), Price: ptr(2.5)}
	assert.NoError(t, req.Validate(false))
}

func TestRecipeRequest_ValidatePartial(t *testing.T) {
	assert.NoError(t, (&RecipeRequest{}).Validate(true))
	assert.NoError(t, (&RecipeRequest{Tags: &[]int64{}}).Validate(true))

	verr, ok := validation.As((&RecipeRequest{TimeMinutes: ptr(-1), Price: ptr(-2.0)}).Validate(true))
	require.True(t, ok)
	assert.Contains(t, verr, "time_minutes")
	assert.Contains(t, verr, "price")
	assert.NotContains(t, verr, "title")
}

func TestRecipeRequest_BlankTitleAndBadLink(t *testing.T) {
	req := &RecipeRequest{Title: ptr("  "), Link: ptr("not a url")}
	verr, ok := validation.As(req.Validate(true))
	require.True(t, ok)
	assert.Equal(t, []string{"This field may not be blank."}, verr["title"])
	assert.Equal(t, []string{"Enter a valid URL."}, verr["link"])
}

func TestRecipeRequest_ColumnBounds(t *testing.T) {
	req := &RecipeRequest{TimeMinutes: ptr(3_000_000_000), Price: ptr(1_000_000.0)}
	verr, ok := validation.As(req.Validate(true))
	require.True(t, ok)
	assert.Equal(t, []string{"Ensure this value is less than or equal to 2147483647."}, verr["time_minutes"])
	assert.Equal(t, []string{"Ensure this value is less than or equal to 999999.99."}, verr["price"])

	req = &RecipeRequest{TimeMinutes: ptr(2147483647), Price: ptr(999999.99)}
	assert.NoError(t, req.Validate(true))
}

func TestRecipeRequest_PriceDecimalPlaces(t *testing.T) {
	verr, ok := validation.As((&RecipeRequest{Price: ptr(1.234)}).Validate(true))
	require.True(t, ok)
	assert.Equal(t, []string{"Ensure that there are no more than 2 decimal places."}, verr["price"])

	verr, ok = validation.As((&RecipeRequest{Price: ptr(999999.999)}).Validate(true))
	require.True(t, ok)
	assert.Contains(t, verr, "price")

	for _, p := range []float64{0, 0.1, 5.5, 19.99, 0.07} {
		assert.NoError(t, (&RecipeRequest{Price: ptr(p)}).Validate(true), p)
	}
}
