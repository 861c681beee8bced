package validation

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signup struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name" validate:"max=255"`
}

type recipeInput struct {
	Title       *string  `json:"title" validate:"omitempty,max=255"`
	TimeMinutes *int     `json:"time_minutes" validate:"omitempty,gte=0"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
}

func TestStruct_Valid(t *testing.T) {
	assert.NoError(t, Struct(signup{Email: "a@b.com", Password: "secret1"}))
}

func TestStruct_FieldErrorsUseJSONNames(t *testing.T) {
	err := Struct(signup{Email: "", Password: "abc"})
	require.Error(t, err)

	verr, ok := As(err)
	require.True(t, ok)
	assert.Equal(t, []string{"This field is required."}, verr["email"])
	assert.Equal(t, []string{"Ensure this field has at least 6 characters."}, verr["password"])
	assert.NotContains(t, verr, "name")
}

func TestStruct_InvalidEmail(t *testing.T) {
	verr, ok := As(Struct(signup{Email: "one", Password: "secret1"}))
	require.True(t, ok)
	assert.Equal(t, []string{"Enter a valid email address."}, verr["email"])
}

func TestStruct_NegativeNumbers(t *testing.T) {
	minutes, price := -1, -0.5
	verr, ok := As(Struct(recipeInput{TimeMinutes: &minutes, Price: &price}))
	require.True(t, ok)
	assert.Contains(t, verr, "time_minutes")
	assert.Contains(t, verr, "price")
}

func TestStruct_OmittedPointersAreSkipped(t *testing.T) {
	assert.NoError(t, Struct(recipeInput{}))
}

func TestErrors_OrNilAndWrapping(t *testing.T) {
	assert.NoError(t, Errors{}.OrNil())

	e := Errors{}
	e.Add("tags", "bad")
	e.Add(NonFieldErrors, "nope")
	err := fmt.Errorf("create recipe: %w", e.OrNil())

	got, ok := As(err)
	require.True(t, ok)
	assert.Equal(t, []string{"bad"}, got["tags"])
	assert.Equal(t, "validation failed: non_field_errors: nope, tags: bad", e.Error())

	_, ok = As(errors.New("plain"))
	assert.False(t, ok)
}

func TestVar(t *testing.T) {
	assert.NoError(t, Var("link", "https://example.com", "url"))

	verr, ok := As(Var("link", "nope", "url"))
	require.True(t, ok)
	assert.Equal(t, []string{"Enter a valid URL."}, verr["link"])
}
