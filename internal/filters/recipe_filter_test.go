package filters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recipe-be/internal/validation"
)

func TestParseIDList(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    []int64
		wantErr bool
	}{
		{"empty", "", nil, false},
		{"blank", "   ", nil, false},
		{"single", "3", []int64{3}, false},
		{"many", "1,2,10", []int64{1, 2, 10}, false},
		{"spaces", " 4 , 5", []int64{4, 5}, false},
		{"letters", "1,a", nil, true},
		{"trailing comma", "1,", nil, true},
		{"float", "1.5", nil, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseIDList(tc.in)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseRecipeFilter(t *testing.T) {
	f, err := ParseRecipeFilter("1,2", "")
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, f.TagIDs)
	assert.Nil(t, f.IngredientIDs)
	assert.False(t, f.IsEmpty())

	f, err = ParseRecipeFilter("", "")
	require.NoError(t, err)
	assert.True(t, f.IsEmpty())
}

func TestParseRecipeFilter_Malformed(t *testing.T) {
	_, err := ParseRecipeFilter("x", "1,y")
	verr, ok := validation.As(err)
	require.True(t, ok)
	assert.Contains(t, verr, "tags")
	assert.Contains(t, verr, "ingredients")
}
