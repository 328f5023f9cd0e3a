// internal/domain/fragrance/entity_test.go
package fragrance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	common "elanor/internal/domain/common"
)

func validFragrance() Fragrance {
	return Fragrance{
		Name:        "Pride",
		Slug:        "pride",
		Sin:         "Pride",
		TopNotes:    []string{"bergamot"},
		HeartNotes:  []string{"orris"},
		BaseNotes:   []string{"amber"},
		Description: "desc",
		Story:       "story",
		Price:       145.0,
		InStock:     true,
	}
}

func TestFragrance_Validate_OK(t *testing.T) {
	assert.NoError(t, validFragrance().Validate())
}

func TestFragrance_Validate_ReportsAllViolations(t *testing.T) {
	f := validFragrance()
	f.Name = ""
	f.Slug = "   "
	f.Price = -1

	err := f.Validate()
	require.Error(t, err)

	ve, ok := common.AsValidationError(err)
	require.True(t, ok)

	fields := make([]string, 0, len(ve.Violations))
	for _, v := range ve.Violations {
		fields = append(fields, v.Field)
	}
	assert.ElementsMatch(t, []string{"name", "slug", "price"}, fields)
}

func TestSevenSins_CatalogShape(t *testing.T) {
	require.Len(t, SevenSins, 7)

	seen := map[string]bool{}
	for _, f := range SevenSins {
		assert.NoError(t, f.Validate(), "catalog entry %q must be valid", f.Slug)
		assert.False(t, seen[f.Slug], "duplicate slug %q", f.Slug)
		seen[f.Slug] = true
		assert.True(t, f.InStock)
		assert.Nil(t, f.Image)
	}

	assert.Equal(t,
		[]string{"pride", "greed", "lust", "envy", "gluttony", "wrath", "sloth"},
		SevenSinSlugs())
}
