// internal/domain/subscriber/entity_test.go
package subscriber

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	common "elanor/internal/domain/common"
)

func TestSubscriber_Validate(t *testing.T) {
	assert.NoError(t, Subscriber{Email: "a@example.com"}.Validate())
	assert.NoError(t, Subscriber{Email: "a@example.com", Name: "A"}.Validate())

	err := Subscriber{Email: "not-an-email"}.Validate()
	require.Error(t, err)
	ve, ok := common.AsValidationError(err)
	require.True(t, ok)
	require.Len(t, ve.Violations, 1)
	assert.Equal(t, "email", ve.Violations[0].Field)

	err = Subscriber{}.Validate()
	require.Error(t, err)
}

func TestSubscriber_Normalize(t *testing.T) {
	s := Subscriber{Email: "  a@example.com ", Name: " A "}.Normalize()
	assert.Equal(t, "a@example.com", s.Email)
	assert.Equal(t, "A", s.Name)
}
