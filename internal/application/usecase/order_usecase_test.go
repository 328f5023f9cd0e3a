// internal/application/usecase/order_usecase_test.go
package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	common "elanor/internal/domain/common"
	orderdom "elanor/internal/domain/order"
)

type fakeOrderRepo struct {
	created []orderdom.Order
}

func (r *fakeOrderRepo) Create(ctx context.Context, o orderdom.Order) (string, error) {
	r.created = append(r.created, o)
	return "ord-1", nil
}

func TestOrderUsecase_Place_OK(t *testing.T) {
	repo := &fakeOrderRepo{}
	uc := NewOrderUsecase(repo)

	id, err := uc.Place(context.Background(), orderdom.Order{
		Email: "a@example.com",
		Items: []orderdom.Item{{Slug: " pride ", Quantity: 2}},
	})
	require.NoError(t, err)
	assert.Equal(t, "ord-1", id)

	require.Len(t, repo.created, 1)
	assert.Equal(t, "pride", repo.created[0].Items[0].Slug)
}

func TestOrderUsecase_Place_BadQuantityCreatesNothing(t *testing.T) {
	repo := &fakeOrderRepo{}
	uc := NewOrderUsecase(repo)

	_, err := uc.Place(context.Background(), orderdom.Order{
		Email: "a@example.com",
		Items: []orderdom.Item{{Slug: "pride", Quantity: 0}},
	})
	require.Error(t, err)

	ve, ok := common.AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, "items[0].quantity", ve.Violations[0].Field)
	assert.Empty(t, repo.created)
}

func TestOrderUsecase_Place_UnknownSlugIsAccepted(t *testing.T) {
	// Cross-entity references are intentionally unchecked.
	repo := &fakeOrderRepo{}
	uc := NewOrderUsecase(repo)

	_, err := uc.Place(context.Background(), orderdom.Order{
		Email: "a@example.com",
		Items: []orderdom.Item{{Slug: "liners-and-limbo", Quantity: 1}},
	})
	assert.NoError(t, err)
	assert.Len(t, repo.created, 1)
}
