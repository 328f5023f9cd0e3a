// internal/application/usecase/order_usecase.go
package usecase

import (
	"context"

	orderdom "elanor/internal/domain/order"
)

// OrderRepo is the persistence port required by OrderUsecase.
type OrderRepo interface {
	Create(ctx context.Context, o orderdom.Order) (string, error)
}

// OrderUsecase orchestrates preorder intake.
type OrderUsecase struct {
	repo OrderRepo
}

func NewOrderUsecase(repo OrderRepo) *OrderUsecase {
	return &OrderUsecase{repo: repo}
}

// Place validates o, persists it and returns the store-generated ID.
// Item slugs are not checked against the catalog (see order.Item).
func (u *OrderUsecase) Place(ctx context.Context, o orderdom.Order) (string, error) {
	o = o.Normalize()
	if err := o.Validate(); err != nil {
		return "", err
	}

	return u.repo.Create(ctx, o)
}
