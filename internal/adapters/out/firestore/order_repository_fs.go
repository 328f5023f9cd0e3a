// internal/adapters/out/firestore/order_repository_fs.go
package firestore

import (
	"context"
	"errors"

	orderdom "elanor/internal/domain/order"
)

// Collection design:
// - collection: order
// - docId: store-generated
// - items: array of {slug, quantity} maps ✅ order of items is preserved
const colOrder = "order"

// OrderRepositoryFS implements order.Repository on the generic Store.
type OrderRepositoryFS struct {
	Store *Store
}

func NewOrderRepositoryFS(store *Store) *OrderRepositoryFS {
	return &OrderRepositoryFS{Store: store}
}

func (r *OrderRepositoryFS) Create(ctx context.Context, o orderdom.Order) (string, error) {
	if r == nil || r.Store == nil {
		return "", errors.New("order_repository_fs: store is nil")
	}

	return r.Store.CreateDocument(ctx, colOrder, orderDocFromDomain(o))
}

func orderDocFromDomain(o orderdom.Order) map[string]any {
	items := make([]any, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, map[string]any{
			"slug":     it.Slug,
			"quantity": it.Quantity,
		})
	}

	var name any
	if o.Name != "" {
		name = o.Name
	}
	var notes any
	if o.Notes != "" {
		notes = o.Notes
	}

	return map[string]any{
		"email": o.Email,
		"name":  name,
		"items": items,
		"notes": notes,
	}
}
