// internal/domain/order/repository_port.go
package order

import "context"

// Repository defines the persistence port for Order.
// Orders are write-once in the current surface: no update, delete or
// fulfillment tracking.
type Repository interface {
	// Create persists o and returns the store-generated document ID.
	Create(ctx context.Context, o Order) (id string, err error)
}
