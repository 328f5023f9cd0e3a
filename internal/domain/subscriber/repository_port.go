// internal/domain/subscriber/repository_port.go
package subscriber

import "context"

// Repository defines the persistence port for Subscriber.
// No update or delete path is exposed; a subscription is write-once.
type Repository interface {
	// Create persists s and returns the store-generated document ID.
	Create(ctx context.Context, s Subscriber) (id string, err error)
}
