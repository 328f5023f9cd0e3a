// internal/domain/fragrance/repository_port.go
package fragrance

import "context"

// Repository defines the persistence port for Fragrance.
//
// The catalog is read-only through the public API; writes happen only via
// seeding (HTTP /seed or cmd/seed), hence the narrow command surface.
type Repository interface {
	// Queries
	List(ctx context.Context) ([]Fragrance, error)
	GetBySlug(ctx context.Context, slug string) (Fragrance, error)
	// Any reports whether at least one fragrance document exists.
	Any(ctx context.Context) (bool, error)

	// Commands
	// Create writes f keyed by its slug. created=false (with nil error)
	// means a document with that slug already existed and nothing was
	// written, which is what makes concurrent seeding safe.
	Create(ctx context.Context, f Fragrance) (created bool, err error)
}
