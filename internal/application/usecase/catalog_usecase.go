// internal/application/usecase/catalog_usecase.go
package usecase

import (
	"context"
	"fmt"
	"strings"

	fragdom "elanor/internal/domain/fragrance"
)

// CatalogRepo is the persistence port required by CatalogUsecase.
type CatalogRepo interface {
	List(ctx context.Context) ([]fragdom.Fragrance, error)
	GetBySlug(ctx context.Context, slug string) (fragdom.Fragrance, error)
	Any(ctx context.Context) (bool, error)
	Create(ctx context.Context, f fragdom.Fragrance) (created bool, err error)
}

// SeedResult reports the outcome of one Seed call.
type SeedResult struct {
	Created       int
	AlreadySeeded bool
}

// CatalogUsecase orchestrates catalog reads and the one-time seed.
type CatalogUsecase struct {
	repo CatalogRepo
}

func NewCatalogUsecase(repo CatalogRepo) *CatalogUsecase {
	return &CatalogUsecase{repo: repo}
}

// =======================
// Queries
// =======================

func (u *CatalogUsecase) List(ctx context.Context) ([]fragdom.Fragrance, error) {
	return u.repo.List(ctx)
}

func (u *CatalogUsecase) GetBySlug(ctx context.Context, slug string) (fragdom.Fragrance, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return fragdom.Fragrance{}, fragdom.ErrNotFound
	}
	return u.repo.GetBySlug(ctx, slug)
}

// =======================
// Commands
// =======================

// Seed populates the fragrance collection with the seven-sins catalog if it
// is empty. The check-then-insert is not atomic, so each insert is keyed by
// slug with create-if-absent semantics; a parallel seed that got there first
// is counted as already-present, never duplicated.
func (u *CatalogUsecase) Seed(ctx context.Context) (SeedResult, error) {
	seeded, err := u.repo.Any(ctx)
	if err != nil {
		return SeedResult{}, err
	}
	if seeded {
		return SeedResult{AlreadySeeded: true}, nil
	}

	created := 0
	for _, f := range fragdom.SevenSins {
		if err := f.Validate(); err != nil {
			return SeedResult{}, fmt.Errorf("seed catalog entry %q: %w", f.Slug, err)
		}
		ok, err := u.repo.Create(ctx, f)
		if err != nil {
			return SeedResult{}, err
		}
		if ok {
			created++
		}
	}
	return SeedResult{Created: created}, nil
}
