// internal/application/usecase/catalog_usecase_test.go
package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	fragdom "elanor/internal/domain/fragrance"
)

// fakeCatalogRepo keeps fragrances keyed by slug, mimicking the
// docId-is-slug semantics of the Firestore adapter.
type fakeCatalogRepo struct {
	bySlug map[string]fragdom.Fragrance
	order  []string

	anyErr error
}

func newFakeCatalogRepo() *fakeCatalogRepo {
	return &fakeCatalogRepo{bySlug: map[string]fragdom.Fragrance{}}
}

func (r *fakeCatalogRepo) List(ctx context.Context) ([]fragdom.Fragrance, error) {
	out := make([]fragdom.Fragrance, 0, len(r.order))
	for _, slug := range r.order {
		out = append(out, r.bySlug[slug])
	}
	return out, nil
}

func (r *fakeCatalogRepo) GetBySlug(ctx context.Context, slug string) (fragdom.Fragrance, error) {
	f, ok := r.bySlug[slug]
	if !ok {
		return fragdom.Fragrance{}, fragdom.ErrNotFound
	}
	return f, nil
}

func (r *fakeCatalogRepo) Any(ctx context.Context) (bool, error) {
	if r.anyErr != nil {
		return false, r.anyErr
	}
	return len(r.bySlug) > 0, nil
}

func (r *fakeCatalogRepo) Create(ctx context.Context, f fragdom.Fragrance) (bool, error) {
	if _, exists := r.bySlug[f.Slug]; exists {
		return false, nil
	}
	r.bySlug[f.Slug] = f
	r.order = append(r.order, f.Slug)
	return true, nil
}

func TestCatalogUsecase_Seed_EmptyStoreCreatesSeven(t *testing.T) {
	repo := newFakeCatalogRepo()
	uc := NewCatalogUsecase(repo)

	res, err := uc.Seed(context.Background())
	require.NoError(t, err)
	assert.False(t, res.AlreadySeeded)
	assert.Equal(t, 7, res.Created)

	list, err := uc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 7)

	seen := map[string]bool{}
	for _, f := range list {
		assert.False(t, seen[f.Slug])
		seen[f.Slug] = true
	}
}

func TestCatalogUsecase_Seed_SecondCallIsNoOp(t *testing.T) {
	repo := newFakeCatalogRepo()
	uc := NewCatalogUsecase(repo)

	_, err := uc.Seed(context.Background())
	require.NoError(t, err)

	res, err := uc.Seed(context.Background())
	require.NoError(t, err)
	assert.True(t, res.AlreadySeeded)
	assert.Zero(t, res.Created)
	assert.Len(t, repo.bySlug, 7)
}

func TestCatalogUsecase_Seed_RacingSeederAlreadyWroteSlugs(t *testing.T) {
	// A parallel first call got three slugs in between our emptiness check
	// and our writes; they must be skipped, never duplicated.
	repo := newFakeCatalogRepo()
	for _, f := range fragdom.SevenSins[:3] {
		_, err := repo.Create(context.Background(), f)
		require.NoError(t, err)
	}
	uc := NewCatalogUsecase(&racingRepo{fakeCatalogRepo: repo})

	res, err := uc.Seed(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, res.Created)
	assert.Len(t, repo.bySlug, 7)
}

// racingRepo reports an empty store while holding documents, reproducing
// the check-then-insert window.
type racingRepo struct {
	*fakeCatalogRepo
}

func (r *racingRepo) Any(ctx context.Context) (bool, error) { return false, nil }

func TestCatalogUsecase_Seed_StoreFailureSurfaces(t *testing.T) {
	repo := newFakeCatalogRepo()
	repo.anyErr = errors.New("store: not connected")
	uc := NewCatalogUsecase(repo)

	_, err := uc.Seed(context.Background())
	assert.Error(t, err)
}

func TestCatalogUsecase_GetBySlug(t *testing.T) {
	repo := newFakeCatalogRepo()
	uc := NewCatalogUsecase(repo)
	_, err := uc.Seed(context.Background())
	require.NoError(t, err)

	f, err := uc.GetBySlug(context.Background(), "wrath")
	require.NoError(t, err)
	assert.Equal(t, "Wrath", f.Name)

	_, err = uc.GetBySlug(context.Background(), "unknown")
	assert.ErrorIs(t, err, fragdom.ErrNotFound)

	_, err = uc.GetBySlug(context.Background(), "  ")
	assert.ErrorIs(t, err, fragdom.ErrNotFound)
}
