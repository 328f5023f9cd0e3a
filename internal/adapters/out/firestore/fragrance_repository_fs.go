// internal/adapters/out/firestore/fragrance_repository_fs.go
package firestore

import (
	"context"
	"errors"

	fragdom "elanor/internal/domain/fragrance"
)

// Collection design:
// - collection: fragrance
// - docId: slug ✅ (docId is the source of truth)
//
// Using the slug as docId is what enforces the catalog-wide slug uniqueness
// invariant: Create on an existing docId fails instead of duplicating, so
// two racing seed calls cannot double the catalog.
const colFragrance = "fragrance"

// FragranceRepositoryFS implements fragrance.Repository on the generic Store.
type FragranceRepositoryFS struct {
	Store *Store
}

func NewFragranceRepositoryFS(store *Store) *FragranceRepositoryFS {
	return &FragranceRepositoryFS{Store: store}
}

func (r *FragranceRepositoryFS) List(ctx context.Context) ([]fragdom.Fragrance, error) {
	if r == nil || r.Store == nil {
		return nil, errors.New("fragrance_repository_fs: store is nil")
	}

	docs, err := r.Store.GetDocuments(ctx, colFragrance, nil, 0)
	if err != nil {
		return nil, err
	}

	out := make([]fragdom.Fragrance, 0, len(docs))
	for _, doc := range docs {
		f, err := fragranceFromDoc(doc)
		if err != nil {
			// A malformed stored document fails the whole read; dropping
			// it silently would hide catalog corruption.
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}

func (r *FragranceRepositoryFS) GetBySlug(ctx context.Context, slug string) (fragdom.Fragrance, error) {
	if r == nil || r.Store == nil {
		return fragdom.Fragrance{}, errors.New("fragrance_repository_fs: store is nil")
	}

	docs, err := r.Store.GetDocuments(ctx, colFragrance, map[string]any{"slug": slug}, 1)
	if err != nil {
		return fragdom.Fragrance{}, err
	}
	if len(docs) == 0 {
		return fragdom.Fragrance{}, fragdom.ErrNotFound
	}
	return fragranceFromDoc(docs[0])
}

func (r *FragranceRepositoryFS) Any(ctx context.Context) (bool, error) {
	if r == nil || r.Store == nil {
		return false, errors.New("fragrance_repository_fs: store is nil")
	}

	docs, err := r.Store.GetDocuments(ctx, colFragrance, nil, 1)
	if err != nil {
		return false, err
	}
	return len(docs) > 0, nil
}

func (r *FragranceRepositoryFS) Create(ctx context.Context, f fragdom.Fragrance) (bool, error) {
	if r == nil || r.Store == nil {
		return false, errors.New("fragrance_repository_fs: store is nil")
	}

	return r.Store.CreateDocumentWithID(ctx, colFragrance, f.Slug, fragranceDocFromDomain(f))
}

// ============================================================
// doc <-> domain mapping
// ============================================================

func fragranceDocFromDomain(f fragdom.Fragrance) map[string]any {
	var image any
	if f.Image != nil {
		image = *f.Image
	}
	return map[string]any{
		"name":        f.Name,
		"slug":        f.Slug,
		"sin":         f.Sin,
		"top_notes":   f.TopNotes,
		"heart_notes": f.HeartNotes,
		"base_notes":  f.BaseNotes,
		"description": f.Description,
		"story":       f.Story,
		"price":       f.Price,
		"image":       image,
		"in_stock":    f.InStock,
	}
}

func fragranceFromDoc(doc map[string]any) (fragdom.Fragrance, error) {
	var f fragdom.Fragrance
	var err error

	// The store-internal ID never reaches the public form.
	delete(doc, IDKey)

	if f.Name, err = requireString(doc, colFragrance, "name"); err != nil {
		return fragdom.Fragrance{}, err
	}
	if f.Slug, err = requireString(doc, colFragrance, "slug"); err != nil {
		return fragdom.Fragrance{}, err
	}
	if f.Sin, err = requireString(doc, colFragrance, "sin"); err != nil {
		return fragdom.Fragrance{}, err
	}
	if f.TopNotes, err = stringSlice(doc, colFragrance, "top_notes"); err != nil {
		return fragdom.Fragrance{}, err
	}
	if f.HeartNotes, err = stringSlice(doc, colFragrance, "heart_notes"); err != nil {
		return fragdom.Fragrance{}, err
	}
	if f.BaseNotes, err = stringSlice(doc, colFragrance, "base_notes"); err != nil {
		return fragdom.Fragrance{}, err
	}
	if f.Description, err = requireString(doc, colFragrance, "description"); err != nil {
		return fragdom.Fragrance{}, err
	}
	if f.Story, err = requireString(doc, colFragrance, "story"); err != nil {
		return fragdom.Fragrance{}, err
	}
	if f.Price, err = requireNumber(doc, colFragrance, "price"); err != nil {
		return fragdom.Fragrance{}, err
	}
	if f.Image, err = optString(doc, colFragrance, "image"); err != nil {
		return fragdom.Fragrance{}, err
	}
	if f.InStock, err = boolOr(doc, colFragrance, "in_stock", true); err != nil {
		return fragdom.Fragrance{}, err
	}

	return f, nil
}
