// internal/domain/fragrance/entity.go
package fragrance

import (
	"errors"
	"strings"

	common "elanor/internal/domain/common"
)

// Fragrance is a catalog entry. Slug is the natural key: unique across the
// whole catalog and used as the document ID in the store, so uniqueness is
// enforced by the store's create-if-absent write rather than by a scan.
type Fragrance struct {
	Name        string   `json:"name"`
	Slug        string   `json:"slug"`
	Sin         string   `json:"sin"`
	TopNotes    []string `json:"top_notes"`
	HeartNotes  []string `json:"heart_notes"`
	BaseNotes   []string `json:"base_notes"`
	Description string   `json:"description"`
	Story       string   `json:"story"`
	Price       float64  `json:"price"`
	Image       *string  `json:"image"`
	InStock     bool     `json:"in_stock"`
}

var (
	ErrNotFound = errors.New("fragrance: not found")
)

// Validate checks required fields and value constraints, reporting every
// violation at once.
func (f Fragrance) Validate() error {
	ve := &common.ValidationError{}

	if strings.TrimSpace(f.Name) == "" {
		ve.Add("name", "must not be empty")
	}
	if strings.TrimSpace(f.Slug) == "" {
		ve.Add("slug", "must not be empty")
	}
	if strings.TrimSpace(f.Sin) == "" {
		ve.Add("sin", "must not be empty")
	}
	if strings.TrimSpace(f.Description) == "" {
		ve.Add("description", "must not be empty")
	}
	if strings.TrimSpace(f.Story) == "" {
		ve.Add("story", "must not be empty")
	}
	if f.Price < 0 {
		ve.Add("price", "must be >= 0")
	}

	return ve.ErrOrNil()
}
