// internal/domain/order/entity.go
package order

import (
	"fmt"
	"strings"

	common "elanor/internal/domain/common"
)

// DefaultQuantity is applied when an inbound item carries no quantity.
const DefaultQuantity = 1

// Item references a catalog entry by slug. The slug is deliberately not
// checked against existing fragrance documents: preorders may cite scents
// that are announced but not yet seeded.
type Item struct {
	Slug     string `json:"slug"`
	Quantity int    `json:"quantity"`
}

// Order is a preorder / reservation request. Items may be empty (a bare
// reservation of interest); name and notes are optional.
type Order struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	Items []Item `json:"items"`
	Notes string `json:"notes,omitempty"`
}

// Normalize trims whitespace on all string fields.
func (o Order) Normalize() Order {
	o.Email = strings.TrimSpace(o.Email)
	o.Name = strings.TrimSpace(o.Name)
	o.Notes = strings.TrimSpace(o.Notes)
	for i := range o.Items {
		o.Items[i].Slug = strings.TrimSpace(o.Items[i].Slug)
	}
	return o
}

// Validate checks email syntax and every item, reporting all violations.
func (o Order) Validate() error {
	ve := &common.ValidationError{}

	if o.Email == "" {
		ve.Add("email", "must not be empty")
	} else if !common.ValidEmail(o.Email) {
		ve.Add("email", "must be a valid email address")
	}

	for i, it := range o.Items {
		if it.Slug == "" {
			ve.Add(fmt.Sprintf("items[%d].slug", i), "must not be empty")
		}
		if it.Quantity < 1 {
			ve.Add(fmt.Sprintf("items[%d].quantity", i), "must be >= 1")
		}
	}

	return ve.ErrOrNil()
}
