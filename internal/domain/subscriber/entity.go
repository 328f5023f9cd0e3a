// internal/domain/subscriber/entity.go
package subscriber

import (
	"strings"

	common "elanor/internal/domain/common"
)

// Subscriber is one entry on the announcements / drops mailing list.
// Name is optional; empty means the subscriber gave no name.
type Subscriber struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// Normalize trims whitespace on all fields.
func (s Subscriber) Normalize() Subscriber {
	s.Email = strings.TrimSpace(s.Email)
	s.Name = strings.TrimSpace(s.Name)
	return s
}

// Validate checks email syntax.
func (s Subscriber) Validate() error {
	ve := &common.ValidationError{}

	if s.Email == "" {
		ve.Add("email", "must not be empty")
	} else if !common.ValidEmail(s.Email) {
		ve.Add("email", "must be a valid email address")
	}

	return ve.ErrOrNil()
}
