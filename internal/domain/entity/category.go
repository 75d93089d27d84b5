package entity

import "time"

// Category identifies a catalog category by slug. Products reference a
// category by name, not by id; deleting a category leaves those string
// references in place.
type Category struct {
	ID          string `json:"id"` // slug, derived from Name at creation
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Active      bool   `json:"active"`

	MetaTitle       string `json:"metaTitle,omitempty"`
	MetaDescription string `json:"metaDescription,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
