package entity

import "time"

// BlogPost is an article shown on the storefront blog. The slug is
// derived from the title (or an explicit slug input) at creation time
// and is never re-derived when the post is edited.
type BlogPost struct {
	ID        string    `json:"id"`
	Slug      string    `json:"slug"`
	Title     string    `json:"title"`
	Excerpt   string    `json:"excerpt"`
	Body      string    `json:"body"`
	Image     string    `json:"image"`
	Author    string    `json:"author"`
	Published bool      `json:"published"`
	Tags      []string  `json:"tags,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
