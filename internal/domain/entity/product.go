package entity

import (
	"time"
)

// Product is a catalog entity. ID is the stable identifier; SKU is the
// human-facing code and may change over a product's lifetime.
type Product struct {
	ID          string  `json:"id"`
	SKU         string  `json:"sku"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Brand       string  `json:"brand"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	BasePrice   float64 `json:"basePrice"`
	StockStatus string  `json:"stockStatus"` // in-stock, low-stock, out-of-stock
	StockLevel  int     `json:"stockLevel"`
	Weight      string  `json:"weight"`
	Dimensions  string  `json:"dimensions"`

	Attributes    map[string]string `json:"attributes"`
	Overview      string            `json:"overview,omitempty"`
	Warranty      string            `json:"warranty,omitempty"`
	Compatibility string            `json:"compatibility,omitempty"`
	Datasheet     string            `json:"datasheet,omitempty"`

	// Optional JSON-LD overrides, keyed by schema.org property.
	SchemaOverride map[string]string `json:"schemaOverride,omitempty"`

	MetaTitle       string   `json:"metaTitle,omitempty"`
	MetaDescription string   `json:"metaDescription,omitempty"`
	Tags            []string `json:"tags,omitempty"`

	RedirectTo        string `json:"redirectTo,omitempty"`
	RedirectPermanent bool   `json:"redirectPermanent,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
