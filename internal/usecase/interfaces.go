package usecase

import (
	"context"
	"io"

	"rackline/internal/domain/entity"
	"rackline/internal/infrastructure/upstream"
)

// ContentAPI is the slice of the upstream client the content
// synchronizer consumes.
type ContentAPI interface {
	FetchContent(ctx context.Context) (entity.ContentPatch, error)
	SaveSection(ctx context.Context, section string, payload interface{}) error
}

// ProductAPI covers the catalog endpoints.
type ProductAPI interface {
	FetchProducts(ctx context.Context, limit, offset int) ([]entity.Product, int64, error)
	FetchProduct(ctx context.Context, idOrSKU string) (*entity.Product, error)
	CreateProduct(ctx context.Context, product *entity.Product) error
	UpdateProduct(ctx context.Context, product entity.Product) error
	DeleteProduct(ctx context.Context, id string) error
	BulkUpsertProducts(ctx context.Context, products []entity.Product) (*upstream.BulkResult, error)
}

// OrderAPI covers the order endpoints including the third-party sync
// triggers.
type OrderAPI interface {
	FetchOrders(ctx context.Context) ([]entity.Order, error)
	CreateOrder(ctx context.Context, order *entity.Order) error
	UpdateOrder(ctx context.Context, order entity.Order) error
	SyncOrderAirtable(ctx context.Context, id string) (string, error)
	SyncOrderXero(ctx context.Context, id string) (string, error)
}

// QuoteAPI covers the quote-submission endpoints.
type QuoteAPI interface {
	FetchSubmissions(ctx context.Context) ([]entity.Submission, error)
	CreateSubmission(ctx context.Context, submission *entity.Submission) error
	UpdateSubmission(ctx context.Context, submission entity.Submission) error
}

// TrackingAPI covers the unauthenticated lookup endpoints.
type TrackingAPI interface {
	TrackOrder(ctx context.Context, reference, email string) (*entity.Order, bool, error)
	TrackQuote(ctx context.Context, reference, email string) (*entity.Submission, bool, error)
}

// CMSAPI covers asset upload and redirect import forwarding.
type CMSAPI interface {
	UploadFile(ctx context.Context, filename string, r io.Reader) (string, error)
	ImportRedirects(ctx context.Context, filename string, r io.Reader) (*upstream.BulkResult, error)
}
