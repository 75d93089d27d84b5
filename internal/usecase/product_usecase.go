package usecase

import (
	"context"
	"time"

	"rackline/internal/domain/entity"
	"rackline/internal/domain/repository"
	"rackline/internal/infrastructure/localstore"
	"rackline/internal/productcache"
	"rackline/pkg/errors"
	"rackline/pkg/logger"
)

// ProductUseCase serves catalog reads through the TTL cache and writes
// against the upstream API. When an upstream write fails the product is
// mirrored into the local store instead, so admin work is not lost
// while offline; the mirror is not reconciled back automatically.
type ProductUseCase struct {
	api         ProductAPI
	cache       *productcache.Cache
	productRepo repository.ProductRepository
}

func NewProductUseCase(api ProductAPI, cache *productcache.Cache, productRepo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{
		api:         api,
		cache:       cache,
		productRepo: productRepo,
	}
}

type CreateProductInput struct {
	SKU             string
	Name            string
	Description     string
	Brand           string
	Category        string
	Image           string
	BasePrice       float64
	StockLevel      int
	Weight          string
	Dimensions      string
	Attributes      map[string]string
	Overview        string
	Warranty        string
	Compatibility   string
	Datasheet       string
	SchemaOverride  map[string]string
	MetaTitle       string
	MetaDescription string
	Tags            []string
	RedirectTo      string
	RedirectPerm    *bool
}

func stockStatus(level int) string {
	switch {
	case level <= 0:
		return "out-of-stock"
	case level <= 3:
		return "low-stock"
	}
	return "in-stock"
}

// List returns a page of the catalog out of the read-through cache.
// Cache misses hit the upstream; fetch errors surface with no stale
// fallback at this layer.
func (uc *ProductUseCase) List(ctx context.Context, limit, offset int) ([]entity.Product, int64, error) {
	products, err := uc.cache.Products(ctx)
	if err != nil {
		return nil, 0, err
	}

	total := int64(len(products))
	if offset >= len(products) {
		return []entity.Product{}, total, nil
	}
	end := offset + limit
	if limit <= 0 || end > len(products) {
		end = len(products)
	}
	return products[offset:end], total, nil
}

func (uc *ProductUseCase) Get(ctx context.Context, idOrSKU string) (*entity.Product, error) {
	return uc.cache.Product(ctx, idOrSKU)
}

// Refresh forces the cache entry for an identifier (or the full
// catalog) to be refetched.
func (uc *ProductUseCase) Refresh(ctx context.Context, identifier string) error {
	return uc.cache.Refresh(ctx, identifier)
}

func (uc *ProductUseCase) buildProduct(input CreateProductInput) entity.Product {
	redirectPermanent := true
	if input.RedirectPerm != nil {
		redirectPermanent = *input.RedirectPerm
	}
	now := time.Now()
	return entity.Product{
		SKU:               input.SKU,
		Name:              input.Name,
		Description:       input.Description,
		Brand:             input.Brand,
		Category:          input.Category,
		Image:             input.Image,
		BasePrice:         input.BasePrice,
		StockStatus:       stockStatus(input.StockLevel),
		StockLevel:        input.StockLevel,
		Weight:            input.Weight,
		Dimensions:        input.Dimensions,
		Attributes:        input.Attributes,
		Overview:          input.Overview,
		Warranty:          input.Warranty,
		Compatibility:     input.Compatibility,
		Datasheet:         input.Datasheet,
		SchemaOverride:    input.SchemaOverride,
		MetaTitle:         input.MetaTitle,
		MetaDescription:   input.MetaDescription,
		Tags:              input.Tags,
		RedirectTo:        input.RedirectTo,
		RedirectPermanent: redirectPermanent,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

// Create persists the product upstream. On upstream failure the product
// is written to the local mirror with a local id and offline=true is
// returned alongside it.
func (uc *ProductUseCase) Create(ctx context.Context, input CreateProductInput) (*entity.Product, bool, error) {
	if input.SKU == "" || input.Name == "" {
		return nil, false, errors.BadRequest("SKU and name are required", nil)
	}

	product := uc.buildProduct(input)
	if err := uc.api.CreateProduct(ctx, &product); err != nil {
		logger.Warn("products: upstream create failed, saving locally: %v", err)
		if product.ID == "" {
			product.ID = localstore.NewLocalID()
		}
		if storeErr := uc.productRepo.Upsert(product); storeErr != nil {
			return nil, false, storeErr
		}
		return &product, true, nil
	}
	return &product, false, nil
}

func (uc *ProductUseCase) Update(ctx context.Context, id string, input CreateProductInput) (*entity.Product, bool, error) {
	existing, err := uc.Get(ctx, id)
	if err != nil {
		if local, ok := uc.productRepo.Get(id); ok {
			existing = &local
		} else {
			return nil, false, err
		}
	}

	product := uc.buildProduct(input)
	product.ID = existing.ID
	product.CreatedAt = existing.CreatedAt
	if product.SKU == "" {
		product.SKU = existing.SKU
	}

	if err := uc.api.UpdateProduct(ctx, product); err != nil {
		logger.Warn("products: upstream update failed, saving locally: %v", err)
		if storeErr := uc.productRepo.Upsert(product); storeErr != nil {
			return nil, false, storeErr
		}
		return &product, true, nil
	}
	return &product, false, nil
}

func (uc *ProductUseCase) Delete(ctx context.Context, id string) (bool, error) {
	if err := uc.api.DeleteProduct(ctx, id); err != nil {
		logger.Warn("products: upstream delete failed, removing local mirror: %v", err)
		if storeErr := uc.productRepo.Delete(id); storeErr != nil {
			return false, storeErr
		}
		return true, nil
	}
	return false, nil
}
