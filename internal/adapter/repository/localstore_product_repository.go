package repository

import (
	"rackline/internal/domain/entity"
	"rackline/internal/domain/repository"
	"rackline/internal/infrastructure/localstore"
)

type localstoreProductRepository struct {
	products *localstore.Collection[entity.Product]
}

func NewLocalstoreProductRepository(store *localstore.Store) repository.ProductRepository {
	return &localstoreProductRepository{
		products: localstore.NewCollection(store, "products-v2",
			func(p *entity.Product) string { return p.ID },
			func(p *entity.Product, id string) { p.ID = id },
		),
	}
}

func (r *localstoreProductRepository) GetAll() []entity.Product {
	return r.products.GetAll()
}

func (r *localstoreProductRepository) Get(id string) (entity.Product, bool) {
	return r.products.Get(id)
}

func (r *localstoreProductRepository) Upsert(product entity.Product) error {
	return r.products.Upsert(product)
}

func (r *localstoreProductRepository) Delete(id string) error {
	return r.products.Delete(id)
}

func (r *localstoreProductRepository) ReplaceAll(products []entity.Product) error {
	return r.products.Replace(products)
}
