package repository

import (
	"rackline/internal/domain/entity"
)

// ProductRepository is the local mirror used when the upstream catalog
// API is unreachable.
type ProductRepository interface {
	GetAll() []entity.Product
	Get(id string) (entity.Product, bool)
	Upsert(product entity.Product) error
	Delete(id string) error
	ReplaceAll(products []entity.Product) error
}
