package repository

import (
	"rackline/internal/domain/entity"
)

// OrderRepository is the local mirror for orders captured while the
// upstream API is unreachable.
type OrderRepository interface {
	GetAll() []entity.Order
	Get(id string) (entity.Order, bool)
	Add(order *entity.Order) error
	Save(order entity.Order) error
}

// SubmissionRepository mirrors quote submissions locally.
type SubmissionRepository interface {
	GetAll() []entity.Submission
	Add(submission *entity.Submission) error
	Save(submission entity.Submission) error
}
