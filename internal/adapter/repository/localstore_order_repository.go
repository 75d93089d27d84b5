package repository

import (
	"rackline/internal/domain/entity"
	"rackline/internal/domain/repository"
	"rackline/internal/infrastructure/localstore"
)

type localstoreOrderRepository struct {
	orders *localstore.Collection[entity.Order]
}

func NewLocalstoreOrderRepository(store *localstore.Store) repository.OrderRepository {
	return &localstoreOrderRepository{
		orders: localstore.NewCollection(store, "orders-v2",
			func(o *entity.Order) string { return o.ID },
			func(o *entity.Order, id string) { o.ID = id },
		),
	}
}

func (r *localstoreOrderRepository) GetAll() []entity.Order {
	return r.orders.GetAll()
}

func (r *localstoreOrderRepository) Get(id string) (entity.Order, bool) {
	return r.orders.Get(id)
}

func (r *localstoreOrderRepository) Add(order *entity.Order) error {
	return r.orders.Add(order)
}

func (r *localstoreOrderRepository) Save(order entity.Order) error {
	return r.orders.Save(order)
}

type localstoreSubmissionRepository struct {
	submissions *localstore.Collection[entity.Submission]
}

func NewLocalstoreSubmissionRepository(store *localstore.Store) repository.SubmissionRepository {
	return &localstoreSubmissionRepository{
		submissions: localstore.NewCollection(store, "submissions-v2",
			func(s *entity.Submission) string { return s.ID },
			func(s *entity.Submission, id string) { s.ID = id },
		),
	}
}

func (r *localstoreSubmissionRepository) GetAll() []entity.Submission {
	return r.submissions.GetAll()
}

func (r *localstoreSubmissionRepository) Add(submission *entity.Submission) error {
	return r.submissions.Add(submission)
}

func (r *localstoreSubmissionRepository) Save(submission entity.Submission) error {
	return r.submissions.Save(submission)
}
