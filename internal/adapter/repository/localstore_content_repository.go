package repository

import (
	"rackline/internal/domain/entity"
	"rackline/internal/domain/repository"
	"rackline/internal/infrastructure/localstore"
)

const contentDocument = "content-v2"

type localstoreContentRepository struct {
	store *localstore.Store
}

func NewLocalstoreContentRepository(store *localstore.Store) repository.ContentRepository {
	return &localstoreContentRepository{store: store}
}

func (r *localstoreContentRepository) Load(defaults entity.ContentState) entity.ContentState {
	var local entity.ContentState
	if !r.store.ReadDocument(contentDocument, &local) {
		return defaults
	}
	return entity.MergeLocal(defaults, local)
}

func (r *localstoreContentRepository) Save(state entity.ContentState) error {
	return r.store.WriteDocument(contentDocument, state)
}
