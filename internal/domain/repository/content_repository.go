package repository

import (
	"rackline/internal/domain/entity"
)

// ContentRepository persists the aggregate content document locally.
type ContentRepository interface {
	// Load returns the locally persisted document merged over the
	// defaults, or the defaults themselves when nothing is stored.
	Load(defaults entity.ContentState) entity.ContentState
	Save(state entity.ContentState) error
}
