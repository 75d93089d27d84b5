package usecase

import (
	"context"
	"encoding/json"
	"sync"

	"golang.org/x/sync/errgroup"

	"rackline/internal/domain/entity"
	"rackline/internal/domain/repository"
	"rackline/pkg/errors"
	"rackline/pkg/logger"
)

// ContentUseCase owns the in-process content document and reconciles it
// with the upstream CMS. It is created by the composition root and
// injected into its consumers; there is no package-level instance.
type ContentUseCase struct {
	contentRepo repository.ContentRepository
	api         ContentAPI
	defaults    entity.ContentState

	mu          sync.RWMutex
	state       entity.ContentState
	subscribers []func(entity.ContentState)
}

// NewContentUseCase seeds the state from the local store so the service
// can answer immediately, before the upstream has been consulted.
func NewContentUseCase(contentRepo repository.ContentRepository, api ContentAPI) *ContentUseCase {
	defaults := entity.DefaultContent()
	return &ContentUseCase{
		contentRepo: contentRepo,
		api:         api,
		defaults:    defaults,
		state:       contentRepo.Load(defaults),
	}
}

// Subscribe registers a hook invoked with the new state after every
// change. Hooks run synchronously on the mutating goroutine.
func (uc *ContentUseCase) Subscribe(fn func(entity.ContentState)) {
	uc.mu.Lock()
	uc.subscribers = append(uc.subscribers, fn)
	uc.mu.Unlock()
}

// State returns a copy of the current content document.
func (uc *ContentUseCase) State() entity.ContentState {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.state
}

func (uc *ContentUseCase) setState(state entity.ContentState) {
	uc.mu.Lock()
	uc.state = state
	subs := make([]func(entity.ContentState), len(uc.subscribers))
	copy(subs, uc.subscribers)
	uc.mu.Unlock()

	for _, fn := range subs {
		fn(state)
	}
}

// Load fetches the upstream document and merges it over the current
// state: array sections replace wholesale, object sections shallow-merge.
// Critical storefront fields are backfilled from defaults when the
// merge leaves them empty. An upstream failure is logged and the
// local-seeded state is kept; no error reaches the caller.
func (uc *ContentUseCase) Load(ctx context.Context) {
	patch, err := uc.api.FetchContent(ctx)
	if err != nil {
		logger.Warn("content: upstream fetch failed, keeping local state: %v", err)
		return
	}

	state := uc.State()
	for _, name := range patch.Sections() {
		// Unknown sections from newer upstream versions are skipped,
		// not fatal.
		if err := state.Apply(entity.ContentPatch{name: patch[name]}); err != nil {
			logger.Warn("content: skipping section %s: %v", name, err)
		}
	}
	state.Backfill(uc.defaults)

	if err := uc.contentRepo.Save(state); err != nil {
		logger.Warn("content: failed to persist merged state: %v", err)
	}
	uc.setState(state)
}

// Update applies a partial document optimistically: the local state and
// store are updated first, then every changed section is pushed
// upstream in parallel. A push failure propagates to the caller but the
// optimistic local write is NOT rolled back; "local success, remote
// failure" is an accepted end state the caller must handle.
func (uc *ContentUseCase) Update(ctx context.Context, patch entity.ContentPatch) (entity.ContentState, error) {
	state := uc.State()

	for name := range patch {
		if _, known := entity.SectionPolicies[name]; !known {
			return state, errors.BadRequest("Unknown content section: "+name, nil)
		}
	}
	if err := state.Apply(patch); err != nil {
		return uc.State(), errors.BadRequest("Invalid content payload", err)
	}

	uc.setState(state)
	if err := uc.contentRepo.Save(state); err != nil {
		// In-memory state already reflects the write; the divergence
		// window is accepted.
		return state, err
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, name := range patch.Sections() {
		name := name
		section, _ := state.Section(name)
		g.Go(func() error {
			if err := uc.api.SaveSection(gctx, name, section); err != nil {
				logger.Error("content: failed to push section %s: %v", name, err)
				return err
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return state, errors.Upstream("One or more content sections failed to sync", err)
	}

	return state, nil
}

// MarshalSection marshals the current value of one section, mainly for
// building patches from full-array rewrites.
func MarshalSection(v interface{}) (json.RawMessage, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Internal("Failed to encode content section", err)
	}
	return data, nil
}
