package localstore

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"sync"
	"time"

	"rackline/pkg/errors"
	"rackline/pkg/logger"
)

// Store is the file-backed fallback database. Each named collection
// lives in one JSON file under the data directory and is always
// rewritten whole; there are no incremental writes. Writes go through a
// temp file and rename, so a failed write leaves the previously
// persisted state untouched.
type Store struct {
	dir string
	mu  sync.Mutex

	// writeFile is swappable so tests can simulate a full disk.
	writeFile func(path string, data []byte) error
}

func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Internal("Failed to create data directory", err)
	}
	s := &Store{dir: dir}
	s.writeFile = s.atomicWrite
	return s, nil
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name+".json")
}

func (s *Store) atomicWrite(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, path)
}

// ReadDocument loads a named JSON document into v. A missing or corrupt
// file is not an error: the caller gets ok=false and works from its
// defaults, and the corruption is logged only.
func (s *Store) ReadDocument(name string, v interface{}) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readLocked(name, v)
}

func (s *Store) readLocked(name string, v interface{}) bool {
	data, err := os.ReadFile(s.path(name))
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("localstore: failed to read %s: %v", name, err)
		}
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		logger.Warn("localstore: corrupt data in %s, ignoring: %v", name, err)
		return false
	}
	return true
}

// WriteDocument persists a named JSON document whole.
func (s *Store) WriteDocument(name string, v interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writeLocked(name, v)
}

func (s *Store) writeLocked(name string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Internal("Failed to encode "+name, err)
	}
	if err := s.writeFile(s.path(name), data); err != nil {
		return errors.StorageFull("Failed to persist "+name, err)
	}
	return nil
}

// NewLocalID generates an id for records created while offline.
func NewLocalID() string {
	return fmt.Sprintf("local-%d-%06x", time.Now().UnixMilli(), rand.Intn(1<<24))
}

// Collection provides typed access to one stored collection. The id
// accessors keep the store free of per-entity knowledge.
type Collection[T any] struct {
	store *Store
	name  string
	getID func(*T) string
	setID func(*T, string)
}

func NewCollection[T any](store *Store, name string, getID func(*T) string, setID func(*T, string)) *Collection[T] {
	return &Collection[T]{store: store, name: name, getID: getID, setID: setID}
}

// GetAll returns every item in the collection. Missing or corrupt data
// yields an empty slice.
func (c *Collection[T]) GetAll() []T {
	var items []T
	c.store.ReadDocument(c.name, &items)
	if items == nil {
		items = []T{}
	}
	return items
}

// Get returns the item with the given id.
func (c *Collection[T]) Get(id string) (T, bool) {
	var zero T
	for _, item := range c.GetAll() {
		item := item
		if c.getID(&item) == id {
			return item, true
		}
	}
	return zero, false
}

// Add appends an item, assigning a local id when none is set, and
// persists the whole collection.
func (c *Collection[T]) Add(item *T) error {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	if c.getID(item) == "" {
		c.setID(item, NewLocalID())
	}

	var items []T
	c.store.readLocked(c.name, &items)
	items = append(items, *item)
	return c.store.writeLocked(c.name, items)
}

// Save replaces the stored item with the same id. Unknown ids are a
// no-op, matching the update semantics of the fallback database.
func (c *Collection[T]) Save(item T) error {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	var items []T
	c.store.readLocked(c.name, &items)
	replaced := false
	for i := range items {
		if c.getID(&items[i]) == c.getID(&item) {
			items[i] = item
			replaced = true
			break
		}
	}
	if !replaced {
		return nil
	}
	return c.store.writeLocked(c.name, items)
}

// Upsert saves the item, appending it when the id is not present yet.
func (c *Collection[T]) Upsert(item T) error {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	var items []T
	c.store.readLocked(c.name, &items)
	found := false
	for i := range items {
		if c.getID(&items[i]) == c.getID(&item) {
			items[i] = item
			found = true
			break
		}
	}
	if !found {
		items = append(items, item)
	}
	return c.store.writeLocked(c.name, items)
}

// Delete removes the item with the given id and persists the whole
// collection. Unknown ids are a no-op.
func (c *Collection[T]) Delete(id string) error {
	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	var items []T
	c.store.readLocked(c.name, &items)
	out := items[:0]
	removed := false
	for _, item := range items {
		item := item
		if c.getID(&item) == id {
			removed = true
			continue
		}
		out = append(out, item)
	}
	if !removed {
		return nil
	}
	return c.store.writeLocked(c.name, out)
}

// Replace overwrites the whole collection.
func (c *Collection[T]) Replace(items []T) error {
	return c.store.WriteDocument(c.name, items)
}
