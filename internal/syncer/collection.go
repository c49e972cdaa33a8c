// Package syncer keeps an in-memory entity list consistent with a remote
// document collection. The local list is the working copy; the remote store
// is a mirror updated through serialized, per-key writes.
package syncer

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/Maaz-R-Khan/truck-logistics-app/internal/docstore"
)

// Entity is a record with a document identity.
type Entity interface {
	Key() string
	SetKey(string)
}

// Collection synchronizes a local list of entities with one remote
// collection. Mutations are local-first: the snapshot is updated before the
// remote write, and a remote failure is reported without rolling the
// snapshot back. Remote writes for the same key are serialized through a
// KeyQueue.
type Collection[T Entity] struct {
	name    string
	store   docstore.Store
	queue   *KeyQueue
	factory func() T
	log     logrus.FieldLogger

	mu    sync.RWMutex
	items []T
}

// NewCollection creates a synchronizer for one named collection. The factory
// produces an entity pre-populated with its type defaults, so fields missing
// from a stored document decode to the same defaults a freshly created
// entity has.
func NewCollection[T Entity](store docstore.Store, name string, factory func() T, queue *KeyQueue, log logrus.FieldLogger) *Collection[T] {
	if queue == nil {
		queue = NewKeyQueue(0)
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Collection[T]{
		name:    name,
		store:   store,
		queue:   queue,
		factory: factory,
		log:     log.WithField("collection", name),
	}
}

// Name returns the remote collection name.
func (c *Collection[T]) Name() string {
	return c.name
}

// LoadAll fetches every document in the collection, decodes each into an
// entity, and replaces the local snapshot wholesale. A document whose
// embedded identity field is absent gets the storage key as its identity. On
// fetch failure the snapshot is left untouched and the error is returned;
// there is no retry.
func (c *Collection[T]) LoadAll(ctx context.Context) ([]T, error) {
	docs, err := c.store.GetAll(ctx, c.name)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", c.name, err)
	}

	items := make([]T, 0, len(docs))
	for _, doc := range docs {
		item := c.factory()
		if err := json.Unmarshal(doc.Fields, item); err != nil {
			// Keep the partially populated entity; a shape mismatch on one
			// field must not discard the document.
			c.log.WithError(err).WithField("key", doc.Key).
				Warn("Document decoded partially")
		}
		if item.Key() == "" {
			item.SetKey(doc.Key)
		}
		items = append(items, item)
	}

	c.mu.Lock()
	c.items = items
	c.mu.Unlock()

	return c.Snapshot(), nil
}

// Save upserts the entity. An entity without an identity gets a freshly
// allocated key assigned before the write. The local snapshot is updated
// before the remote write lands; a remote failure leaves the optimistic
// local state in place and is returned to the caller.
func (c *Collection[T]) Save(ctx context.Context, item T) error {
	if item.Key() == "" {
		item.SetKey(c.store.AllocateKey(c.name))
	}
	key := item.Key()

	c.mu.Lock()
	replaced := false
	for i := range c.items {
		if c.items[i].Key() == key {
			c.items[i] = item
			replaced = true
			break
		}
	}
	if !replaced {
		c.items = append(c.items, item)
	}
	c.mu.Unlock()

	fields, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("encode %s/%s: %w", c.name, key, err)
	}

	return c.queue.Do(ctx, key, func() error {
		return c.store.Set(ctx, c.name, key, fields)
	})
}

// Delete removes the entity locally, then deletes the remote document. The
// two steps are not atomic; the remote delete is serialized behind any
// in-flight save for the same key.
func (c *Collection[T]) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	for i := range c.items {
		if c.items[i].Key() == key {
			c.items = append(c.items[:i], c.items[i+1:]...)
			break
		}
	}
	c.mu.Unlock()

	return c.queue.Do(ctx, key, func() error {
		return c.store.Delete(ctx, c.name, key)
	})
}

// Get returns the entity with the given key from the local snapshot.
func (c *Collection[T]) Get(key string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, item := range c.items {
		if item.Key() == key {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Snapshot returns a copy of the local list.
func (c *Collection[T]) Snapshot() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the size of the local list.
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
