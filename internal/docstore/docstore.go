// Package docstore provides keyed document storage grouped into named
// collections, with create-or-replace write semantics.
package docstore

import (
	"context"
	"encoding/json"
	"errors"
)

// Collection names used by the fleet service.
const (
	CollectionTrucks      = "trucks"
	CollectionDrivers     = "drivers"
	CollectionShipments   = "shipments"
	CollectionMaintenance = "maintenance"
	CollectionCargo       = "cargo"
)

// Common store errors
var (
	ErrNotFound = errors.New("document not found")
)

// Document is one stored document: an opaque key plus its raw JSON fields.
type Document struct {
	Key    string
	Fields json.RawMessage
}

// Store is the remote document store. Writes are upserts keyed by the
// document key; there is no field-level merge.
type Store interface {
	// GetAll returns every document in the collection.
	GetAll(ctx context.Context, collection string) ([]Document, error)
	// Set writes the document under the given key, replacing any existing
	// document with that key.
	Set(ctx context.Context, collection, key string, fields json.RawMessage) error
	// Delete removes the document with the given key. Deleting an absent
	// document is not an error.
	Delete(ctx context.Context, collection, key string) error
	// AllocateKey returns a fresh key for the collection.
	AllocateKey(collection string) string
}
