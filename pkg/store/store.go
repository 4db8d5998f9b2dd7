// Package store persists serialized documents for the gallery server and
// CLI tooling. The serialization engine itself has no storage; it consumes
// and produces bytes, and stores move them.
package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a named document does not exist.
var ErrNotFound = errors.New("store: document not found")

// Store reads and writes serialized documents by name. Names are flat
// identifiers without path separators; implementations map them onto
// their backend's keyspace.
type Store interface {
	// Load returns the raw document payload.
	Load(ctx context.Context, name string) ([]byte, error)

	// Save writes the payload, replacing any previous version.
	Save(ctx context.Context, name string, payload []byte) error

	// List returns all document names in sorted order.
	List(ctx context.Context) ([]string, error)
}
