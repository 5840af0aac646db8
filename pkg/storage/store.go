// Package storage persists the mindmap document under fixed keys of a
// string-keyed store.
package storage

import "errors"

// Keys under which the persistence record and its version are kept.
const (
	DataKey    = "mindmap-data"
	VersionKey = "mindmap-version"
)

// ErrNoSavedState is returned when the store holds no document.
var ErrNoSavedState = errors.New("no saved state")

// Store is a string-keyed text store.
type Store interface {
	// Get returns the value for key and whether it was present.
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Delete(key string) error
	Close() error
}
