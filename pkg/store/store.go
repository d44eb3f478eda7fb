// Package store provides the durable string-keyed storage the session layer
// persists its state into — the equivalent of a browser's localStorage.
package store

import "errors"

// ErrNotFound is returned when a key has no value.
var ErrNotFound = errors.New("store: key not found")

// Store is a flat key-value store. Values survive for the lifetime of the
// backend (process, file or Redis database); there is no expiry and no
// cross-process locking — last writer wins.
type Store interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Delete(key string) error
}
