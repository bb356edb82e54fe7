// Package store provides durable storage for visitor preferences.
package store

import (
	"errors"
	"time"
)

// ErrNotFound is returned when a preference is not stored.
var ErrNotFound = errors.New("preference not found")

// Preference is a single stored preference of a visitor.
type Preference struct {
	Visitor   string    `db:"visitor"`
	Key       string    `db:"key"`
	Value     string    `db:"value"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// RWLocker is the subset of sync.RWMutex used by the store.
type RWLocker interface {
	RLock()
	RUnlock()
	Lock()
	Unlock()
}

// noopLocker is used where the database serializes writes itself.
type noopLocker struct{}

func (noopLocker) RLock()   {}
func (noopLocker) RUnlock() {}
func (noopLocker) Lock()    {}
func (noopLocker) Unlock()  {}
