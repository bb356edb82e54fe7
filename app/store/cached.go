package store

import (
	"context"
	"fmt"

	"github.com/go-pkgz/lcw/v2"
)

// Interface is the preference storage wrapped by Cached.
type Interface interface {
	Get(ctx context.Context, visitor, key string) (string, error)
	Set(ctx context.Context, visitor, key, value string) error
	Delete(ctx context.Context, visitor, key string) error
	Close() error
}

// Cached wraps a store Interface with a loading cache and satisfies the Interface itself.
// Cache is populated on reads via loader function, invalidated on writes.
// Misses, ErrNotFound included, are not cached.
type Cached struct {
	store Interface
	cache lcw.LoadingCache[string]
}

// NewCached creates a new cached store wrapper.
// maxKeys sets the maximum number of entries in the cache.
func NewCached(store Interface, maxKeys int) (*Cached, error) {
	cache, err := lcw.NewLruCache(lcw.NewOpts[string]().MaxKeys(maxKeys))
	if err != nil {
		return nil, fmt.Errorf("failed to create cache: %w", err)
	}
	return &Cached{store: store, cache: cache}, nil
}

// Get retrieves the preference, using cache with load-through.
func (c *Cached) Get(ctx context.Context, visitor, key string) (string, error) {
	val, err := c.cache.Get(cacheKey(visitor, key), func() (string, error) {
		v, loadErr := c.store.Get(ctx, visitor, key)
		if loadErr != nil {
			return "", fmt.Errorf("load from store: %w", loadErr)
		}
		return v, nil
	})
	if err != nil {
		return "", fmt.Errorf("cache get: %w", err)
	}
	return val, nil
}

// Set stores a preference and invalidates the cache entry.
func (c *Cached) Set(ctx context.Context, visitor, key, value string) error {
	if err := c.store.Set(ctx, visitor, key, value); err != nil {
		return fmt.Errorf("store set: %w", err)
	}
	ck := cacheKey(visitor, key)
	c.cache.Invalidate(func(k string) bool { return k == ck })
	return nil
}

// Delete removes a preference and invalidates the cache entry.
func (c *Cached) Delete(ctx context.Context, visitor, key string) error {
	// invalidate regardless of error - key might have been cached
	ck := cacheKey(visitor, key)
	c.cache.Invalidate(func(k string) bool { return k == ck })
	if err := c.store.Delete(ctx, visitor, key); err != nil {
		return fmt.Errorf("store delete: %w", err)
	}
	return nil
}

// Close closes the cache and underlying store.
func (c *Cached) Close() error {
	_ = c.cache.Close()
	if err := c.store.Close(); err != nil {
		return fmt.Errorf("store close: %w", err)
	}
	return nil
}

// Stats returns cache statistics.
func (c *Cached) Stats() lcw.CacheStat {
	return c.cache.Stat()
}

// cacheKey joins visitor and key, the NUL separator can't appear in either.
func cacheKey(visitor, key string) string {
	return visitor + "\x00" + key
}
