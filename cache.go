package gomaskx

import (
	"reflect"
	"sync"
)

// Cache memoizes descriptor builds per type. It is safe for concurrent use:
// lookups of cached types never block, and racing first builds for the same
// type converge on the instance that wins the store. Entries live until
// explicitly invalidated; the set of distinct masked types is assumed small.
type Cache struct {
	descriptors sync.Map // reflect.Type -> *TypeDescriptor
}

// NewCache returns an empty descriptor cache.
func NewCache() *Cache {
	return &Cache{}
}

// Get returns the descriptor for t, building and storing it on first use.
// A failed build is not cached; a later call retries and fails identically
// unless the type's metadata changed.
func (c *Cache) Get(t reflect.Type) (*TypeDescriptor, error) {
	if v, ok := c.descriptors.Load(t); ok {
		return v.(*TypeDescriptor), nil
	}
	desc, err := buildDescriptor(t)
	if err != nil {
		return nil, err
	}
	actual, _ := c.descriptors.LoadOrStore(t, desc)
	return actual.(*TypeDescriptor), nil
}

// Invalidate removes the entry for t. Invalidating a never-cached type is a no-op.
func (c *Cache) Invalidate(t reflect.Type) {
	c.descriptors.Delete(t)
}

// Clear removes all entries.
func (c *Cache) Clear() {
	c.descriptors.Clear()
}
