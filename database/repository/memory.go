package repository

import "sync"

// memCollection is a mutex-guarded id-keyed table backing the fallback path.
type memCollection[T any] struct {
	mu    sync.RWMutex
	items map[string]T
}

func newMemCollection[T any]() *memCollection[T] {
	return &memCollection[T]{items: make(map[string]T)}
}

func (c *memCollection[T]) get(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.items[id]
	return v, ok
}

func (c *memCollection[T]) put(id string, v T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[id] = v
}

func (c *memCollection[T]) remove(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.items[id]; !ok {
		return false
	}
	delete(c.items, id)
	return true
}

func (c *memCollection[T]) all() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, 0, len(c.items))
	for _, v := range c.items {
		out = append(out, v)
	}
	return out
}
