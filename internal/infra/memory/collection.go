package memory

import (
	"sync"

	"pro-video-services/internal/infra"

	"github.com/google/uuid"
)

// Collection is an insertion-ordered, mutex-guarded record set keyed by UUID.
// Items are cloned on the way in and out so callers never alias stored state.
type Collection[T any] struct {
	mu    sync.RWMutex
	items []T
	index map[uuid.UUID]int
	key   func(T) uuid.UUID
	clone func(T) T
	label string
}

func NewCollection[T any](label string, key func(T) uuid.UUID, clone func(T) T) *Collection[T] {
	return &Collection[T]{
		index: make(map[uuid.UUID]int),
		key:   key,
		clone: clone,
		label: label,
	}
}

func (c *Collection[T]) Append(item T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.key(item)
	if _, dup := c.index[id]; dup {
		return infra.NewRepoErr(infra.KindDuplicateKey, c.label+" already exists")
	}
	c.index[id] = len(c.items)
	c.items = append(c.items, c.clone(item))
	return nil
}

// Filter returns clones of every item accepted by match, in insertion order.
// A nil match accepts everything.
func (c *Collection[T]) Filter(match func(T) bool) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, 0, len(c.items))
	for _, item := range c.items {
		if match == nil || match(item) {
			out = append(out, c.clone(item))
		}
	}
	return out
}

// First returns the earliest inserted item accepted by match.
func (c *Collection[T]) First(match func(T) bool) (T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, item := range c.items {
		if match(item) {
			return c.clone(item), nil
		}
	}
	var zero T
	return zero, infra.NewRepoErr(infra.KindNotFound, c.label+" not found")
}

func (c *Collection[T]) Get(id uuid.UUID) (T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	i, ok := c.index[id]
	if !ok {
		var zero T
		return zero, infra.NewRepoErr(infra.KindNotFound, c.label+" not found")
	}
	return c.clone(c.items[i]), nil
}

// Update runs fn on a copy of the item and stores the copy only when fn succeeds.
func (c *Collection[T]) Update(id uuid.UUID, fn func(T) error) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	i, ok := c.index[id]
	if !ok {
		return zero, infra.NewRepoErr(infra.KindNotFound, c.label+" not found")
	}
	next := c.clone(c.items[i])
	if err := fn(next); err != nil {
		return zero, err
	}
	c.items[i] = next
	return c.clone(next), nil
}

func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
