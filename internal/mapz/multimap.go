// Package mapz provides the multimap used to index one side of a join.
package mapz

// MultiMap maps a key to every value added under it.  Values for a key are
// kept in the order they were added.
type MultiMap[K comparable, V any] struct {
	items map[K][]V
	count int
}

// NewMultiMap initializes a new MultiMap.
func NewMultiMap[K comparable, V any]() *MultiMap[K, V] {
	return &MultiMap[K, V]{items: map[K][]V{}}
}

// Add appends the value to the values stored at key.  Adding the same value
// twice stores it twice.
func (mm *MultiMap[K, V]) Add(key K, value V) {
	mm.items[key] = append(mm.items[key], value)
	mm.count++
}

// Has returns true if at least one value was added under key.
func (mm *MultiMap[K, V]) Has(key K) bool {
	_, ok := mm.items[key]
	return ok
}

// Get returns the values stored under key, in insertion order, and whether
// the key existed.  The returned slice must not be modified.
func (mm *MultiMap[K, V]) Get(key K) ([]V, bool) {
	found, ok := mm.items[key]
	return found, ok
}

// Len is the number of distinct keys.
func (mm *MultiMap[K, V]) Len() int { return len(mm.items) }

// Count is the number of values across all keys.
func (mm *MultiMap[K, V]) Count() int { return mm.count }
