package cache

// entry is a cached value linked into the recency ring.
type entry[K comparable, V any] struct {
	key        K
	value      V
	prev, next *entry[K, V]
}

// ring orders entries by recency around a sentinel: root.next is the most
// recently used entry and root.prev the least. An empty ring points root
// at itself, so linking never tests for nil.
//
// ring is not safe for concurrent use; Cache holds its mutex around it.
type ring[K comparable, V any] struct {
	root entry[K, V]
}

func (r *ring[K, V]) init() {
	r.root.next = &r.root
	r.root.prev = &r.root
}

// pushFront links e as the most recently used entry.
func (r *ring[K, V]) pushFront(e *entry[K, V]) {
	e.prev = &r.root
	e.next = r.root.next
	r.root.next.prev = e
	r.root.next = e
}

// touch moves a linked entry to the front.
func (r *ring[K, V]) touch(e *entry[K, V]) {
	if r.root.next == e {
		return
	}
	r.unlink(e)
	r.pushFront(e)
}

// oldest returns the least recently used entry, or nil when empty.
func (r *ring[K, V]) oldest() *entry[K, V] {
	if r.root.prev == &r.root {
		return nil
	}
	return r.root.prev
}

func (r *ring[K, V]) unlink(e *entry[K, V]) {
	e.prev.next = e.next
	e.next.prev = e.prev
	e.prev, e.next = nil, nil
}
