package lists

import (
	"errors"
	"fmt"
)

// ErrCapacity indicates a non-positive LRU capacity.
var ErrCapacity = errors.New("lists: capacity must be positive")

type entry struct {
	key, val   int
	prev, next *entry
}

// LRUCache is a fixed-capacity key/value cache that evicts the least
// recently used key. Get and Put run in O(1).
//
// Entries live on a doubly linked list between two sentinels, most recent
// right after head; the map gives direct access to each entry.
type LRUCache struct {
	capacity   int
	items      map[int]*entry
	head, tail *entry
}

// NewLRUCache returns an empty cache holding at most capacity keys.
func NewLRUCache(capacity int) (*LRUCache, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrCapacity, capacity)
	}
	c := &LRUCache{
		capacity: capacity,
		items:    make(map[int]*entry, capacity),
		head:     &entry{},
		tail:     &entry{},
	}
	c.head.next = c.tail
	c.tail.prev = c.head

	return c, nil
}

func (c *LRUCache) unlink(e *entry) {
	e.prev.next = e.next
	e.next.prev = e.prev
}

func (c *LRUCache) pushFront(e *entry) {
	e.prev = c.head
	e.next = c.head.next
	c.head.next.prev = e
	c.head.next = e
}

// Get returns the value for key and marks it most recently used, or -1.
func (c *LRUCache) Get(key int) int {
	e, ok := c.items[key]
	if !ok {
		return -1
	}
	c.unlink(e)
	c.pushFront(e)

	return e.val
}

// Put stores key=val, evicting the least recently used key when full.
func (c *LRUCache) Put(key, val int) {
	if e, ok := c.items[key]; ok {
		e.val = val
		c.unlink(e)
		c.pushFront(e)
		return
	}
	if len(c.items) == c.capacity {
		lru := c.tail.prev
		c.unlink(lru)
		delete(c.items, lru.key)
	}
	e := &entry{key: key, val: val}
	c.items[key] = e
	c.pushFront(e)
}

// Len returns the number of cached keys.
func (c *LRUCache) Len() int { return len(c.items) }

// Keys returns the cached keys from most to least recently used.
func (c *LRUCache) Keys() []int {
	out := make([]int, 0, len(c.items))
	for e := c.head.next; e != c.tail; e = e.next {
		out = append(out, e.key)
	}

	return out
}
