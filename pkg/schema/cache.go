package schema

import (
	"container/list"
	"reflect"
	"sync"
)

type descriptor struct {
	fields []Field
	err    error
}

type cacheEntry struct {
	key   reflect.Type
	value descriptor
}

// descriptorCache is a thread-safe LRU of parsed types.
// When the cache reaches its capacity, the least recently used type is evicted.
type descriptorCache struct {
	capacity int
	items    map[reflect.Type]*list.Element
	eviction *list.List
	mu       sync.Mutex
}

func newDescriptorCache(capacity int) *descriptorCache {
	if capacity <= 0 {
		panic("descriptor cache capacity must be positive")
	}
	return &descriptorCache{
		capacity: capacity,
		items:    make(map[reflect.Type]*list.Element),
		eviction: list.New(),
	}
}

func (c *descriptorCache) Get(key reflect.Type) (descriptor, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		c.eviction.MoveToFront(elem)
		return elem.Value.(*cacheEntry).value, true
	}
	return descriptor{}, false
}

func (c *descriptorCache) Put(key reflect.Type, value descriptor) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		c.eviction.MoveToFront(elem)
		elem.Value.(*cacheEntry).value = value
		return
	}

	c.items[key] = c.eviction.PushFront(&cacheEntry{key: key, value: value})

	if c.eviction.Len() > c.capacity {
		if oldest := c.eviction.Back(); oldest != nil {
			c.eviction.Remove(oldest)
			delete(c.items, oldest.Value.(*cacheEntry).key)
		}
	}
}

func (c *descriptorCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.eviction.Len()
}

func (c *descriptorCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make(map[reflect.Type]*list.Element)
	c.eviction.Init()
}
