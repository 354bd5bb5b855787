package memory

import (
	"container/list"
	"sync"
	"time"
)

type entry[V any] struct {
	key       string
	value     V
	expiresAt time.Time
}

// LRUCacheTTL — потокобезопасный LRU-кэш с TTL.
// Значения хранятся и отдаются копиями (через clone), если clone задан.
type LRUCacheTTL[V any] struct {
	name     string
	capacity int
	ttl      time.Duration
	clone    func(V) V

	ll    *list.List
	index map[string]*list.Element

	mu sync.Mutex
}

// NewLRUCacheTTL — name используется как метка метрик (cache="name"). ttl <= 0 — без TTL.
func NewLRUCacheTTL[V any](name string, capacity int, ttl time.Duration, clone func(V) V) *LRUCacheTTL[V] {
	if capacity <= 0 {
		capacity = 1
	}
	if clone == nil {
		clone = func(v V) V { return v }
	}
	return &LRUCacheTTL[V]{
		name:     name,
		capacity: capacity,
		ttl:      ttl,
		clone:    clone,
		ll:       list.New(),
		index:    make(map[string]*list.Element),
	}
}

// Get — (копия, true) при попадании; скользящий TTL продлевается.
func (c *LRUCacheTTL[V]) Get(key string) (V, bool) {
	var zero V
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.index[key]
	if !ok {
		c.countOp("miss")
		return zero, false
	}
	ent := elem.Value.(*entry[V])
	if c.isExpired(ent, now) {
		c.countOp("expired")
		c.removeElement(elem)
		c.reportSize()
		return zero, false
	}
	c.ll.MoveToFront(elem)

	if c.ttl > 0 {
		ent.expiresAt = c.expiryFrom(now)
	}

	c.countOp("hit")
	return c.clone(ent.value), true
}

// Set — сохранить/обновить значение.
func (c *LRUCacheTTL[V]) Set(key string, value V) {
	if key == "" {
		return
	}
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.index[key]; ok {
		ent := elem.Value.(*entry[V])
		ent.value = c.clone(value)
		ent.expiresAt = c.expiryFrom(now)
		c.ll.MoveToFront(elem)
		return
	}

	c.pruneExpiredFromBack(now)

	elem := c.ll.PushFront(&entry[V]{
		key:       key,
		value:     c.clone(value),
		expiresAt: c.expiryFrom(now),
	})
	c.index[key] = elem
	c.reportSize()

	if c.ll.Len() > c.capacity {
		c.evictLRU()
	}
}

// Delete — удалить ключ, если он есть.
func (c *LRUCacheTTL[V]) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.index[key]; ok {
		c.removeElement(elem)
		c.reportSize()
	}
}

// Purge — полная очистка.
func (c *LRUCacheTTL[V]) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.ll.Init()
	c.index = make(map[string]*list.Element)
	c.countOp("purged")
	c.reportSize()
}

// Len — текущее число элементов (включая ещё не вычищенные просроченные).
func (c *LRUCacheTTL[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ll.Len()
}
