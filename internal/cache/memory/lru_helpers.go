package memory

import (
	"container/list"
	"time"

	"github.com/Gunvolt24/storefront/pkg/metrics"
)

// evictLRU — удаляет наименее используемый элемент.
func (c *LRUCacheTTL[V]) evictLRU() {
	if back := c.ll.Back(); back != nil {
		c.removeElement(back)
		c.countOp("evicted")
		c.reportSize()
	}
}

// removeElement — удаляет элемент из списка и индекса.
func (c *LRUCacheTTL[V]) removeElement(elem *list.Element) {
	if elem == nil {
		return
	}
	if ent, ok := elem.Value.(*entry[V]); ok {
		delete(c.index, ent.key)
	}
	c.ll.Remove(elem)
}

// isExpired — проверяет истечение TTL.
func (c *LRUCacheTTL[V]) isExpired(ent *entry[V], now time.Time) bool {
	if c.ttl <= 0 {
		return false
	}
	return now.After(ent.expiresAt)
}

// expiryFrom — вычисляет момент истечения для текущего времени.
func (c *LRUCacheTTL[V]) expiryFrom(now time.Time) time.Time {
	if c.ttl <= 0 {
		return time.Time{}
	}
	return now.Add(c.ttl)
}

// pruneExpiredFromBack — удаляет элементы с истекшим TTL из хвоста до первого актуального.
func (c *LRUCacheTTL[V]) pruneExpiredFromBack(now time.Time) {
	if c.ttl <= 0 {
		return
	}
	for {
		back := c.ll.Back()
		if back == nil {
			return
		}
		ent, ok := back.Value.(*entry[V])
		if !ok {
			c.removeElement(back)
			c.reportSize()
			continue
		}
		if now.After(ent.expiresAt) {
			c.removeElement(back)
			c.countOp("expired")
			c.reportSize()
			continue
		}
		return
	}
}

func (c *LRUCacheTTL[V]) countOp(op string) {
	metrics.CacheOps.WithLabelValues(c.name, op).Inc()
}

func (c *LRUCacheTTL[V]) reportSize() {
	metrics.CacheSize.WithLabelValues(c.name).Set(float64(c.ll.Len()))
}
