package cache

import (
	"sort"
	"sync"

	"github.com/example/storefront-service/internal/domain"
)

type MemoryItemCache struct {
	mu    sync.RWMutex
	store map[int64]domain.Item
}

func NewMemoryItemCache() *MemoryItemCache {
	return &MemoryItemCache{store: make(map[int64]domain.Item)}
}

func (c *MemoryItemCache) Get(id int64) (domain.Item, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	it, ok := c.store[id]
	return it, ok
}

func (c *MemoryItemCache) Set(it domain.Item) {
	c.mu.Lock()
	c.store[it.ID] = it
	c.mu.Unlock()
}

// List возвращает позиции каталога, отсортированные по id; пустая категория — все.
func (c *MemoryItemCache) List(category string) []domain.Item {
	c.mu.RLock()
	items := make([]domain.Item, 0, len(c.store))
	for _, it := range c.store {
		if category != "" && it.Category != category {
			continue
		}
		items = append(items, it)
	}
	c.mu.RUnlock()
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items
}

var _ domain.ItemCache = (*MemoryItemCache)(nil)
