package cache

import (
	"sync"

	"github.com/taskdesk/core/internal/domain/entities"
	"github.com/taskdesk/core/internal/ports"
)

// ListingCacheImpl memoizes grouped task listings per requester. A task
// created by one user can appear in another user's listing (boss tasks are
// visible to every clerk), so any mutation drops the whole cache rather than
// a single entry.
type ListingCacheImpl struct {
	mu      sync.RWMutex
	entries map[string]map[string][]*entities.Task
}

// NewListingCache creates an empty listing cache
func NewListingCache() ports.ListingCache {
	return &ListingCacheImpl{
		entries: make(map[string]map[string][]*entities.Task),
	}
}

func (c *ListingCacheImpl) Get(requesterID string) (map[string][]*entities.Task, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	groups, ok := c.entries[requesterID]
	return groups, ok
}

func (c *ListingCacheImpl) Put(requesterID string, groups map[string][]*entities.Task) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[requesterID] = groups
}

func (c *ListingCacheImpl) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]map[string][]*entities.Task)
}
