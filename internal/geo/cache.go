package geo

import (
	"container/list"
	"sync"

	"fan-globe/internal/models"
)

// placeCache is a small thread-safe LRU of remote resolutions. It lives only
// for the process lifetime.
type placeCache struct {
	maxEntries int
	mu         sync.Mutex
	ll         *list.List // front is most recently used
	entries    map[string]*list.Element
}

type cacheEntry struct {
	zip   string
	place models.GeoPlace
}

func newPlaceCache(maxEntries int) *placeCache {
	return &placeCache{
		maxEntries: maxEntries,
		ll:         list.New(),
		entries:    make(map[string]*list.Element),
	}
}

func (c *placeCache) get(zip string) (models.GeoPlace, bool) {
	if c.maxEntries <= 0 {
		return models.GeoPlace{}, false
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.entries[zip]
	if !ok {
		return models.GeoPlace{}, false
	}
	c.ll.MoveToFront(el)
	return el.Value.(*cacheEntry).place, true
}

func (c *placeCache) put(zip string, place models.GeoPlace) {
	if c.maxEntries <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.entries[zip]; ok {
		el.Value.(*cacheEntry).place = place
		c.ll.MoveToFront(el)
		return
	}

	c.entries[zip] = c.ll.PushFront(&cacheEntry{zip: zip, place: place})
	if c.ll.Len() > c.maxEntries {
		oldest := c.ll.Back()
		c.ll.Remove(oldest)
		delete(c.entries, oldest.Value.(*cacheEntry).zip)
	}
}

func (c *placeCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ll.Len()
}
