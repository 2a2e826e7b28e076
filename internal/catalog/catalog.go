package catalog

import (
	"sync"

	"happyafrica/internal/model"
)

// Catalog is the ordered in-memory video list, newest first.
// Pagination resolves on its own goroutine, so access is mutex guarded.
type Catalog struct {
	mu     sync.RWMutex
	videos []model.Video
}

// New returns a catalog holding a copy of seed.
func New(seed []model.Video) *Catalog {
	videos := make([]model.Video, len(seed))
	copy(videos, seed)
	return &Catalog{videos: videos}
}

// Inject inserts v at the front. Callers are trusted: no validation, no dedup.
func (c *Catalog) Inject(v model.Video) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.videos = append([]model.Video{v}, c.videos...)
}

// Snapshot returns a copy of the catalog in order.
func (c *Catalog) Snapshot() []model.Video {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]model.Video, len(c.videos))
	copy(out, c.videos)
	return out
}

// FirstAd returns the first sponsored video in catalog order.
func (c *Catalog) FirstAd() (model.Video, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, v := range c.videos {
		if v.IsAd {
			return v, true
		}
	}
	return model.Video{}, false
}

// Find returns the first video with the given id.
func (c *Catalog) Find(id string) (model.Video, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, v := range c.videos {
		if v.ID == id {
			return v, true
		}
	}
	return model.Video{}, false
}

func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.videos)
}
