package recommend

import (
	"sync"

	"happyafrica/internal/model"
)

// Profile maps content categories to the user's inferred affinity.
// It lives for one engine (one session) and is never persisted.
type Profile struct {
	mu     sync.RWMutex
	scores map[model.Category]float64
}

// NewProfile seeds every organic category with prior; ads start at zero.
func NewProfile(prior float64) *Profile {
	scores := make(map[model.Category]float64, len(model.KnownCategories())+1)
	for _, c := range model.KnownCategories() {
		scores[c] = prior
	}
	scores[model.CategoryAd] = 0
	return &Profile{scores: scores}
}

// Get returns the affinity for c, 0 when unknown.
func (p *Profile) Get(c model.Category) float64 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.scores[c]
}

// Add raises the affinity for c by delta and returns the new value.
func (p *Profile) Add(c model.Category, delta float64) float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.scores[c] += delta
	return p.scores[c]
}

// Decay lowers the affinity for c by delta, never below zero.
func (p *Profile) Decay(c model.Category, delta float64) float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	v := p.scores[c] - delta
	if v < 0 {
		v = 0
	}
	p.scores[c] = v
	return v
}

// Snapshot returns a copy of all affinities.
func (p *Profile) Snapshot() map[model.Category]float64 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make(map[model.Category]float64, len(p.scores))
	for k, v := range p.scores {
		out[k] = v
	}
	return out
}
