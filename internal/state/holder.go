// Package state holds the current default-city bundle and insight in
// memory. Nothing is persisted: the session's data lives and dies with the
// process.
package state

import (
	"sync"

	"github.com/kunaal-ai/advanced-weather-panchang/internal/models"
)

// Holder owns one bundle at a time. Replacement is wholesale: a fetch
// cycle produces a complete bundle and swaps it in under the lock, so a
// reader can never observe a forecast from one cycle next to a snapshot
// from another. Concurrent replacements are last-write-wins.
type Holder struct {
	mu      sync.RWMutex
	bundle  models.Bundle
	insight models.Insight
}

// NewHolder seeds the holder with the static default bundle and insight,
// matching what a fresh session shows before any live data arrives.
func NewHolder() *Holder {
	return &Holder{
		bundle:  models.DefaultBundle(),
		insight: models.DefaultInsight(),
	}
}

// Replace installs a new bundle.
func (h *Holder) Replace(b models.Bundle) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.bundle = b
}

// Current returns the held bundle.
func (h *Holder) Current() models.Bundle {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.bundle
}

// SetInsight installs a new insight; its lifecycle is independent of the
// bundle's.
func (h *Holder) SetInsight(i models.Insight) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.insight = i
}

// Insight returns the held insight.
func (h *Holder) Insight() models.Insight {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.insight
}
