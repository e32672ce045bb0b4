// Package dedup suppresses duplicate deliveries of the same Slack event.
// Slack retries event callbacks on slow acknowledgement, so the same message
// can arrive more than once.
package dedup

import (
	"sync"

	"github.com/podolabs/frontdesk/internal/domain"
)

// Guard remembers which messages have already been processed. Safe for
// concurrent use.
type Guard struct {
	mu   sync.Mutex
	seen map[domain.DedupKey]struct{}
}

// NewGuard creates an empty Guard.
func NewGuard() *Guard {
	return &Guard{seen: make(map[domain.DedupKey]struct{})}
}

// CheckAndMark records the key and reports whether this is its first
// appearance. Exactly one caller per key observes true.
func (g *Guard) CheckAndMark(key domain.DedupKey) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.seen[key]; ok {
		return false
	}
	g.seen[key] = struct{}{}
	return true
}

// Seen reports whether the key has been marked, without marking it.
func (g *Guard) Seen(key domain.DedupKey) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	_, ok := g.seen[key]
	return ok
}

// Len returns the number of keys recorded.
func (g *Guard) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.seen)
}
