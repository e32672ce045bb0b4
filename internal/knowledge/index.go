// Package knowledge holds the in-memory question/answer index searched by
// vector similarity. Entries are loaded once at startup (or on an explicit
// reload) and scanned brute-force; the corpus is a few hundred rows, so a
// linear scan beats maintaining an ANN structure.
package knowledge

import (
	"context"
	"log"
	"sort"
	"sync"

	"github.com/podolabs/frontdesk/internal/domain"
)

const (
	// DefaultTopN is the maximum number of matches a search returns
	DefaultTopN = 3
	// DefaultMinSimilarity gates the best match; below it nothing surfaces
	DefaultMinSimilarity = 0.82
)

// Embedder turns text into a vector. May fail; a failed embedding degrades
// the search to an empty result.
type Embedder interface {
	GenerateEmbedding(ctx context.Context, text string) ([]float32, error)
}

// Source supplies knowledge entries in bulk.
type Source interface {
	FetchEntries(ctx context.Context) ([]domain.KnowledgeEntry, error)
}

// Index is the searchable knowledge base. Read-mostly after startup; the
// mutex only matters during an explicit reload.
type Index struct {
	mu       sync.RWMutex
	embedder Embedder
	entries  []domain.KnowledgeEntry
}

// NewIndex creates an empty Index backed by the given embedder.
func NewIndex(embedder Embedder) *Index {
	return &Index{embedder: embedder}
}

// Load replaces the index contents from the source. A fetch failure leaves
// the index empty and logs a warning rather than crashing the process.
// Returns the number of entries loaded.
func (i *Index) Load(ctx context.Context, src Source) int {
	entries, err := src.FetchEntries(ctx)
	if err != nil {
		log.Printf("knowledge: load failed, index left empty: %v", err)
		entries = nil
	}

	i.mu.Lock()
	i.entries = entries
	i.mu.Unlock()

	log.Printf("knowledge: loaded %d entries", len(entries))
	return len(entries)
}

// Len returns the number of loaded entries.
func (i *Index) Len() int {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return len(i.entries)
}

// Search returns up to topN entries scoring at least minSim against the
// query, best first, with vectors stripped. The gate is all-or-nothing on
// the top hit: if even the best entry scores below minSim, nothing is
// returned, since a low-confidence match must not surface at all. Ties keep
// original load order.
func (i *Index) Search(ctx context.Context, query string, topN int, minSim float64) []domain.Match {
	if topN <= 0 {
		topN = DefaultTopN
	}
	if minSim <= 0 {
		minSim = DefaultMinSimilarity
	}

	i.mu.RLock()
	entries := i.entries
	i.mu.RUnlock()

	if len(entries) == 0 {
		return nil
	}

	queryVec, err := i.embedder.GenerateEmbedding(ctx, query)
	if err != nil || len(queryVec) == 0 {
		log.Printf("knowledge: query embedding unavailable: %v", err)
		return nil
	}

	scored := make([]domain.Match, 0, len(entries))
	for _, entry := range entries {
		scored = append(scored, domain.Match{
			Question: entry.Question,
			Answer:   entry.Answer,
			Score:    domain.CosineSimilarity(queryVec, entry.Vector),
		})
	}

	sort.SliceStable(scored, func(a, b int) bool {
		return scored[a].Score > scored[b].Score
	})

	if scored[0].Score < minSim {
		return nil
	}

	results := make([]domain.Match, 0, topN)
	for _, m := range scored {
		if m.Score < minSim || len(results) == topN {
			break
		}
		results = append(results, m)
	}
	return results
}
