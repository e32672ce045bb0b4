// Package classify assigns an inbound question to the department category
// whose sheet detail text is most similar to the question.
package classify

import (
	"context"
	"log"
	"math"

	"github.com/podolabs/frontdesk/internal/domain"
)

const (
	// DefaultThreshold is the minimum cosine similarity for a confident
	// classification; anything below falls back to the catch-all category.
	DefaultThreshold = 0.82

	// tieEpsilon bounds how close two scores must be to count as tied.
	tieEpsilon = 1e-9
)

// Embedder turns the question text into a vector.
type Embedder interface {
	GenerateEmbedding(ctx context.Context, text string) ([]float32, error)
}

// RowSource provides the current department rows.
type RowSource interface {
	Rows() []domain.DepartmentRow
}

// Result is a classification outcome. Matched is false when the pipeline
// fell back to the catch-all category, either because no row cleared the
// threshold or because no comparison was possible at all.
type Result struct {
	Category domain.Category
	Score    float64
	Matched  bool
}

// Classifier scores a question against every department row's detail vector.
type Classifier struct {
	embedder  Embedder
	rows      RowSource
	threshold float64
}

// NewClassifier creates a Classifier. A non-positive threshold selects
// DefaultThreshold.
func NewClassifier(embedder Embedder, rows RowSource, threshold float64) *Classifier {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Classifier{embedder: embedder, rows: rows, threshold: threshold}
}

type candidate struct {
	category domain.Category
	score    float64
}

// Classify embeds the question, scores it against every row carrying a
// detail vector, and returns the best-scoring category at or above the
// threshold, refined by the originating channel's site token. Rows without
// vectors (including the catch-all row) never participate. Any failure on
// the way degrades to the catch-all category rather than an error; a
// question always gets routed somewhere.
func (c *Classifier) Classify(ctx context.Context, text, channelName string) Result {
	rows := c.rows.Rows()
	if len(rows) == 0 {
		return Result{Category: domain.CatchAll}
	}

	vec, err := c.embedder.GenerateEmbedding(ctx, text)
	if err != nil {
		log.Printf("classify: question embedding failed: %v", err)
		return Result{Category: domain.CatchAll}
	}

	var candidates []candidate
	for _, row := range rows {
		if !row.HasVector() {
			continue
		}
		score := domain.CosineSimilarity(vec, row.DetailVector)
		if score < c.threshold {
			continue
		}
		candidates = append(candidates, candidate{
			category: domain.ParseCategory(row.Category),
			score:    score,
		})
	}
	if len(candidates) == 0 {
		return Result{Category: domain.CatchAll}
	}

	best := pickBest(candidates, channelName)
	return Result{
		Category: best.category.RefineByLocation(channelName),
		Score:    best.score,
		Matched:  true,
	}
}

// pickBest returns the highest-scoring candidate. When several candidates
// are tied within tieEpsilon of the top score, a candidate whose location
// matches the channel's site token wins; otherwise the earliest tied
// candidate in sheet order does, keeping the outcome deterministic across
// runs with identical inputs.
func pickBest(candidates []candidate, channelName string) candidate {
	top := candidates[0]
	for _, cand := range candidates[1:] {
		if cand.score > top.score {
			top = cand
		}
	}

	var tied []candidate
	for _, cand := range candidates {
		if math.Abs(top.score-cand.score) <= tieEpsilon {
			tied = append(tied, cand)
		}
	}
	if len(tied) == 1 {
		return tied[0]
	}

	if loc, ok := domain.LocationFromChannel(channelName); ok {
		for _, cand := range tied {
			if cand.category.Location == loc {
				return cand
			}
		}
	}
	return tied[0]
}
