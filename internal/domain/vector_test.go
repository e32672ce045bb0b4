package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCosineSimilarity_SelfIsOne(t *testing.T) {
	tests := []struct {
		name string
		vec  []float32
	}{
		{"unit axis", []float32{1, 0, 0}},
		{"mixed values", []float32{0.3, -1.2, 4.5, 0.01}},
		{"single element", []float32{7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, 1.0, CosineSimilarity(tt.vec, tt.vec), 1e-9)
		})
	}
}

func TestCosineSimilarity_EmptyVector(t *testing.T) {
	assert.Equal(t, 0.0, CosineSimilarity([]float32{1, 2}, nil))
	assert.Equal(t, 0.0, CosineSimilarity(nil, []float32{1, 2}))
	assert.Equal(t, 0.0, CosineSimilarity(nil, nil))
}

func TestCosineSimilarity_ZeroMagnitude(t *testing.T) {
	assert.Equal(t, 0.0, CosineSimilarity([]float32{0, 0}, []float32{1, 1}))
}

func TestCosineSimilarity_Orthogonal(t *testing.T) {
	assert.InDelta(t, 0.0, CosineSimilarity([]float32{1, 0}, []float32{0, 1}), 1e-9)
}

func TestCosineSimilarity_Opposite(t *testing.T) {
	assert.InDelta(t, -1.0, CosineSimilarity([]float32{1, 2}, []float32{-1, -2}), 1e-9)
}
