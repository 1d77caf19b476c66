package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hupe1980/facet/record"
)

func TestRandomTree_Deterministic(t *testing.T) {
	rng := NewRNG(4711)
	a := rng.RandomTree(TreeConfig{Depth: 2, Fanout: 3})
	rng.Reset()
	b := rng.RandomTree(TreeConfig{Depth: 2, Fanout: 3})

	assert.Equal(t, a.Len(), b.Len())
	assert.Positive(t, a.Len())
	assert.Equal(t, int64(4711), rng.Seed())
}

func TestRandomTree_Depth(t *testing.T) {
	tree := NewRNG(1).RandomTree(TreeConfig{Depth: 1, Fanout: 2})

	maxDepth := 0
	record.Walk(tree, func(_ record.Record, depth int) bool {
		maxDepth = max(maxDepth, depth)
		return true
	})
	assert.Equal(t, 1, maxDepth)
}
