package nlp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindBest_TieKeepsEarliestEntry(t *testing.T) {
	req := require.New(t)

	// Given two identical entries
	kb := []Vector{{0, 1, 0}, {1, 1, 0}, {1, 1, 0}}

	// When the query matches both equally
	index, score, ok := FindBest(Vector{1, 1, 0}, kb, 0.2)

	// Then the first declared one wins
	req.True(ok)
	req.Equal(1, index)
	req.InDelta(1.0, score, 1e-9)
}

func TestFindBest_ThresholdBoundary(t *testing.T) {
	req := require.New(t)

	// cos([1,0,0,0], [1,2,2,4]) = 1 / (1 * 5) = 0.2
	query := Vector{1, 0, 0, 0}
	kb := []Vector{{1, 2, 2, 4}}

	index, score, ok := FindBest(query, kb, 0.2)
	req.Equal(0.2, score)
	req.Equal(0, index)
	req.True(ok, "a score equal to the threshold is a match")

	_, score, ok = FindBest(query, kb, 0.200001)
	req.Equal(0.2, score)
	req.False(ok, "a score below the threshold is not a match")
}

func TestFindBest_NoMatchStillReportsScore(t *testing.T) {
	req := require.New(t)

	index, score, ok := FindBest(Vector{1, 0, 0, 0}, []Vector{{1, 2, 2, 4}}, 0.5)
	req.False(ok)
	req.Equal(0, index)
	req.Equal(0.2, score)

	index, score, ok = FindBest(Vector{0, 0, 0, 0}, []Vector{{1, 2, 2, 4}}, 0.2)
	req.False(ok)
	req.Equal(-1, index)
	req.Equal(0.0, score)
}

func TestFindBest_EmptyKnowledgeBase(t *testing.T) {
	req := require.New(t)
	index, score, ok := FindBest(Vector{1}, nil, 0)
	req.False(ok)
	req.Equal(-1, index)
	req.Equal(0.0, score)
}
