package knowledge_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/voyago/tripagent/knowledge"
)

func TestFlatL2Index_SearchOrdering(t *testing.T) {
	idx := knowledge.NewFlatL2Index(3)

	require.NoError(t, idx.Add([][]float64{
		{3, 0, 0}, // position 0, distance 3
		{1, 0, 0}, // position 1, distance 1
		{2, 0, 0}, // position 2, distance 2
	}))
	require.Equal(t, 3, idx.Len())

	distances, positions, err := idx.Search([]float64{0, 0, 0}, 3)
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2, 0}, positions)
	assert.Equal(t, []float64{1, 2, 3}, distances)
}

func TestFlatL2Index_KExceedsCorpus(t *testing.T) {
	idx := knowledge.NewFlatL2Index(2)
	require.NoError(t, idx.Add([][]float64{{1, 1}, {2, 2}}))

	distances, positions, err := idx.Search([]float64{0, 0}, 5)
	require.NoError(t, err)

	// k is clamped, never padded.
	assert.Len(t, positions, 2)
	assert.Len(t, distances, 2)
	assert.True(t, distances[0] <= distances[1])
}

func TestFlatL2Index_Empty(t *testing.T) {
	idx := knowledge.NewFlatL2Index(2)

	distances, positions, err := idx.Search([]float64{0, 0}, 5)
	require.NoError(t, err)
	assert.Empty(t, positions)
	assert.Empty(t, distances)
}

func TestFlatL2Index_DimensionMismatch(t *testing.T) {
	idx := knowledge.NewFlatL2Index(3)

	err := idx.Add([][]float64{{1, 2}})
	assert.Error(t, err)

	require.NoError(t, idx.Add([][]float64{{1, 2, 3}}))
	_, _, err = idx.Search([]float64{1, 2}, 1)
	assert.Error(t, err)

	_, _, err = idx.Search([]float64{1, 2, 3}, 0)
	assert.Error(t, err)
}
