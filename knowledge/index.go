package knowledge

import (
	"sort"

	"github.com/voyago/tripagent/errors"
	"gonum.org/v1/gonum/floats"
)

// FlatL2Index is an exact nearest-neighbor index over flat (unindexed)
// in-memory storage using Euclidean distance. Vectors are append-only and
// keep their insertion position, so position i in the index always resolves
// to the i-th added vector.
type FlatL2Index struct {
	dim     int
	vectors [][]float64
}

func NewFlatL2Index(dim int) *FlatL2Index {
	return &FlatL2Index{dim: dim}
}

// Add bulk-appends vectors to the index.
func (idx *FlatL2Index) Add(vectors [][]float64) error {
	for i, vector := range vectors {
		if len(vector) != idx.dim {
			return errors.Errorf("vector %d has dimension %d, index expects %d", i, len(vector), idx.dim)
		}
	}
	idx.vectors = append(idx.vectors, vectors...)
	return nil
}

// Search returns the positions of the k vectors closest to query and their
// distances, ascending by distance. k larger than the corpus is clamped
// rather than padded.
func (idx *FlatL2Index) Search(query []float64, k int) (distances []float64, positions []int, err error) {
	if len(query) != idx.dim {
		return nil, nil, errors.Errorf("query has dimension %d, index expects %d", len(query), idx.dim)
	}
	if k <= 0 {
		return nil, nil, errors.Errorf("k must be positive, got %d", k)
	}
	if k > len(idx.vectors) {
		k = len(idx.vectors)
	}

	positions = make([]int, len(idx.vectors))
	all := make([]float64, len(idx.vectors))
	for i, vector := range idx.vectors {
		positions[i] = i
		all[i] = floats.Distance(query, vector, 2)
	}

	sort.SliceStable(positions, func(a, b int) bool {
		return all[positions[a]] < all[positions[b]]
	})

	positions = positions[:k]
	distances = make([]float64, k)
	for i, pos := range positions {
		distances[i] = all[pos]
	}

	return distances, positions, nil
}

// Len reports the number of indexed vectors.
func (idx *FlatL2Index) Len() int {
	return len(idx.vectors)
}

// Dim reports the fixed vector length the index was built for.
func (idx *FlatL2Index) Dim() int {
	return idx.dim
}
