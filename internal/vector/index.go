// Package vector provides an in-memory flat index with exact nearest-neighbor
// search by squared Euclidean distance.
package vector

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// Match is a single search hit: the insertion position of the stored vector
// and its squared Euclidean distance to the query.
type Match struct {
	Position int
	Distance float64
}

// FlatIndex stores vectors in insertion order and searches them by brute
// force. Position i in the index corresponds to the i-th inserted vector,
// which is the join key back to whatever the vectors were computed from.
// There is no delete or update: the whole index is discarded and rebuilt
// when the underlying corpus changes.
type FlatIndex struct {
	dimensions int
	vectors    [][]float32
	mu         sync.RWMutex
}

// NewFlatIndex creates an empty index for vectors of the given dimension.
func NewFlatIndex(dimensions int) (*FlatIndex, error) {
	if dimensions <= 0 {
		return nil, fmt.Errorf("dimensions must be positive, got %d", dimensions)
	}
	return &FlatIndex{dimensions: dimensions}, nil
}

// Insert appends vectors in order, assigning each the next sequential
// position. All vectors are validated before any is stored, so a dimension
// mismatch inserts nothing.
func (ix *FlatIndex) Insert(_ context.Context, vectors [][]float32) error {
	for i, vec := range vectors {
		if len(vec) != ix.dimensions {
			return fmt.Errorf("vector %d: dimension mismatch: got %d, expected %d", i, len(vec), ix.dimensions)
		}
	}
	ix.mu.Lock()
	defer ix.mu.Unlock()
	for _, vec := range vectors {
		stored := make([]float32, ix.dimensions)
		copy(stored, vec)
		ix.vectors = append(ix.vectors, stored)
	}
	return nil
}

// Search returns up to k stored vectors nearest to query by squared Euclidean
// distance, ascending. Ties are broken by lower insertion position so results
// are deterministic. Fewer than k stored vectors returns all of them; an
// empty index or k <= 0 returns no matches and no error.
func (ix *FlatIndex) Search(_ context.Context, query []float32, k int) ([]Match, error) {
	if len(query) != ix.dimensions {
		return nil, fmt.Errorf("query dimension mismatch: got %d, expected %d", len(query), ix.dimensions)
	}
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	if k <= 0 || len(ix.vectors) == 0 {
		return nil, nil
	}

	matches := make([]Match, len(ix.vectors))
	for i, vec := range ix.vectors {
		matches[i] = Match{Position: i, Distance: SquaredL2(query, vec)}
	}
	// SliceStable keeps insertion order among equal distances.
	sort.SliceStable(matches, func(i, j int) bool { return matches[i].Distance < matches[j].Distance })
	if k > len(matches) {
		k = len(matches)
	}
	return matches[:k], nil
}

// Len returns the number of stored vectors.
func (ix *FlatIndex) Len() int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return len(ix.vectors)
}

// Dimensions returns the vector dimension the index was created with.
func (ix *FlatIndex) Dimensions() int {
	return ix.dimensions
}

// SquaredL2 returns the squared Euclidean distance between a and b.
// The slices must have equal length.
func SquaredL2(a, b []float32) float64 {
	var sum float64
	for i := range a {
		d := float64(a[i]) - float64(b[i])
		sum += d * d
	}
	return sum
}
