package knowledge

import (
	"context"
	"sync"

	"github.com/voyago/tripagent/errors"
)

// MemoryStore keeps records in a slice aligned 1:1 with a flat L2 index:
// vector i in the index resolves to records[i]. Rebuilt from scratch every
// run; nothing is persisted.
type MemoryStore struct {
	mu      sync.RWMutex
	index   *FlatL2Index
	records []Record
}

var (
	_ Store = (*MemoryStore)(nil)
)

func NewMemoryStore(dim int) *MemoryStore {
	return &MemoryStore{
		index: NewFlatL2Index(dim),
	}
}

// Add implements Store.Add.
func (s *MemoryStore) Add(ctx context.Context, records []Record, embeddings [][]float64) error {
	if len(records) != len(embeddings) {
		return errors.Errorf("records/embeddings length mismatch: %d != %d", len(records), len(embeddings))
	}
	if len(records) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.index.Add(embeddings); err != nil {
		return err
	}
	s.records = append(s.records, records...)

	return nil
}

// Search implements Store.Search.
func (s *MemoryStore) Search(ctx context.Context, queryEmbedding []float64, limit int) ([]SearchResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.index.Len() == 0 {
		return []SearchResult{}, nil
	}

	distances, positions, err := s.index.Search(queryEmbedding, limit)
	if err != nil {
		return nil, err
	}

	results := make([]SearchResult, len(positions))
	for i, pos := range positions {
		results[i] = SearchResult{
			Record:   s.records[pos],
			Distance: distances[i],
		}
	}

	return results, nil
}

// Count implements Store.Count.
func (s *MemoryStore) Count(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records), nil
}

// Close implements Store.Close.
func (s *MemoryStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.index = NewFlatL2Index(s.index.Dim())
	s.records = nil
	return nil
}
