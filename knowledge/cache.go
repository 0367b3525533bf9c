package knowledge

import (
	"context"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/voyago/tripagent/errors"
)

// CachedEmbedder wraps an Embedder with a bounded text-to-vector LRU cache.
// Cache hits never reach the inner embedder; misses within one call are
// batched into a single provider request. An evicted entry only costs a
// re-embed on its next miss.
type CachedEmbedder struct {
	inner Embedder
	cache *lru.Cache[string, []float64]
}

var (
	_ Embedder = (*CachedEmbedder)(nil)
)

func NewCachedEmbedder(inner Embedder, size int) (*CachedEmbedder, error) {
	if inner == nil {
		return nil, errors.New("inner embedder is required")
	}
	cache, err := lru.New[string, []float64](size)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create embedding cache of size %d", size)
	}
	return &CachedEmbedder{inner: inner, cache: cache}, nil
}

func (e *CachedEmbedder) Embed(ctx context.Context, texts ...string) ([][]float64, error) {
	embeddings := make([][]float64, len(texts))

	var (
		missIndices []int
		missTexts   []string
	)
	for i, text := range texts {
		if embedding, ok := e.cache.Get(text); ok {
			embeddings[i] = embedding
			continue
		}
		missIndices = append(missIndices, i)
		missTexts = append(missTexts, text)
	}

	if len(missTexts) == 0 {
		return embeddings, nil
	}

	fresh, err := e.inner.Embed(ctx, missTexts...)
	if err != nil {
		return nil, err
	}
	if len(fresh) != len(missTexts) {
		return nil, errors.Errorf("embedding count mismatch: got %d, expected %d", len(fresh), len(missTexts))
	}

	for j, embedding := range fresh {
		e.cache.Add(missTexts[j], embedding)
		embeddings[missIndices[j]] = embedding
	}

	return embeddings, nil
}

// Len reports the number of cached entries.
func (e *CachedEmbedder) Len() int {
	return e.cache.Len()
}
