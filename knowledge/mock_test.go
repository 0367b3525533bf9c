package knowledge_test

import (
	"context"
	"hash/fnv"
	"math/rand"
)

// testEmbedding returns a deterministic pseudo-random vector for a seed text.
func testEmbedding(dim int, seed string) []float64 {
	h := fnv.New32a()
	h.Write([]byte(seed))
	r := rand.New(rand.NewSource(int64(h.Sum32())))

	v := make([]float64, dim)
	for i := range v {
		v[i] = r.Float64()
	}
	return v
}

// countingEmbedder is a provider stand-in that records every call. Texts with
// an entry in fixed get that exact vector; everything else gets a
// deterministic pseudo-random one.
type countingEmbedder struct {
	dim   int
	fixed map[string][]float64

	calls int
	texts []string
}

func (e *countingEmbedder) Embed(ctx context.Context, texts ...string) ([][]float64, error) {
	e.calls++
	e.texts = append(e.texts, texts...)

	out := make([][]float64, len(texts))
	for i, text := range texts {
		if v, ok := e.fixed[text]; ok {
			out[i] = v
			continue
		}
		out[i] = testEmbedding(e.dim, text)
	}
	return out, nil
}
