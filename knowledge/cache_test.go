package knowledge_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/voyago/tripagent/knowledge"
)

func TestCachedEmbedder_HitsSkipProvider(t *testing.T) {
	ctx := context.Background()
	inner := &countingEmbedder{dim: 4}
	cached, err := knowledge.NewCachedEmbedder(inner, 10)
	require.NoError(t, err)

	first, err := cached.Embed(ctx, "a", "b")
	require.NoError(t, err)
	require.Len(t, first, 2)
	assert.Equal(t, 1, inner.calls)
	assert.Equal(t, []string{"a", "b"}, inner.texts)

	second, err := cached.Embed(ctx, "a", "b")
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, inner.calls, "cached texts must not reach the provider")
}

func TestCachedEmbedder_MixedHitMiss(t *testing.T) {
	ctx := context.Background()
	inner := &countingEmbedder{dim: 4}
	cached, err := knowledge.NewCachedEmbedder(inner, 10)
	require.NoError(t, err)

	_, err = cached.Embed(ctx, "a")
	require.NoError(t, err)

	out, err := cached.Embed(ctx, "a", "b", "c")
	require.NoError(t, err)
	require.Len(t, out, 3)

	// Only the two misses go out, batched into one call.
	assert.Equal(t, 2, inner.calls)
	assert.Equal(t, []string{"a", "b", "c"}, inner.texts)
	assert.Equal(t, testEmbedding(4, "a"), out[0])
	assert.Equal(t, testEmbedding(4, "b"), out[1])
	assert.Equal(t, testEmbedding(4, "c"), out[2])
}

func TestCachedEmbedder_BoundEnforced(t *testing.T) {
	ctx := context.Background()
	inner := &countingEmbedder{dim: 4}
	cached, err := knowledge.NewCachedEmbedder(inner, 1)
	require.NoError(t, err)

	_, err = cached.Embed(ctx, "a")
	require.NoError(t, err)
	_, err = cached.Embed(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, 1, cached.Len())

	// "a" was evicted and costs a re-embed.
	_, err = cached.Embed(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, 3, inner.calls)
}
