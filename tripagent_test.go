package tripagent_test

import (
	"context"
	"hash/fnv"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/voyago/tripagent"
	"github.com/voyago/tripagent/engine"
	"github.com/voyago/tripagent/errors"
	"github.com/voyago/tripagent/knowledge"
	"github.com/voyago/tripagent/trip"
)

type hashEmbedder struct {
	dim int
}

func (e *hashEmbedder) Embed(_ context.Context, texts ...string) ([][]float64, error) {
	out := make([][]float64, len(texts))
	for i, text := range texts {
		h := fnv.New64a()
		h.Write([]byte(text))
		r := rand.New(rand.NewSource(int64(h.Sum64())))
		vec := make([]float64, e.dim)
		for j := range vec {
			vec[j] = r.Float64()
		}
		out[i] = vec
	}
	return out, nil
}

type stubGenerator struct {
	req  *engine.GenerateRequest
	text string
}

func (g *stubGenerator) Generate(_ context.Context, req *engine.GenerateRequest) (string, error) {
	g.req = req
	return g.text, nil
}

func clearCredentials(t *testing.T) {
	t.Helper()
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("ANTHROPIC_API_KEY", "")
	t.Setenv("GENERATION_MODEL", "")
}

func TestNew_MissingOpenAIKey(t *testing.T) {
	clearCredentials(t)

	_, err := tripagent.New(context.Background())
	assert.ErrorIs(t, err, errors.ErrNoCredential)
}

func TestNew_AnthropicModelNeedsKey(t *testing.T) {
	clearCredentials(t)

	_, err := tripagent.New(context.Background(),
		tripagent.WithEmbedder(&hashEmbedder{dim: 8}),
		tripagent.WithGenerationModel("anthropic/claude-sonnet-4-0"),
	)
	assert.ErrorIs(t, err, errors.ErrNoCredential)

	_, err = tripagent.New(context.Background(),
		tripagent.WithEmbedder(&hashEmbedder{dim: 8}),
		tripagent.WithStore(knowledge.NewMemoryStore(8)),
		tripagent.WithGenerationModel("anthropic/claude-sonnet-4-0"),
		tripagent.WithAnthropicAPIKey("test-key"),
	)
	assert.NoError(t, err)
}

func newTestAgent(t *testing.T, generator trip.Generator) *tripagent.TripAgent {
	t.Helper()
	clearCredentials(t)

	agent, err := tripagent.New(context.Background(),
		tripagent.WithEmbedder(&hashEmbedder{dim: 8}),
		tripagent.WithStore(knowledge.NewMemoryStore(8)),
		tripagent.WithGenerator(generator),
		tripagent.WithTopK(2),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, agent.Close())
	})
	return agent
}

func TestTripAgent_Pipeline(t *testing.T) {
	ctx := context.Background()
	generator := &stubGenerator{text: "Transportation:\n* Flight from Montreal ($450)\nDay 1:\n* Central Park"}
	agent := newTestAgent(t, generator)

	require.NoError(t, agent.LoadKnowledgeBase(ctx, trip.DefaultKnowledgeBase()))

	results, err := agent.Retrieve(ctx, "museums", 0)
	require.NoError(t, err)
	require.Len(t, results, 2, "configured top-k bounds the result set")
	assert.True(t, results[0].Distance <= results[1].Distance)

	text, err := agent.Plan(ctx, &trip.PlanRequest{
		StartDate:         "2024-04-10",
		EndDate:           "2024-04-15",
		Budget:            "$10000",
		Preferences:       "upscale hotels and fine dining",
		Interests:         []string{"museums"},
		TransportMode:     "airplane",
		AccommodationType: "hotel",
	})
	require.NoError(t, err)

	it := trip.ParseItinerary(text)
	require.Len(t, it.Sections, 2)
	assert.Equal(t, "Transportation:", it.Sections[0].Label)
	assert.Equal(t, "Day 1:", it.Sections[1].Label)

	require.NotNil(t, generator.req)
	assert.Contains(t, generator.req.Prompt, "Plan a NYC trip from 2024-04-10 to 2024-04-15")
	assert.Contains(t, generator.req.System, "Consider the user's budget: $10000")
}

func TestTripAgent_LoadKnowledgeFile(t *testing.T) {
	ctx := context.Background()
	agent := newTestAgent(t, &stubGenerator{text: "ok"})

	path := filepath.Join(t.TempDir(), "base.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
attractions:
  Central Park:
    description: A vast green oasis in the heart of Manhattan.
`), 0o644))

	require.NoError(t, agent.LoadKnowledgeFile(ctx, path))

	results, err := agent.Retrieve(ctx, "a green place to walk", 0)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Central Park", results[0].Record.Title)

	assert.Error(t, agent.LoadKnowledgeFile(ctx, filepath.Join(t.TempDir(), "nope.yaml")))
}
