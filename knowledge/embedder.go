package knowledge

import (
	"context"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/voyago/tripagent/errors"
)

type (
	// Embedder converts texts into fixed-length vectors. Implementations make
	// one provider call per invocation regardless of the number of texts.
	Embedder interface {
		Embed(ctx context.Context, texts ...string) ([][]float64, error)
	}

	// OpenAIEmbedder calls the OpenAI embeddings endpoint.
	OpenAIEmbedder struct {
		client openai.Client
		model  string
		dim    int
	}
)

var (
	_ Embedder = (*OpenAIEmbedder)(nil)
)

func NewOpenAIEmbedder(apiKey, model string, dim int) *OpenAIEmbedder {
	return &OpenAIEmbedder{
		client: openai.NewClient(option.WithAPIKey(apiKey)),
		model:  model,
		dim:    dim,
	}
}

// Embed submits all texts as one batch request. Embedded newlines are
// normalized to spaces before submission.
func (e *OpenAIEmbedder) Embed(ctx context.Context, texts ...string) ([][]float64, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	cleaned := make([]string, len(texts))
	for i, text := range texts {
		if text == "" {
			return nil, errors.Errorf("text at position %d is empty", i)
		}
		cleaned[i] = strings.ReplaceAll(text, "\n", " ")
	}

	resp, err := e.client.Embeddings.New(ctx, openai.EmbeddingNewParams{
		Input:          openai.EmbeddingNewParamsInputUnion{OfArrayOfStrings: cleaned},
		Model:          e.model,
		EncodingFormat: openai.EmbeddingNewParamsEncodingFormatFloat,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to embed %d texts with model %s", len(texts), e.model)
	}

	if len(resp.Data) != len(texts) {
		return nil, errors.Errorf("embedding count mismatch: got %d, expected %d", len(resp.Data), len(texts))
	}

	embeddings := make([][]float64, len(texts))
	for _, item := range resp.Data {
		if item.Index < 0 || int(item.Index) >= len(texts) {
			return nil, errors.Errorf("embedding index %d out of range", item.Index)
		}
		if e.dim > 0 && len(item.Embedding) != e.dim {
			return nil, errors.Errorf("embedding dimension mismatch: got %d, expected %d", len(item.Embedding), e.dim)
		}
		embeddings[item.Index] = item.Embedding
	}

	return embeddings, nil
}
