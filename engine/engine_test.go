package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/voyago/tripagent/config"
	"github.com/voyago/tripagent/errors"
)

func TestSplitModelName(t *testing.T) {
	provider, name, err := splitModelName("openai/gpt-4")
	require.NoError(t, err)
	assert.Equal(t, ProviderOpenAI, provider)
	assert.Equal(t, "gpt-4", name)

	provider, name, err = splitModelName("anthropic/claude-sonnet-4-0")
	require.NoError(t, err)
	assert.Equal(t, ProviderAnthropic, provider)
	assert.Equal(t, "claude-sonnet-4-0", name)

	// Bare names default to openai.
	provider, name, err = splitModelName("gpt-4")
	require.NoError(t, err)
	assert.Equal(t, ProviderOpenAI, provider)
	assert.Equal(t, "gpt-4", name)

	_, _, err = splitModelName("gemini/gemini-pro")
	assert.ErrorIs(t, err, errors.ErrInvalidParams)

	_, _, err = splitModelName("")
	assert.ErrorIs(t, err, errors.ErrInvalidParams)
}

func TestGenerate_Validation(t *testing.T) {
	engine := NewEngine(nil, &config.ModelConfig{
		GenerationModel: "openai/gpt-4",
		MaxTokens:       4096,
	})

	_, err := engine.Generate(context.Background(), nil)
	assert.ErrorIs(t, err, errors.ErrInvalidParams)

	_, err = engine.Generate(context.Background(), &GenerateRequest{})
	assert.ErrorIs(t, err, errors.ErrInvalidParams)

	_, err = engine.Generate(context.Background(), &GenerateRequest{
		Prompt: "hello",
		Model:  "mistral/mixtral",
	})
	assert.ErrorIs(t, err, errors.ErrInvalidParams)
}

func TestGenerate_MissingCredentials(t *testing.T) {
	engine := NewEngine(nil, &config.ModelConfig{
		GenerationModel: "openai/gpt-4",
		MaxTokens:       4096,
	})

	_, err := engine.Generate(context.Background(), &GenerateRequest{Prompt: "hello"})
	assert.ErrorIs(t, err, errors.ErrNoCredential)

	_, err = engine.Generate(context.Background(), &GenerateRequest{
		Prompt: "hello",
		Model:  "anthropic/claude-sonnet-4-0",
	})
	assert.ErrorIs(t, err, errors.ErrNoCredential)
}
