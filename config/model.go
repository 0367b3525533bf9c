package config

type ModelConfig struct {
	// OpenAIAPIKey authenticates both the embedding and the chat completion
	// endpoints. Required unless custom embedder/engine implementations are
	// injected.
	OpenAIAPIKey string `env:"OPENAI_API_KEY"`

	// AnthropicAPIKey is consulted only for "anthropic/..." generation models.
	AnthropicAPIKey string `env:"ANTHROPIC_API_KEY"`

	// GenerationModel is a provider-prefixed model name, e.g. "openai/gpt-4"
	// or "anthropic/claude-sonnet-4-0". A bare name defaults to openai.
	GenerationModel string `env:"GENERATION_MODEL"`

	// EmbeddingModel names the embedding model. Must produce vectors of the
	// configured embedding dimension.
	EmbeddingModel string `env:"EMBEDDING_MODEL"`

	// MaxTokens caps the generated itinerary length.
	MaxTokens int64 `env:"GENERATION_MAX_TOKENS"`
}

func NewModelConfig() (*ModelConfig, error) {
	conf := ModelConfig{
		GenerationModel: "openai/gpt-4",
		EmbeddingModel:  "text-embedding-ada-002",
		MaxTokens:       4096,
	}
	return &conf, resolveConfig(&conf)
}
