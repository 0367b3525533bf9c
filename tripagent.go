package tripagent

import (
	"context"
	"log/slog"
	"strings"

	"github.com/voyago/tripagent/config"
	"github.com/voyago/tripagent/engine"
	"github.com/voyago/tripagent/errors"
	"github.com/voyago/tripagent/internal/mylog"
	"github.com/voyago/tripagent/knowledge"
	"github.com/voyago/tripagent/trip"
)

type (
	// TripAgent wires the embedding cache, the knowledge store and the
	// generation engine into one itinerary planner.
	TripAgent struct {
		logger           *slog.Logger
		embedder         knowledge.Embedder
		store            knowledge.Store
		generator        trip.Generator
		knowledgeService knowledge.Service
		planner          *trip.Planner

		modelConfig     *config.ModelConfig
		knowledgeConfig *config.KnowledgeConfig
		logConfig       *config.LogConfig
	}

	Option func(*TripAgent)
)

func New(ctx context.Context, optionFuncs ...Option) (*TripAgent, error) {
	modelConfig, err := config.NewModelConfig()
	if err != nil {
		return nil, err
	}
	knowledgeConfig, err := config.NewKnowledgeConfig()
	if err != nil {
		return nil, err
	}
	logConfig, err := config.NewLogConfig()
	if err != nil {
		return nil, err
	}

	a := &TripAgent{
		modelConfig:     modelConfig,
		knowledgeConfig: knowledgeConfig,
		logConfig:       logConfig,
	}
	for _, f := range optionFuncs {
		f(a)
	}

	if a.logger == nil {
		a.logger = mylog.NewLogger(a.logConfig.LogLevel, a.logConfig.LogHandler)
	}

	// Credential problems must surface here, before any network call.
	if a.embedder == nil && a.modelConfig.OpenAIAPIKey == "" {
		return nil, errors.Wrapf(errors.ErrNoCredential, "OPENAI_API_KEY is required for embeddings")
	}
	if a.generator == nil {
		if strings.HasPrefix(a.modelConfig.GenerationModel, "anthropic/") {
			if a.modelConfig.AnthropicAPIKey == "" {
				return nil, errors.Wrapf(errors.ErrNoCredential, "ANTHROPIC_API_KEY is required for model %q", a.modelConfig.GenerationModel)
			}
		} else if a.modelConfig.OpenAIAPIKey == "" {
			return nil, errors.Wrapf(errors.ErrNoCredential, "OPENAI_API_KEY is required for model %q", a.modelConfig.GenerationModel)
		}
	}

	if a.embedder == nil {
		a.embedder = knowledge.NewOpenAIEmbedder(
			a.modelConfig.OpenAIAPIKey,
			a.modelConfig.EmbeddingModel,
			a.knowledgeConfig.EmbeddingDim,
		)
	}
	cached, err := knowledge.NewCachedEmbedder(a.embedder, a.knowledgeConfig.CacheSize)
	if err != nil {
		return nil, err
	}

	if a.store == nil {
		if a.knowledgeConfig.SqlitePath != "" {
			a.store, err = knowledge.NewSqliteStore(a.knowledgeConfig.SqlitePath, a.knowledgeConfig.EmbeddingDim)
			if err != nil {
				return nil, err
			}
		} else {
			a.store = knowledge.NewMemoryStore(a.knowledgeConfig.EmbeddingDim)
		}
	}

	a.knowledgeService, err = knowledge.NewService(a.store, cached, a.knowledgeConfig.TopK, a.logger)
	if err != nil {
		return nil, err
	}

	if a.generator == nil {
		a.generator = engine.NewEngine(a.logger, a.modelConfig)
	}

	a.planner, err = trip.NewPlanner(
		a.knowledgeService,
		a.generator,
		a.logger,
		a.modelConfig.GenerationModel,
		a.modelConfig.MaxTokens,
		a.knowledgeConfig.TopK,
	)
	if err != nil {
		return nil, err
	}

	return a, nil
}

// LoadKnowledgeBase embeds and indexes the knowledge base.
func (a *TripAgent) LoadKnowledgeBase(ctx context.Context, base knowledge.KnowledgeBase) error {
	return a.knowledgeService.LoadKnowledgeBase(ctx, base)
}

// LoadKnowledgeFile loads a YAML knowledge base from disk and indexes it.
func (a *TripAgent) LoadKnowledgeFile(ctx context.Context, path string) error {
	base, err := knowledge.LoadKnowledgeBaseFromFile(path)
	if err != nil {
		return err
	}
	return a.knowledgeService.LoadKnowledgeBase(ctx, base)
}

// Retrieve returns the records most relevant to the query, ascending by
// distance. k <= 0 uses the configured top-k.
func (a *TripAgent) Retrieve(ctx context.Context, query string, k int) ([]knowledge.SearchResult, error) {
	return a.knowledgeService.Retrieve(ctx, query, k)
}

// Plan generates the raw itinerary text for the given trip parameters.
func (a *TripAgent) Plan(ctx context.Context, req *trip.PlanRequest) (string, error) {
	return a.planner.Plan(ctx, req)
}

func (a *TripAgent) Close() error {
	if a.knowledgeService != nil {
		return a.knowledgeService.Close()
	}
	return nil
}

func WithLogger(logger *slog.Logger) Option {
	return func(a *TripAgent) {
		a.logger = logger
	}
}

func WithOpenAIAPIKey(apiKey string) Option {
	return func(a *TripAgent) {
		a.modelConfig.OpenAIAPIKey = apiKey
	}
}

func WithAnthropicAPIKey(apiKey string) Option {
	return func(a *TripAgent) {
		a.modelConfig.AnthropicAPIKey = apiKey
	}
}

func WithGenerationModel(model string) Option {
	return func(a *TripAgent) {
		a.modelConfig.GenerationModel = model
	}
}

// WithEmbedder substitutes the embedding client, for tests or alternative
// providers.
func WithEmbedder(embedder knowledge.Embedder) Option {
	return func(a *TripAgent) {
		a.embedder = embedder
	}
}

// WithStore substitutes the knowledge store.
func WithStore(store knowledge.Store) Option {
	return func(a *TripAgent) {
		a.store = store
	}
}

// WithGenerator substitutes the generation engine.
func WithGenerator(generator trip.Generator) Option {
	return func(a *TripAgent) {
		a.generator = generator
	}
}

func WithTopK(topK int) Option {
	return func(a *TripAgent) {
		a.knowledgeConfig.TopK = topK
	}
}

func WithCacheSize(size int) Option {
	return func(a *TripAgent) {
		a.knowledgeConfig.CacheSize = size
	}
}

func WithSqlitePath(path string) Option {
	return func(a *TripAgent) {
		a.knowledgeConfig.SqlitePath = path
	}
}
