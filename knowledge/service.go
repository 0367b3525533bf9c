package knowledge

import (
	"context"
	"log/slog"

	"github.com/mokiat/gog"
	"github.com/voyago/tripagent/errors"
)

type (
	// Service loads a knowledge base into a vector store and retrieves the
	// records most relevant to a query.
	Service interface {
		// LoadKnowledgeBase embeds every record title and bulk-adds the
		// (embedding, record) pairs to the store, preserving the base's
		// flattened order. Titles already embedded in this process are
		// served from the cache and issue no new provider calls.
		LoadKnowledgeBase(ctx context.Context, base KnowledgeBase) error

		// Retrieve returns up to min(k, N) records ascending by distance
		// from the query embedding. k <= 0 falls back to the configured
		// top-k.
		Retrieve(ctx context.Context, query string, k int) ([]SearchResult, error)

		// Count reports the number of loaded records.
		Count(ctx context.Context) (int, error)

		Close() error
	}

	service struct {
		store    Store
		embedder Embedder
		topK     int
		logger   *slog.Logger
	}
)

var (
	_ Service = (*service)(nil)
)

func NewService(store Store, embedder Embedder, topK int, logger *slog.Logger) (Service, error) {
	if store == nil {
		return nil, errors.New("store is required")
	}
	if embedder == nil {
		return nil, errors.New("embedder is required")
	}
	if topK <= 0 {
		return nil, errors.Wrapf(errors.ErrInvalidConfig, "top-k must be positive, got %d", topK)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &service{
		store:    store,
		embedder: embedder,
		topK:     topK,
		logger:   logger,
	}, nil
}

// LoadKnowledgeBase implements Service.LoadKnowledgeBase.
func (s *service) LoadKnowledgeBase(ctx context.Context, base KnowledgeBase) error {
	records := base.Flatten()
	if len(records) == 0 {
		return nil
	}

	titles := gog.Map(records, func(r Record) string {
		return r.Title
	})

	embeddings, err := s.embedder.Embed(ctx, titles...)
	if err != nil {
		return errors.Wrapf(err, "failed to embed %d record titles", len(titles))
	}
	if len(embeddings) != len(records) {
		return errors.Errorf("embedding count mismatch: got %d, expected %d", len(embeddings), len(records))
	}

	if err := s.store.Add(ctx, records, embeddings); err != nil {
		return errors.Wrapf(err, "failed to store knowledge records")
	}

	s.logger.Debug("knowledge base loaded", "records", len(records))
	return nil
}

// Retrieve implements Service.Retrieve.
func (s *service) Retrieve(ctx context.Context, query string, k int) ([]SearchResult, error) {
	if query == "" {
		return nil, errors.Wrapf(errors.ErrInvalidParams, "query is empty")
	}
	if k <= 0 {
		k = s.topK
	}

	embeddings, err := s.embedder.Embed(ctx, query)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to embed query")
	}
	if len(embeddings) != 1 {
		return nil, errors.Errorf("expected one query embedding, got %d", len(embeddings))
	}

	results, err := s.store.Search(ctx, embeddings[0], k)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to search knowledge")
	}

	s.logger.Debug("knowledge retrieved", "query", query, "results", len(results))
	return results, nil
}

// Count implements Service.Count.
func (s *service) Count(ctx context.Context) (int, error) {
	return s.store.Count(ctx)
}

// Close implements Service.Close.
func (s *service) Close() error {
	if s.store != nil {
		return s.store.Close()
	}
	return nil
}
