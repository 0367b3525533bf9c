package knowledge

import (
	"context"
)

// Store persists (record, embedding) pairs and serves exact nearest-neighbor
// lookups over them. Records are write-once: no update or delete exists.
type Store interface {
	// Add appends records with their embeddings. records[i] must correspond
	// to embeddings[i]; implementations preserve insertion order.
	Add(ctx context.Context, records []Record, embeddings [][]float64) error

	// Search returns up to limit records ascending by Euclidean distance
	// from the query embedding.
	Search(ctx context.Context, queryEmbedding []float64, limit int) ([]SearchResult, error)

	// Count reports the number of stored records.
	Count(ctx context.Context) (int, error)

	// Close releases the store's resources.
	Close() error
}
