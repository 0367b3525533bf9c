package config

type KnowledgeConfig struct {
	// EmbeddingDim is the fixed vector length the index is built over.
	// Default: 1536 (OpenAI ada-002 / 3-small).
	EmbeddingDim int `env:"KNOWLEDGE_EMBEDDING_DIM"`

	// TopK is the number of neighbors returned per retrieval. Capped at the
	// corpus size at search time.
	TopK int `env:"KNOWLEDGE_TOP_K"`

	// CacheSize bounds the text-to-embedding LRU cache. The bound is
	// enforced; the oldest entries are evicted and simply re-embedded on the
	// next miss.
	CacheSize int `env:"KNOWLEDGE_CACHE_SIZE"`

	// SqlitePath, when set, switches the knowledge store from the in-memory
	// flat index to a sqlite-vec backed database at this path.
	SqlitePath string `env:"KNOWLEDGE_SQLITE_PATH"`
}

func NewKnowledgeConfig() (*KnowledgeConfig, error) {
	conf := KnowledgeConfig{
		EmbeddingDim: 1536,
		TopK:         5,
		CacheSize:    1000,
	}
	return &conf, resolveConfig(&conf)
}
