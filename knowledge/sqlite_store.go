package knowledge

import (
	"context"
	"fmt"
	"time"

	sqlite_vec "github.com/asg017/sqlite-vec-go-bindings/cgo"
	"github.com/google/uuid"
	"github.com/voyago/tripagent/errors"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SqliteStore implements Store using SQLite with the sqlite-vec extension.
// It keeps the same exact, distance-ordered search semantics as MemoryStore
// but survives process restarts.
type SqliteStore struct {
	db     *gorm.DB
	vecDim int
}

type SqliteRecordRow struct {
	ID        string `gorm:"primaryKey"`
	Position  int    `gorm:"index;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Title      string `gorm:"index"`
	Attributes datatypes.JSONType[map[string]any]
}

func (SqliteRecordRow) TableName() string {
	return "records"
}

var (
	_ Store = (*SqliteStore)(nil)
)

// NewSqliteStore opens (or creates) a sqlite-vec backed store at dbPath.
func NewSqliteStore(dbPath string, dimension int) (*SqliteStore, error) {
	sqlite_vec.Auto()

	db, err := gorm.Open(
		sqlite.Open(fmt.Sprintf("file:%s?cache=shared&mode=rwc&_journal_mode=WAL&_foreign_keys=on", dbPath)),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent)},
	)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open sqlite database")
	}

	store := &SqliteStore{
		db:     db,
		vecDim: dimension,
	}

	if err := db.AutoMigrate(&SqliteRecordRow{}); err != nil {
		return nil, errors.Wrapf(err, "failed to migrate records table")
	}

	if err := store.createVectorTable(); err != nil {
		return nil, err
	}

	return store, nil
}

func (s *SqliteStore) createVectorTable() error {
	var sqliteVersion, vecVersion string
	err := s.db.Raw("SELECT sqlite_version(), vec_version()").Row().Scan(&sqliteVersion, &vecVersion)
	if err != nil {
		return errors.Wrapf(err, "sqlite-vec extension not properly loaded")
	}

	createTableSQL := fmt.Sprintf(`
		CREATE VIRTUAL TABLE IF NOT EXISTS record_vectors USING vec0(
			record_id TEXT PRIMARY KEY,
			embedding float[%d]
		);
	`, s.vecDim)

	if err := s.db.Exec(createTableSQL).Error; err != nil {
		return errors.Wrapf(err, "failed to create record_vectors table")
	}

	return nil
}

// Add implements Store.Add.
func (s *SqliteStore) Add(ctx context.Context, records []Record, embeddings [][]float64) error {
	if len(records) != len(embeddings) {
		return errors.Errorf("records/embeddings length mismatch: %d != %d", len(records), len(embeddings))
	}
	if len(records) == 0 {
		return nil
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var position int64
		if err := tx.Model(&SqliteRecordRow{}).Count(&position).Error; err != nil {
			return errors.Wrapf(err, "failed to count records")
		}

		for i, record := range records {
			if len(embeddings[i]) != s.vecDim {
				return errors.Errorf("vector %d has dimension %d, store expects %d", i, len(embeddings[i]), s.vecDim)
			}

			row := SqliteRecordRow{
				ID:         uuid.NewString(),
				Position:   int(position) + i,
				Title:      record.Title,
				Attributes: datatypes.NewJSONType(record.Attributes),
			}
			if err := tx.Create(&row).Error; err != nil {
				return errors.Wrapf(err, "failed to save record %q", record.Title)
			}

			serialized, err := sqlite_vec.SerializeFloat32(toFloat32(embeddings[i]))
			if err != nil {
				return errors.Wrapf(err, "failed to serialize embedding")
			}
			if err := tx.Exec(
				"INSERT INTO record_vectors (record_id, embedding) VALUES (?, ?)",
				row.ID, serialized,
			).Error; err != nil {
				return errors.Wrapf(err, "failed to insert record vector")
			}
		}

		return nil
	})
}

// Search implements Store.Search.
func (s *SqliteStore) Search(ctx context.Context, queryEmbedding []float64, limit int) ([]SearchResult, error) {
	if len(queryEmbedding) == 0 {
		return []SearchResult{}, nil
	}

	serializedQuery, err := sqlite_vec.SerializeFloat32(toFloat32(queryEmbedding))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to serialize query embedding")
	}

	rows, err := s.db.WithContext(ctx).Raw(`
		SELECT record_id, distance
		FROM record_vectors
		WHERE embedding MATCH ?
		ORDER BY distance
		LIMIT ?
	`, serializedQuery, limit).Rows()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to execute search query")
	}
	defer rows.Close()

	var ids []string
	distanceByID := make(map[string]float64)
	for rows.Next() {
		var (
			id       string
			distance float64
		)
		if err := rows.Scan(&id, &distance); err != nil {
			return nil, errors.Wrapf(err, "failed to scan result row")
		}
		ids = append(ids, id)
		distanceByID[id] = distance
	}

	if len(ids) == 0 {
		return []SearchResult{}, nil
	}

	var recordRows []SqliteRecordRow
	if err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&recordRows).Error; err != nil {
		return nil, errors.Wrapf(err, "failed to fetch records")
	}

	rowByID := make(map[string]SqliteRecordRow, len(recordRows))
	for _, row := range recordRows {
		rowByID[row.ID] = row
	}

	// Keep the distance ordering from the vector search.
	results := make([]SearchResult, 0, len(ids))
	for _, id := range ids {
		row, ok := rowByID[id]
		if !ok {
			continue
		}
		results = append(results, SearchResult{
			Record: Record{
				Title:      row.Title,
				Attributes: row.Attributes.Data(),
			},
			Distance: distanceByID[id],
		})
	}

	return results, nil
}

// Count implements Store.Count.
func (s *SqliteStore) Count(ctx context.Context) (int, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&SqliteRecordRow{}).Count(&count).Error; err != nil {
		return 0, errors.Wrapf(err, "failed to count records")
	}
	return int(count), nil
}

// Close implements Store.Close.
func (s *SqliteStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func toFloat32(v []float64) []float32 {
	out := make([]float32, len(v))
	for i, x := range v {
		out[i] = float32(x)
	}
	return out
}
