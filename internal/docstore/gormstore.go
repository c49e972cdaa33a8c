package docstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Maaz-R-Khan/truck-logistics-app/internal/metrics"
)

// documentRow is the gorm model backing the store. One row per document,
// keyed by (collection, key), fields held as a jsonb blob.
type documentRow struct {
	Collection string `gorm:"primaryKey;size:64"`
	Key        string `gorm:"primaryKey;size:64"`
	Data       []byte `gorm:"type:jsonb"`
}

// TableName sets the table name for gorm.
func (documentRow) TableName() string {
	return "documents"
}

// gormStore implements Store on a relational database through gorm.
type gormStore struct {
	db *gorm.DB
}

// NewGormStore creates a Store backed by the given database connection.
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

// Migrate creates the documents table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&documentRow{})
}

// GetAll returns every document in the collection.
func (s *gormStore) GetAll(ctx context.Context, collection string) ([]Document, error) {
	// Record metrics
	startTime := time.Now()
	collector := metrics.GetMetricsCollector()

	var rows []documentRow
	err := s.db.WithContext(ctx).
		Where("collection = ?", collection).
		Order("key").
		Find(&rows).Error
	collector.RecordStoreQuery(metrics.StoreQueryGetAll, err == nil, time.Since(startTime))
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", collection, err)
	}

	docs := make([]Document, 0, len(rows))
	for _, row := range rows {
		docs = append(docs, Document{Key: row.Key, Fields: json.RawMessage(row.Data)})
	}
	return docs, nil
}

// Set upserts the document under the given key.
func (s *gormStore) Set(ctx context.Context, collection, key string, fields json.RawMessage) error {
	// Record metrics
	startTime := time.Now()
	collector := metrics.GetMetricsCollector()

	row := documentRow{Collection: collection, Key: key, Data: []byte(fields)}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "collection"}, {Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"data"}),
		}).
		Create(&row).Error
	collector.RecordStoreQuery(metrics.StoreQuerySet, err == nil, time.Since(startTime))
	if err != nil {
		return fmt.Errorf("write %s/%s: %w", collection, key, err)
	}
	return nil
}

// Delete removes the document with the given key.
func (s *gormStore) Delete(ctx context.Context, collection, key string) error {
	// Record metrics
	startTime := time.Now()
	collector := metrics.GetMetricsCollector()

	err := s.db.WithContext(ctx).
		Where("collection = ? AND key = ?", collection, key).
		Delete(&documentRow{}).Error
	collector.RecordStoreQuery(metrics.StoreQueryDelete, err == nil, time.Since(startTime))
	if err != nil {
		return fmt.Errorf("delete %s/%s: %w", collection, key, err)
	}
	return nil
}

// AllocateKey returns a fresh key. Keys are allocated client-side, so an
// entity can learn its identity before the write lands.
func (s *gormStore) AllocateKey(string) string {
	return uuid.New().String()
}
