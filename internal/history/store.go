// Package history persists session snapshots to SQLite so past parse runs can
// be listed and re-exported.
package history

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/mazohq/beam-parser/internal/common"
	"github.com/mazohq/beam-parser/internal/entity"
)

// DocumentTypeResume is the document_type value written for snapshot records.
const DocumentTypeResume = "resume"

// Record is one persisted session snapshot.
type Record struct {
	ID            uuid.UUID      `gorm:"type:text;primaryKey" json:"id"`
	DocumentType  string         `gorm:"not null" json:"document_type"`
	ParsedContent datatypes.JSON `gorm:"not null" json:"parsed_content"`
	UserID        string         `gorm:"index" json:"user_id"`
	CreatedAt     time.Time      `json:"created_at"`
}

// Snapshot decodes the record payload.
func (r Record) Snapshot() (entity.Snapshot, error) {
	var snap entity.Snapshot
	if err := json.Unmarshal(r.ParsedContent, &snap); err != nil {
		return entity.Snapshot{}, fmt.Errorf("decode snapshot: %w", err)
	}
	return snap, nil
}

// Store wraps SQLite access for history records.
type Store struct {
	db *gorm.DB
}

// NewStore opens (and if needed creates) the database and migrates the schema.
func NewStore(dbPath string) (*Store, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if err := db.AutoMigrate(&Record{}); err != nil {
		return nil, fmt.Errorf("auto migrate records: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("get sql DB: %w", err)
	}
	return sqlDB.Close()
}

// Insert persists a snapshot for the given user and returns the stored record.
func (s *Store) Insert(ctx context.Context, userID string, snap entity.Snapshot) (Record, error) {
	payload, err := json.Marshal(snap)
	if err != nil {
		return Record{}, fmt.Errorf("encode snapshot: %w", err)
	}

	rec := Record{
		ID:            uuid.New(),
		DocumentType:  DocumentTypeResume,
		ParsedContent: payload,
		UserID:        userID,
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return Record{}, fmt.Errorf("insert record: %w", err)
	}
	return rec, nil
}

// List returns all records, newest first.
func (s *Store) List(ctx context.Context) ([]Record, error) {
	var recs []Record
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	return recs, nil
}

// Get fetches one record by ID.
func (s *Store) Get(ctx context.Context, id uuid.UUID) (Record, error) {
	var rec Record
	if err := s.db.WithContext(ctx).First(&rec, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Record{}, common.NewAppError("HISTORY_NOT_FOUND", id.String(), common.ErrNotFound)
		}
		return Record{}, fmt.Errorf("get record: %w", err)
	}
	return rec, nil
}

// Delete removes one record by ID.
func (s *Store) Delete(ctx context.Context, id uuid.UUID) error {
	tx := s.db.WithContext(ctx).Delete(&Record{}, "id = ?", id)
	if tx.Error != nil {
		return fmt.Errorf("delete record: %w", tx.Error)
	}
	if tx.RowsAffected == 0 {
		return common.NewAppError("HISTORY_NOT_FOUND", id.String(), common.ErrNotFound)
	}
	return nil
}
