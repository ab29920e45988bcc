// Package store persists the pipeline's named tables in a SQLite database.
//
// Every table is written with full-replace semantics: a write drops and
// recreates the table before inserting, so a failed stage never leaves a
// half-written table behind and re-runs are idempotent. The store is owned by
// a single process; there is no locking discipline because there is no
// concurrent reader or writer.
package store

import (
	"fmt"
	"reflect"
	"sync/atomic"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// insertBatchSize bounds the number of rows per INSERT so large detail
// tables do not exceed SQLite's bound-parameter limit.
const insertBatchSize = 500

// Store wraps a SQLite database holding the raw, store and publish tables.
// It is passed explicitly to each pipeline stage rather than held as
// process-global state.
type Store struct {
	db *gorm.DB
}

// Open opens (creating if necessary) the SQLite database at path.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", path, err)
	}
	return &Store{db: db}, nil
}

// OpenInMemory opens a private in-memory database, used by tests. Each call
// gets its own named database; the shared cache keeps every pooled connection
// of that database on the same data.
func OpenInMemory() (*Store, error) {
	name := fmt.Sprintf("file:mem%d?mode=memory&cache=shared", memorySeq.Add(1))
	return Open(name)
}

var memorySeq atomic.Int64

// Close releases the underlying database connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to access underlying connection: %w", err)
	}
	return sqlDB.Close()
}

// Replace overwrites the table for the given row type with rows. rows must
// be a slice of a model type carrying a TableName; the table is dropped,
// recreated from the model schema and bulk-inserted.
func (s *Store) Replace(rows any) error {
	v := reflect.ValueOf(rows)
	if v.Kind() != reflect.Slice {
		return fmt.Errorf("store: Replace expects a slice, got %T", rows)
	}
	model := reflect.New(v.Type().Elem()).Interface()

	if s.db.Migrator().HasTable(model) {
		if err := s.db.Migrator().DropTable(model); err != nil {
			return fmt.Errorf("failed to drop table for %T: %w", model, err)
		}
	}
	if err := s.db.AutoMigrate(model); err != nil {
		return fmt.Errorf("failed to create table for %T: %w", model, err)
	}
	if v.Len() == 0 {
		return nil
	}
	if err := s.db.CreateInBatches(rows, insertBatchSize).Error; err != nil {
		return fmt.Errorf("failed to insert rows for %T: %w", model, err)
	}
	return nil
}

// Read loads the complete table for dest's element type. dest must be a
// pointer to a slice of a model type carrying a TableName.
func (s *Store) Read(dest any) error {
	if err := s.db.Find(dest).Error; err != nil {
		return fmt.Errorf("failed to read table for %T: %w", dest, err)
	}
	return nil
}

// Count reports the number of rows in the table for the given model.
func (s *Store) Count(model any) (int64, error) {
	var n int64
	if err := s.db.Model(model).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count rows for %T: %w", model, err)
	}
	return n, nil
}
