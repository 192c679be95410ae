package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/apexfit/fitscore/internal/domain/thresholds"

	_ "modernc.org/sqlite" // sqlite driver
)

// SQLStore serves test standards from a SQL database.
// Rows are keyed by (test_type, gender, variation, conditions) with an
// inclusive age range, mirroring the static table shape.
type SQLStore struct {
	db *sql.DB
}

// NewSQLStore wraps an opened database handle.
func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

// OpenSQLite opens a SQLite standards database at path and ensures the schema.
func OpenSQLite(ctx context.Context, path string) (*SQLStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open standards db: %w", err)
	}
	s := NewSQLStore(db)
	if err := s.EnsureSchema(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// EnsureSchema creates the test_standards table if it does not exist.
func (s *SQLStore) EnsureSchema(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS test_standards (
		test_type  TEXT NOT NULL,
		gender     TEXT NOT NULL,
		min_age    INTEGER NOT NULL,
		max_age    INTEGER NOT NULL,
		variation  TEXT NOT NULL DEFAULT 'standard',
		conditions TEXT NOT NULL DEFAULT '',
		excellent  REAL NOT NULL,
		good       REAL NOT NULL,
		average    REAL NOT NULL,
		PRIMARY KEY (test_type, gender, min_age, max_age, variation, conditions)
	)`)
	if err != nil {
		return fmt.Errorf("ensure standards schema: %w", err)
	}
	return nil
}

// PutStandard inserts or replaces one standards row.
func (s *SQLStore) PutStandard(ctx context.Context, key Key, minAge, maxAge int, band thresholds.Band) error {
	_, err := s.db.ExecContext(ctx, `INSERT OR REPLACE INTO test_standards
		(test_type, gender, min_age, max_age, variation, conditions, excellent, good, average)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		key.TestType, string(key.Gender), minAge, maxAge, key.Variation, key.Conditions,
		band.Excellent, band.Good, band.Average)
	if err != nil {
		return fmt.Errorf("put standard: %w", err)
	}
	return nil
}

// GetStandard returns the band whose age range covers key.Age.
func (s *SQLStore) GetStandard(ctx context.Context, key Key) (thresholds.Band, error) {
	row := s.db.QueryRowContext(ctx, `SELECT excellent, good, average FROM test_standards
		WHERE test_type = ? AND gender = ? AND variation = ? AND conditions = ?
		AND min_age <= ? AND max_age >= ?
		ORDER BY min_age DESC LIMIT 1`,
		key.TestType, string(key.Gender), key.Variation, key.Conditions, key.Age, key.Age)

	var band thresholds.Band
	if err := row.Scan(&band.Excellent, &band.Good, &band.Average); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return thresholds.Band{}, ErrNotFound
		}
		return thresholds.Band{}, fmt.Errorf("get standard: %w", err)
	}
	return band, nil
}

// Close releases the underlying database handle.
func (s *SQLStore) Close() error {
	return s.db.Close()
}
