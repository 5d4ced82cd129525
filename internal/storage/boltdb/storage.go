// Package boltdb хранит оба агрегата в локальном файле BoltDB: по bucket
// на агрегат, целиком как JSON документ под фиксированным ключом.
package boltdb

import (
	"context"
	"fmt"
	"log/slog"

	"go.etcd.io/bbolt"
)

var (
	// BoltDB bucket names
	bucketGroups  = []byte("groups")
	bucketHistory = []byte("history")

	// Текущее значение агрегата лежит под фиксированным ключом
	aggregateKey = []byte("current")
)

// Storage represents BoltDB storage implementation
type Storage struct {
	db     *bbolt.DB
	logger *slog.Logger
}

// New creates a new BoltDB storage instance
// dbPath is the path to the BoltDB database file
func New(ctx context.Context, dbPath string, logger *slog.Logger) (*Storage, error) {
	// Открываем BoltDB
	db, err := bbolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open boltdb: %w", err)
	}

	storage := &Storage{db: db, logger: logger}

	// Инициализируем buckets
	if err := storage.initBuckets(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize buckets: %w", err)
	}

	return storage, nil
}

// Close closes the database connection
func (s *Storage) Close() error {
	if s.db == nil {
		return nil
	}

	err := s.db.Close()
	s.db = nil
	return err
}

// initBuckets создает необходимые buckets если они не существуют
func (s *Storage) initBuckets() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(bucketGroups); err != nil {
			return fmt.Errorf("failed to create groups bucket: %w", err)
		}

		if _, err := tx.CreateBucketIfNotExists(bucketHistory); err != nil {
			return fmt.Errorf("failed to create history bucket: %w", err)
		}

		return nil
	})
}
