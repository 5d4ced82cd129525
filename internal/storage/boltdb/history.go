package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/apisign/internal/models"
	"github.com/iudanet/apisign/internal/storage"
	"github.com/iudanet/apisign/internal/store"
)

// LoadHistory возвращает агрегат истории. Отсутствующее или поврежденное
// значение деградирует до пустой истории с пределом по умолчанию.
func (s *Storage) LoadHistory(ctx context.Context) (models.StorageHistory, error) {
	if s.db == nil {
		return models.StorageHistory{}, storage.ErrStorageClosed
	}

	var history models.StorageHistory

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketHistory)
		if bucket == nil {
			return fmt.Errorf("history bucket not found")
		}

		data := bucket.Get(aggregateKey)
		if data == nil {
			history = models.NewStorageHistory()
			return nil
		}

		if err := json.Unmarshal(data, &history); err != nil {
			s.logger.Warn("stored history is unreadable, starting empty", "error", err)
			history = models.NewStorageHistory()
			return nil
		}

		history = store.NormalizeHistory(history)
		return nil
	})
	if err != nil {
		return models.StorageHistory{}, err
	}

	return history, nil
}

// SaveHistory сохраняет агрегат истории целиком, заменяя предыдущее значение.
func (s *Storage) SaveHistory(ctx context.Context, history models.StorageHistory) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketHistory)
		if bucket == nil {
			return fmt.Errorf("history bucket not found")
		}

		data, err := json.Marshal(history)
		if err != nil {
			return fmt.Errorf("failed to marshal history: %w", err)
		}

		if err := bucket.Put(aggregateKey, data); err != nil {
			return fmt.Errorf("failed to save history: %w", err)
		}

		return nil
	})
}
