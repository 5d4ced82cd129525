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

// LoadGroups возвращает агрегат групп. Отсутствующее значение дает пустой
// агрегат; поврежденное значение логируется и тоже деградирует до пустого,
// чтение никогда не роняет приложение.
func (s *Storage) LoadGroups(ctx context.Context) (models.StorageGroups, error) {
	if s.db == nil {
		return models.StorageGroups{}, storage.ErrStorageClosed
	}

	var groups models.StorageGroups

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketGroups)
		if bucket == nil {
			return fmt.Errorf("groups bucket not found")
		}

		data := bucket.Get(aggregateKey)
		if data == nil {
			groups = models.NewStorageGroups()
			return nil
		}

		if err := json.Unmarshal(data, &groups); err != nil {
			s.logger.Warn("stored groups are unreadable, starting empty", "error", err)
			groups = models.NewStorageGroups()
			return nil
		}

		groups = store.NormalizeGroups(groups)
		return nil
	})
	if err != nil {
		return models.StorageGroups{}, err
	}

	return groups, nil
}

// SaveGroups сохраняет агрегат групп целиком, заменяя предыдущее значение.
func (s *Storage) SaveGroups(ctx context.Context, groups models.StorageGroups) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketGroups)
		if bucket == nil {
			return fmt.Errorf("groups bucket not found")
		}

		data, err := json.Marshal(groups)
		if err != nil {
			return fmt.Errorf("failed to marshal groups: %w", err)
		}

		if err := bucket.Put(aggregateKey, data); err != nil {
			return fmt.Errorf("failed to save groups: %w", err)
		}

		return nil
	})
}
