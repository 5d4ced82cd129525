// Package memory хранит агрегаты в памяти процесса. Подходит для тестов
// и для встраивания без файла БД; содержимое живет до закрытия.
package memory

import (
	"context"
	"sync"

	"github.com/iudanet/apisign/internal/models"
	"github.com/iudanet/apisign/internal/storage"
)

// Storage represents in-memory storage implementation
type Storage struct {
	groups  models.StorageGroups
	history models.StorageHistory
	mu      sync.RWMutex
	closed  bool
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		groups:  models.NewStorageGroups(),
		history: models.NewStorageHistory(),
	}
}

// LoadGroups возвращает копию агрегата групп.
func (s *Storage) LoadGroups(ctx context.Context) (models.StorageGroups, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return models.StorageGroups{}, storage.ErrStorageClosed
	}
	return s.groups.Clone(), nil
}

// SaveGroups заменяет агрегат групп копией переданного значения.
func (s *Storage) SaveGroups(ctx context.Context, groups models.StorageGroups) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return storage.ErrStorageClosed
	}
	s.groups = groups.Clone()
	return nil
}

// LoadHistory возвращает копию агрегата истории.
func (s *Storage) LoadHistory(ctx context.Context) (models.StorageHistory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return models.StorageHistory{}, storage.ErrStorageClosed
	}
	return s.history.Clone(), nil
}

// SaveHistory заменяет агрегат истории копией переданного значения.
func (s *Storage) SaveHistory(ctx context.Context, history models.StorageHistory) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return storage.ErrStorageClosed
	}
	s.history = history.Clone()
	return nil
}

// Close помечает хранилище закрытым, дальнейшие операции невозможны.
func (s *Storage) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	return nil
}
