package storage

import (
	"context"

	"github.com/iudanet/apisign/internal/models"
)

// GroupsStorage defines interface for persisting the groups aggregate.
// The aggregate is always written and read as a whole document.
type GroupsStorage interface {
	// LoadGroups returns the stored aggregate. A missing or unreadable
	// value degrades to an empty default aggregate instead of an error.
	LoadGroups(ctx context.Context) (models.StorageGroups, error)

	// SaveGroups persists the whole aggregate, replacing the previous value
	SaveGroups(ctx context.Context, groups models.StorageGroups) error
}

// HistoryStorage defines interface for persisting the history aggregate.
type HistoryStorage interface {
	// LoadHistory returns the stored aggregate. A missing or unreadable
	// value degrades to an empty default aggregate instead of an error.
	LoadHistory(ctx context.Context) (models.StorageHistory, error)

	// SaveHistory persists the whole aggregate, replacing the previous value
	SaveHistory(ctx context.Context, history models.StorageHistory) error
}

// Storage combines both aggregates behind a single handle
type Storage interface {
	GroupsStorage
	HistoryStorage

	// Close releases the underlying database
	Close() error
}
