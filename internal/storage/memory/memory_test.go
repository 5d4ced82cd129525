package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/apisign/internal/models"
	"github.com/iudanet/apisign/internal/storage"
)

// Storage должен реализовывать общий интерфейс хранилища
var _ storage.Storage = (*Storage)(nil)

func TestStorage_Defaults(t *testing.T) {
	store := New()
	ctx := context.Background()

	groups, err := store.LoadGroups(ctx)
	require.NoError(t, err)
	assert.Empty(t, groups.Groups)

	history, err := store.LoadHistory(ctx)
	require.NoError(t, err)
	assert.Empty(t, history.Items)
	assert.Equal(t, models.DefaultHistoryLimit, history.Limit)
}

func TestStorage_RoundTrip(t *testing.T) {
	store := New()
	ctx := context.Background()

	groups := models.StorageGroups{
		Groups:          []models.GroupItem{{ID: "group-1", Name: "Staging"}},
		LastUsedGroupID: "group-1",
	}
	require.NoError(t, store.SaveGroups(ctx, groups))

	loaded, err := store.LoadGroups(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Staging", loaded.Groups[0].Name)

	// Хранилище отдает копии: правка загруженного не влияет на хранимое
	loaded.Groups[0].Name = "mutated"
	again, err := store.LoadGroups(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Staging", again.Groups[0].Name)
}

func TestStorage_Closed(t *testing.T) {
	store := New()
	require.NoError(t, store.Close())

	ctx := context.Background()

	_, err := store.LoadGroups(ctx)
	assert.ErrorIs(t, err, storage.ErrStorageClosed)

	err = store.SaveHistory(ctx, models.NewStorageHistory())
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
}
