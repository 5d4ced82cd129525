package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStorageHistory(t *testing.T) {
	history := NewStorageHistory()

	assert.NotNil(t, history.Items)
	assert.Empty(t, history.Items)
	assert.Equal(t, DefaultHistoryLimit, history.Limit)
}

func TestStorageHistory_Clone(t *testing.T) {
	status := 200

	original := StorageHistory{
		Items: []HistoryItem{
			{
				TS:           time.Now(),
				ID:           "hist-1",
				Summary:      RequestSummary{URL: "https://gw.example.com/api", Sign: "ABC"},
				ResponseText: `{"ok":true}`,
				DurationMs:   120,
				Status:       &status,
				OK:           true,
			},
		},
		Limit: DefaultHistoryLimit,
	}

	clone := original.Clone()
	require.Equal(t, original, clone)

	// Указатель статуса тоже копируется, а не разделяется
	*clone.Items[0].Status = 500
	clone.Items[0].ResponseText = "changed"

	assert.Equal(t, 200, *original.Items[0].Status)
	assert.Equal(t, `{"ok":true}`, original.Items[0].ResponseText)
}

func TestHistoryItem_StatusNullJSON(t *testing.T) {
	// Транспортная ошибка: статус отсутствует и сериализуется как null
	item := HistoryItem{ID: "hist-1", ErrorMessage: "connection refused"}

	data, err := json.Marshal(item)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"status":null`)

	var decoded HistoryItem
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Nil(t, decoded.Status)
	assert.Equal(t, "connection refused", decoded.ErrorMessage)
}
