package store

import (
	"time"

	"github.com/google/uuid"
	"github.com/iudanet/apisign/internal/models"
)

// PushHistory добавляет запись в начало истории и усекает ее до предела,
// отбрасывая самые старые записи. Пустой id и нулевое время записи
// заполняются автоматически.
func PushHistory(history models.StorageHistory, entry models.HistoryItem) models.StorageHistory {
	out := NormalizeHistory(history)

	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.TS.IsZero() {
		entry.TS = time.Now()
	}

	out.Items = append([]models.HistoryItem{entry}, out.Items...)
	if len(out.Items) > out.Limit {
		out.Items = out.Items[:out.Limit]
	}
	return out
}

// ClearHistory возвращает пустую историю с пределом по умолчанию.
func ClearHistory() models.StorageHistory {
	return models.NewStorageHistory()
}

// FindHistoryItem возвращает запись истории по id.
func FindHistoryItem(history models.StorageHistory, id string) (models.HistoryItem, error) {
	for i := range history.Items {
		if history.Items[i].ID == id {
			return history.Items[i], nil
		}
	}
	return models.HistoryItem{}, ErrHistoryItemNotFound
}

// NormalizeHistory приводит загруженный агрегат к инвариантам пакета:
// ненулевой срез, положительный предел, размер не больше предела.
func NormalizeHistory(history models.StorageHistory) models.StorageHistory {
	out := history.Clone()
	if out.Limit <= 0 {
		out.Limit = models.DefaultHistoryLimit
	}
	if len(out.Items) > out.Limit {
		out.Items = out.Items[:out.Limit]
	}
	return out
}
