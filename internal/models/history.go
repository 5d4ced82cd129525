package models

import "time"

// DefaultHistoryLimit максимальное число записей истории по умолчанию.
const DefaultHistoryLimit = 500

// RequestSummary краткая сводка отправленного запроса для списка истории.
type RequestSummary struct {
	URL        string `json:"url"`          // URL адрес, на который ушел запрос
	AppKey     string `json:"appkey"`       // AppKey использованный идентификатор приложения
	Ver        string `json:"ver"`          // Ver фактически отправленная версия протокола
	Timestamp  string `json:"timestamp"`    // Timestamp фактически отправленная метка времени
	Sign       string `json:"sign"`         // Sign фактически отправленная подпись ("" = без подписи)
	DataB64Len int    `json:"data_b64_len"` // DataB64Len длина отправленной полезной нагрузки Base64
}

// HistoryItem одна выполненная (или не дошедшая до сервера) отправка.
type HistoryItem struct {
	TS           time.Time      `json:"ts"`                      // TS момент записи в историю
	ID           string         `json:"id"`                      // ID уникальный идентификатор записи (UUID)
	Summary      RequestSummary `json:"request_summary"`         // Summary сводка для списков
	Request      PresetRequest  `json:"request"`                 // Request полный снимок параметров на момент отправки
	ResponseText string         `json:"response_text"`           // ResponseText тело ответа целиком
	ErrorMessage string         `json:"error_message,omitempty"` // ErrorMessage текст транспортной ошибки
	DurationMs   int64          `json:"duration_ms"`             // DurationMs длительность от отправки до полного чтения ответа
	Status       *int           `json:"status"`                  // Status HTTP статус, nil = ответ не был получен
	OK           bool           `json:"ok"`                      // OK true только для статусов 2xx
}

// StorageHistory агрегат истории: записи от новых к старым плюс предел размера.
type StorageHistory struct {
	Items []HistoryItem `json:"items"` // Items записи, новые в начале
	Limit int           `json:"limit"` // Limit максимум хранимых записей
}

// NewStorageHistory возвращает пустую историю с пределом по умолчанию.
func NewStorageHistory() StorageHistory {
	return StorageHistory{Items: []HistoryItem{}, Limit: DefaultHistoryLimit}
}

// Clone создает глубокую копию агрегата истории.
func (h *StorageHistory) Clone() StorageHistory {
	out := *h
	out.Items = make([]HistoryItem, len(h.Items))
	copy(out.Items, h.Items)
	for i := range out.Items {
		if h.Items[i].Status != nil {
			status := *h.Items[i].Status
			out.Items[i].Status = &status
		}
	}
	return out
}

// ExportPayload форма файла экспорта/импорта: оба агрегата целиком.
type ExportPayload struct {
	Groups  StorageGroups  `json:"groups"`  // Groups агрегат групп
	History StorageHistory `json:"history"` // History агрегат истории
}
