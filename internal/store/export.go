package store

import (
	"encoding/json"
	"fmt"

	"github.com/iudanet/apisign/internal/models"
)

// ExportAll собирает оба агрегата в снимок для выгрузки в файл.
func ExportAll(groups models.StorageGroups, history models.StorageHistory) models.ExportPayload {
	return models.ExportPayload{
		Groups:  groups.Clone(),
		History: history.Clone(),
	}
}

// ParseImport разбирает файл импорта. Проверка структурная: JSON объект
// верхнего уровня, в котором присутствуют оба ключа groups и history и оба
// не null. Глубокая проверка схемы не выполняется. Любое другое содержимое
// дает ErrInvalidImport, агрегаты вызывающей стороны при этом не меняются.
func ParseImport(data []byte) (*models.ExportPayload, error) {
	var payload struct {
		Groups  *models.StorageGroups  `json:"groups"`
		History *models.StorageHistory `json:"history"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImport, err)
	}
	if payload.Groups == nil || payload.History == nil {
		return nil, fmt.Errorf("%w: groups and history are required", ErrInvalidImport)
	}

	return &models.ExportPayload{
		Groups:  NormalizeGroups(*payload.Groups),
		History: NormalizeHistory(*payload.History),
	}, nil
}
