package service

import (
	"context"
	"errors"
	"time"

	"github.com/iudanet/apisign/internal/models"
)

//go:generate moq -out service_mock.go . Service

// ErrNoSelection возвращается, когда активный пресет невозможно определить:
// нет ни одной группы либо выбранная группа пуста.
var ErrNoSelection = errors.New("no preset is selected")

// Service defines the main interface for the request workbench.
// It owns both aggregates (preset groups and send history), applies
// pure transforms from the store package and persists the touched
// aggregate after every mutation.
type Service interface {
	// Чтение (работает с копиями, внутреннее состояние не отдается наружу)

	// Groups возвращает копию агрегата групп
	Groups() models.StorageGroups

	// History возвращает копию агрегата истории
	History() models.StorageHistory

	// ActiveRequest разрешает текущий выбор в конкретные группу и пресет
	ActiveRequest() (models.GroupItem, models.PresetItem, error)

	// HistoryItem возвращает запись истории по id
	HistoryItem(id string) (models.HistoryItem, error)

	// Группы

	// CreateGroup добавляет пустую группу и делает ее выбранной
	CreateGroup(ctx context.Context, name string) (models.GroupItem, error)

	// RenameGroup переименовывает группу
	RenameGroup(ctx context.Context, groupID, name string) error

	// DeleteGroup удаляет группу вместе с ее пресетами
	DeleteGroup(ctx context.Context, groupID string) error

	// CloneGroup добавляет глубокую копию группы с новыми id
	CloneGroup(ctx context.Context, groupID string) (models.GroupItem, error)

	// Пресеты

	// SavePreset вставляет пресет или заменяет существующий по id
	SavePreset(ctx context.Context, groupID string, preset models.PresetItem) (models.PresetItem, error)

	// DeletePreset удаляет пресет из группы
	DeletePreset(ctx context.Context, groupID, presetID string) error

	// ClonePreset добавляет в ту же группу копию пресета с новым id
	ClonePreset(ctx context.Context, groupID, presetID string) (models.PresetItem, error)

	// SelectPreset фиксирует выбор группы и пресета
	SelectPreset(ctx context.Context, groupID, presetID string) error

	// Отправка и история

	// Send выполняет запрос и записывает результат в историю.
	// Транспортная ошибка тоже записывается, после чего возвращается.
	Send(ctx context.Context, req models.PresetRequest, forcedTimestamp string, timeout time.Duration) (models.HistoryItem, error)

	// ClearHistory очищает историю
	ClearHistory(ctx context.Context) error

	// Экспорт/импорт

	// Export сериализует оба агрегата в JSON для выгрузки в файл
	Export() ([]byte, error)

	// Import целиком заменяет оба агрегата содержимым файла экспорта
	Import(ctx context.Context, data []byte) error
}
