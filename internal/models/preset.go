package models

import "time"

// PresetRequest представляет параметры одного подписываемого запроса.
// Это единица, с которой работают редактор, исполнитель и хранилище пресетов.
type PresetRequest struct {
	URL       string `json:"url"`                 // URL адрес эндпоинта (http/https)
	AppKey    string `json:"appkey"`              // AppKey идентификатор приложения на шлюзе
	Password  string `json:"password"`            // Password секрет подписи (хранится открытым текстом, см. Signer)
	Ver       string `json:"ver"`                 // Ver версия протокола, при отправке пустая трактуется как "1"
	Timestamp string `json:"timestamp,omitempty"` // Timestamp зафиксированная метка времени yyyyMMddHHmmss, пустая = генерировать
	DataRaw   string `json:"data_raw"`            // DataRaw исходный JSON полезной нагрузки (для редактирования)
	DataB64   string `json:"data_b64,omitempty"`  // DataB64 полезная нагрузка Base64, уходит на провод как есть
}

// PresetItem именованный пресет запроса внутри группы.
type PresetItem struct {
	UpdatedAt time.Time     `json:"updated_at"` // UpdatedAt время последнего изменения
	ID        string        `json:"id"`         // ID уникальный идентификатор (UUID)
	Name      string        `json:"name"`       // Name отображаемое имя пресета
	Request   PresetRequest `json:"request"`    // Request сохраненные параметры запроса
}

// GroupItem коллекция пресетов.
type GroupItem struct {
	UpdatedAt time.Time    `json:"updated_at"` // UpdatedAt время последнего изменения
	ID        string       `json:"id"`         // ID уникальный идентификатор (UUID)
	Name      string       `json:"name"`       // Name отображаемое имя группы
	Presets   []PresetItem `json:"presets"`    // Presets пресеты группы в порядке добавления
}

// StorageGroups агрегат групп: весь список плюс текущий выбор пользователя.
// Сериализуется и сохраняется целиком при каждом изменении.
type StorageGroups struct {
	Groups           []GroupItem `json:"groups"`                        // Groups все группы
	LastUsedGroupID  string      `json:"last_used_group_id,omitempty"`  // LastUsedGroupID выбранная группа
	LastUsedPresetID string      `json:"last_used_preset_id,omitempty"` // LastUsedPresetID выбранный пресет
}

// NewStorageGroups возвращает пустой агрегат групп.
func NewStorageGroups() StorageGroups {
	return StorageGroups{Groups: []GroupItem{}}
}

// Clone создает глубокую копию группы вместе с ее пресетами.
func (g *GroupItem) Clone() GroupItem {
	out := *g
	out.Presets = make([]PresetItem, len(g.Presets))
	copy(out.Presets, g.Presets) // PresetItem не содержит ссылочных полей
	return out
}

// Clone создает глубокую копию агрегата групп.
func (s *StorageGroups) Clone() StorageGroups {
	out := *s
	out.Groups = make([]GroupItem, 0, len(s.Groups))
	for i := range s.Groups {
		out.Groups = append(out.Groups, s.Groups[i].Clone())
	}
	return out
}
