// Package store содержит чистые операции над агрегатами: вход — агрегат,
// выход — новый агрегат. Входные значения никогда не изменяются, побочных
// эффектов нет; запись на диск выполняет вызывающая сторона.
package store

import (
	"time"

	"github.com/google/uuid"
	"github.com/iudanet/apisign/internal/models"
)

// CreateGroup добавляет группу с новым id и делает ее выбранной,
// сбрасывая выбор пресета.
func CreateGroup(groups models.StorageGroups, name string) models.StorageGroups {
	out := groups.Clone()

	group := models.GroupItem{
		UpdatedAt: time.Now(),
		ID:        uuid.New().String(),
		Name:      name,
		Presets:   []models.PresetItem{},
	}

	out.Groups = append(out.Groups, group)
	out.LastUsedGroupID = group.ID
	out.LastUsedPresetID = ""
	return out
}

// RenameGroup переименовывает группу на месте. Неизвестный id не меняет
// агрегат.
func RenameGroup(groups models.StorageGroups, groupID, name string) models.StorageGroups {
	idx := groupIndex(groups, groupID)
	if idx < 0 {
		return groups
	}

	out := groups.Clone()
	out.Groups[idx].Name = name
	out.Groups[idx].UpdatedAt = time.Now()
	return out
}

// DeleteGroup удаляет группу. Если она была выбрана, выбор группы
// снимается; подстановку первой оставшейся делает ResolveSelection при
// чтении, в сохраняемый агрегат она не попадает. Выбор пресета
// сохраняется, только если он все еще разрешается в какой-либо из
// оставшихся групп.
func DeleteGroup(groups models.StorageGroups, groupID string) models.StorageGroups {
	idx := groupIndex(groups, groupID)
	if idx < 0 {
		return groups
	}

	out := groups.Clone()
	out.Groups = append(out.Groups[:idx], out.Groups[idx+1:]...)

	if out.LastUsedGroupID == groupID {
		out.LastUsedGroupID = ""
	}

	if out.LastUsedPresetID != "" && !presetResolves(out, out.LastUsedPresetID) {
		out.LastUsedPresetID = ""
	}

	return out
}

// UpsertPreset вставляет пресет или заменяет существующий по id, не меняя
// его позицию. Записанный пресет становится выбранным. Пустой id пресета
// заменяется новым UUID. Неизвестный id группы не меняет агрегат.
func UpsertPreset(groups models.StorageGroups, groupID string, preset models.PresetItem) models.StorageGroups {
	gidx := groupIndex(groups, groupID)
	if gidx < 0 {
		return groups
	}

	out := groups.Clone()
	now := time.Now()

	if preset.ID == "" {
		preset.ID = uuid.New().String()
	}
	preset.UpdatedAt = now

	group := &out.Groups[gidx]
	if pidx := presetIndex(*group, preset.ID); pidx >= 0 {
		group.Presets[pidx] = preset
	} else {
		group.Presets = append(group.Presets, preset)
	}
	group.UpdatedAt = now

	out.LastUsedGroupID = group.ID
	out.LastUsedPresetID = preset.ID
	return out
}

// DeletePreset удаляет пресет из группы и снимает выбор, если он указывал
// на удаленный пресет.
func DeletePreset(groups models.StorageGroups, groupID, presetID string) models.StorageGroups {
	gidx := groupIndex(groups, groupID)
	if gidx < 0 {
		return groups
	}
	pidx := presetIndex(groups.Groups[gidx], presetID)
	if pidx < 0 {
		return groups
	}

	out := groups.Clone()
	group := &out.Groups[gidx]
	group.Presets = append(group.Presets[:pidx], group.Presets[pidx+1:]...)
	group.UpdatedAt = time.Now()

	if out.LastUsedPresetID == presetID {
		out.LastUsedPresetID = ""
	}

	return out
}

// ClonePreset добавляет в ту же группу копию пресета с новым id и именем
// с суффиксом " Copy". Оригинал не изменяется, выбранной становится копия.
func ClonePreset(groups models.StorageGroups, groupID, presetID string) models.StorageGroups {
	gidx := groupIndex(groups, groupID)
	if gidx < 0 {
		return groups
	}
	pidx := presetIndex(groups.Groups[gidx], presetID)
	if pidx < 0 {
		return groups
	}

	out := groups.Clone()
	now := time.Now()

	group := &out.Groups[gidx]
	clone := group.Presets[pidx] // PresetItem копируется по значению целиком
	clone.ID = uuid.New().String()
	clone.Name += " Copy"
	clone.UpdatedAt = now

	group.Presets = append(group.Presets, clone)
	group.UpdatedAt = now

	out.LastUsedGroupID = group.ID
	out.LastUsedPresetID = clone.ID
	return out
}

// CloneGroup добавляет глубокую копию группы: новый id группы, новые id
// всех пресетов, имя с суффиксом " Copy". Выбранными становятся копия и
// ее первый пресет.
func CloneGroup(groups models.StorageGroups, groupID string) models.StorageGroups {
	gidx := groupIndex(groups, groupID)
	if gidx < 0 {
		return groups
	}

	out := groups.Clone()
	now := time.Now()

	clone := out.Groups[gidx].Clone()
	clone.ID = uuid.New().String()
	clone.Name += " Copy"
	clone.UpdatedAt = now
	for i := range clone.Presets {
		clone.Presets[i].ID = uuid.New().String()
		clone.Presets[i].UpdatedAt = now
	}

	out.Groups = append(out.Groups, clone)
	out.LastUsedGroupID = clone.ID
	if len(clone.Presets) > 0 {
		out.LastUsedPresetID = clone.Presets[0].ID
	} else {
		out.LastUsedPresetID = ""
	}
	return out
}

// Select фиксирует выбор пользователя. Идентификаторы, которые не
// разрешаются, не меняют агрегат: группа должна существовать, а пресет
// (если указан) принадлежать ей.
func Select(groups models.StorageGroups, groupID, presetID string) models.StorageGroups {
	gidx := groupIndex(groups, groupID)
	if gidx < 0 {
		return groups
	}
	if presetID != "" && presetIndex(groups.Groups[gidx], presetID) < 0 {
		return groups
	}

	out := groups.Clone()
	out.LastUsedGroupID = groupID
	out.LastUsedPresetID = presetID
	return out
}

// ResolveSelection возвращает эффективный выбор: последняя использованная
// группа, если она существует, иначе первая; сохраненный пресет, если он
// принадлежит выбранной группе, иначе ее первый пресет; у пустой группы
// пресета нет, у пустого списка групп нет и выбора.
func ResolveSelection(groups models.StorageGroups) (groupID, presetID string) {
	gidx := groupIndex(groups, groups.LastUsedGroupID)
	if gidx < 0 {
		if len(groups.Groups) == 0 {
			return "", ""
		}
		gidx = 0
	}

	group := groups.Groups[gidx]
	if presetIndex(group, groups.LastUsedPresetID) >= 0 {
		return group.ID, groups.LastUsedPresetID
	}
	if len(group.Presets) > 0 {
		return group.ID, group.Presets[0].ID
	}
	return group.ID, ""
}

// FindGroup возвращает копию группы по id.
func FindGroup(groups models.StorageGroups, groupID string) (models.GroupItem, error) {
	idx := groupIndex(groups, groupID)
	if idx < 0 {
		return models.GroupItem{}, ErrGroupNotFound
	}
	return groups.Groups[idx].Clone(), nil
}

// FindPreset возвращает копию пресета по id группы и id пресета.
func FindPreset(groups models.StorageGroups, groupID, presetID string) (models.PresetItem, error) {
	gidx := groupIndex(groups, groupID)
	if gidx < 0 {
		return models.PresetItem{}, ErrGroupNotFound
	}
	pidx := presetIndex(groups.Groups[gidx], presetID)
	if pidx < 0 {
		return models.PresetItem{}, ErrPresetNotFound
	}
	return groups.Groups[gidx].Presets[pidx], nil
}

// NormalizeGroups приводит загруженный агрегат к инвариантам пакета:
// ненулевые срезы на всех уровнях.
func NormalizeGroups(groups models.StorageGroups) models.StorageGroups {
	out := groups.Clone()
	for i := range out.Groups {
		if out.Groups[i].Presets == nil {
			out.Groups[i].Presets = []models.PresetItem{}
		}
	}
	return out
}

func groupIndex(groups models.StorageGroups, id string) int {
	if id == "" {
		return -1
	}
	for i := range groups.Groups {
		if groups.Groups[i].ID == id {
			return i
		}
	}
	return -1
}

func presetIndex(group models.GroupItem, id string) int {
	if id == "" {
		return -1
	}
	for i := range group.Presets {
		if group.Presets[i].ID == id {
			return i
		}
	}
	return -1
}

// presetResolves сообщает, найдется ли пресет хоть в одной группе
func presetResolves(groups models.StorageGroups, presetID string) bool {
	for i := range groups.Groups {
		if presetIndex(groups.Groups[i], presetID) >= 0 {
			return true
		}
	}
	return false
}
