// Package service связывает чистые операции над агрегатами с хранилищем
// и исполнителем запросов. Сервис рассчитан на работу из одной горутины:
// агрегаты загружаются один раз при создании, каждое изменение целиком
// записывается обратно в хранилище.
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/iudanet/apisign/internal/models"
	"github.com/iudanet/apisign/internal/request"
	"github.com/iudanet/apisign/internal/storage"
	"github.com/iudanet/apisign/internal/store"
)

type service struct {
	storage  storage.Storage
	executor *request.Executor
	groups   models.StorageGroups
	history  models.StorageHistory
}

// NewService загружает оба агрегата из хранилища и возвращает готовый сервис.
func NewService(ctx context.Context, st storage.Storage, executor *request.Executor) (Service, error) {
	groups, err := st.LoadGroups(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load groups: %w", err)
	}

	history, err := st.LoadHistory(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}

	return &service{
		storage:  st,
		executor: executor,
		groups:   groups,
		history:  history,
	}, nil
}

func (s *service) Groups() models.StorageGroups {
	return s.groups.Clone()
}

func (s *service) History() models.StorageHistory {
	return s.history.Clone()
}

// ActiveRequest возвращает группу и пресет, которые будут использованы
// командой send без явных аргументов.
func (s *service) ActiveRequest() (models.GroupItem, models.PresetItem, error) {
	groupID, presetID := store.ResolveSelection(s.groups)
	if groupID == "" || presetID == "" {
		return models.GroupItem{}, models.PresetItem{}, ErrNoSelection
	}

	group, err := store.FindGroup(s.groups, groupID)
	if err != nil {
		return models.GroupItem{}, models.PresetItem{}, err
	}

	preset, err := store.FindPreset(s.groups, groupID, presetID)
	if err != nil {
		return models.GroupItem{}, models.PresetItem{}, err
	}

	return group, preset, nil
}

func (s *service) HistoryItem(id string) (models.HistoryItem, error) {
	return store.FindHistoryItem(s.history, id)
}

func (s *service) CreateGroup(ctx context.Context, name string) (models.GroupItem, error) {
	next := store.CreateGroup(s.groups, name)
	if err := s.saveGroups(ctx, next); err != nil {
		return models.GroupItem{}, err
	}

	// Новая группа всегда добавляется в конец
	return s.groups.Groups[len(s.groups.Groups)-1].Clone(), nil
}

func (s *service) RenameGroup(ctx context.Context, groupID, name string) error {
	if _, err := store.FindGroup(s.groups, groupID); err != nil {
		return err
	}

	return s.saveGroups(ctx, store.RenameGroup(s.groups, groupID, name))
}

func (s *service) DeleteGroup(ctx context.Context, groupID string) error {
	if _, err := store.FindGroup(s.groups, groupID); err != nil {
		return err
	}

	return s.saveGroups(ctx, store.DeleteGroup(s.groups, groupID))
}

func (s *service) CloneGroup(ctx context.Context, groupID string) (models.GroupItem, error) {
	if _, err := store.FindGroup(s.groups, groupID); err != nil {
		return models.GroupItem{}, err
	}

	next := store.CloneGroup(s.groups, groupID)
	if err := s.saveGroups(ctx, next); err != nil {
		return models.GroupItem{}, err
	}

	// Копия всегда добавляется в конец
	return s.groups.Groups[len(s.groups.Groups)-1].Clone(), nil
}

func (s *service) SavePreset(ctx context.Context, groupID string, preset models.PresetItem) (models.PresetItem, error) {
	if _, err := store.FindGroup(s.groups, groupID); err != nil {
		return models.PresetItem{}, err
	}

	next := store.UpsertPreset(s.groups, groupID, preset)
	if err := s.saveGroups(ctx, next); err != nil {
		return models.PresetItem{}, err
	}

	// Записанный пресет становится выбранным
	return store.FindPreset(s.groups, s.groups.LastUsedGroupID, s.groups.LastUsedPresetID)
}

func (s *service) DeletePreset(ctx context.Context, groupID, presetID string) error {
	if _, err := store.FindPreset(s.groups, groupID, presetID); err != nil {
		return err
	}

	return s.saveGroups(ctx, store.DeletePreset(s.groups, groupID, presetID))
}

func (s *service) ClonePreset(ctx context.Context, groupID, presetID string) (models.PresetItem, error) {
	if _, err := store.FindPreset(s.groups, groupID, presetID); err != nil {
		return models.PresetItem{}, err
	}

	next := store.ClonePreset(s.groups, groupID, presetID)
	if err := s.saveGroups(ctx, next); err != nil {
		return models.PresetItem{}, err
	}

	// Копия становится выбранной
	return store.FindPreset(s.groups, s.groups.LastUsedGroupID, s.groups.LastUsedPresetID)
}

func (s *service) SelectPreset(ctx context.Context, groupID, presetID string) error {
	if _, err := store.FindGroup(s.groups, groupID); err != nil {
		return err
	}
	if presetID != "" {
		if _, err := store.FindPreset(s.groups, groupID, presetID); err != nil {
			return err
		}
	}

	return s.saveGroups(ctx, store.Select(s.groups, groupID, presetID))
}

// Send выполняет запрос и записывает результат в историю. Ответ сервера с
// любым статусом считается выполненной отправкой. Если ответ не был получен
// (DNS, отказ соединения, таймаут), в историю попадает запись без статуса и
// длительности, но с текстом ошибки, а сама ошибка возвращается вызывающему.
func (s *service) Send(ctx context.Context, req models.PresetRequest, forcedTimestamp string, timeout time.Duration) (models.HistoryItem, error) {
	ver := req.Ver
	if ver == "" {
		ver = "1"
	}

	entry := models.HistoryItem{
		Request: req,
		Summary: models.RequestSummary{
			URL:        req.URL,
			AppKey:     req.AppKey,
			Ver:        ver,
			DataB64Len: len(req.DataB64),
		},
	}

	exec, execErr := s.executor.Execute(ctx, &req, forcedTimestamp, timeout)
	if execErr != nil {
		// Сгенерированная метка времени и подпись потеряны вместе с
		// запросом, в сводку попадает только заранее известная метка.
		ts := forcedTimestamp
		if ts == "" {
			ts = req.Timestamp
		}
		entry.Summary.Timestamp = ts
		entry.ErrorMessage = execErr.Error()

		if err := s.pushHistory(ctx, entry); err != nil {
			return models.HistoryItem{}, err
		}
		return models.HistoryItem{}, execErr
	}

	entry.Summary.Timestamp = exec.Timestamp
	entry.Summary.Sign = exec.Sign
	entry.ResponseText = exec.ResponseText
	entry.DurationMs = exec.DurationMs
	entry.Status = exec.Status
	entry.OK = exec.OK

	if err := s.pushHistory(ctx, entry); err != nil {
		return models.HistoryItem{}, err
	}

	// Возвращаем запись с заполненными id и временем
	return s.history.Items[0], nil
}

func (s *service) ClearHistory(ctx context.Context) error {
	return s.saveHistory(ctx, store.ClearHistory())
}

func (s *service) Export() ([]byte, error) {
	data, err := json.MarshalIndent(store.ExportAll(s.groups, s.history), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal export: %w", err)
	}
	return data, nil
}

// Import заменяет оба агрегата содержимым файла экспорта. При ошибке разбора
// текущее состояние не меняется. Записи не атомарны: сначала сохраняются
// группы, затем история, отказ второй записи оставляет в хранилище новые
// группы при прежней истории.
func (s *service) Import(ctx context.Context, data []byte) error {
	payload, err := store.ParseImport(data)
	if err != nil {
		return err
	}

	if err := s.saveGroups(ctx, payload.Groups); err != nil {
		return err
	}
	return s.saveHistory(ctx, payload.History)
}

// saveGroups записывает агрегат групп в хранилище и только после успешной
// записи подменяет копию в памяти.
func (s *service) saveGroups(ctx context.Context, next models.StorageGroups) error {
	if err := s.storage.SaveGroups(ctx, next); err != nil {
		return fmt.Errorf("failed to save groups: %w", err)
	}
	s.groups = next
	return nil
}

func (s *service) saveHistory(ctx context.Context, next models.StorageHistory) error {
	if err := s.storage.SaveHistory(ctx, next); err != nil {
		return fmt.Errorf("failed to save history: %w", err)
	}
	s.history = next
	return nil
}

func (s *service) pushHistory(ctx context.Context, entry models.HistoryItem) error {
	return s.saveHistory(ctx, store.PushHistory(s.history, entry))
}
