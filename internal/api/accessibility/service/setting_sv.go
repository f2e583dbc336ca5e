package accessibilityService

import (
	"context"
	"errors"
	"time"

	"savoro-be/internal/api/accessibility"
	"savoro-be/internal/entity"
	"savoro-be/pkg/assistant"
)

func makeSettingResponse(def assistant.Setting, value assistant.Value) accessibility.SettingResponse {
	resp := accessibility.SettingResponse{
		Key:         string(def.Key),
		Kind:        string(def.Kind),
		DisplayName: def.DisplayName,
		EnumValues:  def.EnumValues,
	}
	if value.Kind == assistant.SettingKindEnum {
		resp.EnumValue = value.Enum
	} else {
		resp.BoolValue = value.Bool
	}
	return resp
}

func storedValue(def assistant.Setting, row entity.AccessibilitySetting) assistant.Value {
	if def.Kind == assistant.SettingKindEnum {
		if def.ValidEnumValue(row.EnumValue) {
			return assistant.EnumValue(row.EnumValue)
		}
		return def.Default()
	}
	return assistant.BoolValue(row.BoolValue)
}

func (s *accessibilityService) GetSettings(ctx context.Context, userID string) (*accessibility.SettingListResponse, error) {
	repo, err := s.accessibilityRepo.NewClient(false)
	if err != nil {
		return nil, err
	}

	rows, err := repo.Settings.GetSettingsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	stored := make(map[string]entity.AccessibilitySetting, len(rows))
	for _, row := range rows {
		stored[row.Key] = row
	}

	registry := assistant.Registry()
	resp := &accessibility.SettingListResponse{Settings: make([]accessibility.SettingResponse, 0, len(registry))}
	for _, def := range registry {
		value := def.Default()
		if row, ok := stored[string(def.Key)]; ok {
			value = storedValue(def, row)
		}
		resp.Settings = append(resp.Settings, makeSettingResponse(def, value))
	}

	return resp, nil
}

func (s *accessibilityService) GetSetting(ctx context.Context, userID, key string) (*accessibility.SettingResponse, error) {
	def, ok := assistant.LookupSetting(assistant.SettingKey(key))
	if !ok {
		return nil, accessibility.ErrUnknownSettingKey
	}

	repo, err := s.accessibilityRepo.NewClient(false)
	if err != nil {
		return nil, err
	}

	value := def.Default()
	row, err := repo.Settings.GetSetting(ctx, userID, key)
	if err == nil {
		value = storedValue(def, row)
	} else if !errors.Is(err, accessibility.ErrSettingNotSet) {
		return nil, err
	}

	resp := makeSettingResponse(def, value)
	return &resp, nil
}

func (s *accessibilityService) UpdateSetting(ctx context.Context, userID, key string, req accessibility.UpdateSettingRequest) (*accessibility.SettingResponse, error) {
	def, ok := assistant.LookupSetting(assistant.SettingKey(key))
	if !ok {
		return nil, accessibility.ErrUnknownSettingKey
	}

	var value assistant.Value
	switch def.Kind {
	case assistant.SettingKindBoolean:
		if req.BoolValue == nil {
			return nil, accessibility.ErrInvalidSettingValue
		}
		value = assistant.BoolValue(*req.BoolValue)
	case assistant.SettingKindEnum:
		if !def.ValidEnumValue(req.EnumValue) {
			return nil, accessibility.ErrInvalidSettingValue
		}
		value = assistant.EnumValue(req.EnumValue)
	}

	repo, err := s.accessibilityRepo.NewClient(false)
	if err != nil {
		return nil, err
	}

	row := entity.AccessibilitySetting{
		UserID:    userID,
		Key:       key,
		Kind:      string(def.Kind),
		BoolValue: value.Bool,
		EnumValue: value.Enum,
		UpdatedAt: time.Now(),
	}

	if err := repo.Settings.UpsertSetting(ctx, row); err != nil {
		return nil, err
	}

	resp := makeSettingResponse(def, value)
	return &resp, nil
}

func (s *accessibilityService) ResetSettings(ctx context.Context, userID string) error {
	repo, err := s.accessibilityRepo.NewClient(false)
	if err != nil {
		return err
	}

	return repo.Settings.DeleteSettingsByUser(ctx, userID)
}
