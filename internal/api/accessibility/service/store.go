package accessibilityService

import (
	"errors"
	"time"

	"savoro-be/internal/api/accessibility"
	accessibilityRepository "savoro-be/internal/api/accessibility/repository"
	"savoro-be/internal/entity"
	"savoro-be/pkg/assistant"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

// settingStore adapts the accessibility repository to the voice assistant's
// SettingStore contract.
type settingStore struct {
	log               *logrus.Logger
	accessibilityRepo accessibilityRepository.Repository
}

func NewStore(log *logrus.Logger, accessibilityRepo accessibilityRepository.Repository) assistant.SettingStore {
	return &settingStore{
		log:               log,
		accessibilityRepo: accessibilityRepo,
	}
}

func (s *settingStore) GetSetting(ctx context.Context, userID string, key assistant.SettingKey) (assistant.Value, error) {
	def, ok := assistant.LookupSetting(key)
	if !ok {
		return assistant.Value{}, accessibility.ErrUnknownSettingKey
	}

	repo, err := s.accessibilityRepo.NewClient(false)
	if err != nil {
		return assistant.Value{}, err
	}

	row, err := repo.Settings.GetSetting(ctx, userID, string(key))
	if err != nil {
		if errors.Is(err, accessibility.ErrSettingNotSet) {
			return def.Default(), nil
		}
		return assistant.Value{}, err
	}

	return storedValue(def, row), nil
}

func (s *settingStore) SetSetting(ctx context.Context, userID string, key assistant.SettingKey, value assistant.Value) error {
	def, ok := assistant.LookupSetting(key)
	if !ok {
		return accessibility.ErrUnknownSettingKey
	}

	if def.Kind == assistant.SettingKindEnum && !def.ValidEnumValue(value.Enum) {
		return accessibility.ErrInvalidSettingValue
	}

	repo, err := s.accessibilityRepo.NewClient(false)
	if err != nil {
		return err
	}

	return repo.Settings.UpsertSetting(ctx, entity.AccessibilitySetting{
		UserID:    userID,
		Key:       string(key),
		Kind:      string(def.Kind),
		BoolValue: value.Bool,
		EnumValue: value.Enum,
		UpdatedAt: time.Now(),
	})
}
