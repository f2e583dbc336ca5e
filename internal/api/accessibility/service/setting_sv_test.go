package accessibilityService

import (
	"context"
	"sync"
	"testing"

	"savoro-be/internal/api/accessibility"
	accessibilityRepository "savoro-be/internal/api/accessibility/repository"
	"savoro-be/internal/entity"
	"savoro-be/pkg/assistant"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	netContext "golang.org/x/net/context"
)

type fakeSettingsRepo struct {
	mu        sync.Mutex
	rows      map[string]entity.AccessibilitySetting
	getErr    error
	upsertErr error
}

func newFakeSettingsRepo() *fakeSettingsRepo {
	return &fakeSettingsRepo{rows: make(map[string]entity.AccessibilitySetting)}
}

func (f *fakeSettingsRepo) GetSettingsByUser(_ netContext.Context, userID string) ([]entity.AccessibilitySetting, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	var out []entity.AccessibilitySetting
	for _, row := range f.rows {
		if row.UserID == userID {
			out = append(out, row)
		}
	}
	return out, nil
}

func (f *fakeSettingsRepo) GetSetting(_ netContext.Context, userID, key string) (entity.AccessibilitySetting, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return entity.AccessibilitySetting{}, f.getErr
	}
	row, ok := f.rows[userID+"/"+key]
	if !ok {
		return entity.AccessibilitySetting{}, accessibility.ErrSettingNotSet
	}
	return row, nil
}

func (f *fakeSettingsRepo) UpsertSetting(_ netContext.Context, setting entity.AccessibilitySetting) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.upsertErr != nil {
		return f.upsertErr
	}
	f.rows[setting.UserID+"/"+setting.Key] = setting
	return nil
}

func (f *fakeSettingsRepo) DeleteSettingsByUser(_ netContext.Context, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for key, row := range f.rows {
		if row.UserID == userID {
			delete(f.rows, key)
		}
	}
	return nil
}

type fakeRepository struct {
	settings *fakeSettingsRepo
}

func (f *fakeRepository) NewClient(_ bool) (accessibilityRepository.Client, error) {
	return accessibilityRepository.Client{
		Settings: f.settings,
		Commit:   func() error { return nil },
		Rollback: func() error { return nil },
	}, nil
}

func newTestService(repo *fakeRepository) *accessibilityService {
	logger := logrus.New()
	return &accessibilityService{
		log:               logger,
		accessibilityRepo: repo,
	}
}

func TestGetSettings_DefaultsWhenUnset(t *testing.T) {
	repo := &fakeRepository{settings: newFakeSettingsRepo()}
	svc := newTestService(repo)

	resp, err := svc.GetSettings(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, resp.Settings, len(assistant.Registry()))

	byKey := make(map[string]accessibility.SettingResponse)
	for _, s := range resp.Settings {
		byKey[s.Key] = s
	}

	assert.False(t, byKey["high_contrast"].BoolValue)
	assert.Equal(t, "none", byKey["color_blind_mode"].EnumValue)
	assert.Equal(t, "medium", byKey["font_size"].EnumValue)
}

func TestGetSettings_StoredRowsOverrideDefaults(t *testing.T) {
	repo := &fakeRepository{settings: newFakeSettingsRepo()}
	repo.settings.rows["user-1/high_contrast"] = entity.AccessibilitySetting{
		UserID:    "user-1",
		Key:       "high_contrast",
		Kind:      "boolean",
		BoolValue: true,
	}
	svc := newTestService(repo)

	resp, err := svc.GetSettings(context.Background(), "user-1")
	require.NoError(t, err)

	for _, s := range resp.Settings {
		if s.Key == "high_contrast" {
			assert.True(t, s.BoolValue)
			return
		}
	}
	t.Fatal("high_contrast missing from response")
}

func TestGetSetting_UnknownKey(t *testing.T) {
	repo := &fakeRepository{settings: newFakeSettingsRepo()}
	svc := newTestService(repo)

	_, err := svc.GetSetting(context.Background(), "user-1", "night_mode")
	assert.ErrorIs(t, err, accessibility.ErrUnknownSettingKey)
}

func TestUpdateSetting_BooleanRequiresBoolValue(t *testing.T) {
	repo := &fakeRepository{settings: newFakeSettingsRepo()}
	svc := newTestService(repo)

	_, err := svc.UpdateSetting(context.Background(), "user-1", "high_contrast", accessibility.UpdateSettingRequest{
		EnumValue: "on",
	})
	assert.ErrorIs(t, err, accessibility.ErrInvalidSettingValue)
}

func TestUpdateSetting_EnumRejectsBadValue(t *testing.T) {
	repo := &fakeRepository{settings: newFakeSettingsRepo()}
	svc := newTestService(repo)

	_, err := svc.UpdateSetting(context.Background(), "user-1", "color_blind_mode", accessibility.UpdateSettingRequest{
		EnumValue: "monochrome",
	})
	assert.ErrorIs(t, err, accessibility.ErrInvalidSettingValue)
}

func TestUpdateSetting_PersistsAndEchoes(t *testing.T) {
	repo := &fakeRepository{settings: newFakeSettingsRepo()}
	svc := newTestService(repo)

	enabled := true
	resp, err := svc.UpdateSetting(context.Background(), "user-1", "large_text", accessibility.UpdateSettingRequest{
		BoolValue: &enabled,
	})
	require.NoError(t, err)
	assert.True(t, resp.BoolValue)

	row := repo.settings.rows["user-1/large_text"]
	assert.True(t, row.BoolValue)
	assert.Equal(t, "boolean", row.Kind)
}

func TestResetSettings_DropsAllRows(t *testing.T) {
	repo := &fakeRepository{settings: newFakeSettingsRepo()}
	repo.settings.rows["user-1/large_text"] = entity.AccessibilitySetting{UserID: "user-1", Key: "large_text", Kind: "boolean", BoolValue: true}
	repo.settings.rows["user-2/large_text"] = entity.AccessibilitySetting{UserID: "user-2", Key: "large_text", Kind: "boolean", BoolValue: true}
	svc := newTestService(repo)

	require.NoError(t, svc.ResetSettings(context.Background(), "user-1"))

	assert.Len(t, repo.settings.rows, 1)
	_, survived := repo.settings.rows["user-2/large_text"]
	assert.True(t, survived)
}

func TestStore_GetSettingFallsBackToDefault(t *testing.T) {
	repo := &fakeRepository{settings: newFakeSettingsRepo()}
	store := NewStore(logrus.New(), repo)

	value, err := store.GetSetting(context.Background(), "user-1", assistant.SettingFontSize)
	require.NoError(t, err)
	assert.Equal(t, assistant.SettingKindEnum, value.Kind)
	assert.Equal(t, "medium", value.Enum)
}

func TestStore_SetSettingValidatesEnum(t *testing.T) {
	repo := &fakeRepository{settings: newFakeSettingsRepo()}
	store := NewStore(logrus.New(), repo)

	err := store.SetSetting(context.Background(), "user-1", assistant.SettingColorBlindMode, assistant.EnumValue("sepia"))
	assert.ErrorIs(t, err, accessibility.ErrInvalidSettingValue)

	err = store.SetSetting(context.Background(), "user-1", assistant.SettingColorBlindMode, assistant.EnumValue("protanopia"))
	require.NoError(t, err)

	value, err := store.GetSetting(context.Background(), "user-1", assistant.SettingColorBlindMode)
	require.NoError(t, err)
	assert.Equal(t, "protanopia", value.Enum)
}
