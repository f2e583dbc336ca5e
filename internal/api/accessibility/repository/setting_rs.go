package accessibilityRepository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"savoro-be/internal/api/accessibility"
	"savoro-be/internal/entity"
	contextPkg "savoro-be/pkg/context"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type SettingDB struct {
	UserID    sql.NullString `db:"user_id"`
	Key       sql.NullString `db:"setting_key"`
	Kind      sql.NullString `db:"kind"`
	BoolValue sql.NullBool   `db:"bool_value"`
	EnumValue sql.NullString `db:"enum_value"`
	UpdatedAt time.Time      `db:"updated_at"`
}

func (r *settingsRepository) GetSettingsByUser(ctx context.Context, userID string) ([]entity.AccessibilitySetting, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var list []SettingDB

	argsKV := map[string]interface{}{
		"user_id": userID,
	}

	query, args, err := sqlx.Named(queryGetSettingsByUser, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetSettingsByUser named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &list, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetSettingsByUser execution err")
		return nil, err
	}

	var settings []entity.AccessibilitySetting
	for _, settingDB := range list {
		settings = append(settings, r.makeSetting(settingDB))
	}

	return settings, nil
}

func (r *settingsRepository) GetSetting(ctx context.Context, userID, key string) (entity.AccessibilitySetting, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var setting SettingDB

	argsKV := map[string]interface{}{
		"user_id":     userID,
		"setting_key": key,
	}

	query, args, err := sqlx.Named(queryGetSetting, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetSetting named query preparation err")
		return entity.AccessibilitySetting{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&setting); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entity.AccessibilitySetting{}, accessibility.ErrSettingNotSet
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetSetting execution err")
		return entity.AccessibilitySetting{}, err
	}

	return r.makeSetting(setting), nil
}

func (r *settingsRepository) UpsertSetting(ctx context.Context, setting entity.AccessibilitySetting) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"user_id":     setting.UserID,
		"setting_key": setting.Key,
		"kind":        setting.Kind,
		"bool_value":  setting.BoolValue,
		"enum_value":  setting.EnumValue,
		"updated_at":  setting.UpdatedAt,
	}

	query, args, err := sqlx.Named(queryUpsertSetting, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpsertSetting named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpsertSetting execution err")
		return err
	}

	return nil
}

func (r *settingsRepository) DeleteSettingsByUser(ctx context.Context, userID string) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"user_id": userID,
	}

	query, args, err := sqlx.Named(queryDeleteSettingsByUser, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteSettingsByUser named query preparation err")
		return err
	}

	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteSettingsByUser execution err")
		return err
	}

	return nil
}

func (r *settingsRepository) makeSetting(setting SettingDB) entity.AccessibilitySetting {
	return entity.AccessibilitySetting{
		UserID:    setting.UserID.String,
		Key:       setting.Key.String,
		Kind:      setting.Kind.String,
		BoolValue: setting.BoolValue.Bool,
		EnumValue: setting.EnumValue.String,
		UpdatedAt: setting.UpdatedAt,
	}
}
