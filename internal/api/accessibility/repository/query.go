package accessibilityRepository

const (
	queryGetSettingsByUser = `
		SELECT
			user_id,
			setting_key,
			kind,
			bool_value,
			enum_value,
			updated_at
		FROM accessibility_settings
		WHERE user_id = :user_id
		ORDER BY setting_key ASC
	`

	queryGetSetting = `
		SELECT
			user_id,
			setting_key,
			kind,
			bool_value,
			enum_value,
			updated_at
		FROM accessibility_settings
		WHERE user_id = :user_id AND setting_key = :setting_key
	`

	queryUpsertSetting = `
		INSERT INTO accessibility_settings (
			user_id,
			setting_key,
			kind,
			bool_value,
			enum_value,
			updated_at
		) VALUES (
			:user_id,
			:setting_key,
			:kind,
			:bool_value,
			:enum_value,
			:updated_at
		)
		ON CONFLICT (user_id, setting_key) DO UPDATE SET
			kind = EXCLUDED.kind,
			bool_value = EXCLUDED.bool_value,
			enum_value = EXCLUDED.enum_value,
			updated_at = EXCLUDED.updated_at
	`

	queryDeleteSettingsByUser = `
		DELETE FROM accessibility_settings
		WHERE user_id = :user_id
	`
)
