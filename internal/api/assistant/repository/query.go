package assistantRepository

const (
	queryCreateCommand = `
		INSERT INTO assistant_commands (
			id,
			user_id,
			transcript,
			setting_key,
			value,
			response,
			audio_url,
			created_at
		) VALUES (
			:id,
			:user_id,
			:transcript,
			:setting_key,
			:value,
			:response,
			:audio_url,
			:created_at
		)
	`

	queryCountCommandsByUser = `
		SELECT COUNT(*)
		FROM assistant_commands
		WHERE user_id = :user_id
	`

	queryGetCommandsByUser = `
		SELECT
			id,
			user_id,
			transcript,
			setting_key,
			value,
			response,
			audio_url,
			created_at
		FROM assistant_commands
		WHERE user_id = :user_id
		ORDER BY created_at DESC
		LIMIT :limit OFFSET :offset
	`
)
