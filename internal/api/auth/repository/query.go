package authRepository

const (
	queryCreateUser = `
		INSERT INTO users (
			id,
			email,
			name,
			phone_number,
			role,
			profile_photo_url,
			google_id,
			created_at,
			updated_at
		) VALUES (
			:id,
			:email,
			:name,
			:phone_number,
			:role,
			:profile_photo_url,
			:google_id,
			:created_at,
			:updated_at
		)
	`

	queryGetUserByID = `
		SELECT
			id,
			email,
			name,
			phone_number,
			role,
			profile_photo_url,
			google_id,
			created_at,
			updated_at
		FROM users
		WHERE id = :id
	`

	queryGetUserByEmail = `
		SELECT
			id,
			email,
			name,
			phone_number,
			role,
			profile_photo_url,
			google_id,
			created_at,
			updated_at
		FROM users
		WHERE email = :email
	`

	queryUpdateUser = `
		UPDATE users
		SET
			name = CASE WHEN :name = '' THEN name ELSE :name END,
			phone_number = CASE WHEN :phone_number = '' THEN phone_number ELSE :phone_number END,
			profile_photo_url = CASE WHEN :profile_photo_url = '' THEN profile_photo_url ELSE :profile_photo_url END,
			updated_at = :updated_at
		WHERE id = :id
	`
)
