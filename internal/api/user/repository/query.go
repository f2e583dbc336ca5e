package userRepository

const (
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

	queryUpdateUser = `
		UPDATE users
		SET
			name = CASE WHEN :name = '' THEN name ELSE :name END,
			phone_number = CASE WHEN :phone_number = '' THEN phone_number ELSE :phone_number END,
			profile_photo_url = CASE WHEN :profile_photo_url = '' THEN profile_photo_url ELSE :profile_photo_url END,
			updated_at = :updated_at
		WHERE id = :id
	`

	queryCreateAddress = `
		INSERT INTO user_addresses (
			id,
			user_id,
			label,
			street,
			city,
			notes,
			is_default,
			created_at,
			updated_at
		) VALUES (
			:id,
			:user_id,
			:label,
			:street,
			:city,
			:notes,
			:is_default,
			:created_at,
			:updated_at
		)
	`

	queryGetAddressByID = `
		SELECT
			id,
			user_id,
			label,
			street,
			city,
			notes,
			is_default,
			created_at,
			updated_at
		FROM user_addresses
		WHERE id = :id
	`

	queryGetAddressesByUser = `
		SELECT
			id,
			user_id,
			label,
			street,
			city,
			notes,
			is_default,
			created_at,
			updated_at
		FROM user_addresses
		WHERE user_id = :user_id
		ORDER BY is_default DESC, created_at ASC
	`

	queryUpdateAddress = `
		UPDATE user_addresses
		SET
			label = CASE WHEN :label = '' THEN label ELSE :label END,
			street = CASE WHEN :street = '' THEN street ELSE :street END,
			city = CASE WHEN :city = '' THEN city ELSE :city END,
			notes = CASE WHEN :notes = '' THEN notes ELSE :notes END,
			is_default = :is_default,
			updated_at = :updated_at
		WHERE id = :id
	`

	queryDeleteAddress = `
		DELETE FROM user_addresses
		WHERE id = :id
	`

	queryClearDefaultAddress = `
		UPDATE user_addresses
		SET is_default = FALSE
		WHERE user_id = :user_id
	`

	queryAddFavorite = `
		INSERT INTO user_favorites (
			user_id,
			restaurant_id,
			created_at
		) VALUES (
			:user_id,
			:restaurant_id,
			:created_at
		)
		ON CONFLICT (user_id, restaurant_id) DO NOTHING
	`

	queryGetFavoritesByUser = `
		SELECT
			user_id,
			restaurant_id,
			created_at
		FROM user_favorites
		WHERE user_id = :user_id
		ORDER BY created_at DESC
	`

	queryDeleteFavorite = `
		DELETE FROM user_favorites
		WHERE user_id = :user_id AND restaurant_id = :restaurant_id
	`
)
