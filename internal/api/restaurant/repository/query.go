package restaurantRepository

const (
	queryCreateRestaurant = `
		INSERT INTO restaurants (
			id,
			name,
			description,
			cuisine,
			address,
			city,
			photo_url,
			rating,
			is_open,
			owner_id,
			created_at,
			updated_at
		) VALUES (
			:id,
			:name,
			:description,
			:cuisine,
			:address,
			:city,
			:photo_url,
			:rating,
			:is_open,
			:owner_id,
			:created_at,
			:updated_at
		)
	`

	queryGetRestaurantByID = `
		SELECT
			id,
			name,
			description,
			cuisine,
			address,
			city,
			photo_url,
			rating,
			is_open,
			owner_id,
			created_at,
			updated_at
		FROM restaurants
		WHERE id = :id
	`

	queryGetAllRestaurants = `
		SELECT
			id,
			name,
			description,
			cuisine,
			address,
			city,
			photo_url,
			rating,
			is_open,
			owner_id,
			created_at,
			updated_at
		FROM restaurants
		WHERE (:search = '' OR name ILIKE '%' || :search || '%' OR cuisine ILIKE '%' || :search || '%')
		  AND (:city = '' OR city ILIKE :city)
		ORDER BY rating DESC, name ASC
		LIMIT :limit OFFSET :offset
	`

	queryCountAllRestaurants = `
		SELECT COUNT(*)
		FROM restaurants
		WHERE (:search = '' OR name ILIKE '%' || :search || '%' OR cuisine ILIKE '%' || :search || '%')
		  AND (:city = '' OR city ILIKE :city)
	`

	queryUpdateRestaurant = `
		UPDATE restaurants
		SET
			name = CASE WHEN :name = '' THEN name ELSE :name END,
			description = CASE WHEN :description = '' THEN description ELSE :description END,
			cuisine = CASE WHEN :cuisine = '' THEN cuisine ELSE :cuisine END,
			address = CASE WHEN :address = '' THEN address ELSE :address END,
			city = CASE WHEN :city = '' THEN city ELSE :city END,
			photo_url = CASE WHEN :photo_url = '' THEN photo_url ELSE :photo_url END,
			is_open = :is_open,
			updated_at = :updated_at
		WHERE id = :id
	`

	queryDeleteRestaurant = `
		DELETE FROM restaurants
		WHERE id = :id
	`

	queryCreateMenu = `
		INSERT INTO menus (
			id,
			restaurant_id,
			name,
			description,
			category,
			price,
			photo_url,
			is_available,
			created_at,
			updated_at
		) VALUES (
			:id,
			:restaurant_id,
			:name,
			:description,
			:category,
			:price,
			:photo_url,
			:is_available,
			:created_at,
			:updated_at
		)
	`

	queryGetMenuByID = `
		SELECT
			id,
			restaurant_id,
			name,
			description,
			category,
			price,
			photo_url,
			is_available,
			created_at,
			updated_at
		FROM menus
		WHERE id = :id
	`

	queryGetMenusByRestaurant = `
		SELECT
			id,
			restaurant_id,
			name,
			description,
			category,
			price,
			photo_url,
			is_available,
			created_at,
			updated_at
		FROM menus
		WHERE restaurant_id = :restaurant_id
		ORDER BY category ASC, name ASC
	`

	queryUpdateMenu = `
		UPDATE menus
		SET
			name = CASE WHEN :name = '' THEN name ELSE :name END,
			description = CASE WHEN :description = '' THEN description ELSE :description END,
			category = CASE WHEN :category = '' THEN category ELSE :category END,
			price = :price,
			photo_url = CASE WHEN :photo_url = '' THEN photo_url ELSE :photo_url END,
			is_available = :is_available,
			updated_at = :updated_at
		WHERE id = :id
	`

	queryDeleteMenu = `
		DELETE FROM menus
		WHERE id = :id
	`
)
