package orderRepository

const (
	queryAddCartItem = `
		INSERT INTO cart_items (
			id,
			user_id,
			menu_id,
			quantity,
			notes,
			created_at,
			updated_at
		) VALUES (
			:id,
			:user_id,
			:menu_id,
			:quantity,
			:notes,
			:created_at,
			:updated_at
		)
		ON CONFLICT (user_id, menu_id) DO UPDATE
		SET quantity = cart_items.quantity + EXCLUDED.quantity,
		    notes = EXCLUDED.notes,
		    updated_at = EXCLUDED.updated_at
	`

	queryGetCartLines = `
		SELECT
			ci.id,
			ci.user_id,
			ci.menu_id,
			ci.quantity,
			ci.notes,
			ci.created_at,
			ci.updated_at,
			m.name AS menu_name,
			m.price AS menu_price,
			m.is_available,
			m.restaurant_id
		FROM cart_items ci
		JOIN menus m ON m.id = ci.menu_id
		WHERE ci.user_id = :user_id
		ORDER BY ci.created_at ASC
	`

	queryGetCartItemByID = `
		SELECT
			id,
			user_id,
			menu_id,
			quantity,
			notes,
			created_at,
			updated_at
		FROM cart_items
		WHERE id = :id
	`

	queryUpdateCartItem = `
		UPDATE cart_items
		SET
			quantity = :quantity,
			notes = :notes,
			updated_at = :updated_at
		WHERE id = :id
	`

	queryDeleteCartItem = `
		DELETE FROM cart_items
		WHERE id = :id
	`

	queryClearCart = `
		DELETE FROM cart_items
		WHERE user_id = :user_id
	`

	queryCreateOrder = `
		INSERT INTO orders (
			id,
			user_id,
			restaurant_id,
			address_id,
			status,
			total_price,
			notes,
			created_at,
			updated_at
		) VALUES (
			:id,
			:user_id,
			:restaurant_id,
			:address_id,
			:status,
			:total_price,
			:notes,
			:created_at,
			:updated_at
		)
	`

	queryCreateOrderItem = `
		INSERT INTO order_items (
			id,
			order_id,
			menu_id,
			menu_name,
			unit_price,
			quantity,
			notes,
			created_at
		) VALUES (
			:id,
			:order_id,
			:menu_id,
			:menu_name,
			:unit_price,
			:quantity,
			:notes,
			:created_at
		)
	`

	queryGetOrderByID = `
		SELECT
			id,
			user_id,
			restaurant_id,
			address_id,
			status,
			total_price,
			notes,
			created_at,
			updated_at
		FROM orders
		WHERE id = :id
	`

	queryGetOrderItems = `
		SELECT
			id,
			order_id,
			menu_id,
			menu_name,
			unit_price,
			quantity,
			notes,
			created_at
		FROM order_items
		WHERE order_id = :order_id
		ORDER BY created_at ASC
	`

	queryGetOrdersByUser = `
		SELECT
			id,
			user_id,
			restaurant_id,
			address_id,
			status,
			total_price,
			notes,
			created_at,
			updated_at
		FROM orders
		WHERE user_id = :user_id
		ORDER BY created_at DESC
		LIMIT :limit OFFSET :offset
	`

	queryCountOrdersByUser = `
		SELECT COUNT(*)
		FROM orders
		WHERE user_id = :user_id
	`

	queryUpdateOrderStatus = `
		UPDATE orders
		SET
			status = :status,
			updated_at = :updated_at
		WHERE id = :id
	`
)
