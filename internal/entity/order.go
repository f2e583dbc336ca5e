package entity

import "time"

type OrderStatus string

const (
	OrderStatusPlaced    OrderStatus = "placed"
	OrderStatusAccepted  OrderStatus = "accepted"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

type CartItem struct {
	ID        string    `db:"id"`
	UserID    string    `db:"user_id"`
	MenuID    string    `db:"menu_id"`
	Quantity  int       `db:"quantity"`
	Notes     string    `db:"notes"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// CartLine joins a cart item with the menu row it points at, for
// rendering the cart and pricing checkout.
type CartLine struct {
	CartItem
	MenuName     string `db:"menu_name"`
	MenuPrice    int64  `db:"menu_price"`
	IsAvailable  bool   `db:"is_available"`
	RestaurantID string `db:"restaurant_id"`
}

type Order struct {
	ID           string      `db:"id"`
	UserID       string      `db:"user_id"`
	RestaurantID string      `db:"restaurant_id"`
	AddressID    string      `db:"address_id"`
	Status       OrderStatus `db:"status"`
	TotalPrice   int64       `db:"total_price"`
	Notes        string      `db:"notes"`
	CreatedAt    time.Time   `db:"created_at"`
	UpdatedAt    time.Time   `db:"updated_at"`
}

type OrderItem struct {
	ID        string    `db:"id"`
	OrderID   string    `db:"order_id"`
	MenuID    string    `db:"menu_id"`
	MenuName  string    `db:"menu_name"`
	UnitPrice int64     `db:"unit_price"`
	Quantity  int       `db:"quantity"`
	Notes     string    `db:"notes"`
	CreatedAt time.Time `db:"created_at"`
}
