package order

import "time"

type AddCartItemRequest struct {
	MenuID   string `json:"menu_id" validate:"required"`
	Quantity int    `json:"quantity" validate:"required,min=1,max=50"`
	Notes    string `json:"notes" validate:"omitempty,max=256"`
}

type UpdateCartItemRequest struct {
	Quantity int    `json:"quantity" validate:"required,min=1,max=50"`
	Notes    string `json:"notes" validate:"omitempty,max=256"`
}

type CheckoutRequest struct {
	AddressID string `json:"address_id" validate:"required"`
	Notes     string `json:"notes" validate:"omitempty,max=512"`
}

type CartItemResponse struct {
	ID          string `json:"id"`
	MenuID      string `json:"menu_id"`
	MenuName    string `json:"menu_name"`
	UnitPrice   int64  `json:"unit_price"`
	Quantity    int    `json:"quantity"`
	Notes       string `json:"notes"`
	Subtotal    int64  `json:"subtotal"`
	IsAvailable bool   `json:"is_available"`
}

type CartResponse struct {
	Items        []CartItemResponse `json:"items"`
	RestaurantID string             `json:"restaurant_id,omitempty"`
	Total        int64              `json:"total"`
}

type OrderItemResponse struct {
	MenuID    string `json:"menu_id"`
	MenuName  string `json:"menu_name"`
	UnitPrice int64  `json:"unit_price"`
	Quantity  int    `json:"quantity"`
	Notes     string `json:"notes"`
}

type OrderResponse struct {
	ID           string              `json:"id"`
	RestaurantID string              `json:"restaurant_id"`
	Status       string              `json:"status"`
	TotalPrice   int64               `json:"total_price"`
	Notes        string              `json:"notes"`
	Items        []OrderItemResponse `json:"items"`
	CreatedAt    time.Time           `json:"created_at"`
}

type OrderListResponse struct {
	Orders []OrderResponse `json:"orders"`
	Total  int             `json:"total"`
}
