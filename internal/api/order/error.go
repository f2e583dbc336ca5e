package order

import (
	"net/http"

	"savoro-be/pkg/response"
)

var (
	ErrCartItemNotFound  = response.NewError(http.StatusNotFound, "cart item not found")
	ErrCartEmpty         = response.NewError(http.StatusBadRequest, "cart is empty")
	ErrCartMixedVendors  = response.NewError(http.StatusBadRequest, "cart contains items from multiple restaurants")
	ErrMenuUnavailable   = response.NewError(http.StatusConflict, "menu item is no longer available")
	ErrOrderNotFound     = response.NewError(http.StatusNotFound, "order not found")
	ErrOrderNotOwned     = response.NewError(http.StatusForbidden, "order does not belong to user")
	ErrAddressNotFound   = response.NewError(http.StatusNotFound, "delivery address not found")
	ErrInvalidQuantity   = response.NewError(http.StatusBadRequest, "quantity must be at least 1")
	ErrOrderNotCancelable = response.NewError(http.StatusConflict, "order can no longer be cancelled")
)
