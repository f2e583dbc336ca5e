package user

import "time"

type UpdateProfileRequest struct {
	Name        string `json:"name" validate:"omitempty,min=2,max=128"`
	PhoneNumber string `json:"phone_number" validate:"omitempty,e164"`
}

type CreateAddressRequest struct {
	Label     string `json:"label" validate:"required,max=64"`
	Street    string `json:"street" validate:"required,max=256"`
	City      string `json:"city" validate:"required,max=64"`
	Notes     string `json:"notes" validate:"omitempty,max=256"`
	IsDefault bool   `json:"is_default"`
}

type UpdateAddressRequest struct {
	Label     string `json:"label" validate:"omitempty,max=64"`
	Street    string `json:"street" validate:"omitempty,max=256"`
	City      string `json:"city" validate:"omitempty,max=64"`
	Notes     string `json:"notes" validate:"omitempty,max=256"`
	IsDefault *bool  `json:"is_default"`
}

type ProfileResponse struct {
	ID              string    `json:"id"`
	Email           string    `json:"email"`
	Name            string    `json:"name"`
	PhoneNumber     string    `json:"phone_number"`
	Role            string    `json:"role"`
	ProfilePhotoURL string    `json:"profile_photo_url"`
	CreatedAt       time.Time `json:"created_at"`
}

type AddressResponse struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	Street    string `json:"street"`
	City      string `json:"city"`
	Notes     string `json:"notes"`
	IsDefault bool   `json:"is_default"`
}

type AddressListResponse struct {
	Addresses []AddressResponse `json:"addresses"`
}

type FavoriteResponse struct {
	RestaurantID string    `json:"restaurant_id"`
	CreatedAt    time.Time `json:"created_at"`
}

type FavoriteListResponse struct {
	Favorites []FavoriteResponse `json:"favorites"`
}
