package entity

import "time"

type UserRole string

const (
	RoleCustomer UserRole = "customer"
	RoleMerchant UserRole = "merchant"
	RoleAdmin    UserRole = "admin"
)

type User struct {
	ID              string    `db:"id"`
	Email           string    `db:"email"`
	Name            string    `db:"name"`
	PhoneNumber     string    `db:"phone_number"`
	Role            UserRole  `db:"role"`
	ProfilePhotoURL string    `db:"profile_photo_url"`
	GoogleID        string    `db:"google_id"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`
}

type UserLoginData struct {
	ID    string
	Name  string
	Email string
	Role  UserRole
}

type UserAddress struct {
	ID        string    `db:"id"`
	UserID    string    `db:"user_id"`
	Label     string    `db:"label"`
	Street    string    `db:"street"`
	City      string    `db:"city"`
	Notes     string    `db:"notes"`
	IsDefault bool      `db:"is_default"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type UserFavorite struct {
	UserID       string    `db:"user_id"`
	RestaurantID string    `db:"restaurant_id"`
	CreatedAt    time.Time `db:"created_at"`
}
