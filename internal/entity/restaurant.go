package entity

import "time"

type Restaurant struct {
	ID          string    `db:"id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	Cuisine     string    `db:"cuisine"`
	Address     string    `db:"address"`
	City        string    `db:"city"`
	PhotoURL    string    `db:"photo_url"`
	Rating      float64   `db:"rating"`
	IsOpen      bool      `db:"is_open"`
	OwnerID     string    `db:"owner_id"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

type Menu struct {
	ID           string    `db:"id"`
	RestaurantID string    `db:"restaurant_id"`
	Name         string    `db:"name"`
	Description  string    `db:"description"`
	Category     string    `db:"category"`
	Price        int64     `db:"price"`
	PhotoURL     string    `db:"photo_url"`
	IsAvailable  bool      `db:"is_available"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}
