package restaurant

import "time"

type CreateRestaurantRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=128"`
	Description string `json:"description" validate:"omitempty,max=2048"`
	Cuisine     string `json:"cuisine" validate:"required,max=64"`
	Address     string `json:"address" validate:"required,max=256"`
	City        string `json:"city" validate:"required,max=64"`
}

type UpdateRestaurantRequest struct {
	Name        string `json:"name" validate:"omitempty,min=2,max=128"`
	Description string `json:"description" validate:"omitempty,max=2048"`
	Cuisine     string `json:"cuisine" validate:"omitempty,max=64"`
	Address     string `json:"address" validate:"omitempty,max=256"`
	City        string `json:"city" validate:"omitempty,max=64"`
}

type CreateMenuRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=128"`
	Description string `json:"description" validate:"omitempty,max=2048"`
	Category    string `json:"category" validate:"required,max=64"`
	Price       int64  `json:"price" validate:"required,min=0"`
}

type UpdateMenuRequest struct {
	Name        string `json:"name" validate:"omitempty,min=2,max=128"`
	Description string `json:"description" validate:"omitempty,max=2048"`
	Category    string `json:"category" validate:"omitempty,max=64"`
	Price       *int64 `json:"price" validate:"omitempty,min=0"`
	IsAvailable *bool  `json:"is_available"`
}

type RestaurantResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Cuisine     string    `json:"cuisine"`
	Address     string    `json:"address"`
	City        string    `json:"city"`
	PhotoURL    string    `json:"photo_url"`
	Rating      float64   `json:"rating"`
	IsOpen      bool      `json:"is_open"`
	CreatedAt   time.Time `json:"created_at"`
}

type RestaurantListResponse struct {
	Restaurants []RestaurantResponse `json:"restaurants"`
	Total       int                  `json:"total"`
}

type MenuResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Price       int64  `json:"price"`
	PhotoURL    string `json:"photo_url"`
	IsAvailable bool   `json:"is_available"`
}

type RestaurantDetailResponse struct {
	RestaurantResponse
	Menus []MenuResponse `json:"menus"`
}
