package restaurantHandler

import (
	restaurantService "savoro-be/internal/api/restaurant/service"
	"savoro-be/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type RestaurantHandler struct {
	log               *logrus.Logger
	validator         *validator.Validate
	middleware        middleware.Middleware
	restaurantService restaurantService.IRestaurantService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	rs restaurantService.IRestaurantService,
) *RestaurantHandler {
	return &RestaurantHandler{
		log:               log,
		validator:         validate,
		middleware:        middleware,
		restaurantService: rs,
	}
}

func (h *RestaurantHandler) Start(srv fiber.Router) {
	restaurants := srv.Group("/restaurants")

	// Public storefront endpoints
	restaurants.Get("", h.GetAllRestaurants)
	restaurants.Get("/menus/:menuId", h.GetMenuDetail)
	restaurants.Get("/:id", h.GetRestaurantDetail)

	// Merchant endpoints
	merchant := restaurants.Group("", h.middleware.NewTokenMiddleware, h.middleware.NewRoleMiddleware("merchant", "admin"))
	merchant.Post("/", h.CreateRestaurant)
	merchant.Put("/:id", h.UpdateRestaurant)
	merchant.Delete("/:id", h.DeleteRestaurant)
	merchant.Post("/:id/menus", h.CreateMenu)
	merchant.Put("/menus/:menuId", h.UpdateMenu)
	merchant.Delete("/menus/:menuId", h.DeleteMenu)
}
