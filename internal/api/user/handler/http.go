package userHandler

import (
	userService "savoro-be/internal/api/user/service"
	"savoro-be/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type UserHandler struct {
	log         *logrus.Logger
	validator   *validator.Validate
	middleware  middleware.Middleware
	userService userService.IUserService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	us userService.IUserService,
) *UserHandler {
	return &UserHandler{
		log:         log,
		validator:   validate,
		middleware:  middleware,
		userService: us,
	}
}

func (h *UserHandler) Start(srv fiber.Router) {
	users := srv.Group("/users", h.middleware.NewTokenMiddleware)

	users.Get("/me", h.GetProfile)
	users.Put("/me", h.UpdateProfile)

	users.Post("/addresses", h.CreateAddress)
	users.Get("/addresses", h.GetAddresses)
	users.Put("/addresses/:id", h.UpdateAddress)
	users.Delete("/addresses/:id", h.DeleteAddress)

	users.Post("/favorites/:restaurantId", h.AddFavorite)
	users.Get("/favorites", h.GetFavorites)
	users.Delete("/favorites/:restaurantId", h.RemoveFavorite)
}
