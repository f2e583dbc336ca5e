package orderHandler

import (
	orderService "savoro-be/internal/api/order/service"
	"savoro-be/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type OrderHandler struct {
	log          *logrus.Logger
	validator    *validator.Validate
	middleware   middleware.Middleware
	orderService orderService.IOrderService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	os orderService.IOrderService,
) *OrderHandler {
	return &OrderHandler{
		log:          log,
		validator:    validate,
		middleware:   middleware,
		orderService: os,
	}
}

func (h *OrderHandler) Start(srv fiber.Router) {
	cart := srv.Group("/cart", h.middleware.NewTokenMiddleware)
	cart.Get("", h.GetCart)
	cart.Post("/items", h.AddCartItem)
	cart.Put("/items/:itemId", h.UpdateCartItem)
	cart.Delete("/items/:itemId", h.RemoveCartItem)
	cart.Delete("", h.ClearCart)

	orders := srv.Group("/orders", h.middleware.NewTokenMiddleware)
	orders.Post("/checkout", h.Checkout)
	orders.Get("", h.GetOrders)
	orders.Get("/:id", h.GetOrderDetail)
	orders.Post("/:id/cancel", h.CancelOrder)
}
