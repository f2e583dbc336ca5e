package accessibilityHandler

import (
	accessibilityService "savoro-be/internal/api/accessibility/service"
	"savoro-be/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type AccessibilityHandler struct {
	log                  *logrus.Logger
	validator            *validator.Validate
	middleware           middleware.Middleware
	accessibilityService accessibilityService.IAccessibilityService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	as accessibilityService.IAccessibilityService,
) *AccessibilityHandler {
	return &AccessibilityHandler{
		log:                  log,
		validator:            validate,
		middleware:           middleware,
		accessibilityService: as,
	}
}

func (h *AccessibilityHandler) Start(srv fiber.Router) {
	accessibility := srv.Group("/accessibility", h.middleware.NewTokenMiddleware)

	accessibility.Get("/settings", h.GetSettings)
	accessibility.Get("/settings/:key", h.GetSetting)
	accessibility.Put("/settings/:key", h.UpdateSetting)
	accessibility.Delete("/settings", h.ResetSettings)

	accessibility.Post("/readout", h.Readout)
}
