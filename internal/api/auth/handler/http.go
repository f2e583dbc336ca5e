package authHandler

import (
	authService "savoro-be/internal/api/auth/service"
	"savoro-be/internal/middleware"
	"savoro-be/pkg/google"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type AuthHandler struct {
	log            *logrus.Logger
	validator      *validator.Validate
	middleware     middleware.Middleware
	authService    authService.IAuthService
	googleProvider google.ItfGoogle
}

func New(
	log *logrus.Logger,
	as authService.IAuthService,
	validate *validator.Validate,
	middleware middleware.Middleware,
	googleProvider google.ItfGoogle,
) *AuthHandler {
	return &AuthHandler{
		log:            log,
		validator:      validate,
		middleware:     middleware,
		authService:    as,
		googleProvider: googleProvider,
	}
}

func (h *AuthHandler) Start(srv fiber.Router) {
	auth := srv.Group("/auth")

	auth.Get("/login-gl", h.HandleGoogleLogin)
	auth.Get("/callback-gl", h.CallBackFromGoogle)
	auth.Get("/session", h.middleware.NewTokenMiddleware, h.GetSession)
}
