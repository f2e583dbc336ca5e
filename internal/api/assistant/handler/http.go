package assistantHandler

import (
	assistantService "savoro-be/internal/api/assistant/service"
	"savoro-be/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/sirupsen/logrus"
)

type AssistantHandler struct {
	log              *logrus.Logger
	validator        *validator.Validate
	middleware       middleware.Middleware
	assistantService assistantService.IAssistantService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	as assistantService.IAssistantService,
) *AssistantHandler {
	return &AssistantHandler{
		log:              log,
		validator:        validate,
		middleware:       middleware,
		assistantService: as,
	}
}

func (h *AssistantHandler) Start(srv fiber.Router) {
	assistant := srv.Group("/assistant")
	assistant.Use(h.middleware.NewTokenMiddleware)

	wsMiddleware := func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	}

	assistant.Use("/ws", wsMiddleware)
	assistant.Get("/ws", websocket.New(h.handleSessionWebSocket))

	assistant.Post("/utterance", h.ProcessUtterance)
	assistant.Get("/history", h.GetHistory)
	assistant.Get("/lexicon", h.GetLexicon)
}
