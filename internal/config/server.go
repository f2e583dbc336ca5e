package config

import (
	"fmt"
	"os"

	"savoro-be/database/postgres"
	accessibilityHandler "savoro-be/internal/api/accessibility/handler"
	accessibilityRepository "savoro-be/internal/api/accessibility/repository"
	accessibilityService "savoro-be/internal/api/accessibility/service"
	assistantHandler "savoro-be/internal/api/assistant/handler"
	assistantRepository "savoro-be/internal/api/assistant/repository"
	assistantService "savoro-be/internal/api/assistant/service"
	authHandler "savoro-be/internal/api/auth/handler"
	authRepository "savoro-be/internal/api/auth/repository"
	authService "savoro-be/internal/api/auth/service"
	orderHandler "savoro-be/internal/api/order/handler"
	orderRepository "savoro-be/internal/api/order/repository"
	orderService "savoro-be/internal/api/order/service"
	restaurantHandler "savoro-be/internal/api/restaurant/handler"
	restaurantRepository "savoro-be/internal/api/restaurant/repository"
	restaurantService "savoro-be/internal/api/restaurant/service"
	userHandler "savoro-be/internal/api/user/handler"
	userRepository "savoro-be/internal/api/user/repository"
	userService "savoro-be/internal/api/user/service"
	"savoro-be/internal/middleware"
	"savoro-be/pkg/gemini"
	"savoro-be/pkg/google"
	"savoro-be/pkg/redis"
	"savoro-be/pkg/s3"
	"savoro-be/pkg/smtp"
	"savoro-be/pkg/speech"
	"savoro-be/pkg/utils"
	"savoro-be/pkg/whatsapp"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type ServerOption func(*Server) error

type Server struct {
	engine            *fiber.App
	db                *sqlx.DB
	log               *logrus.Logger
	middleware        middleware.Middleware
	validator         *validator.Validate
	utils             utils.IUtils
	handlers          []handler
	googleProvider    google.ItfGoogle
	redisServer       redis.IRedis
	smtpMailer        smtp.ItfSmtp
	whatsappClient    whatsapp.IWhatsappSender
	geminiClient      gemini.IGemini
	s3Client          s3.ItfS3
	transcriber       speech.ItfTranscriber
	streamTranscriber speech.ItfStreamTranscriber
	synthesizer       speech.ItfSynthesizer
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

func WithDatabase() ServerOption {
	return func(s *Server) error {
		db, err := postgres.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to connect to database: %v", err)
			}
			return fmt.Errorf("failed to create database connection: %w", err)
		}
		s.db = db
		return nil
	}
}

func WithGoogleProvider(provider google.ItfGoogle) ServerOption {
	return func(s *Server) error {
		s.googleProvider = provider
		return nil
	}
}

func WithRedisServer(redisServer redis.IRedis) ServerOption {
	return func(s *Server) error {
		s.redisServer = redisServer
		return nil
	}
}

func WithSMTPMailer(smtpMailer smtp.ItfSmtp) ServerOption {
	return func(s *Server) error {
		s.smtpMailer = smtpMailer
		return nil
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		s.middleware = middleware.New(s.log)
		return nil
	}
}

func WithS3Client() ServerOption {
	return func(s *Server) error {
		client, err := s3.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to initialize S3 client: %v", err)
			}
			return fmt.Errorf("failed to create S3 client: %w", err)
		}
		s.s3Client = client
		return nil
	}
}

func WithWhatsappClient() ServerOption {
	return func(s *Server) error {
		client, err := whatsapp.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to initialize WhatsApp client: %v", err)
			}
			return fmt.Errorf("failed to create WhatsApp client: %w", err)
		}
		s.whatsappClient = client
		return nil
	}
}

func WithGeminiClient() ServerOption {
	return func(s *Server) error {
		client, err := gemini.NewGeminiClient()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to create Gemini client: %v", err)
			}
			return fmt.Errorf("failed to create Gemini client: %w", err)
		}
		s.geminiClient = client
		return nil
	}
}

func WithSpeech() ServerOption {
	return func(s *Server) error {
		s.transcriber = speech.NewTranscriber()
		s.streamTranscriber = speech.NewStreamTranscriber()
		s.synthesizer = speech.NewSynthesizer()
		return nil
	}
}

func WithUtils() ServerOption {
	return func(s *Server) error {
		s.utils = utils.New()
		return nil
	}
}

func (s *Server) RegisterHandler() {
	// Auth
	authRepo := authRepository.New(s.db, s.log)
	authServices := authService.New(s.log, authRepo, s.googleProvider, s.utils)
	authHandlers := authHandler.New(s.log, authServices, s.validator, s.middleware, s.googleProvider)

	// Restaurant catalog
	restaurantRepo := restaurantRepository.New(s.db, s.log)
	restaurantServices := restaurantService.New(s.log, restaurantRepo, s.redisServer, s.s3Client, s.geminiClient, s.utils)
	restaurantHandlers := restaurantHandler.New(s.log, s.validator, s.middleware, restaurantServices)

	// User profile, addresses, favorites
	userRepo := userRepository.New(s.db, s.log)
	userServices := userService.New(s.log, userRepo, restaurantRepo, s.s3Client, s.utils)
	userHandlers := userHandler.New(s.log, s.validator, s.middleware, userServices)

	// Cart and orders
	orderRepo := orderRepository.New(s.db, s.log)
	orderServices := orderService.New(s.log, orderRepo, restaurantRepo, userRepo, s.smtpMailer, s.whatsappClient, s.utils)
	orderHandlers := orderHandler.New(s.log, s.validator, s.middleware, orderServices)

	// Accessibility settings and readout
	accessibilityRepo := accessibilityRepository.New(s.db, s.log)
	accessibilityServices := accessibilityService.New(s.log, accessibilityRepo, s.geminiClient, s.synthesizer, s.s3Client)
	accessibilityHandlers := accessibilityHandler.New(s.log, s.validator, s.middleware, accessibilityServices)

	// Voice assistant sessions
	settingStore := accessibilityService.NewStore(s.log, accessibilityRepo)
	assistantRepo := assistantRepository.New(s.db, s.log)
	assistantServices := assistantService.New(s.log, assistantRepo, settingStore, s.transcriber, s.streamTranscriber, s.synthesizer, s.s3Client, s.utils)
	assistantHandlers := assistantHandler.New(s.log, s.validator, s.middleware, assistantServices)

	s.setupHealthCheck()
	s.handlers = append(s.handlers,
		authHandlers,
		restaurantHandlers,
		userHandlers,
		orderHandlers,
		accessibilityHandlers,
		assistantHandlers,
	)
}

func (s *Server) Run() error {
	router := s.engine.Group("/api/v1")
	s.engine.Use(s.middleware.NewRequestIDMiddleware())
	s.engine.Use(middleware.LoggerConfig())
	s.engine.Use(s.middleware.NewRateLimiter)

	for _, h := range s.handlers {
		h.Start(router)
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "3000"
	}

	if err := s.engine.Listen(fmt.Sprintf(":%s", port)); err != nil {
		if s.whatsappClient != nil {
			s.whatsappClient.Disconnect()
		}
		return err
	}

	return nil
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message": "Server is Healthy!",
		})
	})
}
