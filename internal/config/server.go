package config

import (
	"CatatUang/database/postgres"
	assistantHandler "CatatUang/internal/api/assistant/handler"
	assistantService "CatatUang/internal/api/assistant/service"
	transactionHandler "CatatUang/internal/api/transaction/handler"
	transactionRepository "CatatUang/internal/api/transaction/repository"
	transactionService "CatatUang/internal/api/transaction/service"
	"CatatUang/internal/middleware"
	"CatatUang/pkg/gemini"
	"CatatUang/pkg/openrouter"
	redisPkg "CatatUang/pkg/redis"
	"CatatUang/pkg/s3"
	"CatatUang/pkg/utils"
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type ServerOption func(*Server) error

type Server struct {
	engine      *fiber.App
	db          *sqlx.DB
	log         *logrus.Logger
	middleware  middleware.Middleware
	validator   *validator.Validate
	utils       utils.IUtils
	handlers    []handler
	chatClient  openrouter.IChat
	gemini      gemini.IGemini
	s3Client    s3.ItfS3
	rateLimiter middleware.RateLimiter
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

// WithRateLimiter selects the limiter backend from RATE_LIMIT_BACKEND.
// "redis" shares one counter across instances; anything else keeps it
// in process memory.
func WithRateLimiter() ServerOption {
	return func(s *Server) error {
		if os.Getenv("RATE_LIMIT_BACKEND") == "redis" {
			s.rateLimiter = middleware.NewRedisRateLimiter(redisPkg.New())
			return nil
		}
		s.rateLimiter = middleware.NewMemoryRateLimiter()
		return nil
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		if s.rateLimiter == nil {
			return fmt.Errorf("rate limiter must be initialized before middleware")
		}
		s.middleware = middleware.New(s.log, s.rateLimiter)
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

// WithChatClient tolerates a missing API key: the assistant then runs in
// its degraded keyword-fallback mode instead of refusing to boot.
func WithChatClient() ServerOption {
	return func(s *Server) error {
		client, err := openrouter.NewClient()
		if err != nil {
			if errors.Is(err, openrouter.ErrNotConfigured) {
				if s.log != nil {
					s.log.Warn("OpenRouter key missing, extraction runs in fallback mode")
				}
				return nil
			}
			return fmt.Errorf("failed to create chat client: %w", err)
		}
		s.chatClient = client
		return nil
	}
}

// WithGeminiClient also tolerates a missing key; reports fall back to
// computed totals and receipt scanning is disabled.
func WithGeminiClient() ServerOption {
	return func(s *Server) error {
		client, err := gemini.NewClient()
		if err != nil {
			if s.log != nil {
				s.log.Warnf("Gemini unavailable: %v", err)
			}
			return nil
		}
		s.gemini = client
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
	// Transaction domain
	transactionRepo := transactionRepository.New(s.db, s.log)
	transactionServices := transactionService.NewTransactionService(s.log, transactionRepo, s.utils)
	transactionHandlers := transactionHandler.New(s.log, s.validator, s.middleware, transactionServices)

	// Assistant domain
	assistantServices := assistantService.NewAssistantService(
		s.log, s.chatClient, s.gemini, s.s3Client, s.utils, transactionServices, s.validator,
	)
	assistantHandlers := assistantHandler.New(s.log, s.validator, s.middleware, assistantServices)

	s.setupHealthCheck()
	s.handlers = append(s.handlers, transactionHandlers, assistantHandlers)
}

func (s *Server) Run() error {
	router := s.engine.Group("/api/v1")
	s.engine.Use(s.middleware.NewRequestIDMiddleware())
	s.engine.Use(s.middleware.NewCorsMiddleware)
	s.engine.Use(middleware.LoggerConfig())

	for _, h := range s.handlers {
		h.Start(router)
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "3000"
	}

	return s.engine.Listen(fmt.Sprintf(":%s", port))
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message": "Server is Healthy!",
		})
	})
}
