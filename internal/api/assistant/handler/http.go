package assistantHandler

import (
	assistantService "CatatUang/internal/api/assistant/service"
	"CatatUang/internal/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
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
	assistantService assistantService.IAssistantService,
) *AssistantHandler {
	return &AssistantHandler{
		log:              log,
		validator:        validate,
		middleware:       middleware,
		assistantService: assistantService,
	}
}

// Start registers the assistant routes. Every route is authenticated first
// so the rate limiter counts per user, not per shared IP.
func (h *AssistantHandler) Start(srv fiber.Router) {
	assistant := srv.Group("/assistant")

	assistant.Post("/parse", h.middleware.NewTokenMiddleware, h.middleware.NewRateLimiter, h.Parse)
	assistant.Post("/transactions", h.middleware.NewTokenMiddleware, h.middleware.NewRateLimiter, h.Record)
	assistant.Post("/scan", h.middleware.NewTokenMiddleware, h.middleware.NewRateLimiter, h.Scan)
	assistant.Post("/report", h.middleware.NewTokenMiddleware, h.middleware.NewRateLimiter, h.Report)
}
