package middleware

import (
	"os"
	"strings"

	"github.com/gofiber/fiber/v2"
)

func allowedOriginsFromEnv() []string {
	raw := os.Getenv("CORS_ALLOWED_ORIGINS")
	if raw == "" {
		return nil
	}

	var origins []string
	for _, origin := range strings.Split(raw, ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}

// NewCorsMiddleware rejects browser requests from origins outside the
// allow list. An empty list means same-origin and non-browser clients only.
func (m *middleware) NewCorsMiddleware(ctx *fiber.Ctx) error {
	origin := ctx.Get("Origin")
	if origin == "" {
		return ctx.Next()
	}

	for _, allowed := range m.allowedOrigins {
		if allowed == "*" || strings.EqualFold(allowed, origin) {
			ctx.Set("Access-Control-Allow-Origin", origin)
			ctx.Set("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Request-ID")
			ctx.Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")

			if ctx.Method() == fiber.MethodOptions {
				return ctx.SendStatus(fiber.StatusNoContent)
			}
			return ctx.Next()
		}
	}

	m.log.Warnf("rejected cross-origin request from %s", origin)
	return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{
		"error": "origin not allowed",
	})
}
