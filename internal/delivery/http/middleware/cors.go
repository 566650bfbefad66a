package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// CORS - middleware для браузерного клиента карты. API только читает данные,
// поэтому разрешены лишь GET и preflight.
func CORS(allowOrigins string) fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins: allowOrigins,
		AllowMethods: "GET,OPTIONS",
		AllowHeaders: "Content-Type,Accept,X-Request-ID",
	})
}
