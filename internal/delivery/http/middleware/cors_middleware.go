package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// CorsMiddleware allows any origin unless api.cors.origins is set. Session
// cookies only cross origins when the list is explicit.
func (m *Middleware) CorsMiddleware() fiber.Handler {
	allowOrigins := "*"
	if m != nil && m.Config != nil {
		if v := m.Config.GetString("api.cors.origins"); v != "" {
			allowOrigins = v
		}
	}

	return cors.New(cors.Config{
		AllowHeaders:     "Origin, Content-Type, Accept, Content-Length, Accept-Encoding",
		AllowMethods:     "GET, POST, PUT, PATCH, DELETE",
		AllowOrigins:     allowOrigins,
		AllowCredentials: allowOrigins != "*",
		ExposeHeaders:    "Content-Length, Content-Type, Content-Disposition",
	})
}
