package route

import (
	"github.com/evandrarf/lingua-be/internal/delivery/http/handler"
	"github.com/evandrarf/lingua-be/internal/delivery/http/middleware"
	"github.com/gofiber/fiber/v2"
)

// Player routes are open to guests. Attempts are still bound to whoever
// started them.
func SetupPlayerRoute(api fiber.Router, handler handler.PlayerHandler, _ *middleware.Middleware) {
	router := api.Group("/player")
	{
		router.Post("/lessons/:lesson_id/attempts", handler.Start)
		router.Get("/attempts/:attempt_id", handler.Get)
		router.Post("/attempts/:attempt_id/vocabulary", handler.Vocabulary)
		router.Post("/attempts/:attempt_id/answer", handler.Answer)
		router.Post("/attempts/:attempt_id/continue", handler.Continue)
		router.Delete("/attempts/:attempt_id", handler.Abandon)
	}
}
