package route

import (
	"github.com/evandrarf/lingua-be/internal/delivery/http/handler"
	"github.com/evandrarf/lingua-be/internal/delivery/http/middleware"
	"github.com/gofiber/fiber/v2"
)

func SetupLessonRoute(api fiber.Router, handler handler.LessonHandler, _ *middleware.Middleware) {
	router := api.Group("/lessons")
	{
		router.Get("/", handler.List)
		router.Get("/:id", handler.Get)
	}
}
