package route

import (
	"github.com/evandrarf/lingua-be/internal/delivery/http/handler"
	"github.com/evandrarf/lingua-be/internal/delivery/http/middleware"
	"github.com/gofiber/fiber/v2"
)

func SetupProgressRoute(api fiber.Router, handler handler.ProgressHandler, m *middleware.Middleware) {
	router := api.Group("/progress", m.RequireAuth())
	{
		router.Post("/save", handler.Save)
		router.Get("/lesson/:lesson_id", handler.Get)
		router.Post("/complete", handler.Complete)
		router.Get("/my-results", handler.MyResults)
		router.Get("/stats/:user_id", handler.Stats)
	}

	parentRouter := api.Group("/progress/all-results", m.RequireParent())
	{
		parentRouter.Get("/", handler.AllResults)
		parentRouter.Get("/export", handler.ExportResults)
	}
}
