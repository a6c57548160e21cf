package route

import (
	"github.com/evandrarf/lingua-be/internal/delivery/http/handler"
	"github.com/evandrarf/lingua-be/internal/delivery/http/middleware"
	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoute(api fiber.Router, handler handler.AuthHandler, m *middleware.Middleware) {
	router := api.Group("/auth")
	{
		router.Post("/register", handler.Register)
		router.Post("/login", handler.Login)
		router.Post("/logout", handler.Logout)
		router.Get("/me", m.RequireAuth(), handler.Me)
	}
}

func SetupUserRoute(api fiber.Router, handler handler.UserHandler, m *middleware.Middleware) {
	router := api.Group("/users", m.RequireParent())
	{
		router.Get("/", handler.List)
		router.Delete("/:id", handler.Delete)
	}
}
